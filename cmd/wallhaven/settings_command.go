package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func newSettingsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "settings",
		Short: "Show the account's browsing defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, logger, err := ctx.ensureClient(cmd)
			if err != nil {
				return err
			}
			settings, err := client.Settings(cmd.Context())
			if err != nil {
				return err
			}
			logger.Debug("settings fetched")

			if ctx.JSONMode() {
				return writeJSON(cmd, map[string]any{"data": settings})
			}

			entries := []struct {
				key   string
				value string
			}{
				{"thumb_size", settings.ThumbSize},
				{"per_page", settings.PerPage.String()},
				{"purity", joinList(settings.Purity)},
				{"categories", joinList(settings.Categories)},
				{"resolutions", joinList(settings.Resolutions)},
				{"aspect_ratios", joinList(settings.AspectRatios)},
				{"toplist_range", settings.ToplistRange},
				{"tag_blacklist", joinList(settings.TagBlacklist)},
				{"user_blacklist", joinList(settings.UserBlacklist)},
			}
			rows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				value := entry.value
				if value == "" {
					value = "(none)"
				}
				rows = append(rows, []string{settingLabel(entry.key), value})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderKeyValueTable(rows))
			return nil
		},
	}
}

// settingLabel turns a snake_case settings key into a display heading.
func settingLabel(key string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(key, "_", " "))
}

func joinList(values []string) string {
	return strings.Join(values, ", ")
}
