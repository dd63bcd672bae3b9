package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"wallhaven/internal/logging"
)

func newTagCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "tag <id>",
		Short: "Show tag details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(strings.TrimSpace(args[0]), 10, 64)
			if err != nil {
				return fmt.Errorf("invalid tag id %q", args[0])
			}

			client, logger, err := ctx.ensureClient(cmd)
			if err != nil {
				return err
			}
			tag, err := client.Tag(cmd.Context(), id)
			if err != nil {
				return err
			}
			logger.Debug("tag fetched",
				logging.Int64("id", tag.ID),
				logging.String("name", tag.Name))

			if ctx.JSONMode() {
				return writeJSON(cmd, map[string]any{"data": tag})
			}

			rows := [][]string{
				{"ID", strconv.FormatInt(tag.ID, 10)},
				{"Name", tag.Name},
			}
			if tag.Alias != "" {
				rows = append(rows, []string{"Alias", tag.Alias})
			}
			rows = append(rows,
				[]string{"Category", tag.Category},
				[]string{"Purity", tag.Purity},
				[]string{"Created", tag.CreatedAt},
			)
			fmt.Fprintln(cmd.OutOrStdout(), renderKeyValueTable(rows))
			return nil
		},
	}
}
