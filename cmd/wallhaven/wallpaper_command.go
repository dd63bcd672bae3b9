package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"wallhaven"
	"wallhaven/internal/logging"
)

func newWallpaperCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "wallpaper <id>",
		Short: "Show one wallpaper in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, logger, err := ctx.ensureClient(cmd)
			if err != nil {
				return err
			}
			wp, err := client.Wallpaper(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			logger.Debug("wallpaper fetched", logging.String("id", wp.ID))

			if ctx.JSONMode() {
				return writeJSON(cmd, map[string]any{"data": wp})
			}
			writeWallpaperDetail(cmd, wp)
			return nil
		},
	}
}

func writeWallpaperDetail(cmd *cobra.Command, wp *wallhaven.Wallpaper) {
	rows := [][]string{
		{"ID", wp.ID},
		{"URL", wp.URL},
	}
	if wp.ShortURL != "" {
		rows = append(rows, []string{"Short URL", wp.ShortURL})
	}
	if wp.Uploader != nil {
		rows = append(rows, []string{"Uploader", uploaderLabel(wp.Uploader)})
	}
	rows = append(rows,
		[]string{"Purity", wp.Purity},
		[]string{"Category", wp.Category},
		[]string{"Resolution", wp.Resolution},
		[]string{"Ratio", wp.Ratio},
		[]string{"Views", strconv.Itoa(wp.Views)},
		[]string{"Favorites", strconv.Itoa(wp.Favorites)},
		[]string{"File", fileLabel(wp)},
		[]string{"Created", wp.CreatedAt},
	)
	if len(wp.Colors) > 0 {
		rows = append(rows, []string{"Colors", strings.Join(wp.Colors, ", ")})
	}
	if wp.Source != "" {
		rows = append(rows, []string{"Source", wp.Source})
	}
	if wp.Path != "" {
		rows = append(rows, []string{"Path", wp.Path})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderKeyValueTable(rows))
	if len(wp.Tags) > 0 {
		fmt.Fprintln(out, "Tags:")
		for _, tag := range wp.Tags {
			fmt.Fprintf(out, "  #%d %s (%s)\n", tag.ID, tag.Name, tag.Purity)
		}
	}
}

func uploaderLabel(uploader *wallhaven.Uploader) string {
	if uploader.Group == "" {
		return uploader.Username
	}
	return fmt.Sprintf("%s (%s)", uploader.Username, uploader.Group)
}

func fileLabel(wp *wallhaven.Wallpaper) string {
	if wp.FileSize <= 0 {
		return wp.FileType
	}
	if wp.FileType == "" {
		return humanBytes(wp.FileSize)
	}
	return fmt.Sprintf("%s, %s", wp.FileType, humanBytes(wp.FileSize))
}
