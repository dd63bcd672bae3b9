package main

import (
	"strings"

	"github.com/spf13/cobra"

	"wallhaven"
	"wallhaven/internal/logging"
)

func newUploadsCommand(ctx *commandContext) *cobra.Command {
	var purityFlag string
	var page int

	cmd := &cobra.Command{
		Use:   "uploads <username>",
		Short: "Browse a user's uploaded wallpapers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := wallhaven.UploadsOptions{Page: page}
			if value := strings.TrimSpace(purityFlag); value != "" {
				purity, err := wallhaven.ParsePurity(value)
				if err != nil {
					return err
				}
				opts.Purity = purity
			}

			client, logger, err := ctx.ensureClient(cmd)
			if err != nil {
				return err
			}
			result, err := client.UserUploads(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}
			logger.Debug("uploads fetched",
				logging.String("username", args[0]),
				logging.Int("wallpapers", len(result.Wallpapers)))

			if ctx.JSONMode() {
				return writeListingJSON(cmd, result.Wallpapers, result.Meta)
			}
			writeWallpaperListing(cmd, result.Wallpapers, result.Meta)
			return nil
		},
	}

	cmd.Flags().StringVar(&purityFlag, "purity", "", "Purity filter (defaults to sfw,sketchy)")
	cmd.Flags().IntVar(&page, "page", 0, "Result page to fetch")
	return cmd
}
