package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"wallhaven"
	"wallhaven/internal/logging"
)

func newCollectionsCommand(ctx *commandContext) *cobra.Command {
	var purityFlag string
	var page int

	cmd := &cobra.Command{
		Use:   "collections [username] [collection-id]",
		Short: "List collections or browse one collection's wallpapers",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := wallhaven.CollectionsRequest{Page: page}
			if len(args) > 0 {
				req.Username = args[0]
			}
			if len(args) > 1 {
				id, err := strconv.ParseInt(strings.TrimSpace(args[1]), 10, 64)
				if err != nil || id <= 0 {
					return fmt.Errorf("invalid collection id %q", args[1])
				}
				req.CollectionID = id
			}
			if value := strings.TrimSpace(purityFlag); value != "" {
				purity, err := wallhaven.ParsePurity(value)
				if err != nil {
					return err
				}
				req.Purity = purity
			}

			client, logger, err := ctx.ensureClient(cmd)
			if err != nil {
				return err
			}
			result, err := client.Collections(cmd.Context(), req)
			if err != nil {
				return err
			}

			if req.CollectionID > 0 {
				logger.Debug("collection page fetched",
					logging.String("username", req.Username),
					logging.Int64("collection", req.CollectionID),
					logging.Int("wallpapers", len(result.Wallpapers)))
				if ctx.JSONMode() {
					return writeListingJSON(cmd, result.Wallpapers, result.Meta)
				}
				writeWallpaperListing(cmd, result.Wallpapers, result.Meta)
				return nil
			}

			logger.Debug("collections fetched",
				logging.String("username", req.Username),
				logging.Int("collections", len(result.Collections)))
			if ctx.JSONMode() {
				collections := result.Collections
				if collections == nil {
					collections = []wallhaven.Collection{}
				}
				return writeJSON(cmd, map[string]any{"data": collections})
			}
			writeCollectionListing(cmd, result.Collections)
			return nil
		},
	}

	cmd.Flags().StringVar(&purityFlag, "purity", "", "Purity filter (comma separated: sfw, sketchy, nsfw)")
	cmd.Flags().IntVar(&page, "page", 0, "Wallpaper page within a collection")
	return cmd
}

func writeCollectionListing(cmd *cobra.Command, collections []wallhaven.Collection) {
	out := cmd.OutOrStdout()
	if len(collections) == 0 {
		fmt.Fprintln(out, renderNotice("No collections found", shouldColorize(out)))
		return
	}

	rows := make([][]string, 0, len(collections))
	for _, collection := range collections {
		rows = append(rows, []string{
			strconv.FormatInt(collection.ID, 10),
			collection.Label,
			yesNo(collection.Public == 1),
			strconv.Itoa(collection.Count),
			strconv.Itoa(collection.Views),
		})
	}
	headers := []string{"ID", "LABEL", "PUBLIC", "COUNT", "VIEWS"}
	aligns := []columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignRight}
	fmt.Fprintln(out, renderTable(headers, rows, aligns))
}
