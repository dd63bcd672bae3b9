package main

import (
	"strings"

	"github.com/spf13/cobra"

	"wallhaven"
	"wallhaven/internal/logging"
)

type searchFlags struct {
	categories  string
	purity      string
	sort        string
	order       string
	topRange    string
	atLeast     string
	resolutions []string
	ratios      []string
	color       string
	page        int
	seed        string
}

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var flags searchFlags

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search wallpapers",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := buildSearchQuery(args, flags)
			if err != nil {
				return err
			}

			client, logger, err := ctx.ensureClient(cmd)
			if err != nil {
				return err
			}
			result, err := client.Search(cmd.Context(), query)
			if err != nil {
				return err
			}
			logger.Debug("search complete",
				logging.String("query", query.Query),
				logging.Int("wallpapers", len(result.Wallpapers)))

			if ctx.JSONMode() {
				return writeListingJSON(cmd, result.Wallpapers, result.Meta)
			}
			writeWallpaperListing(cmd, result.Wallpapers, result.Meta)
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.categories, "categories", "", "Category filter (comma separated: general, anime, people)")
	cmd.Flags().StringVar(&flags.purity, "purity", "", "Purity filter (comma separated: sfw, sketchy, nsfw)")
	cmd.Flags().StringVar(&flags.sort, "sort", "", "Sort mode (date_added, relevance, random, views, favorites, toplist)")
	cmd.Flags().StringVar(&flags.order, "order", "", "Sort direction (desc, asc)")
	cmd.Flags().StringVar(&flags.topRange, "range", "", "Toplist range (1d, 3d, 1w, 1M, 3M, 6M, 1y)")
	cmd.Flags().StringVar(&flags.atLeast, "atleast", "", "Minimum resolution, e.g. 1920x1080")
	cmd.Flags().StringSliceVar(&flags.resolutions, "resolutions", nil, "Exact resolutions, e.g. 1920x1080,2560x1440")
	cmd.Flags().StringSliceVar(&flags.ratios, "ratios", nil, "Aspect ratios, e.g. 16x9,21x9")
	cmd.Flags().StringVar(&flags.color, "color", "", "Dominant color as hex, e.g. 660000")
	cmd.Flags().IntVar(&flags.page, "page", 0, "Result page to fetch")
	cmd.Flags().StringVar(&flags.seed, "seed", "", "Seed for random sorting")
	return cmd
}

func buildSearchQuery(args []string, flags searchFlags) (wallhaven.SearchQuery, error) {
	query := wallhaven.SearchQuery{
		Page: flags.page,
		Seed: strings.TrimSpace(flags.seed),
	}
	if len(args) > 0 {
		query.Query = args[0]
	}

	var err error
	if value := strings.TrimSpace(flags.categories); value != "" {
		if query.Categories, err = wallhaven.ParseCategory(value); err != nil {
			return wallhaven.SearchQuery{}, err
		}
	}
	if value := strings.TrimSpace(flags.purity); value != "" {
		if query.Purity, err = wallhaven.ParsePurity(value); err != nil {
			return wallhaven.SearchQuery{}, err
		}
	}
	if value := strings.TrimSpace(flags.sort); value != "" {
		if query.Sorting, err = wallhaven.ParseSorting(value); err != nil {
			return wallhaven.SearchQuery{}, err
		}
	}
	if value := strings.TrimSpace(flags.order); value != "" {
		if query.Order, err = wallhaven.ParseOrder(value); err != nil {
			return wallhaven.SearchQuery{}, err
		}
	}
	if value := strings.TrimSpace(flags.topRange); value != "" {
		if query.TopRange, err = wallhaven.ParseTopRange(value); err != nil {
			return wallhaven.SearchQuery{}, err
		}
	}
	if value := strings.TrimSpace(flags.atLeast); value != "" {
		if query.AtLeast, err = wallhaven.ParseResolution(value); err != nil {
			return wallhaven.SearchQuery{}, err
		}
	}
	for _, raw := range flags.resolutions {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		resolution, err := wallhaven.ParseResolution(raw)
		if err != nil {
			return wallhaven.SearchQuery{}, err
		}
		query.Resolutions = append(query.Resolutions, resolution)
	}
	for _, raw := range flags.ratios {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		ratio, err := wallhaven.ParseRatio(raw)
		if err != nil {
			return wallhaven.SearchQuery{}, err
		}
		query.Ratios = append(query.Ratios, ratio)
	}
	if value := strings.TrimSpace(flags.color); value != "" {
		if query.Color, err = wallhaven.ParseColor(value); err != nil {
			return wallhaven.SearchQuery{}, err
		}
	}
	return query, nil
}
