package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"wallhaven"
)

func writeWallpaperListing(cmd *cobra.Command, wallpapers []wallhaven.Wallpaper, meta *wallhaven.Meta) {
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)
	if len(wallpapers) == 0 {
		fmt.Fprintln(out, renderNotice("No wallpapers matched", colorize))
		return
	}

	rows := make([][]string, 0, len(wallpapers))
	for _, wp := range wallpapers {
		link := wp.ShortURL
		if link == "" {
			link = wp.URL
		}
		rows = append(rows, []string{
			wp.ID,
			wp.Resolution,
			wp.Purity,
			wp.Category,
			strconv.Itoa(wp.Favorites),
			strconv.Itoa(wp.Views),
			link,
		})
	}
	headers := []string{"ID", "RESOLUTION", "PURITY", "CATEGORY", "FAVES", "VIEWS", "URL"}
	aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignLeft}
	fmt.Fprintln(out, renderTable(headers, rows, aligns))

	if summary := listingSummary(meta); summary != "" {
		fmt.Fprintln(out, renderSummary(summary, colorize))
	}
}

func listingSummary(meta *wallhaven.Meta) string {
	if meta == nil {
		return ""
	}
	summary := fmt.Sprintf("Page %d of %d (%d wallpapers)", meta.CurrentPage, meta.LastPage, meta.Total)
	if seed := strings.TrimSpace(meta.Seed); seed != "" {
		summary += fmt.Sprintf(" [seed %s]", seed)
	}
	return summary
}

func writeListingJSON(cmd *cobra.Command, wallpapers []wallhaven.Wallpaper, meta *wallhaven.Meta) error {
	if wallpapers == nil {
		wallpapers = []wallhaven.Wallpaper{}
	}
	payload := map[string]any{"data": wallpapers}
	if meta != nil {
		payload["meta"] = meta
	}
	return writeJSON(cmd, payload)
}

func humanBytes(v int64) string {
	const unit = 1024
	if v < unit {
		return fmt.Sprintf("%d B", v)
	}
	div := int64(unit)
	exp := 0
	for n := v / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	value := float64(v) / float64(div)
	return fmt.Sprintf("%.1f %ciB", value, "KMGTPEZY"[exp])
}
