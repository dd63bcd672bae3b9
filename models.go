package wallhaven

import "encoding/json"

// Thumbs carries the pre-rendered thumbnail URLs for a wallpaper.
type Thumbs struct {
	Large    string `json:"large"`
	Original string `json:"original"`
	Small    string `json:"small"`
}

// Uploader identifies who submitted a wallpaper. Only detail responses
// include it.
type Uploader struct {
	Username string            `json:"username"`
	Group    string            `json:"group"`
	Avatar   map[string]string `json:"avatar"`
}

// Wallpaper is one result entry. Listing endpoints omit Uploader and Tags;
// the w/{id} detail fills them in.
type Wallpaper struct {
	ID         string    `json:"id"`
	URL        string    `json:"url"`
	ShortURL   string    `json:"short_url"`
	Uploader   *Uploader `json:"uploader,omitempty"`
	Views      int       `json:"views"`
	Favorites  int       `json:"favorites"`
	Source     string    `json:"source"`
	Purity     string    `json:"purity"`
	Category   string    `json:"category"`
	DimensionX int       `json:"dimension_x"`
	DimensionY int       `json:"dimension_y"`
	Resolution string    `json:"resolution"`
	Ratio      string    `json:"ratio"`
	FileSize   int64     `json:"file_size"`
	FileType   string    `json:"file_type"`
	CreatedAt  string    `json:"created_at"`
	Colors     []string  `json:"colors"`
	Path       string    `json:"path"`
	Thumbs     Thumbs    `json:"thumbs"`
	Tags       []Tag     `json:"tags,omitempty"`
}

// Tag describes one wallpaper tag.
type Tag struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Alias      string `json:"alias"`
	CategoryID int64  `json:"category_id"`
	Category   string `json:"category"`
	Purity     string `json:"purity"`
	CreatedAt  string `json:"created_at"`
}

// UserSettings mirrors the account's default browsing filters.
// PerPage is a Number because upstream quotes it.
type UserSettings struct {
	ThumbSize     string      `json:"thumb_size"`
	PerPage       json.Number `json:"per_page"`
	Purity        []string    `json:"purity"`
	Categories    []string    `json:"categories"`
	Resolutions   []string    `json:"resolutions"`
	AspectRatios  []string    `json:"aspect_ratios"`
	ToplistRange  string      `json:"toplist_range"`
	TagBlacklist  []string    `json:"tag_blacklist"`
	UserBlacklist []string    `json:"user_blacklist"`
}

// Meta is the pagination envelope on listing responses. Query stays raw
// because upstream returns either a plain string or a tag object for it;
// PerPage is a Number because upstream emits it bare or quoted depending
// on the endpoint.
type Meta struct {
	CurrentPage int             `json:"current_page"`
	LastPage    int             `json:"last_page"`
	PerPage     json.Number     `json:"per_page"`
	Total       int             `json:"total"`
	Query       json.RawMessage `json:"query,omitempty"`
	Seed        string          `json:"seed,omitempty"`
}

// Collection is one entry in a user's collection listing.
type Collection struct {
	ID     int64  `json:"id"`
	Label  string `json:"label"`
	Views  int    `json:"views"`
	Public int    `json:"public"`
	Count  int    `json:"count"`
}

// SearchResult pairs a page of wallpapers with its pagination meta.
type SearchResult struct {
	Wallpapers []Wallpaper
	Meta       *Meta
}

// CollectionsResult holds either a collection listing (no collection ID in
// the request) or one collection's wallpaper page (ID given). Meta is only
// present for wallpaper pages.
type CollectionsResult struct {
	Collections []Collection
	Wallpapers  []Wallpaper
	Meta        *Meta
}
