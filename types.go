package wallhaven

import (
	"fmt"
	"strconv"
	"strings"
)

// Resolution is a pixel dimension pair, e.g. 1920x1080. The zero value
// means "unset"; any other value holds positive dimensions because
// construction goes through NewResolution or ParseResolution.
type Resolution struct {
	width  int
	height int
}

// NewResolution builds a Resolution from positive pixel dimensions.
func NewResolution(width, height int) (Resolution, error) {
	if width <= 0 || height <= 0 {
		return Resolution{}, &ValidationError{
			Field:  "resolution",
			Reason: fmt.Sprintf("width and height must be positive, got %dx%d", width, height),
		}
	}
	return Resolution{width: width, height: height}, nil
}

// ParseResolution parses the wire form "{width}x{height}".
func ParseResolution(s string) (Resolution, error) {
	width, height, ok := parsePair(s)
	if !ok {
		return Resolution{}, &ValidationError{
			Field:  "resolution",
			Reason: fmt.Sprintf("%q must look like 1920x1080", s),
		}
	}
	return NewResolution(width, height)
}

func (r Resolution) Width() int  { return r.width }
func (r Resolution) Height() int { return r.height }

// IsZero reports whether the resolution is unset.
func (r Resolution) IsZero() bool { return r == Resolution{} }

// String renders the upstream wire form, e.g. "2560x1440".
func (r Resolution) String() string {
	return strconv.Itoa(r.width) + "x" + strconv.Itoa(r.height)
}

// Ratio is an aspect ratio pair, e.g. 16x9. It shares Resolution's shape
// and wire form but is a distinct type: a ratio is never substitutable for
// a pixel dimension.
type Ratio struct {
	width  int
	height int
}

// NewRatio builds a Ratio from positive components.
func NewRatio(width, height int) (Ratio, error) {
	if width <= 0 || height <= 0 {
		return Ratio{}, &ValidationError{
			Field:  "ratio",
			Reason: fmt.Sprintf("width and height must be positive, got %dx%d", width, height),
		}
	}
	return Ratio{width: width, height: height}, nil
}

// ParseRatio parses the wire form "{width}x{height}".
func ParseRatio(s string) (Ratio, error) {
	width, height, ok := parsePair(s)
	if !ok {
		return Ratio{}, &ValidationError{
			Field:  "ratio",
			Reason: fmt.Sprintf("%q must look like 16x9", s),
		}
	}
	return NewRatio(width, height)
}

func (r Ratio) Width() int  { return r.width }
func (r Ratio) Height() int { return r.height }

// IsZero reports whether the ratio is unset.
func (r Ratio) IsZero() bool { return r == Ratio{} }

// String renders the upstream wire form, e.g. "16x9".
func (r Ratio) String() string {
	return strconv.Itoa(r.width) + "x" + strconv.Itoa(r.height)
}

func parsePair(s string) (width, height int, ok bool) {
	left, right, found := strings.Cut(strings.TrimSpace(s), "x")
	if !found {
		return 0, 0, false
	}
	width, err := strconv.Atoi(left)
	if err != nil {
		return 0, 0, false
	}
	height, err = strconv.Atoi(right)
	if err != nil {
		return 0, 0, false
	}
	return width, height, true
}

// Purity selects which content ratings a query includes. The zero value
// leaves the filter unset; upstream then serves SFW results only.
type Purity struct {
	SFW     bool
	Sketchy bool
	NSFW    bool
}

// IsZero reports whether no flag is set.
func (p Purity) IsZero() bool { return !p.SFW && !p.Sketchy && !p.NSFW }

// mask renders the 3-bit wire mask in (sfw, sketchy, nsfw) order, most
// significant flag first: sfw+nsfw -> "101".
func (p Purity) mask() string {
	return maskBits(p.SFW, p.Sketchy, p.NSFW)
}

// String lists the active flags, e.g. "sfw,sketchy".
func (p Purity) String() string {
	names := make([]string, 0, 3)
	if p.SFW {
		names = append(names, "sfw")
	}
	if p.Sketchy {
		names = append(names, "sketchy")
	}
	if p.NSFW {
		names = append(names, "nsfw")
	}
	return strings.Join(names, ",")
}

// ParsePurity reads a comma-separated flag list such as "sfw,sketchy".
// An empty string yields the unset filter.
func ParsePurity(s string) (Purity, error) {
	var p Purity
	for _, name := range strings.Split(s, ",") {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "sfw":
			p.SFW = true
		case "sketchy":
			p.Sketchy = true
		case "nsfw":
			p.NSFW = true
		case "":
		default:
			return Purity{}, &ValidationError{
				Field:  "purity",
				Reason: fmt.Sprintf("unknown flag %q (valid: sfw, sketchy, nsfw)", strings.TrimSpace(name)),
			}
		}
	}
	return p, nil
}

// Category selects which content types a query includes. The zero value
// leaves the filter unset and upstream applies no category restriction.
type Category struct {
	General bool
	Anime   bool
	People  bool
}

// IsZero reports whether no flag is set.
func (c Category) IsZero() bool { return !c.General && !c.Anime && !c.People }

// mask renders the 3-bit wire mask in (general, anime, people) order.
func (c Category) mask() string {
	return maskBits(c.General, c.Anime, c.People)
}

// String lists the active flags, e.g. "general,anime".
func (c Category) String() string {
	names := make([]string, 0, 3)
	if c.General {
		names = append(names, "general")
	}
	if c.Anime {
		names = append(names, "anime")
	}
	if c.People {
		names = append(names, "people")
	}
	return strings.Join(names, ",")
}

// ParseCategory reads a comma-separated flag list such as "general,anime".
func ParseCategory(s string) (Category, error) {
	var c Category
	for _, name := range strings.Split(s, ",") {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "general":
			c.General = true
		case "anime":
			c.Anime = true
		case "people":
			c.People = true
		case "":
		default:
			return Category{}, &ValidationError{
				Field:  "categories",
				Reason: fmt.Sprintf("unknown flag %q (valid: general, anime, people)", strings.TrimSpace(name)),
			}
		}
	}
	return c, nil
}

func maskBits(bits ...bool) string {
	buf := make([]byte, len(bits))
	for i, set := range bits {
		if set {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}

// Sorting orders search results.
type Sorting string

const (
	SortDateAdded Sorting = "date_added"
	SortRelevance Sorting = "relevance"
	SortRandom    Sorting = "random"
	SortViews     Sorting = "views"
	SortFavorites Sorting = "favorites"
	SortToplist   Sorting = "toplist"
)

func (s Sorting) validate() error {
	switch s {
	case SortDateAdded, SortRelevance, SortRandom, SortViews, SortFavorites, SortToplist:
		return nil
	}
	return &ValidationError{
		Field:  "sorting",
		Reason: fmt.Sprintf("unknown value %q (valid: date_added, relevance, random, views, favorites, toplist)", string(s)),
	}
}

// ParseSorting maps a raw tag like "toplist" onto its Sorting value.
func ParseSorting(s string) (Sorting, error) {
	v := Sorting(strings.ToLower(strings.TrimSpace(s)))
	if err := v.validate(); err != nil {
		return "", err
	}
	return v, nil
}

// Order is the sort direction. Upstream defaults to descending.
type Order string

const (
	OrderDesc Order = "desc"
	OrderAsc  Order = "asc"
)

func (o Order) validate() error {
	switch o {
	case OrderDesc, OrderAsc:
		return nil
	}
	return &ValidationError{
		Field:  "order",
		Reason: fmt.Sprintf("unknown value %q (valid: desc, asc)", string(o)),
	}
}

// ParseOrder maps "desc" or "asc" onto its Order value.
func ParseOrder(s string) (Order, error) {
	v := Order(strings.ToLower(strings.TrimSpace(s)))
	if err := v.validate(); err != nil {
		return "", err
	}
	return v, nil
}

// TopRange bounds the toplist aggregation window. Upstream only consults
// it when sorting by toplist; outside that it is passed through untouched.
type TopRange string

const (
	TopRangeOneDay      TopRange = "1d"
	TopRangeThreeDays   TopRange = "3d"
	TopRangeOneWeek     TopRange = "1w"
	TopRangeOneMonth    TopRange = "1M"
	TopRangeThreeMonths TopRange = "3M"
	TopRangeSixMonths   TopRange = "6M"
	TopRangeOneYear     TopRange = "1y"
)

func (t TopRange) validate() error {
	switch t {
	case TopRangeOneDay, TopRangeThreeDays, TopRangeOneWeek, TopRangeOneMonth,
		TopRangeThreeMonths, TopRangeSixMonths, TopRangeOneYear:
		return nil
	}
	return &ValidationError{
		Field:  "toprange",
		Reason: fmt.Sprintf("unknown value %q (valid: 1d, 3d, 1w, 1M, 3M, 6M, 1y)", string(t)),
	}
}

// ParseTopRange maps a raw tag like "1M" onto its TopRange value. Tags are
// case sensitive upstream: month ranges use an uppercase M.
func ParseTopRange(s string) (TopRange, error) {
	v := TopRange(strings.TrimSpace(s))
	if err := v.validate(); err != nil {
		return "", err
	}
	return v, nil
}

// Color restricts results to wallpapers featuring one of the 29 palette
// colors upstream indexes. Values are bare lowercase hex triplets.
type Color string

// Color names follow chir.ag's name-that-color, matching the upstream palette.
const (
	ColorLonestar         Color = "660000"
	ColorRedBerry         Color = "990000"
	ColorGuardsmanRed     Color = "cc0000"
	ColorPersianRed       Color = "cc3333"
	ColorFrenchRose       Color = "ea4c88"
	ColorPlum             Color = "993399"
	ColorRoyalPurple      Color = "663399"
	ColorSapphire         Color = "333399"
	ColorScienceBlue      Color = "0066cc"
	ColorPacificBlue      Color = "0099cc"
	ColorDowny            Color = "66cccc"
	ColorAtlantis         Color = "77cc33"
	ColorLimeade          Color = "669900"
	ColorVerdunGreen      Color = "336600"
	ColorVerdunGreen2     Color = "666600"
	ColorOlive            Color = "999900"
	ColorEarlsGreen       Color = "cccc33"
	ColorYellow           Color = "ffff00"
	ColorSunglow          Color = "ffcc33"
	ColorOrangePeel       Color = "ff9900"
	ColorBlazeOrange      Color = "ff6600"
	ColorTuscany          Color = "cc6633"
	ColorPottersClay      Color = "996633"
	ColorNutmegWoodFinish Color = "663300"
	ColorBlack            Color = "000000"
	ColorDustyGray        Color = "999999"
	ColorSilver           Color = "cccccc"
	ColorWhite            Color = "ffffff"
	ColorGunPowder        Color = "424153"
)

var palette = map[Color]struct{}{
	ColorLonestar: {}, ColorRedBerry: {}, ColorGuardsmanRed: {}, ColorPersianRed: {},
	ColorFrenchRose: {}, ColorPlum: {}, ColorRoyalPurple: {}, ColorSapphire: {},
	ColorScienceBlue: {}, ColorPacificBlue: {}, ColorDowny: {}, ColorAtlantis: {},
	ColorLimeade: {}, ColorVerdunGreen: {}, ColorVerdunGreen2: {}, ColorOlive: {},
	ColorEarlsGreen: {}, ColorYellow: {}, ColorSunglow: {}, ColorOrangePeel: {},
	ColorBlazeOrange: {}, ColorTuscany: {}, ColorPottersClay: {}, ColorNutmegWoodFinish: {},
	ColorBlack: {}, ColorDustyGray: {}, ColorSilver: {}, ColorWhite: {}, ColorGunPowder: {},
}

func (c Color) validate() error {
	if _, ok := palette[c]; !ok {
		return &ValidationError{
			Field:  "color",
			Reason: fmt.Sprintf("%q is not in the upstream palette", string(c)),
		}
	}
	return nil
}

// ParseColor accepts a palette hex triplet, with or without a leading '#'.
func ParseColor(s string) (Color, error) {
	c := Color(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "#")))
	if err := c.validate(); err != nil {
		return "", err
	}
	return c, nil
}
