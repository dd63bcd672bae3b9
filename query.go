package wallhaven

import (
	"net/url"
	"strconv"
	"strings"
)

// listSeparator joins resolution and ratio lists. Upstream expects the
// comma already percent-encoded, so it must not be escaped again.
const listSeparator = "%2C"

// SearchQuery aggregates every optional search filter. The zero value is
// valid and asks upstream for its default listing. Fields encode in
// declaration order; unset fields are omitted from the wire entirely.
type SearchQuery struct {
	// Query is the free-text q parameter: keywords, "@username" for
	// uploads, "id:N" for tag searches.
	Query string

	Categories Category
	Purity     Purity
	Sorting    Sorting
	Order      Order
	TopRange   TopRange

	// AtLeast sets the minimum acceptable resolution.
	AtLeast Resolution
	// Resolutions restricts results to exact resolutions.
	Resolutions []Resolution
	// Ratios restricts results to exact aspect ratios.
	Ratios []Ratio

	Color Color
	Page  int

	// Seed pins pagination under random sorting. Upstream documents
	// [a-zA-Z0-9]{6} but appears to ignore the value; it is sent without
	// validation.
	Seed string
}

// Param is one wire query parameter. Value is final wire text and is not
// escaped again when the query string is assembled.
type Param struct {
	Name  string
	Value string
}

// Params is an ordered query parameter list.
type Params []Param

// Get returns the value of the first parameter with the given name, or "".
func (p Params) Get(name string) string {
	for _, param := range p {
		if param.Name == name {
			return param.Value
		}
	}
	return ""
}

// Encode assembles the final query string. Values pass through verbatim:
// list parameters carry pre-encoded %2C separators.
func (p Params) Encode() string {
	var b strings.Builder
	for i, param := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(param.Name)
		b.WriteByte('=')
		b.WriteString(param.Value)
	}
	return b.String()
}

// Values validates the query and renders it as ordered wire parameters.
// It performs no I/O. A zero query yields zero parameters.
func (q SearchQuery) Values() (Params, error) {
	var params Params

	if text := strings.TrimSpace(q.Query); text != "" {
		params = append(params, Param{"q", url.QueryEscape(text)})
	}
	if !q.Categories.IsZero() {
		params = append(params, Param{"categories", q.Categories.mask()})
	}
	if !q.Purity.IsZero() {
		params = append(params, Param{"purity", q.Purity.mask()})
	}
	if q.Sorting != "" {
		if err := q.Sorting.validate(); err != nil {
			return nil, err
		}
		params = append(params, Param{"sorting", string(q.Sorting)})
	}
	if q.Order != "" {
		if err := q.Order.validate(); err != nil {
			return nil, err
		}
		params = append(params, Param{"order", string(q.Order)})
	}
	if q.TopRange != "" {
		if err := q.TopRange.validate(); err != nil {
			return nil, err
		}
		params = append(params, Param{"toprange", string(q.TopRange)})
	}
	if !q.AtLeast.IsZero() {
		params = append(params, Param{"atleast", q.AtLeast.String()})
	}
	if len(q.Resolutions) > 0 {
		joined, err := joinResolutions(q.Resolutions)
		if err != nil {
			return nil, err
		}
		params = append(params, Param{"resolutions", joined})
	}
	if len(q.Ratios) > 0 {
		joined, err := joinRatios(q.Ratios)
		if err != nil {
			return nil, err
		}
		params = append(params, Param{"ratios", joined})
	}
	if q.Color != "" {
		if err := q.Color.validate(); err != nil {
			return nil, err
		}
		params = append(params, Param{"colors", string(q.Color)})
	}
	if q.Page < 0 {
		return nil, &ValidationError{Field: "page", Reason: "must not be negative"}
	}
	if q.Page > 0 {
		params = append(params, Param{"page", strconv.Itoa(q.Page)})
	}
	if q.Seed != "" {
		params = append(params, Param{"seed", url.QueryEscape(q.Seed)})
	}

	return params, nil
}

func joinResolutions(list []Resolution) (string, error) {
	parts := make([]string, 0, len(list))
	for _, r := range list {
		if r.IsZero() {
			return "", &ValidationError{Field: "resolutions", Reason: "entries must be built with NewResolution"}
		}
		parts = append(parts, r.String())
	}
	return strings.Join(parts, listSeparator), nil
}

func joinRatios(list []Ratio) (string, error) {
	parts := make([]string, 0, len(list))
	for _, r := range list {
		if r.IsZero() {
			return "", &ValidationError{Field: "ratios", Reason: "entries must be built with NewRatio"}
		}
		parts = append(parts, r.String())
	}
	return strings.Join(parts, listSeparator), nil
}
