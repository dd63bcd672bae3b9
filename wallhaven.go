package wallhaven

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/quic-go/quic-go/http3"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL     = "https://wallhaven.cc/api/v1"
	defaultUserAgent   = "wallhaven-go/1"
	defaultHTTPTimeout = 30 * time.Second
)

// DefaultRateLimit is the request budget applied when Config.RateLimit is
// zero. Upstream publishes 45 requests per minute; measured behavior makes
// 12 per minute the safe sustained rate.
var DefaultRateLimit = RateLimit{Requests: 12, Window: time.Minute}

// RateLimit caps outbound requests per rolling window.
type RateLimit struct {
	Requests int
	Window   time.Duration
}

// Config describes the client configuration. The zero value is usable for
// unauthenticated browsing of public endpoints.
type Config struct {
	// APIKey authenticates requests. Settings requires it; search honors
	// the account's filters when it is present.
	APIKey string
	// BaseURL defaults to the public v1 endpoint.
	BaseURL string
	// UserAgent defaults to "wallhaven-go/1".
	UserAgent string
	// HTTP3 swaps the default transport for HTTP/3. Ignored when
	// HTTPClient is supplied.
	HTTP3 bool
	// Timeout bounds each request end to end. Zero means 30s. Ignored
	// when HTTPClient is supplied.
	Timeout time.Duration
	// HTTPClient overrides the default client entirely.
	HTTPClient *http.Client
	// RateLimit overrides DefaultRateLimit. Zero fields keep the default.
	RateLimit RateLimit
}

// Client talks to the Wallhaven API. Each client owns one rate limiter
// shared by all of its methods; independent clients never share budgets.
type Client struct {
	apiKey    string
	userAgent string
	baseURL   *url.URL
	http      *http.Client
	limiter   *rate.Limiter
}

// New creates a Client from the supplied configuration.
func New(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = defaultBaseURL
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("wallhaven: parse base url: %w", err)
	}

	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	limit := cfg.RateLimit
	if limit.Requests == 0 {
		limit.Requests = DefaultRateLimit.Requests
	}
	if limit.Window == 0 {
		limit.Window = DefaultRateLimit.Window
	}
	if limit.Requests < 0 {
		return nil, errors.New("wallhaven: rate limit requests must be positive")
	}
	if limit.Window < 0 {
		return nil, errors.New("wallhaven: rate limit window must be positive")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultHTTPTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
		if cfg.HTTP3 {
			httpClient.Transport = &http3.RoundTripper{}
		}
	}

	return &Client{
		apiKey:    strings.TrimSpace(cfg.APIKey),
		userAgent: userAgent,
		baseURL:   baseURL,
		http:      httpClient,
		limiter:   rate.NewLimiter(rate.Every(limit.Window/time.Duration(limit.Requests)), limit.Requests),
	}, nil
}

// Wallpaper fetches one wallpaper by its alphanumeric ID.
func (c *Client) Wallpaper(ctx context.Context, id string) (*Wallpaper, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, &ValidationError{Field: "id", Reason: "must not be empty"}
	}
	var payload wallpaperEnvelope
	if err := c.get(ctx, []string{"w", id}, nil, &payload); err != nil {
		return nil, err
	}
	return &payload.Data, nil
}

// Search runs a filtered wallpaper search. The zero query is valid and
// returns upstream's default listing.
func (c *Client) Search(ctx context.Context, q SearchQuery) (*SearchResult, error) {
	params, err := q.Values()
	if err != nil {
		return nil, err
	}
	var payload listEnvelope
	if err := c.get(ctx, []string{"search"}, params, &payload); err != nil {
		return nil, err
	}
	return &SearchResult{Wallpapers: payload.Data, Meta: payload.Meta}, nil
}

// Tag fetches tag metadata by numeric ID.
func (c *Client) Tag(ctx context.Context, id int64) (*Tag, error) {
	if id <= 0 {
		return nil, &ValidationError{Field: "id", Reason: "must be positive"}
	}
	var payload tagEnvelope
	if err := c.get(ctx, []string{"tag", strconv.FormatInt(id, 10)}, nil, &payload); err != nil {
		return nil, err
	}
	return &payload.Data, nil
}

// Settings fetches the authenticated account's browsing settings. Without
// a valid API key upstream answers 401, surfaced as *AuthenticationError.
func (c *Client) Settings(ctx context.Context) (*UserSettings, error) {
	var payload settingsEnvelope
	if err := c.get(ctx, []string{"settings"}, nil, &payload); err != nil {
		return nil, err
	}
	return &payload.Data, nil
}

// CollectionsRequest selects whose collections to fetch. With a zero
// CollectionID the result lists Username's collections (or, with Username
// also empty, the API key owner's). A CollectionID narrows the result to
// that collection's wallpaper page and requires Username.
type CollectionsRequest struct {
	Username     string
	CollectionID int64
	Purity       Purity
	// Page defaults to 1 and is always sent.
	Page int
}

// Collections fetches collection listings or a single collection's
// wallpaper page, depending on the request shape.
func (c *Client) Collections(ctx context.Context, req CollectionsRequest) (*CollectionsResult, error) {
	username := strings.TrimSpace(req.Username)
	if req.CollectionID < 0 {
		return nil, &ValidationError{Field: "collection id", Reason: "must be positive"}
	}
	if req.CollectionID > 0 && username == "" {
		return nil, &ValidationError{Field: "username", Reason: "required when a collection id is given"}
	}
	if req.Page < 0 {
		return nil, &ValidationError{Field: "page", Reason: "must not be negative"}
	}
	page := req.Page
	if page == 0 {
		page = 1
	}

	segments := []string{"collections"}
	if username != "" {
		segments = append(segments, username)
	}
	if req.CollectionID > 0 {
		segments = append(segments, strconv.FormatInt(req.CollectionID, 10))
	}

	var params Params
	if !req.Purity.IsZero() {
		params = append(params, Param{"purity", req.Purity.mask()})
	}
	params = append(params, Param{"page", strconv.Itoa(page)})

	if req.CollectionID > 0 {
		var payload listEnvelope
		if err := c.get(ctx, segments, params, &payload); err != nil {
			return nil, err
		}
		return &CollectionsResult{Wallpapers: payload.Data, Meta: payload.Meta}, nil
	}

	var payload collectionsEnvelope
	if err := c.get(ctx, segments, params, &payload); err != nil {
		return nil, err
	}
	return &CollectionsResult{Collections: payload.Data}, nil
}

// UploadsOptions tunes UserUploads. A zero Purity means sfw+sketchy; a
// zero Page means 1.
type UploadsOptions struct {
	Purity Purity
	Page   int
}

// UserUploads lists a user's uploaded wallpapers. It is a convenience
// wrapper over Search with q set to "@"+username; unless asked otherwise
// it excludes NSFW results, matching upstream's uploads view.
func (c *Client) UserUploads(ctx context.Context, username string, opts UploadsOptions) (*SearchResult, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, &ValidationError{Field: "username", Reason: "must not be empty"}
	}
	purity := opts.Purity
	if purity.IsZero() {
		purity = Purity{SFW: true, Sketchy: true}
	}
	page := opts.Page
	if page == 0 {
		page = 1
	}
	return c.Search(ctx, SearchQuery{
		Query:  "@" + username,
		Purity: purity,
		Page:   page,
	})
}

// get performs one rate-limited GET against the joined path segments and
// decodes the JSON body into out. Admission is FIFO: callers beyond the
// window budget block until a slot frees or ctx is done.
func (c *Client) get(ctx context.Context, segments []string, params Params, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("wallhaven: acquire request slot: %w", err)
	}

	endpoint := c.baseURL.JoinPath(segments...)
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("wallhaven: build request: %w", err)
	}
	c.applyHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("wallhaven: request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("wallhaven: read response: %w", err)
		}
		if err := json.Unmarshal(body, out); err != nil {
			return &DecodeError{Body: bodySnippet(body), err: err}
		}
		return nil
	case http.StatusUnauthorized:
		return &AuthenticationError{}
	case http.StatusTooManyRequests:
		return &RateLimitedError{RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"))}
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &RequestError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       bodySnippet(body),
		}
	}
}

func (c *Client) applyHeaders(req *http.Request) {
	if c.apiKey != "" {
		req.Header.Set("X-API-key", c.apiKey)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
}

type wallpaperEnvelope struct {
	Data Wallpaper `json:"data"`
}

type tagEnvelope struct {
	Data Tag `json:"data"`
}

type settingsEnvelope struct {
	Data UserSettings `json:"data"`
}

type listEnvelope struct {
	Data []Wallpaper `json:"data"`
	Meta *Meta       `json:"meta"`
}

type collectionsEnvelope struct {
	Data []Collection `json:"data"`
}
