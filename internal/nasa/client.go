// Package nasa is the HTTP transport for the NASA Image and Video Library API:
// the search call that produces result items and the raw byte fetch used for
// image assets. Every failure it returns is classifiable by package failure.
package nasa

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/buger/jsonparser"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/ytget/nasa-images/internal/failure"
	"github.com/ytget/nasa-images/internal/logger"
	"github.com/ytget/nasa-images/internal/model"
)

// API defaults
const (
	DefaultBaseURL   = "https://images-api.nasa.gov/search"
	DefaultMediaType = "image"
	DefaultTimeout   = 30 * time.Second

	// DefaultRequestsPerSecond paces outgoing requests; 0 disables pacing
	DefaultRequestsPerSecond = 8

	QueryParam     = "q"
	MediaTypeParam = "media_type"
	UserAgent      = "nasa-images/1.0"

	// MaxBodyBytes bounds any response body read into memory
	MaxBodyBytes = 64 << 20
)

// Client talks to the search endpoint and downloads assets
type Client struct {
	baseURL    string
	mediaType  string
	httpClient *http.Client
	limiter    *rate.Limiter
	maxBody    int64
	logger     *zap.SugaredLogger
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL overrides the search endpoint
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithMediaType overrides the media_type filter; an empty value drops the filter
func WithMediaType(mediaType string) Option {
	return func(c *Client) {
		c.mediaType = mediaType
	}
}

// WithTimeout sets the per-request time budget
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithRateLimit sets the maximum request rate; rps <= 0 means unlimited
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// WithMaxBodyBytes bounds the size of a response body
func WithMaxBodyBytes(n int64) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxBody = n
		}
	}
}

// WithLogger sets the diagnostic logger
func WithLogger(l *zap.SugaredLogger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient creates a new API client
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		mediaType: DefaultMediaType,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRequestsPerSecond), 1),
		maxBody: MaxBodyBytes,
		logger:  logger.Named("nasa"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured search endpoint
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Search runs a query and returns collection.items in response order.
// A response without a collection or items yields an empty slice.
func (c *Client) Search(ctx context.Context, query string) ([]model.ResultItem, error) {
	searchURL, err := c.searchURL(query)
	if err != nil {
		return nil, err
	}

	c.logger.Debugw("Search request", logger.FieldQuery, query, logger.FieldURL, searchURL)

	body, err := c.get(ctx, searchURL)
	if err != nil {
		return nil, err
	}

	items, err := parseItems(body)
	if err != nil {
		return nil, err
	}

	c.logger.Debugw("Search response", logger.FieldQuery, query, logger.FieldCount, len(items))
	return items, nil
}

// FetchBytes downloads the resource at rawURL in one request
func (c *Client) FetchBytes(ctx context.Context, rawURL string) ([]byte, error) {
	return c.get(ctx, rawURL)
}

// searchURL builds the endpoint URL with q and media_type, keeping any query
// parameters already present in the base URL
func (c *Client) searchURL(query string) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", failure.MarkRequest(errors.Wrapf(err, "invalid search endpoint %q", c.baseURL))
	}

	params := u.Query()
	params.Set(QueryParam, query)
	if c.mediaType != "" {
		params.Set(MediaTypeParam, c.mediaType)
	}
	u.RawQuery = params.Encode()
	return u.String(), nil
}

// get performs a paced GET and returns the body of a 2xx response
func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, failure.MarkRequest(errors.Wrap(err, "request pacing"))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, failure.MarkRequest(errors.Wrap(err, "failed to create request"))
	}
	req.Header.Set("User-Agent", UserAgent)

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, failure.MarkRequest(errors.Wrap(err, "request failed"))
	}
	defer resp.Body.Close()

	c.logger.Debugw("Response received",
		logger.FieldURL, rawURL,
		logger.FieldStatus, resp.StatusCode,
		logger.FieldDurationMS, time.Since(started).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little so the connection can be reused
		_, _ = io.CopyN(io.Discard, resp.Body, 4<<10)
		return nil, failure.MarkRequest(failure.NewStatusError(resp.StatusCode, rawURL))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, failure.MarkRequest(errors.Wrap(err, "failed to read response body"))
	}
	if int64(len(body)) > c.maxBody {
		return nil, failure.MarkRequest(errors.Newf("response body exceeds %d bytes", c.maxBody))
	}
	return body, nil
}

// parseItems walks collection.items without imposing a schema on the items themselves
func parseItems(body []byte) ([]model.ResultItem, error) {
	_, dataType, _, err := jsonparser.Get(body)
	if err != nil || dataType != jsonparser.Object {
		return nil, failure.MarkRequest(errors.New("search response is not a JSON object"))
	}

	_, dataType, _, err = jsonparser.Get(body, "collection", "items")
	if errors.Is(err, jsonparser.KeyPathNotFoundError) || (err == nil && dataType != jsonparser.Array) {
		return []model.ResultItem{}, nil
	}
	if err != nil {
		return nil, failure.MarkRequest(errors.Wrap(err, "failed to parse search response"))
	}

	items := make([]model.ResultItem, 0)
	var itemErr error
	_, err = jsonparser.ArrayEach(body, func(value []byte, _ jsonparser.ValueType, _ int, err error) {
		if err != nil {
			if itemErr == nil {
				itemErr = err
			}
			return
		}
		items = append(items, model.ResultItem{Raw: value})
	}, "collection", "items")
	if err == nil {
		err = itemErr
	}
	if err != nil {
		return nil, failure.MarkRequest(errors.Wrap(err, "failed to parse search response"))
	}
	return items, nil
}
