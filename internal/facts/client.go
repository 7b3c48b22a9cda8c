package facts

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/rshade/factsview/internal/logging"
)

// Query parameter names understood by the API. They must not change.
const (
	ParamPage    = "page"
	ParamPerPage = "per-page"
	ParamQuery   = "q"
)

// DefaultTimeout bounds a single API request.
const DefaultTimeout = 10 * time.Second

// requestIDHeader carries the per-request ID so server logs can be correlated.
const requestIDHeader = "X-Request-ID"

// Client talks to the records and autocomplete endpoints.
type Client struct {
	RecordsURL      string
	AutocompleteURL string
	HTTPClient      *http.Client
	UserAgent       string

	limiter *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.HTTPClient = hc
	}
}

// WithTimeout sets the per-request timeout on the underlying HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.HTTPClient.Timeout = d
		}
	}
}

// WithRateLimit paces outgoing requests to rps per second. Requests over the
// limit wait for a token; none are dropped. A non-positive rps disables pacing.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.UserAgent = ua
	}
}

// NewClient creates a client for the given endpoint base URLs.
func NewClient(recordsURL, autocompleteURL string, opts ...Option) *Client {
	c := &Client{
		RecordsURL:      recordsURL,
		AutocompleteURL: autocompleteURL,
		HTTPClient:      &http.Client{Timeout: DefaultTimeout},
		UserAgent:       "factsview",
		limiter:         rate.NewLimiter(rate.Inf, 0),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PageURL builds the records request URL for q. The q parameter is omitted
// when the search text is empty. Page and per-page are sent as given.
func (c *Client) PageURL(q Query) (string, error) {
	u, err := url.Parse(c.RecordsURL)
	if err != nil {
		return "", fmt.Errorf("parsing records url %q: %w", c.RecordsURL, err)
	}

	values := u.Query()
	values.Set(ParamPage, strconv.Itoa(q.Page))
	values.Set(ParamPerPage, strconv.Itoa(q.PerPage))
	if q.Text != "" {
		values.Set(ParamQuery, q.Text)
	}
	u.RawQuery = values.Encode()

	return u.String(), nil
}

// SuggestURL builds the autocomplete request URL for text.
func (c *Client) SuggestURL(text string) (string, error) {
	u, err := url.Parse(c.AutocompleteURL)
	if err != nil {
		return "", fmt.Errorf("parsing autocomplete url %q: %w", c.AutocompleteURL, err)
	}

	values := u.Query()
	values.Set(ParamQuery, text)
	u.RawQuery = values.Encode()

	return u.String(), nil
}

// FetchPage requests one page of records.
func (c *Client) FetchPage(ctx context.Context, q Query) (*Page, error) {
	target, err := c.PageURL(q)
	if err != nil {
		return nil, err
	}

	var page Page
	if err = c.getJSON(ctx, target, &page); err != nil {
		return nil, err
	}
	if page.Records == nil {
		page.Records = []Record{}
	}
	return &page, nil
}

// Suggest requests autocomplete suggestions for text. An empty text returns
// no suggestions without issuing a request.
func (c *Client) Suggest(ctx context.Context, text string) ([]string, error) {
	if text == "" {
		return nil, nil
	}

	target, err := c.SuggestURL(text)
	if err != nil {
		return nil, err
	}

	var suggestions []string
	if err = c.getJSON(ctx, target, &suggestions); err != nil {
		return nil, err
	}
	return suggestions, nil
}

// getJSON performs a GET against target and decodes the body into out.
func (c *Client) getJSON(ctx context.Context, target string, out any) error {
	logger := logging.ComponentLogger(logging.FromContext(ctx), "facts")
	requestID := logging.NewRequestID()

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: waiting for rate limiter: %w", ErrTransport, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("%w: building request: %w", ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set(requestIDHeader, requestID)

	start := time.Now()
	logger.Debug().Ctx(ctx).
		Str("request_id", requestID).
		Str("url", target).
		Msg("api request started")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &StatusError{URL: target, StatusCode: resp.StatusCode}
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}

	logger.Debug().Ctx(ctx).
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("api request completed")

	return nil
}
