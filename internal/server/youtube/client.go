// Package youtube is a small client for the search endpoint of the YouTube
// Data API v3. It maps provider items onto models.SearchResult.
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/dmitrijs2005/edutube/internal/common"
	"github.com/dmitrijs2005/edutube/internal/logging"
	"github.com/dmitrijs2005/edutube/internal/server/models"
)

const (
	// Provider names the upstream in errors and logs.
	Provider = "youtube"

	// DefaultBaseURL is the public Data API v3 root.
	DefaultBaseURL = "https://www.googleapis.com/youtube/v3"

	// KeyPlaceholder is the sample key shipped in example configs.
	KeyPlaceholder = "YOUR_API_KEY_HERE"

	// MaxResultsLimit is the largest page the provider returns.
	MaxResultsLimit = 50

	publishedLayout = "1/2/2006"
	videoIDKind     = "youtube#video"
	maxErrorBody    = 64 << 10
)

// Query describes one search request.
type Query struct {
	Text       string
	Kind       models.Kind
	MaxResults int
}

// Options configures a Client. Zero values fall back to sensible defaults;
// a RateLimit of 0 disables outbound limiting.
type Options struct {
	APIKey     string
	BaseURL    string
	Timeout    time.Duration
	RateLimit  float64
	HTTPClient *http.Client
	Logger     logging.Logger
}

type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	logger  logging.Logger
}

func NewClient(opts Options) *Client {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: opts.Timeout}
	}

	var limiter *rate.Limiter
	if opts.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), 1)
	}

	var logger logging.Logger = logging.Nop{}
	if opts.Logger != nil {
		logger = opts.Logger.With("module", "youtube")
	}

	return &Client{
		apiKey:  opts.APIKey,
		baseURL: baseURL,
		http:    hc,
		limiter: limiter,
		logger:  logger,
	}
}

// Configured reports whether a usable API key is set.
func (c *Client) Configured() bool {
	key := strings.TrimSpace(c.apiKey)
	return key != "" && key != KeyPlaceholder
}

// Search runs one provider query and returns the results in provider order.
//
// A missing key yields common.ErrConfiguration without touching the network.
// Any non-success answer yields a *common.UpstreamError. There are no retries.
func (c *Client) Search(ctx context.Context, q Query) ([]models.SearchResult, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("%w: YouTube API key is not set", common.ErrConfiguration)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchURL(q), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error(ctx, "youtube request failed", "error", err)
		return nil, common.NewUpstreamError(Provider, 0, "Could not reach the search provider", err)
	}
	defer resp.Body.Close()

	c.logger.Debug(ctx, "youtube search",
		"status", resp.StatusCode, "kind", q.Kind, "duration", time.Since(started))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		uerr := upstreamFromResponse(resp)
		c.logger.Warn(ctx, "youtube search rejected", "detail", uerr.Detail())
		return nil, uerr
	}

	var page searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, common.NewUpstreamError(Provider, resp.StatusCode, "Invalid response from the search provider", err)
	}

	return page.results(), nil
}

func (c *Client) searchURL(q Query) string {
	kind := q.Kind
	if kind == "" {
		kind = models.KindVideo
	}

	n := q.MaxResults
	if n <= 0 || n > MaxResultsLimit {
		n = MaxResultsLimit
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("maxResults", strconv.Itoa(n))
	params.Set("q", q.Text)
	params.Set("type", string(kind))
	params.Set("key", c.apiKey)

	return c.baseURL + "/search?" + params.Encode()
}

// upstreamFromResponse prefers the provider's error.message and falls back
// to a status-only message when the body can't be decoded.
func upstreamFromResponse(resp *http.Response) *common.UpstreamError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var e errorResponse
	if err := json.Unmarshal(body, &e); err == nil && e.Error.Message != "" {
		return common.NewUpstreamError(Provider, resp.StatusCode, e.Error.Message, nil)
	}

	return common.NewUpstreamError(Provider, resp.StatusCode,
		fmt.Sprintf("HTTP error! status: %d", resp.StatusCode), nil)
}
