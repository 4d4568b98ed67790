// ABOUTME: HTTP client for the SportRadar tennis trial API.
// ABOUTME: Retries with backoff on rate limits; optionally serves from cache.
package sportradar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultBaseURL is the SportRadar tennis trial API root.
const DefaultBaseURL = "https://api.sportradar.com/tennis/trial/v2/en"

// Feed endpoint paths, relative to the base URL.
const (
	PathCompetitions    = "competitions.json"
	PathComplexes       = "complexes.json"
	PathDoublesRankings = "doubles_competitor_rankings.json"
)

const maxRetries = 5

// Client fetches the SportRadar tennis feeds.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	cache   *Cache
	log     *logrus.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API root (used by tests).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithCache attaches a response cache.
func WithCache(cache *Cache) Option {
	return func(c *Client) { c.cache = cache }
}

// WithLogger sets the logger.
func WithLogger(log *logrus.Logger) Option {
	return func(c *Client) { c.log = log }
}

// NewClient creates a client for the given API key.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     logrus.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Competitions fetches the competitions feed (categories included).
func (c *Client) Competitions(ctx context.Context) (*CompetitionsResponse, error) {
	var resp CompetitionsResponse
	if err := c.getJSON(ctx, PathCompetitions, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Complexes fetches the complexes feed (venues included).
func (c *Client) Complexes(ctx context.Context) (*ComplexesResponse, error) {
	var resp ComplexesResponse
	if err := c.getJSON(ctx, PathComplexes, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DoublesRankings fetches the doubles competitor rankings feed.
func (c *Client) DoublesRankings(ctx context.Context) (*RankingsResponse, error) {
	var resp RankingsResponse
	if err := c.getJSON(ctx, PathDoublesRankings, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	body, err := c.get(ctx, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// get fetches one endpoint with retry/backoff. Rate-limit (429) and
// unavailable (503) responses back off (attempt+1)*5s; transport errors
// back off (attempt+1)*2s. Other non-200 statuses fail immediately.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	if c.cache != nil {
		if body, ok := c.cache.Get(path); ok {
			c.log.WithField("path", path).Debug("cache hit")
			return body, nil
		}
	}

	reqURL := fmt.Sprintf("%s/%s?api_key=%s", c.baseURL, path, url.QueryEscape(c.apiKey))

	for attempt := 1; attempt <= maxRetries; attempt++ {
		c.log.WithFields(logrus.Fields{"path": path, "attempt": attempt}).Info("GET")

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			c.log.WithError(err).Warn("request failed")
			if err := sleepCtx(ctx, time.Duration(attempt)*2*time.Second); err != nil {
				return nil, err
			}
			continue
		}

		body, readErr := io.ReadAll(resp.Body)
		_ = resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK:
			if readErr != nil {
				return nil, fmt.Errorf("read response: %w", readErr)
			}
			if c.cache != nil {
				if err := c.cache.Set(path, body); err != nil {
					c.log.WithError(err).Warn("cache write failed")
				}
			}
			return body, nil

		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode == http.StatusServiceUnavailable:
			wait := time.Duration(attempt) * 5 * time.Second
			c.log.WithFields(logrus.Fields{"status": resp.StatusCode, "wait": wait}).
				Warn("rate-limited or unavailable, backing off")
			if err := sleepCtx(ctx, wait); err != nil {
				return nil, err
			}

		default:
			return nil, fmt.Errorf("GET %s: unexpected status %d", path, resp.StatusCode)
		}
	}

	return nil, fmt.Errorf("max retries exceeded for %s", path)
}

// sleepCtx sleeps for d unless the context is cancelled first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
