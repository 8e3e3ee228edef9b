package scraper

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cenkalti/backoff/v4"
	"github.com/pfrederiksen/nfl-cap-tracker/internal/capdata"
	"github.com/rs/zerolog"
)

const (
	DefaultBaseURL = "https://www.spotrac.com/nfl/"
	UserAgent      = "nfl-cap-tracker/1.0 (github.com/pfrederiksen/nfl-cap-tracker)"
	DefaultTimeout = 30 * time.Second
)

// Config holds the scraper's tunables.
type Config struct {
	BaseURL    string
	Season     int
	Timeout    time.Duration
	MaxRetries uint64
}

// Client handles fetching and parsing team cap pages and the team directory.
type Client struct {
	client     *http.Client
	baseURL    string
	season     int
	maxRetries uint64
	log        zerolog.Logger
}

// New creates a new Client. Zero-valued config fields fall back to the
// package defaults.
func New(cfg Config, log zerolog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Client{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:    cfg.BaseURL,
		season:     cfg.Season,
		maxRetries: cfg.MaxRetries,
		log:        log,
	}
}

// fetchDocument retrieves a URL and parses it into a goquery document.
// Transient failures (transport errors, 5xx, 429) are retried with
// exponential backoff up to maxRetries; everything else fails immediately.
// The returned error is always a *capdata.FetchError.
func (c *Client) fetchDocument(ctx context.Context, url string) (*goquery.Document, error) {
	var doc *goquery.Document

	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("creating request: %w", err))
		}
		req.Header.Set("User-Agent", UserAgent)

		resp, err := c.client.Do(req)
		if err != nil {
			return fmt.Errorf("fetching page: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			err := fmt.Errorf("unexpected status code: %d", resp.StatusCode)
			if resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests {
				return err
			}
			return backoff.Permanent(err)
		}

		d, err := goquery.NewDocumentFromReader(resp.Body)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("parsing HTML: %w", err))
		}
		doc = d
		return nil
	}

	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.maxRetries), ctx)
	if err := backoff.Retry(op, bo); err != nil {
		return nil, &capdata.FetchError{URL: url, Err: err}
	}
	return doc, nil
}
