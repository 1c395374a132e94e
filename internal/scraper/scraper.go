package scraper

import (
	"context"
	"crypto/tls"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pfrederiksen/fbdb-scores/internal/config"
	"github.com/pfrederiksen/fbdb-scores/internal/logger"
)

const (
	GamesPath = "/games/index.html"
	League    = "NFL"
)

// Source returns the raw games page for a season
type Source interface {
	Fetch(ctx context.Context, year int) (string, error)
}

// Client fetches season pages from footballdb.com
type Client struct {
	http    *resty.Client
	baseURL string
}

// NewClient creates a Client from cfg. A nil cfg uses config.Default().
func NewClient(cfg *config.Config) *Client {
	if cfg == nil {
		cfg = config.Default()
	}

	client := resty.New()
	client.SetBaseURL(cfg.BaseURL)
	client.SetHeader("User-Agent", cfg.UserAgent)
	client.SetHeaders(cfg.Headers)
	client.SetTimeout(cfg.Timeout)
	if cfg.BypassEnabled() {
		client.SetTLSClientConfig(browserTLSConfig())
	}

	return &Client{
		http:    client,
		baseURL: cfg.BaseURL,
	}
}

// browserTLSConfig offers the curves and cipher suites of a desktop browser so
// Cloudflare's handshake fingerprint check lets the request through. No headers
// are added.
func browserTLSConfig() *tls.Config {
	return &tls.Config{
		MinVersion: tls.VersionTLS12,
		CurvePreferences: []tls.CurveID{
			tls.CurveP256,
			tls.CurveP384,
			tls.CurveP521,
			tls.X25519,
		},
		CipherSuites: []uint16{
			tls.TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256,
			tls.TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256,
			tls.TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384,
			tls.TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384,
			tls.TLS_ECDHE_ECDSA_WITH_CHACHA20_POLY1305,
			tls.TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305,
		},
	}
}

// SeasonURL returns the games index URL for a season
func (c *Client) SeasonURL(year int) string {
	return fmt.Sprintf("%s%s?lg=%s&yr=%d", c.baseURL, GamesPath, League, year)
}

// Fetch performs one GET for the season and returns the response body.
// Transport failures and non-2xx responses are returned as errors.
func (c *Client) Fetch(ctx context.Context, year int) (string, error) {
	logger.Debug("Fetching season page", logger.Fields{
		"year": year,
		"url":  c.SeasonURL(year),
	})

	logger.IncrCounter("fetch.requests")
	start := time.Now()
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"lg": League,
			"yr": strconv.Itoa(year),
		}).
		Get(GamesPath)
	logger.RecordTiming("fetch", time.Since(start))
	if err != nil {
		return "", fmt.Errorf("fetching page: %w", err)
	}

	if !resp.IsSuccess() {
		return "", &StatusError{StatusCode: resp.StatusCode(), URL: c.SeasonURL(year)}
	}

	body := resp.String()
	logger.Debug("Fetched season page", logger.Fields{
		"year":   year,
		"status": resp.StatusCode(),
		"bytes":  len(body),
	})

	return body, nil
}

// FileSource reads a previously saved season page from disk. The year is ignored.
type FileSource struct {
	Path string
}

// Fetch returns the file contents
func (f FileSource) Fetch(_ context.Context, year int) (string, error) {
	logger.Debug("Reading saved season page", logger.Fields{
		"year": year,
		"path": f.Path,
	})

	data, err := os.ReadFile(f.Path)
	if err != nil {
		return "", fmt.Errorf("reading html file: %w", err)
	}
	return string(data), nil
}
