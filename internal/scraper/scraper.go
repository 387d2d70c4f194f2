package scraper

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pfrederiksen/mlb-gamedata/internal/gameday"
	"github.com/pfrederiksen/mlb-gamedata/internal/logger"
)

// Config controls how the scraper reaches the grid endpoint.
type Config struct {
	BaseURL   string
	UserAgent string
	// Timeout of 0 keeps the HTTP client's default (no deadline).
	Timeout    time.Duration
	StripMode  gameday.StripMode
	HTTPClient *http.Client
}

// Scraper handles fetching and collecting grid games
type Scraper struct {
	client    *resty.Client
	baseURL   string
	userAgent string
	stripMode gameday.StripMode
}

// New creates a new Scraper instance
func New(cfg Config) *Scraper {
	var client *resty.Client
	if cfg.HTTPClient != nil {
		client = resty.NewWithClient(cfg.HTTPClient)
	} else {
		client = resty.New()
	}
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}
	client.SetRetryCount(0)
	client.SetLogger(restyLogger{})

	return &Scraper{
		client:    client,
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		stripMode: cfg.StripMode,
	}
}

// URLFor returns the grid URL this scraper requests for date.
func (s *Scraper) URLFor(date time.Time) string {
	return gameday.GridURL(s.baseURL, date)
}

// Fetch performs a single GET and returns the full response body.
func (s *Scraper) Fetch(ctx context.Context, url string) ([]byte, error) {
	req := s.client.R().SetContext(ctx)
	if s.userAgent != "" {
		req.SetHeader("User-Agent", s.userAgent)
	}

	resp, err := req.Get(url)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, &FetchError{URL: url, StatusCode: resp.StatusCode()}
	}

	return resp.Body(), nil
}

// FetchGameDay fetches the grid for date and returns its trimmed game records.
func (s *Scraper) FetchGameDay(ctx context.Context, date time.Time) (*gameday.GameDay, error) {
	url := s.URLFor(date)
	logger.Debug("Fetching grid", logger.Fields{"url": url})

	start := time.Now()
	body, err := s.Fetch(ctx, url)
	logger.RecordTiming("grid.fetch", time.Since(start))
	if err != nil {
		return nil, err
	}

	records, err := gameday.Collect(body)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", url, err)
	}
	gameday.StripUnknownFields(records, s.stripMode)

	logger.AddCounter("games.collected", int64(len(records)))
	logger.Info("Fetched grid", logger.Fields{
		"url":        url,
		"games":      len(records),
		"bytes":      len(body),
		"strip_mode": s.stripMode.String(),
	})

	return gameday.NewGameDay(date, url, records), nil
}

// restyLogger routes resty's internal messages to the package logger.
type restyLogger struct{}

func (restyLogger) Errorf(format string, v ...interface{}) {
	logger.Error("http client", logger.Fields{"detail": fmt.Sprintf(format, v...)}, nil)
}

func (restyLogger) Warnf(format string, v ...interface{}) {
	logger.Warn("http client", logger.Fields{"detail": fmt.Sprintf(format, v...)})
}

func (restyLogger) Debugf(format string, v ...interface{}) {
	logger.Debug("http client", logger.Fields{"detail": fmt.Sprintf(format, v...)})
}
