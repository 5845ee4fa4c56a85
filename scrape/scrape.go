// Package scrape fetches pages and reduces them to plain text for
// classification.
package scrape

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	// maxContentLength caps the extracted text. Classification quality
	// plateaus well before this; the cap bounds embedding cost.
	maxContentLength = 5000

	defaultScrapeTimeout = 10 * time.Second

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Scraper extracts the text content of a page.
type Scraper interface {
	// Scrape returns the plain text of the page at url. Fetch or parse
	// failures yield an empty string, never an error: an unscrapable page
	// is dropped from the run rather than failing it.
	Scrape(ctx context.Context, url string) string
}

// ScraperFunc adapts a function to the Scraper interface.
type ScraperFunc func(ctx context.Context, url string) string

// Scrape implements Scraper.
func (f ScraperFunc) Scrape(ctx context.Context, url string) string {
	return f(ctx, url)
}

// HTMLScraper fetches pages over HTTP and extracts readable text.
type HTMLScraper struct {
	client *http.Client
	logger *slog.Logger
}

var _ Scraper = (*HTMLScraper)(nil)

// Option configures an HTMLScraper.
type Option func(*HTMLScraper) error

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(s *HTMLScraper) error {
		if client != nil {
			s.client = client
		}
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *HTMLScraper) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewHTMLScraper creates a scraper with a 10 second fetch timeout.
func NewHTMLScraper(opts ...Option) (*HTMLScraper, error) {
	s := &HTMLScraper{
		client: &http.Client{Timeout: defaultScrapeTimeout},
		logger: slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Scrape fetches url and returns its visible text, capped at 5000 characters.
func (s *HTMLScraper) Scrape(ctx context.Context, url string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Debug("error fetching page", "url", url, "err", err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Debug("page fetch returned non-OK status", "url", url, "status", resp.StatusCode)
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		s.logger.Debug("error parsing page", "url", url, "err", err)
		return ""
	}

	doc.Find("script, style").Remove()

	// Collapse all whitespace runs to single spaces.
	text := strings.Join(strings.Fields(doc.Text()), " ")

	// Cap counts characters, not bytes, so the cut never splits a rune.
	if runes := []rune(text); len(runes) > maxContentLength {
		text = string(runes[:maxContentLength])
	}
	return text
}
