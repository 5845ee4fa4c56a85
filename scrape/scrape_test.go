package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScraper(t *testing.T) *HTMLScraper {
	t.Helper()
	scraper, err := NewHTMLScraper()
	require.NoError(t, err)
	return scraper
}

func TestScrape(t *testing.T) {
	t.Run("extracts visible text", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html><body>
				<h1>Steel   Plant</h1>
				<p>Expansion
				announced</p>
			</body></html>`))
		}))
		defer server.Close()

		got := newTestScraper(t).Scrape(context.Background(), server.URL)
		assert.Equal(t, "Steel Plant Expansion announced", got)
	})

	t.Run("strips script and style", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html><head>
				<style>body { color: red; }</style>
				<script>console.log("tracking")</script>
			</head><body><p>Visible content</p></body></html>`))
		}))
		defer server.Close()

		got := newTestScraper(t).Scrape(context.Background(), server.URL)
		assert.Equal(t, "Visible content", got)
	})

	t.Run("sends browser user agent", func(t *testing.T) {
		var gotAgent string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAgent = r.Header.Get("User-Agent")
			_, _ = w.Write([]byte(`<p>ok</p>`))
		}))
		defer server.Close()

		newTestScraper(t).Scrape(context.Background(), server.URL)
		assert.Contains(t, gotAgent, "Mozilla/5.0")
	})

	t.Run("caps content at 5000 characters", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<p>" + strings.Repeat("a", 9000) + "</p>"))
		}))
		defer server.Close()

		got := newTestScraper(t).Scrape(context.Background(), server.URL)
		assert.Len(t, got, 5000)
	})

	t.Run("cap never splits a multi-byte rune", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<p>" + strings.Repeat("é", 6000) + "</p>"))
		}))
		defer server.Close()

		got := newTestScraper(t).Scrape(context.Background(), server.URL)
		assert.Equal(t, 5000, utf8.RuneCountInString(got))
		assert.True(t, utf8.ValidString(got))
	})

	t.Run("non-OK status yields empty string", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		got := newTestScraper(t).Scrape(context.Background(), server.URL)
		assert.Empty(t, got)
	})

	t.Run("unreachable host yields empty string", func(t *testing.T) {
		got := newTestScraper(t).Scrape(context.Background(), "http://127.0.0.1:1/page")
		assert.Empty(t, got)
	})

	t.Run("invalid url yields empty string", func(t *testing.T) {
		got := newTestScraper(t).Scrape(context.Background(), "://not-a-url")
		assert.Empty(t, got)
	})
}

func TestScraperFunc(t *testing.T) {
	scraper := ScraperFunc(func(ctx context.Context, url string) string {
		return "canned"
	})
	assert.Equal(t, "canned", scraper.Scrape(context.Background(), "any"))
}
