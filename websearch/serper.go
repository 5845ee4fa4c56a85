package websearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/NageshProgrammer/leadequator/core"
)

const (
	// DefaultSerperURL is the Serper.dev search endpoint.
	DefaultSerperURL = "https://google.serper.dev/search"

	// defaultResultCount is the number of hits requested per keyword.
	defaultResultCount = 5

	defaultSearchTimeout = 15 * time.Second
)

// Serper queries the Serper.dev Google Search API.
type Serper struct {
	apiKey      string
	baseURL     string
	resultCount int
	client      *http.Client
	logger      *slog.Logger
}

var _ SearchProvider = (*Serper)(nil)

// SerperOption configures a Serper provider.
type SerperOption func(*Serper) error

// WithSerperURL overrides the search endpoint. Used by tests.
func WithSerperURL(url string) SerperOption {
	return func(s *Serper) error {
		if url != "" {
			s.baseURL = url
		}
		return nil
	}
}

// WithResultCount sets how many hits are requested per keyword.
// Default is 5; values below 1 reset to the default.
func WithResultCount(count int) SerperOption {
	return func(s *Serper) error {
		if count < 1 {
			count = defaultResultCount
		}
		s.resultCount = count
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) SerperOption {
	return func(s *Serper) error {
		if client != nil {
			s.client = client
		}
		return nil
	}
}

// WithSerperLogger sets a custom logger.
// Default is slog.Default().
func WithSerperLogger(logger *slog.Logger) SerperOption {
	return func(s *Serper) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSerper creates a Serper search provider.
func NewSerper(apiKey string, opts ...SerperOption) (*Serper, error) {
	if apiKey == "" {
		return nil, ErrAPIKeyRequired
	}

	s := &Serper{
		apiKey:      apiKey,
		baseURL:     DefaultSerperURL,
		resultCount: defaultResultCount,
		client:      &http.Client{Timeout: defaultSearchTimeout},
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

type serperRequest struct {
	Query string `json:"q"`
	Num   int    `json:"num"`
}

type serperResponse struct {
	Organic []core.RawResult `json:"organic"`
}

// Search runs one keyword query and returns the organic hits.
func (s *Serper) Search(ctx context.Context, keyword string) ([]core.RawResult, error) {
	payload, err := json.Marshal(serperRequest{Query: keyword, Num: s.resultCount})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-API-KEY", s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error("error executing search request", "keyword", keyword, "err", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Error("search backend returned non-OK status", "keyword", keyword, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", ErrSearchFailed, resp.StatusCode)
	}

	var parsed serperResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSearchFailed, err)
	}

	return parsed.Organic, nil
}
