package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NageshProgrammer/leadequator/core"
	"github.com/NageshProgrammer/leadequator/pipeline"
	"github.com/NageshProgrammer/leadequator/storage"
	"github.com/NageshProgrammer/leadequator/storage/badger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// finderFunc adapts a function to the LeadFinder interface.
type finderFunc func(ctx context.Context, query core.SearchQuery, minIntent int) (*pipeline.Report, error)

func (f finderFunc) Run(ctx context.Context, query core.SearchQuery, minIntent int) (*pipeline.Report, error) {
	return f(ctx, query, minIntent)
}

func newTestRouter(t *testing.T, finder LeadFinder) (*gin.Engine, storage.LeadRepository) {
	t.Helper()
	leadRepo, exampleRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		leadRepo.Close()
		exampleRepo.Close()
		backend.Close()
	})

	if finder == nil {
		finder = finderFunc(func(ctx context.Context, query core.SearchQuery, minIntent int) (*pipeline.Report, error) {
			return &pipeline.Report{}, nil
		})
	}

	return NewRouter(NewHandler(finder, leadRepo, nil)), leadRepo
}

func seedLead(t *testing.T, repo storage.LeadRepository, link, domain string, intentScore int, imreScore float64) {
	t.Helper()
	lead := &core.Lead{
		Title:     "Lead " + link,
		Link:      link,
		Domain:    domain,
		Intent:    core.IntentAnalysis{IntentScore: intentScore},
		ImreScore: imreScore,
	}
	outcome, err := repo.AddLead(context.Background(), lead)
	require.NoError(t, err)
	require.Equal(t, storage.OutcomeInserted, outcome)
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestSearch(t *testing.T) {
	t.Run("runs the pipeline with parsed parameters", func(t *testing.T) {
		var gotQuery core.SearchQuery
		var gotMinIntent int
		finder := finderFunc(func(ctx context.Context, query core.SearchQuery, minIntent int) (*pipeline.Report, error) {
			gotQuery = query
			gotMinIntent = minIntent
			return &pipeline.Report{
				KeywordsUsed: []string{"steel"},
				Stats:        core.RunStats{TotalKeywords: 1},
			}, nil
		})
		router, _ := newTestRouter(t, finder)

		body := `{"industry": "steel", "location": "Mumbai", "buying_signals": "rfp procurement"}`
		req := httptest.NewRequest(http.MethodPost, "/search?min_intent=40", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "steel", gotQuery.Industry)
		assert.Equal(t, "Mumbai", gotQuery.Location)
		assert.Equal(t, "rfp procurement", gotQuery.BuyingSignals)
		assert.Equal(t, 40, gotMinIntent)

		var parsed map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &parsed))
		assert.Contains(t, parsed, "processing_time_seconds")
		assert.Contains(t, parsed, "stats")
		assert.Contains(t, parsed, "keywords_used")
		assert.Contains(t, parsed, "leads")
	})

	t.Run("malformed body", func(t *testing.T) {
		router, _ := newTestRouter(t, nil)

		req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader("{not json"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid min_intent", func(t *testing.T) {
		router, _ := newTestRouter(t, nil)

		req := httptest.NewRequest(http.MethodPost, "/search?min_intent=-3", strings.NewReader(`{"industry":"x","buying_signals":"y"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validation failure maps to bad request", func(t *testing.T) {
		finder := finderFunc(func(ctx context.Context, query core.SearchQuery, minIntent int) (*pipeline.Report, error) {
			return nil, core.ValidateSearchQuery(&query)
		})
		router, _ := newTestRouter(t, finder)

		req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(`{"industry":"", "buying_signals":""}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("pipeline failure maps to internal error", func(t *testing.T) {
		finder := finderFunc(func(ctx context.Context, query core.SearchQuery, minIntent int) (*pipeline.Report, error) {
			return nil, errors.New("pool exhausted")
		})
		router, _ := newTestRouter(t, finder)

		req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(`{"industry":"x","buying_signals":"y"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestGetLeads(t *testing.T) {
	t.Run("returns stored leads sorted by composite score", func(t *testing.T) {
		router, repo := newTestRouter(t, nil)
		seedLead(t, repo, "https://low.example.com/a", "low.example.com", 30, 25.0)
		seedLead(t, repo, "https://high.example.com/b", "high.example.com", 90, 80.5)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/leads", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var parsed struct {
			Count   int            `json:"count"`
			Filters map[string]any `json:"filters"`
			Leads   []core.Lead    `json:"leads"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &parsed))

		assert.Equal(t, 2, parsed.Count)
		assert.Equal(t, float64(defaultLeadLimit), parsed.Filters["limit"])
		require.Len(t, parsed.Leads, 2)
		assert.Equal(t, "https://high.example.com/b", parsed.Leads[0].Link)
		assert.Equal(t, "https://low.example.com/a", parsed.Leads[1].Link)
	})

	t.Run("applies filters", func(t *testing.T) {
		router, repo := newTestRouter(t, nil)
		seedLead(t, repo, "https://one.example.com/a", "one.example.com", 90, 80.0)
		seedLead(t, repo, "https://two.example.com/b", "two.example.com", 50, 40.0)
		seedLead(t, repo, "https://three.example.com/c", "three.example.com", 20, 15.0)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/leads?min_intent=40&limit=1", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var parsed struct {
			Count int         `json:"count"`
			Leads []core.Lead `json:"leads"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &parsed))
		assert.Equal(t, 1, parsed.Count)
		require.Len(t, parsed.Leads, 1)
		assert.Equal(t, "https://one.example.com/a", parsed.Leads[0].Link)
	})

	t.Run("domain filter", func(t *testing.T) {
		router, repo := newTestRouter(t, nil)
		seedLead(t, repo, "https://keep.example.com/a", "keep.example.com", 90, 80.0)
		seedLead(t, repo, "https://drop.example.org/b", "drop.example.org", 90, 70.0)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/leads?domain=keep.example.com", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var parsed struct {
			Leads []core.Lead `json:"leads"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &parsed))
		require.Len(t, parsed.Leads, 1)
		assert.Equal(t, "keep.example.com", parsed.Leads[0].Domain)
	})

	t.Run("invalid limit", func(t *testing.T) {
		router, _ := newTestRouter(t, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/leads?limit=bogus", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
