// Package api provides the HTTP surface for lead discovery and retrieval.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/NageshProgrammer/leadequator/core"
	"github.com/NageshProgrammer/leadequator/pipeline"
	"github.com/NageshProgrammer/leadequator/storage"
)

// LeadFinder runs one discovery sweep. Satisfied by pipeline.Pipeline.
type LeadFinder interface {
	Run(ctx context.Context, query core.SearchQuery, minIntent int) (*pipeline.Report, error)
}

// defaultLeadLimit caps GET /leads responses unless the caller asks otherwise.
const defaultLeadLimit = 20

// Handler serves the discovery and lead query endpoints.
type Handler struct {
	finder LeadFinder
	leads  storage.LeadRepository
	logger *slog.Logger
}

// NewHandler creates the API handler.
func NewHandler(finder LeadFinder, leads storage.LeadRepository, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{finder: finder, leads: leads, logger: logger}
}

// Search handles POST /search. The body is the discovery query; min_intent is
// an optional query parameter filtering the ranked leads.
func (h *Handler) Search(c *gin.Context) {
	var query core.SearchQuery
	if bindErr := c.ShouldBindJSON(&query); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErr.Error()})
		return
	}

	minIntent, err := nonNegativeIntParam(c, "min_intent", 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.finder.Run(c.Request.Context(), query, minIntent)
	if err != nil {
		if errors.Is(err, core.ErrInvalidSearchQuery) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("error running discovery pipeline", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetLeads handles GET /leads with min_intent, domain and limit filters.
// Results come back sorted by composite score descending.
func (h *Handler) GetLeads(c *gin.Context) {
	minIntent, err := nonNegativeIntParam(c, "min_intent", 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	limit, err := nonNegativeIntParam(c, "limit", defaultLeadLimit)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	query := storage.LeadQuery{
		MinIntent: minIntent,
		Domain:    c.Query("domain"),
		Limit:     limit,
	}

	leads, err := h.leads.GetLeads(c.Request.Context(), query)
	if err != nil {
		h.logger.Error("error querying leads", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lead query failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count": len(leads),
		"filters": gin.H{
			"min_intent": query.MinIntent,
			"domain":     query.Domain,
			"limit":      query.Limit,
		},
		"leads": leads,
	})
}

// Health handles GET /health.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func nonNegativeIntParam(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, errors.New(name + " must be a non-negative integer")
	}
	return value, nil
}
