// Package pipeline drives one lead discovery run from request to report.
package pipeline

import (
	"context"
	"log/slog"
	"math"
	"runtime"
	"slices"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/NageshProgrammer/leadequator/core"
	"github.com/NageshProgrammer/leadequator/dedup"
	"github.com/NageshProgrammer/leadequator/imre"
	"github.com/NageshProgrammer/leadequator/keywords"
	"github.com/NageshProgrammer/leadequator/scrape"
	"github.com/NageshProgrammer/leadequator/storage"
	"github.com/NageshProgrammer/leadequator/websearch"
)

// IntentClassifier scores text for buying intent.
// Satisfied by intent.Classifier.
type IntentClassifier interface {
	Classify(ctx context.Context, text string) (*core.IntentAnalysis, error)
}

// Report is the outcome of one pipeline run.
type Report struct {
	ProcessingTimeSeconds float64       `json:"processing_time_seconds"`
	Stats                 core.RunStats `json:"stats"`
	KeywordsUsed          []string      `json:"keywords_used"`
	Leads                 []*core.Lead  `json:"leads"`
}

// Pipeline orchestrates keyword expansion, search, scraping, classification,
// scoring and persistence for one discovery request. Per-result work runs on
// a bounded worker pool; aggregation is thread-safe.
type Pipeline struct {
	search     websearch.SearchProvider
	scraper    scrape.Scraper
	classifier IntentClassifier
	leads      storage.LeadRepository
	pool       *ants.Pool
	logger     *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for per-result processing.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}

		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new discovery pipeline.
func NewPipeline(
	search websearch.SearchProvider,
	scraper scrape.Scraper,
	classifier IntentClassifier,
	leads storage.LeadRepository,
	opts ...Option,
) (*Pipeline, error) {
	if search == nil {
		return nil, ErrSearchProviderRequired
	}
	if scraper == nil {
		return nil, ErrScraperRequired
	}
	if classifier == nil {
		return nil, ErrClassifierRequired
	}
	if leads == nil {
		return nil, ErrLeadRepositoryRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		search:     search,
		scraper:    scraper,
		classifier: classifier,
		leads:      leads,
		pool:       pool,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Run executes the full discovery sweep for a query.
//
// Per-item failures are isolated: a failing keyword search contributes zero
// results, an unscrapable or unclassifiable page is dropped, and insert races
// resolve through the repository's already-exists outcome. Run only fails on
// invalid input.
//
// minIntent > 0 drops leads whose intent score is below it. The filter is
// applied after the stable descending sort by composite score, so it never
// reorders survivors.
func (p *Pipeline) Run(ctx context.Context, query core.SearchQuery, minIntent int) (*Report, error) {
	if err := core.ValidateSearchQuery(&query); err != nil {
		return nil, err
	}

	start := time.Now()

	expanded := keywords.Expand(query.Industry, query.BuyingSignals)

	var stats core.RunStats
	stats.TotalKeywords = len(expanded)

	// One slot per (keyword, result) pair. Workers write only their own slot,
	// which keeps accumulation order deterministic without ordering the pool.
	slots := make([][]*core.Lead, len(expanded))

	var mu sync.Mutex
	var wg sync.WaitGroup

	for ki, keyword := range expanded {
		results, err := p.search.Search(ctx, keyword)
		if err != nil {
			p.logger.Warn("search failed for keyword, continuing", "keyword", keyword, "err", err)
			continue
		}

		stats.TotalResultsFound += len(results)
		slots[ki] = make([]*core.Lead, len(results))

		for ri, result := range results {
			if result.Link == "" {
				continue
			}

			// Known-lead check happens before dispatch so re-runs never
			// scrape or classify a stored lead.
			exists, err := p.leads.LeadExists(ctx, result.Link)
			if err != nil {
				p.logger.Warn("lead existence check failed, skipping result", "link", result.Link, "err", err)
				continue
			}
			if exists {
				stats.SkippedExisting++
				continue
			}

			wg.Add(1)
			task := func() {
				defer wg.Done()

				lead := p.processResult(ctx, result)
				if lead == nil {
					return
				}

				mu.Lock()
				stats.NewLeadsProcessed++
				stats.CountLevel(lead.Intent.IntentLevel)
				mu.Unlock()

				slots[ki][ri] = lead
			}

			if err := p.pool.Submit(task); err != nil {
				// Pool saturated or released; degrade to inline execution.
				task()
			}
		}
	}

	wg.Wait()

	collected := make([]*core.Lead, 0, stats.NewLeadsProcessed)
	for _, keywordSlots := range slots {
		for _, lead := range keywordSlots {
			if lead != nil {
				collected = append(collected, lead)
			}
		}
	}

	unique := dedup.Leads(collected)

	slices.SortStableFunc(unique, func(a, b *core.Lead) int {
		switch {
		case a.ImreScore > b.ImreScore:
			return -1
		case a.ImreScore < b.ImreScore:
			return 1
		default:
			return 0
		}
	})

	if minIntent > 0 {
		filtered := unique[:0]
		for _, lead := range unique {
			if lead.Intent.IntentScore >= minIntent {
				filtered = append(filtered, lead)
			}
		}
		unique = filtered
	}

	elapsed := time.Since(start).Seconds()

	return &Report{
		ProcessingTimeSeconds: math.Round(elapsed*100) / 100,
		Stats:                 stats,
		KeywordsUsed:          expanded,
		Leads:                 unique,
	}, nil
}

// processResult runs the scrape → classify → score → persist stage for one
// search hit. Returns nil when the result is dropped.
func (p *Pipeline) processResult(ctx context.Context, result core.RawResult) *core.Lead {
	content := p.scraper.Scrape(ctx, result.Link)
	if content == "" {
		return nil
	}

	analysis, err := p.classifier.Classify(ctx, content)
	if err != nil {
		p.logger.Warn("classification failed, skipping result", "link", result.Link, "err", err)
		return nil
	}

	lead := core.NewLead(result, *analysis)
	lead.ImreScore = imre.Score(lead)

	// Best-effort insert. The repository resolves same-URL races to an
	// already-exists outcome; other storage errors are logged and the lead
	// still appears in this run's report.
	if _, err := p.leads.AddLead(ctx, lead); err != nil {
		p.logger.Warn("lead insert failed", "link", result.Link, "err", err)
	}

	return lead
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
