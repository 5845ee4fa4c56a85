package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"net/url"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing so identical content
// (for leads, the canonical URL) always maps to the same ID.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// IntentLevel is the bucketed classification of a piece of text.
type IntentLevel string

const (
	LevelHigh   IntentLevel = "High Intent"
	LevelMedium IntentLevel = "Medium Intent"
	LevelLow    IntentLevel = "Low Intent"
	LevelNone   IntentLevel = "No Intent"
)

// SearchQuery describes one lead discovery request. Immutable input.
type SearchQuery struct {
	Industry      string `json:"industry"`
	Location      string `json:"location,omitempty"`
	BuyingSignals string `json:"buying_signals"`
}

// RawResult is a single hit returned by the web search provider.
type RawResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// IntentAnalysis is the classification of a scraped page.
// It is immutable once computed.
//
// Sentinel results (insufficient content, no matches) carry a Reason and
// a zero score; BucketDistribution is only populated on real classifications.
type IntentAnalysis struct {
	BuyingIntent       bool           `json:"buying_intent"`
	IntentScore        int            `json:"intent_score"`
	IntentLevel        IntentLevel    `json:"intent_level,omitempty"`
	BucketDistribution map[string]int `json:"bucket_distribution,omitempty"`
	DominantBucket     string         `json:"dominant_bucket,omitempty"`
	MaxSimilarity      float64        `json:"max_similarity"`
	Reason             string         `json:"reason,omitempty"`
}

// Lead is a search result enriched with intent classification and composite
// score. It is the unit of persistence and ranking. The Id is derived from
// the Link, which makes the link globally unique in storage.
type Lead struct {
	Id         ID             `json:"-"`
	Title      string         `json:"title"`
	Link       string         `json:"link"`
	Snippet    string         `json:"snippet,omitempty"`
	Domain     string         `json:"domain"`
	Intent     IntentAnalysis `json:"intent_analysis"`
	ImreScore  float64        `json:"imre_score"`
	InsertedAt time.Time      `json:"-"`
}

// NewLead builds a Lead from a raw search hit and its classification.
// The composite score is left for the caller to fill in.
func NewLead(result RawResult, intent IntentAnalysis) *Lead {
	return &Lead{
		Id:      IDFromContent(result.Link),
		Title:   result.Title,
		Link:    result.Link,
		Snippet: result.Snippet,
		Domain:  ExtractDomain(result.Link),
		Intent:  intent,
	}
}

// IntentExample is a labeled reference text in the vector index.
// Bucket names a category of known buying-intent text; IntentWeight is the
// signed weight the classifier blends by similarity.
type IntentExample struct {
	Id           ID
	Bucket       string
	Text         string
	IntentWeight float64
	Vector       []float32
	InsertedAt   time.Time
	UpdatedAt    time.Time
}

// NeighborMatch is a nearest-neighbor hit from the example index.
type NeighborMatch struct {
	Bucket       string
	Similarity   float64
	IntentWeight float64
}

// RunStats aggregates counters for one pipeline run.
type RunStats struct {
	TotalKeywords     int `json:"total_keywords"`
	TotalResultsFound int `json:"total_results_found"`
	NewLeadsProcessed int `json:"new_leads_processed"`
	SkippedExisting   int `json:"skipped_existing"`
	HighIntent        int `json:"high_intent"`
	MediumIntent      int `json:"medium_intent"`
	LowIntent         int `json:"low_intent"`
	NoIntent          int `json:"no_intent"`
}

// CountLevel increments the counter for the given intent level.
func (s *RunStats) CountLevel(level IntentLevel) {
	switch level {
	case LevelHigh:
		s.HighIntent++
	case LevelMedium:
		s.MediumIntent++
	case LevelLow:
		s.LowIntent++
	default:
		s.NoIntent++
	}
}

// NormalizeTitle canonicalizes a title for duplicate detection.
func NormalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// ExtractDomain returns the host of a URL with any leading "www." removed.
// Returns an empty string for unparseable URLs.
func ExtractDomain(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(parsed.Host, "www.")
}
