package intent

import (
	"context"
	"log/slog"
	"math"
	"strings"

	"github.com/NageshProgrammer/leadequator/ai"
	"github.com/NageshProgrammer/leadequator/core"
	"github.com/NageshProgrammer/leadequator/storage"
)

const (
	// minContentLength is the minimum trimmed text length worth classifying.
	// Shorter texts return a sentinel result without touching the embedder.
	minContentLength = 20

	// defaultMatchCount is the number of nearest labeled examples retrieved
	// per classification.
	defaultMatchCount = 20

	// DefaultHighIntentBucket is the reference category that must dominate
	// the neighbors for a High Intent classification. The High Intent branch
	// requires both the score threshold and this dominant bucket; the lower
	// levels are score-only. That asymmetry is deliberate domain policy.
	DefaultHighIntentBucket = "data1"
)

// Classification thresholds, evaluated highest first.
const (
	highIntentThreshold   = 85
	mediumIntentThreshold = 60
	lowIntentThreshold    = 35
)

// Sentinel reasons for non-classifiable text.
const (
	ReasonInsufficientContent = "Insufficient content"
	ReasonNoMatches           = "No similarity matches found"
)

// Classifier scores text for buying intent by similarity against the labeled
// example index.
type Classifier struct {
	embedder         ai.Embedder
	examples         storage.ExampleRepository
	matchCount       int
	highIntentBucket string
	logger           *slog.Logger
}

// Option configures a Classifier.
type Option func(*Classifier) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Classifier) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// WithMatchCount sets how many nearest examples are retrieved per
// classification. Default is 20; values below 1 reset to the default.
func WithMatchCount(count int) Option {
	return func(c *Classifier) error {
		if count < 1 {
			count = defaultMatchCount
		}
		c.matchCount = count
		return nil
	}
}

// WithHighIntentBucket sets the bucket name required for a High Intent
// classification. Default is DefaultHighIntentBucket.
func WithHighIntentBucket(bucket string) Option {
	return func(c *Classifier) error {
		if bucket != "" {
			c.highIntentBucket = bucket
		}
		return nil
	}
}

// NewClassifier creates a new intent classifier.
func NewClassifier(examples storage.ExampleRepository, provider ai.AIProvider, opts ...Option) (*Classifier, error) {
	if examples == nil {
		return nil, ErrExampleRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	c := &Classifier{
		embedder:         provider.Embedder(),
		examples:         examples,
		matchCount:       defaultMatchCount,
		highIntentBucket: DefaultHighIntentBucket,
		logger:           slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Classify analyzes text and returns its intent classification.
//
// Texts shorter than 20 trimmed characters and texts with no neighbors in the
// example index return sentinel results with a Reason, not an error. Errors
// are reserved for embedder or index failures; callers should treat those as
// "classification unavailable" for the one text, not abort the whole run.
func (c *Classifier) Classify(ctx context.Context, text string) (*core.IntentAnalysis, error) {
	if len(strings.TrimSpace(text)) < minContentLength {
		return &core.IntentAnalysis{
			BuyingIntent: false,
			IntentScore:  0,
			Reason:       ReasonInsufficientContent,
		}, nil
	}

	embedding, err := c.embedder.EmbedText(ctx, text)
	if err != nil {
		c.logger.Error("error generating embedding for text", "length", len(text), "err", err)
		return nil, err
	}

	matches, err := c.examples.FindNearest(ctx, embedding, c.matchCount)
	if err != nil {
		c.logger.Error("error querying example index", "err", err)
		return nil, err
	}

	if len(matches) == 0 {
		return &core.IntentAnalysis{
			BuyingIntent: false,
			IntentScore:  0,
			Reason:       ReasonNoMatches,
		}, nil
	}

	bucketCounts := make(map[string]int)
	bucketOrder := make([]string, 0, len(matches))
	var weightedScore, totalSimilarity, maxSimilarity float64

	for _, match := range matches {
		if match.Similarity > maxSimilarity {
			maxSimilarity = match.Similarity
		}

		if _, seen := bucketCounts[match.Bucket]; !seen {
			bucketOrder = append(bucketOrder, match.Bucket)
		}
		bucketCounts[match.Bucket]++

		weightedScore += match.IntentWeight * match.Similarity
		totalSimilarity += match.Similarity
	}

	// Similarity-weighted average: near examples dominate, so a heavy weight
	// on a distant example cannot overpower the signal.
	finalScore := 0
	if totalSimilarity > 0 {
		finalScore = int(math.Round(weightedScore / totalSimilarity * 100))
	}
	finalScore = clampScore(finalScore)

	// Ties break on first-encountered bucket in the neighbor sequence.
	dominantBucket := bucketOrder[0]
	for _, bucket := range bucketOrder {
		if bucketCounts[bucket] > bucketCounts[dominantBucket] {
			dominantBucket = bucket
		}
	}

	var buyingIntent bool
	var level core.IntentLevel
	switch {
	case finalScore >= highIntentThreshold && dominantBucket == c.highIntentBucket:
		buyingIntent = true
		level = core.LevelHigh
	case finalScore >= mediumIntentThreshold:
		buyingIntent = true
		level = core.LevelMedium
	case finalScore >= lowIntentThreshold:
		buyingIntent = false
		level = core.LevelLow
	default:
		buyingIntent = false
		level = core.LevelNone
	}

	return &core.IntentAnalysis{
		BuyingIntent:       buyingIntent,
		IntentScore:        finalScore,
		IntentLevel:        level,
		BucketDistribution: bucketCounts,
		DominantBucket:     dominantBucket,
		MaxSimilarity:      math.Round(maxSimilarity*1000) / 1000,
	}, nil
}

// clampScore keeps the published score in [0,100]. Example weights may be
// negative, which can push the raw weighted average outside the range.
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
