// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package reembed regenerates the stored intent example vectors with a new
// embedding model. Required after switching models, since similarity scores
// are only meaningful between vectors from the same model.
package reembed

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/NageshProgrammer/leadequator/ai"
	"github.com/NageshProgrammer/leadequator/core"
	"github.com/NageshProgrammer/leadequator/storage"
)

// Config holds configuration for the reembedding operation.
type Config struct {
	// BatchSize is the number of examples sent to the embedder per call
	BatchSize int

	// ReportInterval is how often to report progress (number of examples)
	ReportInterval int

	// MaxRetries is the maximum number of retry attempts for failed embedding calls
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff
	RetryDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BatchSize:      100,
		ReportInterval: 100,
		MaxRetries:     3,
		RetryDelay:     1 * time.Second,
	}
}

// Reembedder re-embeds every stored intent example.
type Reembedder struct {
	examples storage.ExampleRepository
	embedder ai.Embedder
	config   *Config
	progress io.Writer
}

// NewReembedder creates a new reembedder.
// progress: where to write progress output (typically os.Stderr)
func NewReembedder(examples storage.ExampleRepository, embedder ai.Embedder, config *Config, progress io.Writer) *Reembedder {
	if config == nil {
		config = DefaultConfig()
	}

	return &Reembedder{
		examples: examples,
		embedder: embedder,
		config:   config,
		progress: progress,
	}
}

// Run re-embeds all examples in the index. Each batch is embedded with
// retry and written back; example IDs are content-based on (bucket, text),
// so writing back updates vectors in place.
func (r *Reembedder) Run(ctx context.Context) error {
	all, err := r.examples.ListExamples(ctx)
	if err != nil {
		return fmt.Errorf("failed to list examples: %w", err)
	}

	if len(all) == 0 {
		fmt.Fprintf(r.progress, "No examples found in index (0 examples)\n")
		return nil
	}

	fmt.Fprintf(r.progress, "Starting reembedding of %d examples (batch size: %d)\n",
		len(all), r.config.BatchSize)

	tracker := NewProgressTracker(r.progress, len(all), r.config.ReportInterval)

	for start := 0; start < len(all); start += r.config.BatchSize {
		end := start + r.config.BatchSize
		if end > len(all) {
			end = len(all)
		}
		batch := all[start:end]

		if err := r.processBatch(ctx, batch); err != nil {
			return fmt.Errorf("failed to process batch at offset %d: %w", start, err)
		}

		tracker.Increment(len(batch))
	}

	tracker.Finish()
	return nil
}

func (r *Reembedder) processBatch(ctx context.Context, batch []*core.IntentExample) error {
	texts := make([]string, len(batch))
	for i, example := range batch {
		texts[i] = example.Text
	}

	var vectors [][]float32
	err := RetryWithBackoff(ctx, func() error {
		var embedErr error
		vectors, embedErr = r.embedder.EmbedTexts(ctx, texts)
		return embedErr
	}, r.config.MaxRetries, r.config.RetryDelay)
	if err != nil {
		return fmt.Errorf("embedding failed: %w", err)
	}

	if len(vectors) != len(batch) {
		return fmt.Errorf("embedder returned %d vectors for %d texts", len(vectors), len(batch))
	}

	for i, example := range batch {
		example.Vector = vectors[i]
	}

	if _, err := r.examples.AddExamples(ctx, batch...); err != nil {
		return fmt.Errorf("failed to store reembedded examples: %w", err)
	}

	return nil
}
