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


package leadequator

import (
	"context"
	"log/slog"

	"github.com/NageshProgrammer/leadequator/ai"
	"github.com/NageshProgrammer/leadequator/ai/openai"
	"github.com/NageshProgrammer/leadequator/core"
	"github.com/NageshProgrammer/leadequator/intent"
	"github.com/NageshProgrammer/leadequator/pipeline"
	"github.com/NageshProgrammer/leadequator/scrape"
	"github.com/NageshProgrammer/leadequator/storage"
	"github.com/NageshProgrammer/leadequator/storage/badger"
	"github.com/NageshProgrammer/leadequator/websearch"
)

// Engine wires storage, the embedding provider and the classifier into one
// unit owning their lifecycles. Process entry points construct one Engine and
// derive pipelines and handlers from it.
type Engine struct {
	backend     *badger.Backend
	leadRepo    storage.LeadRepository
	exampleRepo storage.ExampleRepository
	provider    ai.AIProvider
	logger      *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	aiConfig *ai.Config
	provider ai.AIProvider
	inMemory bool
}

// WithAIConfig sets the embedding provider configuration.
func WithAIConfig(config *ai.Config) EngineOption {
	return func(o *engineOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

// WithProvider injects a pre-built AI provider, bypassing the OpenAI-compatible
// default. Used by tests to substitute a deterministic embedder.
func WithProvider(provider ai.AIProvider) EngineOption {
	return func(o *engineOptions) {
		o.provider = provider
	}
}

// WithInMemoryStorage keeps all state in memory. The file path is ignored.
func WithInMemoryStorage() EngineOption {
	return func(o *engineOptions) {
		o.inMemory = true
	}
}

// NewEngine opens storage at filePath and builds the collaborator graph.
func NewEngine(filePath string, opts ...EngineOption) (*Engine, error) {
	options := &engineOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	leadRepo, err := badger.NewLeadRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	exampleRepo, err := badger.NewExampleRepository(backend)
	if err != nil {
		leadRepo.Close()
		backend.Close()
		return nil, err
	}

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			exampleRepo.Close()
			leadRepo.Close()
			backend.Close()
			return nil, err
		}
	}

	return &Engine{
		backend:     backend,
		leadRepo:    leadRepo,
		exampleRepo: exampleRepo,
		provider:    provider,
		logger:      slog.Default(),
	}, nil
}

// Close releases the provider, repositories and backend.
func (e *Engine) Close() error {
	if err := e.provider.Close(); err != nil {
		e.logger.Error("error closing AI provider", "err", err)
	}

	if err := e.exampleRepo.Close(); err != nil {
		e.logger.Error("error closing example repository", "err", err)
		return err
	}
	if err := e.leadRepo.Close(); err != nil {
		e.logger.Error("error closing lead repository", "err", err)
		return err
	}

	if err := e.backend.Close(); err != nil {
		e.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (e *Engine) LeadRepository() storage.LeadRepository {
	return e.leadRepo
}

func (e *Engine) ExampleRepository() storage.ExampleRepository {
	return e.exampleRepo
}

// NewClassifier builds an intent classifier over the engine's example index.
func (e *Engine) NewClassifier(opts ...intent.Option) (*intent.Classifier, error) {
	return intent.NewClassifier(e.exampleRepo, e.provider, opts...)
}

// NewPipeline builds a discovery pipeline using the engine's storage and
// classifier with the given external collaborators.
func (e *Engine) NewPipeline(search websearch.SearchProvider, scraper scrape.Scraper, classifierOpts []intent.Option, opts ...pipeline.Option) (*pipeline.Pipeline, error) {
	classifier, err := e.NewClassifier(classifierOpts...)
	if err != nil {
		return nil, err
	}
	return pipeline.NewPipeline(search, scraper, classifier, e.leadRepo, opts...)
}

// SeedExamples embeds the given labeled examples and stores them in the
// vector index. Examples are keyed by (bucket, text), so re-seeding the same
// corpus is idempotent.
func (e *Engine) SeedExamples(ctx context.Context, examples []*core.IntentExample) error {
	for _, example := range examples {
		if err := core.ValidateExample(example); err != nil {
			return err
		}
	}

	texts := make([]string, len(examples))
	for i, example := range examples {
		texts[i] = example.Text
	}

	vectors, err := e.provider.Embedder().EmbedTexts(ctx, texts)
	if err != nil {
		return err
	}

	for i, example := range examples {
		example.Vector = vectors[i]
	}

	_, err = e.exampleRepo.AddExamples(ctx, examples...)
	return err
}
