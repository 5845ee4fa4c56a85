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


package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/NageshProgrammer/leadequator"
	"github.com/NageshProgrammer/leadequator/ai"
	"github.com/NageshProgrammer/leadequator/ai/openai"
	"github.com/NageshProgrammer/leadequator/api"
	"github.com/NageshProgrammer/leadequator/core"
	"github.com/NageshProgrammer/leadequator/intent"
	"github.com/NageshProgrammer/leadequator/pipeline"
	"github.com/NageshProgrammer/leadequator/reembed"
	"github.com/NageshProgrammer/leadequator/scrape"
	"github.com/NageshProgrammer/leadequator/storage/badger"
	"github.com/NageshProgrammer/leadequator/websearch"
)

func main() {
	// Best effort; secrets may come from the real environment instead.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "leadequator",
		Usage: "Lead discovery and buying-intent ranking",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the lead discovery HTTP API",
				Action: serveCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "addr",
						Usage:   "Listen address",
						Value:   ":8080",
						EnvVars: []string{"LEADEQUATOR_ADDR"},
					},
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
						EnvVars:  []string{"LEADEQUATOR_DB"},
					},
					&cli.StringFlag{
						Name:    "serper-key",
						Usage:   "Serper.dev API key for web search",
						EnvVars: []string{"SERPER_API_KEY"},
					},
					&cli.StringFlag{
						Name:    "embedding-host",
						Usage:   "Embedding service host URL",
						Value:   "http://localhost:11434/v1",
						EnvVars: []string{"EMBEDDING_HOST"},
					},
					&cli.StringFlag{
						Name:    "embedding-model",
						Usage:   "Embedding model name",
						Value:   "all-minilm",
						EnvVars: []string{"EMBEDDING_MODEL"},
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Worker pool size for per-result processing",
					},
					&cli.IntFlag{
						Name:  "match-count",
						Usage: "Nearest labeled examples per classification",
					},
					&cli.StringFlag{
						Name:  "high-intent-bucket",
						Usage: "Example bucket required for a High Intent classification",
						Value: intent.DefaultHighIntentBucket,
					},
				},
			},
			{
				Name:   "reembed",
				Usage:  "Regenerate stored example vectors with a new embedding model",
				Action: reembedCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
						EnvVars:  []string{"LEADEQUATOR_DB"},
					},
					&cli.StringFlag{
						Name:    "embedding-host",
						Usage:   "Embedding service host URL",
						Value:   "http://localhost:11434/v1",
						EnvVars: []string{"EMBEDDING_HOST"},
					},
					&cli.StringFlag{
						Name:     "embedding-model",
						Usage:    "Embedding model name",
						Required: true,
						EnvVars:  []string{"EMBEDDING_MODEL"},
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of examples to embed in each batch",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N examples",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed embedding calls",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				},
			},
			{
				Name:      "seed",
				Usage:     "Embed labeled intent examples and store them in the index",
				Action:    seedCommand,
				ArgsUsage: "<examples.json>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
						EnvVars:  []string{"LEADEQUATOR_DB"},
					},
					&cli.StringFlag{
						Name:    "embedding-host",
						Usage:   "Embedding service host URL",
						Value:   "http://localhost:11434/v1",
						EnvVars: []string{"EMBEDDING_HOST"},
					},
					&cli.StringFlag{
						Name:    "embedding-model",
						Usage:   "Embedding model name",
						Value:   "all-minilm",
						EnvVars: []string{"EMBEDDING_MODEL"},
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newEngine(c *cli.Context) (*leadequator.Engine, error) {
	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
	)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	engine, err := leadequator.NewEngine(c.String("db"), leadequator.WithAIConfig(aiConfig))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return engine, nil
}

func serveCommand(c *cli.Context) error {
	serperKey := c.String("serper-key")
	if serperKey == "" {
		return fmt.Errorf("serper API key is required (flag --serper-key or env SERPER_API_KEY)")
	}

	engine, err := newEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	search, err := websearch.NewSerper(serperKey)
	if err != nil {
		return fmt.Errorf("failed to create search provider: %w", err)
	}

	scraper, err := scrape.NewHTMLScraper()
	if err != nil {
		return fmt.Errorf("failed to create scraper: %w", err)
	}

	var classifierOpts []intent.Option
	if c.Int("match-count") > 0 {
		classifierOpts = append(classifierOpts, intent.WithMatchCount(c.Int("match-count")))
	}
	classifierOpts = append(classifierOpts, intent.WithHighIntentBucket(c.String("high-intent-bucket")))

	var pipelineOpts []pipeline.Option
	if c.Int("pool-size") > 0 {
		pipelineOpts = append(pipelineOpts, pipeline.WithPoolSize(c.Int("pool-size")))
	}

	p, err := engine.NewPipeline(search, scraper, classifierOpts, pipelineOpts...)
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	defer p.Release()

	exampleCount, err := engine.ExampleRepository().CountExamples(c.Context)
	if err != nil {
		return fmt.Errorf("failed to inspect example index: %w", err)
	}
	if exampleCount == 0 {
		slog.Warn("example index is empty; run the seed command or every page will classify as no matches")
	}

	router := api.NewRouter(api.NewHandler(p, engine.LeadRepository(), slog.Default()))

	slog.Info("starting lead discovery API", "addr", c.String("addr"), "examples", exampleCount)
	return router.Run(c.String("addr"))
}

// seedExample is one entry in the seed file: a JSON array of labeled texts.
type seedExample struct {
	Bucket       string  `json:"bucket"`
	Text         string  `json:"text"`
	IntentWeight float64 `json:"intent_weight"`
}

func seedCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one argument: path to the examples JSON file")
	}

	raw, err := os.ReadFile(c.Args().First())
	if err != nil {
		return fmt.Errorf("failed to read examples file: %w", err)
	}

	var entries []seedExample
	if err := json.Unmarshal(raw, &entries); err != nil {
		return fmt.Errorf("failed to parse examples file: %w", err)
	}
	if len(entries) == 0 {
		return fmt.Errorf("examples file is empty")
	}

	engine, err := newEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	examples := make([]*core.IntentExample, len(entries))
	for i, entry := range entries {
		examples[i] = &core.IntentExample{
			Bucket:       entry.Bucket,
			Text:         entry.Text,
			IntentWeight: entry.IntentWeight,
		}
	}

	if err := engine.SeedExamples(context.Background(), examples); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	count, err := engine.ExampleRepository().CountExamples(context.Background())
	if err != nil {
		return err
	}

	slog.Info("seeded intent examples", "added", len(examples), "total", count)
	return nil
}

func reembedCommand(c *cli.Context) error {
	ctx := context.Background()

	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	examples, err := badger.NewExampleRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create example repository: %w", err)
	}
	defer examples.Close()

	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
	)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	embedder, err := openai.NewEmbedder(aiConfig)
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}

	config := &reembed.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
	}
	if config.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if config.ReportInterval <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}
	if config.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	reembedder := reembed.NewReembedder(examples, embedder, config, os.Stderr)

	fmt.Fprintf(os.Stderr, "Database: %s\n", c.String("db"))
	fmt.Fprintf(os.Stderr, "Embedding host: %s\n", c.String("embedding-host"))
	fmt.Fprintf(os.Stderr, "Embedding model: %s\n", c.String("embedding-model"))
	fmt.Fprintln(os.Stderr)

	if err := reembedder.Run(ctx); err != nil {
		return fmt.Errorf("reembedding failed: %w", err)
	}

	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
