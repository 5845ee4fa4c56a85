package leadequator

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NageshProgrammer/leadequator/ai/mock"
	"github.com/NageshProgrammer/leadequator/core"
	"github.com/NageshProgrammer/leadequator/scrape"
	"github.com/NageshProgrammer/leadequator/websearch"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine("", WithInMemoryStorage(), WithProvider(mock.NewMockProvider()))
	require.NoError(t, err)
	t.Cleanup(func() { engine.Close() })
	return engine
}

func TestNewEngine(t *testing.T) {
	t.Run("create new engine", func(t *testing.T) {
		tmpDir := filepath.Join(t.TempDir(), "test_db")
		engine, err := NewEngine(tmpDir)
		require.NoError(t, err)
		require.NotNil(t, engine)
		defer engine.Close()

		assert.NotNil(t, engine.LeadRepository())
		assert.NotNil(t, engine.ExampleRepository())
		assert.NotNil(t, engine.backend)
		assert.NotNil(t, engine.logger)
	})

	t.Run("error with invalid path", func(t *testing.T) {
		tmpFile := filepath.Join(t.TempDir(), "not_a_dir")
		err := os.WriteFile(tmpFile, []byte("test"), 0644)
		require.NoError(t, err)

		engine, err := NewEngine(tmpFile)
		assert.Error(t, err)
		assert.Nil(t, engine)
	})

	t.Run("in-memory storage", func(t *testing.T) {
		engine, err := NewEngine("", WithInMemoryStorage())
		require.NoError(t, err)
		assert.NoError(t, engine.Close())
	})
}

func TestEngine_FactoryMethods(t *testing.T) {
	engine := newTestEngine(t)

	t.Run("can create classifier", func(t *testing.T) {
		classifier, err := engine.NewClassifier()
		require.NoError(t, err)
		require.NotNil(t, classifier)
	})

	t.Run("can create pipeline", func(t *testing.T) {
		search := websearch.ProviderFunc(func(ctx context.Context, keyword string) ([]core.RawResult, error) {
			return nil, nil
		})
		scraper := scrape.ScraperFunc(func(ctx context.Context, url string) string {
			return ""
		})

		p, err := engine.NewPipeline(search, scraper, nil)
		require.NoError(t, err)
		require.NotNil(t, p)
		p.Release()
	})
}

func TestEngine_SeedExamples(t *testing.T) {
	ctx := context.Background()

	t.Run("embeds and stores examples", func(t *testing.T) {
		engine := newTestEngine(t)

		examples := []*core.IntentExample{
			{Bucket: "data1", Text: "issued an RFP for suppliers", IntentWeight: 0.9},
			{Bucket: "data3", Text: "quarterly earnings report", IntentWeight: 0.1},
		}
		require.NoError(t, engine.SeedExamples(ctx, examples))

		count, err := engine.ExampleRepository().CountExamples(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		for _, example := range examples {
			assert.NotEmpty(t, example.Vector)
		}
	})

	t.Run("re-seeding is idempotent", func(t *testing.T) {
		engine := newTestEngine(t)

		examples := []*core.IntentExample{
			{Bucket: "data1", Text: "issued an RFP for suppliers", IntentWeight: 0.9},
		}
		require.NoError(t, engine.SeedExamples(ctx, examples))
		require.NoError(t, engine.SeedExamples(ctx, examples))

		count, err := engine.ExampleRepository().CountExamples(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("invalid example rejected", func(t *testing.T) {
		engine := newTestEngine(t)

		err := engine.SeedExamples(ctx, []*core.IntentExample{{Bucket: "", Text: "x"}})
		assert.ErrorIs(t, err, core.ErrInvalidExample)
	})
}
