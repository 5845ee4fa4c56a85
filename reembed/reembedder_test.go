package reembed

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NageshProgrammer/leadequator/ai/mock"
	"github.com/NageshProgrammer/leadequator/core"
	"github.com/NageshProgrammer/leadequator/storage"
	"github.com/NageshProgrammer/leadequator/storage/badger"
)

func newTestIndex(t *testing.T) storage.ExampleRepository {
	t.Helper()
	leadRepo, exampleRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		exampleRepo.Close()
		leadRepo.Close()
		backend.Close()
	})
	return exampleRepo
}

func seedExamples(t *testing.T, index storage.ExampleRepository, count int) {
	t.Helper()
	examples := make([]*core.IntentExample, count)
	for i := range examples {
		examples[i] = &core.IntentExample{
			Bucket:       "data1",
			Text:         "labeled example " + string(rune('a'+i)),
			IntentWeight: 0.8,
			Vector:       []float32{1, 0, 0},
		}
	}
	_, err := index.AddExamples(context.Background(), examples...)
	require.NoError(t, err)
}

func fastConfig() *Config {
	return &Config{
		BatchSize:      2,
		ReportInterval: 1,
		MaxRetries:     2,
		RetryDelay:     time.Millisecond,
	}
}

func TestReembedder_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("empty index is a no-op", func(t *testing.T) {
		index := newTestIndex(t)
		embedder := mock.NewMockEmbedder()
		var out bytes.Buffer

		err := NewReembedder(index, embedder, fastConfig(), &out).Run(ctx)
		require.NoError(t, err)
		assert.Contains(t, out.String(), "No examples found")
		assert.Zero(t, embedder.CallCount())
	})

	t.Run("replaces all vectors", func(t *testing.T) {
		index := newTestIndex(t)
		seedExamples(t, index, 5)

		embedder := mock.NewMockEmbedder()
		embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
			vectors := make([][]float32, len(texts))
			for i := range vectors {
				vectors[i] = []float32{0, 1, 0}
			}
			return vectors, nil
		}
		var out bytes.Buffer

		err := NewReembedder(index, embedder, fastConfig(), &out).Run(ctx)
		require.NoError(t, err)

		// 5 examples at batch size 2 is 3 embedding calls
		assert.Equal(t, 3, embedder.CallCount())

		stored, err := index.ListExamples(ctx)
		require.NoError(t, err)
		require.Len(t, stored, 5)
		for _, example := range stored {
			assert.Equal(t, []float32{0, 1, 0}, example.Vector)
		}
	})

	t.Run("does not duplicate examples", func(t *testing.T) {
		index := newTestIndex(t)
		seedExamples(t, index, 4)

		var out bytes.Buffer
		err := NewReembedder(index, mock.NewMockEmbedder(), fastConfig(), &out).Run(ctx)
		require.NoError(t, err)

		count, err := index.CountExamples(ctx)
		require.NoError(t, err)
		assert.Equal(t, 4, count)
	})

	t.Run("retries transient embedding failures", func(t *testing.T) {
		index := newTestIndex(t)
		seedExamples(t, index, 1)

		attempts := 0
		embedder := mock.NewMockEmbedder()
		embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
			attempts++
			if attempts == 1 {
				return nil, errors.New("transient failure")
			}
			return [][]float32{{0, 0, 1}}, nil
		}

		var out bytes.Buffer
		err := NewReembedder(index, embedder, fastConfig(), &out).Run(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, attempts)
	})

	t.Run("persistent failure surfaces", func(t *testing.T) {
		index := newTestIndex(t)
		seedExamples(t, index, 1)

		embedder := mock.NewMockEmbedder()
		embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
			return nil, errors.New("service down")
		}

		var out bytes.Buffer
		err := NewReembedder(index, embedder, fastConfig(), &out).Run(ctx)
		assert.Error(t, err)
	})

	t.Run("vector count mismatch surfaces", func(t *testing.T) {
		index := newTestIndex(t)
		seedExamples(t, index, 2)

		embedder := mock.NewMockEmbedder()
		embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
			return [][]float32{{1}}, nil
		}

		var out bytes.Buffer
		err := NewReembedder(index, embedder, fastConfig(), &out).Run(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "vectors")
	})
}
