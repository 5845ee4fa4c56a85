package badger

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/NageshProgrammer/leadequator/core"
	"github.com/NageshProgrammer/leadequator/storage"
)

// ExampleRepository implements storage.ExampleRepository for BadgerDB.
// It stores labeled intent examples and serves nearest-neighbor retrieval
// over their embedding vectors by scanning the example records.
type ExampleRepository struct {
	backend *Backend
}

var _ storage.ExampleRepository = (*ExampleRepository)(nil)

// NewExampleRepository creates a new ExampleRepository.
func NewExampleRepository(backend *Backend) (*ExampleRepository, error) {
	return &ExampleRepository{backend: backend}, nil
}

// Close releases repository resources.
func (r *ExampleRepository) Close() error {
	return nil
}

// AddExamples stores one or more labeled examples.
// IDs are content-based on the (bucket, text) tuple, so re-seeding the same
// example overwrites the stored copy rather than duplicating it.
func (r *ExampleRepository) AddExamples(ctx context.Context, examples ...*core.IntentExample) ([]*core.IntentExample, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, example := range examples {
			if err := core.ValidateExample(example); err != nil {
				return err
			}

			tuple := "(" + example.Bucket + "," + example.Text + ")"
			example.Id = core.IDFromContent(tuple)

			now := time.Now().UTC()
			if example.InsertedAt.IsZero() {
				example.InsertedAt = now
			}
			example.UpdatedAt = now

			key := makeExampleKey(example.Id)
			if err := tx.Set(key, storage.MarshalExample(example)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return examples, err
}

// GetExample retrieves a single example by ID.
func (r *ExampleRepository) GetExample(ctx context.Context, id core.ID) (*core.IntentExample, error) {
	var example *core.IntentExample
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeExampleKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return storage.ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			example, err = storage.UnmarshalExample(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return example, nil
}

// CountExamples returns the number of stored examples.
func (r *ExampleRepository) CountExamples(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(exampleRecordPrefix)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// ListExamples returns all stored examples.
func (r *ExampleRepository) ListExamples(ctx context.Context) ([]*core.IntentExample, error) {
	var examples []*core.IntentExample

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(exampleRecordPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				example, err := storage.UnmarshalExample(val)
				if err != nil {
					return err
				}
				examples = append(examples, example)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return examples, nil
}

// FindNearest returns up to k examples most similar to the given vector,
// ordered by similarity descending. Examples without vectors are skipped.
func (r *ExampleRepository) FindNearest(ctx context.Context, vector []float32, k int) ([]core.NeighborMatch, error) {
	var matches []core.NeighborMatch

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(exampleRecordPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var example *core.IntentExample
			err := iter.Item().Value(func(val []byte) error {
				var err error
				example, err = storage.UnmarshalExample(val)
				return err
			})
			if err != nil {
				return err
			}
			if example == nil || len(example.Vector) == 0 {
				continue
			}

			matches = append(matches, core.NeighborMatch{
				Bucket:       example.Bucket,
				Similarity:   cosineSimilarity(vector, example.Vector),
				IntentWeight: example.IntentWeight,
			})
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	// Sort by similarity descending
	slices.SortFunc(matches, func(a, b core.NeighborMatch) int {
		if a.Similarity > b.Similarity {
			return -1
		}
		if a.Similarity < b.Similarity {
			return 1
		}
		return 0
	})

	if k > 0 && len(matches) > k {
		matches = matches[:k]
	}

	return matches, nil
}
