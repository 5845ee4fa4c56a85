package storage

import (
	"context"

	"github.com/NageshProgrammer/leadequator/core"
)

// InsertOutcome reports the result of an idempotent lead insert.
type InsertOutcome int

const (
	// OutcomeInserted means the lead was newly persisted.
	OutcomeInserted InsertOutcome = iota + 1
	// OutcomeAlreadyExists means a lead with the same URL is already stored
	// and the insert was a no-op. This is an expected, non-error condition.
	OutcomeAlreadyExists
)

// LeadQuery holds filters for retrieving persisted leads.
// Zero values disable the corresponding filter.
type LeadQuery struct {
	// MinIntent drops leads whose intent score is below this value.
	MinIntent int
	// Domain restricts results to leads from this domain.
	Domain string
	// Limit caps the number of returned leads. Zero or negative means no cap.
	Limit int
}

// LeadRepository provides operations for managing persisted leads.
// Implementations must be thread-safe; concurrent inserts of distinct URLs
// must be safe, and concurrent inserts of the same URL must resolve to one
// OutcomeInserted and OutcomeAlreadyExists for the rest.
type LeadRepository interface {
	// AddLead persists a lead keyed by its URL. The lead's Id and InsertedAt
	// fields are populated. Returns OutcomeAlreadyExists without modifying
	// storage when a lead with the same URL is present.
	AddLead(ctx context.Context, lead *core.Lead) (InsertOutcome, error)

	// LeadExists reports whether a lead with the given URL is stored.
	LeadExists(ctx context.Context, link string) (bool, error)

	// GetLead retrieves a single lead by ID.
	// Returns ErrNotFound if the lead doesn't exist.
	GetLead(ctx context.Context, id core.ID) (*core.Lead, error)

	// GetLeads retrieves leads matching the query,
	// sorted by imre score descending.
	GetLeads(ctx context.Context, query LeadQuery) ([]*core.Lead, error)

	// Close closes the repository and releases resources.
	Close() error
}

// ExampleRepository provides operations for the labeled intent example index.
type ExampleRepository interface {
	// AddExamples stores one or more labeled examples. IDs are derived from
	// the (bucket, text) tuple, so re-seeding the same example overwrites it.
	// Returns the examples with IDs and timestamps populated.
	AddExamples(ctx context.Context, examples ...*core.IntentExample) ([]*core.IntentExample, error)

	// GetExample retrieves a single example by ID.
	// Returns ErrNotFound if the example doesn't exist.
	GetExample(ctx context.Context, id core.ID) (*core.IntentExample, error)

	// CountExamples returns the number of stored examples.
	CountExamples(ctx context.Context) (int, error)

	// ListExamples returns all stored examples. Example corpora are small
	// (hundreds of labeled texts), so a full listing is cheap.
	ListExamples(ctx context.Context) ([]*core.IntentExample, error)

	// FindNearest returns up to k examples most similar to the given vector,
	// ordered by similarity descending. Examples without vectors are skipped.
	FindNearest(ctx context.Context, vector []float32, k int) ([]core.NeighborMatch, error)

	// Close closes the repository and releases resources.
	Close() error
}
