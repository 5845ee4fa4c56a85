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

// LeadRepository implements storage.LeadRepository for BadgerDB.
type LeadRepository struct {
	backend *Backend
}

var _ storage.LeadRepository = (*LeadRepository)(nil)

// NewLeadRepository creates a new LeadRepository.
func NewLeadRepository(backend *Backend) (*LeadRepository, error) {
	return &LeadRepository{backend: backend}, nil
}

// Close releases repository resources.
func (r *LeadRepository) Close() error {
	return nil
}

// AddLead persists a lead keyed by the content hash of its URL.
// Inserting a URL that is already stored is a no-op reported as
// OutcomeAlreadyExists; the stored lead is never overwritten.
func (r *LeadRepository) AddLead(ctx context.Context, lead *core.Lead) (storage.InsertOutcome, error) {
	if err := core.ValidateLead(lead); err != nil {
		return 0, err
	}

	lead.Id = core.IDFromContent(lead.Link)
	if lead.Domain == "" {
		lead.Domain = core.ExtractDomain(lead.Link)
	}

	var outcome storage.InsertOutcome
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeLeadKey(lead.Id)

		_, err := tx.Get(key)
		if err == nil {
			outcome = storage.OutcomeAlreadyExists
			return nil
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		lead.InsertedAt = time.Now().UTC()

		if err := tx.Set(key, storage.MarshalLead(lead)); err != nil {
			return err
		}
		if lead.Domain != "" {
			domainKey := makeLeadDomainKey(lead.Domain, lead.Id)
			if err := tx.Set(domainKey, storage.MarshalID(lead.Id)); err != nil {
				return err
			}
		}

		outcome = storage.OutcomeInserted
		return tx.Commit()
	}, true)

	// A conflict means another transaction inserted the same key first.
	// The URL is the uniqueness boundary, so this resolves to already-exists.
	if errors.Is(err, badger.ErrConflict) {
		return storage.OutcomeAlreadyExists, nil
	}
	if err != nil {
		return 0, err
	}
	return outcome, nil
}

// LeadExists reports whether a lead with the given URL is stored.
func (r *LeadRepository) LeadExists(ctx context.Context, link string) (bool, error) {
	var exists bool
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		_, err := tx.Get(makeLeadKey(core.IDFromContent(link)))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		exists = true
		return nil
	}, false)
	return exists, err
}

// GetLead retrieves a single lead by ID.
func (r *LeadRepository) GetLead(ctx context.Context, id core.ID) (*core.Lead, error) {
	var lead *core.Lead
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeLeadKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return storage.ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			lead, err = storage.UnmarshalLead(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return lead, nil
}

// GetLeads retrieves leads matching the query, sorted by imre score descending.
// Domain-filtered queries resolve through the domain index rather than a full
// record scan.
func (r *LeadRepository) GetLeads(ctx context.Context, query storage.LeadQuery) ([]*core.Lead, error) {
	var leads []*core.Lead

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		if query.Domain != "" {
			leads, err = leadsByDomain(tx, query.Domain)
		} else {
			leads, err = allLeads(tx)
		}
		if err != nil {
			return err
		}

		if query.MinIntent > 0 {
			filtered := leads[:0]
			for _, lead := range leads {
				if lead.Intent.IntentScore >= query.MinIntent {
					filtered = append(filtered, lead)
				}
			}
			leads = filtered
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	// Sort by imre score descending; stable so equal scores keep key order
	slices.SortStableFunc(leads, func(a, b *core.Lead) int {
		if a.ImreScore > b.ImreScore {
			return -1
		}
		if a.ImreScore < b.ImreScore {
			return 1
		}
		return 0
	})

	if query.Limit > 0 && len(leads) > query.Limit {
		leads = leads[:query.Limit]
	}

	return leads, nil
}

// allLeads scans the full lead record prefix.
func allLeads(tx *badger.Txn) ([]*core.Lead, error) {
	var leads []*core.Lead

	opts := badger.DefaultIteratorOptions
	opts.Prefix = []byte(leadRecordPrefix)
	iter := tx.NewIterator(opts)
	defer iter.Close()

	for iter.Rewind(); iter.Valid(); iter.Next() {
		err := iter.Item().Value(func(val []byte) error {
			lead, err := storage.UnmarshalLead(val)
			if err != nil {
				return err
			}
			leads = append(leads, lead)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return leads, nil
}

// leadsByDomain walks the domain index and fetches the referenced records.
func leadsByDomain(tx *badger.Txn, domain string) ([]*core.Lead, error) {
	var ids []core.ID

	opts := badger.DefaultIteratorOptions
	opts.Prefix = makePartialLeadDomainKey(domain)
	iter := tx.NewIterator(opts)
	defer iter.Close()

	for iter.Rewind(); iter.Valid(); iter.Next() {
		err := iter.Item().Value(func(val []byte) error {
			id, err := storage.UnmarshalID(val)
			if err != nil {
				return err
			}
			ids = append(ids, id)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	leads := make([]*core.Lead, 0, len(ids))
	for _, id := range ids {
		item, err := tx.Get(makeLeadKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			// Dangling index entry; the record is authoritative.
			continue
		}
		if err != nil {
			return nil, err
		}
		err = item.Value(func(val []byte) error {
			lead, err := storage.UnmarshalLead(val)
			if err != nil {
				return err
			}
			leads = append(leads, lead)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return leads, nil
}
