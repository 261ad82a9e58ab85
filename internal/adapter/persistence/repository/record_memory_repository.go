package repository

import (
	"context"
	"encoding/json"
	"sync"

	"quotedesk/internal/domain/entities"
	"quotedesk/internal/usecase/interfaces"
)

// RecordMemoryRepository keeps the serialized collection in process memory.
// It implements the same blob semantics as the DynamoDB adapter (the content
// round-trips through JSON on every load/save), which makes it a faithful
// stand-in for tests and local runs without a store.

type RecordMemoryRepository struct {
	mu   sync.Mutex
	blob []byte
}

var _ interfaces.IRecordRepository = (*RecordMemoryRepository)(nil)

func NewRecordMemoryRepository() *RecordMemoryRepository {
	return &RecordMemoryRepository{}
}

func (r *RecordMemoryRepository) LoadAll(_ context.Context) ([]entities.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.blob) == 0 {
		return []entities.Record{}, nil
	}
	var records []entities.Record
	if err := json.Unmarshal(r.blob, &records); err != nil {
		// Corrupt content fails closed to an empty collection.
		return []entities.Record{}, nil
	}
	if records == nil {
		records = []entities.Record{}
	}
	return records, nil
}

func (r *RecordMemoryRepository) SaveAll(_ context.Context, records []entities.Record) error {
	if records == nil {
		records = []entities.Record{}
	}
	blob, err := json.Marshal(records)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.blob = blob
	r.mu.Unlock()
	return nil
}

// Corrupt overwrites the stored blob with arbitrary bytes. Test hook for the
// fail-closed loading behavior.
func (r *RecordMemoryRepository) Corrupt(raw []byte) {
	r.mu.Lock()
	r.blob = raw
	r.mu.Unlock()
}
