package interfaces

import (
	"context"

	"quotedesk/internal/domain/entities"
)

// IRecordRepository abstracts persistence of the record collection.
//
// The collection is deliberately coarse-grained: it is loaded and replaced as
// a whole. Every lifecycle operation does a full read-modify-write through
// this contract, which keeps business logic independent from the store
// (DynamoDB document today, anything transactional tomorrow).
//
// LoadAll must fail closed: absent or corrupt stored content yields an empty
// collection, never an error the caller has to distinguish from storage
// being unavailable.

type IRecordRepository interface {
	LoadAll(ctx context.Context) ([]entities.Record, error)
	SaveAll(ctx context.Context, records []entities.Record) error
}
