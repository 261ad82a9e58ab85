package usecase

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"quotedesk/internal/domain/entities"
	"quotedesk/internal/usecase/interfaces"
)

var (
	ErrClientNameRequired = errors.New("client name is required")
	ErrInvalidRecordID    = errors.New("invalid record id")
	ErrRecordNotFound     = errors.New("record not found")
)

// IRecordUseCase exposes the record lifecycle operations:
//   - request intake (manual form and CSV import)
//   - promoting a request into a quote / saving a standalone quote
//   - deletion, dashboard projection and calculator pre-fill
//
// Every mutating operation reads the full current collection, mutates it and
// writes it back in a single SaveAll. The use case never holds a partial
// collection across calls; a single active editor is assumed (no
// concurrent-writer coordination).

type IRecordUseCase interface {
	CreateRequest(ctx context.Context, payload entities.RequestPayload) (entities.Record, error)
	SaveQuote(ctx context.Context, targetID string, quote entities.QuotePayload) (entities.Record, error)
	DeleteRecord(ctx context.Context, id string) error
	ImportCSV(ctx context.Context, csvText string) (int, error)
	Dashboard(ctx context.Context) ([]DashboardRow, error)
	CalculatorPrefill(ctx context.Context, id string) (CalculatorForm, error)
}

type RecordUseCase struct {
	repo interfaces.IRecordRepository
}

var _ IRecordUseCase = (*RecordUseCase)(nil)

func NewRecordUseCase(repo interfaces.IRecordRepository) *RecordUseCase {
	return &RecordUseCase{repo: repo}
}

// CreateRequest validates and persists a new intake request. The record
// starts as kind=request, status=New; a blank request date defaults to today.
func (u *RecordUseCase) CreateRequest(ctx context.Context, payload entities.RequestPayload) (entities.Record, error) {
	payload.ClientName = strings.TrimSpace(payload.ClientName)
	if payload.ClientName == "" {
		return entities.Record{}, ErrClientNameRequired
	}

	now := time.Now().UTC()
	if strings.TrimSpace(payload.RequestDate) == "" {
		payload.RequestDate = now.Format("2006-01-02")
	}

	record := entities.Record{
		ID:         newRecordID(now),
		Kind:       entities.RecordKindRequest,
		Status:     entities.RecordStatusNew,
		CreatedAt:  now,
		ClientName: payload.ClientName,
		Request:    &payload,
	}

	records, err := u.repo.LoadAll(ctx)
	if err != nil {
		return entities.Record{}, err
	}
	records = append(records, record)
	if err := u.repo.SaveAll(ctx, records); err != nil {
		return entities.Record{}, err
	}
	return record, nil
}

// SaveQuote attaches pricing to a record (upsert by identifier).
//
// Branches:
//   - targetID refers to an existing record: upgrade it in place to
//     kind=quote, status=Quoted. ID, CreatedAt and any request payload are
//     preserved; the quote payload is attached, never merged destructively.
//   - targetID is set but unknown (stale reference): recover by creating a
//     new quoted record under that same id so the originating context is not
//     lost. Logged, since prior edits may have been deleted meanwhile.
//   - targetID is empty: create a standalone quote with a fresh id.
//
// All branches end in one SaveAll of the whole collection.
func (u *RecordUseCase) SaveQuote(ctx context.Context, targetID string, quote entities.QuotePayload) (entities.Record, error) {
	quote.ClientName = strings.TrimSpace(quote.ClientName)
	if quote.ClientName == "" {
		return entities.Record{}, ErrClientNameRequired
	}

	records, err := u.repo.LoadAll(ctx)
	if err != nil {
		return entities.Record{}, err
	}

	now := time.Now().UTC()
	targetID = strings.TrimSpace(targetID)

	idx := -1
	if targetID != "" {
		idx = indexByID(records, targetID)
	}

	var record entities.Record
	switch {
	case idx >= 0:
		record = records[idx]
	case targetID != "":
		log.Printf("[quote][usecase] target not found, recreating id=%s", targetID)
		record = entities.Record{ID: targetID, CreatedAt: now}
	default:
		record = entities.Record{ID: newRecordID(now), CreatedAt: now}
	}

	record.Kind = entities.RecordKindQuote
	record.Status = entities.RecordStatusQuoted
	record.ClientName = quote.ClientName
	record.ProgramName = quote.ProgramName
	record.Quote = &quote

	if idx >= 0 {
		records[idx] = record
	} else {
		records = append(records, record)
	}

	if err := u.repo.SaveAll(ctx, records); err != nil {
		return entities.Record{}, err
	}
	return record, nil
}

// DeleteRecord removes the record with the given id. Deleting an unknown id
// is a no-op on the collection content. Deletion is irreversible; callers are
// expected to confirm with the user first.
func (u *RecordUseCase) DeleteRecord(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidRecordID
	}

	records, err := u.repo.LoadAll(ctx)
	if err != nil {
		return err
	}

	filtered := records[:0]
	for _, r := range records {
		if r.ID != id {
			filtered = append(filtered, r)
		}
	}
	return u.repo.SaveAll(ctx, filtered)
}

func indexByID(records []entities.Record, id string) int {
	for i, r := range records {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// newRecordID returns a millisecond-timestamp id, matching the persisted
// document format of manually created records.
func newRecordID(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}

// newImportID adds a random suffix so bulk-imported rows stay unique even
// when many land within the same millisecond.
func newImportID(now time.Time) string {
	return newRecordID(now) + uuid.NewString()[:8]
}
