package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"quotedesk/internal/domain/entities"
	"quotedesk/internal/domain/pricing"
	mock_interfaces "quotedesk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func quotePayload(client string) entities.QuotePayload {
	return entities.QuotePayload{
		ClientName:  client,
		ProgramName: "Leadership 101",
		CostData:    []entities.CostLine{{Component: pricing.CategoryTrainerFee, Qty: 2, UnitCost: 1_000_000}},
		Financials: pricing.Calculate(pricing.Input{
			Lines:         []entities.CostLine{{Component: pricing.CategoryTrainerFee, Qty: 2, UnitCost: 1_000_000}},
			MarginPercent: 50,
			Tax1:          pricing.TaxRule{Label: "PPN", Percent: 11},
		}),
	}
}

func TestRecordUseCase_CreateRequest(t *testing.T) {
	t.Run("blank client name", func(t *testing.T) {
		uc := NewRecordUseCase(nil)
		_, err := uc.CreateRequest(context.Background(), entities.RequestPayload{ClientName: "   "})
		if !errors.Is(err, ErrClientNameRequired) {
			t.Fatalf("expected ErrClientNameRequired, got %v", err)
		}
	})

	t.Run("load error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRecordRepository(ctrl)
		uc := NewRecordUseCase(repo)

		repo.EXPECT().LoadAll(gomock.Any()).Return(nil, errors.New("storage down"))

		_, err := uc.CreateRequest(context.Background(), entities.RequestPayload{ClientName: "Acme"})
		if err == nil || err.Error() != "storage down" {
			t.Fatalf("expected storage error, got %v", err)
		}
	})

	t.Run("creates and persists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRecordRepository(ctrl)
		uc := NewRecordUseCase(repo)

		existing := entities.Record{ID: "1", Kind: entities.RecordKindRequest, Status: entities.RecordStatusNew}
		var saved []entities.Record
		repo.EXPECT().LoadAll(gomock.Any()).Return([]entities.Record{existing}, nil)
		repo.EXPECT().SaveAll(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, recs []entities.Record) error {
				saved = recs
				return nil
			},
		)

		record, err := uc.CreateRequest(context.Background(), entities.RequestPayload{ClientName: " Acme "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if record.ID == "" || record.Kind != entities.RecordKindRequest || record.Status != entities.RecordStatusNew {
			t.Fatalf("unexpected record: %+v", record)
		}
		if record.ClientName != "Acme" || record.Request.ClientName != "Acme" {
			t.Fatalf("client name not trimmed: %+v", record)
		}
		if record.Request.RequestDate == "" {
			t.Fatalf("expected defaulted request date")
		}
		if record.CreatedAt.IsZero() {
			t.Fatalf("expected timestamp")
		}
		if len(saved) != 2 || saved[0].ID != "1" || saved[1].ID != record.ID {
			t.Fatalf("unexpected saved collection: %+v", saved)
		}
	})
}

func TestRecordUseCase_SaveQuote(t *testing.T) {
	t.Run("blank client name", func(t *testing.T) {
		uc := NewRecordUseCase(nil)
		_, err := uc.SaveQuote(context.Background(), "", quotePayload("  "))
		if !errors.Is(err, ErrClientNameRequired) {
			t.Fatalf("expected ErrClientNameRequired, got %v", err)
		}
	})

	t.Run("promotes existing request in place", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRecordRepository(ctrl)
		uc := NewRecordUseCase(repo)

		createdAt := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
		request := entities.Record{
			ID:        "req-1",
			Kind:      entities.RecordKindRequest,
			Status:    entities.RecordStatusNew,
			CreatedAt: createdAt,
			Request:   &entities.RequestPayload{ClientName: "Acme", Requester: entities.Requester{Name: "Jane"}},
		}
		var saved []entities.Record
		repo.EXPECT().LoadAll(gomock.Any()).Return([]entities.Record{request}, nil)
		repo.EXPECT().SaveAll(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, recs []entities.Record) error {
				saved = recs
				return nil
			},
		)

		record, err := uc.SaveQuote(context.Background(), "req-1", quotePayload("Acme"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if record.Kind != entities.RecordKindQuote || record.Status != entities.RecordStatusQuoted {
			t.Fatalf("expected upgrade to quote, got %+v", record)
		}
		if record.ID != "req-1" || !record.CreatedAt.Equal(createdAt) {
			t.Fatalf("id/createdAt not preserved: %+v", record)
		}
		if record.Request == nil || record.Request.Requester.Name != "Jane" {
			t.Fatalf("request payload not preserved: %+v", record)
		}
		if len(saved) != 1 {
			t.Fatalf("expected in-place mutation, got %d records", len(saved))
		}
	})

	t.Run("promotion is idempotent on id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRecordRepository(ctrl)
		uc := NewRecordUseCase(repo)

		collection := []entities.Record{{
			ID:        "req-1",
			Kind:      entities.RecordKindRequest,
			Status:    entities.RecordStatusNew,
			CreatedAt: time.Now().UTC(),
		}}
		repo.EXPECT().LoadAll(gomock.Any()).DoAndReturn(
			func(context.Context) ([]entities.Record, error) { return collection, nil },
		).Times(2)
		repo.EXPECT().SaveAll(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, recs []entities.Record) error {
				collection = recs
				return nil
			},
		).Times(2)

		for i := 0; i < 2; i++ {
			if _, err := uc.SaveQuote(context.Background(), "req-1", quotePayload("Acme")); err != nil {
				t.Fatalf("save %d: %v", i, err)
			}
		}
		if len(collection) != 1 {
			t.Fatalf("expected 1 record after double promotion, got %d", len(collection))
		}
	})

	t.Run("stale target id recreates under same id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRecordRepository(ctrl)
		uc := NewRecordUseCase(repo)

		var saved []entities.Record
		repo.EXPECT().LoadAll(gomock.Any()).Return([]entities.Record{}, nil)
		repo.EXPECT().SaveAll(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, recs []entities.Record) error {
				saved = recs
				return nil
			},
		)

		record, err := uc.SaveQuote(context.Background(), "X", quotePayload("Acme"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if record.ID != "X" || record.Status != entities.RecordStatusQuoted {
			t.Fatalf("expected recreated quoted record with id X, got %+v", record)
		}
		if len(saved) != 1 || saved[0].ID != "X" {
			t.Fatalf("unexpected saved collection: %+v", saved)
		}
	})

	t.Run("empty target id creates fresh record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRecordRepository(ctrl)
		uc := NewRecordUseCase(repo)

		repo.EXPECT().LoadAll(gomock.Any()).Return([]entities.Record{{ID: "other"}}, nil)
		repo.EXPECT().SaveAll(gomock.Any(), gomock.Len(2)).Return(nil)

		record, err := uc.SaveQuote(context.Background(), "", quotePayload("Acme"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if record.ID == "" || record.ID == "other" {
			t.Fatalf("expected fresh id, got %q", record.ID)
		}
		if record.Quote == nil || record.Quote.Financials.FinalAmount != 4_440_000 {
			t.Fatalf("financial snapshot not attached: %+v", record.Quote)
		}
	})

	t.Run("save error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRecordRepository(ctrl)
		uc := NewRecordUseCase(repo)

		repo.EXPECT().LoadAll(gomock.Any()).Return([]entities.Record{}, nil)
		repo.EXPECT().SaveAll(gomock.Any(), gomock.Any()).Return(errors.New("storage down"))

		_, err := uc.SaveQuote(context.Background(), "", quotePayload("Acme"))
		if err == nil || err.Error() != "storage down" {
			t.Fatalf("expected storage error, got %v", err)
		}
	})
}

func TestRecordUseCase_DeleteRecord(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewRecordUseCase(nil)
		if err := uc.DeleteRecord(context.Background(), "  "); !errors.Is(err, ErrInvalidRecordID) {
			t.Fatalf("expected ErrInvalidRecordID, got %v", err)
		}
	})

	t.Run("removes matching record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRecordRepository(ctrl)
		uc := NewRecordUseCase(repo)

		var saved []entities.Record
		repo.EXPECT().LoadAll(gomock.Any()).Return([]entities.Record{{ID: "a"}, {ID: "b"}}, nil)
		repo.EXPECT().SaveAll(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, recs []entities.Record) error {
				saved = recs
				return nil
			},
		)

		if err := uc.DeleteRecord(context.Background(), "a"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(saved) != 1 || saved[0].ID != "b" {
			t.Fatalf("unexpected saved collection: %+v", saved)
		}
	})

	t.Run("unknown id leaves collection unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRecordRepository(ctrl)
		uc := NewRecordUseCase(repo)

		var saved []entities.Record
		repo.EXPECT().LoadAll(gomock.Any()).Return([]entities.Record{{ID: "a"}, {ID: "b"}}, nil)
		repo.EXPECT().SaveAll(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, recs []entities.Record) error {
				saved = recs
				return nil
			},
		)

		if err := uc.DeleteRecord(context.Background(), "missing"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(saved) != 2 || saved[0].ID != "a" || saved[1].ID != "b" {
			t.Fatalf("collection should be unchanged: %+v", saved)
		}
	})
}
