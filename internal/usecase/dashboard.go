package usecase

import (
	"context"
	"sort"
	"time"

	"quotedesk/internal/domain/entities"
	"quotedesk/internal/domain/pricing"
)

// AmountPlaceholder is shown for records that carry no pricing yet.
const AmountPlaceholder = "-"

// DashboardRow is one display-ready line of the dashboard projection.

type DashboardRow struct {
	ID        string
	Date      time.Time
	Client    string
	Requester string
	Program   string
	Status    entities.RecordStatus
	Amount    string
}

// Dashboard derives the display view from the full collection: newest first,
// client name taken from the quote payload before the request payload, and an
// amount only for quoted records. It is a pure derivation recomputed in full
// on every call; nothing is mutated or cached.
func (u *RecordUseCase) Dashboard(ctx context.Context) ([]DashboardRow, error) {
	records, err := u.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})

	rows := make([]DashboardRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, DashboardRow{
			ID:        r.ID,
			Date:      r.CreatedAt,
			Client:    displayClient(r),
			Requester: displayRequester(r),
			Program:   displayProgram(r),
			Status:    r.Status,
			Amount:    displayAmount(r),
		})
	}
	return rows, nil
}

func displayClient(r entities.Record) string {
	if r.ClientName != "" {
		return r.ClientName
	}
	if r.Quote != nil && r.Quote.ClientName != "" {
		return r.Quote.ClientName
	}
	if r.Request != nil && r.Request.ClientName != "" {
		return r.Request.ClientName
	}
	return AmountPlaceholder
}

func displayRequester(r entities.Record) string {
	if r.Request != nil {
		return r.Request.Requester.Name
	}
	return ""
}

func displayProgram(r entities.Record) string {
	if r.ProgramName != "" {
		return r.ProgramName
	}
	if r.Quote != nil && r.Quote.ProgramName != "" {
		return r.Quote.ProgramName
	}
	if r.Request != nil && r.Request.Details.Materials != "" {
		return r.Request.Details.Materials
	}
	return AmountPlaceholder
}

func displayAmount(r entities.Record) string {
	if !r.IsQuoted() || r.Quote == nil {
		return AmountPlaceholder
	}
	return pricing.FormatIDR(r.Quote.Financials.FinalAmount)
}
