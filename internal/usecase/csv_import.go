package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"quotedesk/internal/domain/entities"
)

// Defaults applied to CSV-imported requests. Import deliberately produces a
// coarser record than manual intake.
const (
	importDefaultClientName   = "Unknown Client"
	importDefaultOrderType    = "B2B"
	importDefaultParticipants = "20"
	importDefaultSessions     = "1"
	importDefaultMode         = "Offline"
	importNotes               = "Imported via CSV"
)

// ImportCSV parses csvText into new request records and persists them in one
// SaveAll. It returns the number of records actually added, which is what is
// reported back to the caller (skipped rows are excluded, never diagnosed).
//
// Format: rows split on newline, columns split on comma. There is no quoting
// or escaping support; that is a known limitation of this naive format, not
// something to silently fix. Row 0 is always a header and dropped regardless
// of content. Positional mapping:
//
//	0 client name, 1 requester name, 2 materials, 3 start date, 4 participants
//
// A row is skipped when it has fewer than two columns or every column is
// blank after trimming.
func (u *RecordUseCase) ImportCSV(ctx context.Context, csvText string) (int, error) {
	records, err := u.repo.LoadAll(ctx)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	today := now.Format("2006-01-02")

	added := 0
	for i, line := range strings.Split(csvText, "\n") {
		if i == 0 {
			continue
		}
		cols := splitAndTrim(line)
		if len(cols) < 2 || allBlank(cols) {
			continue
		}

		payload := entities.RequestPayload{
			ClientName:  colOrDefault(cols, 0, importDefaultClientName),
			OrderType:   importDefaultOrderType,
			RequestDate: today,
			Requester:   entities.Requester{Name: col(cols, 1)},
			Training: entities.TrainingDetails{
				Participants: colOrDefault(cols, 4, importDefaultParticipants),
				Sessions:     importDefaultSessions,
				Mode:         importDefaultMode,
				StartDate:    col(cols, 3),
			},
			Details: entities.RequestDetails{
				Materials: col(cols, 2),
				Notes:     importNotes,
			},
		}

		records = append(records, entities.Record{
			ID:         newImportID(now),
			Kind:       entities.RecordKindRequest,
			Status:     entities.RecordStatusNew,
			CreatedAt:  now,
			ClientName: payload.ClientName,
			Request:    &payload,
		})
		added++
	}

	if err := u.repo.SaveAll(ctx, records); err != nil {
		return 0, err
	}
	log.Printf("[import][usecase] csv import done added=%d", added)
	return added, nil
}

func splitAndTrim(line string) []string {
	cols := strings.Split(line, ",")
	for i := range cols {
		cols[i] = strings.TrimSpace(cols[i])
	}
	return cols
}

func allBlank(cols []string) bool {
	for _, c := range cols {
		if c != "" {
			return false
		}
	}
	return true
}

func col(cols []string, i int) string {
	if i < len(cols) {
		return cols[i]
	}
	return ""
}

func colOrDefault(cols []string, i int, def string) string {
	if v := col(cols, i); v != "" {
		return v
	}
	return def
}
