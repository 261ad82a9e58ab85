package response

import (
	"time"

	"quotedesk/internal/domain/entities"
)

// RecordResponse is the structured record view returned to presentation
// collaborators. Payloads are echoed as persisted.

type RecordResponse struct {
	ID          string                   `json:"id"`
	Type        string                   `json:"type"`
	Status      string                   `json:"status"`
	CreatedAt   time.Time                `json:"created_at"`
	ClientName  string                   `json:"client_name,omitempty"`
	ProgramName string                   `json:"program_name,omitempty"`
	Request     *entities.RequestPayload `json:"request_data,omitempty"`
	Quote       *entities.QuotePayload   `json:"quote_data,omitempty"`
}

func FromRecord(r entities.Record) RecordResponse {
	return RecordResponse{
		ID:          r.ID,
		Type:        string(r.Kind),
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
		ClientName:  r.ClientName,
		ProgramName: r.ProgramName,
		Request:     r.Request,
		Quote:       r.Quote,
	}
}

// ImportResponse reports how many records a CSV import actually added, not
// how many rows it saw.

type ImportResponse struct {
	Added int `json:"added"`
}
