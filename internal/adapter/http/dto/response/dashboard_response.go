package response

import (
	"time"

	"quotedesk/internal/usecase"
)

type DashboardRowResponse struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	Client    string    `json:"client"`
	Requester string    `json:"requester,omitempty"`
	Program   string    `json:"program"`
	Status    string    `json:"status"`
	Amount    string    `json:"amount"`
}

type DashboardResponse struct {
	Rows  []DashboardRowResponse `json:"rows"`
	Count int                    `json:"count"`
}

func FromDashboardRows(rows []usecase.DashboardRow) DashboardResponse {
	out := make([]DashboardRowResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, DashboardRowResponse{
			ID:        row.ID,
			Date:      row.Date,
			Client:    row.Client,
			Requester: row.Requester,
			Program:   row.Program,
			Status:    string(row.Status),
			Amount:    row.Amount,
		})
	}
	return DashboardResponse{Rows: out, Count: len(out)}
}
