package request

import "quotedesk/internal/domain/entities"

// CreateRequestRequest is the manual intake form payload. All values arrive
// as the presentation layer collected them; validation (required client name)
// happens in the use case so the rule lives in one place.

type CreateRequestRequest struct {
	ClientName  string           `json:"client_name"`
	OrderType   string           `json:"order_type"`
	Source      string           `json:"source"`
	RequestDate string           `json:"request_date"`
	Requester   RequesterRequest `json:"requester"`
	Training    TrainingRequest  `json:"training"`
	Details     DetailsRequest   `json:"details"`
}

type RequesterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	WhatsApp string `json:"wa"`
}

type TrainingRequest struct {
	Participants string `json:"participants"`
	Sessions     string `json:"sessions"`
	Mode         string `json:"mode"`
	Location     string `json:"location"`
	StartDate    string `json:"start_date"`
}

type DetailsRequest struct {
	Region    string `json:"region"`
	Team      string `json:"team"`
	Materials string `json:"materials"`
	Notes     string `json:"notes"`
}

func (r CreateRequestRequest) ToPayload() entities.RequestPayload {
	return entities.RequestPayload{
		ClientName:  r.ClientName,
		OrderType:   r.OrderType,
		Source:      r.Source,
		RequestDate: r.RequestDate,
		Requester: entities.Requester{
			Name:     r.Requester.Name,
			Email:    r.Requester.Email,
			WhatsApp: r.Requester.WhatsApp,
		},
		Training: entities.TrainingDetails{
			Participants: r.Training.Participants,
			Sessions:     r.Training.Sessions,
			Mode:         r.Training.Mode,
			Location:     r.Training.Location,
			StartDate:    r.Training.StartDate,
		},
		Details: entities.RequestDetails{
			Region:    r.Details.Region,
			Team:      r.Details.Team,
			Materials: r.Details.Materials,
			Notes:     r.Details.Notes,
		},
	}
}
