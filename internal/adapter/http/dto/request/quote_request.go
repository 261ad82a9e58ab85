package request

import (
	"strings"

	"quotedesk/internal/domain/entities"
	"quotedesk/internal/domain/pricing"
)

// QuoteFormRequest carries the calculator form for both saving a quote and
// previewing pricing. Numeric fields are strings on purpose: the presentation
// boundary sends raw input values and invalid numbers silently coerce to
// zero, never to an error.

type QuoteFormRequest struct {
	TargetID      string            `json:"target_id"`
	ClientName    string            `json:"client_name"`
	CompanyName   string            `json:"company_name"`
	ProgramName   string            `json:"program_name"`
	DeliveryMode  string            `json:"delivery_mode"`
	DurationType  string            `json:"duration_type"`
	TrainerName   string            `json:"trainer_name"`
	TrainingDate  string            `json:"training_date"`
	Participants  string            `json:"participants"`
	Sessions      string            `json:"sessions"`
	CostLines     []CostLineRequest `json:"cost_lines"`
	MarginPercent string            `json:"margin_percent"`
	Tax1Label     string            `json:"tax1_label"`
	Tax1Percent   string            `json:"tax1_percent"`
	Tax2Label     string            `json:"tax2_label"`
	Tax2Percent   string            `json:"tax2_percent"`
}

type CostLineRequest struct {
	Component string `json:"component"`
	Qty       string `json:"qty"`
	UnitCost  string `json:"unit_cost"`
}

// ResolveTargetID returns the trimmed upsert target, empty for a standalone
// quote.
func (r QuoteFormRequest) ResolveTargetID() string {
	return strings.TrimSpace(r.TargetID)
}

// ResolveCostLines maps submitted lines positionally onto the fixed category
// list: one entry per category, in category order. Missing lines and invalid
// numbers coerce to zero; submitted lines beyond the category list are
// dropped.
func (r QuoteFormRequest) ResolveCostLines() []entities.CostLine {
	categories := pricing.Categories()
	lines := make([]entities.CostLine, 0, len(categories))
	for i, category := range categories {
		line := entities.CostLine{Component: category}
		if i < len(r.CostLines) {
			line.Qty = pricing.ParseNumberOrDefault(r.CostLines[i].Qty, 0)
			line.UnitCost = pricing.ParseNumberOrDefault(r.CostLines[i].UnitCost, 0)
		}
		lines = append(lines, line)
	}
	return lines
}

// ResolvePricingInput normalizes the margin and tax form fields together with
// the resolved cost lines.
func (r QuoteFormRequest) ResolvePricingInput() pricing.Input {
	return pricing.Input{
		Lines:         r.ResolveCostLines(),
		MarginPercent: pricing.ParseNumberOrDefault(r.MarginPercent, 0),
		Tax1: pricing.TaxRule{
			Label:   r.Tax1Label,
			Percent: pricing.ParseNumberOrDefault(r.Tax1Percent, 0),
		},
		Tax2: pricing.TaxRule{
			Label:   r.Tax2Label,
			Percent: pricing.ParseNumberOrDefault(r.Tax2Percent, 0),
		},
	}
}

// ToQuotePayload builds the persistable quote payload, computing the
// financial snapshot from the current form state.
func (r QuoteFormRequest) ToQuotePayload() entities.QuotePayload {
	lines := r.ResolveCostLines()
	in := r.ResolvePricingInput()
	in.Lines = lines

	return entities.QuotePayload{
		CompanyName:  r.CompanyName,
		ClientName:   r.ClientName,
		ProgramName:  r.ProgramName,
		DeliveryMode: r.DeliveryMode,
		DurationType: r.DurationType,
		TrainerName:  r.TrainerName,
		TrainingDate: r.TrainingDate,
		Participants: r.Participants,
		Sessions:     r.Sessions,
		CostData:     lines,
		Financials:   pricing.Calculate(in),
	}
}
