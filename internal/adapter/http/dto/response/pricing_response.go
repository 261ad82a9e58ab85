package response

import (
	"quotedesk/internal/domain/entities"
	"quotedesk/internal/domain/pricing"
	"quotedesk/internal/usecase"
)

// PricingPreviewResponse pairs the full-precision financial snapshot with the
// display strings the presentation layer renders. Only the display values are
// rounded.

type PricingPreviewResponse struct {
	Financials entities.Financials `json:"financials"`
	Display    PricingDisplay      `json:"display"`
}

type PricingDisplay struct {
	LineTotals   []string `json:"line_totals"`
	TotalCost    string   `json:"total_cost"`
	SellingPrice string   `json:"selling_price"`
	Tax1Amount   string   `json:"tax1_amount"`
	Tax2Amount   string   `json:"tax2_amount"`
	FinalAmount  string   `json:"final_amount"`
}

func FromPricing(lines []entities.CostLine, fin entities.Financials) PricingPreviewResponse {
	lineTotals := make([]string, 0, len(lines))
	for _, line := range lines {
		lineTotals = append(lineTotals, pricing.FormatIDR(line.Total()))
	}
	return PricingPreviewResponse{
		Financials: fin,
		Display: PricingDisplay{
			LineTotals:   lineTotals,
			TotalCost:    pricing.FormatIDR(fin.TotalCost),
			SellingPrice: pricing.FormatIDR(fin.SellingPrice),
			Tax1Amount:   pricing.FormatIDR(fin.Tax1.Amount),
			Tax2Amount:   pricing.FormatIDR(fin.Tax2.Amount),
			FinalAmount:  pricing.FormatIDR(fin.FinalAmount),
		},
	}
}

// CalculatorFormResponse is the pre-filled calculator state for one record.

type CalculatorFormResponse struct {
	TargetID      string             `json:"target_id"`
	ClientName    string             `json:"client_name"`
	CompanyName   string             `json:"company_name"`
	ProgramName   string             `json:"program_name"`
	DeliveryMode  string             `json:"delivery_mode"`
	DurationType  string             `json:"duration_type"`
	TrainerName   string             `json:"trainer_name"`
	TrainingDate  string             `json:"training_date"`
	Participants  string             `json:"participants"`
	Sessions      string             `json:"sessions"`
	CostLines     []CostLineResponse `json:"cost_lines"`
	MarginPercent string             `json:"margin_percent"`
	Tax1Label     string             `json:"tax1_label"`
	Tax1Percent   string             `json:"tax1_percent"`
	Tax2Label     string             `json:"tax2_label"`
	Tax2Percent   string             `json:"tax2_percent"`
}

type CostLineResponse struct {
	Component string `json:"component"`
	Qty       string `json:"qty"`
	UnitCost  string `json:"unit_cost"`
}

func FromCalculatorForm(form usecase.CalculatorForm) CalculatorFormResponse {
	lines := make([]CostLineResponse, 0, len(form.CostLines))
	for _, line := range form.CostLines {
		lines = append(lines, CostLineResponse{Component: line.Component, Qty: line.Qty, UnitCost: line.UnitCost})
	}
	return CalculatorFormResponse{
		TargetID:      form.TargetID,
		ClientName:    form.ClientName,
		CompanyName:   form.CompanyName,
		ProgramName:   form.ProgramName,
		DeliveryMode:  form.DeliveryMode,
		DurationType:  form.DurationType,
		TrainerName:   form.TrainerName,
		TrainingDate:  form.TrainingDate,
		Participants:  form.Participants,
		Sessions:      form.Sessions,
		CostLines:     lines,
		MarginPercent: form.MarginPercent,
		Tax1Label:     form.Tax1Label,
		Tax1Percent:   form.Tax1Percent,
		Tax2Label:     form.Tax2Label,
		Tax2Percent:   form.Tax2Percent,
	}
}
