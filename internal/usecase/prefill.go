package usecase

import (
	"context"
	"strconv"
	"strings"

	"quotedesk/internal/domain/entities"
	"quotedesk/internal/domain/pricing"
)

// CalculatorForm is the pre-filled calculator state for one record. All
// values are form strings; the calculator coerces them when computing.

type CalculatorForm struct {
	TargetID      string
	ClientName    string
	CompanyName   string
	ProgramName   string
	DeliveryMode  string
	DurationType  string
	TrainerName   string
	TrainingDate  string
	Participants  string
	Sessions      string
	CostLines     []CostLineForm
	MarginPercent string
	Tax1Label     string
	Tax1Percent   string
	Tax2Label     string
	Tax2Percent   string
}

type CostLineForm struct {
	Component string
	Qty       string
	UnitCost  string
}

// CalculatorPrefill loads the record and bridges it into calculator state.
//
// Requests copy intake fields, default participants/sessions when absent and
// reset every cost line to qty=1 unitCost=0: prior cost data from the source
// is never reused, which forces explicit re-pricing. Quotes restore every
// persisted field verbatim, with stored cost lines matched positionally onto
// the fixed category list; categories beyond the stored list keep the reset
// defaults.
func (u *RecordUseCase) CalculatorPrefill(ctx context.Context, id string) (CalculatorForm, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return CalculatorForm{}, ErrInvalidRecordID
	}

	records, err := u.repo.LoadAll(ctx)
	if err != nil {
		return CalculatorForm{}, err
	}
	idx := indexByID(records, id)
	if idx < 0 {
		return CalculatorForm{}, ErrRecordNotFound
	}

	record := records[idx]
	if record.IsQuoted() && record.Quote != nil {
		return prefillFromQuote(record), nil
	}
	return prefillFromRequest(record), nil
}

func prefillFromRequest(record entities.Record) CalculatorForm {
	form := defaultForm(record.ID)
	r := record.Request
	if r == nil {
		return form
	}

	form.ClientName = r.ClientName
	form.ProgramName = r.Details.Materials
	form.DeliveryMode = valueOrDefault(r.Training.Mode, importDefaultMode)
	form.TrainingDate = r.Training.StartDate
	form.Participants = valueOrDefault(r.Training.Participants, importDefaultParticipants)
	form.Sessions = valueOrDefault(r.Training.Sessions, importDefaultSessions)
	return form
}

func prefillFromQuote(record entities.Record) CalculatorForm {
	form := defaultForm(record.ID)
	q := record.Quote

	form.ClientName = q.ClientName
	form.CompanyName = q.CompanyName
	form.ProgramName = q.ProgramName
	form.DeliveryMode = q.DeliveryMode
	form.DurationType = q.DurationType
	form.TrainerName = q.TrainerName
	form.TrainingDate = q.TrainingDate
	form.Participants = q.Participants
	form.Sessions = q.Sessions

	for i, line := range q.CostData {
		if i >= len(form.CostLines) {
			break
		}
		form.CostLines[i].Qty = formatNumber(line.Qty)
		form.CostLines[i].UnitCost = formatNumber(line.UnitCost)
	}

	form.MarginPercent = formatNumber(q.Financials.MarginPercent)
	form.Tax1Label = q.Financials.Tax1.Label
	form.Tax1Percent = formatNumber(q.Financials.Tax1.Percent)
	form.Tax2Label = q.Financials.Tax2.Label
	form.Tax2Percent = formatNumber(q.Financials.Tax2.Percent)
	return form
}

// defaultForm is the calculator's initial on-screen state: every category at
// qty=1 unitCost=0, default margin and tax rules.
func defaultForm(targetID string) CalculatorForm {
	categories := pricing.Categories()
	lines := make([]CostLineForm, 0, len(categories))
	for _, c := range categories {
		lines = append(lines, CostLineForm{Component: c, Qty: "1", UnitCost: "0"})
	}
	return CalculatorForm{
		TargetID:      targetID,
		CostLines:     lines,
		MarginPercent: formatNumber(pricing.DefaultMarginPercent),
		Tax1Label:     pricing.DefaultTax1Label,
		Tax1Percent:   formatNumber(pricing.DefaultTax1Percent),
		Tax2Label:     pricing.DefaultTax2Label,
		Tax2Percent:   formatNumber(pricing.DefaultTax2Percent),
	}
}

func valueOrDefault(v, def string) string {
	if strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
