// Package pricing holds the pure quote calculation rules: itemized costs, a
// target margin and two independent tax rules in; selling price, tax amounts
// and the final invoice total out. Nothing here touches storage or HTTP, so
// the calculator can be re-run on every input change.
package pricing

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"quotedesk/internal/domain/entities"
)

// Cost categories are a fixed, order-significant set: persisted quote cost
// data keeps one line per category in this order.
const (
	CategoryTrainerFee = "Trainer Fee"
	CategoryVenue      = "Venue & Logistics"
	CategoryMaterials  = "Training Materials"
	CategoryMeals      = "Meals & Consumption"
	CategoryTransport  = "Transport & Accommodation"
	CategoryMisc       = "Miscellaneous"
)

var costCategories = []string{
	CategoryTrainerFee,
	CategoryVenue,
	CategoryMaterials,
	CategoryMeals,
	CategoryTransport,
	CategoryMisc,
}

// Categories returns the configured cost categories in display order.
func Categories() []string {
	out := make([]string, len(costCategories))
	copy(out, costCategories)
	return out
}

// Calculator defaults applied when no prior quote data exists.
const (
	DefaultMarginPercent = 55.0
	DefaultTax1Label     = "PPN"
	DefaultTax1Percent   = 11.0
	DefaultTax2Label     = "PPh"
	DefaultTax2Percent   = 0.0
)

// TaxRule is one named percentage applied to the selling price.

type TaxRule struct {
	Label   string
	Percent float64
}

// Input carries everything the calculator needs. Lines are expected in
// category order; order affects only display, never the sums.

type Input struct {
	Lines         []entities.CostLine
	MarginPercent float64
	Tax1          TaxRule
	Tax2          TaxRule
}

// Calculate derives the full financial snapshot from in. It is pure and
// deterministic; all outputs are full-precision floats.
//
// Rules:
//   - totalCost = sum of qty*unitCost across lines
//   - marginPercent >= 100 => sellingPrice = 0 (degenerate case, not an error)
//   - each tax applies to sellingPrice independently, never to the other tax
func Calculate(in Input) entities.Financials {
	totalCost := 0.0
	for _, line := range in.Lines {
		totalCost += line.Total()
	}

	marginDecimal := in.MarginPercent / 100
	sellingPrice := 0.0
	if marginDecimal < 1 {
		sellingPrice = totalCost / (1 - marginDecimal)
	}

	tax1 := entities.TaxAmount{
		Label:   in.Tax1.Label,
		Percent: in.Tax1.Percent,
		Amount:  sellingPrice * (in.Tax1.Percent / 100),
	}
	tax2 := entities.TaxAmount{
		Label:   in.Tax2.Label,
		Percent: in.Tax2.Percent,
		Amount:  sellingPrice * (in.Tax2.Percent / 100),
	}

	return entities.Financials{
		TotalCost:     totalCost,
		MarginPercent: in.MarginPercent,
		SellingPrice:  sellingPrice,
		Tax1:          tax1,
		Tax2:          tax2,
		FinalAmount:   sellingPrice + tax1.Amount + tax2.Amount,
	}
}

// ParseNumberOrDefault normalizes numeric form input. Invalid numeric input
// is never an error anywhere in the calculator: it silently coerces to def.
// This is the single place that policy lives.
func ParseNumberOrDefault(raw string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return def
	}
	return v
}

var idrPrinter = message.NewPrinter(language.Indonesian)

// FormatIDR renders v in the fixed id-ID zero-decimal currency style used by
// every display surface (e.g. 4440000 -> "Rp 4.440.000"). Persisted values
// stay full-precision; only this presentation helper rounds.
func FormatIDR(v float64) string {
	return idrPrinter.Sprintf("Rp %v", number.Decimal(v,
		number.MaxFractionDigits(0),
		number.MinFractionDigits(0),
	))
}
