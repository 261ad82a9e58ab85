package entities

import "time"

// RecordKind distinguishes the two variants sharing the record identifier
// space. A record starts as a request and is upgraded to a quote in place,
// never duplicated.

type RecordKind string

const (
	RecordKindRequest RecordKind = "request"
	RecordKindQuote   RecordKind = "quote"
)

// RecordStatus only moves forward: New -> Quoted.

type RecordStatus string

const (
	RecordStatusNew    RecordStatus = "New"
	RecordStatusQuoted RecordStatus = "Quoted"
)

// Record is the unit of persistence.
//
// Storage model:
//   - the whole collection is persisted as one JSON document (see the
//     repository adapters); field names below are the document format.
//   - ID and CreatedAt are immutable once assigned.
//
// ClientName and ProgramName are top-level display mirrors kept in sync on
// quote save so the dashboard does not need to dig into payloads.

type Record struct {
	ID          string       `json:"id"`
	Kind        RecordKind   `json:"type"`
	Status      RecordStatus `json:"status"`
	CreatedAt   time.Time    `json:"timestamp"`
	ClientName  string       `json:"clientName,omitempty"`
	ProgramName string       `json:"programName,omitempty"`

	Request *RequestPayload `json:"requestData,omitempty"`
	Quote   *QuotePayload   `json:"quoteData,omitempty"`
}

// IsQuoted reports whether pricing has been attached to the record.
func (r Record) IsQuoted() bool {
	return r.Status == RecordStatusQuoted || r.Kind == RecordKindQuote
}

// RequestPayload captures raw inquiry intake data (manual form or CSV import).
//
// Participants and Sessions are kept as strings end-to-end: they are
// form-sourced values the calculator never consumes numerically.

type RequestPayload struct {
	ClientName  string          `json:"clientName"`
	OrderType   string          `json:"orderType"`
	Source      string          `json:"source,omitempty"`
	RequestDate string          `json:"requestDate"`
	Requester   Requester       `json:"requester"`
	Training    TrainingDetails `json:"training"`
	Details     RequestDetails  `json:"details"`
}

type Requester struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	WhatsApp string `json:"wa"`
}

type TrainingDetails struct {
	Participants string `json:"participants"`
	Sessions     string `json:"sessions"`
	Mode         string `json:"mode"`
	Location     string `json:"location,omitempty"`
	StartDate    string `json:"startDate"`
}

type RequestDetails struct {
	Region    string `json:"region,omitempty"`
	Team      string `json:"team,omitempty"`
	Materials string `json:"materials"`
	Notes     string `json:"notes"`
}

// QuotePayload is attached when a record becomes Quoted. CostData keeps one
// entry per configured cost category, order-significant, persisted verbatim
// for later re-editing. Financials is a deliberate point-in-time snapshot and
// is never recomputed on read.

type QuotePayload struct {
	CompanyName  string     `json:"companyName"`
	ClientName   string     `json:"clientName"`
	ProgramName  string     `json:"programName"`
	DeliveryMode string     `json:"deliveryMode"`
	DurationType string     `json:"durationType"`
	TrainerName  string     `json:"trainerName"`
	TrainingDate string     `json:"trainingDate"`
	Participants string     `json:"participants"`
	Sessions     string     `json:"sessions"`
	CostData     []CostLine `json:"costData"`
	Financials   Financials `json:"financials"`
}

// CostLine is one itemized cost row: quantity times unit cost.

type CostLine struct {
	Component string  `json:"component"`
	Qty       float64 `json:"qty"`
	UnitCost  float64 `json:"unitCost"`
}

// Total returns the line total.
func (l CostLine) Total() float64 {
	return l.Qty * l.UnitCost
}

// TaxAmount is one named tax applied to the selling price, independent of any
// other tax rule (taxes are never compounded on each other).

type TaxAmount struct {
	Label   string  `json:"label"`
	Percent float64 `json:"percent"`
	Amount  float64 `json:"amount"`
}

// Financials is the computed pricing snapshot persisted with a quote. All
// values are full-precision; rounding happens only at the presentation layer.

type Financials struct {
	TotalCost     float64   `json:"totalCost"`
	MarginPercent float64   `json:"marginPercent"`
	SellingPrice  float64   `json:"sellingPrice"`
	Tax1          TaxAmount `json:"tax1"`
	Tax2          TaxAmount `json:"tax2"`
	FinalAmount   float64   `json:"finalAmount"`
}
