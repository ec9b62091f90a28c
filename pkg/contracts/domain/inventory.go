package domain

// CarRecord is one parsed car-for-sale entry. A record is immutable once
// constructed: it exists only when its source line had exactly five fields
// and both numeric fields parsed as base-10 integers.
type CarRecord struct {
	Registration string `json:"registration"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	Mileage      int64  `json:"mileage"`
	Price        int64  `json:"price"`
}

// Inventory is the ordered collection of all successfully parsed records
// from one input source. Insertion order matches file order, minus the
// header and any malformed lines. Registrations are not required to be
// unique.
type Inventory []CarRecord

// StockTotals holds the record count and the exact integer sum of all
// prices. The sum is kept in integer units so the total is never subject
// to floating-point rounding.
type StockTotals struct {
	Count      int   `json:"count"`
	TotalValue int64 `json:"total_value"`
}

// StockSummary is the derived statistics for one inventory. It is
// recomputed on every run and never persisted; every field is a pure
// function of the inventory it was built from.
type StockSummary struct {
	AveragePrice   float64     `json:"average_price"`
	AverageMileage float64     `json:"average_mileage"`
	Cheapest       *CarRecord  `json:"cheapest,omitempty"`
	Totals         StockTotals `json:"totals"`
}
