package dataprocessing

import (
	"carstock/pkg/contracts/domain"
)

// AverageOf returns the arithmetic mean of the selected numeric field
// across the inventory, computed in floating point regardless of the
// field's integer storage. An empty inventory yields 0 rather than a
// division by zero.
func AverageOf(inv domain.Inventory, field func(domain.CarRecord) int64) float64 {
	if len(inv) == 0 {
		return 0
	}
	var sum int64
	for _, rec := range inv {
		sum += field(rec)
	}
	return float64(sum) / float64(len(inv))
}

// Cheapest returns the record with the lowest price and true, or the zero
// record and false for an empty inventory. Ties keep the earliest record:
// a later record replaces the current minimum only when strictly cheaper.
func Cheapest(inv domain.Inventory) (domain.CarRecord, bool) {
	if len(inv) == 0 {
		return domain.CarRecord{}, false
	}
	cheapest := inv[0]
	for _, rec := range inv[1:] {
		if rec.Price < cheapest.Price {
			cheapest = rec
		}
	}
	return cheapest, true
}

// Summarize returns the record count and the exact integer sum of all
// prices. An empty inventory yields {0, 0}.
func Summarize(inv domain.Inventory) domain.StockTotals {
	totals := domain.StockTotals{Count: len(inv)}
	for _, rec := range inv {
		totals.TotalValue += rec.Price
	}
	return totals
}

// BuildSummary composes the full derived statistics consumed by the
// reporter. Pure function of the inventory.
func BuildSummary(inv domain.Inventory) domain.StockSummary {
	summary := domain.StockSummary{
		AveragePrice:   AverageOf(inv, func(r domain.CarRecord) int64 { return r.Price }),
		AverageMileage: AverageOf(inv, func(r domain.CarRecord) int64 { return r.Mileage }),
		Totals:         Summarize(inv),
	}
	if rec, ok := Cheapest(inv); ok {
		summary.Cheapest = &rec
	}
	return summary
}
