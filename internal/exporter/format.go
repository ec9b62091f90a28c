package exporter

import (
	"fmt"
	"strconv"
)

// formatMoney formats a monetary value with exactly 2 decimal places.
// This ensures values like 10500 appear as 10500.00 in the report.
func formatMoney(f float64) string {
	return fmt.Sprintf("%.2f", f)
}

// formatMileage formats an average mileage with only as many decimals as
// the value carries, so 40000.0 renders as 40000 and 40000.5 as 40000.5.
func formatMileage(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
