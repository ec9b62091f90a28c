package exporter

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"carstock/internal/errors"
	"carstock/pkg/contracts/domain"
)

// ReportWriter formats stock summaries and delivers them to the console and
// file sinks.
type ReportWriter struct {
	logger   *slog.Logger
	currency string
}

// NewReportWriter creates a report writer using the given currency prefix
// for monetary lines.
func NewReportWriter(logger *slog.Logger, currency string) *ReportWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportWriter{logger: logger, currency: currency}
}

// BuildReport renders the six fixed report lines: title, average price,
// average mileage, cheapest car, total count, total stock value.
func (w *ReportWriter) BuildReport(summary domain.StockSummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Car Stock Summary\n")
	fmt.Fprintf(&b, "Average price: %s%s\n", w.currency, formatMoney(summary.AveragePrice))
	fmt.Fprintf(&b, "Average mileage: %s km\n", formatMileage(summary.AverageMileage))
	if c := summary.Cheapest; c != nil {
		fmt.Fprintf(&b, "Cheapest car: %s %s %s at %s%s\n",
			c.Registration, c.Make, c.Model, w.currency, formatMoney(float64(c.Price)))
	} else {
		fmt.Fprintf(&b, "Cheapest car: none\n")
	}
	fmt.Fprintf(&b, "Total cars: %d\n", summary.Totals.Count)
	fmt.Fprintf(&b, "Total stock value: %s%s\n", w.currency, formatMoney(float64(summary.Totals.TotalValue)))

	return b.String()
}

// WriteReportFile writes the summary report to path, overwriting any
// previous report. The file handle is released on every exit path,
// including a write error mid-stream. Failures are returned wrapped as
// sink errors; the caller decides fatality (per the run contract they are
// reported and non-fatal).
func (w *ReportWriter) WriteReportFile(path string, summary domain.StockSummary) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.SinkError(path, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.SinkError(path, err)
	}
	defer file.Close()

	buf := bufio.NewWriter(file)
	if _, err := buf.WriteString(w.BuildReport(summary)); err != nil {
		return errors.SinkError(path, err)
	}
	if err := buf.Flush(); err != nil {
		return errors.SinkError(path, err)
	}

	w.logger.Info("Report written", slog.String("path", path))
	return nil
}

// PrintReport writes the report to the console sink. In verbose mode the
// full per-record listing precedes the summary; the file sink never
// includes the listing.
func (w *ReportWriter) PrintReport(out io.Writer, inv domain.Inventory, summary domain.StockSummary, verbose bool) {
	if verbose {
		for _, rec := range inv {
			fmt.Fprintf(out, "%s,%s,%s,%d,%d\n",
				rec.Registration, rec.Make, rec.Model, rec.Mileage, rec.Price)
		}
	}
	fmt.Fprint(out, w.BuildReport(summary))
}
