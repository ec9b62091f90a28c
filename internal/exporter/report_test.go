package exporter

import (
	stderrors "errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "carstock/internal/errors"
	"carstock/pkg/contracts/domain"
)

func testWriter() *ReportWriter {
	return NewReportWriter(slog.New(slog.NewTextHandler(io.Discard, nil)), "€")
}

func sampleSummary() domain.StockSummary {
	return domain.StockSummary{
		AveragePrice:   10500,
		AverageMileage: 40000,
		Cheapest: &domain.CarRecord{
			Registration: "REG2",
			Make:         "Ford",
			Model:        "Fiesta",
			Mileage:      30000,
			Price:        9000,
		},
		Totals: domain.StockTotals{Count: 2, TotalValue: 21000},
	}
}

func TestBuildReport(t *testing.T) {
	report := testWriter().BuildReport(sampleSummary())

	lines := strings.Split(strings.TrimRight(report, "\n"), "\n")
	require.Len(t, lines, 6)

	assert.Equal(t, "Car Stock Summary", lines[0])
	assert.Equal(t, "Average price: €10500.00", lines[1])
	assert.Equal(t, "Average mileage: 40000 km", lines[2])
	assert.Equal(t, "Cheapest car: REG2 Ford Fiesta at €9000.00", lines[3])
	assert.Equal(t, "Total cars: 2", lines[4])
	assert.Equal(t, "Total stock value: €21000.00", lines[5])
}

func TestBuildReportTwoDecimalPlaces(t *testing.T) {
	// Whole values still render with exactly two decimals.
	summary := sampleSummary()
	summary.AveragePrice = 10500
	summary.Totals.TotalValue = 21000

	report := testWriter().BuildReport(summary)
	assert.Contains(t, report, "€10500.00")
	assert.Contains(t, report, "€21000.00")

	// Fractional averages keep their decimals.
	summary.AveragePrice = 10500.5
	report = testWriter().BuildReport(summary)
	assert.Contains(t, report, "€10500.50")
}

func TestBuildReportFractionalMileage(t *testing.T) {
	summary := sampleSummary()
	summary.AverageMileage = 40000.5

	report := testWriter().BuildReport(summary)
	assert.Contains(t, report, "Average mileage: 40000.5 km")
}

func TestBuildReportEmptyInventory(t *testing.T) {
	report := testWriter().BuildReport(domain.StockSummary{})

	lines := strings.Split(strings.TrimRight(report, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "Average price: €0.00", lines[1])
	assert.Equal(t, "Cheapest car: none", lines[3])
	assert.Equal(t, "Total cars: 0", lines[4])
}

func TestWriteReportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stock_report.txt")
	w := testWriter()

	require.NoError(t, w.WriteReportFile(path, sampleSummary()))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, w.BuildReport(sampleSummary()), string(content))
}

func TestWriteReportFileCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "daily", "stock_report.txt")
	w := testWriter()

	require.NoError(t, w.WriteReportFile(path, sampleSummary()))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, w.BuildReport(sampleSummary()), string(content))
}

func TestWriteReportFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stock_report.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale report that is much longer than the new one\n"), 0644))

	w := testWriter()
	require.NoError(t, w.WriteReportFile(path, sampleSummary()))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, w.BuildReport(sampleSummary()), string(content))
}

func TestWriteReportFileSinkError(t *testing.T) {
	// A directory at the target path makes the sink unwritable.
	dir := t.TempDir()

	err := testWriter().WriteReportFile(dir, sampleSummary())
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, apperrors.ErrSinkUnwritable))
}

func TestPrintReportVerboseListing(t *testing.T) {
	inv := domain.Inventory{
		{Registration: "REG1", Make: "Toyota", Model: "Corolla", Mileage: 50000, Price: 12000},
		{Registration: "REG2", Make: "Ford", Model: "Fiesta", Mileage: 30000, Price: 9000},
	}
	w := testWriter()

	var verbose strings.Builder
	w.PrintReport(&verbose, inv, sampleSummary(), true)
	assert.Contains(t, verbose.String(), "REG1,Toyota,Corolla,50000,12000")
	assert.Contains(t, verbose.String(), "REG2,Ford,Fiesta,30000,9000")
	assert.Contains(t, verbose.String(), "Car Stock Summary")

	// The listing never appears without verbose.
	var plain strings.Builder
	w.PrintReport(&plain, inv, sampleSummary(), false)
	assert.NotContains(t, plain.String(), "REG1,Toyota,Corolla")
	assert.Equal(t, w.BuildReport(sampleSummary()), plain.String())
}
