package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carstock/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	require.NoError(t, err)
	return cfg
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestApplyFlags(t *testing.T) {
	cfg := testConfig(t)

	applyFlags(cfg, "cars.csv", "out.txt", true)
	assert.Equal(t, "cars.csv", cfg.Input.Path)
	assert.Equal(t, "out.txt", cfg.Report.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// Empty flags leave config untouched.
	cfg = testConfig(t)
	applyFlags(cfg, "", "", false)
	assert.Equal(t, "inventory.csv", cfg.Input.Path)
	assert.Equal(t, "stock_report.txt", cfg.Report.Path)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "inventory.csv")
	reportPath := filepath.Join(dir, "stock_report.txt")

	input := strings.Join([]string{
		"registration,make,model,mileage,price",
		"REG1,Toyota,Corolla,50000,12000",
		"REG2,Ford,Fiesta,30000,9000",
		"BROKEN,LINE",
		"",
	}, "\n")
	require.NoError(t, os.WriteFile(inputPath, []byte(input), 0644))

	cfg := testConfig(t)
	cfg.Input.Path = inputPath
	cfg.Report.Path = reportPath

	var console strings.Builder
	err := run(context.Background(), cfg, quietLogger(), &console, false)
	require.NoError(t, err)

	// Console and file carry the same six summary lines.
	want := strings.Join([]string{
		"Car Stock Summary",
		"Average price: €10500.00",
		"Average mileage: 40000 km",
		"Cheapest car: REG2 Ford Fiesta at €9000.00",
		"Total cars: 2",
		"Total stock value: €21000.00",
		"",
	}, "\n")
	assert.Equal(t, want, console.String())

	content, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.Equal(t, want, string(content))
}

func TestRunVerboseListsRecords(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "inventory.csv")
	input := "header\nREG1,Toyota,Corolla,50000,12000\n"
	require.NoError(t, os.WriteFile(inputPath, []byte(input), 0644))

	cfg := testConfig(t)
	cfg.Input.Path = inputPath
	cfg.Report.Path = filepath.Join(dir, "stock_report.txt")

	var console strings.Builder
	require.NoError(t, run(context.Background(), cfg, quietLogger(), &console, true))
	assert.Contains(t, console.String(), "REG1,Toyota,Corolla,50000,12000")

	// The file report never carries the listing.
	content, err := os.ReadFile(cfg.Report.Path)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "REG1,Toyota,Corolla,50000,12000")
}

func TestRunMissingInputIsFatal(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(t)
	cfg.Input.Path = filepath.Join(dir, "missing.csv")
	cfg.Report.Path = filepath.Join(dir, "stock_report.txt")

	var console strings.Builder
	err := run(context.Background(), cfg, quietLogger(), &console, false)
	require.Error(t, err)

	// Nothing was reported.
	assert.Empty(t, console.String())
	_, statErr := os.Stat(cfg.Report.Path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunUnwritableSinkIsNotFatal(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "inventory.csv")
	require.NoError(t, os.WriteFile(inputPath, []byte("header\nREG1,Toyota,Corolla,50000,12000\n"), 0644))

	cfg := testConfig(t)
	cfg.Input.Path = inputPath
	// A directory at the report path makes the sink unwritable.
	cfg.Report.Path = dir

	var console strings.Builder
	err := run(context.Background(), cfg, quietLogger(), &console, false)
	require.NoError(t, err)
	assert.Contains(t, console.String(), "Car Stock Summary")
}

func TestRunStrictModeAborts(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "inventory.csv")
	input := "header\nREG1,Toyota,Corolla,50000,12000\nBROKEN,LINE\n"
	require.NoError(t, os.WriteFile(inputPath, []byte(input), 0644))

	cfg := testConfig(t)
	cfg.Input.Path = inputPath
	cfg.Input.Mode = "strict"
	cfg.Report.Path = filepath.Join(dir, "stock_report.txt")

	var console strings.Builder
	err := run(context.Background(), cfg, quietLogger(), &console, false)
	require.Error(t, err)
	assert.Empty(t, console.String())
}
