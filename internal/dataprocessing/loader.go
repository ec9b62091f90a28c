package dataprocessing

import (
	"bufio"
	stderrors "errors"
	"io"
	"log/slog"
	"os"

	"carstock/internal/errors"
	"carstock/pkg/contracts/domain"
)

// maxLineBytes is the largest input line the loader accepts.
const maxLineBytes = 1024 * 1024

// LoadMode fixes the malformed-line policy for one loader instance. The two
// behaviors are never mixed within a single load.
type LoadMode string

const (
	// ModeLenient skips malformed lines and keeps loading. This is the
	// default and the documented reference behavior.
	ModeLenient LoadMode = "lenient"
	// ModeStrict aborts the whole load on the first malformed line.
	ModeStrict LoadMode = "strict"
)

// LoadStats reports what a load saw, for observability only.
type LoadStats struct {
	// LinesRead counts data lines examined (the header is not included).
	LinesRead int
	// Skipped counts malformed lines dropped in lenient mode.
	Skipped int
}

// Loader reads an inventory source line by line, discards the header, and
// accumulates valid records. Diagnostics are emitted through the injected
// logger and never affect the loaded inventory.
type Loader struct {
	logger *slog.Logger
	mode   LoadMode
}

// NewLoader creates a loader with the given malformed-line policy.
func NewLoader(logger *slog.Logger, mode LoadMode) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	if mode == "" {
		mode = ModeLenient
	}
	return &Loader{logger: logger, mode: mode}
}

// LoadInventory opens path and loads it. An open or read failure is fatal:
// the error wraps errors.ErrSourceUnreadable and no partial inventory is
// returned.
func (l *Loader) LoadInventory(path string) (domain.Inventory, LoadStats, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, LoadStats{}, errors.SourceError(path, err)
	}
	defer file.Close()

	l.logger.Debug("Loading inventory", slog.String("path", path))
	return l.Load(file)
}

// Load reads the source start to finish. The first line is treated as a
// header and discarded without inspection; every following line goes
// through ParseLine.
func (l *Loader) Load(r io.Reader) (domain.Inventory, LoadStats, error) {
	scanner := bufio.NewScanner(r)
	// Scanner's default 64KiB cap would turn one oversized line into a
	// fatal read error; allow lines up to maxLineBytes instead.
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	var inv domain.Inventory
	var stats LoadStats
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		l.logger.Debug("Read line",
			slog.Int("line", lineNo),
			slog.String("raw", line))

		if lineNo == 1 {
			// Header, dropped regardless of content.
			continue
		}
		stats.LinesRead++

		record, err := ParseLine(line)
		if err != nil {
			var malformed *errors.MalformedRecordError
			if stderrors.As(err, &malformed) {
				malformed.Line = lineNo
			}
			if l.mode == ModeStrict {
				return nil, stats, err
			}
			stats.Skipped++
			l.logger.Debug("Skipped malformed line",
				slog.Int("line", lineNo),
				slog.String("reason", err.Error()))
			continue
		}

		inv = append(inv, record)
		l.logger.Debug("Parsed record",
			slog.Int("line", lineNo),
			slog.String("registration", record.Registration),
			slog.Int64("price", record.Price))
	}

	if err := scanner.Err(); err != nil {
		return nil, stats, errors.SourceError("", err)
	}

	l.logger.Info("Inventory loaded",
		slog.Int("records", len(inv)),
		slog.Int("lines_read", stats.LinesRead),
		slog.Int("skipped", stats.Skipped))

	return inv, stats, nil
}
