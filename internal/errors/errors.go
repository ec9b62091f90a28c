package errors

import (
	"errors"
	"fmt"
)

// Sentinel kinds for the three failure classes of a report run. Callers
// classify errors with errors.Is against these.
var (
	// ErrSourceUnreadable marks an inventory source that cannot be opened
	// or read. Fatal: no partial inventory is usable after it.
	ErrSourceUnreadable = errors.New("inventory source unreadable")

	// ErrMalformedRecord marks an input line with the wrong field count or
	// a non-integer numeric field. Whether it aborts the load depends on
	// the configured load mode.
	ErrMalformedRecord = errors.New("malformed inventory record")

	// ErrSinkUnwritable marks a report destination that cannot be created
	// or written. Reported, never fatal to the run.
	ErrSinkUnwritable = errors.New("report sink unwritable")
)

// MalformedRecordError carries the rejected line's position and the reason
// it was rejected. Line is 1-based and 0 when the line number is unknown
// (e.g. when a single line is parsed outside a load).
type MalformedRecordError struct {
	Line   int
	Reason string
}

func (e *MalformedRecordError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
	}
	return e.Reason
}

// Unwrap ties every MalformedRecordError to ErrMalformedRecord so that
// errors.Is(err, ErrMalformedRecord) holds.
func (e *MalformedRecordError) Unwrap() error { return ErrMalformedRecord }

// IOError wraps an underlying I/O failure with one of the sentinel kinds
// and the path it occurred on.
type IOError struct {
	Kind error
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%v: %s: %v", e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%v: %v", e.Kind, e.Err)
}

// Unwrap exposes both the sentinel kind and the underlying error, so
// errors.Is works against either.
func (e *IOError) Unwrap() []error { return []error{e.Kind, e.Err} }

// SourceError wraps err as a fatal source-unreadable failure on path.
func SourceError(path string, err error) error {
	return &IOError{Kind: ErrSourceUnreadable, Path: path, Err: err}
}

// SinkError wraps err as a non-fatal sink-unwritable failure on path.
func SinkError(path string, err error) error {
	return &IOError{Kind: ErrSinkUnwritable, Path: path, Err: err}
}
