// Package dataprocessing turns raw inventory lines into records and derives
// summary statistics from them.
//
// Data flows strictly one way: raw lines -> records -> aggregate statistics.
// ParseLine rejects lines with the wrong field count or non-integer numeric
// fields; Loader applies it per line after discarding the header, with a
// per-instance malformed-line policy (lenient skip vs strict abort). The
// summarizer functions are pure reductions over a fully loaded inventory.
package dataprocessing
