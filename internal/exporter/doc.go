// Package exporter formats computed stock statistics into the fixed
// six-line text report and delivers it to the console and file sinks.
//
// The file sink is overwritten on every run and never carries the
// per-record listing; the console sink optionally echoes the full listing
// before the summary when verbose output is enabled.
package exporter
