// Package export writes sweep results to CSV and JSON and keeps
// completed runs in a directory store.
//
// The CSV layout carries the swept parameter columns followed by the
// chi^(3) components and the four-wave-mixing intensity, optionally
// preceded by '#' comment lines with the export metadata. The JSON
// layout is described by [Document]; its sample arrays are flat and
// row-major for 2D sweeps, and numbers are written at full precision so
// a write/read cycle reproduces the original values exactly. [Store]
// persists one directory per run with metadata.json and data.csv.
package export
