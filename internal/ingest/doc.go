package ingest

// Package ingest implements the core ingestion pipeline: it orchestrates one
// "load folder" job end-to-end, from directory scan through decode workers to
// grid placements. It manages job lifecycle, cancellation, progress
// aggregation, and propagation of placements to the UI.
