package download

// Package download implements the core download pipeline. It dispatches one
// task per discovered URL onto a bounded worker pool, applies the per-task
// retry policy, propagates byte progress to the tracker, and records
// permanent failures in the append-only failure log.
