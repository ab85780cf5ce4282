package model

// Package model defines domain data structures used across the app: download
// tasks and status enums. Tasks carry explicit state transitions and byte-level
// progress counters owned by the worker executing them.
