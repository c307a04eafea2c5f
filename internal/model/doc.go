package model

// Package model defines domain data structures used across the app: scene
// items placed on the board, ingestion jobs, decode results, and status enums.
// Structures are designed for direct use by the layout engine and the scene
// model and for explicit state transitions.
