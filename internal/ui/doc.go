package ui

// Package ui contains the Fyne-based desktop user interface for the
// application. It wires user interactions to the ingestion controller and
// renders the board canvas, folder sidebar, progress, and settings.
