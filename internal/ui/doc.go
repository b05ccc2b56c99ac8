package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires the search entry to the pipeline, renders thumbnails into a fixed
// grid, shows the timestamped log, and opens full-size previews. All UI
// strings are localized via Localization; pipeline log messages are not.
