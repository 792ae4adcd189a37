package ui

// Package ui contains the Fyne-based user interface for the application.
// It wires the loading button to the transfer service and renders the option
// list, completion alerts, the detail view and settings. All UI strings are
// localized via Localization.
