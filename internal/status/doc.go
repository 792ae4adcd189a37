package status

// Package status maps transfer service status codes onto the two channels the UI
// listens to: the completion outcome and the loading button state.
