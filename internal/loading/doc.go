package loading

// Package loading holds the toolkit independent half of the loading button: the
// three state machine, the phase locked animation timeline, the cached geometry
// and the controller that applies the transition policy. The Fyne widget in
// internal/ui only paints what the controller exposes.
