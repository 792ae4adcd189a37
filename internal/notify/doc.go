package notify

// Package notify announces finished transfers: an in-app toast while the window
// is in the foreground and, always, a persistent system notification that
// carries the payload for the detail view.
