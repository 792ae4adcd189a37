package watcher

// Package watcher bridges the push style signals of the transfer service to the
// loading button and the completion notifier. Every signal triggers one fresh
// status read; pushed payloads are never cached.
