package transfer

// Package transfer implements the background transfer service: HTTP downloads
// with a parallel limit, retry with backoff, records persisted in Badger and
// push style change and completion signals for observers.
