package transfer

import (
	"net/http"
	"time"
)

// Defaults for a Manager
const (
	DefaultMaxParallel      = 2
	DefaultMaxRetries       = 1
	DefaultRetryDelay       = 2 * time.Second
	DefaultProgressInterval = 250 * time.Millisecond
)

// Option configures a Manager
type Option func(*Manager)

// WithHTTPClient sets the client used for downloads
func WithHTTPClient(client *http.Client) Option {
	return func(m *Manager) {
		if client != nil {
			m.client = client
		}
	}
}

// WithMaxParallel sets how many transfers may run at once
func WithMaxParallel(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.maxParallel = n
		}
	}
}

// WithRetries sets how many times a failed attempt is retried
func WithRetries(n int) Option {
	return func(m *Manager) {
		if n >= 0 {
			m.maxRetries = n
		}
	}
}

// WithRetryDelay sets the base backoff between attempts
func WithRetryDelay(d time.Duration) Option {
	return func(m *Manager) {
		m.retryDelay = d
	}
}

// WithProgressInterval throttles progress change signals
func WithProgressInterval(d time.Duration) Option {
	return func(m *Manager) {
		m.progressInterval = d
	}
}
