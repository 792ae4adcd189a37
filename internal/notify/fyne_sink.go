package notify

import (
	"fmt"
	"log/slog"
	"sync"

	"fyne.io/fyne/v2"
)

// FyneSink posts notifications through the Fyne app and remembers the last
// content per id, so the UI can offer the notification action in-app.
type FyneSink struct {
	app fyne.App
	log *slog.Logger

	mu       sync.Mutex
	channels map[string]Channel
	posted   map[int]Content

	// OnPosted is called after a notification was sent
	OnPosted func(id int, content Content)
}

// NewFyneSink creates a sink for app
func NewFyneSink(log *slog.Logger, app fyne.App) *FyneSink {
	return &FyneSink{
		app:      app,
		log:      log,
		channels: make(map[string]Channel),
		posted:   make(map[int]Content),
	}
}

// EnsureChannel registers channel once
func (s *FyneSink) EnsureChannel(channel Channel) error {
	if channel.ID == "" {
		return ErrInvalidChannel
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.channels[channel.ID]; ok {
		return nil
	}
	s.channels[channel.ID] = channel
	s.log.Info("Notification channel created", "channel", channel.ID)
	return nil
}

// Post sends the notification and replaces any previous one with the same id
func (s *FyneSink) Post(id int, content Content) error {
	s.mu.Lock()
	if _, ok := s.channels[content.ChannelID]; !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrUnknownChannel, content.ChannelID)
	}
	s.posted[id] = content
	onPosted := s.OnPosted
	s.mu.Unlock()

	s.app.SendNotification(fyne.NewNotification(content.Title, content.Body))
	if onPosted != nil {
		onPosted(id, content)
	}
	return nil
}

// Posted returns the content currently shown under id
func (s *FyneSink) Posted(id int) (Content, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.posted[id]
	return c, ok
}

// Dismiss removes the notification, as when its action auto cancels it
func (s *FyneSink) Dismiss(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.posted, id)
}
