package notify

import (
	"errors"

	"github.com/ytget/loadstatus/internal/model"
)

// DownloadCompletedID is the fixed id of the completion notification; posting
// again replaces the previous one.
const DownloadCompletedID = 1

// Importance mirrors the interruption level of a channel
type Importance int

const (
	ImportanceLow Importance = iota
	ImportanceDefault
	ImportanceHigh
)

// Channel groups notifications of one kind
type Channel struct {
	ID          string
	Name        string
	Description string
	Importance  Importance
	ShowBadge   bool
}

// DownloadStatusChannel returns the channel all completion notifications use
func DownloadStatusChannel(name, description string) Channel {
	return Channel{
		ID:          "download_status",
		Name:        name,
		Description: description,
		Importance:  ImportanceDefault,
		ShowBadge:   true,
	}
}

// Content is what a persistent notification shows
type Content struct {
	ChannelID   string
	Title       string
	Body        string
	ActionLabel string
	AutoCancel  bool
	Payload     model.NotificationPayload
}

var (
	ErrInvalidChannel = errors.New("notification channel needs an id")
	ErrUnknownChannel = errors.New("notification channel was not created")
)

// Sink displays persistent notifications
type Sink interface {
	// EnsureChannel creates the channel; creating an existing one is a no-op
	EnsureChannel(channel Channel) error
	// Post shows or replaces the notification with the given id
	Post(id int, content Content) error
}

// Toaster shows a short, self dismissing in-app message
type Toaster interface {
	Toast(message string)
}

// PhaseSource reports whether the screen is in the foreground and resumed
type PhaseSource interface {
	Resumed() bool
}
