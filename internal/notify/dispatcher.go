package notify

import (
	"log/slog"

	"github.com/ytget/loadstatus/internal/model"
)

// Texts holds the user visible strings of a completion notification
type Texts struct {
	Toast              string
	Title              string
	Description        string
	Action             string
	ChannelName        string
	ChannelDescription string
}

// Dispatcher picks the alerts for a finished transfer
type Dispatcher struct {
	log     *slog.Logger
	sink    Sink
	toaster Toaster
	phase   PhaseSource
	texts   Texts
	channel Channel
}

// NewDispatcher creates a dispatcher
func NewDispatcher(log *slog.Logger, sink Sink, toaster Toaster, phase PhaseSource, texts Texts) *Dispatcher {
	return &Dispatcher{
		log:     log,
		sink:    sink,
		toaster: toaster,
		phase:   phase,
		texts:   texts,
		channel: DownloadStatusChannel(texts.ChannelName, texts.ChannelDescription),
	}
}

// SetTexts swaps the strings used for later notifications. A channel that
// already exists keeps its name.
func (d *Dispatcher) SetTexts(texts Texts) {
	d.texts = texts
	d.channel = DownloadStatusChannel(texts.ChannelName, texts.ChannelDescription)
}

// Dispatch announces fileName finishing with status. Unknown is ignored.
func (d *Dispatcher) Dispatch(fileName string, status model.TransferStatus) {
	if status == model.TransferUnknown {
		d.log.Debug("Not notifying for unknown status", "file", fileName)
		return
	}

	if d.phase != nil && d.phase.Resumed() {
		d.log.Debug("Notifying with a toast, screen is resumed")
		d.toaster.Toast(d.texts.Toast)
	}

	if err := d.sink.EnsureChannel(d.channel); err != nil {
		d.log.Warn("Could not create notification channel", "channel", d.channel.ID, "error", err)
		return
	}

	content := Content{
		ChannelID:   d.channel.ID,
		Title:       d.texts.Title,
		Body:        d.texts.Description,
		ActionLabel: d.texts.Action,
		AutoCancel:  true,
		Payload:     model.NewNotificationPayload(fileName, status),
	}
	if err := d.sink.Post(DownloadCompletedID, content); err != nil {
		d.log.Warn("Could not post notification", "error", err)
		return
	}
	d.log.Info("Completion notification posted", "file", fileName, "status", status.String())
}
