package transfer

import (
	"context"

	"github.com/ytget/loadstatus/internal/model"
)

// Service defines the transfer service as seen by the UI and the watcher.
type Service interface {
	Enqueue(ctx context.Context, req model.Request) (model.TransferHandle, error)
	// QueryStatus reads the current status; false when no record exists
	QueryStatus(handle model.TransferHandle) (model.ServiceStatus, bool)
	// Query returns the full record, including where the file is written
	Query(handle model.TransferHandle) (model.Transfer, bool)
	// Cancel stops and removes the given transfers and returns how many were removed
	Cancel(handles ...model.TransferHandle) int

	// SubscribeChanges registers fn for the generic "something changed" signal.
	// The returned function unsubscribes and may be called more than once.
	SubscribeChanges(fn func()) (unsubscribe func())
	// SubscribeCompletion registers fn for the terminal signal, fired once per transfer.
	SubscribeCompletion(fn func(model.TransferHandle)) (unsubscribe func())
}
