package watcher

import (
	"log/slog"
	"sync"

	"github.com/ytget/loadstatus/internal/model"
	"github.com/ytget/loadstatus/internal/status"
	"github.com/ytget/loadstatus/internal/transfer"
)

// StateSetter receives button state changes. Implementations must not call
// back into the Watcher.
type StateSetter interface {
	ChangeState(state model.ButtonState)
}

// Dispatcher announces a finished transfer
type Dispatcher interface {
	Dispatch(fileName string, status model.TransferStatus)
}

// Watcher follows one transfer handle at a time
type Watcher struct {
	log      *slog.Logger
	service  transfer.Service
	button   StateSetter
	notifier Dispatcher
	post     func(func())

	mu                    sync.Mutex
	generation            uint64
	handle                model.TransferHandle
	fileName              string
	unsubscribeProgress   func()
	unsubscribeCompletion func()
	lastDispatched        model.TransferHandle
	tornDown              bool
}

// New creates a watcher. post schedules work on the UI goroutine; nil runs it inline.
func New(log *slog.Logger, service transfer.Service, button StateSetter, notifier Dispatcher, post func(func())) *Watcher {
	if post == nil {
		post = func(fn func()) { fn() }
	}
	return &Watcher{
		log:      log,
		service:  service,
		button:   button,
		notifier: notifier,
		post:     post,
	}
}

// RegisterForProgress starts polling handle on every change signal. A handle
// registered before is unsubscribed first, under the same lock.
func (w *Watcher) RegisterForProgress(handle model.TransferHandle, fileName string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.replaceLocked(handle, fileName)
}

// Supersede replaces the current handle and cancels the abandoned transfer
func (w *Watcher) Supersede(handle model.TransferHandle, fileName string) {
	w.mu.Lock()
	old := w.handle
	w.replaceLocked(handle, fileName)
	w.mu.Unlock()

	if old != "" && old != handle {
		n := w.service.Cancel(old)
		w.log.Info("Superseded transfer", "old", old, "new", handle, "cancelled", n)
	}
}

func (w *Watcher) replaceLocked(handle model.TransferHandle, fileName string) {
	if w.tornDown {
		w.log.Warn("Ignoring registration after teardown", "handle", handle)
		return
	}
	w.unregisterProgressLocked()

	gen := w.generation
	w.handle = handle
	w.fileName = fileName
	w.unsubscribeProgress = w.service.SubscribeChanges(func() {
		w.post(func() { w.poll(gen) })
	})
}

// RegisterForCompletion listens for the terminal signal. Repeated calls keep a single subscription.
func (w *Watcher) RegisterForCompletion() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.tornDown || w.unsubscribeCompletion != nil {
		return
	}
	w.unsubscribeCompletion = w.service.SubscribeCompletion(func(handle model.TransferHandle) {
		w.post(func() { w.complete(handle) })
	})
}

// Teardown drops all subscriptions. Safe to call more than once.
func (w *Watcher) Teardown() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.tornDown {
		return
	}
	w.tornDown = true
	w.unregisterProgressLocked()
	if w.unsubscribeCompletion != nil {
		w.unsubscribeCompletion()
		w.unsubscribeCompletion = nil
	}
	w.handle = ""
	w.fileName = ""
}

// Handle returns the handle being watched, empty when idle
func (w *Watcher) Handle() model.TransferHandle {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.handle
}

// LastDispatched returns the handle of the most recent transfer announced to
// the dispatcher, empty before the first one
func (w *Watcher) LastDispatched() model.TransferHandle {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastDispatched
}

// unregisterProgressLocked drops the progress subscription and invalidates
// callbacks already in flight
func (w *Watcher) unregisterProgressLocked() {
	if w.unsubscribeProgress != nil {
		w.unsubscribeProgress()
		w.unsubscribeProgress = nil
	}
	w.generation++
}

func (w *Watcher) poll(gen uint64) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.tornDown || gen != w.generation || w.handle == "" {
		w.log.Debug("Discarding stale progress signal")
		return
	}

	code, found := w.service.QueryStatus(w.handle)
	next, ok := status.Progress(code, found)
	if !ok {
		w.log.Debug("Transfer status does not change the button", "handle", w.handle, "status", code.String(), "found", found)
		return
	}
	w.button.ChangeState(next)
}

func (w *Watcher) complete(handle model.TransferHandle) {
	w.mu.Lock()

	if w.tornDown || handle == "" || handle != w.handle || handle == w.lastDispatched {
		w.mu.Unlock()
		w.log.Debug("Ignoring completion signal", "handle", handle)
		return
	}

	code, found := w.service.QueryStatus(handle)
	result := status.Completion(code, found)
	if result == model.TransferUnknown {
		w.mu.Unlock()
		w.log.Debug("Completion without a terminal status", "handle", handle, "status", code.String())
		return
	}
	if next, ok := status.Progress(code, found); ok {
		w.button.ChangeState(next)
	}

	w.lastDispatched = handle
	fileName := w.fileName
	w.unregisterProgressLocked()
	w.handle = ""
	w.fileName = ""
	w.mu.Unlock()

	w.log.Info("Transfer finished", "handle", handle, "status", result.String())
	w.notifier.Dispatch(fileName, result)
}
