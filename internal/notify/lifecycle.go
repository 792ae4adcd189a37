package notify

import (
	"sync/atomic"

	"fyne.io/fyne/v2"
)

// Lifecycle tracks whether the app is in the foreground
type Lifecycle struct {
	resumed  atomic.Bool
	attached fyne.Lifecycle
}

// NewLifecycle creates a tracker in the background phase
func NewLifecycle() *Lifecycle {
	return &Lifecycle{}
}

// Attach hooks the tracker to the app lifecycle
func (l *Lifecycle) Attach(lc fyne.Lifecycle) {
	lc.SetOnStarted(l.EnteredForeground)
	lc.SetOnEnteredForeground(l.EnteredForeground)
	lc.SetOnExitedForeground(l.ExitedForeground)
	lc.SetOnStopped(l.ExitedForeground)
	l.attached = lc
}

// Detach removes the hooks installed by Attach. Safe to call more than once.
func (l *Lifecycle) Detach() {
	if l.attached == nil {
		return
	}
	l.attached.SetOnStarted(nil)
	l.attached.SetOnEnteredForeground(nil)
	l.attached.SetOnExitedForeground(nil)
	l.attached.SetOnStopped(nil)
	l.attached = nil
	l.resumed.Store(false)
}

func (l *Lifecycle) EnteredForeground() { l.resumed.Store(true) }
func (l *Lifecycle) ExitedForeground()  { l.resumed.Store(false) }

// Resumed reports the foreground phase
func (l *Lifecycle) Resumed() bool {
	return l.resumed.Load()
}
