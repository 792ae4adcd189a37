package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Toast shows short transient messages in the top-right corner of a window
type Toast struct {
	window  fyne.Window
	current *widget.PopUp
	last    string
	hideIn  time.Duration
}

// NewToast creates a toaster bound to window
func NewToast(window fyne.Window) *Toast {
	return &Toast{window: window, hideIn: ToastAutoHide}
}

// Toast replaces the visible message, if any, and hides it after a while.
// It must be called on the UI goroutine.
func (t *Toast) Toast(message string) {
	t.last = message
	if t.current != nil {
		t.current.Hide()
	}

	label := widget.NewLabel(message)
	label.Wrapping = fyne.TextWrapWord
	popup := widget.NewPopUp(container.NewPadded(label), t.window.Canvas())

	canvasSize := t.window.Canvas().Size()
	toastSize := fyne.NewSize(ToastWidth, ToastHeight)
	popup.Resize(toastSize)
	popup.Move(fyne.NewPos(canvasSize.Width-toastSize.Width-ToastMargin, ToastMargin))
	popup.Show()
	t.current = popup

	go func() {
		time.Sleep(t.hideIn)
		fyne.Do(func() {
			popup.Hide()
			if t.current == popup {
				t.current = nil
			}
		})
	}()
}

// Last returns the most recent message
func (t *Toast) Last() string {
	return t.last
}

// Visible reports whether a message is on screen
func (t *Toast) Visible() bool {
	return t.current != nil && t.current.Visible()
}
