package notify

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/require"
)

func TestLifecycle_Phases(t *testing.T) {
	req := require.New(t)
	l := NewLifecycle()
	req.False(l.Resumed())

	l.EnteredForeground()
	req.True(l.Resumed())

	l.ExitedForeground()
	req.False(l.Resumed())
}

func TestLifecycle_AttachDetach(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	l := NewLifecycle()
	l.Attach(app.Lifecycle())
	l.EnteredForeground()
	require.True(t, l.Resumed())

	l.Detach()
	l.Detach()
	require.False(t, l.Resumed())
}
