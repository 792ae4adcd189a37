package ui

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"github.com/ytget/loadstatus/internal/config"
	"github.com/ytget/loadstatus/internal/model"
)

type fakeService struct {
	mu          sync.Mutex
	requests    []model.Request
	enqueueErr  error
	statuses    map[model.TransferHandle]model.ServiceStatus
	changes     map[int]func()
	completions map[int]func(model.TransferHandle)
	nextID      int
	cancelled   []model.TransferHandle
	outputDir   string
	outputs     map[model.TransferHandle]string
}

func newFakeService() *fakeService {
	return &fakeService{
		statuses:    make(map[model.TransferHandle]model.ServiceStatus),
		changes:     make(map[int]func()),
		completions: make(map[int]func(model.TransferHandle)),
		outputs:     make(map[model.TransferHandle]string),
	}
}

func (f *fakeService) Enqueue(_ context.Context, req model.Request) (model.TransferHandle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.enqueueErr != nil {
		return "", f.enqueueErr
	}
	f.requests = append(f.requests, req)
	handle := model.TransferHandle(req.FileName)
	f.statuses[handle] = model.ServiceStatusPending
	f.outputs[handle] = filepath.Join(f.outputDir, req.FileName)
	return handle, nil
}

func (f *fakeService) Query(handle model.TransferHandle) (model.Transfer, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.statuses[handle]
	if !ok {
		return model.Transfer{}, false
	}
	return model.Transfer{Handle: handle, Status: s, OutputPath: f.outputs[handle]}, true
}

func (f *fakeService) QueryStatus(handle model.TransferHandle) (model.ServiceStatus, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.statuses[handle]
	return s, ok
}

func (f *fakeService) Cancel(handles ...model.TransferHandle) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelled = append(f.cancelled, handles...)
	return len(handles)
}

func (f *fakeService) SubscribeChanges(fn func()) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.nextID
	f.nextID++
	f.changes[id] = fn
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.changes, id)
	}
}

func (f *fakeService) SubscribeCompletion(fn func(model.TransferHandle)) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.nextID
	f.nextID++
	f.completions[id] = fn
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.completions, id)
	}
}

func (f *fakeService) finish(handle model.TransferHandle, s model.ServiceStatus) {
	f.mu.Lock()
	f.statuses[handle] = s
	changes := make([]func(), 0, len(f.changes))
	for _, fn := range f.changes {
		changes = append(changes, fn)
	}
	completions := make([]func(model.TransferHandle), 0, len(f.completions))
	for _, fn := range f.completions {
		completions = append(completions, fn)
	}
	f.mu.Unlock()

	for _, fn := range changes {
		fn()
	}
	if s.IsTerminal() {
		for _, fn := range completions {
			fn(handle)
		}
	}
}

func (f *fakeService) subscribers() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.changes) + len(f.completions)
}

type detailCall struct {
	payload    model.NotificationPayload
	outputPath string
}

func newTestRoot(t *testing.T) (*RootUI, *fakeService, *[]detailCall) {
	t.Helper()
	app := newTestApp(t)
	window := app.NewWindow("")
	window.Resize(fyne.NewSize(600, 500))
	settings := config.NewSettings(app)
	settings.SetDownloadDirectory("/data/downloads")

	svc := newFakeService()
	svc.outputDir = settings.GetDownloadDirectory()
	ui := NewRootUI(logs.GetLoggerFromLevel(slog.LevelDebug), app, window, svc, settings)
	var details []detailCall
	ui.openDetail = func(p model.NotificationPayload, path string) {
		details = append(details, detailCall{p, path})
	}
	return ui, svc, &details
}

func TestRootUI_NoSelectionShowsToast(t *testing.T) {
	ui, svc, _ := newTestRoot(t)

	test.Tap(ui.Button())

	require.Equal(t, "Please select the file to download", ui.toast.Last())
	require.Equal(t, model.ButtonCompleted, ui.Button().State())
	require.Empty(t, svc.requests)
}

func TestRootUI_DownloadLifecycle(t *testing.T) {
	req := require.New(t)
	ui, svc, details := newTestRoot(t)
	option := model.DefaultOptions()[0]
	ui.radio.SetSelected(option.Label)

	test.Tap(ui.Button())
	req.Len(svc.requests, 1)
	req.Equal(option.URL, svc.requests[0].URL)
	req.Equal(option.FileName, svc.requests[0].FileName)
	req.Equal(model.ButtonClicked, ui.Button().State())

	handle := model.TransferHandle(option.FileName)
	svc.finish(handle, model.ServiceStatusRunning)
	req.Equal(model.ButtonLoading, ui.Button().State())

	test.AssertNotificationSent(t, fyne.NewNotification("Udacity: Android Kotlin Nanodegree", "The Project 3 repository is downloaded"), func() {
		svc.finish(handle, model.ServiceStatusSuccessful)
	})
	req.Equal(model.ButtonCompleted, ui.Button().State())
	req.Equal("Download completed", ui.toast.Last())
	req.True(ui.alertContainer.Visible())

	test.Tap(ui.alertAction)
	req.Equal([]detailCall{{
		payload:    model.NotificationPayload{FileName: option.FileName, Status: model.TransferSuccessful},
		outputPath: "/data/downloads/" + option.FileName,
	}}, *details)
	req.False(ui.alertContainer.Visible())
	_, stillPosted := ui.sink.Posted(ui.alertID)
	req.False(stillPosted)
}

func TestRootUI_DetailUsesRecordedPathAfterDirectoryChange(t *testing.T) {
	req := require.New(t)
	ui, svc, details := newTestRoot(t)
	option := model.DefaultOptions()[0]
	ui.radio.SetSelected(option.Label)
	test.Tap(ui.Button())
	handle := model.TransferHandle(option.FileName)
	svc.finish(handle, model.ServiceStatusRunning)
	svc.finish(handle, model.ServiceStatusSuccessful)

	ui.settings.SetDownloadDirectory("/elsewhere")
	test.Tap(ui.alertAction)

	req.Len(*details, 1)
	req.Equal(filepath.Join("/data/downloads", option.FileName), (*details)[0].outputPath)
}

func TestRootUI_DetailWithoutRecordHasNoPath(t *testing.T) {
	req := require.New(t)
	ui, svc, details := newTestRoot(t)
	option := model.DefaultOptions()[1]
	ui.radio.SetSelected(option.Label)
	test.Tap(ui.Button())
	handle := model.TransferHandle(option.FileName)
	svc.finish(handle, model.ServiceStatusFailed)

	svc.mu.Lock()
	delete(svc.statuses, handle)
	svc.mu.Unlock()
	test.Tap(ui.alertAction)

	req.Len(*details, 1)
	req.Empty((*details)[0].outputPath)
	req.Equal(model.TransferFailed, (*details)[0].payload.Status)
}

func TestRootUI_FailedDownloadBackgroundNoToast(t *testing.T) {
	ui, svc, _ := newTestRoot(t)
	option := model.DefaultOptions()[2]
	ui.radio.SetSelected(option.Label)
	test.Tap(ui.Button())

	ui.lifecycle.ExitedForeground()
	svc.finish(model.TransferHandle(option.FileName), model.ServiceStatusFailed)

	require.Equal(t, model.ButtonCompleted, ui.Button().State())
	require.Empty(t, ui.toast.Last())
	content, ok := ui.sink.Posted(ui.alertID)
	require.True(t, ok)
	require.Equal(t, model.TransferFailed, content.Payload.Status)
}

func TestRootUI_EnqueueFailureResetsButton(t *testing.T) {
	ui, svc, _ := newTestRoot(t)
	svc.enqueueErr = errors.New("disk full")
	ui.radio.SetSelected(model.DefaultOptions()[1].Label)

	test.Tap(ui.Button())

	require.Equal(t, model.ButtonCompleted, ui.Button().State())
	require.Contains(t, ui.toast.Last(), "disk full")
}

func TestRootUI_TeardownUnsubscribes(t *testing.T) {
	ui, svc, _ := newTestRoot(t)
	option := model.DefaultOptions()[0]
	ui.radio.SetSelected(option.Label)
	test.Tap(ui.Button())
	require.Equal(t, 2, svc.subscribers())

	ui.window.Close()
	ui.Teardown()

	require.Equal(t, 0, svc.subscribers())
	require.False(t, ui.lifecycle.Resumed())
}

func TestRootUI_LanguageChange(t *testing.T) {
	ui, _, _ := newTestRoot(t)

	ui.onLanguageChange("ru")

	require.Equal(t, "ru", ui.settings.GetLanguage())
	require.Equal(t, "Проверить статус", ui.alertAction.Text)
}
