package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/loadstatus/internal/model"
	"github.com/ytget/loadstatus/internal/platform"
)

// DetailView shows the file name and the final status of a transfer
type DetailView struct {
	log          *slog.Logger
	window       fyne.Window
	localization *Localization
	payload      model.NotificationPayload
	outputPath   string

	fileLabel   *widget.Label
	statusLabel *widget.Label
	statusIcon  *widget.Icon
	folderBtn   *widget.Button
	okBtn       *widget.Button

	reveal func(path string) error
}

// NewDetailView builds the view for payload inside window
func NewDetailView(log *slog.Logger, window fyne.Window, localization *Localization, payload model.NotificationPayload, outputPath string) *DetailView {
	d := &DetailView{
		log:          log,
		window:       window,
		localization: localization,
		payload:      payload,
		outputPath:   outputPath,
		reveal:       platform.OpenFileInManager,
	}
	d.createUI()
	return d
}

// ShowDetailWindow opens a new window with the detail view
func ShowDetailWindow(log *slog.Logger, app fyne.App, localization *Localization, payload model.NotificationPayload, outputPath string) *DetailView {
	window := app.NewWindow(localization.GetText(KeyDetailTitle))
	d := NewDetailView(log, window, localization, payload, outputPath)
	window.SetContent(d.Content())
	window.Resize(fyne.NewSize(DetailWindowWidth, DetailWindowHeight))
	window.Show()
	return d
}

func (d *DetailView) createUI() {
	d.fileLabel = widget.NewLabel(d.payload.FileName)
	d.fileLabel.Wrapping = fyne.TextWrapWord
	d.fileLabel.TextStyle = fyne.TextStyle{Bold: true}

	icon, importance := statusAppearance(d.payload.Status)
	d.statusLabel = widget.NewLabel(d.statusText())
	d.statusLabel.Importance = importance
	d.statusIcon = widget.NewIcon(icon)
	if icon == nil {
		d.statusIcon.Hide()
	}

	d.folderBtn = widget.NewButtonWithIcon(d.localization.GetText(KeyShowInFolder), theme.FolderOpenIcon(), d.onShowInFolder)
	if d.payload.Status != model.TransferSuccessful || d.outputPath == "" {
		d.folderBtn.Disable()
	}

	d.okBtn = widget.NewButton(d.localization.GetText(KeyOK), d.onOK)
	d.okBtn.Importance = widget.HighImportance
}

// Content returns the root object of the view
func (d *DetailView) Content() fyne.CanvasObject {
	form := widget.NewForm(
		widget.NewFormItem(d.localization.GetText(KeyFileName), d.fileLabel),
		widget.NewFormItem(d.localization.GetText(KeyStatus), container.NewHBox(d.statusIcon, d.statusLabel)),
	)
	actions := container.NewHBox(d.folderBtn, layout.NewSpacer(), d.okBtn)
	return container.NewBorder(nil, actions, nil, nil, form)
}

func (d *DetailView) statusText() string {
	switch d.payload.Status {
	case model.TransferSuccessful:
		return d.localization.GetText(KeyStatusSuccessful)
	case model.TransferFailed:
		return d.localization.GetText(KeyStatusFailed)
	default:
		return d.localization.GetText(KeyStatusUnknown)
	}
}

// statusAppearance picks the icon and label importance for a status.
// Unknown gets neither.
func statusAppearance(status model.TransferStatus) (fyne.Resource, widget.Importance) {
	switch status {
	case model.TransferSuccessful:
		return theme.NewSuccessThemedResource(theme.ConfirmIcon()), widget.SuccessImportance
	case model.TransferFailed:
		return theme.NewErrorThemedResource(theme.ErrorIcon()), widget.DangerImportance
	default:
		return nil, widget.MediumImportance
	}
}

func (d *DetailView) onOK() {
	d.window.Close()
}

func (d *DetailView) onShowInFolder() {
	if err := d.reveal(d.outputPath); err != nil {
		d.log.Error("Error revealing file", "path", d.outputPath, "error", err)
		dialog.ShowError(err, d.window)
		return
	}
	d.log.Info("File revealed", "path", d.outputPath)
}
