package ui

import (
	"context"
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/samber/lo"

	"github.com/ytget/loadstatus/internal/config"
	"github.com/ytget/loadstatus/internal/loading"
	"github.com/ytget/loadstatus/internal/model"
	"github.com/ytget/loadstatus/internal/notify"
	"github.com/ytget/loadstatus/internal/transfer"
	"github.com/ytget/loadstatus/internal/watcher"
)

// RootUI represents the main screen: option list, loading button and the
// latest download alert
type RootUI struct {
	log          *slog.Logger
	app          fyne.App
	window       fyne.Window
	service      transfer.Service
	settings     *config.Settings
	localization *Localization
	options      []model.DownloadOption

	radio  *widget.RadioGroup
	button *LoadingButton
	toast  *Toast

	watcher    *watcher.Watcher
	dispatcher *notify.Dispatcher
	sink       *notify.FyneSink
	lifecycle  *notify.Lifecycle

	// Alert strip mirroring the last system notification
	alertContainer *fyne.Container
	alertTitle     *widget.Label
	alertBody      *widget.Label
	alertAction    *widget.Button
	alertID        int
	alertHandle    model.TransferHandle

	openDetail func(payload model.NotificationPayload, outputPath string)
}

// NewRootUI creates and initializes the main UI
func NewRootUI(log *slog.Logger, app fyne.App, window fyne.Window, service transfer.Service, settings *config.Settings) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		log:          log,
		app:          app,
		window:       window,
		service:      service,
		settings:     settings,
		localization: localization,
		options:      model.DefaultOptions(),
		toast:        NewToast(window),
		lifecycle:    notify.NewLifecycle(),
	}
	ui.openDetail = func(payload model.NotificationPayload, outputPath string) {
		ShowDetailWindow(ui.log, ui.app, ui.localization, payload, outputPath)
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.button = NewLoadingButton(log, loading.Config{
		DefaultText: settings.GetDefaultText(),
		LoadingText: settings.GetLoadingText(),
		Duration:    settings.GetAnimationDuration(),
	})
	ui.button.OnTapped = ui.onButtonTapped

	ui.sink = notify.NewFyneSink(log, app)
	ui.sink.OnPosted = ui.onAlertPosted
	ui.dispatcher = notify.NewDispatcher(log, ui.sink, ui.toast, ui.lifecycle, ui.notificationTexts())
	ui.watcher = watcher.New(log, service, ui.button, ui.dispatcher, fyne.Do)
	ui.watcher.RegisterForCompletion()

	// The window is about to be shown, so the screen starts resumed
	ui.lifecycle.Attach(app.Lifecycle())
	ui.lifecycle.EnteredForeground()

	ui.setupUI()
	window.SetOnClosed(ui.Teardown)
	return ui
}

func (ui *RootUI) notificationTexts() notify.Texts {
	text := ui.localization.GetText
	return notify.Texts{
		Toast:              text(KeyDownloadCompleted),
		Title:              text(KeyNotificationTitle),
		Description:        text(KeyNotificationBody),
		Action:             text(KeyCheckStatus),
		ChannelName:        text(KeyChannelName),
		ChannelDescription: text(KeyChannelDescription),
	}
}

func (ui *RootUI) setupUI() {
	ui.createMenu()

	header := widget.NewIcon(theme.DownloadIcon())
	headerBox := container.NewGridWrap(fyne.NewSize(HeaderIconSize, HeaderIconSize), header)

	ui.radio = widget.NewRadioGroup(lo.Map(ui.options, func(o model.DownloadOption, _ int) string {
		return o.Label
	}), nil)

	ui.alertTitle = widget.NewLabel("")
	ui.alertTitle.TextStyle = fyne.TextStyle{Bold: true}
	ui.alertBody = widget.NewLabel("")
	ui.alertBody.Wrapping = fyne.TextWrapWord
	ui.alertAction = widget.NewButton(ui.localization.GetText(KeyCheckStatus), ui.onCheckStatus)
	ui.alertAction.Importance = widget.HighImportance
	dismiss := widget.NewButton(IconClose, ui.hideAlert)
	dismiss.Importance = widget.LowImportance
	ui.alertContainer = container.NewBorder(
		container.NewBorder(nil, nil, widget.NewIcon(theme.InfoIcon()), dismiss, ui.alertTitle),
		nil, nil, ui.alertAction, ui.alertBody,
	)
	ui.alertContainer.Hide()

	content := container.NewBorder(
		container.NewVBox(container.NewCenter(headerBox), ui.alertContainer),
		container.NewPadded(ui.button),
		nil, nil,
		container.NewVScroll(container.NewPadded(ui.radio)),
	)
	ui.window.SetContent(content)
}

func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.alertAction.SetText(ui.localization.GetText(KeyCheckStatus))
	ui.dispatcher.SetTexts(ui.notificationTexts())
}

func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
		ui.toast.Toast(ui.localization.GetText(KeySettingsSaved))
	})
}

// selectedOption returns the option picked in the radio group
func (ui *RootUI) selectedOption() (model.DownloadOption, bool) {
	return lo.Find(ui.options, func(o model.DownloadOption) bool {
		return o.Label == ui.radio.Selected
	})
}

// onButtonTapped starts a download for the selected option
func (ui *RootUI) onButtonTapped() {
	option, ok := ui.selectedOption()
	if !ok {
		ui.toast.Toast(ui.localization.GetText(KeySelectFile))
		return
	}
	if !ui.button.Click() {
		return
	}

	req := option.Request(ui.localization.GetText(KeyNotificationTitle), ui.localization.GetText(KeyNotificationBody))
	handle, err := ui.service.Enqueue(context.Background(), req)
	if err != nil {
		ui.log.Error("Failed to enqueue transfer", "url", req.URL, "error", err)
		ui.toast.Toast(fmt.Sprintf("%s: %v", ui.localization.GetText(KeyEnqueueFailed), err))
		ui.button.ChangeState(model.ButtonCompleted)
		return
	}

	ui.log.Info("Transfer enqueued", "handle", handle, "file", option.FileName)
	ui.watcher.Supersede(handle, option.FileName)
}

func (ui *RootUI) onAlertPosted(id int, content notify.Content) {
	ui.alertID = id
	ui.alertHandle = ui.watcher.LastDispatched()
	ui.alertTitle.SetText(content.Title)
	ui.alertBody.SetText(content.Body)
	ui.alertAction.SetText(content.ActionLabel)
	ui.alertContainer.Show()
}

// onCheckStatus runs the alert action: open the detail view and, as the
// alert auto cancels, remove it
func (ui *RootUI) onCheckStatus() {
	content, ok := ui.sink.Posted(ui.alertID)
	if !ok {
		ui.hideAlert()
		return
	}
	// The record holds the path chosen at enqueue time
	var outputPath string
	if rec, found := ui.service.Query(ui.alertHandle); found {
		outputPath = rec.OutputPath
	}
	ui.openDetail(content.Payload, outputPath)
	if content.AutoCancel {
		ui.hideAlert()
	}
}

func (ui *RootUI) hideAlert() {
	ui.sink.Dismiss(ui.alertID)
	ui.alertContainer.Hide()
}

// Button returns the loading button
func (ui *RootUI) Button() *LoadingButton {
	return ui.button
}

// Teardown releases the screen's subscriptions. It runs when the window closes.
func (ui *RootUI) Teardown() {
	ui.watcher.Teardown()
	ui.lifecycle.Detach()
	ui.button.controller.Stop()
}
