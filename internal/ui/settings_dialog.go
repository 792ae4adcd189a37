package ui

import (
	"sort"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/samber/lo"

	"github.com/ytget/loadstatus/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	downloadDirEntry *widget.Entry
	maxParallelEntry *widget.Entry
	maxRetriesEntry  *widget.Entry
	durationEntry    *widget.Entry
	defaultTextEntry *widget.Entry
	loadingTextEntry *widget.Entry
	languageSelect   *widget.Select
	languageCodes    []string
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog creates and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window, onSaved)
	sd.Show()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	sd.downloadDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(text(KeyBrowse), sd.onBrowseDirectory)
	downloadDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.downloadDirEntry)

	sd.maxParallelEntry = numberEntry("1-10")
	sd.maxRetriesEntry = numberEntry("0-5")
	sd.durationEntry = numberEntry("500-60000")

	sd.defaultTextEntry = widget.NewEntry()
	sd.defaultTextEntry.SetPlaceHolder(config.DefaultDefaultText)
	sd.loadingTextEntry = widget.NewEntry()
	sd.loadingTextEntry.SetPlaceHolder(config.DefaultLoadingText)

	// Sorted codes keep the select stable between openings
	labels := sd.settings.GetLanguageOptions()
	sd.languageCodes = lo.Keys(labels)
	sort.Strings(sd.languageCodes)
	sd.languageSelect = widget.NewSelect(lo.Map(sd.languageCodes, func(code string, _ int) string {
		return labels[code]
	}), nil)

	form := widget.NewForm(
		widget.NewFormItem(text(KeyDownloadDirectory), downloadDirRow),
		widget.NewFormItem(text(KeyMaxParallel), sd.maxParallelEntry),
		widget.NewFormItem(text(KeyMaxRetries), sd.maxRetriesEntry),
		widget.NewFormItem(text(KeyAnimationDuration), sd.durationEntry),
		widget.NewFormItem(text(KeyDefaultText), sd.defaultTextEntry),
		widget.NewFormItem(text(KeyLoadingText), sd.loadingTextEntry),
		widget.NewFormItem(text(KeyLanguage), sd.languageSelect),
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		container.NewVBox(form, widget.NewLabel(text(KeySettingsNextDownloads))),
		sd.onSave,
		sd.window,
	)
	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

func numberEntry(placeholder string) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetPlaceHolder(placeholder)
	entry.Validator = func(s string) error {
		if s == "" {
			return nil
		}
		_, err := strconv.Atoi(s)
		return err
	}
	return entry
}

func (sd *SettingsDialog) loadCurrentSettings() {
	sd.downloadDirEntry.SetText(sd.settings.GetDownloadDirectory())
	sd.maxParallelEntry.SetText(strconv.Itoa(sd.settings.GetMaxParallelDownloads()))
	sd.maxRetriesEntry.SetText(strconv.Itoa(sd.settings.GetMaxRetries()))
	sd.durationEntry.SetText(strconv.FormatInt(sd.settings.GetAnimationDuration().Milliseconds(), 10))
	sd.defaultTextEntry.SetText(sd.settings.GetDefaultText())
	sd.loadingTextEntry.SetText(sd.settings.GetLoadingText())

	current := sd.settings.GetLanguage()
	if idx := lo.IndexOf(sd.languageCodes, current); idx >= 0 {
		sd.languageSelect.SetSelectedIndex(idx)
	}
}

func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.downloadDirEntry.SetText(uri.Path())
	}, sd.window)
}

func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if dir := sd.downloadDirEntry.Text; dir != "" {
		sd.settings.SetDownloadDirectory(dir)
	}
	if n, ok := parseNumber(sd.maxParallelEntry.Text); ok {
		sd.settings.SetMaxParallelDownloads(n)
	}
	if n, ok := parseNumber(sd.maxRetriesEntry.Text); ok {
		sd.settings.SetMaxRetries(n)
	}
	if ms, ok := parseNumber(sd.durationEntry.Text); ok {
		sd.settings.SetAnimationDuration(time.Duration(ms) * time.Millisecond)
	}
	sd.settings.SetDefaultText(sd.defaultTextEntry.Text)
	sd.settings.SetLoadingText(sd.loadingTextEntry.Text)
	if idx := sd.languageSelect.SelectedIndex(); idx >= 0 {
		sd.settings.SetLanguage(sd.languageCodes[idx])
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

func parseNumber(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}
