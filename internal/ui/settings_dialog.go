package ui

import (
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/nasa-images/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	apiURLEntry      *widget.Entry
	mediaTypeEntry   *widget.Entry
	timeoutEntry     *widget.Entry
	saveDirEntry     *widget.Entry
	autoRevealCheck  *widget.Check
	languageSelect   *widget.Select
	languageByLabel  map[string]string
	labelForLanguage map[string]string
}

// ShowSettingsDialog builds and shows the settings dialog. onSaved runs
// after the values were stored.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	NewSettingsDialog(settings, localization, window, onSaved).Show()
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

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	sd.apiURLEntry = widget.NewEntry()
	sd.apiURLEntry.SetPlaceHolder(config.DefaultAPIBaseURL)

	sd.mediaTypeEntry = widget.NewEntry()
	sd.mediaTypeEntry.SetPlaceHolder(config.DefaultMediaType)

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder(strconv.Itoa(config.MinRequestTimeout) + "-" + strconv.Itoa(config.MaxRequestTimeout))

	// Save directory selection
	sd.saveDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(text(KeyBrowse), sd.onBrowseDirectory)
	saveDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.saveDirEntry)

	sd.autoRevealCheck = widget.NewCheck(text(KeyAutoReveal), nil)

	// Language selection shows display names, stores codes
	sd.languageByLabel = make(map[string]string)
	sd.labelForLanguage = make(map[string]string)
	labels := []string{}
	for code, label := range sd.settings.GetLanguageOptions() {
		sd.languageByLabel[label] = code
		sd.labelForLanguage[code] = label
		labels = append(labels, label)
	}
	sort.Strings(labels)
	sd.languageSelect = widget.NewSelect(labels, nil)

	form := container.NewVBox(
		widget.NewLabel(text(KeyAPIEndpoint)+":"),
		sd.apiURLEntry,

		widget.NewLabel(text(KeyMediaType)+":"),
		sd.mediaTypeEntry,

		widget.NewLabel(text(KeyRequestTimeout)+":"),
		sd.timeoutEntry,

		widget.NewSeparator(),

		widget.NewLabel(text(KeySaveDirectory)+":"),
		saveDirRow,
		sd.autoRevealCheck,

		widget.NewSeparator(),

		widget.NewLabel(text(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.apiURLEntry.SetText(sd.settings.GetAPIBaseURL())
	sd.mediaTypeEntry.SetText(sd.settings.GetMediaType())
	sd.timeoutEntry.SetText(strconv.Itoa(sd.settings.GetRequestTimeout()))
	sd.saveDirEntry.SetText(sd.settings.GetSaveDirectory())
	sd.autoRevealCheck.SetChecked(sd.settings.GetAutoRevealOnSave())
	sd.languageSelect.SetSelected(sd.labelForLanguage[sd.settings.GetLanguage()])
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.saveDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()

	if sd.onSaved != nil {
		sd.onSaved()
	}
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// apply stores the dialog values
func (sd *SettingsDialog) apply() {
	sd.settings.SetAPIBaseURL(sd.apiURLEntry.Text)
	sd.settings.SetMediaType(sd.mediaTypeEntry.Text)

	if timeout, err := strconv.Atoi(sd.timeoutEntry.Text); err == nil {
		sd.settings.SetRequestTimeout(timeout)
	}

	if sd.saveDirEntry.Text != "" {
		sd.settings.SetSaveDirectory(sd.saveDirEntry.Text)
	}
	sd.settings.SetAutoRevealOnSave(sd.autoRevealCheck.Checked)

	if code, ok := sd.languageByLabel[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}
}
