package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/nasa-images/internal/config"
	"github.com/ytget/nasa-images/internal/imaging"
	"github.com/ytget/nasa-images/internal/logger"
	"github.com/ytget/nasa-images/internal/model"
	"github.com/ytget/nasa-images/internal/nasa"
	"github.com/ytget/nasa-images/internal/pipeline"
	"github.com/ytget/nasa-images/internal/platform"
)

// Split between the image grid and the log panel
const RootSplitOffset = 0.72

// RootUI represents the main UI structure
type RootUI struct {
	ctx          context.Context
	app          fyne.App
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	logger       *zap.SugaredLogger

	searchEntry *widget.Entry
	searchBtn   *widget.Button
	grid        *ImageGrid
	logPanel    *LogPanel
	preview     *PreviewOpener

	// Pipeline state, only touched on the loop goroutine
	loop         *pipeline.Loop
	renderer     *pipeline.Renderer
	orchestrator *pipeline.Orchestrator
	stale        bool
}

// NewRootUI creates and initializes the main UI. Searches run on loop.
func NewRootUI(ctx context.Context, window fyne.Window, app fyne.App, loop *pipeline.Loop) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		ctx:          ctx,
		app:          app,
		window:       window,
		settings:     settings,
		localization: localization,
		logger:       logger.Named("ui"),
		loop:         loop,
		logPanel:     NewLogPanel(),
	}
	ui.grid = NewImageGrid(ui.onImageTapped)

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.buildPipeline()
	ui.buildPreview()
	ui.setupUI()
	return ui
}

// newClient builds a transport from the current settings
func (ui *RootUI) newClient() *nasa.Client {
	opts := append(ui.settings.ClientOptions(), nasa.WithLogger(logger.Named("nasa")))
	return nasa.NewClient(opts...)
}

// buildPipeline wires transport, thumbnail fetcher, renderer and orchestrator.
// Called once at startup and then only from the loop goroutine.
func (ui *RootUI) buildPipeline() {
	client := ui.newClient()
	fetcher := imaging.NewFetcher(client)

	ui.renderer = pipeline.NewRenderer(ui.loop, fetcher, ui.grid, ui.logPanel.Append, pipeline.WithContext(ui.ctx))
	ui.orchestrator = pipeline.NewOrchestrator(client, ui.renderer, ui.logPanel.Append, ui.showWarning)

	ui.logger.Infow("Pipeline configured", "api_url", client.BaseURL())
}

// buildPreview creates the preview opener with its own transport.
// Runs on the Fyne thread.
func (ui *RootUI) buildPreview() {
	fetcher := imaging.NewFetcher(ui.newClient())
	ui.preview = NewPreviewOpener(ui.ctx, ui.app, fetcher, ui.settings, ui.localization, ui.logPanel.Append)
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearchHint))
	// Trigger search when user presses Enter in the search field
	ui.searchEntry.OnSubmitted = func(string) {
		ui.onSearchClick()
	}

	ui.searchBtn = widget.NewButton(IconSearch+" "+ui.localization.GetText(KeySearch), ui.onSearchClick)
	ui.searchBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	left := container.NewHBox(settingsBtn)
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		left = container.NewHBox(logoImage, settingsBtn)
	}

	topPanel := container.NewBorder(nil, nil, left, ui.searchBtn, ui.searchEntry)

	split := container.NewVSplit(ui.grid.Container(), ui.logPanel.Container())
	split.Offset = RootSplitOffset

	ui.window.SetContent(container.NewBorder(topPanel, nil, nil, nil, split))
	ui.window.Canvas().Focus(ui.searchEntry)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
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

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearchHint))
	ui.searchBtn.SetText(IconSearch + " " + ui.localization.GetText(KeySearch))
}

// onSearchClick hands the query to the pipeline loop
func (ui *RootUI) onSearchClick() {
	query := ui.searchEntry.Text
	posted := ui.loop.Post(func() {
		if ui.stale {
			ui.renderer.Reset()
			ui.buildPipeline()
			ui.stale = false
		}
		ui.orchestrator.Search(ui.ctx, query)
	})
	if !posted {
		ui.logger.Warnw("Search dropped, loop stopped", logger.FieldQuery, query)
	}
}

// showWarning pops up a warning; safe from any goroutine
func (ui *RootUI) showWarning(message string) {
	fyne.Do(func() {
		dialog.ShowInformation(ui.localization.GetText(KeyWarning), message, ui.window)
	})
}

// onImageTapped opens the full-size preview
func (ui *RootUI) onImageTapped(img *model.RenderableImage) {
	ui.preview.Open(img)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)
}

// onSettingsSaved applies new settings; the pipeline picks them up on the next search
func (ui *RootUI) onSettingsSaved() {
	ui.buildPreview()
	if err := platform.CreateDirectoryIfNotExists(ui.settings.GetSaveDirectory()); err != nil {
		ui.logger.Warnw("Cannot create save directory", logger.FieldError, err)
	}
	ui.loop.Post(func() {
		ui.stale = true
	})
}
