package ui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/nasa-images/internal/config"
	"github.com/ytget/nasa-images/internal/failure"
	"github.com/ytget/nasa-images/internal/logger"
	"github.com/ytget/nasa-images/internal/model"
	"github.com/ytget/nasa-images/internal/pipeline"
	"github.com/ytget/nasa-images/internal/platform"
)

// PreviewContext labels preview failures in the log
const PreviewContext = "opening image"

// PreviewFetcher loads the full-size version of an image
type PreviewFetcher interface {
	Preview(ctx context.Context, url, title string) (*model.RenderableImage, error)
}

// PreviewOpener opens tapped thumbnails in their own window
type PreviewOpener struct {
	ctx          context.Context
	app          fyne.App
	fetcher      PreviewFetcher
	settings     *config.Settings
	localization *Localization
	log          pipeline.LogSink
	logger       *zap.SugaredLogger
}

// NewPreviewOpener creates a preview opener
func NewPreviewOpener(ctx context.Context, app fyne.App, fetcher PreviewFetcher, settings *config.Settings, localization *Localization, log pipeline.LogSink) *PreviewOpener {
	return &PreviewOpener{
		ctx:          ctx,
		app:          app,
		fetcher:      fetcher,
		settings:     settings,
		localization: localization,
		log:          log,
		logger:       logger.Named("preview"),
	}
}

// Open fetches the full-size image in the background and shows it.
// The thumbnail is not reused; every open fetches again.
func (p *PreviewOpener) Open(thumb *model.RenderableImage) {
	if thumb == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(p.ctx, PreviewTimeout)
		defer cancel()

		full, err := p.fetcher.Preview(ctx, thumb.URL, thumb.Title)
		if err != nil {
			p.logger.Warnw("Preview failed", logger.FieldURL, thumb.URL, logger.FieldError, err)
			p.log(failure.Describe(err, PreviewContext))
			return
		}

		fyne.Do(func() {
			p.show(full)
		})
	}()
}

func (p *PreviewOpener) show(img *model.RenderableImage) {
	w := p.app.NewWindow(p.localization.GetText(KeyPreviewTitle))

	picture := canvas.NewImageFromImage(img.Image)
	picture.FillMode = canvas.ImageFillContain
	width, height := img.Size()
	picture.SetMinSize(fyne.NewSize(float32(width), float32(height)))

	title := widget.NewLabel(img.Title)
	title.Wrapping = fyne.TextWrapWord

	saveBtn := widget.NewButton(IconSave+" "+p.localization.GetText(KeySave), func() {
		p.save(w, img)
	})

	w.SetContent(container.NewBorder(
		title,
		container.NewHBox(saveBtn),
		nil,
		nil,
		container.NewScroll(picture),
	))
	w.Resize(fyne.NewSize(PreviewWindowWidth, PreviewWindowHeight))
	w.Show()
}

func (p *PreviewOpener) save(w fyne.Window, img *model.RenderableImage) {
	path, err := platform.SaveImagePNG(p.settings.GetSaveDirectory(), img.Title, img.Image)
	if err != nil {
		p.logger.Errorw("Save failed", logger.FieldTitle, img.Title, logger.FieldError, err)
		p.log(fmt.Sprintf("%s: %v", p.localization.GetText(KeyErrorSavingImage), err))
		dialog.ShowError(err, w)
		return
	}

	p.log(fmt.Sprintf("%s: %s", p.localization.GetText(KeyImageSaved), path))
	if !p.settings.GetAutoRevealOnSave() {
		return
	}
	if err := platform.OpenFileInManager(path); err != nil {
		p.logger.Warnw("Reveal failed", "path", path, logger.FieldError, err)
	}
}
