// Package imaging turns image URLs into decoded, size-bounded images.
package imaging

import (
	"bytes"
	"context"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/ytget/nasa-images/internal/failure"
	"github.com/ytget/nasa-images/internal/logger"
	"github.com/ytget/nasa-images/internal/model"
)

// Size bounds
const (
	ThumbnailMaxWidth  = 200
	ThumbnailMaxHeight = 200
	PreviewMaxWidth    = 1000
	PreviewMaxHeight   = 800

	// MaxPixels caps the declared size of an image accepted for decoding.
	MaxPixels = 100_000_000
)

// ByteSource retrieves the raw bytes behind a URL.
// Implementations return errors that package failure can classify.
type ByteSource interface {
	FetchBytes(ctx context.Context, url string) ([]byte, error)
}

// Fetcher downloads and decodes images
type Fetcher struct {
	source ByteSource
	logger *zap.SugaredLogger
}

// NewFetcher creates a fetcher reading through source
func NewFetcher(source ByteSource) *Fetcher {
	return &Fetcher{
		source: source,
		logger: logger.Named("imaging"),
	}
}

// Thumbnail fetches url and scales the image down to fit 200x200.
func (f *Fetcher) Thumbnail(ctx context.Context, url, title string) (*model.RenderableImage, error) {
	return f.fetch(ctx, url, title, ThumbnailMaxWidth, ThumbnailMaxHeight)
}

// Preview fetches url for the full-size view. The image is only rescaled
// when it exceeds 1000x800.
func (f *Fetcher) Preview(ctx context.Context, url, title string) (*model.RenderableImage, error) {
	return f.fetch(ctx, url, title, PreviewMaxWidth, PreviewMaxHeight)
}

func (f *Fetcher) fetch(ctx context.Context, url, title string, maxW, maxH int) (*model.RenderableImage, error) {
	data, err := f.source.FetchBytes(ctx, url)
	if err != nil {
		return nil, err
	}

	img, format, err := Decode(data)
	if err != nil {
		return nil, err
	}

	scaled := FitImage(img, maxW, maxH)
	w, h := scaled.Bounds().Dx(), scaled.Bounds().Dy()
	f.logger.Debugw("Image decoded",
		logger.FieldURL, url,
		"format", format,
		logger.FieldWidth, w,
		logger.FieldHeight, h,
	)

	return &model.RenderableImage{Title: title, URL: url, Image: scaled}, nil
}

// Decode decodes data in any registered format. Images declaring more than
// MaxPixels are rejected before any pixel data is read. Failures are marked
// as decode errors.
func Decode(data []byte) (image.Image, string, error) {
	if len(data) == 0 {
		return nil, "", failure.MarkDecode(errors.New("empty image data"))
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, "", failure.MarkDecode(errors.Wrap(err, "cannot identify image"))
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > MaxPixels {
		return nil, "", failure.MarkDecode(errors.Newf("image too large: %dx%d", cfg.Width, cfg.Height))
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", failure.MarkDecode(errors.Wrap(err, "cannot identify image"))
	}
	return img, format, nil
}

// FitWithin returns the dimensions of a w x h box scaled to fit inside
// maxW x maxH with its aspect ratio kept. It never enlarges.
func FitWithin(w, h, maxW, maxH int) (int, int) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	if w <= maxW && h <= maxH {
		return w, h
	}

	scale := math.Min(float64(maxW)/float64(w), float64(maxH)/float64(h))
	nw := int(math.Round(float64(w) * scale))
	nh := int(math.Round(float64(h) * scale))
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	if nw > maxW {
		nw = maxW
	}
	if nh > maxH {
		nh = maxH
	}
	return nw, nh
}

// FitImage scales img down to fit maxW x maxH. Images already inside the
// bounds are returned unchanged.
func FitImage(img image.Image, maxW, maxH int) image.Image {
	b := img.Bounds()
	nw, nh := FitWithin(b.Dx(), b.Dy(), maxW, maxH)
	if nw == b.Dx() && nh == b.Dy() {
		return img
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
