package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/nasa-images/internal/model"
)

// ImageTile shows one thumbnail with its title and reports taps
type ImageTile struct {
	widget.BaseWidget

	image    *model.RenderableImage
	onTapped func(*model.RenderableImage)

	picture *canvas.Image
	caption *widget.Label
}

// NewImageTile creates a tile that owns img
func NewImageTile(img *model.RenderableImage, onTapped func(*model.RenderableImage)) *ImageTile {
	tile := &ImageTile{
		image:    img,
		onTapped: onTapped,
	}

	tile.picture = canvas.NewImageFromImage(img.Image)
	tile.picture.FillMode = canvas.ImageFillContain
	tile.picture.SetMinSize(fyne.NewSize(TileImageSize, TileImageSize))

	tile.caption = widget.NewLabel(img.DisplayTitle())
	tile.caption.Alignment = fyne.TextAlignCenter
	tile.caption.Truncation = fyne.TextTruncateEllipsis

	tile.ExtendBaseWidget(tile)
	return tile
}

// Image returns the image shown by the tile
func (t *ImageTile) Image() *model.RenderableImage {
	return t.image
}

// Tapped opens the preview
func (t *ImageTile) Tapped(*fyne.PointEvent) {
	if t.onTapped != nil {
		t.onTapped(t.image)
	}
}

// Cursor shows a pointer over the tile
func (t *ImageTile) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

// CreateRenderer implements fyne.Widget
func (t *ImageTile) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewBorder(nil, t.caption, nil, nil, t.picture))
}
