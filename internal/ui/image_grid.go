package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/nasa-images/internal/model"
)

// ImageGrid is the render sink: a fixed 3-column grid of model.DisplayCap
// cells plus a loading indicator. Its methods may be called from any
// goroutine; widget updates run on the Fyne thread.
type ImageGrid struct {
	cells    []*fyne.Container
	grid     *fyne.Container
	loading  *widget.ProgressBarInfinite
	content  *fyne.Container
	onTapped func(*model.RenderableImage)
}

// NewImageGrid creates an empty grid. onTapped is called with the image of
// a tapped tile.
func NewImageGrid(onTapped func(*model.RenderableImage)) *ImageGrid {
	g := &ImageGrid{
		cells:    make([]*fyne.Container, model.DisplayCap),
		onTapped: onTapped,
	}

	objects := make([]fyne.CanvasObject, len(g.cells))
	for i := range g.cells {
		g.cells[i] = container.NewStack()
		objects[i] = g.cells[i]
	}
	g.grid = container.NewGridWithColumns(model.GridColumns, objects...)

	g.loading = widget.NewProgressBarInfinite()
	g.loading.Stop()
	g.loading.Hide()

	g.content = container.NewBorder(g.loading, nil, nil, nil, container.NewVScroll(g.grid))
	return g
}

// OnRender places img into the cell at row, col. The grid keeps the image
// until the next OnClear.
func (g *ImageGrid) OnRender(img *model.RenderableImage, row, col int) {
	index := row*model.GridColumns + col
	if img == nil || index < 0 || index >= len(g.cells) {
		return
	}

	fyne.Do(func() {
		cell := g.cells[index]
		cell.Objects = []fyne.CanvasObject{NewImageTile(img, g.onTapped)}
		cell.Refresh()
	})
}

// OnClear removes every rendered image
func (g *ImageGrid) OnClear() {
	fyne.Do(func() {
		for _, cell := range g.cells {
			cell.Objects = nil
			cell.Refresh()
		}
	})
}

// SetLoading shows or hides the loading indicator
func (g *ImageGrid) SetLoading(loading bool) {
	fyne.Do(func() {
		if loading {
			g.loading.Show()
			g.loading.Start()
			return
		}
		g.loading.Stop()
		g.loading.Hide()
	})
}

// Cell returns the tile at row, col, or nil when the cell is empty.
func (g *ImageGrid) Cell(row, col int) *ImageTile {
	index := row*model.GridColumns + col
	if index < 0 || index >= len(g.cells) || len(g.cells[index].Objects) == 0 {
		return nil
	}
	tile, _ := g.cells[index].Objects[0].(*ImageTile)
	return tile
}

// Loading reports whether the loading indicator is visible
func (g *ImageGrid) Loading() bool {
	return g.loading.Visible()
}

// Container returns the grid widget
func (g *ImageGrid) Container() fyne.CanvasObject {
	return g.content
}
