package model

import "image"

// RenderableImage is a decoded, size-bounded image ready for display.
// Once handed to a render sink the sink owns it; producers keep no reference.
type RenderableImage struct {
	Title string
	URL   string
	Image image.Image
}

// Size returns the pixel dimensions of the image, or zeros when it is empty.
func (ri *RenderableImage) Size() (int, int) {
	if ri == nil || ri.Image == nil {
		return 0, 0
	}
	b := ri.Image.Bounds()
	return b.Dx(), b.Dy()
}

// DisplayTitle returns the title cut for display
func (ri *RenderableImage) DisplayTitle() string {
	return TruncateTitle(ri.Title)
}
