package pipeline

import (
	"context"
	"time"

	"github.com/ytget/nasa-images/internal/model"
)

// Handle cancels a scheduled callback. *time.Timer satisfies it.
type Handle interface {
	Stop() bool
}

// Scheduler defers callbacks onto the pipeline goroutine
type Scheduler interface {
	After(delay time.Duration, fn func()) Handle
}

// Sink receives rendered images. It owns every image handed to OnRender.
type Sink interface {
	OnRender(img *model.RenderableImage, row, col int)
	OnClear()
	SetLoading(loading bool)
}

// LogSink receives user-facing log messages without timestamps
type LogSink func(message string)

// Searcher runs a search query
type Searcher interface {
	Search(ctx context.Context, query string) ([]model.ResultItem, error)
}

// ImageFetcher produces display-ready thumbnails
type ImageFetcher interface {
	Thumbnail(ctx context.Context, url, title string) (*model.RenderableImage, error)
}
