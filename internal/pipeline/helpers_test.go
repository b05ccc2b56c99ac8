package pipeline

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/ytget/nasa-images/internal/model"
)

type manualHandle struct {
	stopped bool
}

func (h *manualHandle) Stop() bool {
	wasPending := !h.stopped
	h.stopped = true
	return wasPending
}

type scheduled struct {
	delay  time.Duration
	fn     func()
	handle *manualHandle
}

// manualScheduler queues callbacks until the test fires them
type manualScheduler struct {
	queue  []scheduled
	delays []time.Duration
}

func (s *manualScheduler) After(delay time.Duration, fn func()) Handle {
	h := &manualHandle{}
	s.queue = append(s.queue, scheduled{delay: delay, fn: fn, handle: h})
	s.delays = append(s.delays, delay)
	return h
}

// fire runs the oldest queued callback. Stopped callbacks run too when
// includeStopped is set, which mimics a timer that fired before Stop.
func (s *manualScheduler) fire(includeStopped bool) bool {
	for len(s.queue) > 0 {
		next := s.queue[0]
		s.queue = s.queue[1:]
		if next.handle.stopped && !includeStopped {
			continue
		}
		next.fn()
		return true
	}
	return false
}

func (s *manualScheduler) drain(includeStopped bool) int {
	n := 0
	for s.fire(includeStopped) {
		n++
		if n > 1000 {
			panic("scheduler did not settle")
		}
	}
	return n
}

type render struct {
	title    string
	row, col int
}

type recordingSink struct {
	renders  []render
	clears   int
	loading  []bool
	panicOn  string
	retained []*model.RenderableImage
}

func (s *recordingSink) OnRender(img *model.RenderableImage, row, col int) {
	if s.panicOn != "" && img.Title == s.panicOn {
		panic("widget exploded")
	}
	s.retained = append(s.retained, img)
	s.renders = append(s.renders, render{title: img.Title, row: row, col: col})
}

func (s *recordingSink) OnClear() {
	s.clears++
	s.renders = nil
	s.retained = nil
}

func (s *recordingSink) SetLoading(loading bool) {
	s.loading = append(s.loading, loading)
}

type logRecorder struct {
	lines []string
}

func (l *logRecorder) sink() LogSink {
	return func(message string) {
		l.lines = append(l.lines, message)
	}
}

func (l *logRecorder) count(message string) int {
	n := 0
	for _, line := range l.lines {
		if line == message {
			n++
		}
	}
	return n
}

type stubFetcher struct {
	calls  []string
	errs   map[string]error
	panics map[string]bool
	hook   func(url string)
}

func (f *stubFetcher) Thumbnail(_ context.Context, url, title string) (*model.RenderableImage, error) {
	f.calls = append(f.calls, url)
	if f.hook != nil {
		f.hook(url)
	}
	if f.panics[url] {
		panic("decoder exploded")
	}
	if err := f.errs[url]; err != nil {
		return nil, err
	}
	return &model.RenderableImage{
		Title: title,
		URL:   url,
		Image: image.NewRGBA(image.Rect(0, 0, 1, 1)),
	}, nil
}

func imageURL(prefix string, i int) string {
	return fmt.Sprintf("https://images-assets.nasa.gov/image/%s%d/thumb.jpg", prefix, i)
}

func itemJSON(title, href string) model.ResultItem {
	raw := fmt.Sprintf(`{"links":[{"href":%q,"rel":"preview"}],"data":[{"title":%q,"nasa_id":"x"}]}`, href, title)
	return model.ResultItem{Raw: []byte(raw)}
}

func wellFormed(prefix string, n int) []model.ResultItem {
	items := make([]model.ResultItem, n)
	for i := range items {
		items[i] = itemJSON(fmt.Sprintf("%s %d", prefix, i), imageURL(prefix, i))
	}
	return items
}
