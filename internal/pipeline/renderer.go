package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/ytget/nasa-images/internal/failure"
	"github.com/ytget/nasa-images/internal/logger"
	"github.com/ytget/nasa-images/internal/model"
)

// Step timing
const (
	DefaultInitialDelay = 100 * time.Millisecond
	DefaultStepDelay    = 10 * time.Millisecond
)

// User-facing renderer messages
const (
	MsgStarted  = "Started loading images."
	MsgFinished = "Finished loading images."
)

// Renderer processes result items one scheduled step at a time and hands
// each decoded thumbnail to the sink.
type Renderer struct {
	scheduler Scheduler
	fetcher   ImageFetcher
	sink      Sink
	log       LogSink
	logger    *zap.SugaredLogger

	ctx          context.Context
	initialDelay time.Duration
	stepDelay    time.Duration

	generation uint64
	run        *model.RunState
	pending    Handle
}

// RendererOption configures a Renderer
type RendererOption func(*Renderer)

// WithDelays overrides the initial and per-step delays
func WithDelays(initial, step time.Duration) RendererOption {
	return func(r *Renderer) {
		r.initialDelay = initial
		r.stepDelay = step
	}
}

// WithContext sets the context passed to every fetch
func WithContext(ctx context.Context) RendererOption {
	return func(r *Renderer) {
		if ctx != nil {
			r.ctx = ctx
		}
	}
}

// NewRenderer creates an idle renderer
func NewRenderer(scheduler Scheduler, fetcher ImageFetcher, sink Sink, log LogSink, opts ...RendererOption) *Renderer {
	r := &Renderer{
		scheduler:    scheduler,
		fetcher:      fetcher,
		sink:         sink,
		log:          log,
		logger:       logger.Named("renderer"),
		ctx:          context.Background(),
		initialDelay: DefaultInitialDelay,
		stepDelay:    DefaultStepDelay,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start begins a new run over items, superseding any run in progress.
func (r *Renderer) Start(items []model.ResultItem) {
	r.supersede()
	r.generation++

	run := model.NewRunState(r.generation, items)
	run.Status = model.RunStatusRunning
	r.run = run

	r.logger.Infow("Run started",
		logger.FieldRunID, run.ID,
		logger.FieldGeneration, run.Generation,
		logger.FieldCount, len(items),
	)

	r.log(MsgStarted)
	r.sink.SetLoading(true)
	r.schedule(r.initialDelay, run.Generation)
}

// Reset supersedes the current run and clears the sink
func (r *Renderer) Reset() {
	r.supersede()
	r.generation++
	r.run = nil
	r.sink.OnClear()
	r.sink.SetLoading(false)
}

// Generation returns the current generation token
func (r *Renderer) Generation() uint64 {
	return r.generation
}

// Run returns the current run, or nil when none was started since the last reset.
func (r *Renderer) Run() *model.RunState {
	return r.run
}

func (r *Renderer) supersede() {
	if r.pending != nil {
		r.pending.Stop()
		r.pending = nil
	}
	if r.run != nil && r.run.Status.IsActive() {
		r.run.Finish(model.RunStatusSuperseded)
		r.logger.Debugw("Run superseded",
			logger.FieldRunID, r.run.ID,
			logger.FieldCursor, r.run.Cursor,
			logger.FieldShown, r.run.Shown,
		)
	}
}

func (r *Renderer) schedule(delay time.Duration, generation uint64) {
	r.pending = r.scheduler.After(delay, func() {
		r.step(generation)
	})
}

func (r *Renderer) live(generation uint64) bool {
	return r.run != nil && generation == r.generation && r.run.Generation == generation
}

func (r *Renderer) step(generation uint64) {
	if !r.live(generation) {
		return
	}
	run := r.run

	if run.Done() {
		r.complete(run)
		return
	}

	r.process(run, run.Next())

	if !r.live(generation) {
		return
	}
	r.schedule(r.stepDelay, generation)
}

func (r *Renderer) complete(run *model.RunState) {
	run.Finish(model.RunStatusCompleted)
	r.pending = nil

	r.logger.Infow("Run completed",
		logger.FieldRunID, run.ID,
		logger.FieldCursor, run.Cursor,
		logger.FieldShown, run.Shown,
		logger.FieldDurationMS, run.FinishedAt.Sub(run.StartedAt).Milliseconds(),
	)

	r.log(MsgFinished)
	r.sink.SetLoading(false)
}

func (r *Renderer) process(run *model.RunState, item model.ResultItem) {
	entry, skip := model.ValidateItem(item)
	if skip.Skipped() {
		r.log(skip.Message())
		return
	}

	title := entry.DisplayTitle()
	r.log(fmt.Sprintf("Loading image '%s' (%s)", title, entry.ImageURL))

	img, err := r.fetch(entry)
	if !r.live(run.Generation) {
		return
	}
	if err == nil {
		row, col := model.GridPosition(run.Shown)
		err = r.render(img, row, col)
	}
	if err != nil {
		f := failure.Classify(err)
		r.logger.Debugw("Image failed",
			logger.FieldRunID, run.ID,
			logger.FieldURL, entry.ImageURL,
			logger.FieldKind, f.Kind.String(),
			logger.FieldError, err,
		)
		r.log(f.Message(fmt.Sprintf("loading image '%s'", title)))
		return
	}

	run.Shown++
	r.log(fmt.Sprintf("Loaded image: '%s'", title))
}

func (r *Renderer) fetch(entry model.Entry) (img *model.RenderableImage, err error) {
	defer func() {
		if p := recover(); p != nil {
			img, err = nil, errors.Newf("panic while fetching: %v", p)
		}
	}()
	img, err = r.fetcher.Thumbnail(r.ctx, entry.ImageURL, entry.Title)
	if err == nil && img == nil {
		err = errors.New("fetcher returned no image")
	}
	return img, err
}

func (r *Renderer) render(img *model.RenderableImage, row, col int) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = errors.Newf("panic while rendering: %v", p)
		}
	}()
	r.sink.OnRender(img, row, col)
	return nil
}
