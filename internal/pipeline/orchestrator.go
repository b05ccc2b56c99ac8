package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/ytget/nasa-images/internal/failure"
	"github.com/ytget/nasa-images/internal/logger"
	"github.com/ytget/nasa-images/internal/model"
)

// User-facing search messages
const (
	MsgEmptyQuery = "Error: enter a search query."
	MsgNoResults  = "No results for this search."
)

// WarnFunc shows a blocking warning to the user
type WarnFunc func(message string)

// Orchestrator validates a query, runs the search and starts rendering
type Orchestrator struct {
	searcher Searcher
	renderer *Renderer
	log      LogSink
	warn     WarnFunc
	logger   *zap.SugaredLogger
}

// NewOrchestrator wires a searcher to a renderer. warn may be nil.
func NewOrchestrator(searcher Searcher, renderer *Renderer, log LogSink, warn WarnFunc) *Orchestrator {
	return &Orchestrator{
		searcher: searcher,
		renderer: renderer,
		log:      log,
		warn:     warn,
		logger:   logger.Named("orchestrator"),
	}
}

// Search runs query and starts a render run over its results.
// Failures are logged, never returned.
func (o *Orchestrator) Search(ctx context.Context, query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		o.log(MsgEmptyQuery)
		if o.warn != nil {
			o.warn(MsgEmptyQuery)
		}
		return
	}

	o.renderer.Reset()
	o.log("Searching: " + query)
	o.logger.Infow("Searching", logger.FieldQuery, query)

	items, err := o.search(ctx, query)
	if err != nil {
		o.logger.Warnw("Search failed", logger.FieldQuery, query, logger.FieldError, err)
		o.log(failure.Describe(err, "searching"))
		return
	}

	if len(items) == 0 {
		o.log(MsgNoResults)
		return
	}

	o.log(fmt.Sprintf("Found %d results. Showing at most %d images.", len(items), model.DisplayCap))
	o.renderer.Start(items)
}

func (o *Orchestrator) search(ctx context.Context, query string) (items []model.ResultItem, err error) {
	defer func() {
		if p := recover(); p != nil {
			items, err = nil, errors.Newf("panic while searching: %v", p)
		}
	}()
	return o.searcher.Search(ctx, query)
}
