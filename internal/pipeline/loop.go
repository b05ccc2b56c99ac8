package pipeline

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ytget/nasa-images/internal/logger"
)

// DefaultQueueSize is the task buffer of a Loop
const DefaultQueueSize = 64

// Loop runs posted callbacks one at a time, in posting order, on a single
// goroutine.
type Loop struct {
	tasks    chan func()
	done     chan struct{}
	stopOnce sync.Once
	logger   *zap.SugaredLogger
}

// NewLoop creates a stopped loop; call Run or Start to process tasks.
func NewLoop() *Loop {
	return &Loop{
		tasks:  make(chan func(), DefaultQueueSize),
		done:   make(chan struct{}),
		logger: logger.Named("loop"),
	}
}

// Start runs the loop on a new goroutine until ctx is done or Stop is called
func (l *Loop) Start(ctx context.Context) {
	go l.Run(ctx)
}

// Run processes tasks until ctx is done or Stop is called.
func (l *Loop) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			l.Stop()
			return
		case <-l.done:
			return
		case fn := <-l.tasks:
			l.execute(fn)
		}
	}
}

// Post queues fn for execution. It returns false once the loop has stopped.
// Post must not be called from the loop goroutine when the queue may be full.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}

	select {
	case l.tasks <- fn:
		return true
	case <-l.done:
		return false
	}
}

// After posts fn into the loop once delay has elapsed
func (l *Loop) After(delay time.Duration, fn func()) Handle {
	return time.AfterFunc(delay, func() {
		l.Post(fn)
	})
}

// Stop ends the loop. Pending tasks are dropped.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.done)
	})
}

// Done is closed once the loop stops
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

func (l *Loop) execute(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Errorw("Task panicked", "panic", r)
		}
	}()
	fn()
}
