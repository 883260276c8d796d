// Package scheduler runs the petition closing job on a cron schedule.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultTimeout bounds a single closing run.
const DefaultTimeout = 5 * time.Minute

// ErrAlreadyRunning is returned by Start on a running scheduler.
var ErrAlreadyRunning = errors.New("scheduler already running")

// Closer closes petitions whose deadline has passed.
type Closer interface {
	ClosePetitions(ctx context.Context, now time.Time) (int, error)
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithTimeout overrides DefaultTimeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithClock overrides the time passed to the closer.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) {
		s.now = now
	}
}

// Scheduler triggers Closer.ClosePetitions on a cron schedule. Overlapping
// runs are skipped.
type Scheduler struct {
	cron    *cron.Cron
	entry   cron.EntryID
	closer  Closer
	logger  *slog.Logger
	timeout time.Duration
	now     func() time.Time

	mu      sync.Mutex
	running bool
	baseCtx context.Context
	cancel  context.CancelFunc
}

// New creates a Scheduler running the closing job on schedule, a standard
// five-field cron expression or a descriptor such as "@every 1h".
func New(closer Closer, schedule string, logger *slog.Logger, opts ...Option) (*Scheduler, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With(slog.String("component", "scheduler"))

	s := &Scheduler{
		closer:  closer,
		logger:  logger,
		timeout: DefaultTimeout,
		now:     time.Now,
		baseCtx: context.Background(),
	}
	for _, opt := range opts {
		opt(s)
	}

	cronLogger := cronLog{logger: logger}
	s.cron = cron.New(
		cron.WithLogger(cronLogger),
		cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
	)

	entry, err := s.cron.AddFunc(schedule, s.tick)
	if err != nil {
		return nil, fmt.Errorf("parse close schedule %q: %w", schedule, err)
	}
	s.entry = entry
	return s, nil
}

// Start begins running the job in the background. Runs use a context
// derived from ctx, so canceling ctx aborts a run in flight.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return ErrAlreadyRunning
	}
	s.baseCtx, s.cancel = context.WithCancel(context.WithoutCancel(ctx))
	s.running = true
	s.cron.Start()

	s.logger.InfoContext(ctx, "scheduler started", slog.Time("next_run", s.cron.Entry(s.entry).Next))
	return nil
}

// Stop halts the schedule and waits for a run in flight to finish or for
// ctx to expire, whichever comes first. Stop on a stopped scheduler is a
// no-op.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	cancel := s.cancel
	s.mu.Unlock()

	done := s.cron.Stop()
	select {
	case <-done.Done():
		cancel()
		s.logger.InfoContext(ctx, "scheduler stopped")
		return nil
	case <-ctx.Done():
		cancel()
		return fmt.Errorf("stop scheduler: %w", ctx.Err())
	}
}

// Next returns the time of the next scheduled run. It is zero before Start.
func (s *Scheduler) Next() time.Time {
	return s.cron.Entry(s.entry).Next
}

// RunOnce closes due petitions immediately and returns how many were closed.
func (s *Scheduler) RunOnce(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	closed, err := s.closer.ClosePetitions(ctx, s.now().UTC())
	if err != nil {
		s.logger.ErrorContext(ctx, "closing job failed",
			slog.String("operation", "ClosePetitions"),
			slog.Int("closed", closed),
			slog.Duration("elapsed", time.Since(start)),
			slog.Any("error", err),
		)
		return closed, err
	}

	s.logger.DebugContext(ctx, "closing job finished",
		slog.Int("closed", closed),
		slog.Duration("elapsed", time.Since(start)),
	)
	return closed, nil
}

func (s *Scheduler) tick() {
	s.mu.Lock()
	ctx := s.baseCtx
	s.mu.Unlock()

	_, _ = s.RunOnce(ctx)
}

// cronLog adapts slog to cron.Logger.
type cronLog struct {
	logger *slog.Logger
}

func (l cronLog) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLog) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append(keysAndValues, slog.Any("error", err))...)
}
