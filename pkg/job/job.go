package job

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"
)

type Func func(ctx context.Context) error

type job struct {
	name     string
	interval time.Duration
	fn       Func
}

// Scheduler runs registered functions on fixed intervals until its context is done.
// Every job runs once right after Start.
type Scheduler struct {
	jobs []job
	wg   *sync.WaitGroup
}

func NewScheduler() *Scheduler {
	return &Scheduler{
		wg: &sync.WaitGroup{},
	}
}

func (s *Scheduler) Register(name string, interval time.Duration, fn Func) *Scheduler {
	return s.TryRegister(true, name, interval, fn)
}

// TryRegister registers the job only when isEnabled is true.
func (s *Scheduler) TryRegister(isEnabled bool, name string, interval time.Duration, fn Func) *Scheduler {
	if !isEnabled || interval <= 0 {
		return s
	}

	s.jobs = append(s.jobs, job{
		name:     name,
		interval: interval,
		fn:       fn,
	})

	return s
}

func (s *Scheduler) Start(ctx context.Context) {
	for _, j := range s.jobs {
		s.wg.Add(1)

		go s.run(ctx, j)
	}
}

func (s *Scheduler) run(ctx context.Context, j job) {
	defer s.wg.Done()

	l := slog.Default().With("job", j.name)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		l.DebugContext(ctx, "job started")

		err := s.withRecover(ctx, l, j)
		if err != nil {
			l.ErrorContext(ctx, "job failed", "error", err)
		} else {
			l.DebugContext(ctx, "job done")
		}

		select {
		case <-ctx.Done():
			l.DebugContext(ctx, "job stopped by ctx")
			return
		case <-ticker.C:
		}
	}
}

func (s *Scheduler) withRecover(ctx context.Context, l *slog.Logger, j job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			l.ErrorContext(ctx, "job panic", "error", r, "stack", string(debug.Stack()))
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	return j.fn(ctx)
}

// Wait blocks until every started job has returned.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}
