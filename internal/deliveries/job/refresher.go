package job

import (
	"context"
	"sync"
	"time"

	"github.com/punyakios/go-kios-client/internal/common/graceful"
	"github.com/punyakios/go-kios-client/internal/common/idgenerator"
	xlog "github.com/punyakios/go-kios-client/internal/common/log"
	"github.com/punyakios/go-kios-client/internal/services"
)

var logMessage = "[CATALOG-REFRESHER]"

// Refresher preloads every catalog once at start and then on each tick.
type Refresher struct {
	preloadSvc services.PreloadService
	interval   time.Duration
	ids        idgenerator.Generator

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

var _ graceful.ProcessStartStopper = (*Refresher)(nil)

func NewRefresher(preloadSvc services.PreloadService, interval time.Duration) *Refresher {
	return &Refresher{
		preloadSvc: preloadSvc,
		interval:   interval,
		ids:        idgenerator.New(),
	}
}

func (r *Refresher) Start() graceful.ProcessStarter {
	return func() error {
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})

		r.mu.Lock()
		r.cancel, r.done = cancel, done
		r.mu.Unlock()

		defer close(done)
		r.run(ctx)
		return nil
	}
}

func (r *Refresher) Stop() graceful.ProcessStopper {
	return func(ctx context.Context) error {
		r.mu.Lock()
		cancel, done := r.cancel, r.done
		r.mu.Unlock()

		if cancel == nil {
			return nil
		}
		cancel()

		select {
		case <-done:
			xlog.Info(ctx, "[SHUTDOWN] catalog refresher stopped successfully")
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (r *Refresher) run(ctx context.Context) {
	r.refresh(ctx, false)
	if r.interval <= 0 {
		<-ctx.Done()
		return
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.refresh(ctx, true)
		}
	}
}

func (r *Refresher) refresh(ctx context.Context, force bool) {
	ctx = xlog.WithCorrelationID(ctx, r.ids.Generate("KIOS", "JOB"))
	start := time.Now()

	result, err := r.preloadSvc.Preload(ctx, force)
	fields := []xlog.Field{
		xlog.Strings("categories", result.Order),
		xlog.Int("providers", len(result.AllProviders())),
		xlog.Duration("duration", time.Since(start)),
		xlog.Bool("force", force),
	}
	if err != nil {
		xlog.Warn(ctx, logMessage, append(fields, xlog.Err(err))...)
		return
	}
	xlog.Info(ctx, logMessage, fields...)
}
