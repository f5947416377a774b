package graceful

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/exp/slices"

	xlog "github.com/punyakios/go-kios-client/internal/common/log"
)

type ProcessStarter func() error

type ProcessStopper func(ctx context.Context) error

type ProcessStartStopper interface {
	Start() ProcessStarter
	Stop() ProcessStopper
}

func StartProcessAtBackground(ps ...ProcessStarter) {
	for _, p := range ps {
		if p != nil {
			go func(_p func() error) {
				_ = _p()
			}(p)
		}
	}
}

// StopProcessAtBackground blocks until SIGINT, SIGTERM or SIGUSR1 arrives or ctx is done,
// then runs the stoppers.
func StopProcessAtBackground(ctx context.Context, duration time.Duration, ps ...ProcessStopper) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGUSR1)
	defer signal.Stop(sig)

	select {
	case s := <-sig:
		xlog.Infof(ctx, "[SHUTDOWN] received signal %s", s)
	case <-ctx.Done():
	}
	StopProcess(duration, ps...)
}

// StopProcess runs the stoppers in reverse order of registration, each with its own timeout.
func StopProcess(duration time.Duration, ps ...ProcessStopper) {
	ps = slices.Clone(ps)
	slices.Reverse(ps)

	for _, p := range ps {
		func() {
			if p == nil {
				return
			}
			ctx, stop := context.WithTimeout(context.Background(), duration)
			defer stop()
			if err := p(ctx); err != nil {
				xlog.Warn(ctx, "[SHUTDOWN]", xlog.Err(err))
			}
		}()
	}
}
