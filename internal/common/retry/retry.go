package retry

import (
	"context"
	"errors"

	"github.com/cenkalti/backoff/v4"

	xlog "github.com/punyakios/go-kios-client/internal/common/log"
	"github.com/punyakios/go-kios-client/internal/config"
)

const DefaultMaxRetries uint64 = 3

type Retryer interface {
	Retry(ctx context.Context, operation func() error, onGiveUp func(err error) error) error
	StopRetryWithErr(err error) error
}

type exponentialBackoff struct {
	ebCfg config.ExponentialBackOffConfig
}

/*
NewExponentialBackOff will init Retryer interface.
This retryer implement exponential backoff mechanism.

Example:

Retry(ctx, func() error { return refresh() }, func(err error) error { return logFailure(err) })
*/
func NewExponentialBackOff(ebCfg config.ExponentialBackOffConfig) Retryer {
	if ebCfg.MaxBackoffTime <= 0 {
		ebCfg.MaxBackoffTime = backoff.DefaultMaxElapsedTime
	}

	if ebCfg.BackoffMultiplier <= 0 {
		ebCfg.BackoffMultiplier = backoff.DefaultMultiplier
	}

	if ebCfg.InitialInterval <= 0 {
		ebCfg.InitialInterval = backoff.DefaultInitialInterval
	}

	if ebCfg.MaxRetries == 0 {
		ebCfg.MaxRetries = DefaultMaxRetries
	}

	return &exponentialBackoff{ebCfg: ebCfg}
}

/*
Retry will create ExponentialBackOff instance for every execution.

"operation" is retried until it succeeds, returns a permanent error, the retries run out or ctx is done.
"onGiveUp" is then called with the last error and its result is returned.
*/
func (r *exponentialBackoff) Retry(ctx context.Context, operation func() error, onGiveUp func(err error) error) error {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = r.ebCfg.InitialInterval
	eb.MaxElapsedTime = r.ebCfg.MaxBackoffTime
	eb.Multiplier = r.ebCfg.BackoffMultiplier

	err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(eb, r.ebCfg.MaxRetries), ctx))
	if err == nil {
		return nil
	}

	xlog.Debugf(ctx, "retry gave up with err: %v", err)
	if onGiveUp == nil {
		return err
	}

	return onGiveUp(err)
}

// StopRetryWithErr will stop retrying and return the error.
// This function should be called inside "operation" func.
func (r *exponentialBackoff) StopRetryWithErr(err error) error {
	return backoff.Permanent(err)
}

// IsPermanent reports whether err was marked with StopRetryWithErr.
func IsPermanent(err error) bool {
	var permanent *backoff.PermanentError
	return errors.As(err, &permanent)
}
