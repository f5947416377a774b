package monitoring

import (
	"context"
	"errors"
	"time"

	xlog "github.com/punyakios/go-kios-client/internal/common/log"
)

var messagePrefix = map[string]string{
	LayerRepository: "[REPOSITORY]",
	LayerService:    "[SERVICE]",
	LayerCatalog:    "[CATALOG-LOADER]",
	LayerGate:       "[BIOMETRIC-GATE]",
	LayerCommand:    "[KIOSCTL]",
	LayerUnknown:    "[-]",
}

const (
	statusSuccess   = "success"
	statusError     = "error"
	statusRejected  = "rejected"
	statusCancelled = "cancelled"
)

type finishOptions struct {
	err        error
	expected   []error
	xlogFields []xlog.Field
}

type FinishOption func(*finishOptions)

func WithFinishCheckError(err error) FinishOption {
	return func(o *finishOptions) {
		o.err = err
	}
}

// WithFinishExpectedErrors marks errors that are a normal outcome of the operation,
// such as a declined biometric prompt. They are logged at info and not flagged on the segment.
func WithFinishExpectedErrors(errs ...error) FinishOption {
	return func(o *finishOptions) {
		o.expected = append(o.expected, errs...)
	}
}

func WithFinishXlogFields(fields ...xlog.Field) FinishOption {
	return func(o *finishOptions) {
		o.xlogFields = append(o.xlogFields, fields...)
	}
}

func (m *Monitor) Finish(opts ...FinishOption) {
	o := &finishOptions{}
	for _, opt := range opts {
		opt(o)
	}

	status := o.status()
	fields := append(o.xlogFields,
		xlog.String("segment", m.segmentName),
		xlog.Duration("processDuration", time.Since(m.start)),
		xlog.String("status", status))
	if o.err != nil {
		fields = append(fields, xlog.Err(o.err))
	}

	prefix := messagePrefix[m.layer]
	switch {
	case status == statusError:
		xlog.Warn(m.ctx, prefix, fields...)
	case status != statusSuccess:
		xlog.Info(m.ctx, prefix, fields...)
	case m.layer == LayerService || m.layer == LayerGate:
		xlog.Info(m.ctx, prefix, fields...)
	default:
		xlog.Debug(m.ctx, prefix, fields...)
	}

	if m.segment != nil {
		if status == statusError {
			m.segment.AddAttribute("error", o.err.Error())
		}
		m.segment.AddAttribute("status", status)
		m.segment.End()
	}
}

func (o *finishOptions) status() string {
	if o.err == nil {
		return statusSuccess
	}
	if errors.Is(o.err, context.Canceled) {
		return statusCancelled
	}
	for _, e := range o.expected {
		if errors.Is(o.err, e) {
			return statusRejected
		}
	}
	return statusError
}
