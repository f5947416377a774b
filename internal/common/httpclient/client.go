package httpclient

import (
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/punyakios/go-kios-client/internal/config"
	"github.com/punyakios/go-kios-client/internal/models"
	"github.com/punyakios/go-kios-client/internal/monitoring"
)

type clientOptions struct {
	retry bool
}

type ClientOption func(*clientOptions)

// WithRetry retries requests answered with one of models.RetryableHTTPCodes.
// Only read-only clients use it, money-moving calls are sent exactly once.
func WithRetry() ClientOption {
	return func(o *clientOptions) { o.retry = true }
}

func NewRestyClient(cfg config.HTTPConfiguration, opts ...ClientOption) *resty.Client {
	o := &clientOptions{}
	for _, opt := range opts {
		opt(o)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultRequestTimeout
	}

	restyClient := resty.New()
	if o.retry && cfg.RetryCount > 0 {
		restyClient = restyClient.AddRetryCondition(func(r *resty.Response, err error) bool {
			if r == nil {
				return false
			}

			_, shouldRetry := models.RetryableHTTPCodes[r.StatusCode()]
			return shouldRetry
		})

		restyClient = restyClient.
			SetRetryCount(cfg.RetryCount).
			SetRetryWaitTime(time.Duration(cfg.RetryWaitTime) * time.Millisecond)
	}

	return restyClient.
		SetTransport(monitoring.NewRoundTripper(restyClient.GetClient().Transport)).
		SetBaseURL(cfg.BaseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
}
