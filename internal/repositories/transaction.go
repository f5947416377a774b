package repositories

import (
	"context"
	"encoding/json"

	"github.com/go-resty/resty/v2"

	"github.com/punyakios/go-kios-client/internal/common/httpclient"
	"github.com/punyakios/go-kios-client/internal/monitoring"
)

// TransactionRepository sends money-moving calls. It must be built on a client without retries.
type TransactionRepository interface {
	Dispatch(ctx context.Context, method, endpoint string, payload any) (json.RawMessage, error)
}

type transactionRepository struct {
	wrapper *httpclient.RequestWrapper
}

func NewTransactionRepository(wrapper *httpclient.RequestWrapper) TransactionRepository {
	return &transactionRepository{wrapper: wrapper}
}

// Dispatch returns the response body verbatim. Errors of the API client are returned as they are.
func (r *transactionRepository) Dispatch(ctx context.Context, method, endpoint string, payload any) (body json.RawMessage, err error) {
	monitor := monitoring.New(ctx)
	defer func() {
		monitor.Finish(monitoring.WithFinishCheckError(err))
	}()

	resp, err := r.wrapper.DoRequest(ctx, method, endpoint, func(req *resty.Request) *resty.Request {
		if payload != nil {
			req.SetBody(payload)
		}
		return req
	})
	if err != nil {
		return nil, err
	}

	return json.RawMessage(resp.Body()), nil
}
