package repositories

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/punyakios/go-kios-client/internal/common/httpclient"
	"github.com/punyakios/go-kios-client/internal/models"
	"github.com/punyakios/go-kios-client/internal/monitoring"
)

type DepositRepository interface {
	CreateDeposit(ctx context.Context, payload models.DepositPayload) (json.RawMessage, error)
}

type depositRepository struct {
	wrapper *httpclient.RequestWrapper
}

func NewDepositRepository(wrapper *httpclient.RequestWrapper) DepositRepository {
	return &depositRepository{wrapper: wrapper}
}

func (r *depositRepository) CreateDeposit(ctx context.Context, payload models.DepositPayload) (body json.RawMessage, err error) {
	monitor := monitoring.New(ctx)
	defer func() {
		monitor.Finish(monitoring.WithFinishCheckError(err))
	}()

	resp, err := r.wrapper.DoRequest(ctx, http.MethodPost, endpointDeposit, func(req *resty.Request) *resty.Request {
		return req.SetBody(payload)
	})
	if err != nil {
		return nil, err
	}

	return json.RawMessage(resp.Body()), nil
}
