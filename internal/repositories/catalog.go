package repositories

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/punyakios/go-kios-client/internal/common/httpclient"
	"github.com/punyakios/go-kios-client/internal/monitoring"
)

// CatalogRepository posts to a product endpoint and hands back the raw body.
type CatalogRepository interface {
	Fetch(ctx context.Context, endpoint string, payload any) ([]byte, error)
}

type catalogRepository struct {
	wrapper *httpclient.RequestWrapper
}

func NewCatalogRepository(wrapper *httpclient.RequestWrapper) CatalogRepository {
	return &catalogRepository{wrapper: wrapper}
}

func (r *catalogRepository) Fetch(ctx context.Context, endpoint string, payload any) (body []byte, err error) {
	monitor := monitoring.New(ctx)
	defer func() {
		monitor.Finish(monitoring.WithFinishCheckError(err))
	}()

	resp, err := r.wrapper.DoRequest(ctx, http.MethodPost, endpoint, func(req *resty.Request) *resty.Request {
		if payload != nil {
			req.SetBody(payload)
		}
		return req
	})
	if err != nil {
		return nil, err
	}

	return resp.Body(), nil
}
