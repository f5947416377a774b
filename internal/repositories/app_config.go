package repositories

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/punyakios/go-kios-client/internal/common/httpclient"
	"github.com/punyakios/go-kios-client/internal/models"
	"github.com/punyakios/go-kios-client/internal/monitoring"
)

type AppConfigRepository interface {
	CheckVersion(ctx context.Context, platform string) (models.VersionCheck, error)
}

type appConfigRepository struct {
	wrapper *httpclient.RequestWrapper
}

func NewAppConfigRepository(wrapper *httpclient.RequestWrapper) AppConfigRepository {
	return &appConfigRepository{wrapper: wrapper}
}

func (r *appConfigRepository) CheckVersion(ctx context.Context, platform string) (result models.VersionCheck, err error) {
	monitor := monitoring.New(ctx)
	defer func() {
		monitor.Finish(monitoring.WithFinishCheckError(err))
	}()

	resp, err := r.wrapper.DoRequest(ctx, http.MethodGet, endpointVersionCheck, func(req *resty.Request) *resty.Request {
		return req.SetQueryParam("platform", platform)
	})
	if err != nil {
		return result, err
	}

	result, _, err = decodeData[models.VersionCheck](resp.Body())
	if err != nil {
		return result, fmt.Errorf("failed to decode version check: %w", err)
	}
	return result, nil
}
