package services

import (
	"context"

	"github.com/punyakios/go-kios-client/internal/models"
	"github.com/punyakios/go-kios-client/internal/monitoring"
)

type AppConfigService interface {
	CheckVersion(ctx context.Context) (models.VersionCheck, bool, error)
}

type appConfig service

var _ AppConfigService = (*appConfig)(nil)

// CheckVersion asks the API for the supported versions of the configured platform
// and reports whether the running version is below the minimum.
func (s *appConfig) CheckVersion(ctx context.Context) (result models.VersionCheck, needsUpdate bool, err error) {
	monitor := monitoring.New(ctx)
	defer func() {
		monitor.Finish(monitoring.WithFinishCheckError(err))
	}()

	result, err = s.srv.appConfigRepo.CheckVersion(ctx, s.srv.conf.App.Platform)
	if err != nil {
		return result, false, err
	}
	return result, result.NeedsUpdate(s.srv.conf.App.Version), nil
}
