package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/punyakios/go-kios-client/internal/catalog"
	xlog "github.com/punyakios/go-kios-client/internal/common/log"
	"github.com/punyakios/go-kios-client/internal/models"
	"github.com/punyakios/go-kios-client/internal/monitoring"
)

var preloadLogMessage = "[PRELOAD]"

type PreloadService interface {
	Preload(ctx context.Context, forceRefresh bool) (models.PreloadResult, error)
	AllProviders(ctx context.Context) ([]string, error)
}

type preload service

var _ PreloadService = (*preload)(nil)

// Preload loads every category in parallel. Categories that fail are left out of the
// result and their errors are returned together; the rest of the result is still usable.
func (s *preload) Preload(ctx context.Context, forceRefresh bool) (result models.PreloadResult, err error) {
	monitor := monitoring.New(ctx)
	defer func() {
		monitor.Finish(monitoring.WithFinishCheckError(err))
	}()

	var (
		mu   sync.Mutex
		errs *multierror.Error
		g    errgroup.Group
	)
	result = models.NewPreloadResult()

	for _, c := range catalog.Categories {
		c := c
		g.Go(func() error {
			providers, fetchErr := s.srv.loader.FetchCatalog(ctx, c.Request(), forceRefresh)

			mu.Lock()
			defer mu.Unlock()
			if fetchErr != nil {
				xlog.Warn(ctx, preloadLogMessage,
					xlog.String("category", c.Name),
					xlog.Err(fetchErr))
				errs = multierror.Append(errs, fmt.Errorf("%s: %w", c.Name, fetchErr))
				return nil
			}
			result.Providers[c.Name] = providers
			return nil
		})
	}
	_ = g.Wait()

	for _, c := range catalog.Categories {
		if _, ok := result.Providers[c.Name]; ok {
			result.Order = append(result.Order, c.Name)
		}
	}

	return result, errs.ErrorOrNil()
}

// AllProviders returns the distinct providers over every category that loaded.
func (s *preload) AllProviders(ctx context.Context) ([]string, error) {
	result, err := s.Preload(ctx, false)
	return result.AllProviders(), err
}
