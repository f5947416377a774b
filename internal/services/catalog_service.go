package services

import (
	"context"

	"github.com/punyakios/go-kios-client/internal/catalog"
	"github.com/punyakios/go-kios-client/internal/models"
	"github.com/punyakios/go-kios-client/internal/monitoring"
)

type CatalogService interface {
	Categories() []catalog.Category
	Providers(ctx context.Context, category string, forceRefresh bool) ([]string, error)
	ProductTypes(ctx context.Context, category, provider string, forceRefresh bool) ([]string, error)
	Products(ctx context.Context, category, provider, productType string, forceRefresh bool) ([]models.Product, error)
	ClearCache(ctx context.Context) error
}

type catalogService service

var _ CatalogService = (*catalogService)(nil)

func (s *catalogService) Categories() []catalog.Category {
	return append([]catalog.Category(nil), catalog.Categories...)
}

// Providers returns the provider list of category. On failure the list is empty, never nil.
func (s *catalogService) Providers(ctx context.Context, category string, forceRefresh bool) (providers []string, err error) {
	monitor := monitoring.New(ctx)
	defer func() {
		monitor.Finish(monitoring.WithFinishCheckError(err))
	}()

	c, err := lookupCategory(category)
	if err != nil {
		return []string{}, err
	}
	return s.srv.loader.FetchCatalog(ctx, c.Request(), forceRefresh)
}

func (s *catalogService) ProductTypes(ctx context.Context, category, provider string, forceRefresh bool) (types []string, err error) {
	monitor := monitoring.New(ctx)
	defer func() {
		monitor.Finish(monitoring.WithFinishCheckError(err))
	}()

	c, err := lookupCategory(category)
	if err != nil {
		return []string{}, err
	}
	return s.srv.loader.FetchProductTypes(ctx, c.Request(), provider, forceRefresh)
}

// Products returns the products of provider ordered by price. An empty productType means all types.
func (s *catalogService) Products(ctx context.Context, category, provider, productType string, forceRefresh bool) (products []models.Product, err error) {
	monitor := monitoring.New(ctx)
	defer func() {
		monitor.Finish(monitoring.WithFinishCheckError(err))
	}()

	c, err := lookupCategory(category)
	if err != nil {
		return []models.Product{}, err
	}
	return s.srv.loader.FetchProducts(ctx, c.ProductQuery(provider, productType), forceRefresh)
}

func (s *catalogService) ClearCache(ctx context.Context) (err error) {
	monitor := monitoring.New(ctx)
	defer func() {
		monitor.Finish(monitoring.WithFinishCheckError(err))
	}()

	return s.srv.loader.Purge(ctx)
}
