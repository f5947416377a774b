package services

import (
	"context"
	"encoding/json"

	"github.com/punyakios/go-kios-client/internal/catalog"
	"github.com/punyakios/go-kios-client/internal/config"
	"github.com/punyakios/go-kios-client/internal/models"
	"github.com/punyakios/go-kios-client/internal/repositories"
)

// CatalogLoader is the part of *catalog.Loader the services use.
type CatalogLoader interface {
	FetchCatalog(ctx context.Context, req catalog.CatalogRequest, forceRefresh bool) ([]string, error)
	FetchProductTypes(ctx context.Context, req catalog.CatalogRequest, provider string, forceRefresh bool) ([]string, error)
	FetchProducts(ctx context.Context, q catalog.ProductQuery, forceRefresh bool) ([]models.Product, error)
	Purge(ctx context.Context) error
}

// TransactionGate is the part of *biometric.Gate the services use.
type TransactionGate interface {
	Topup(ctx context.Context, payload any, prompt string) (json.RawMessage, error)
	CheckBill(ctx context.Context, payload any, prompt string) (json.RawMessage, error)
	PayBill(ctx context.Context, payload any, prompt string) (json.RawMessage, error)
	Pay(ctx context.Context, endpoint string, payload any, prompt string) (json.RawMessage, error)
}

// SessionStore is the locally persisted user session.
type SessionStore interface {
	User(ctx context.Context) (models.Profile, bool, error)
	SetUser(ctx context.Context, profile models.Profile) error
	BiometricEnabled(ctx context.Context) (bool, error)
	SetBiometricEnabled(ctx context.Context, enabled bool) error
	Clear(ctx context.Context) error
}

type service struct {
	srv *Services
}

type Services struct {
	conf config.Config

	loader        CatalogLoader
	gate          TransactionGate
	session       SessionStore
	profileRepo   repositories.ProfileRepository
	depositRepo   repositories.DepositRepository
	appConfigRepo repositories.AppConfigRepository

	common service

	Catalog   *catalogService
	Preload   *preload
	Order     *order
	Profile   *profile
	Deposit   *deposit
	AppConfig *appConfig
}

func New(
	conf config.Config,
	loader CatalogLoader,
	gate TransactionGate,
	session SessionStore,
	profileRepo repositories.ProfileRepository,
	depositRepo repositories.DepositRepository,
	appConfigRepo repositories.AppConfigRepository,
) *Services {
	srv := &Services{
		conf:          conf,
		loader:        loader,
		gate:          gate,
		session:       session,
		profileRepo:   profileRepo,
		depositRepo:   depositRepo,
		appConfigRepo: appConfigRepo,
	}
	srv.common.srv = srv
	srv.Catalog = (*catalogService)(&srv.common)
	srv.Preload = (*preload)(&srv.common)
	srv.Order = (*order)(&srv.common)
	srv.Profile = (*profile)(&srv.common)
	srv.Deposit = (*deposit)(&srv.common)
	srv.AppConfig = (*appConfig)(&srv.common)

	return srv
}
