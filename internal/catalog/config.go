package catalog

import (
	"github.com/punyakios/go-kios-client/internal/common/localstorage"
	"github.com/punyakios/go-kios-client/internal/common/retry"
	"github.com/punyakios/go-kios-client/internal/config"
	"github.com/punyakios/go-kios-client/internal/models"
	"github.com/punyakios/go-kios-client/internal/persistentcache"
)

// NewFromConfig builds a loader with the configured cache durations, timeout and backoff.
// opts are applied last.
func NewFromConfig(cfg config.Config, source Source, storage localstorage.LocalStorage[models.CacheEnvelope], opts ...Option) *Loader {
	providerDuration := cfg.Cache.ProviderDuration
	if providerDuration <= 0 {
		providerDuration = config.DefaultProviderCacheDuration
	}
	productDuration := cfg.Cache.ProductDuration
	if productDuration <= 0 {
		productDuration = config.DefaultProductCacheDuration
	}

	base := []Option{
		WithProviderPolicy(persistentcache.NewStalenessPolicy(providerDuration, cfg.Cache.BackgroundRefreshThreshold)),
		WithProductPolicy(persistentcache.NewStalenessPolicy(productDuration, cfg.Cache.BackgroundRefreshThreshold)),
		WithRequestTimeout(cfg.API.Timeout),
		WithRetryer(retry.NewExponentialBackOff(cfg.ExponentialBackoff)),
	}

	return New(source, storage, append(base, opts...)...)
}
