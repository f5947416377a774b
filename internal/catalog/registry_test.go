package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/punyakios/go-kios-client/internal/common/localstorage"
	"github.com/punyakios/go-kios-client/internal/config"
	"github.com/punyakios/go-kios-client/internal/models"
)

func TestLookupCategory(t *testing.T) {
	got, ok := LookupCategory("MasaAktif")
	assert.True(t, ok)
	assert.Equal(t, "masa_aktif", got.Field)
	assert.Equal(t, CatalogRequest{Key: "masaaktif_providers", Endpoint: "/api/product/masaaktif", Field: "masa_aktif"}, got.Request())

	q := got.ProductQuery("Telkomsel", "")
	assert.Equal(t, "masaaktif_Telkomsel_all_products", q.cacheKey())

	_, ok = LookupCategory("bpjs")
	assert.False(t, ok)
}

func TestCategories_UniqueKeys(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range Categories {
		assert.False(t, seen[c.Key], c.Key)
		seen[c.Key] = true
	}
	assert.Len(t, Categories, 8)
}

func TestNewFromConfig(t *testing.T) {
	cfg := config.Config{
		Cache: config.CacheConfig{ProductDuration: 2 * time.Hour, BackgroundRefreshThreshold: 90 * time.Minute},
		API:   config.HTTPConfiguration{Timeout: 3 * time.Second},
	}

	l := NewFromConfig(cfg, nil, localstorage.NewMemoryStorage[models.CacheEnvelope]())
	defer l.Close()

	assert.Equal(t, config.DefaultProviderCacheDuration, l.providers.Policy().CacheDuration)
	assert.Equal(t, 90*time.Minute, l.providers.Policy().BackgroundRefreshThreshold)
	assert.Equal(t, 2*time.Hour, l.products.Policy().CacheDuration)
	assert.Equal(t, time.Hour, l.products.Policy().BackgroundRefreshThreshold)
	assert.Equal(t, 3*time.Second, l.timeout)
}
