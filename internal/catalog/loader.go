package catalog

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/newrelic/go-agent/v3/newrelic"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/singleflight"

	"github.com/punyakios/go-kios-client/internal/common"
	"github.com/punyakios/go-kios-client/internal/common/localstorage"
	xlog "github.com/punyakios/go-kios-client/internal/common/log"
	"github.com/punyakios/go-kios-client/internal/common/metrics"
	"github.com/punyakios/go-kios-client/internal/common/retry"
	"github.com/punyakios/go-kios-client/internal/config"
	"github.com/punyakios/go-kios-client/internal/models"
	"github.com/punyakios/go-kios-client/internal/monitoring"
	"github.com/punyakios/go-kios-client/internal/persistentcache"
)

var logMessage = "[CATALOG-LOADER]"

// CatalogRequest names one provider catalog: Key is the cache key, Field the list under data.
type CatalogRequest struct {
	Key      string
	Endpoint string
	Field    string
}

// ProductQuery selects the product list of one provider, optionally narrowed to a type.
type ProductQuery struct {
	Prefix   string
	Provider string
	Type     string
	Endpoint string
	Field    string
}

func (q ProductQuery) cacheKey() string {
	productType := q.Type
	if productType == "" {
		productType = "all"
	}
	return fmt.Sprintf("%s_%s_%s_products", q.Prefix, q.Provider, productType)
}

type options struct {
	now            func() time.Time
	retryer        retry.Retryer
	metrics        *metrics.CachePrometheusMetrics
	requestTimeout time.Duration
	providerPolicy persistentcache.StalenessPolicy
	productPolicy  persistentcache.StalenessPolicy
}

type Option func(*options)

func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithRetryer sets the retry used by background refreshes.
func WithRetryer(r retry.Retryer) Option {
	return func(o *options) { o.retryer = r }
}

func WithMetrics(m *metrics.CachePrometheusMetrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithRequestTimeout bounds every shared network fetch.
func WithRequestTimeout(d time.Duration) Option {
	return func(o *options) { o.requestTimeout = d }
}

func WithProviderPolicy(p persistentcache.StalenessPolicy) Option {
	return func(o *options) { o.providerPolicy = p }
}

func WithProductPolicy(p persistentcache.StalenessPolicy) Option {
	return func(o *options) { o.productPolicy = p }
}

// Loader serves provider catalogs from memory, then the persistent cache, then the network.
// Concurrent requests for one key share a single fetch. A stale but usable hit is returned at
// once and refreshed in the background; Close stops those refreshes.
type Loader struct {
	source  Source
	now     func() time.Time
	retryer retry.Retryer
	metrics *metrics.CachePrometheusMetrics
	timeout time.Duration

	providers *persistentcache.Cache[[]string]
	types     *persistentcache.Cache[[]string]
	products  *persistentcache.Cache[[]models.Product]

	memory     *memoryTier
	group      singleflight.Group
	refreshing sync.Map

	baseCtx context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	mu      sync.Mutex
	closed  bool
}

func New(source Source, storage localstorage.LocalStorage[models.CacheEnvelope], opts ...Option) *Loader {
	o := &options{
		now:            time.Now,
		requestTimeout: config.DefaultRequestTimeout,
		providerPolicy: persistentcache.NewStalenessPolicy(config.DefaultProviderCacheDuration, 0),
		productPolicy:  persistentcache.NewStalenessPolicy(config.DefaultProductCacheDuration, 0),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.retryer == nil {
		o.retryer = retry.NewExponentialBackOff(config.ExponentialBackOffConfig{})
	}
	if o.requestTimeout <= 0 {
		o.requestTimeout = config.DefaultRequestTimeout
	}

	clock := persistentcache.WithClock(o.now)
	baseCtx, cancel := context.WithCancel(context.Background())

	return &Loader{
		source:    source,
		now:       o.now,
		retryer:   o.retryer,
		metrics:   o.metrics,
		timeout:   o.requestTimeout,
		providers: persistentcache.New[[]string](storage, o.providerPolicy, clock),
		types:     persistentcache.New[[]string](storage, o.providerPolicy, clock),
		products:  persistentcache.New[[]models.Product](storage, o.productPolicy, clock),
		memory:    newMemoryTier(),
		baseCtx:   baseCtx,
		cancel:    cancel,
	}
}

// Close cancels pending background refreshes and waits for them to return.
func (l *Loader) Close() error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return nil
	}
	l.closed = true
	l.mu.Unlock()

	l.cancel()
	l.wg.Wait()
	return nil
}

// FetchCatalog returns the distinct providers of a catalog. The error is a *FetchError and is
// only returned when the network failed and nothing was cached, together with an empty list.
func (l *Loader) FetchCatalog(ctx context.Context, req CatalogRequest, forceRefresh bool) (providers []string, err error) {
	monitor := monitoring.New(ctx)
	defer func() {
		monitor.Finish(monitoring.WithFinishCheckError(err))
	}()

	return load(ctx, l, entrySpec[string]{
		key:        req.Key,
		storageKey: req.Key + "_cache",
		cache:      l.providers,
		fetch: func(ctx context.Context) ([]string, error) {
			body, err := l.source.Fetch(ctx, req.Endpoint, nil)
			if err != nil {
				return nil, err
			}

			items, err := extractItems(body, req.Field, true)
			if err != nil {
				return nil, err
			}

			return models.DistinctProviders(items), nil
		},
	}, forceRefresh)
}

// FetchProductTypes returns the distinct product types of one provider in a catalog.
// An empty list without error means the provider has no typed products.
func (l *Loader) FetchProductTypes(ctx context.Context, req CatalogRequest, provider string, forceRefresh bool) (types []string, err error) {
	monitor := monitoring.New(ctx)
	defer func() {
		monitor.Finish(monitoring.WithFinishCheckError(err))
	}()

	if strings.TrimSpace(provider) == "" {
		return []string{}, fmt.Errorf("%w: provider is required", common.ErrValidation)
	}

	key := fmt.Sprintf("%s_%s_types", req.Key, provider)
	return load(ctx, l, entrySpec[string]{
		key:        key,
		storageKey: key + "_cache",
		cache:      l.types,
		cacheEmpty: true,
		fetch: func(ctx context.Context) ([]string, error) {
			body, err := l.source.Fetch(ctx, req.Endpoint, nil)
			if err != nil {
				return nil, err
			}

			items, err := extractItems(body, req.Field, true)
			if err != nil {
				return nil, err
			}

			return models.DistinctTypes(items, provider), nil
		},
	}, forceRefresh)
}

// FetchProducts returns the products of one provider ordered by price.
func (l *Loader) FetchProducts(ctx context.Context, q ProductQuery, forceRefresh bool) (products []models.Product, err error) {
	monitor := monitoring.New(ctx)
	defer func() {
		monitor.Finish(monitoring.WithFinishCheckError(err))
	}()

	if strings.TrimSpace(q.Provider) == "" {
		return []models.Product{}, fmt.Errorf("%w: provider is required", common.ErrValidation)
	}

	key := q.cacheKey()
	return load(ctx, l, entrySpec[models.Product]{
		key:        key,
		storageKey: key,
		cache:      l.products,
		fetch: func(ctx context.Context) ([]models.Product, error) {
			payload := map[string]any{
				"provider": strings.ToLower(q.Provider),
				"type":     nil,
			}
			if q.Type != "" {
				payload["type"] = q.Type
			}

			body, err := l.source.Fetch(ctx, q.Endpoint, payload)
			if err != nil {
				return nil, err
			}

			items, err := extractItems(body, q.Field, false)
			if err != nil {
				return nil, err
			}

			return selectProducts(items, q.Provider, q.Type), nil
		},
	}, forceRefresh)
}

// Purge drops every cached catalog from memory and storage.
func (l *Loader) Purge(ctx context.Context) error {
	l.memory.reset()

	var result *multierror.Error
	for _, c := range []purger{l.providers, l.types, l.products} {
		if err := c.Purge(ctx); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

type purger interface {
	Purge(ctx context.Context) error
}

// Invalidate drops one provider catalog so the next read goes to the network.
func (l *Loader) Invalidate(ctx context.Context, req CatalogRequest) {
	l.memory.delete(req.Key)
	l.providers.Clear(ctx, req.Key+"_cache")
}

func selectProducts(items []models.ProductItem, provider, productType string) []models.Product {
	products := make([]models.Product, 0, len(items))
	for _, item := range items {
		if !item.MatchProvider(provider) {
			continue
		}
		if productType != "" && !strings.EqualFold(item.Type, productType) {
			continue
		}
		products = append(products, item.ToProduct())
	}

	slices.SortStableFunc(products, func(a, b models.Product) int {
		return a.Price.Cmp(b.Price.Decimal)
	})
	return products
}

type entrySpec[E any] struct {
	key        string
	storageKey string
	cache      *persistentcache.Cache[[]E]
	fetch      func(ctx context.Context) ([]E, error)
	// cacheEmpty stores an empty result instead of refetching it on every call.
	cacheEmpty bool
}

func load[E any](ctx context.Context, l *Loader, s entrySpec[E], forceRefresh bool) ([]E, error) {
	policy := s.cache.Policy()

	if !forceRefresh {
		if value, age, ok := l.memory.get(s.key, l.now()); ok && age < policy.CacheDuration {
			if items, ok := value.([]E); ok {
				recordHit(l, metrics.TierMemory, s, policy.StateOf(age))
				return slices.Clone(items), nil
			}
		}

		// An expired entry stays in storage as the offline fallback until a fetch replaces it.
		if lookup, ok := s.cache.Peek(ctx, s.storageKey); ok && lookup.State.Usable() {
			l.memory.put(s.key, lookup.Value, l.now().Add(-lookup.Age))
			recordHit(l, metrics.TierStorage, s, lookup.State)
			return slices.Clone(lookup.Value), nil
		} else if !ok {
			// drops a corrupt entry
			s.cache.Get(ctx, s.storageKey)
		}
		l.metrics.RecordLookup(metrics.TierStorage, metrics.ResultMiss)
	}

	items, err := fetchShared(ctx, l, s)
	if err == nil {
		l.metrics.RecordLookup(metrics.TierNetwork, metrics.ResultHit)
		return slices.Clone(items), nil
	}

	if value, age, ok := l.memory.get(s.key, l.now()); ok {
		if items, ok := value.([]E); ok {
			l.logFallback(ctx, metrics.TierMemory, s.key, age, err)
			return slices.Clone(items), nil
		}
	}
	if lookup, ok := s.cache.Peek(ctx, s.storageKey); ok {
		l.memory.put(s.key, lookup.Value, l.now().Add(-lookup.Age))
		l.logFallback(ctx, metrics.TierStorage, s.key, lookup.Age, err)
		return slices.Clone(lookup.Value), nil
	}

	l.metrics.RecordLookup(metrics.TierNetwork, metrics.ResultError)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return []E{}, ctxErr
	}
	return []E{}, classify(err)
}

func recordHit[E any](l *Loader, tier string, s entrySpec[E], state persistentcache.State) {
	result := metrics.ResultHit
	if state == persistentcache.StaleButUsable {
		result = metrics.ResultStale
		refreshInBackground(l, s)
	}
	l.metrics.RecordLookup(tier, result)
}

// fetchShared joins or starts the single network fetch for s.key. The fetch itself is bound to the
// loader lifetime and the request timeout, so a caller leaving early does not abort it for others.
func fetchShared[E any](ctx context.Context, l *Loader, s entrySpec[E]) ([]E, error) {
	ch := l.group.DoChan(s.key, func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(l.baseCtx, l.timeout)
		defer cancel()
		fetchCtx = xlog.WithCorrelationID(fetchCtx, xlog.CorrelationID(ctx))
		if txn := newrelic.FromContext(ctx); txn != nil {
			fetchCtx = newrelic.NewContext(fetchCtx, txn)
		}

		items, err := s.fetch(fetchCtx)
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			if !s.cacheEmpty {
				return items, nil
			}
			items = []E{}
		}

		l.memory.put(s.key, items, l.now())
		s.cache.Set(fetchCtx, s.storageKey, items)
		return items, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		items, ok := res.Val.([]E)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected value for key %s", common.ErrInternalServerError, s.key)
		}
		return items, nil
	}
}

func refreshInBackground[E any](l *Loader, s entrySpec[E]) {
	if _, busy := l.refreshing.LoadOrStore(s.key, struct{}{}); busy {
		return
	}

	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		l.refreshing.Delete(s.key)
		return
	}
	l.wg.Add(1)
	l.mu.Unlock()

	go func() {
		defer l.wg.Done()
		defer l.refreshing.Delete(s.key)

		ctx := l.baseCtx
		err := l.retryer.Retry(ctx, func() error {
			_, err := fetchShared(ctx, l, s)
			if err != nil && isClientError(err) {
				return l.retryer.StopRetryWithErr(err)
			}
			return err
		}, func(err error) error {
			xlog.Warn(ctx, logMessage,
				xlog.String("key", s.key),
				xlog.String("message", "background refresh failed"),
				xlog.Err(err))
			return err
		})
		l.metrics.RecordRefresh(err)
	}()
}

func (l *Loader) logFallback(ctx context.Context, tier, key string, age time.Duration, err error) {
	l.metrics.RecordLookup(tier, metrics.ResultFallback)
	xlog.Warn(ctx, logMessage,
		xlog.String("key", key),
		xlog.String("tier", tier),
		xlog.Duration("age", age),
		xlog.String("message", "network failed, serving cached value"),
		xlog.Err(err))
}
