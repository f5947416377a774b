package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/punyakios/go-kios-client/internal/catalog/mock"
	"github.com/punyakios/go-kios-client/internal/common"
	"github.com/punyakios/go-kios-client/internal/common/localstorage"
	xlog "github.com/punyakios/go-kios-client/internal/common/log"
	"github.com/punyakios/go-kios-client/internal/common/retry"
	"github.com/punyakios/go-kios-client/internal/config"
	"github.com/punyakios/go-kios-client/internal/models"
	"github.com/punyakios/go-kios-client/internal/persistentcache"
)

const pulsaBody = `{"status":"success","data":{"pulsa":[
	{"id":1,"name":"Telkomsel 10K","price":10500,"provider":"Telkomsel","type":"reguler","sku":"TSEL10"},
	{"id":"2","name":"Telkomsel 5K","price":"5500","provider":"telkomsel","type":"Reguler","sku":"TSEL5"},
	{"id":3,"name":"XL 10K","price":10200,"provider":"XL","type":"reguler","sku":"XL10"},
	{"id":4,"name":"Telkomsel Promo","price":9000,"provider":"Telkomsel","type":"promo","sku":"TSELP"}
]}}`

var pulsaRequest = CatalogRequest{Key: "pulsa_providers", Endpoint: "/api/product/pulsa", Field: "pulsa"}

func TestMain(m *testing.M) {
	xlog.InitForTest()
	m.Run()
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.UnixMilli(1_700_000_000_000)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type testHelper struct {
	source  *mock.MockSource
	storage localstorage.LocalStorage[models.CacheEnvelope]
	clock   *fakeClock
}

func newTestHelper(t *testing.T) testHelper {
	t.Helper()
	ctrl := gomock.NewController(t)

	return testHelper{
		source:  mock.NewMockSource(ctrl),
		storage: localstorage.NewMemoryStorage[models.CacheEnvelope](),
		clock:   newFakeClock(),
	}
}

func (h testHelper) newLoader(t *testing.T, opts ...Option) *Loader {
	t.Helper()

	opts = append([]Option{
		WithClock(h.clock.Now),
		WithRetryer(retry.NewExponentialBackOff(config.ExponentialBackOffConfig{
			InitialInterval: time.Millisecond,
			MaxBackoffTime:  time.Second,
			MaxRetries:      2,
		})),
	}, opts...)

	l := New(h.source, h.storage, opts...)
	t.Cleanup(func() { _ = l.Close() })
	return l
}

func networkErr() error {
	return fmt.Errorf("failed send request: %w: %w", common.ErrNetworkUnreachable, errors.New("dial tcp: connection refused"))
}

func TestLoader_FetchCatalog(t *testing.T) {
	type args struct {
		req CatalogRequest
	}
	tests := []struct {
		name     string
		args     args
		doMock   func(h testHelper, args args)
		want     []string
		wantKind Kind
		wantErr  bool
	}{
		{
			name: "success",
			args: args{req: pulsaRequest},
			doMock: func(h testHelper, args args) {
				h.source.EXPECT().Fetch(gomock.Any(), args.req.Endpoint, nil).Return([]byte(pulsaBody), nil)
			},
			want: []string{"Telkomsel", "telkomsel", "XL"},
		},
		{
			name: "success with first data key",
			args: args{req: CatalogRequest{Key: "pulsa_providers", Endpoint: "/api/product/pulsa"}},
			doMock: func(h testHelper, args args) {
				h.source.EXPECT().Fetch(gomock.Any(), args.req.Endpoint, nil).Return([]byte(pulsaBody), nil)
			},
			want: []string{"Telkomsel", "telkomsel", "XL"},
		},
		{
			name: "error method not allowed",
			args: args{req: pulsaRequest},
			doMock: func(h testHelper, args args) {
				h.source.EXPECT().Fetch(gomock.Any(), args.req.Endpoint, nil).
					Return(nil, &common.ServerError{StatusCode: http.StatusMethodNotAllowed})
			},
			want:     []string{},
			wantKind: KindTechnical,
			wantErr:  true,
		},
		{
			name: "error unauthorized",
			args: args{req: pulsaRequest},
			doMock: func(h testHelper, args args) {
				h.source.EXPECT().Fetch(gomock.Any(), args.req.Endpoint, nil).
					Return(nil, &common.ServerError{StatusCode: http.StatusUnauthorized})
			},
			want:     []string{},
			wantKind: KindSessionExpired,
			wantErr:  true,
		},
		{
			name: "error not found",
			args: args{req: pulsaRequest},
			doMock: func(h testHelper, args args) {
				h.source.EXPECT().Fetch(gomock.Any(), args.req.Endpoint, nil).
					Return(nil, &common.ServerError{StatusCode: http.StatusNotFound})
			},
			want:     []string{},
			wantKind: KindServiceUnavailable,
			wantErr:  true,
		},
		{
			name: "error no response",
			args: args{req: pulsaRequest},
			doMock: func(h testHelper, args args) {
				h.source.EXPECT().Fetch(gomock.Any(), args.req.Endpoint, nil).Return(nil, networkErr())
			},
			want:     []string{},
			wantKind: KindNoConnection,
			wantErr:  true,
		},
		{
			name: "error internal server",
			args: args{req: pulsaRequest},
			doMock: func(h testHelper, args args) {
				h.source.EXPECT().Fetch(gomock.Any(), args.req.Endpoint, nil).
					Return(nil, &common.ServerError{StatusCode: http.StatusInternalServerError})
			},
			want:     []string{},
			wantKind: KindGeneric,
			wantErr:  true,
		},
		{
			name: "error missing field",
			args: args{req: pulsaRequest},
			doMock: func(h testHelper, args args) {
				h.source.EXPECT().Fetch(gomock.Any(), args.req.Endpoint, nil).
					Return([]byte(`{"data":{"data":[]}}`), nil)
			},
			want:     []string{},
			wantKind: KindMalformed,
			wantErr:  true,
		},
		{
			name: "error field is not a list",
			args: args{req: pulsaRequest},
			doMock: func(h testHelper, args args) {
				h.source.EXPECT().Fetch(gomock.Any(), args.req.Endpoint, nil).
					Return([]byte(`{"data":{"pulsa":{"provider":"XL"}}}`), nil)
			},
			want:     []string{},
			wantKind: KindMalformed,
			wantErr:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHelper(t)
			if tt.doMock != nil {
				tt.doMock(h, tt.args)
			}

			got, err := h.newLoader(t).FetchCatalog(context.Background(), tt.args.req, false)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantErr, err != nil)

			if tt.wantErr {
				var fe *FetchError
				require.ErrorAs(t, err, &fe)
				assert.Equal(t, tt.wantKind, fe.Kind)
				assert.Equal(t, messages[tt.wantKind], err.Error())
			}
		})
	}
}

func TestLoader_FetchCatalog_CacheTiers(t *testing.T) {
	h := newTestHelper(t)
	ctx := context.Background()
	h.source.EXPECT().Fetch(gomock.Any(), pulsaRequest.Endpoint, nil).Return([]byte(pulsaBody), nil).Times(1)

	first := h.newLoader(t)
	got, err := first.FetchCatalog(ctx, pulsaRequest, false)
	require.NoError(t, err)

	// memory
	again, err := first.FetchCatalog(ctx, pulsaRequest, false)
	require.NoError(t, err)
	assert.Equal(t, got, again)

	// storage, through a loader with an empty memory tier
	second := h.newLoader(t)
	fromStorage, err := second.FetchCatalog(ctx, pulsaRequest, false)
	require.NoError(t, err)
	assert.Equal(t, got, fromStorage)

	env, err := h.storage.Get(ctx, "pulsa_providers_cache")
	require.NoError(t, err)
	assert.Equal(t, models.CacheSchemaVersion, env.SchemaVersion)
}

func TestLoader_FetchCatalog_ReturnsCopies(t *testing.T) {
	h := newTestHelper(t)
	ctx := context.Background()
	h.source.EXPECT().Fetch(gomock.Any(), pulsaRequest.Endpoint, nil).Return([]byte(pulsaBody), nil)

	l := h.newLoader(t)
	got, err := l.FetchCatalog(ctx, pulsaRequest, false)
	require.NoError(t, err)
	got[0] = "mutated"

	again, err := l.FetchCatalog(ctx, pulsaRequest, false)
	require.NoError(t, err)
	assert.Equal(t, "Telkomsel", again[0])
}

func TestLoader_FetchCatalog_StaleOverError(t *testing.T) {
	t.Run("memory value of any age", func(t *testing.T) {
		h := newTestHelper(t)
		ctx := context.Background()
		gomock.InOrder(
			h.source.EXPECT().Fetch(gomock.Any(), pulsaRequest.Endpoint, nil).Return([]byte(pulsaBody), nil),
			h.source.EXPECT().Fetch(gomock.Any(), pulsaRequest.Endpoint, nil).
				Return(nil, &common.ServerError{StatusCode: http.StatusNotFound}),
		)

		l := h.newLoader(t)
		_, err := l.FetchCatalog(ctx, pulsaRequest, false)
		require.NoError(t, err)

		h.clock.Advance(48 * time.Hour)

		got, err := l.FetchCatalog(ctx, pulsaRequest, false)
		require.NoError(t, err)
		assert.Equal(t, []string{"Telkomsel", "telkomsel", "XL"}, got)
	})

	t.Run("storage value on forced refresh", func(t *testing.T) {
		h := newTestHelper(t)
		ctx := context.Background()
		gomock.InOrder(
			h.source.EXPECT().Fetch(gomock.Any(), pulsaRequest.Endpoint, nil).Return([]byte(pulsaBody), nil),
			h.source.EXPECT().Fetch(gomock.Any(), pulsaRequest.Endpoint, nil).Return(nil, networkErr()),
		)

		_, err := h.newLoader(t).FetchCatalog(ctx, pulsaRequest, false)
		require.NoError(t, err)

		got, err := h.newLoader(t).FetchCatalog(ctx, pulsaRequest, true)
		require.NoError(t, err)
		assert.Equal(t, []string{"Telkomsel", "telkomsel", "XL"}, got)
	})

	t.Run("expired storage value after restart", func(t *testing.T) {
		h := newTestHelper(t)
		ctx := context.Background()
		gomock.InOrder(
			h.source.EXPECT().Fetch(gomock.Any(), pulsaRequest.Endpoint, nil).Return([]byte(pulsaBody), nil),
			h.source.EXPECT().Fetch(gomock.Any(), pulsaRequest.Endpoint, nil).Return(nil, networkErr()),
		)

		_, err := h.newLoader(t).FetchCatalog(ctx, pulsaRequest, false)
		require.NoError(t, err)

		h.clock.Advance(25 * time.Hour)

		got, err := h.newLoader(t).FetchCatalog(ctx, pulsaRequest, false)
		require.NoError(t, err)
		assert.Equal(t, []string{"Telkomsel", "telkomsel", "XL"}, got)

		env, err := h.storage.Get(ctx, "pulsa_providers_cache")
		require.NoError(t, err)
		assert.False(t, env.IsZero())
	})

	t.Run("expired storage value replaced by fetch", func(t *testing.T) {
		h := newTestHelper(t)
		ctx := context.Background()
		h.source.EXPECT().Fetch(gomock.Any(), pulsaRequest.Endpoint, nil).Return([]byte(pulsaBody), nil).Times(2)

		_, err := h.newLoader(t).FetchCatalog(ctx, pulsaRequest, false)
		require.NoError(t, err)

		h.clock.Advance(25 * time.Hour)

		_, err = h.newLoader(t).FetchCatalog(ctx, pulsaRequest, false)
		require.NoError(t, err)

		env, err := h.storage.Get(ctx, "pulsa_providers_cache")
		require.NoError(t, err)
		assert.Equal(t, h.clock.Now().UnixMilli(), env.Timestamp)
	})
}

func TestLoader_FetchCatalog_ForceRefresh(t *testing.T) {
	h := newTestHelper(t)
	ctx := context.Background()
	gomock.InOrder(
		h.source.EXPECT().Fetch(gomock.Any(), pulsaRequest.Endpoint, nil).Return([]byte(pulsaBody), nil),
		h.source.EXPECT().Fetch(gomock.Any(), pulsaRequest.Endpoint, nil).
			Return([]byte(`{"data":{"pulsa":[{"provider":"Indosat"}]}}`), nil),
	)

	l := h.newLoader(t)
	_, err := l.FetchCatalog(ctx, pulsaRequest, false)
	require.NoError(t, err)

	got, err := l.FetchCatalog(ctx, pulsaRequest, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"Indosat"}, got)
}

func TestLoader_FetchCatalog_SingleFlight(t *testing.T) {
	h := newTestHelper(t)
	release := make(chan struct{})
	var calls atomic.Int32

	h.source.EXPECT().Fetch(gomock.Any(), pulsaRequest.Endpoint, nil).
		DoAndReturn(func(ctx context.Context, endpoint string, payload any) ([]byte, error) {
			calls.Add(1)
			<-release
			return []byte(pulsaBody), nil
		}).Times(1)

	l := h.newLoader(t)

	const callers = 10
	var (
		wg      sync.WaitGroup
		started sync.WaitGroup
		results = make([][]string, callers)
		errs    = make([]error, callers)
	)
	started.Add(callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			started.Done()
			results[i], errs[i] = l.FetchCatalog(context.Background(), pulsaRequest, false)
		}(i)
	}

	started.Wait()
	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for i := 0; i < callers; i++ {
		assert.NoError(t, errs[i])
		assert.Equal(t, []string{"Telkomsel", "telkomsel", "XL"}, results[i])
	}
}

func TestLoader_FetchCatalog_CallerCancelDoesNotAbortSharedFetch(t *testing.T) {
	h := newTestHelper(t)
	release := make(chan struct{})
	fetched := make(chan struct{})

	h.source.EXPECT().Fetch(gomock.Any(), pulsaRequest.Endpoint, nil).
		DoAndReturn(func(ctx context.Context, endpoint string, payload any) ([]byte, error) {
			close(fetched)
			<-release
			return []byte(pulsaBody), ctx.Err()
		}).Times(1)

	l := h.newLoader(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := l.FetchCatalog(ctx, pulsaRequest, false)
		done <- err
	}()

	<-fetched
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)

	close(release)
	assert.Eventually(t, func() bool {
		got, err := l.FetchCatalog(context.Background(), pulsaRequest, false)
		return err == nil && len(got) == 3
	}, time.Second, 5*time.Millisecond)
}

func TestLoader_BackgroundRefresh(t *testing.T) {
	t.Run("stale value is returned and refreshed", func(t *testing.T) {
		h := newTestHelper(t)
		ctx := context.Background()
		gomock.InOrder(
			h.source.EXPECT().Fetch(gomock.Any(), pulsaRequest.Endpoint, nil).Return([]byte(pulsaBody), nil),
			h.source.EXPECT().Fetch(gomock.Any(), pulsaRequest.Endpoint, nil).
				Return([]byte(`{"data":{"pulsa":[{"provider":"Indosat"}]}}`), nil),
		)

		l := h.newLoader(t, WithProviderPolicy(persistentcache.NewStalenessPolicy(time.Hour, 10*time.Minute)))
		_, err := l.FetchCatalog(ctx, pulsaRequest, false)
		require.NoError(t, err)

		h.clock.Advance(20 * time.Minute)

		stale, err := l.FetchCatalog(ctx, pulsaRequest, false)
		require.NoError(t, err)
		assert.Equal(t, []string{"Telkomsel", "telkomsel", "XL"}, stale)

		assert.Eventually(t, func() bool {
			got, err := l.FetchCatalog(ctx, pulsaRequest, false)
			return err == nil && len(got) == 1 && got[0] == "Indosat"
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("client error is not retried", func(t *testing.T) {
		h := newTestHelper(t)
		ctx := context.Background()
		refreshed := make(chan struct{})
		gomock.InOrder(
			h.source.EXPECT().Fetch(gomock.Any(), pulsaRequest.Endpoint, nil).Return([]byte(pulsaBody), nil),
			h.source.EXPECT().Fetch(gomock.Any(), pulsaRequest.Endpoint, nil).
				DoAndReturn(func(ctx context.Context, endpoint string, payload any) ([]byte, error) {
					close(refreshed)
					return nil, &common.ServerError{StatusCode: http.StatusUnauthorized}
				}).Times(1),
		)

		l := h.newLoader(t, WithProviderPolicy(persistentcache.NewStalenessPolicy(time.Hour, 10*time.Minute)))
		_, err := l.FetchCatalog(ctx, pulsaRequest, false)
		require.NoError(t, err)

		h.clock.Advance(20 * time.Minute)

		stale, err := l.FetchCatalog(ctx, pulsaRequest, false)
		require.NoError(t, err)
		assert.Equal(t, []string{"Telkomsel", "telkomsel", "XL"}, stale)

		<-refreshed
		time.Sleep(20 * time.Millisecond)
		require.NoError(t, l.Close())
	})

	t.Run("close stops pending refresh", func(t *testing.T) {
		h := newTestHelper(t)
		ctx := context.Background()
		started := make(chan struct{})
		gomock.InOrder(
			h.source.EXPECT().Fetch(gomock.Any(), pulsaRequest.Endpoint, nil).Return([]byte(pulsaBody), nil),
			h.source.EXPECT().Fetch(gomock.Any(), pulsaRequest.Endpoint, nil).
				DoAndReturn(func(ctx context.Context, endpoint string, payload any) ([]byte, error) {
					close(started)
					<-ctx.Done()
					return nil, ctx.Err()
				}).Times(1),
		)

		l := h.newLoader(t, WithProviderPolicy(persistentcache.NewStalenessPolicy(time.Hour, 10*time.Minute)))
		_, err := l.FetchCatalog(ctx, pulsaRequest, false)
		require.NoError(t, err)

		h.clock.Advance(20 * time.Minute)
		_, err = l.FetchCatalog(ctx, pulsaRequest, false)
		require.NoError(t, err)

		<-started
		require.NoError(t, l.Close())
		require.NoError(t, l.Close())
	})
}

func TestLoader_FetchProductTypes(t *testing.T) {
	type args struct {
		provider string
	}
	tests := []struct {
		name    string
		args    args
		doMock  func(h testHelper, args args)
		want    []string
		wantErr error
	}{
		{
			name: "success",
			args: args{provider: "TELKOMSEL"},
			doMock: func(h testHelper, args args) {
				h.source.EXPECT().Fetch(gomock.Any(), pulsaRequest.Endpoint, nil).Return([]byte(pulsaBody), nil)
			},
			want: []string{"reguler", "Reguler", "promo"},
		},
		{
			name: "success empty",
			args: args{provider: "Smartfren"},
			doMock: func(h testHelper, args args) {
				h.source.EXPECT().Fetch(gomock.Any(), pulsaRequest.Endpoint, nil).Return([]byte(pulsaBody), nil)
			},
			want: []string{},
		},
		{
			name:    "error empty provider",
			args:    args{provider: " "},
			want:    []string{},
			wantErr: common.ErrValidation,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHelper(t)
			if tt.doMock != nil {
				tt.doMock(h, tt.args)
			}

			got, err := h.newLoader(t).FetchProductTypes(context.Background(), pulsaRequest, tt.args.provider, false)
			assert.Equal(t, tt.want, got)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLoader_FetchProductTypes_Cached(t *testing.T) {
	h := newTestHelper(t)
	ctx := context.Background()
	h.source.EXPECT().Fetch(gomock.Any(), pulsaRequest.Endpoint, nil).Return([]byte(pulsaBody), nil).Times(1)

	_, err := h.newLoader(t).FetchProductTypes(ctx, pulsaRequest, "XL", false)
	require.NoError(t, err)

	got, err := h.newLoader(t).FetchProductTypes(ctx, pulsaRequest, "XL", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"reguler"}, got)

	env, err := h.storage.Get(ctx, "pulsa_providers_XL_types_cache")
	require.NoError(t, err)
	assert.False(t, env.IsZero())
}

func TestLoader_FetchProducts(t *testing.T) {
	type args struct {
		query ProductQuery
	}
	tests := []struct {
		name     string
		args     args
		doMock   func(h testHelper, args args)
		wantSKUs []string
		wantKey  string
		wantErr  bool
	}{
		{
			name: "success all types sorted by price",
			args: args{query: ProductQuery{Prefix: "pulsa", Provider: "Telkomsel", Endpoint: "/api/product/pulsa", Field: "pulsa"}},
			doMock: func(h testHelper, args args) {
				h.source.EXPECT().Fetch(gomock.Any(), "/api/product/pulsa", map[string]any{"provider": "telkomsel", "type": nil}).
					Return([]byte(pulsaBody), nil)
			},
			wantSKUs: []string{"TSEL5", "TSELP", "TSEL10"},
			wantKey:  "pulsa_Telkomsel_all_products",
		},
		{
			name: "success narrowed to type",
			args: args{query: ProductQuery{Prefix: "pulsa", Provider: "Telkomsel", Type: "reguler", Endpoint: "/api/product/pulsa", Field: "pulsa"}},
			doMock: func(h testHelper, args args) {
				h.source.EXPECT().Fetch(gomock.Any(), "/api/product/pulsa", map[string]any{"provider": "telkomsel", "type": "reguler"}).
					Return([]byte(pulsaBody), nil)
			},
			wantSKUs: []string{"TSEL5", "TSEL10"},
			wantKey:  "pulsa_Telkomsel_reguler_products",
		},
		{
			name: "success missing field is empty",
			args: args{query: ProductQuery{Prefix: "pulsa", Provider: "XL", Endpoint: "/api/product/pulsa", Field: "data"}},
			doMock: func(h testHelper, args args) {
				h.source.EXPECT().Fetch(gomock.Any(), "/api/product/pulsa", gomock.Any()).Return([]byte(pulsaBody), nil)
			},
			wantSKUs: []string{},
		},
		{
			name: "error server",
			args: args{query: ProductQuery{Prefix: "pulsa", Provider: "XL", Endpoint: "/api/product/pulsa", Field: "pulsa"}},
			doMock: func(h testHelper, args args) {
				h.source.EXPECT().Fetch(gomock.Any(), "/api/product/pulsa", gomock.Any()).
					Return(nil, &common.ServerError{StatusCode: http.StatusBadGateway})
			},
			wantSKUs: []string{},
			wantErr:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHelper(t)
			ctx := context.Background()
			if tt.doMock != nil {
				tt.doMock(h, tt.args)
			}

			got, err := h.newLoader(t).FetchProducts(ctx, tt.args.query, false)
			assert.Equal(t, tt.wantErr, err != nil)

			skus := make([]string, 0, len(got))
			for _, p := range got {
				skus = append(skus, p.SKU)
			}
			assert.Equal(t, tt.wantSKUs, skus)

			if tt.wantKey != "" {
				env, err := h.storage.Get(ctx, tt.wantKey)
				require.NoError(t, err)
				assert.False(t, env.IsZero())
			}
		})
	}
}

func TestLoader_FetchProducts_Transform(t *testing.T) {
	h := newTestHelper(t)
	h.source.EXPECT().Fetch(gomock.Any(), "/api/product/pulsa", gomock.Any()).Return([]byte(pulsaBody), nil)

	got, err := h.newLoader(t).FetchProducts(context.Background(),
		ProductQuery{Prefix: "pulsa", Provider: "XL", Endpoint: "/api/product/pulsa", Field: "pulsa"}, false)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, "3", got[0].ID)
	assert.Equal(t, "XL 10K", got[0].Label)
	assert.Equal(t, "10200", got[0].Price.String())
	assert.Equal(t, "XL", got[0].Provider)
}

func TestLoader_FetchProductTypes_EmptyIsCached(t *testing.T) {
	h := newTestHelper(t)
	ctx := context.Background()
	h.source.EXPECT().Fetch(gomock.Any(), pulsaRequest.Endpoint, nil).Return([]byte(pulsaBody), nil).Times(1)

	got, err := h.newLoader(t).FetchProductTypes(ctx, pulsaRequest, "Smartfren", false)
	require.NoError(t, err)
	assert.Equal(t, []string{}, got)

	got, err = h.newLoader(t).FetchProductTypes(ctx, pulsaRequest, "Smartfren", false)
	require.NoError(t, err)
	assert.Equal(t, []string{}, got)

	env, err := h.storage.Get(ctx, "pulsa_providers_Smartfren_types_cache")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(env.Value))
}

func TestLoader_FetchProducts_EmptyIsNotCached(t *testing.T) {
	h := newTestHelper(t)
	ctx := context.Background()
	query := ProductQuery{Prefix: "pulsa", Provider: "Smartfren", Endpoint: "/api/product/pulsa", Field: "pulsa"}
	h.source.EXPECT().Fetch(gomock.Any(), "/api/product/pulsa", gomock.Any()).Return([]byte(pulsaBody), nil).Times(2)

	l := h.newLoader(t)
	for i := 0; i < 2; i++ {
		got, err := l.FetchProducts(ctx, query, false)
		require.NoError(t, err)
		assert.Empty(t, got)
	}
}

func TestLoader_PurgeAndInvalidate(t *testing.T) {
	h := newTestHelper(t)
	ctx := context.Background()
	h.source.EXPECT().Fetch(gomock.Any(), pulsaRequest.Endpoint, nil).Return([]byte(pulsaBody), nil).Times(3)

	l := h.newLoader(t)
	_, err := l.FetchCatalog(ctx, pulsaRequest, false)
	require.NoError(t, err)

	l.Invalidate(ctx, pulsaRequest)
	_, err = l.FetchCatalog(ctx, pulsaRequest, false)
	require.NoError(t, err)

	require.NoError(t, l.Purge(ctx))
	env, err := h.storage.Get(ctx, "pulsa_providers_cache")
	require.NoError(t, err)
	assert.True(t, env.IsZero())

	_, err = l.FetchCatalog(ctx, pulsaRequest, false)
	require.NoError(t, err)
}
