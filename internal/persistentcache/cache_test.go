package persistentcache

import (
	"context"
	"encoding/json"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/punyakios/go-kios-client/internal/common/localstorage"
	storageMock "github.com/punyakios/go-kios-client/internal/common/localstorage/mock"
	xlog "github.com/punyakios/go-kios-client/internal/common/log"
	"github.com/punyakios/go-kios-client/internal/models"
)

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

func newTestCache[T any](t *testing.T, policy StalenessPolicy) (*Cache[T], localstorage.LocalStorage[models.CacheEnvelope], *fakeClock) {
	t.Helper()

	storage := localstorage.NewMemoryStorage[models.CacheEnvelope]()
	clock := newFakeClock()
	return New[T](storage, policy, WithClock(clock.Now)), storage, clock
}

func TestNewStalenessPolicy(t *testing.T) {
	tests := []struct {
		name          string
		duration      time.Duration
		threshold     time.Duration
		wantThreshold time.Duration
	}{
		{name: "default is half", duration: time.Hour, wantThreshold: 30 * time.Minute},
		{name: "default is capped at one hour", duration: 24 * time.Hour, wantThreshold: time.Hour},
		{name: "explicit threshold", duration: time.Hour, threshold: 10 * time.Minute, wantThreshold: 10 * time.Minute},
		{name: "threshold above half is clamped", duration: time.Hour, threshold: 45 * time.Minute, wantThreshold: 30 * time.Minute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewStalenessPolicy(tt.duration, tt.threshold)
			assert.Equal(t, tt.duration, p.CacheDuration)
			assert.Equal(t, tt.wantThreshold, p.BackgroundRefreshThreshold)
		})
	}
}

func TestStalenessPolicy_StateOf(t *testing.T) {
	p := NewStalenessPolicy(10*time.Second, 4*time.Second)

	tests := []struct {
		age  time.Duration
		want State
	}{
		{age: 0, want: Fresh},
		{age: 3999 * time.Millisecond, want: Fresh},
		{age: 4 * time.Second, want: StaleButUsable},
		{age: 9999 * time.Millisecond, want: StaleButUsable},
		{age: 10 * time.Second, want: Expired},
		{age: time.Hour, want: Expired},
	}
	for _, tt := range tests {
		t.Run(tt.age.String(), func(t *testing.T) {
			got := p.StateOf(tt.age)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want != Expired, got.Usable())
		})
	}
	assert.Equal(t, "ABSENT", Absent.String())
	assert.Equal(t, "STALE_BUT_USABLE", StaleButUsable.String())
}

func TestCache_RoundTrip(t *testing.T) {
	cache, _, _ := newTestCache[[]string](t, NewStalenessPolicy(time.Hour, 0))
	ctx := context.Background()

	cache.Set(ctx, "emoney_providers_cache", []string{"DANA", "OVO"})

	got, ok := cache.Get(ctx, "emoney_providers_cache")
	require.True(t, ok)
	assert.Equal(t, []string{"DANA", "OVO"}, got.Value)
	assert.Equal(t, time.Duration(0), got.Age)
	assert.Equal(t, Fresh, got.State)
}

func TestCache_StalenessMonotonicity(t *testing.T) {
	const (
		duration  = 10 * time.Second
		threshold = 4 * time.Second
		step      = 250 * time.Millisecond
	)

	cache, _, clock := newTestCache[[]string](t, NewStalenessPolicy(duration, threshold))
	ctx := context.Background()
	cache.Set(ctx, "voucher_providers_cache", []string{"Google Play"})

	for elapsed := time.Duration(0); elapsed <= 12*time.Second; elapsed += step {
		assert.Equal(t, elapsed >= duration, cache.IsExpired(ctx, "voucher_providers_cache", duration), "IsExpired at %s", elapsed)
		assert.Equal(t, elapsed >= threshold && elapsed < duration,
			cache.NeedsBackgroundRefresh(ctx, "voucher_providers_cache", duration, threshold), "NeedsBackgroundRefresh at %s", elapsed)
		clock.Advance(step)
	}
}

func TestCache_Scenario(t *testing.T) {
	duration := 3_600_000 * time.Millisecond
	threshold := 1_800_000 * time.Millisecond

	cache, _, clock := newTestCache[[]string](t, NewStalenessPolicy(duration, threshold))
	ctx := context.Background()
	key := "emoney_providers_cache"

	cache.Set(ctx, key, []string{"dana", "ovo"})

	clock.Advance(1_000_000 * time.Millisecond)
	got, ok := cache.Get(ctx, key)
	require.True(t, ok)
	assert.Equal(t, Fresh, got.State)
	assert.False(t, cache.NeedsBackgroundRefresh(ctx, key, duration, threshold))

	clock.Advance(1_000_000 * time.Millisecond)
	got, ok = cache.Get(ctx, key)
	require.True(t, ok)
	assert.Equal(t, StaleButUsable, got.State)
	assert.Equal(t, []string{"dana", "ovo"}, got.Value)
	assert.True(t, cache.NeedsBackgroundRefresh(ctx, key, duration, threshold))

	clock.Advance(1_700_000 * time.Millisecond)
	assert.True(t, cache.IsExpired(ctx, key, duration))
	_, ok = cache.Get(ctx, key)
	assert.False(t, ok)
}

func TestCache_AbsentEntry(t *testing.T) {
	cache, _, _ := newTestCache[[]string](t, NewStalenessPolicy(time.Hour, 0))
	ctx := context.Background()

	_, ok := cache.Get(ctx, "tv_providers_cache")
	assert.False(t, ok)
	assert.True(t, cache.IsExpired(ctx, "tv_providers_cache", time.Hour))
	assert.False(t, cache.NeedsBackgroundRefresh(ctx, "tv_providers_cache", time.Hour, time.Minute))
}

func TestCache_ExpiredEntryIsEvicted(t *testing.T) {
	cache, storage, clock := newTestCache[[]string](t, NewStalenessPolicy(time.Hour, 0))
	ctx := context.Background()

	cache.Set(ctx, "pln_providers_cache", []string{"PLN"})
	clock.Advance(time.Hour)

	_, ok := cache.Get(ctx, "pln_providers_cache")
	assert.False(t, ok)

	env, err := storage.Get(ctx, "pln_providers_cache")
	require.NoError(t, err)
	assert.True(t, env.IsZero())
}

func TestCache_CorruptEntry(t *testing.T) {
	tests := []struct {
		name string
		env  models.CacheEnvelope
	}{
		{
			name: "older schema",
			env:  models.CacheEnvelope{SchemaVersion: 0, Timestamp: 1_700_000_000_000, Value: json.RawMessage(`["a"]`)},
		},
		{
			name: "newer schema",
			env:  models.CacheEnvelope{SchemaVersion: models.CacheSchemaVersion + 1, Timestamp: 1_700_000_000_000, Value: json.RawMessage(`["a"]`)},
		},
		{
			name: "value of another shape",
			env:  models.CacheEnvelope{SchemaVersion: models.CacheSchemaVersion, Timestamp: 1_700_000_000_000, Value: json.RawMessage(`{"providers":["a"]}`)},
		},
		{
			name: "empty value",
			env:  models.CacheEnvelope{SchemaVersion: models.CacheSchemaVersion, Timestamp: 1_700_000_000_000},
		},
		{
			name: "null value",
			env:  models.CacheEnvelope{SchemaVersion: models.CacheSchemaVersion, Timestamp: 1_700_000_000_000, Value: json.RawMessage(` null `)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache, storage, _ := newTestCache[[]string](t, NewStalenessPolicy(time.Hour, 0))
			ctx := context.Background()
			require.NoError(t, storage.Set(ctx, "games_providers_cache", tt.env))

			assert.True(t, cache.IsExpired(ctx, "games_providers_cache", time.Hour))

			_, ok := cache.Get(ctx, "games_providers_cache")
			assert.False(t, ok)

			env, err := storage.Get(ctx, "games_providers_cache")
			require.NoError(t, err)
			assert.True(t, env.IsZero())
		})
	}
}

func TestDecode_EmptyValue(t *testing.T) {
	for _, raw := range []string{"", "null", "  null\n"} {
		_, err := decode[[]string](models.CacheEnvelope{SchemaVersion: models.CacheSchemaVersion, Value: json.RawMessage(raw)})
		assert.ErrorIs(t, err, ErrEmptyValue, "value %q", raw)
	}
}

func TestCache_EncodeFailureKeepsValueInProcess(t *testing.T) {
	cache, storage, clock := newTestCache[float64](t, NewStalenessPolicy(time.Hour, 0))
	ctx := context.Background()

	cache.Set(ctx, "deposit_limit", math.Inf(1))

	got, ok := cache.Get(ctx, "deposit_limit")
	require.True(t, ok)
	assert.True(t, math.IsInf(got.Value, 1))
	assert.Equal(t, Fresh, got.State)

	env, err := storage.Get(ctx, "deposit_limit")
	require.NoError(t, err)
	assert.True(t, env.IsZero())

	clock.Advance(time.Hour)
	assert.True(t, cache.IsExpired(ctx, "deposit_limit", time.Hour))
	_, ok = cache.Get(ctx, "deposit_limit")
	assert.False(t, ok)
}

func TestCache_Clear(t *testing.T) {
	cache, _, _ := newTestCache[[]string](t, NewStalenessPolicy(time.Hour, 0))
	ctx := context.Background()

	cache.Set(ctx, "data_providers_cache", []string{"XL"})
	cache.Clear(ctx, "data_providers_cache")

	_, ok := cache.Get(ctx, "data_providers_cache")
	assert.False(t, ok)
}

func TestCache_PeekKeepsExpiredEntry(t *testing.T) {
	cache, storage, clock := newTestCache[[]string](t, NewStalenessPolicy(time.Hour, 0))
	ctx := context.Background()

	cache.Set(ctx, "tv_providers_cache", []string{"Indihome"})
	clock.Advance(2 * time.Hour)

	got, ok := cache.Peek(ctx, "tv_providers_cache")
	require.True(t, ok)
	assert.Equal(t, []string{"Indihome"}, got.Value)
	assert.Equal(t, Expired, got.State)
	assert.Equal(t, 2*time.Hour, got.Age)

	env, err := storage.Get(ctx, "tv_providers_cache")
	require.NoError(t, err)
	assert.False(t, env.IsZero())
}

func TestCache_Purge(t *testing.T) {
	cache, _, _ := newTestCache[[]string](t, NewStalenessPolicy(time.Hour, 0))
	ctx := context.Background()

	cache.Set(ctx, "pulsa_providers_cache", []string{"Telkomsel"})
	cache.Set(ctx, "data_providers_cache", []string{"XL"})
	require.NoError(t, cache.Purge(ctx))

	_, ok := cache.Get(ctx, "pulsa_providers_cache")
	assert.False(t, ok)
	_, ok = cache.Get(ctx, "data_providers_cache")
	assert.False(t, ok)
}

func TestCache_FutureTimestamp(t *testing.T) {
	cache, _, clock := newTestCache[[]string](t, NewStalenessPolicy(time.Hour, 0))
	ctx := context.Background()

	cache.Set(ctx, "pulsa_providers_cache", []string{"XL"})
	clock.Advance(-time.Minute)

	got, ok := cache.Get(ctx, "pulsa_providers_cache")
	require.True(t, ok)
	assert.Equal(t, time.Duration(0), got.Age)
	assert.Equal(t, Fresh, got.State)
}

type cacheTestHelper struct {
	mockCtrl    *gomock.Controller
	storageMock *storageMock.MockLocalStorage[models.CacheEnvelope]
	clock       *fakeClock
	cache       *Cache[[]string]
}

func newCacheTestHelper(t *testing.T) cacheTestHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	storage := storageMock.NewMockLocalStorage[models.CacheEnvelope](mockCtrl)
	clock := newFakeClock()

	return cacheTestHelper{
		mockCtrl:    mockCtrl,
		storageMock: storage,
		clock:       clock,
		cache:       New[[]string](storage, NewStalenessPolicy(time.Hour, 0), WithClock(clock.Now)),
	}
}

func TestCache_StorageFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("read failure is a miss", func(t *testing.T) {
		h := newCacheTestHelper(t)
		h.storageMock.EXPECT().Get(gomock.Any(), "pulsa_providers_cache").
			Return(models.CacheEnvelope{}, assert.AnError)

		_, ok := h.cache.Get(ctx, "pulsa_providers_cache")
		assert.False(t, ok)
	})

	t.Run("write failure keeps value in process", func(t *testing.T) {
		h := newCacheTestHelper(t)
		gomock.InOrder(
			h.storageMock.EXPECT().Set(gomock.Any(), "pulsa_providers_cache", gomock.Any()).Return(assert.AnError),
			h.storageMock.EXPECT().Set(gomock.Any(), "pulsa_providers_cache", gomock.Any()).Return(nil),
			h.storageMock.EXPECT().Get(gomock.Any(), "pulsa_providers_cache").Return(models.CacheEnvelope{}, nil),
		)

		h.cache.Set(ctx, "pulsa_providers_cache", []string{"Telkomsel"})

		got, ok := h.cache.Get(ctx, "pulsa_providers_cache")
		require.True(t, ok)
		assert.Equal(t, []string{"Telkomsel"}, got.Value)

		// a successful write hands the entry back to storage
		h.cache.Set(ctx, "pulsa_providers_cache", []string{"XL"})
		_, ok = h.cache.Get(ctx, "pulsa_providers_cache")
		assert.False(t, ok)
	})

	t.Run("clear drops value kept in process", func(t *testing.T) {
		h := newCacheTestHelper(t)
		gomock.InOrder(
			h.storageMock.EXPECT().Set(gomock.Any(), "tv_providers_cache", gomock.Any()).Return(assert.AnError),
			h.storageMock.EXPECT().Delete(gomock.Any(), "tv_providers_cache").Return(assert.AnError),
			h.storageMock.EXPECT().Get(gomock.Any(), "tv_providers_cache").Return(models.CacheEnvelope{}, nil),
		)

		h.cache.Set(ctx, "tv_providers_cache", []string{"Indovision"})
		h.cache.Clear(ctx, "tv_providers_cache")

		_, ok := h.cache.Get(ctx, "tv_providers_cache")
		assert.False(t, ok)
	})
}
