package metadata

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"clipfund/internal/core/domain"
	"clipfund/internal/core/port/mocks"
)

// fakeMetricsStore is an in-memory stand-in for the redis client.
type fakeMetricsStore struct {
	data   map[string]string
	getErr error
	setErr error
	sets   int
}

func newFakeMetricsStore() *fakeMetricsStore {
	return &fakeMetricsStore{data: map[string]string{}}
}

func (f *fakeMetricsStore) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeMetricsStore) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	f.sets++
	if f.setErr != nil {
		return redis.NewStatusResult("", f.setErr)
	}
	f.data[key] = string(value.([]byte))
	return redis.NewStatusResult("OK", nil)
}

func TestCacheStoresLiveMetrics(t *testing.T) {
	inner := mocks.NewMockMetadataSource(t)
	store := newFakeMetricsStore()

	inner.EXPECT().Fetch(mock.Anything, "tiktok", "123").
		Return(domain.ClipMetrics{ViewCount: 42, Origin: domain.MetricsOriginLive}, nil).
		Once()

	c := NewCache(inner, store, time.Minute, testLogger())

	m, err := c.Fetch(context.Background(), "tiktok", "123")
	require.NoError(t, err)
	assert.Equal(t, int64(42), m.ViewCount)
	assert.Equal(t, 1, store.sets)
	assert.Contains(t, store.data, "metrics:tiktok:123")

	// Second fetch is served from the cache; the inner Once() would fail
	// on a repeat call.
	m, err = c.Fetch(context.Background(), "tiktok", "123")
	require.NoError(t, err)
	assert.Equal(t, int64(42), m.ViewCount)
	assert.Equal(t, domain.MetricsOriginLive, m.Origin)
}

// Degraded stubs are never written; the next intake retries the sources.
func TestCacheSkipsDegradedMetrics(t *testing.T) {
	inner := mocks.NewMockMetadataSource(t)
	store := newFakeMetricsStore()

	inner.EXPECT().Fetch(mock.Anything, "tiktok", "123").
		Return(domain.DegradedMetrics(), nil).
		Times(2)

	c := NewCache(inner, store, time.Minute, testLogger())

	for i := 0; i < 2; i++ {
		m, err := c.Fetch(context.Background(), "tiktok", "123")
		require.NoError(t, err)
		assert.Equal(t, domain.MetricsOriginDegraded, m.Origin)
	}
	assert.Zero(t, store.sets)
	assert.Empty(t, store.data)
}

// A redis read failure falls through to the inner source.
func TestCacheFallsThroughOnReadError(t *testing.T) {
	inner := mocks.NewMockMetadataSource(t)
	store := newFakeMetricsStore()
	store.getErr = assert.AnError

	inner.EXPECT().Fetch(mock.Anything, "youtube", "abc").
		Return(domain.ClipMetrics{ViewCount: 7, Origin: domain.MetricsOriginLive}, nil)

	c := NewCache(inner, store, time.Minute, testLogger())

	m, err := c.Fetch(context.Background(), "youtube", "abc")
	require.NoError(t, err)
	assert.Equal(t, int64(7), m.ViewCount)
}

// A redis write failure is logged, not surfaced.
func TestCacheToleratesWriteError(t *testing.T) {
	inner := mocks.NewMockMetadataSource(t)
	store := newFakeMetricsStore()
	store.setErr = assert.AnError

	inner.EXPECT().Fetch(mock.Anything, "youtube", "abc").
		Return(domain.ClipMetrics{ViewCount: 7, Origin: domain.MetricsOriginLive}, nil)

	c := NewCache(inner, store, time.Minute, testLogger())

	m, err := c.Fetch(context.Background(), "youtube", "abc")
	require.NoError(t, err)
	assert.Equal(t, int64(7), m.ViewCount)
}

// A corrupt cache entry is ignored in favor of the inner source.
func TestCacheIgnoresCorruptEntry(t *testing.T) {
	inner := mocks.NewMockMetadataSource(t)
	store := newFakeMetricsStore()
	store.data["metrics:tiktok:123"] = "{not json"

	inner.EXPECT().Fetch(mock.Anything, "tiktok", "123").
		Return(domain.ClipMetrics{ViewCount: 9, Origin: domain.MetricsOriginLive}, nil)

	c := NewCache(inner, store, time.Minute, testLogger())

	m, err := c.Fetch(context.Background(), "tiktok", "123")
	require.NoError(t, err)
	assert.Equal(t, int64(9), m.ViewCount)

	var stored domain.ClipMetrics
	require.NoError(t, json.Unmarshal([]byte(store.data["metrics:tiktok:123"]), &stored))
	assert.Equal(t, int64(9), stored.ViewCount)
}
