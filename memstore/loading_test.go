package memstore_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/magic-lib/go-plat-memstore/memstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrLoadCachesResult(t *testing.T) {
	storage := newTestStorage(t)
	loading := memstore.NewLoadingStore(storage)

	var calls int32
	loader := func(_ context.Context) (any, memstore.Expiry, error) {
		atomic.AddInt32(&calls, 1)
		return "loaded", memstore.In(time.Hour), nil
	}

	v, err := loading.GetOrLoad(context.Background(), "key", loader)
	require.NoError(t, err)
	assert.Equal(t, "loaded", v)

	// 第二次直接命中缓存，不再触发loader
	v, err = loading.GetOrLoad(context.Background(), "key", loader)
	require.NoError(t, err)
	assert.Equal(t, "loaded", v)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGetOrLoadReloadsExpired(t *testing.T) {
	storage := newTestStorage(t)
	loading := memstore.NewLoadingStore(storage)

	// 直接写入一个已过期的条目，加载时视为未命中
	storage.Write("key", "stale", memstore.At(time.Now().Add(-time.Minute)))

	v, err := loading.GetOrLoad(context.Background(), "key", func(_ context.Context) (any, memstore.Expiry, error) {
		return "fresh", memstore.In(time.Hour), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "fresh", v)
}

func TestGetOrLoadError(t *testing.T) {
	storage := newTestStorage(t)
	loading := memstore.NewLoadingStore(storage)

	wantErr := errors.New("load failed")
	_, err := loading.GetOrLoad(context.Background(), "key", func(_ context.Context) (any, memstore.Expiry, error) {
		return nil, memstore.Never(), wantErr
	})
	assert.True(t, errors.Is(err, wantErr))

	// 加载失败不写入缓存
	_, err = memstore.Read[string](storage, "key")
	assert.True(t, errors.Is(err, memstore.ErrNotFound))
}

func TestGetOrLoadSingleflight(t *testing.T) {
	storage := newTestStorage(t)
	loading := memstore.NewLoadingStore(storage)

	var calls int32
	loader := func(_ context.Context) (any, memstore.Expiry, error) {
		atomic.AddInt32(&calls, 1)
		time.Sleep(50 * time.Millisecond)
		return "loaded", memstore.In(time.Hour), nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := loading.GetOrLoad(context.Background(), "key", loader)
			assert.NoError(t, err)
			assert.Equal(t, "loaded", v)
		}()
	}
	wg.Wait()

	// 并发加载被合并为一次
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}
