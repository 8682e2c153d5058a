package memstore_test

import (
	"errors"
	"testing"
	"time"

	"github.com/magic-lib/go-plat-memstore/memstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypedGetSetDel(t *testing.T) {
	storage := newTestStorage(t)
	typed := memstore.NewTyped[*AA](storage)

	ok, err := typed.Set(nil, "aaaa", &AA{Name: "tiantian"}, 50*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := typed.Get(nil, "aaaa")
	require.NoError(t, err)
	assert.Equal(t, "tiantian", got.Name)

	ok, err = typed.Del(nil, "aaaa")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = typed.Get(nil, "aaaa")
	assert.True(t, errors.Is(err, memstore.ErrNotFound))
}

func TestTypedSharedStorage(t *testing.T) {
	storage := newTestStorage(t)
	aView := memstore.NewTyped[*AA](storage)
	bView := memstore.NewTyped[*BB](storage)

	_, err := aView.Set(nil, "aaaa", &AA{Name: "tiantian"}, 0)
	require.NoError(t, err)

	// 同一个key经过不同类型的视图读取时会暴露类型不符
	_, err = bView.Get(nil, "aaaa")
	assert.True(t, errors.Is(err, memstore.ErrTypeMismatch))

	got, err := aView.Get(nil, "aaaa")
	require.NoError(t, err)
	assert.Equal(t, "tiantian", got.Name)
}

func TestTypedDefaultExpiry(t *testing.T) {
	storage, err := memstore.NewMemoryStorage(memstore.Config{
		DefaultExpiry: memstore.In(time.Hour),
	})
	require.NoError(t, err)
	typed := memstore.NewTyped[string](storage)

	// timeout<=0 时走默认过期策略
	_, err = typed.Set(nil, "key", "value", 0)
	require.NoError(t, err)

	ent, err := memstore.Read[string](storage, "key")
	require.NoError(t, err)
	assert.False(t, ent.Expiry.IsNever())
}
