package memstore

import (
	"context"
	"time"
)

// Typed 把 MemoryStorage 适配为 go-plat-cache 风格的泛型缓存接口，
// 多个不同类型的Typed可以共用同一个底层存储。
type Typed[V any] struct {
	storage *MemoryStorage
}

// NewTyped 新建Typed
func NewTyped[V any](storage *MemoryStorage) *Typed[V] {
	return &Typed[V]{
		storage: storage,
	}
}

// Get 从存储中取得一个值
func (t *Typed[V]) Get(_ context.Context, key string) (V, error) {
	ent, err := Read[V](t.storage, key)
	if err != nil {
		var zero V
		return zero, err
	}
	return ent.Payload, nil
}

// Set timeout<=0 时使用默认过期策略
func (t *Typed[V]) Set(_ context.Context, key string, val V, timeout time.Duration) (bool, error) {
	if timeout > 0 {
		t.storage.Write(key, val, In(timeout))
	} else {
		t.storage.Write(key, val)
	}
	return true, nil
}

// Del 从存储中删除一个key
func (t *Typed[V]) Del(_ context.Context, key string) (bool, error) {
	t.storage.Remove(key)
	return true, nil
}
