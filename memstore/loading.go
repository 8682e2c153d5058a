package memstore

import (
	"context"

	"golang.org/x/sync/singleflight"
)

// Loader 在缓存未命中时加载值，返回载荷和对应的过期策略
type Loader func(ctx context.Context) (any, Expiry, error)

// LoadingStore 在 MemoryStorage 之上增加未命中时的自动加载，
// 同一个key的并发加载通过 singleflight 合并为一次。
type LoadingStore struct {
	storage *MemoryStorage
	group   singleflight.Group
}

// NewLoadingStore 新建LoadingStore
func NewLoadingStore(storage *MemoryStorage) *LoadingStore {
	return &LoadingStore{
		storage: storage,
	}
}

// GetOrLoad 先查缓存，未命中或已过期时用loader加载并写入。
// 纯读取路径不会清理过期条目，这里把已过期视为未命中触发重新加载。
func (l *LoadingStore) GetOrLoad(ctx context.Context, key string, loader Loader) (any, error) {
	if ent, err := l.storage.Read(key); err == nil && !ent.Expired() {
		return ent.Payload, nil
	}

	v, err, _ := l.group.Do(key, func() (any, error) {
		payload, exp, err := loader(ctx)
		if err != nil {
			return nil, err
		}
		l.storage.Write(key, payload, exp)
		return payload, nil
	})
	return v, err
}
