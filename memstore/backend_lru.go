package memstore

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultCountLimit = 1000000

type lruBackend struct {
	mCache *lru.Cache[string, *Capsule]
}

// newLRUBackend 新建按条目数限制的底层缓存，超出上限时静默淘汰最久未访问的条目
func newLRUBackend(countLimit int) (*lruBackend, error) {
	if countLimit <= 0 {
		countLimit = defaultCountLimit
	}
	mCache, err := lru.New[string, *Capsule](countLimit)
	if err != nil {
		return nil, err
	}
	return &lruBackend{mCache: mCache}, nil
}

func (b *lruBackend) get(key string) (*Capsule, bool) {
	return b.mCache.Get(key)
}

func (b *lruBackend) set(key string, c *Capsule, _ int64) {
	b.mCache.Add(key, c)
}

func (b *lruBackend) del(key string) {
	b.mCache.Remove(key)
}

func (b *lruBackend) clear() {
	b.mCache.Purge()
}
