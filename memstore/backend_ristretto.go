package memstore

import (
	"github.com/dgraph-io/ristretto/v2"
)

const defaultNumCounters = 1000000

type ristrettoBackend struct {
	mCache *ristretto.Cache[string, *Capsule]
}

// newRistrettoBackend 新建成本感知的底层缓存。准入和驱逐由 ristretto
// 自行决定，条目可能在写入时被拒绝或随时被丢弃。
func newRistrettoBackend(totalCostLimit int64, countLimit int) (*ristrettoBackend, error) {
	numCounters := int64(defaultNumCounters)
	if countLimit > 0 {
		numCounters = int64(countLimit) * 10
	}
	mCache, err := ristretto.NewCache(&ristretto.Config[string, *Capsule]{
		NumCounters:        numCounters,
		MaxCost:            totalCostLimit,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, err
	}
	return &ristrettoBackend{mCache: mCache}, nil
}

func (b *ristrettoBackend) get(key string) (*Capsule, bool) {
	return b.mCache.Get(key)
}

func (b *ristrettoBackend) set(key string, c *Capsule, cost int64) {
	b.mCache.Set(key, c, cost)
	// ristretto 的写入经过缓冲异步生效，刷新缓冲保证写后立即可读
	b.mCache.Wait()
}

func (b *ristrettoBackend) del(key string) {
	b.mCache.Del(key)
}

func (b *ristrettoBackend) clear() {
	b.mCache.Clear()
}
