package memstore

import (
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/samber/lo"
)

// MemoryStorage 在有界缓存之上叠加按条目过期的能力。底层缓存不可枚举，
// 因此这里额外维护一份已写入key的集合，用来驱动过期清理。
//
// tracked 对实际驻留的key是超集而非精确集合：底层缓存静默驱逐时不会
// 同步移除追踪记录，只有显式的 Remove、RemoveAll 或清理时发现条目
// 仍驻留且已过期才会回收。读路径不受影响，被驱逐的key照常返回
// ErrNotFound。
type MemoryStorage struct {
	cache   backend                              // 底层有界缓存
	tracked cmap.ConcurrentMap[string, struct{}] // 已写入的key集合
	cfg     Config
}

// NewMemoryStorage 新建MemoryStorage
func NewMemoryStorage(cfg Config) (*MemoryStorage, error) {
	mCache, err := newBackend(cfg)
	if err != nil {
		return nil, err
	}
	return &MemoryStorage{
		cache:   mCache,
		tracked: cmap.New[struct{}](),
		cfg:     cfg,
	}, nil
}

// Write 向存储写入一个值，可通过可选参数覆盖默认过期策略。
// 相对时长在此刻换算为绝对时间点，覆盖已有条目时过期时间一并更新。
func (s *MemoryStorage) Write(key string, payload any, expiry ...Expiry) {
	exp := s.cfg.DefaultExpiry
	if len(expiry) > 0 {
		exp = expiry[0]
	}
	capsule := NewCapsule(payload, exp.Resolve(time.Now()))
	s.cache.set(key, capsule, s.cfg.costOf(key, payload))
	s.tracked.Set(key, struct{}{})
	s.cfg.Metrics.incWrites()
}

// Read 读取一个条目，不做类型检查。读取不会检查或处理过期，
// 已过期但尚未清理的条目照常返回，时效判断交给调用方或清理操作。
func (s *MemoryStorage) Read(key string) (Entry[any], error) {
	capsule, ok := s.cache.get(key)
	if !ok {
		s.cfg.Metrics.incMisses()
		return Entry[any]{}, ErrNotFound
	}
	s.cfg.Metrics.incHits()
	return Entry[any]{
		Payload: capsule.Payload(),
		Expiry:  capsule.Expiry(),
	}, nil
}

// Remove 从底层缓存和追踪集合中同时删除key，key不存在时是空操作
func (s *MemoryStorage) Remove(key string) {
	s.cache.del(key)
	s.tracked.Remove(key)
}

// RemoveAll 清空底层缓存和追踪集合
func (s *MemoryStorage) RemoveAll() {
	s.cache.clear()
	s.tracked.Clear()
}

// SweepExpired 主动清理已过期的条目。先对追踪集合做一次快照避免边遍历
// 边修改，再对每个key重新查询实际驻留情况：追踪集合可能包含已被底层
// 驱逐的key，不能只凭集合判断存在。仍驻留且已过期的条目走 Remove 路径
// 删除，已被驱逐的key保留追踪记录等待后续显式删除。
func (s *MemoryStorage) SweepExpired() {
	now := time.Now()
	keys := s.tracked.Keys()
	lo.ForEach(keys, func(key string, _ int) {
		capsule, ok := s.cache.get(key)
		if !ok {
			return
		}
		if capsule.Expiry().Expired(now) {
			s.Remove(key)
			s.cfg.Metrics.incSweepRemovals()
		}
	})
	s.cfg.Metrics.incSweepRuns()
}
