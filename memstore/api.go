// Package memstore 提供带条目过期能力的进程内有界对象缓存
package memstore

import (
	"fmt"
	"reflect"
	"time"
)

// Entry 读取结果，载荷和过期时间一并返回，时效判断由调用方自行处理
type Entry[V any] struct {
	Payload V      // 载荷
	Expiry  Expiry // 过期时间
}

// Expired 判断条目当前是否已过期
func (e Entry[V]) Expired() bool {
	return e.Expiry.Expired(time.Now())
}

// Read 按期望类型读取一个条目。条目不存在返回 ErrNotFound，
// 载荷的实际类型不符返回 ErrTypeMismatch。
func Read[V any](s *MemoryStorage, key string) (Entry[V], error) {
	ent, err := s.Read(key)
	if err != nil {
		return Entry[V]{}, err
	}
	payload, ok := ent.Payload.(V)
	if !ok {
		s.cfg.Metrics.incMismatches()
		return Entry[V]{}, fmt.Errorf("%w: key %q holds %T, want %s",
			ErrTypeMismatch, key, ent.Payload, reflect.TypeOf((*V)(nil)).Elem())
	}
	return Entry[V]{
		Payload: payload,
		Expiry:  ent.Expiry,
	}, nil
}

var (
	_ backend = (*ristrettoBackend)(nil)
	_ backend = (*lruBackend)(nil)
)
