package memstore

// backend 底层有界缓存原语。实现必须并发安全；容量压力下可随时静默
// 驱逐条目且不会回调通知，也不提供遍历能力，上层只能按key逐个查询。
type backend interface {
	get(key string) (*Capsule, bool)
	set(key string, c *Capsule, cost int64)
	del(key string)
	clear()
}

// newBackend 根据配置选择底层缓存：设置了总成本上限时使用成本感知的
// ristretto，否则使用按条目数限制的LRU。同时设置两种上限时以成本上限
// 为准，条目数仅用于估算容量。
func newBackend(cfg Config) (backend, error) {
	if cfg.TotalCostLimit > 0 {
		return newRistrettoBackend(cfg.TotalCostLimit, cfg.CountLimit)
	}
	return newLRUBackend(cfg.CountLimit)
}
