package memstore

// Weigher 计算单个条目的成本（如字节大小），用于总成本上限的驱逐判断。
type Weigher func(key string, payload any) int64

// Config 存储配置，构建后不再修改
type Config struct {
	DefaultExpiry  Expiry  // 默认过期策略，零值表示永不过期
	CountLimit     int     // 最大条目数，0 表示不限制
	TotalCostLimit int64   // 最大总成本，0 表示不限制
	Weigher        Weigher // 成本计算函数，nil 时每条记 1
	Metrics        *Metrics
}

// costOf 计算写入条目的成本
func (cfg *Config) costOf(key string, payload any) int64 {
	if cfg.Weigher == nil {
		return 1
	}
	cost := cfg.Weigher(key, payload)
	if cost <= 0 {
		return 1
	}
	return cost
}
