package memstore

import (
	"sync"
	"time"
)

const defaultSweepInterval = 1 * time.Minute

// Sweeper 按固定间隔执行过期清理的定时器，清理节奏由使用方决定
type Sweeper struct {
	storage  *MemoryStorage
	interval time.Duration

	startOnce sync.Once
	stopOnce  sync.Once
	stop      chan struct{}
}

// NewSweeper 新建Sweeper，interval<=0 时使用默认间隔
func NewSweeper(storage *MemoryStorage, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &Sweeper{
		storage:  storage,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// Start 启动后台清理，重复调用只生效一次
func (sw *Sweeper) Start() {
	sw.startOnce.Do(func() {
		go sw.run()
	})
}

// Stop 停止后台清理，重复调用只生效一次
func (sw *Sweeper) Stop() {
	sw.stopOnce.Do(func() {
		close(sw.stop)
	})
}

func (sw *Sweeper) run() {
	ticker := time.NewTicker(sw.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			sw.storage.SweepExpired()
		case <-sw.stop:
			return
		}
	}
}
