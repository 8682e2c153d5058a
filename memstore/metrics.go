package memstore

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics 用于 Prometheus 监控读写命中、类型不符、清理等指标，可选
type Metrics struct {
	Hits          prometheus.Counter // 读取命中次数
	Misses        prometheus.Counter // 读取丢失次数
	Mismatches    prometheus.Counter // 类型不符次数
	Writes        prometheus.Counter // 写入次数
	SweepRuns     prometheus.Counter // 清理执行次数
	SweepRemovals prometheus.Counter // 清理删除的条目数
}

// NewMetrics 新建Metrics并注册到reg，reg为nil时只创建不注册
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	newCounter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "memstore",
			Name:      name,
			Help:      help,
		})
	}
	m := &Metrics{
		Hits:          newCounter("hits_total", "Total number of read hits."),
		Misses:        newCounter("misses_total", "Total number of read misses."),
		Mismatches:    newCounter("type_mismatches_total", "Total number of reads with mismatched payload type."),
		Writes:        newCounter("writes_total", "Total number of writes."),
		SweepRuns:     newCounter("sweep_runs_total", "Total number of sweep passes."),
		SweepRemovals: newCounter("sweep_removals_total", "Total number of entries removed by sweeps."),
	}
	if reg != nil {
		reg.MustRegister(m.Hits, m.Misses, m.Mismatches, m.Writes, m.SweepRuns, m.SweepRemovals)
	}
	return m
}

func (m *Metrics) incHits() {
	if m != nil {
		m.Hits.Inc()
	}
}

func (m *Metrics) incMisses() {
	if m != nil {
		m.Misses.Inc()
	}
}

func (m *Metrics) incMismatches() {
	if m != nil {
		m.Mismatches.Inc()
	}
}

func (m *Metrics) incWrites() {
	if m != nil {
		m.Writes.Inc()
	}
}

func (m *Metrics) incSweepRuns() {
	if m != nil {
		m.SweepRuns.Inc()
	}
}

func (m *Metrics) incSweepRemovals() {
	if m != nil {
		m.SweepRemovals.Inc()
	}
}
