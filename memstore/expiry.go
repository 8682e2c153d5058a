package memstore

import "time"

type expiryKind uint8

const (
	expiryNever expiryKind = iota // 永不过期
	expiryAt                      // 绝对时间点
	expiryIn                      // 相对时长，写入时换算为绝对时间
)

// Expiry 过期策略值：永不过期、绝对时间点或相对时长三种形态。
// 零值等同于 Never()。
type Expiry struct {
	kind expiryKind
	at   time.Time
	in   time.Duration
}

// Never 永不过期
func Never() Expiry {
	return Expiry{kind: expiryNever}
}

// At 在指定绝对时间点过期
func At(t time.Time) Expiry {
	return Expiry{kind: expiryAt, at: t}
}

// In 在指定时长之后过期，d<=0 表示永不过期
func In(d time.Duration) Expiry {
	return Expiry{kind: expiryIn, in: d}
}

// Resolve 把相对时长换算为以 now 为基准的绝对时间点。
// 永不过期和绝对时间点原样返回，非正时长视为永不过期。
func (e Expiry) Resolve(now time.Time) Expiry {
	if e.kind != expiryIn {
		return e
	}
	if e.in <= 0 {
		return Never()
	}
	return At(now.Add(e.in))
}

// IsNever 是否永不过期
func (e Expiry) IsNever() bool {
	return e.kind == expiryNever
}

// Time 返回过期的绝对时间点，永不过期时第二个返回值为 false。
// 相对时长需先经 Resolve 处理，否则同样返回 false。
func (e Expiry) Time() (time.Time, bool) {
	if e.kind != expiryAt {
		return time.Time{}, false
	}
	return e.at, true
}

// Expired 判断在 now 时刻是否已过期，过期时间点等于 now 也算过期
func (e Expiry) Expired(now time.Time) bool {
	t, ok := e.Time()
	if !ok {
		return false
	}
	return !t.After(now)
}
