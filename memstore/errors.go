package memstore

import "errors"

var (
	// ErrNotFound key对应的条目不存在：从未写入、已删除、已清理或被底层缓存驱逐
	ErrNotFound = errors.New("memstore: key not found")

	// ErrTypeMismatch 条目存在但载荷的实际类型与请求的类型不符
	ErrTypeMismatch = errors.New("memstore: payload type mismatch")
)
