package memstore

// Capsule 把任意类型的载荷和已解析的过期时间绑定在一起，创建后不可变。
type Capsule struct {
	payload any
	expiry  Expiry
}

// NewCapsule 新建Capsule，expiry 必须是已解析的绝对时间或永不过期
func NewCapsule(payload any, expiry Expiry) *Capsule {
	return &Capsule{
		payload: payload,
		expiry:  expiry,
	}
}

// Payload 取得载荷
func (c *Capsule) Payload() any {
	return c.payload
}

// Expiry 取得过期时间
func (c *Capsule) Expiry() Expiry {
	return c.expiry
}
