package crypto

import "runtime"

// ============================================================================
//                              作用域敏感数据
// ============================================================================

// Secret 持有一段敏感字节并负责在释放时清零
//
// 使用方式：
//
//	s := crypto.NewSecret(raw)
//	defer s.Destroy()
//	use(s.Bytes())
//
// Secret 不是并发安全的，只能由单一所有者使用。
type Secret struct {
	b []byte
}

// NewSecret 接管 b 的所有权
//
// 调用者之后不应再持有 b 的其他引用。
func NewSecret(b []byte) *Secret {
	return &Secret{b: b}
}

// Bytes 返回敏感数据；Destroy 之后返回 nil
func (s *Secret) Bytes() []byte {
	return s.b
}

// Len 返回数据长度
func (s *Secret) Len() int {
	return len(s.b)
}

// Destroyed 是否已清零
func (s *Secret) Destroyed() bool {
	return s.b == nil
}

// Destroy 清零并释放数据，可重复调用
func (s *Secret) Destroy() {
	if s.b == nil {
		return
	}
	Zero(s.b)
	s.b = nil
}

// WithSecret 在 fn 返回（包括 panic）后清零 b
func WithSecret(b []byte, fn func([]byte) error) error {
	s := NewSecret(b)
	defer s.Destroy()
	return fn(s.Bytes())
}

// Zero 用零覆盖 b
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
	// 保证清零写入在此之前不会被当作死存储消除
	runtime.KeepAlive(b)
}
