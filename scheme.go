package enr

import (
	"fmt"
	"io"
	"sort"

	"github.com/dep2p/go-enr/pkg/lib/crypto"
	"github.com/dep2p/go-enr/pkg/types"
)

// ============================================================================
//                              身份方案接口
// ============================================================================

//go:generate mockgen -source=scheme.go -destination=mock_scheme_test.go -package=enr

// IdentityScheme 身份方案
//
// 一个方案决定记录的签名算法、公钥编码以及 NodeID 的派生方式。
// 实现必须是无状态的，可在多个 goroutine 中共享。
type IdentityScheme interface {
	// Name 返回方案标签，即 "id" 属性的值
	Name() string

	// KeyName 返回保存公钥的属性键
	KeyName() string

	// GenerateKey 生成该方案使用的私钥
	GenerateKey(rand io.Reader) (crypto.PrivateKey, error)

	// EncodePublicKey 返回公钥在记录中的规范编码
	//
	// 公钥类型不属于该方案时返回 ErrSchemeKeyMismatch。
	EncodePublicKey(pub crypto.PublicKey) ([]byte, error)

	// Sign 对 msg（记录内容的规范编码）签名
	Sign(priv crypto.PrivateKey, msg []byte) ([]byte, error)

	// Verify 验证签名
	//
	// 任何格式错误的输入都返回 false，不会 panic。
	Verify(pub, msg, sig []byte) bool

	// NodeID 由公钥编码派生节点标识
	NodeID(pub []byte) (types.NodeID, error)
}

// ============================================================================
//                              方案表
// ============================================================================

// SchemeMap 按标签索引的身份方案表
//
// 解码时显式传入，决定接受哪些方案。零值（nil）不接受任何方案。
type SchemeMap map[string]IdentityScheme

// NewSchemeMap 用给定的方案创建方案表
func NewSchemeMap(schemes ...IdentityScheme) SchemeMap {
	m := make(SchemeMap, len(schemes))
	for _, s := range schemes {
		m[s.Name()] = s
	}
	return m
}

// DefaultSchemes 返回只包含 v4 方案的新方案表
func DefaultSchemes() SchemeMap {
	return NewSchemeMap(V4ID{})
}

// AllSchemes 返回包含所有内置方案的新方案表
func AllSchemes() SchemeMap {
	return NewSchemeMap(V4ID{}, Ed25519ID{})
}

// Lookup 按标签查找方案
func (m SchemeMap) Lookup(name string) (IdentityScheme, error) {
	s, ok := m[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
	}
	return s, nil
}

// Names 返回已注册的方案标签（升序）
func (m SchemeMap) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// defaultSchemes 包内只读的默认方案表
var defaultSchemes = DefaultSchemes()
