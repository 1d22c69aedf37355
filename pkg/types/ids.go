package types

import (
	"encoding/hex"
	"strings"

	"github.com/mr-tron/base58"
)

// ============================================================================
//                              NodeID - 节点标识
// ============================================================================

// NodeIDSize NodeID 长度（字节）
const NodeIDSize = 32

// NodeID 节点唯一标识符
//
// 由身份方案从记录中的公钥派生（v4 方案为未压缩公钥点的 keccak256）。
// 相同公钥和方案总是得到相同的 NodeID，与记录中的其他属性无关。
//
// 外部表示格式：
//   - String(): 小写十六进制（与 ENR 生态一致）
//   - Base58(): Base58 编码（用户可读、可分享）
//   - ShortString(): 十六进制前缀（日志简短标识）
type NodeID [NodeIDSize]byte

// EmptyNodeID 空节点ID
var EmptyNodeID NodeID

// String 返回 NodeID 的十六进制表示
func (id NodeID) String() string {
	return hex.EncodeToString(id[:])
}

// ShortString 返回 NodeID 的短字符串表示
//
// 格式：十六进制前 8 个字符，用于日志中的简短标识。
func (id NodeID) ShortString() string {
	return id.String()[:8]
}

// Base58 返回 NodeID 的 Base58 编码
func (id NodeID) Base58() string {
	return base58.Encode(id[:])
}

// Bytes 返回 NodeID 的字节切片副本
func (id NodeID) Bytes() []byte {
	b := make([]byte, NodeIDSize)
	copy(b, id[:])
	return b
}

// Equal 比较两个 NodeID 是否相等
func (id NodeID) Equal(other NodeID) bool {
	return id == other
}

// IsEmpty 检查 NodeID 是否为空
func (id NodeID) IsEmpty() bool {
	return id == EmptyNodeID
}

// MarshalText 实现 encoding.TextMarshaler
func (id NodeID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler
func (id *NodeID) UnmarshalText(text []byte) error {
	parsed, err := ParseNodeID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// NodeIDFromBytes 从字节切片创建 NodeID
func NodeIDFromBytes(b []byte) (NodeID, error) {
	if len(b) != NodeIDSize {
		return EmptyNodeID, ErrInvalidNodeID
	}
	var id NodeID
	copy(id[:], b)
	return id, nil
}

// ParseNodeID 从字符串解析 NodeID
//
// 支持两种格式：
//   - 64 个十六进制字符（可带 0x 前缀）
//   - Base58 编码
//
// 示例：
//
//	id, err := ParseNodeID("a448f24c6d18e575...")
//	id, err := ParseNodeID("BzF4nK2...")
func ParseNodeID(s string) (NodeID, error) {
	if s == "" {
		return EmptyNodeID, ErrEmptyNodeID
	}

	h := strings.TrimPrefix(s, "0x")
	if len(h) == 2*NodeIDSize {
		if b, err := hex.DecodeString(h); err == nil {
			return NodeIDFromBytes(b)
		}
	}

	// 尝试 Base58 解码
	b, err := base58.Decode(s)
	if err != nil {
		return EmptyNodeID, ErrInvalidNodeID
	}
	return NodeIDFromBytes(b)
}
