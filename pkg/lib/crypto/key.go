package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"io"
)

// ============================================================================
//                              密钥类型定义
// ============================================================================

// KeyType 密钥类型
//
// 取值写入密钥文件头部（单字节），不可更改：
//   - Unspecified = 0
//   - Ed25519 = 2
//   - Secp256k1 = 3
type KeyType int

const (
	// KeyTypeUnspecified 未指定密钥类型
	KeyTypeUnspecified KeyType = 0
	// KeyTypeEd25519 Ed25519 密钥
	KeyTypeEd25519 KeyType = 2
	// KeyTypeSecp256k1 Secp256k1 密钥（v4 身份方案）
	KeyTypeSecp256k1 KeyType = 3
)

// String 返回密钥类型名称
func (kt KeyType) String() string {
	switch kt {
	case KeyTypeUnspecified:
		return "Unspecified"
	case KeyTypeEd25519:
		return "Ed25519"
	case KeyTypeSecp256k1:
		return "Secp256k1"
	default:
		return "Unknown"
	}
}

// KeyTypes 支持的密钥类型列表
var KeyTypes = []KeyType{
	KeyTypeSecp256k1,
	KeyTypeEd25519,
}

// ============================================================================
//                              密钥接口定义
// ============================================================================

// Key 基础密钥接口
type Key interface {
	// Raw 返回原始密钥字节
	Raw() ([]byte, error)

	// Type 返回密钥类型
	Type() KeyType

	// Equals 比较两个密钥是否相等
	Equals(Key) bool
}

// PublicKey 公钥接口
type PublicKey interface {
	Key

	// Verify 使用此公钥验证签名
	//
	// 签名格式错误时返回 false 而不是错误。
	Verify(data, sig []byte) (bool, error)
}

// PrivateKey 私钥接口
type PrivateKey interface {
	Key

	// Sign 使用此私钥签名数据
	Sign(data []byte) ([]byte, error)

	// GetPublic 返回对应的公钥
	GetPublic() PublicKey

	// Zero 用零覆盖私钥材料
	//
	// 清零后 Sign 和 Raw 返回 ErrKeyZeroed。
	Zero()
}

// ============================================================================
//                              密钥工厂函数
// ============================================================================

// GenerateKeyPair 生成密钥对
//
// 使用系统默认的加密安全随机源。
func GenerateKeyPair(keyType KeyType) (PrivateKey, PublicKey, error) {
	return GenerateKeyPairWithReader(keyType, rand.Reader)
}

// GenerateKeyPairWithReader 使用指定的随机源生成密钥对
//
// 参数：
//   - keyType: 密钥类型
//   - reader: 随机源（用于测试时的确定性生成）
func GenerateKeyPairWithReader(keyType KeyType, reader io.Reader) (PrivateKey, PublicKey, error) {
	switch keyType {
	case KeyTypeEd25519:
		return GenerateEd25519Key(reader)
	case KeyTypeSecp256k1:
		return GenerateSecp256k1Key(reader)
	default:
		return nil, nil, ErrBadKeyType
	}
}

// ============================================================================
//                              反序列化函数
// ============================================================================

// PubKeyUnmarshaller 公钥反序列化函数类型
type PubKeyUnmarshaller func(data []byte) (PublicKey, error)

// PrivKeyUnmarshaller 私钥反序列化函数类型
type PrivKeyUnmarshaller func(data []byte) (PrivateKey, error)

// PubKeyUnmarshallers 公钥反序列化函数映射
var PubKeyUnmarshallers = map[KeyType]PubKeyUnmarshaller{
	KeyTypeEd25519:   UnmarshalEd25519PublicKey,
	KeyTypeSecp256k1: UnmarshalSecp256k1PublicKey,
}

// PrivKeyUnmarshallers 私钥反序列化函数映射
var PrivKeyUnmarshallers = map[KeyType]PrivKeyUnmarshaller{
	KeyTypeEd25519:   UnmarshalEd25519PrivateKey,
	KeyTypeSecp256k1: UnmarshalSecp256k1PrivateKey,
}

// UnmarshalPublicKey 从字节反序列化公钥
func UnmarshalPublicKey(keyType KeyType, data []byte) (PublicKey, error) {
	um, ok := PubKeyUnmarshallers[keyType]
	if !ok {
		return nil, ErrBadKeyType
	}
	return um(data)
}

// UnmarshalPrivateKey 从字节反序列化私钥
//
// data 不会被修改；需要清零时使用 UnmarshalPrivateKeyZeroing。
func UnmarshalPrivateKey(keyType KeyType, data []byte) (PrivateKey, error) {
	um, ok := PrivKeyUnmarshallers[keyType]
	if !ok {
		return nil, ErrBadKeyType
	}
	return um(data)
}

// UnmarshalPrivateKeyZeroing 从字节反序列化私钥，并在返回前清零 data
//
// 无论成功与否 data 都会被清零。
func UnmarshalPrivateKeyZeroing(keyType KeyType, data []byte) (PrivateKey, error) {
	defer Zero(data)
	return UnmarshalPrivateKey(keyType, data)
}

// ClonePrivateKey 复制一个私钥
//
// 返回的副本与原密钥互不影响，各自负责清零；中间缓冲区在返回前清零。
func ClonePrivateKey(k PrivateKey) (PrivateKey, error) {
	if k == nil {
		return nil, ErrNilPrivateKey
	}
	raw, err := k.Raw()
	if err != nil {
		return nil, err
	}
	return UnmarshalPrivateKeyZeroing(k.Type(), raw)
}

// ============================================================================
//                              辅助函数
// ============================================================================

// KeyEqual 使用常量时间比较两个密钥是否相等
func KeyEqual(k1, k2 Key) bool {
	if k1 == nil || k2 == nil {
		return false
	}
	if k1.Type() != k2.Type() {
		return false
	}

	b1, err1 := k1.Raw()
	b2, err2 := k2.Raw()
	if err1 != nil || err2 != nil {
		return false
	}
	return subtle.ConstantTimeCompare(b1, b2) == 1
}
