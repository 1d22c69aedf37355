package crypto

import (
	"fmt"
	"io"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

// Secp256k1 密钥常量
const (
	// Secp256k1PrivateKeySize Secp256k1 私钥大小（32 字节）
	Secp256k1PrivateKeySize = secp256k1.PrivKeyBytesLen
	// Secp256k1PublicKeySize Secp256k1 压缩公钥大小（33 字节）
	Secp256k1PublicKeySize = secp256k1.PubKeyBytesLenCompressed
	// Secp256k1UncompressedPublicKeySize Secp256k1 未压缩公钥大小（65 字节）
	Secp256k1UncompressedPublicKeySize = secp256k1.PubKeyBytesLenUncompressed
	// Secp256k1SignatureSize Secp256k1 签名大小（64 字节 R || S）
	Secp256k1SignatureSize = 64
)

// ============================================================================
//                              Secp256k1PublicKey
// ============================================================================

// Secp256k1PublicKey Secp256k1 公钥实现
type Secp256k1PublicKey struct {
	k *secp256k1.PublicKey
}

// Raw 返回压缩格式的公钥字节（33 字节）
func (k *Secp256k1PublicKey) Raw() ([]byte, error) {
	return k.k.SerializeCompressed(), nil
}

// RawUncompressed 返回未压缩格式的公钥字节（65 字节，0x04 前缀）
func (k *Secp256k1PublicKey) RawUncompressed() []byte {
	return k.k.SerializeUncompressed()
}

// Type 返回密钥类型
func (k *Secp256k1PublicKey) Type() KeyType {
	return KeyTypeSecp256k1
}

// Equals 比较两个公钥是否相等
func (k *Secp256k1PublicKey) Equals(other Key) bool {
	sk, ok := other.(*Secp256k1PublicKey)
	if !ok {
		return KeyEqual(k, other)
	}
	return k.k.IsEqual(sk.k)
}

// Verify 验证 data 的 keccak256 摘要上的签名
//
// 签名格式为 64 字节：R (32 字节) + S (32 字节)
func (k *Secp256k1PublicKey) Verify(data, sig []byte) (bool, error) {
	return k.VerifyHash(Keccak256(data), sig), nil
}

// VerifyHash 验证 32 字节摘要上的签名
//
// 以下情况均返回 false：签名长度错误、R 或 S 为零或不小于曲线阶、
// S 大于 N/2（可延展签名）。
func (k *Secp256k1PublicKey) VerifyHash(hash, sig []byte) bool {
	if len(hash) != HashSize || len(sig) != Secp256k1SignatureSize {
		return false
	}

	var r, s secp256k1.ModNScalar
	if overflow := r.SetByteSlice(sig[:32]); overflow || r.IsZero() {
		return false
	}
	if overflow := s.SetByteSlice(sig[32:]); overflow || s.IsZero() {
		return false
	}
	// 拒绝高 S 值
	if s.IsOverHalfOrder() {
		return false
	}

	return ecdsa.NewSignature(&r, &s).Verify(hash, k.k)
}

// ============================================================================
//                              Secp256k1PrivateKey
// ============================================================================

// Secp256k1PrivateKey Secp256k1 私钥实现
type Secp256k1PrivateKey struct {
	k      *secp256k1.PrivateKey
	zeroed bool
}

// Raw 返回原始私钥字节（32 字节）
//
// 返回的是副本，调用者负责清零。
func (k *Secp256k1PrivateKey) Raw() ([]byte, error) {
	if k.zeroed {
		return nil, ErrKeyZeroed
	}
	return k.k.Serialize(), nil
}

// Type 返回密钥类型
func (k *Secp256k1PrivateKey) Type() KeyType {
	return KeyTypeSecp256k1
}

// Equals 比较两个私钥是否相等
func (k *Secp256k1PrivateKey) Equals(other Key) bool {
	return KeyEqual(k, other)
}

// GetPublic 返回对应的公钥
func (k *Secp256k1PrivateKey) GetPublic() PublicKey {
	return &Secp256k1PublicKey{k: k.k.PubKey()}
}

// Sign 对 data 的 keccak256 摘要签名
//
// 返回 64 字节签名：R (32 字节) + S (32 字节)
func (k *Secp256k1PrivateKey) Sign(data []byte) ([]byte, error) {
	return k.SignHash(Keccak256(data))
}

// SignHash 对 32 字节摘要签名
//
// 使用 RFC6979 确定性随机数，S 规范化为低值，相同输入产生相同签名。
func (k *Secp256k1PrivateKey) SignHash(hash []byte) ([]byte, error) {
	if k.zeroed {
		return nil, ErrKeyZeroed
	}
	if len(hash) != HashSize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidHashSize, HashSize, len(hash))
	}

	// 紧凑格式为 [恢复码][R][S]，去掉恢复码
	compact := ecdsa.SignCompact(k.k, hash, false)
	sig := make([]byte, Secp256k1SignatureSize)
	copy(sig, compact[1:])
	return sig, nil
}

// Zero 清零私钥标量
func (k *Secp256k1PrivateKey) Zero() {
	if k.zeroed {
		return
	}
	k.k.Zero()
	k.zeroed = true
}

// ============================================================================
//                              工厂函数
// ============================================================================

// GenerateSecp256k1Key 生成新的 Secp256k1 密钥对
func GenerateSecp256k1Key(src io.Reader) (PrivateKey, PublicKey, error) {
	buf := make([]byte, Secp256k1PrivateKeySize)
	defer Zero(buf)

	for {
		if _, err := io.ReadFull(src, buf); err != nil {
			return nil, nil, err
		}

		// 确保私钥在有效范围内 [1, n-1]
		var d secp256k1.ModNScalar
		if overflow := d.SetByteSlice(buf); overflow || d.IsZero() {
			continue
		}

		priv := &Secp256k1PrivateKey{k: secp256k1.NewPrivateKey(&d)}
		d.Zero()
		return priv, priv.GetPublic(), nil
	}
}

// UnmarshalSecp256k1PublicKey 从字节反序列化 Secp256k1 公钥
//
// 支持压缩格式（33 字节）和未压缩格式（65 字节），点必须在曲线上。
func UnmarshalSecp256k1PublicKey(data []byte) (PublicKey, error) {
	switch len(data) {
	case Secp256k1PublicKeySize, Secp256k1UncompressedPublicKeySize:
	default:
		return nil, fmt.Errorf("%w: expected %d or %d bytes, got %d",
			ErrInvalidKeySize, Secp256k1PublicKeySize, Secp256k1UncompressedPublicKeySize, len(data))
	}

	pub, err := secp256k1.ParsePubKey(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	return &Secp256k1PublicKey{k: pub}, nil
}

// UnmarshalSecp256k1PrivateKey 从字节反序列化 Secp256k1 私钥
func UnmarshalSecp256k1PrivateKey(data []byte) (PrivateKey, error) {
	if len(data) != Secp256k1PrivateKeySize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d",
			ErrInvalidKeySize, Secp256k1PrivateKeySize, len(data))
	}

	// 验证私钥在有效范围内
	var d secp256k1.ModNScalar
	if overflow := d.SetByteSlice(data); overflow || d.IsZero() {
		return nil, ErrInvalidPrivateKey
	}

	priv := &Secp256k1PrivateKey{k: secp256k1.NewPrivateKey(&d)}
	d.Zero()
	return priv, nil
}

// UnmarshalSecp256k1PrivateKeyZeroing 反序列化私钥并清零 data
func UnmarshalSecp256k1PrivateKeyZeroing(data []byte) (PrivateKey, error) {
	defer Zero(data)
	return UnmarshalSecp256k1PrivateKey(data)
}
