package enr

import (
	"fmt"
	"io"

	"github.com/dep2p/go-enr/pkg/lib/crypto"
	"github.com/dep2p/go-enr/pkg/types"
)

// V4ID 默认身份方案 "v4"
//
//   - 公钥：33 字节压缩 secp256k1 点，保存在 "secp256k1" 属性
//   - 签名：keccak256(content) 上的 64 字节 R || S（低 S，RFC6979）
//   - NodeID：keccak256(X || Y)，即未压缩公钥去掉 0x04 前缀后的摘要
type V4ID struct{}

var _ IdentityScheme = V4ID{}

// Name 返回 "v4"
func (V4ID) Name() string { return "v4" }

// KeyName 返回 "secp256k1"
func (V4ID) KeyName() string { return KeySecp256k1 }

// GenerateKey 生成 secp256k1 私钥
func (V4ID) GenerateKey(rand io.Reader) (crypto.PrivateKey, error) {
	priv, _, err := crypto.GenerateSecp256k1Key(rand)
	return priv, err
}

// EncodePublicKey 返回压缩公钥
func (V4ID) EncodePublicKey(pub crypto.PublicKey) ([]byte, error) {
	k, ok := pub.(*crypto.Secp256k1PublicKey)
	if !ok || k == nil {
		return nil, fmt.Errorf("%w: v4 requires a secp256k1 key", ErrSchemeKeyMismatch)
	}
	return k.Raw()
}

// Sign 对 content 签名
func (V4ID) Sign(priv crypto.PrivateKey, content []byte) ([]byte, error) {
	k, ok := priv.(*crypto.Secp256k1PrivateKey)
	if !ok || k == nil {
		return nil, fmt.Errorf("%w: v4 requires a secp256k1 key", ErrSchemeKeyMismatch)
	}
	return k.Sign(content)
}

// Verify 验证签名
func (V4ID) Verify(pub, content, sig []byte) bool {
	if len(pub) != crypto.Secp256k1PublicKeySize || len(sig) != crypto.Secp256k1SignatureSize {
		return false
	}
	k, err := crypto.UnmarshalSecp256k1PublicKey(pub)
	if err != nil {
		return false
	}
	ok, err := k.Verify(content, sig)
	return err == nil && ok
}

// NodeID 派生节点标识
func (V4ID) NodeID(pub []byte) (types.NodeID, error) {
	if len(pub) != crypto.Secp256k1PublicKeySize {
		return types.EmptyNodeID, fmt.Errorf("%w: v4 public key must be %d bytes, got %d",
			crypto.ErrInvalidPublicKey, crypto.Secp256k1PublicKeySize, len(pub))
	}
	k, err := crypto.UnmarshalSecp256k1PublicKey(pub)
	if err != nil {
		return types.EmptyNodeID, err
	}
	uncompressed := k.(*crypto.Secp256k1PublicKey).RawUncompressed()
	return types.NodeID(crypto.Keccak256Hash(uncompressed[1:])), nil
}
