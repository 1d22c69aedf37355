package enr

import (
	"fmt"
	"io"

	"github.com/dep2p/go-enr/pkg/lib/crypto"
	"github.com/dep2p/go-enr/pkg/types"
)

// Ed25519ID 可选身份方案 "ed25519"
//
//   - 公钥：32 字节，保存在 "ed25519" 属性
//   - 签名：content 上的 64 字节 ed25519 签名
//   - NodeID：keccak256(公钥)
//
// 默认方案表不包含本方案，需要通过 NewSchemeMap 或 AllSchemes 显式启用。
//
// 方案按 "id" 的值选择：以 id="v4" 签名但只携带 "ed25519" 公钥的记录
// 不会按 ed25519 验证，而是以 ErrMissingPublicKey 拒绝。
type Ed25519ID struct{}

var _ IdentityScheme = Ed25519ID{}

// Name 返回 "ed25519"
func (Ed25519ID) Name() string { return "ed25519" }

// KeyName 返回 "ed25519"
func (Ed25519ID) KeyName() string { return KeyEd25519 }

// GenerateKey 生成 ed25519 私钥
func (Ed25519ID) GenerateKey(rand io.Reader) (crypto.PrivateKey, error) {
	priv, _, err := crypto.GenerateEd25519Key(rand)
	return priv, err
}

// EncodePublicKey 返回 32 字节公钥
func (Ed25519ID) EncodePublicKey(pub crypto.PublicKey) ([]byte, error) {
	k, ok := pub.(*crypto.Ed25519PublicKey)
	if !ok || k == nil {
		return nil, fmt.Errorf("%w: ed25519 scheme requires an ed25519 key", ErrSchemeKeyMismatch)
	}
	return k.Raw()
}

// Sign 对 content 签名
func (Ed25519ID) Sign(priv crypto.PrivateKey, content []byte) ([]byte, error) {
	k, ok := priv.(*crypto.Ed25519PrivateKey)
	if !ok || k == nil {
		return nil, fmt.Errorf("%w: ed25519 scheme requires an ed25519 key", ErrSchemeKeyMismatch)
	}
	return k.Sign(content)
}

// Verify 验证签名
func (Ed25519ID) Verify(pub, content, sig []byte) bool {
	k, err := crypto.UnmarshalEd25519PublicKey(pub)
	if err != nil {
		return false
	}
	ok, err := k.Verify(content, sig)
	return err == nil && ok
}

// NodeID 派生节点标识
func (Ed25519ID) NodeID(pub []byte) (types.NodeID, error) {
	if len(pub) != crypto.Ed25519PublicKeySize {
		return types.EmptyNodeID, fmt.Errorf("%w: ed25519 public key must be %d bytes, got %d",
			crypto.ErrInvalidPublicKey, crypto.Ed25519PublicKeySize, len(pub))
	}
	return types.NodeID(crypto.Keccak256Hash(pub)), nil
}
