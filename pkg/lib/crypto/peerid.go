package crypto

import (
	"github.com/mr-tron/base58"
	mh "github.com/multiformats/go-multihash"
)

// 序列化公钥不超过该长度时使用 identity 多哈希，否则使用 SHA2-256
const maxInlineKeyLength = 42

// ============================================================================
//                              PeerID 派生
// ============================================================================

// PublicKeyMultihash 返回公钥的 libp2p 多哈希
//
// 对 MarshalPublicKey 的输出求哈希；Ed25519 和 Secp256k1 公钥都足够短，
// 因此得到的是内联公钥的 identity 多哈希。
func PublicKeyMultihash(pub PublicKey) (mh.Multihash, error) {
	data, err := MarshalPublicKey(pub)
	if err != nil {
		return nil, err
	}
	code := uint64(mh.SHA2_256)
	if len(data) <= maxInlineKeyLength {
		code = mh.IDENTITY
	}
	return mh.Sum(data, code, -1)
}

// PeerIDFromPublicKey 从公钥派生 libp2p 节点标识
//
// 派生算法：Base58(Multihash(序列化公钥))
func PeerIDFromPublicKey(pub PublicKey) (string, error) {
	hash, err := PublicKeyMultihash(pub)
	if err != nil {
		return "", err
	}
	return base58.Encode(hash), nil
}

// PeerIDFromPrivateKey 从私钥派生节点标识
func PeerIDFromPrivateKey(priv PrivateKey) (string, error) {
	if priv == nil {
		return "", ErrNilPrivateKey
	}
	return PeerIDFromPublicKey(priv.GetPublic())
}

// VerifyPeerID 验证公钥是否对应给定的节点标识
func VerifyPeerID(pub PublicKey, id string) (bool, error) {
	derived, err := PeerIDFromPublicKey(pub)
	if err != nil {
		return false, err
	}
	return derived == id, nil
}
