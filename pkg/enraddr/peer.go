package enraddr

import (
	"fmt"

	"github.com/ipfs/go-cid"
	"github.com/mr-tron/base58"
	ma "github.com/multiformats/go-multiaddr"
	mh "github.com/multiformats/go-multihash"

	enr "github.com/dep2p/go-enr"
	"github.com/dep2p/go-enr/pkg/lib/crypto"
)

// ============================================================================
//                              libp2p 节点标识
// ============================================================================

// PeerID 返回记录公钥对应的 libp2p 节点标识（Base58）
func PeerID(rec *enr.Record) (string, error) {
	hash, err := peerMultihash(rec)
	if err != nil {
		return "", err
	}
	return base58.Encode(hash), nil
}

// PeerCID 返回 libp2p-key 编解码的 CIDv1
func PeerCID(rec *enr.Record) (cid.Cid, error) {
	hash, err := peerMultihash(rec)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Libp2pKey, hash), nil
}

// peerMultihash 还原记录公钥并按 libp2p 规则求多哈希
func peerMultihash(rec *enr.Record) (mh.Multihash, error) {
	var kt crypto.KeyType
	switch rec.IdentityScheme().KeyName() {
	case enr.KeySecp256k1:
		kt = crypto.KeyTypeSecp256k1
	case enr.KeyEd25519:
		kt = crypto.KeyTypeEd25519
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, rec.IdentityScheme().Name())
	}

	pub, err := crypto.UnmarshalPublicKey(kt, rec.PublicKey())
	if err != nil {
		return nil, err
	}
	return crypto.PublicKeyMultihash(pub)
}

// ============================================================================
//                              多地址
// ============================================================================

// Multiaddrs 返回记录中所有地址与端口组合的多地址
//
// 顺序为 ip4/tcp、ip4/udp、ip6/tcp、ip6/udp；身份方案受支持时追加 /p2p/<peer-id>。
// 记录中没有地址时返回空切片。
func Multiaddrs(rec *enr.Record) ([]ma.Multiaddr, error) {
	suffix := ""
	if id, err := PeerID(rec); err == nil {
		suffix = "/p2p/" + id
	}

	var out []ma.Multiaddr
	add := func(family, ip, proto string, port uint16) error {
		a, err := ma.NewMultiaddr(fmt.Sprintf("/%s/%s/%s/%d%s", family, ip, proto, port, suffix))
		if err != nil {
			return err
		}
		out = append(out, a)
		return nil
	}

	ip4, err4 := IP4(rec)
	if err4 == nil {
		if p, err := TCP(rec); err == nil {
			if err := add("ip4", ip4.String(), "tcp", p); err != nil {
				return nil, err
			}
		}
		if p, err := UDP(rec); err == nil {
			if err := add("ip4", ip4.String(), "udp", p); err != nil {
				return nil, err
			}
		}
	}
	// 与 ip4 相同的 IPv4 映射地址不再重复输出
	if ip, err := IP6(rec); err == nil && !(err4 == nil && ip.Equal(ip4)) {
		if p, err := TCP6(rec); err == nil {
			if err := add("ip6", ip.String(), "tcp", p); err != nil {
				return nil, err
			}
		}
		if p, err := UDP6(rec); err == nil {
			if err := add("ip6", ip.String(), "udp", p); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}
