package crypto

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// ============================================================================
//                              序列化格式
// ============================================================================

// 公钥按 libp2p crypto.pb 的 PublicKey 消息序列化：
//
//	message PublicKey {
//	    KeyType Type = 1;   // Ed25519 = 1, Secp256k1 = 2
//	    bytes   Data = 2;   // Raw() 的输出，secp256k1 为 33 字节压缩格式
//	}
//
// 节点标识派生（见 peerid.go）对这个字节序列求多哈希。

// libp2p crypto.pb 中的 KeyType 取值
const (
	pbKeyTypeEd25519   = 1
	pbKeyTypeSecp256k1 = 2
)

func pbKeyType(kt KeyType) (uint64, bool) {
	switch kt {
	case KeyTypeEd25519:
		return pbKeyTypeEd25519, true
	case KeyTypeSecp256k1:
		return pbKeyTypeSecp256k1, true
	default:
		return 0, false
	}
}

func keyTypeFromPB(v uint64) (KeyType, bool) {
	switch v {
	case pbKeyTypeEd25519:
		return KeyTypeEd25519, true
	case pbKeyTypeSecp256k1:
		return KeyTypeSecp256k1, true
	default:
		return KeyTypeUnspecified, false
	}
}

// ============================================================================
//                              公钥序列化
// ============================================================================

// MarshalPublicKey 序列化公钥
func MarshalPublicKey(key PublicKey) ([]byte, error) {
	if key == nil {
		return nil, ErrNilPublicKey
	}
	kt, ok := pbKeyType(key.Type())
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrMarshalFailed, key.Type())
	}
	raw, err := key.Raw()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMarshalFailed, err)
	}

	buf := protowire.AppendTag(nil, 1, protowire.VarintType)
	buf = protowire.AppendVarint(buf, kt)
	buf = protowire.AppendTag(buf, 2, protowire.BytesType)
	buf = protowire.AppendBytes(buf, raw)
	return buf, nil
}

// UnmarshalPublicKeyBytes 从 MarshalPublicKey 的输出还原公钥
//
// 两个字段都必须出现且各出现一次，不接受未知字段。
func UnmarshalPublicKeyBytes(data []byte) (PublicKey, error) {
	var (
		kt      KeyType
		keyData []byte
		seen    [3]bool
	)
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, fmt.Errorf("%w: %v", ErrUnmarshalFailed, protowire.ParseError(n))
		}
		data = data[n:]
		if num < 1 || num > 2 || seen[num] {
			return nil, fmt.Errorf("%w: unexpected field %d", ErrUnmarshalFailed, num)
		}
		seen[num] = true

		switch {
		case num == 1 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return nil, fmt.Errorf("%w: %v", ErrUnmarshalFailed, protowire.ParseError(n))
			}
			data = data[n:]
			t, ok := keyTypeFromPB(v)
			if !ok {
				return nil, fmt.Errorf("%w: key type %d", ErrBadKeyType, v)
			}
			kt = t
		case num == 2 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return nil, fmt.Errorf("%w: %v", ErrUnmarshalFailed, protowire.ParseError(n))
			}
			data = data[n:]
			keyData = v
		default:
			return nil, fmt.Errorf("%w: field %d has wire type %d", ErrUnmarshalFailed, num, typ)
		}
	}
	if !seen[1] || !seen[2] {
		return nil, fmt.Errorf("%w: missing field", ErrUnmarshalFailed)
	}
	return UnmarshalPublicKey(kt, keyData)
}
