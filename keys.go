package enr

// 预定义属性键
//
// 核心只解释 KeyID 和当前方案的公钥键，其余键的值均按不透明字节处理；
// 地址与端口的读取见 pkg/enraddr。
const (
	// KeyID 身份方案标签
	KeyID = "id"
	// KeySecp256k1 压缩 secp256k1 公钥（v4 方案）
	KeySecp256k1 = "secp256k1"
	// KeyEd25519 ed25519 公钥（ed25519 方案）
	KeyEd25519 = "ed25519"
	// KeyIP IPv4 地址，4 字节
	KeyIP = "ip"
	// KeyIP6 IPv6 地址，16 字节
	KeyIP6 = "ip6"
	// KeyTCP TCP 端口，大端整数
	KeyTCP = "tcp"
	// KeyTCP6 IPv6 专用 TCP 端口
	KeyTCP6 = "tcp6"
	// KeyUDP UDP 端口，大端整数
	KeyUDP = "udp"
	// KeyUDP6 IPv6 专用 UDP 端口
	KeyUDP6 = "udp6"
)

// ReservedKeys 预定义属性键列表（升序）
var ReservedKeys = []string{
	KeyEd25519,
	KeyID,
	KeyIP,
	KeyIP6,
	KeySecp256k1,
	KeyTCP,
	KeyTCP6,
	KeyUDP,
	KeyUDP6,
}

// IsReservedKey 检查 key 是否为预定义属性键
func IsReservedKey(key string) bool {
	for _, k := range ReservedKeys {
		if k == key {
			return true
		}
	}
	return false
}
