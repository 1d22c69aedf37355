package enraddr

import (
	"fmt"
	"net"

	enr "github.com/dep2p/go-enr"
)

// Attributes 读取记录属性所需的最小接口
//
// *enr.Record 满足该接口。
type Attributes interface {
	Get(key string) ([]byte, bool)
	GetUint(key string) (uint64, error)
}

// Setter 写入记录属性所需的最小接口
//
// *enr.Builder 满足该接口。
type Setter interface {
	Set(key string, value []byte) error
	SetUint(key string, v uint64) error
}

// ============================================================================
//                              地址
// ============================================================================

// IP4 读取 "ip" 属性
func IP4(rec Attributes) (net.IP, error) {
	return readIP(rec, enr.KeyIP, net.IPv4len)
}

// IP6 读取 "ip6" 属性
func IP6(rec Attributes) (net.IP, error) {
	return readIP(rec, enr.KeyIP6, net.IPv6len)
}

func readIP(rec Attributes, key string, size int) (net.IP, error) {
	v, ok := rec.Get(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", enr.ErrNotFound, key)
	}
	if len(v) != size {
		return nil, fmt.Errorf("%w: %q has %d bytes, want %d", ErrBadLength, key, len(v), size)
	}
	ip := make(net.IP, size)
	copy(ip, v)
	return ip, nil
}

// ============================================================================
//                              端口
// ============================================================================

// TCP 读取 "tcp" 属性
func TCP(rec Attributes) (uint16, error) { return readPort(rec, enr.KeyTCP) }

// UDP 读取 "udp" 属性
func UDP(rec Attributes) (uint16, error) { return readPort(rec, enr.KeyUDP) }

// TCP6 读取 "tcp6" 属性，缺省时回退到 "tcp"
func TCP6(rec Attributes) (uint16, error) { return readPort6(rec, enr.KeyTCP6, enr.KeyTCP) }

// UDP6 读取 "udp6" 属性，缺省时回退到 "udp"
func UDP6(rec Attributes) (uint16, error) { return readPort6(rec, enr.KeyUDP6, enr.KeyUDP) }

func readPort(rec Attributes, key string) (uint16, error) {
	v, err := rec.GetUint(key)
	if err != nil {
		return 0, err
	}
	if v > 0xffff {
		return 0, fmt.Errorf("%w: %q = %d", ErrPortRange, key, v)
	}
	return uint16(v), nil
}

func readPort6(rec Attributes, key, fallback string) (uint16, error) {
	if _, ok := rec.Get(key); ok {
		return readPort(rec, key)
	}
	return readPort(rec, fallback)
}

// ============================================================================
//                              端点
// ============================================================================

// UDPAddr 返回记录的 UDP 端点，优先 IPv4
func UDPAddr(rec Attributes) (*net.UDPAddr, error) {
	ip, port, err := endpoint(rec, UDP, UDP6)
	if err != nil {
		return nil, err
	}
	return &net.UDPAddr{IP: ip, Port: int(port)}, nil
}

// TCPAddr 返回记录的 TCP 端点，优先 IPv4
func TCPAddr(rec Attributes) (*net.TCPAddr, error) {
	ip, port, err := endpoint(rec, TCP, TCP6)
	if err != nil {
		return nil, err
	}
	return &net.TCPAddr{IP: ip, Port: int(port)}, nil
}

type portFunc func(Attributes) (uint16, error)

func endpoint(rec Attributes, port4, port6 portFunc) (net.IP, uint16, error) {
	if ip, err := IP4(rec); err == nil {
		if p, err := port4(rec); err == nil {
			return ip, p, nil
		}
	}
	if ip, err := IP6(rec); err == nil {
		if p, err := port6(rec); err == nil {
			return ip, p, nil
		}
	}
	return nil, 0, ErrNoEndpoint
}

// ============================================================================
//                              Builder 辅助
// ============================================================================

// SetIP 按地址族写入 "ip" 或 "ip6"
func SetIP(b Setter, ip net.IP) error {
	if ip4 := ip.To4(); ip4 != nil {
		return b.Set(enr.KeyIP, ip4)
	}
	if ip6 := ip.To16(); ip6 != nil {
		return b.Set(enr.KeyIP6, ip6)
	}
	return fmt.Errorf("%w: %d bytes", ErrBadLength, len(ip))
}

// SetTCP 写入 ip 所在地址族的 TCP 端口
func SetTCP(b Setter, ip net.IP, port uint16) error {
	return setPort(b, ip, enr.KeyTCP, enr.KeyTCP6, port)
}

// SetUDP 写入 ip 所在地址族的 UDP 端口
func SetUDP(b Setter, ip net.IP, port uint16) error {
	return setPort(b, ip, enr.KeyUDP, enr.KeyUDP6, port)
}

func setPort(b Setter, ip net.IP, key4, key6 string, port uint16) error {
	switch {
	case ip.To4() != nil:
		return b.SetUint(key4, uint64(port))
	case ip.To16() != nil:
		return b.SetUint(key6, uint64(port))
	default:
		return fmt.Errorf("%w: %d bytes", ErrBadLength, len(ip))
	}
}
