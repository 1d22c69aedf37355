package config

import (
	"encoding/hex"
	"fmt"
	"net"
	"sort"

	"go.uber.org/multierr"

	enr "github.com/dep2p/go-enr"
)

// RecordConfig 记录内容配置
//
// 端口为 0 表示不写入对应属性。
type RecordConfig struct {
	// Seq 签名时使用的序列号，0 表示在上一条记录基础上递增
	Seq uint64 `json:"seq"`

	// IP IPv4 地址
	IP string `json:"ip,omitempty"`

	// IP6 IPv6 地址
	IP6 string `json:"ip6,omitempty"`

	TCP  uint16 `json:"tcp,omitempty"`
	UDP  uint16 `json:"udp,omitempty"`
	TCP6 uint16 `json:"tcp6,omitempty"`
	UDP6 uint16 `json:"udp6,omitempty"`

	// Attrs 自定义属性，值为十六进制字节串
	Attrs map[string]string `json:"attrs,omitempty"`
}

// DefaultRecordConfig 返回默认记录配置
func DefaultRecordConfig() RecordConfig {
	return RecordConfig{}
}

// Validate 验证记录配置
func (c RecordConfig) Validate() error {
	var err error
	if c.IP != "" {
		if ip := net.ParseIP(c.IP); ip == nil || ip.To4() == nil {
			err = multierr.Append(err, fmt.Errorf("%w: ip %q", ErrInvalidIP, c.IP))
		}
	}
	if c.IP6 != "" {
		if ip := net.ParseIP(c.IP6); ip == nil || ip.To4() != nil {
			err = multierr.Append(err, fmt.Errorf("%w: ip6 %q", ErrInvalidIP, c.IP6))
		}
	}
	for _, k := range c.AttrKeys() {
		switch {
		case k == "":
			err = multierr.Append(err, fmt.Errorf("%w: empty key", ErrInvalidAttr))
		case enr.IsReservedKey(k):
			err = multierr.Append(err, fmt.Errorf("%w: %q is a predefined key", ErrInvalidAttr, k))
		default:
			if _, herr := hex.DecodeString(c.Attrs[k]); herr != nil {
				err = multierr.Append(err, fmt.Errorf("%w: %q: %w", ErrInvalidAttr, k, herr))
			}
		}
	}
	return err
}

// AttrKeys 返回自定义属性键（升序）
func (c RecordConfig) AttrKeys() []string {
	keys := make([]string, 0, len(c.Attrs))
	for k := range c.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// AttrValue 返回解码后的自定义属性值
func (c RecordConfig) AttrValue(key string) ([]byte, error) {
	v, ok := c.Attrs[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q not set", ErrInvalidAttr, key)
	}
	return hex.DecodeString(v)
}
