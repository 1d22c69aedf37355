package config

import (
	"fmt"
	"math"
	"time"
)

// DNSConfig TXT 记录配置
type DNSConfig struct {
	// Name 记录所在的域名
	Name string `json:"name,omitempty"`

	// TTL 生存时间
	TTL Duration `json:"ttl"`
}

// DefaultDNSConfig 返回默认 DNS 配置
func DefaultDNSConfig() DNSConfig {
	return DNSConfig{
		TTL: Duration(time.Hour),
	}
}

// Validate 验证 DNS 配置
func (c DNSConfig) Validate() error {
	ttl := c.TTL.Duration()
	if ttl < 0 || ttl/time.Second > math.MaxUint32 {
		return fmt.Errorf("%w: %s", ErrInvalidTTL, ttl)
	}
	return nil
}

// TTLSeconds 返回以秒为单位的生存时间
func (c DNSConfig) TTLSeconds() uint32 {
	return uint32(c.TTL.Duration() / time.Second)
}
