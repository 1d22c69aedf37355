package config

import (
	"os"
	"strconv"
	"time"

	"github.com/dep2p/go-enr/internal/util/logger"
)

// 环境变量名
const (
	EnvScheme           = "ENR_SCHEME"
	EnvKeyName          = "ENR_KEY_NAME"
	EnvKeystoreDir      = "ENR_KEYSTORE"
	EnvKeystorePassword = "ENR_KEYSTORE_PASSWORD"
	EnvIP               = "ENR_IP"
	EnvIP6              = "ENR_IP6"
	EnvTCP              = "ENR_TCP"
	EnvUDP              = "ENR_UDP"
	EnvDNSName          = "ENR_DNS_NAME"
	EnvDNSTTL           = "ENR_DNS_TTL"
)

// ApplyEnv 用 ENR_* 环境变量覆盖配置
//
// 无法解析的端口和 TTL 会被忽略，保持原值。
func (c *Config) ApplyEnv() {
	setString(&c.Identity.Scheme, EnvScheme)
	setString(&c.Identity.KeyName, EnvKeyName)
	setString(&c.Identity.KeystoreDir, EnvKeystoreDir)
	setString(&c.Identity.Password, EnvKeystorePassword)
	setString(&c.Record.IP, EnvIP)
	setString(&c.Record.IP6, EnvIP6)
	setPort(&c.Record.TCP, EnvTCP)
	setPort(&c.Record.UDP, EnvUDP)
	setString(&c.DNS.Name, EnvDNSName)
	if v := os.Getenv(EnvDNSTTL); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.DNS.TTL = Duration(d)
		}
	}
	setString(&c.Log.Level, logger.EnvLogLevel)
	setString(&c.Log.Format, logger.EnvLogFormat)
	if v := os.Getenv(logger.EnvLogAddSource); v != "" {
		c.Log.AddSource = v != "false" && v != "0"
	}
}

func setString(dst *string, env string) {
	if v, ok := os.LookupEnv(env); ok && v != "" {
		*dst = v
	}
}

func setPort(dst *uint16, env string) {
	if v := os.Getenv(env); v != "" {
		if p, err := strconv.ParseUint(v, 10, 16); err == nil {
			*dst = uint16(p)
		}
	}
}
