package config

import (
	"fmt"
	"strings"
)

// IdentityConfig 身份配置
type IdentityConfig struct {
	// Scheme 身份方案，可选 "v4"、"ed25519"
	Scheme string `json:"scheme"`

	// KeyName 密钥在密钥库中的名称
	KeyName string `json:"key_name"`

	// KeystoreDir 密钥库目录，为空时使用内存密钥库
	KeystoreDir string `json:"keystore_dir"`

	// AutoGenerate 密钥不存在时是否自动生成
	AutoGenerate bool `json:"auto_generate"`

	// Password 密钥库密码，只从环境变量读取
	Password string `json:"-"`
}

// DefaultIdentityConfig 返回默认身份配置
func DefaultIdentityConfig() IdentityConfig {
	return IdentityConfig{
		Scheme:       "v4",
		KeyName:      "node",
		KeystoreDir:  "",
		AutoGenerate: true,
	}
}

// Validate 验证身份配置
func (c IdentityConfig) Validate() error {
	switch c.Scheme {
	case "v4", "ed25519":
	default:
		return fmt.Errorf("%w: %q (must be v4 or ed25519)", ErrInvalidScheme, c.Scheme)
	}
	if c.KeyName == "" || c.KeyName == "." || c.KeyName == ".." || strings.ContainsAny(c.KeyName, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidKeyName, c.KeyName)
	}
	return nil
}

// WithScheme 设置身份方案
func (c IdentityConfig) WithScheme(scheme string) IdentityConfig {
	c.Scheme = scheme
	return c
}

// WithKeystoreDir 设置密钥库目录
func (c IdentityConfig) WithKeystoreDir(dir string) IdentityConfig {
	c.KeystoreDir = dir
	return c
}
