// Package config 提供节点记录工具的配置管理
//
// 配置分为四部分：
//   - Identity: 身份方案与密钥存储
//   - Record: 写入记录的地址、端口与自定义属性
//   - DNS: TXT 记录名称与生存时间
//   - Log: 日志级别与格式
//
// 使用示例：
//
//	cfg, err := config.LoadFile("enr.json")
//	if err != nil {
//	    return err
//	}
//	cfg.ApplyEnv()
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/multierr"
)

// Config 完整配置
type Config struct {
	// Identity 身份配置
	Identity IdentityConfig `json:"identity"`

	// Record 记录内容配置
	Record RecordConfig `json:"record"`

	// DNS TXT 记录配置
	DNS DNSConfig `json:"dns"`

	// Log 日志配置
	Log LogConfig `json:"log"`
}

// NewConfig 创建默认配置
func NewConfig() *Config {
	return &Config{
		Identity: DefaultIdentityConfig(),
		Record:   DefaultRecordConfig(),
		DNS:      DefaultDNSConfig(),
		Log:      DefaultLogConfig(),
	}
}

// Validate 验证配置
//
// 检查所有子配置，返回的错误汇总了全部问题。
func (c *Config) Validate() error {
	if c == nil {
		return ErrNilConfig
	}
	return multierr.Combine(
		c.Identity.Validate(),
		c.Record.Validate(),
		c.DNS.Validate(),
		c.Log.Validate(),
	)
}

// FromJSON 从 JSON 数据创建配置
//
// 未出现的字段保留默认值。
func FromJSON(data []byte) (*Config, error) {
	cfg := NewConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// LoadFile 从 JSON 文件加载配置
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: 路径由调用者提供
	if err != nil {
		return nil, err
	}
	return FromJSON(data)
}

// ToJSON 序列化配置
func (c *Config) ToJSON() ([]byte, error) {
	return json.MarshalIndent(c, "", "  ")
}

// Clone 深拷贝配置
func (c *Config) Clone() *Config {
	out := *c
	if c.Record.Attrs != nil {
		out.Record.Attrs = make(map[string]string, len(c.Record.Attrs))
		for k, v := range c.Record.Attrs {
			out.Record.Attrs[k] = v
		}
	}
	return &out
}
