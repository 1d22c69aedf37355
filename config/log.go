package config

import (
	"fmt"
	"log/slog"

	"github.com/dep2p/go-enr/internal/util/logger"
)

// LogConfig 日志配置
type LogConfig struct {
	// Level 级别描述，格式同 ENR_LOG_LEVEL，例如 "keystore=debug,info"
	Level string `json:"level,omitempty"`

	// Format 输出格式，"text" 或 "json"
	Format string `json:"format,omitempty"`

	// AddSource 是否输出源码位置
	AddSource bool `json:"add_source,omitempty"`
}

// DefaultLogConfig 返回默认日志配置
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:  "info",
		Format: "text",
	}
}

// Validate 验证日志配置
func (c LogConfig) Validate() error {
	_, err := c.LoggerConfig()
	return err
}

// LoggerConfig 转换为 logger 包的配置
func (c LogConfig) LoggerConfig() (*logger.Config, error) {
	def, subs, err := logger.ParseLevelSpec(c.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLog, err)
	}
	format, err := logger.ParseFormat(c.Format)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLog, err)
	}

	cfg := &logger.Config{
		DefaultLevel:    slog.LevelInfo,
		SubsystemLevels: subs,
		Format:          format,
		AddSource:       c.AddSource,
	}
	if def != nil {
		cfg.DefaultLevel = *def
	}
	return cfg, nil
}
