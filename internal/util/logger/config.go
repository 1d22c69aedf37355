// Package logger 提供统一的日志接口
//
// 支持通过环境变量配置日志级别：
//   - ENR_LOG_LEVEL: 设置日志级别，支持按子系统配置
//     格式: 子系统=级别,子系统=级别,默认级别
//     示例: keystore=debug,enr=warn,info
//   - ENR_LOG_FORMAT: 日志格式 (text 或 json)
//   - ENR_LOG_ADD_SOURCE: 是否输出源码位置
package logger

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// 环境变量名
const (
	EnvLogLevel     = "ENR_LOG_LEVEL"
	EnvLogFormat    = "ENR_LOG_FORMAT"
	EnvLogAddSource = "ENR_LOG_ADD_SOURCE"
)

// LogFormat 日志输出格式
type LogFormat int

const (
	// FormatText 文本格式（默认）
	FormatText LogFormat = iota
	// FormatJSON JSON 格式
	FormatJSON
)

// String 返回格式名称
func (f LogFormat) String() string {
	if f == FormatJSON {
		return "json"
	}
	return "text"
}

// ParseFormat 解析格式名称
func ParseFormat(s string) (LogFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatText, fmt.Errorf("unknown log format %q", s)
	}
}

// Config 日志配置
type Config struct {
	// DefaultLevel 默认日志级别
	DefaultLevel slog.Level

	// SubsystemLevels 各子系统的日志级别
	SubsystemLevels map[string]slog.Level

	// Format 输出格式
	Format LogFormat

	// AddSource 是否添加源码位置
	AddSource bool
}

// LevelForSubsystem 获取指定子系统的日志级别
func (c *Config) LevelForSubsystem(subsystem string) slog.Level {
	if level, ok := c.SubsystemLevels[subsystem]; ok {
		return level
	}
	return c.DefaultLevel
}

// configCache 缓存配置，避免重复解析
var (
	configCache *Config
	configMu    sync.Mutex
)

// ConfigFromEnv 返回当前生效的配置
//
// 首次调用时从环境变量解析；Apply 之后返回 Apply 设置的配置。
func ConfigFromEnv() *Config {
	configMu.Lock()
	defer configMu.Unlock()
	if configCache == nil {
		configCache = parseConfig()
	}
	return configCache
}

// Apply 替换当前配置并立即作用于所有已创建的 Logger
//
// 级别、格式和源码位置都会切换，包括包级变量中提前创建的 Logger。
func Apply(cfg *Config) {
	configMu.Lock()
	configCache = cfg
	configMu.Unlock()

	currentFormat.Store(int32(cfg.Format))
	addSource.Store(cfg.AddSource)
	handlers.Range(func(key, value any) bool {
		value.(*subsystemHandler).SetLevel(cfg.LevelForSubsystem(key.(string)))
		return true
	})
}

// parseConfig 解析环境变量配置
func parseConfig() *Config {
	cfg := &Config{
		DefaultLevel:    slog.LevelInfo,
		SubsystemLevels: make(map[string]slog.Level),
		Format:          FormatText,
	}

	if levelStr := os.Getenv(EnvLogLevel); levelStr != "" {
		// 环境变量中的无效片段直接忽略
		def, subs, _ := ParseLevelSpec(levelStr)
		if def != nil {
			cfg.DefaultLevel = *def
		}
		for k, v := range subs {
			cfg.SubsystemLevels[k] = v
		}
	}

	if formatStr := os.Getenv(EnvLogFormat); formatStr != "" {
		if f, err := ParseFormat(formatStr); err == nil {
			cfg.Format = f
		}
	}

	if addSourceStr := os.Getenv(EnvLogAddSource); addSourceStr != "" {
		cfg.AddSource = addSourceStr != "false" && addSourceStr != "0"
	}

	currentFormat.Store(int32(cfg.Format))
	addSource.Store(cfg.AddSource)
	return cfg
}

// ParseLevelSpec 解析日志级别配置字符串
//
// 格式: subsystem=level,subsystem=level,defaultLevel
// 示例: keystore=debug,enr=warn,info
//
// 返回默认级别（未指定时为 nil）和各子系统级别。
// 遇到无法识别的片段时继续解析，并在最后返回第一个错误。
func ParseLevelSpec(spec string) (*slog.Level, map[string]slog.Level, error) {
	var (
		def      *slog.Level
		subs     = make(map[string]slog.Level)
		firstErr error
	)
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		name, levelName, isSub := strings.Cut(part, "=")
		if !isSub {
			levelName = name
		}
		level, ok := parseLevel(strings.TrimSpace(levelName))
		if !ok {
			if firstErr == nil {
				firstErr = fmt.Errorf("unknown log level %q", levelName)
			}
			continue
		}

		if isSub {
			subs[strings.TrimSpace(name)] = level
		} else {
			l := level
			def = &l
		}
	}
	return def, subs, firstErr
}

// parseLevel 解析日志级别名称
func parseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// ResetConfig 重置配置缓存（仅用于测试）
func ResetConfig() {
	configMu.Lock()
	configCache = nil
	configMu.Unlock()
}
