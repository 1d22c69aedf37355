package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
)

var (
	// globalOutput 全局日志输出目标，默认为 stderr
	globalOutput   io.Writer = os.Stderr
	globalOutputMu sync.RWMutex

	// currentFormat 当前输出格式，Apply 可在运行时切换
	currentFormat atomic.Int32

	// addSource 是否输出源码位置
	addSource atomic.Bool
)

// dynamicWriter 每次写入时查找 globalOutput
type dynamicWriter struct{}

func (w *dynamicWriter) Write(p []byte) (n int, err error) {
	globalOutputMu.RLock()
	output := globalOutput
	globalOutputMu.RUnlock()
	return output.Write(p)
}

// subsystemHandler 支持子系统级别控制的 slog.Handler
//
// 同时持有文本和 JSON 两个内部 Handler，按 currentFormat 选择；
// 级别保存在共享的 LevelVar 中，WithAttrs 派生出的 Handler 也随 SetLevel 变化。
type subsystemHandler struct {
	subsystem string
	level     *slog.LevelVar
	text      slog.Handler
	json      slog.Handler
	textSrc   slog.Handler
	jsonSrc   slog.Handler
}

// newHandler 创建新的子系统 Handler
func newHandler(subsystem string, level slog.Level) *subsystemHandler {
	lv := new(slog.LevelVar)
	lv.Set(level)

	build := func(withSource bool, json bool) slog.Handler {
		opts := &slog.HandlerOptions{
			Level:       lv,
			AddSource:   withSource,
			ReplaceAttr: replaceAttr,
		}
		var h slog.Handler
		if json {
			h = slog.NewJSONHandler(&dynamicWriter{}, opts)
		} else {
			h = slog.NewTextHandler(&dynamicWriter{}, opts)
		}
		return h.WithAttrs([]slog.Attr{slog.String("subsystem", subsystem)})
	}

	return &subsystemHandler{
		subsystem: subsystem,
		level:     lv,
		text:      build(false, false),
		json:      build(false, true),
		textSrc:   build(true, false),
		jsonSrc:   build(true, true),
	}
}

// replaceAttr 简化时间键名和级别名称
func replaceAttr(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		a.Key = "ts"
	}
	if a.Key == slog.LevelKey {
		if lvl, ok := a.Value.Any().(slog.Level); ok {
			a.Value = slog.StringValue(levelToString(lvl))
		}
	}
	return a
}

// inner 返回当前格式对应的内部 Handler
func (h *subsystemHandler) inner() slog.Handler {
	json := LogFormat(currentFormat.Load()) == FormatJSON
	src := addSource.Load()
	switch {
	case json && src:
		return h.jsonSrc
	case json:
		return h.json
	case src:
		return h.textSrc
	default:
		return h.text
	}
}

// Enabled 检查是否启用指定级别
func (h *subsystemHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle 处理日志记录
func (h *subsystemHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.inner().Handle(ctx, r)
}

// WithAttrs 添加属性
func (h *subsystemHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &subsystemHandler{
		subsystem: h.subsystem,
		level:     h.level,
		text:      h.text.WithAttrs(attrs),
		json:      h.json.WithAttrs(attrs),
		textSrc:   h.textSrc.WithAttrs(attrs),
		jsonSrc:   h.jsonSrc.WithAttrs(attrs),
	}
}

// WithGroup 添加组
func (h *subsystemHandler) WithGroup(name string) slog.Handler {
	return &subsystemHandler{
		subsystem: h.subsystem,
		level:     h.level,
		text:      h.text.WithGroup(name),
		json:      h.json.WithGroup(name),
		textSrc:   h.textSrc.WithGroup(name),
		jsonSrc:   h.jsonSrc.WithGroup(name),
	}
}

// SetLevel 动态设置日志级别
func (h *subsystemHandler) SetLevel(level slog.Level) {
	h.level.Set(level)
}

// levelToString 将日志级别转换为小写字符串
func levelToString(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "debug"
	case slog.LevelInfo:
		return "info"
	case slog.LevelWarn:
		return "warn"
	case slog.LevelError:
		return "error"
	default:
		return "info"
	}
}

// discardHandler 丢弃所有日志的 Handler（用于测试）
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }

// DiscardHandler 返回一个丢弃所有日志的 Handler
func DiscardHandler() slog.Handler {
	return discardHandler{}
}
