package config

import "errors"

var (
	// ErrNilConfig 配置为空
	ErrNilConfig = errors.New("config is nil")

	// ErrInvalidScheme 未知的身份方案
	ErrInvalidScheme = errors.New("invalid identity scheme")

	// ErrInvalidKeyName 密钥名称无效
	ErrInvalidKeyName = errors.New("invalid key name")

	// ErrInvalidIP 地址无法解析或地址族不符
	ErrInvalidIP = errors.New("invalid ip address")

	// ErrInvalidAttr 自定义属性无效
	ErrInvalidAttr = errors.New("invalid attribute")

	// ErrInvalidTTL 生存时间超出范围
	ErrInvalidTTL = errors.New("invalid ttl")

	// ErrInvalidLog 日志配置无效
	ErrInvalidLog = errors.New("invalid log config")
)
