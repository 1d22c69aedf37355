package app

import "errors"

var (
	// ErrKeyMismatch 密钥库中的密钥类型与身份方案不符
	ErrKeyMismatch = errors.New("key type does not match identity scheme")

	// ErrNoDNSName 未配置 TXT 记录名称
	ErrNoDNSName = errors.New("dns name not configured")
)
