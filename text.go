package enr

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// TextPrefix 文本形式前缀
const TextPrefix = "enr:"

// textEncoding URL 安全、无填充的 base64；解码时要求末尾多余位为零
var textEncoding = base64.RawURLEncoding.Strict()

// Text 返回文本形式 "enr:" + base64url(Bytes())
func (r *Record) Text() string {
	return TextPrefix + textEncoding.EncodeToString(r.raw)
}

// MarshalText 实现 encoding.TextMarshaler
func (r *Record) MarshalText() ([]byte, error) {
	return []byte(r.Text()), nil
}

// Parse 使用默认方案表解析文本形式
func Parse(s string) (*Record, error) {
	return ParseWithSchemes(s, defaultSchemes)
}

// ParseWithSchemes 解析文本形式并验证记录
func ParseWithSchemes(s string, schemes SchemeMap) (*Record, error) {
	if !strings.HasPrefix(s, TextPrefix) {
		return nil, ErrMissingPrefix
	}
	body := s[len(TextPrefix):]
	// 先按长度拒绝，避免为超大输入分配内存
	if n := textEncoding.DecodedLen(len(body)); n > SizeLimit {
		return nil, fmt.Errorf("%w: %d > %d bytes", ErrTooBig, n, SizeLimit)
	}
	b, err := textEncoding.DecodeString(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidText, err)
	}
	return DecodeWithSchemes(b, schemes)
}
