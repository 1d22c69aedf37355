package enraddr

import "errors"

var (
	// ErrBadLength 地址属性长度错误
	ErrBadLength = errors.New("enraddr: bad address length")

	// ErrPortRange 端口超出 uint16 范围
	ErrPortRange = errors.New("enraddr: port out of range")

	// ErrNoEndpoint 记录中没有可用的地址与端口组合
	ErrNoEndpoint = errors.New("enraddr: no usable endpoint")

	// ErrUnsupportedScheme 身份方案没有对应的 libp2p 密钥类型
	ErrUnsupportedScheme = errors.New("enraddr: identity scheme has no libp2p key type")
)
