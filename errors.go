package enr

import "errors"

// 公共错误定义
var (
	// ────────────────────────────────────────────────────────────────────────
	// 解码错误
	// ────────────────────────────────────────────────────────────────────────

	// ErrTooBig 记录超过 SizeLimit
	ErrTooBig = errors.New("enr: record exceeds size limit")

	// ErrMalformed 记录结构错误（截断、非规范编码、多余字节等）
	//
	// 返回的错误同时包装了 rlp 包中描述具体规则的错误。
	ErrMalformed = errors.New("enr: malformed record")

	// ErrOddPairs 键值对数量不是偶数
	ErrOddPairs = errors.New("enr: odd number of key/value items")

	// ErrDuplicateKey 键重复
	ErrDuplicateKey = errors.New("enr: duplicate key")

	// ErrNotSorted 键未按升序排列
	ErrNotSorted = errors.New("enr: keys not sorted")

	// ErrMissingScheme 缺少 "id" 属性
	ErrMissingScheme = errors.New("enr: missing identity scheme")

	// ErrUnknownScheme 未知的身份方案
	ErrUnknownScheme = errors.New("enr: unknown identity scheme")

	// ErrMissingPublicKey 缺少方案要求的公钥属性
	ErrMissingPublicKey = errors.New("enr: missing public key")

	// ErrInvalidSignature 签名验证失败
	ErrInvalidSignature = errors.New("enr: invalid signature")

	// ────────────────────────────────────────────────────────────────────────
	// 文本形式错误
	// ────────────────────────────────────────────────────────────────────────

	// ErrMissingPrefix 缺少 "enr:" 前缀
	ErrMissingPrefix = errors.New("enr: missing \"enr:\" prefix")

	// ErrInvalidText base64 解码失败
	ErrInvalidText = errors.New("enr: invalid base64 text")

	// ────────────────────────────────────────────────────────────────────────
	// 属性访问错误
	// ────────────────────────────────────────────────────────────────────────

	// ErrNotFound 属性不存在
	ErrNotFound = errors.New("enr: attribute not found")

	// ────────────────────────────────────────────────────────────────────────
	// 构建错误
	// ────────────────────────────────────────────────────────────────────────

	// ErrNilScheme 未指定身份方案
	ErrNilScheme = errors.New("enr: nil identity scheme")

	// ErrNilRecord 以空记录为起点创建构建器
	ErrNilRecord = errors.New("enr: nil record")

	// ErrSchemeKeyMismatch 私钥类型与身份方案不符
	ErrSchemeKeyMismatch = errors.New("enr: key type does not match identity scheme")

	// ErrReservedKey 试图直接设置方案标签或公钥属性
	ErrReservedKey = errors.New("enr: attribute is derived from the identity scheme")

	// ErrEmptyKey 属性键为空
	ErrEmptyKey = errors.New("enr: empty attribute key")

	// ErrSeqOverflow 序列号溢出
	ErrSeqOverflow = errors.New("enr: sequence number overflow")

	// ErrBuilderClosed Builder 已经构建过或已关闭
	ErrBuilderClosed = errors.New("enr: builder already used")
)
