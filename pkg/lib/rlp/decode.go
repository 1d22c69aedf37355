package rlp

import (
	"github.com/ethereum/go-ethereum/rlp"
)

// Kind RLP 项的类型
type Kind = rlp.Kind

const (
	// Byte 单字节（<0x80，无头）
	Byte = rlp.Byte
	// String 带头的字节串
	String = rlp.String
	// List 列表
	List = rlp.List
)

// ============================================================================
//                              拆分
// ============================================================================

// Split 拆出 b 开头的第一个项
//
// 返回项的类型、负载和剩余字节。非最短长度前缀和截断都会返回错误。
func Split(b []byte) (k Kind, content, rest []byte, err error) {
	k, content, rest, err = rlp.Split(b)
	if err != nil {
		return 0, nil, b, errAt(0, b, err)
	}
	return k, content, rest, nil
}

// SplitString 拆出一个字节串
func SplitString(b []byte) (content, rest []byte, err error) {
	content, rest, err = rlp.SplitString(b)
	if err != nil {
		return nil, b, errAt(0, b, err)
	}
	return content, rest, nil
}

// SplitList 拆出一个列表，返回列表负载
func SplitList(b []byte) (content, rest []byte, err error) {
	content, rest, err = rlp.SplitList(b)
	if err != nil {
		return nil, b, errAt(0, b, err)
	}
	return content, rest, nil
}

// SplitUint64 拆出一个整数
//
// 超过 8 字节返回 ErrUint64Range，带前导零返回 ErrCanonInt。
func SplitUint64(b []byte) (x uint64, rest []byte, err error) {
	content, _, err := SplitString(b)
	if err != nil {
		return 0, b, err
	}
	if len(content) > 8 {
		return 0, b, errAt(0, b, ErrUint64Range)
	}
	x, rest, err = rlp.SplitUint64(b)
	if err != nil {
		return 0, b, errAt(0, b, err)
	}
	return x, rest, nil
}

// SplitRaw 拆出一个完整的已编码项（含头）
func SplitRaw(b []byte) (RawValue, []byte, error) {
	_, _, rest, err := Split(b)
	if err != nil {
		return nil, b, err
	}
	return RawValue(b[:len(b)-len(rest)]), rest, nil
}

// CountValues 统计 b 中顺序排列的项数
//
// 出错时 DecodeError.Offset 指向出错项在 b 中的位置。
func CountValues(b []byte) (int, error) {
	n := 0
	for off := 0; off < len(b); n++ {
		_, _, rest, err := rlp.Split(b[off:])
		if err != nil {
			return 0, errAt(off, b[off:], err)
		}
		off = len(b) - len(rest)
	}
	return n, nil
}

// ============================================================================
//                              校验
// ============================================================================

// Validate 检查 b 恰好是一个规范编码的项
//
// 列表会递归检查每个元素；go-ethereum 只检查外层头，这里补上逐层校验。
func Validate(b []byte) error {
	if len(b) == 0 {
		return errAt(0, b, ErrEmptyInput)
	}
	rest, err := validateItem(b, 0)
	if err != nil {
		return err
	}
	if len(rest) != 0 {
		return errAt(len(b)-len(rest), rest, ErrMoreThanOneValue)
	}
	return nil
}

func validateItem(b []byte, offset int) (rest []byte, err error) {
	k, content, rest, err := rlp.Split(b)
	if err != nil {
		return b, errAt(offset, b, err)
	}
	if k != List {
		return rest, nil
	}
	inner := offset + len(b) - len(rest) - len(content)
	for len(content) > 0 {
		next, err := validateItem(content, inner)
		if err != nil {
			return b, err
		}
		inner += len(content) - len(next)
		content = next
	}
	return rest, nil
}
