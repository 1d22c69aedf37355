package rlp

import (
	"github.com/ethereum/go-ethereum/rlp"
)

// RawValue 一个已编码的完整 RLP 项
type RawValue = rlp.RawValue

// 常用的已编码值
var (
	// EmptyString 空字节串
	EmptyString = RawValue{0x80}
	// EmptyList 空列表
	EmptyList = RawValue{0xc0}
)

// ============================================================================
//                              字节串与整数
// ============================================================================

// AppendString 把 b 编码为字节串并追加到 dst
func AppendString(dst, b []byte) []byte {
	w := rlp.NewEncoderBuffer(nil)
	defer w.Flush()
	w.WriteBytes(b)
	return w.AppendToBytes(dst)
}

// EncodeString 把 b 编码为字节串
func EncodeString(b []byte) RawValue {
	return AppendString(nil, b)
}

// AppendUint 把整数按最短大端形式编码并追加到 dst
func AppendUint(dst []byte, v uint64) []byte {
	return rlp.AppendUint64(dst, v)
}

// EncodeUint 编码一个整数
func EncodeUint(v uint64) RawValue {
	return rlp.AppendUint64(nil, v)
}

// ============================================================================
//                              列表
// ============================================================================

// ListSize 负载为 contentSize 字节的列表编码后的总长度
func ListSize(contentSize int) int {
	return int(rlp.ListSize(uint64(contentSize)))
}

// WrapList 给已编码的负载加上列表头
func WrapList(content []byte) RawValue {
	w := rlp.NewEncoderBuffer(nil)
	defer w.Flush()
	idx := w.List()
	w.Write(content)
	w.ListEnd(idx)
	return w.ToBytes()
}

// EncodeList 把若干已编码项组合为列表
func EncodeList(items ...RawValue) RawValue {
	w := rlp.NewEncoderBuffer(nil)
	defer w.Flush()
	idx := w.List()
	for _, it := range items {
		w.Write(it)
	}
	w.ListEnd(idx)
	return w.ToBytes()
}
