package rlp

import (
	"errors"
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/rlp"
)

// ============================================================================
//                              错误定义
// ============================================================================

// 与 go-ethereum/rlp 共用的哨兵错误，两边可互相用 errors.Is 判断
var (
	// ErrValueTooLarge 声明的长度超过剩余输入（截断）
	ErrValueTooLarge = rlp.ErrValueTooLarge

	// ErrMoreThanOneValue 顶层值之后仍有未消费的字节
	ErrMoreThanOneValue = rlp.ErrMoreThanOneValue

	// ErrExpectedString 期望字节串，实际为列表
	ErrExpectedString = rlp.ErrExpectedString

	// ErrExpectedList 期望列表，实际为字节串
	ErrExpectedList = rlp.ErrExpectedList

	// ErrCanonSize 长度前缀不是最短形式
	ErrCanonSize = rlp.ErrCanonSize

	// ErrCanonInt 整数带有前导零字节
	ErrCanonInt = rlp.ErrCanonInt
)

// go-ethereum/rlp 未导出的情形
var (
	// ErrEmptyInput 输入为空
	ErrEmptyInput = errors.New("rlp: empty input")

	// ErrUint64Range 整数超出 uint64 范围
	ErrUint64Range = errors.New("rlp: uint64 overflow")
)

// DecodeError 描述解码失败的位置
//
// Err 为上面的哨兵错误之一，Offset 为出错项在输入中的字节偏移。
type DecodeError struct {
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%v (offset %d)", e.Err, e.Offset)
}

// Unwrap 返回底层哨兵错误
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// errAt 把 go-ethereum 返回的错误归一成本包的哨兵并附上偏移
//
// 上游对空输入和截断都返回 io.ErrUnexpectedEOF，这里按剩余输入区分。
func errAt(offset int, b []byte, err error) error {
	if errors.Is(err, io.ErrUnexpectedEOF) {
		if len(b) == 0 {
			err = ErrEmptyInput
		} else {
			err = ErrValueTooLarge
		}
	}
	var de *DecodeError
	if errors.As(err, &de) {
		return &DecodeError{Offset: offset + de.Offset, Err: de.Err}
	}
	return &DecodeError{Offset: offset, Err: err}
}
