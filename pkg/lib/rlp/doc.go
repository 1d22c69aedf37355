// Package rlp 提供严格规范化的 RLP（Recursive Length Prefix）编解码
//
// 节点记录的签名覆盖的是确切的字节序列，因此本包只接受唯一的规范编码：
//
//   - 整数使用最短大端字节串，不允许前导零，0 编码为空字节串
//   - 字节串 ≤55 字节使用短格式长度前缀，更长时使用长度的长度
//   - 单个 <0x80 的字节必须直接编码，不得再包一层字节串头
//   - 列表与字节串使用相同的长度规则
//
// # 编码
//
//	buf := rlp.AppendUint(nil, 1)
//	buf = rlp.AppendString(buf, []byte("id"))
//	list := rlp.EncodeList(rlp.EncodeUint(1), rlp.EncodeString([]byte("v4")))
//
// # 解码
//
//	content, rest, err := rlp.SplitList(list)
//	seq, content, err := rlp.SplitUint64(content)
//
// 底层拆分与整数编码直接使用 github.com/ethereum/go-ethereum/rlp，本包只补充
// 上游没有的部分：递归校验单个项的 Validate、带字节偏移的 DecodeError，
// 以及对已编码负载加列表头的 WrapList。
//
// 所有解码错误都是带具体违规规则的哨兵错误（见 errors.go），可用 errors.Is 判断，
// 与 go-ethereum/rlp 的同名错误是同一个值。
package rlp
