package enr

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/dep2p/go-enr/internal/util/logger"
	"github.com/dep2p/go-enr/pkg/interfaces"
	"github.com/dep2p/go-enr/pkg/lib/rlp"
	"github.com/dep2p/go-enr/pkg/types"
)

var log = logger.Logger("enr")

// SizeLimit 记录编码的最大字节数
const SizeLimit = 300

// ============================================================================
//                              Record
// ============================================================================

// pair 一个属性，值为完整的 RLP 项
type pair struct {
	k string
	v rlp.RawValue
}

// Record 已签名的节点记录
//
// Record 只能通过解码或 Builder 得到，创建时已完成签名验证与 NodeID 派生，
// 之后不可修改，可在多个 goroutine 之间共享。
type Record struct {
	seq       uint64
	signature []byte
	pairs     []pair // 按键升序
	raw       []byte // 规范编码
	scheme    IdentityScheme
	pubKey    []byte
	id        types.NodeID
}

var _ interfaces.NodeRecord = (*Record)(nil)

// Decode 使用默认方案表（仅 v4）解码并验证记录
func Decode(b []byte) (*Record, error) {
	return DecodeWithSchemes(b, defaultSchemes)
}

// DecodeWithSchemes 解码并验证记录
//
// 校验顺序：
//  1. 长度不超过 SizeLimit
//  2. 外层为列表且之后没有多余字节
//  3. 签名为字节串，序列号为规范整数
//  4. 键值成对出现，键严格升序
//  5. "id" 属性对应 schemes 中的方案，公钥属性存在
//  6. 签名有效
//
// 解码不会对不可信输入重新排序。b 会被复制，调用者之后可以复用。
func DecodeWithSchemes(b []byte, schemes SchemeMap) (*Record, error) {
	r, err := decode(b, schemes)
	if err != nil {
		log.Debug("record rejected", "size", len(b), "err", err)
		return nil, err
	}
	return r, nil
}

func decode(b []byte, schemes SchemeMap) (*Record, error) {
	if len(b) > SizeLimit {
		return nil, fmt.Errorf("%w: %d > %d bytes", ErrTooBig, len(b), SizeLimit)
	}
	raw := make([]byte, len(b))
	copy(raw, b)

	list, rest, err := rlp.SplitList(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrMalformed,
			&rlp.DecodeError{Offset: len(raw) - len(rest), Err: rlp.ErrMoreThanOneValue})
	}

	r := &Record{raw: raw}

	sig, content, err := rlp.SplitString(list)
	if err != nil {
		return nil, fmt.Errorf("%w: signature: %w", ErrMalformed, err)
	}
	r.signature = sig

	seq, kv, err := rlp.SplitUint64(content)
	if err != nil {
		return nil, fmt.Errorf("%w: seq: %w", ErrMalformed, err)
	}
	r.seq = seq

	n, err := rlp.CountValues(kv)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if n%2 != 0 {
		return nil, fmt.Errorf("%w: %d items", ErrOddPairs, n)
	}

	r.pairs = make([]pair, 0, n/2)
	for len(kv) > 0 {
		offset := len(raw) - len(kv)

		k, tail, err := rlp.SplitString(kv)
		if err != nil {
			return nil, fmt.Errorf("%w: key at offset %d: %w", ErrMalformed, offset, err)
		}
		v, tail, err := rlp.SplitRaw(tail)
		if err != nil {
			return nil, fmt.Errorf("%w: value of %q: %w", ErrMalformed, k, err)
		}
		if err := rlp.Validate(v); err != nil {
			return nil, fmt.Errorf("%w: value of %q: %w", ErrMalformed, k, err)
		}

		if len(r.pairs) > 0 {
			prev := r.pairs[len(r.pairs)-1].k
			switch c := bytes.Compare([]byte(prev), k); {
			case c == 0:
				return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, k)
			case c > 0:
				return nil, fmt.Errorf("%w: %q after %q", ErrNotSorted, k, prev)
			}
		}
		r.pairs = append(r.pairs, pair{k: string(k), v: v})
		kv = tail
	}

	// 身份方案
	tag, ok := r.Get(KeyID)
	if !ok {
		return nil, ErrMissingScheme
	}
	scheme, err := schemes.Lookup(string(tag))
	if err != nil {
		return nil, err
	}
	r.scheme = scheme

	pub, ok := r.Get(scheme.KeyName())
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingPublicKey, scheme.KeyName())
	}
	r.pubKey = pub

	// 签名输入为去掉签名后的列表 [seq, k1, v1, ...]
	signed := rlp.WrapList(content)
	if !scheme.Verify(pub, signed, sig) {
		return nil, ErrInvalidSignature
	}

	id, err := scheme.NodeID(pub)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	r.id = id

	return r, nil
}

// ============================================================================
//                              访问器
// ============================================================================

// Seq 返回序列号
func (r *Record) Seq() uint64 {
	return r.seq
}

// Get 返回字节串属性的值
//
// 属性不存在或值为列表时返回 false。返回的切片不得修改。
func (r *Record) Get(key string) ([]byte, bool) {
	v, ok := r.GetRaw(key)
	if !ok {
		return nil, false
	}
	content, _, err := rlp.SplitString(v)
	if err != nil {
		return nil, false
	}
	return content, true
}

// GetRaw 返回属性值的完整 RLP 编码
func (r *Record) GetRaw(key string) (rlp.RawValue, bool) {
	i := r.search(key)
	if i < len(r.pairs) && r.pairs[i].k == key {
		return r.pairs[i].v, true
	}
	return nil, false
}

// GetUint 将属性值解码为整数
func (r *Record) GetUint(key string) (uint64, error) {
	v, ok := r.GetRaw(key)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	x, _, err := rlp.SplitUint64(v)
	if err != nil {
		return 0, fmt.Errorf("enr: attribute %q: %w", key, err)
	}
	return x, nil
}

// Has 检查属性是否存在
func (r *Record) Has(key string) bool {
	_, ok := r.GetRaw(key)
	return ok
}

// Keys 返回所有属性键（升序）
func (r *Record) Keys() []string {
	keys := make([]string, len(r.pairs))
	for i, p := range r.pairs {
		keys[i] = p.k
	}
	return keys
}

// Len 返回属性数量
func (r *Record) Len() int {
	return len(r.pairs)
}

// ID 返回节点标识
func (r *Record) ID() types.NodeID {
	return r.id
}

// IdentityScheme 返回记录使用的身份方案
func (r *Record) IdentityScheme() IdentityScheme {
	return r.scheme
}

// Signature 返回签名副本
func (r *Record) Signature() []byte {
	return bytes.Clone(r.signature)
}

// PublicKey 返回方案公钥属性的副本
func (r *Record) PublicKey() []byte {
	return bytes.Clone(r.pubKey)
}

// Bytes 返回规范编码的副本
//
// 对解码得到的记录，结果与原始输入逐字节相同。
func (r *Record) Bytes() []byte {
	return bytes.Clone(r.raw)
}

// Size 返回规范编码的长度
func (r *Record) Size() int {
	return len(r.raw)
}

// Equal 两条记录的规范编码相同时相等
func (r *Record) Equal(other *Record) bool {
	if r == nil || other == nil {
		return r == other
	}
	return bytes.Equal(r.raw, other.raw)
}

// String 返回文本形式
func (r *Record) String() string {
	return r.Text()
}

// search 二分查找 key 的位置
func (r *Record) search(key string) int {
	return sort.Search(len(r.pairs), func(i int) bool { return r.pairs[i].k >= key })
}
