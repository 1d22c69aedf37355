package enr

import (
	"fmt"
	"math"
	"sort"

	"github.com/dep2p/go-enr/pkg/lib/crypto"
	"github.com/dep2p/go-enr/pkg/lib/rlp"
)

// ============================================================================
//                              Builder
// ============================================================================

// Builder 节点记录构建器
//
// Builder 持有私钥的一份副本和待写入的属性。Build 或 BuildIncrementing
// 调用一次后 Builder 即失效，私钥副本被清零；放弃构建时调用 Close。
//
// Builder 只能由单一所有者使用，不是并发安全的。
type Builder struct {
	scheme IdentityScheme
	priv   crypto.PrivateKey
	pubKey []byte
	attrs  map[string]rlp.RawValue
	closed bool
}

// NewBuilder 创建构建器
//
// priv 必须属于 scheme。Builder 复制 priv，调用者仍负责清零自己的私钥。
func NewBuilder(scheme IdentityScheme, priv crypto.PrivateKey) (*Builder, error) {
	if scheme == nil {
		return nil, ErrNilScheme
	}
	clone, err := crypto.ClonePrivateKey(priv)
	if err != nil {
		return nil, err
	}
	pub, err := scheme.EncodePublicKey(clone.GetPublic())
	if err != nil {
		clone.Zero()
		return nil, err
	}
	return &Builder{
		scheme: scheme,
		priv:   clone,
		pubKey: pub,
		attrs:  make(map[string]rlp.RawValue),
	}, nil
}

// NewBuilderFromRecord 以已有记录的属性为起点创建构建器
//
// 复制 rec 中除方案标签和公钥之外的全部属性，用于更新后重新签名。
func NewBuilderFromRecord(rec *Record, scheme IdentityScheme, priv crypto.PrivateKey) (*Builder, error) {
	if rec == nil {
		return nil, ErrNilRecord
	}
	b, err := NewBuilder(scheme, priv)
	if err != nil {
		return nil, err
	}
	oldKey := ""
	if rec.scheme != nil {
		oldKey = rec.scheme.KeyName()
	}
	for _, p := range rec.pairs {
		if p.k == KeyID || p.k == oldKey || p.k == scheme.KeyName() {
			continue
		}
		b.attrs[p.k] = p.v
	}
	return b, nil
}

// Scheme 返回构建器使用的身份方案
func (b *Builder) Scheme() IdentityScheme {
	return b.scheme
}

// Set 设置字节串属性
func (b *Builder) Set(key string, value []byte) error {
	if err := b.checkKey(key); err != nil {
		return err
	}
	b.attrs[key] = rlp.EncodeString(value)
	return nil
}

// SetUint 设置整数属性（最短大端编码）
func (b *Builder) SetUint(key string, v uint64) error {
	if err := b.checkKey(key); err != nil {
		return err
	}
	b.attrs[key] = rlp.EncodeUint(v)
	return nil
}

// SetRaw 设置已编码的属性值
//
// raw 必须恰好是一个规范 RLP 项，可以是列表。
func (b *Builder) SetRaw(key string, raw rlp.RawValue) error {
	if err := b.checkKey(key); err != nil {
		return err
	}
	if err := rlp.Validate(raw); err != nil {
		return fmt.Errorf("enr: attribute %q: %w", key, err)
	}
	v := make(rlp.RawValue, len(raw))
	copy(v, raw)
	b.attrs[key] = v
	return nil
}

// Delete 删除属性，属性不存在时不做任何事
func (b *Builder) Delete(key string) error {
	if err := b.checkKey(key); err != nil {
		return err
	}
	delete(b.attrs, key)
	return nil
}

// Build 以序列号 seq 签名并返回记录
//
// 无论成功与否，调用后 Builder 都会关闭。
func (b *Builder) Build(seq uint64) (*Record, error) {
	if b.closed {
		return nil, ErrBuilderClosed
	}
	defer b.Close()

	r, err := b.build(seq)
	if err != nil {
		return nil, err
	}
	log.Debug("record built",
		"id", r.id.ShortString(),
		"scheme", b.scheme.Name(),
		"seq", seq,
		"size", len(r.raw))
	return r, nil
}

// BuildIncrementing 以 prevSeq+1 为序列号构建记录
func (b *Builder) BuildIncrementing(prevSeq uint64) (*Record, error) {
	if b.closed {
		return nil, ErrBuilderClosed
	}
	if prevSeq == math.MaxUint64 {
		b.Close()
		return nil, ErrSeqOverflow
	}
	return b.Build(prevSeq + 1)
}

// Close 清零私钥副本并丢弃暂存属性，可重复调用
func (b *Builder) Close() {
	if b.closed {
		return
	}
	b.closed = true
	b.priv.Zero()
	b.priv = nil
	b.attrs = nil
}

// checkKey 检查属性键是否允许直接设置
func (b *Builder) checkKey(key string) error {
	switch {
	case b.closed:
		return ErrBuilderClosed
	case key == "":
		return ErrEmptyKey
	case key == KeyID || key == b.scheme.KeyName():
		return fmt.Errorf("%w: %q", ErrReservedKey, key)
	}
	return nil
}

// build 排序属性、签名并组装记录
func (b *Builder) build(seq uint64) (*Record, error) {
	pairs := make([]pair, 0, len(b.attrs)+2)
	for k, v := range b.attrs {
		pairs = append(pairs, pair{k: k, v: v})
	}
	pairs = append(pairs,
		pair{k: KeyID, v: rlp.EncodeString([]byte(b.scheme.Name()))},
		pair{k: b.scheme.KeyName(), v: rlp.EncodeString(b.pubKey)},
	)
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].k < pairs[j].k })

	// content = seq, k1, v1, ...
	content := rlp.AppendUint(nil, seq)
	for _, p := range pairs {
		content = rlp.AppendString(content, []byte(p.k))
		content = append(content, p.v...)
	}

	sig, err := b.scheme.Sign(b.priv, rlp.WrapList(content))
	if err != nil {
		return nil, err
	}

	payload := rlp.AppendString(nil, sig)
	payload = append(payload, content...)
	if size := rlp.ListSize(len(payload)); size > SizeLimit {
		return nil, fmt.Errorf("%w: %d > %d bytes", ErrTooBig, size, SizeLimit)
	}

	id, err := b.scheme.NodeID(b.pubKey)
	if err != nil {
		return nil, err
	}

	return &Record{
		seq:       seq,
		signature: sig,
		pairs:     pairs,
		raw:       rlp.WrapList(payload),
		scheme:    b.scheme,
		pubKey:    b.pubKey,
		id:        id,
	}, nil
}
