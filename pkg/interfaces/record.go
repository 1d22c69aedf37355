// Package interfaces 定义 go-enr 面向上层的公共接口
//
// 本文件定义 NodeRecord 接口和序列号守卫。
package interfaces

import (
	"errors"
	"fmt"
	"sync"

	"github.com/dep2p/go-enr/pkg/types"
)

// ============================================================================
//                              NodeRecord 接口
// ============================================================================

// NodeRecord 已验证节点记录的只读视图
//
// 实现方必须是不可变的，可在多个 goroutine 之间共享。
type NodeRecord interface {
	// Seq 返回序列号
	Seq() uint64

	// Get 返回字节串类型的属性值
	Get(key string) ([]byte, bool)

	// ID 返回由公钥派生的节点标识
	ID() types.NodeID

	// Text 返回 "enr:" 文本形式
	Text() string
}

// ============================================================================
//                              序列号守卫
// ============================================================================

var (
	// ErrStaleSequence 记录序列号低于已接受的版本
	ErrStaleSequence = errors.New("stale record sequence number")

	// ErrSeqConflict 相同序列号但内容不同
	ErrSeqConflict = errors.New("conflicting record for sequence number")
)

// SeqGuard 按节点标识跟踪已接受的最新记录
//
// 同一签名者的后续记录序列号不得下降。核心解码不检查这一点，
// 由持有历史状态的上层通过 SeqGuard 完成。
//
// SeqGuard 可并发使用。
type SeqGuard struct {
	mu   sync.Mutex
	last map[types.NodeID]guardEntry
}

type guardEntry struct {
	seq  uint64
	text string
}

// NewSeqGuard 创建序列号守卫
func NewSeqGuard() *SeqGuard {
	return &SeqGuard{last: make(map[types.NodeID]guardEntry)}
}

// Accept 检查并记录一条新记录
//
// 返回 nil 表示 rec 是该节点目前最新的记录（或与已接受记录完全相同）。
// 被拒绝的记录不会改变守卫状态。
func (g *SeqGuard) Accept(rec NodeRecord) error {
	id := rec.ID()
	seq := rec.Seq()
	text := rec.Text()

	g.mu.Lock()
	defer g.mu.Unlock()

	if prev, ok := g.last[id]; ok {
		switch {
		case seq < prev.seq:
			return fmt.Errorf("%w: node %s has seq %d, got %d",
				ErrStaleSequence, id.ShortString(), prev.seq, seq)
		case seq == prev.seq && text != prev.text:
			return fmt.Errorf("%w: node %s seq %d", ErrSeqConflict, id.ShortString(), seq)
		}
	}
	g.last[id] = guardEntry{seq: seq, text: text}
	return nil
}

// Last 返回某节点已接受的最新序列号
func (g *SeqGuard) Last(id types.NodeID) (uint64, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	e, ok := g.last[id]
	return e.seq, ok
}

// Forget 移除某节点的历史
func (g *SeqGuard) Forget(id types.NodeID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.last, id)
}

// Len 返回跟踪的节点数
func (g *SeqGuard) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.last)
}
