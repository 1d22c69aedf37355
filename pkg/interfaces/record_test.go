package interfaces_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/dep2p/go-enr/pkg/interfaces"
	"github.com/dep2p/go-enr/pkg/types"
)

// ============================================================================
// Mock 实现
// ============================================================================

// MockRecord 模拟 NodeRecord 接口实现
type MockRecord struct {
	id    types.NodeID
	seq   uint64
	attrs map[string][]byte
}

func NewMockRecord(idByte byte, seq uint64) *MockRecord {
	var id types.NodeID
	id[0] = idByte
	return &MockRecord{id: id, seq: seq, attrs: map[string][]byte{}}
}

func (m *MockRecord) Seq() uint64      { return m.seq }
func (m *MockRecord) ID() types.NodeID { return m.id }
func (m *MockRecord) Get(k string) ([]byte, bool) {
	v, ok := m.attrs[k]
	return v, ok
}
func (m *MockRecord) Text() string {
	return fmt.Sprintf("enr:mock-%s-%d-%x", m.id.ShortString(), m.seq, m.attrs["ip"])
}

var _ interfaces.NodeRecord = (*MockRecord)(nil)

// ============================================================================
// SeqGuard 测试
// ============================================================================

func TestSeqGuard_Accept(t *testing.T) {
	g := interfaces.NewSeqGuard()

	r1 := NewMockRecord(1, 5)
	if err := g.Accept(r1); err != nil {
		t.Fatalf("Accept(seq=5) error = %v", err)
	}

	// 相同记录重复接受
	if err := g.Accept(r1); err != nil {
		t.Errorf("Accept(same) error = %v", err)
	}

	// 更高序列号
	if err := g.Accept(NewMockRecord(1, 6)); err != nil {
		t.Errorf("Accept(seq=6) error = %v", err)
	}
	if seq, ok := g.Last(r1.ID()); !ok || seq != 6 {
		t.Errorf("Last() = %d, %v, want 6, true", seq, ok)
	}

	// 序列号回退
	if err := g.Accept(NewMockRecord(1, 4)); !errors.Is(err, interfaces.ErrStaleSequence) {
		t.Errorf("Accept(seq=4) error = %v, want ErrStaleSequence", err)
	}
	if seq, _ := g.Last(r1.ID()); seq != 6 {
		t.Errorf("rejected record changed state: Last() = %d", seq)
	}

	// 相同序列号不同内容
	conflict := NewMockRecord(1, 6)
	conflict.attrs["ip"] = []byte{10, 0, 0, 1}
	if err := g.Accept(conflict); !errors.Is(err, interfaces.ErrSeqConflict) {
		t.Errorf("Accept(conflict) error = %v, want ErrSeqConflict", err)
	}

	// 其他节点独立跟踪
	if err := g.Accept(NewMockRecord(2, 0)); err != nil {
		t.Errorf("Accept(other node) error = %v", err)
	}
	if g.Len() != 2 {
		t.Errorf("Len() = %d, want 2", g.Len())
	}

	g.Forget(r1.ID())
	if _, ok := g.Last(r1.ID()); ok {
		t.Error("Last() after Forget should report false")
	}
	if err := g.Accept(NewMockRecord(1, 1)); err != nil {
		t.Errorf("Accept() after Forget error = %v", err)
	}
}

func TestSeqGuard_Concurrent(t *testing.T) {
	g := interfaces.NewSeqGuard()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(seq uint64) {
			defer wg.Done()
			_ = g.Accept(NewMockRecord(7, seq))
		}(uint64(i))
	}
	wg.Wait()

	// 接受顺序不确定，但最终状态不低于任何已接受值
	seq, ok := g.Last(types.NodeID{7})
	if !ok {
		t.Fatal("Last() reported no record")
	}
	if err := g.Accept(NewMockRecord(7, seq)); err != nil {
		t.Errorf("Accept(current seq) error = %v", err)
	}
}
