package frame

import (
	"testing"

	"github.com/emberlang/ember/internal/bytecode"
	"github.com/emberlang/ember/internal/testhost"
)

// =====================================
// NewFrame / SetCheckInterval
// =====================================

func TestNewFrameStartsAtZero(t *testing.T) {
	code := &bytecode.CodeObject{Name: "<test>"}
	f := NewFrame(code, testhost.NewModuleScope())
	if f.ip != 0 {
		t.Errorf("ip = %d, want 0", f.ip)
	}
	if f.height() != 0 {
		t.Errorf("height() = %d, want 0", f.height())
	}
	if f.checkInterval != defaultCheckInterval {
		t.Errorf("checkInterval = %d, want %d", f.checkInterval, defaultCheckInterval)
	}
}

func TestSetCheckInterval(t *testing.T) {
	f := NewFrame(&bytecode.CodeObject{}, testhost.NewModuleScope())
	f.SetCheckInterval(50)
	if f.checkInterval != 50 {
		t.Errorf("checkInterval = %d, want 50", f.checkInterval)
	}
	f.SetCheckInterval(0)
	if f.checkInterval != 1 {
		t.Errorf("checkInterval = %d, want 1 (clamped)", f.checkInterval)
	}
	f.SetCheckInterval(-5)
	if f.checkInterval != 1 {
		t.Errorf("checkInterval = %d, want 1 (clamped from negative)", f.checkInterval)
	}
}

// =====================================
// Stack primitives: push / pop / top / peek / popN / rotate / reverse
// =====================================

func TestPushPopTop(t *testing.T) {
	f := NewFrame(&bytecode.CodeObject{}, testhost.NewModuleScope())
	f.push(int64(1))
	f.push(int64(2))
	f.push(int64(3))

	if f.height() != 3 {
		t.Fatalf("height() = %d, want 3", f.height())
	}
	if v := f.top(); v != int64(3) {
		t.Errorf("top() = %v, want 3", v)
	}
	if v := f.peek(1); v != int64(2) {
		t.Errorf("peek(1) = %v, want 2", v)
	}

	v := f.pop()
	if v != int64(3) {
		t.Errorf("pop() = %v, want 3", v)
	}
	if f.height() != 2 {
		t.Errorf("height() after pop = %d, want 2", f.height())
	}
}

func TestPopN(t *testing.T) {
	f := NewFrame(&bytecode.CodeObject{}, testhost.NewModuleScope())
	f.push(int64(1))
	f.push(int64(2))
	f.push(int64(3))

	got := f.popN(2)
	if len(got) != 2 || got[0] != int64(2) || got[1] != int64(3) {
		t.Errorf("popN(2) = %v, want [2 3]", got)
	}
	if f.height() != 1 {
		t.Errorf("height() after popN = %d, want 1", f.height())
	}
}

func TestRotate(t *testing.T) {
	f := NewFrame(&bytecode.CodeObject{}, testhost.NewModuleScope())
	f.push(int64(1))
	f.push(int64(2))
	f.push(int64(3))

	f.rotate(3)
	want := []int64{3, 1, 2}
	for i, w := range want {
		if f.stack[i] != w {
			t.Errorf("stack[%d] = %v, want %v", i, f.stack[i], w)
		}
	}
}

func TestReverse(t *testing.T) {
	f := NewFrame(&bytecode.CodeObject{}, testhost.NewModuleScope())
	f.push(int64(1))
	f.push(int64(2))
	f.push(int64(3))

	f.reverse(3)
	want := []int64{3, 2, 1}
	for i, w := range want {
		if f.stack[i] != w {
			t.Errorf("stack[%d] = %v, want %v", i, f.stack[i], w)
		}
	}
}

func TestTruncate(t *testing.T) {
	f := NewFrame(&bytecode.CodeObject{}, testhost.NewModuleScope())
	f.push(int64(1))
	f.push(int64(2))
	f.push(int64(3))

	f.truncate(1)
	if f.height() != 1 {
		t.Errorf("height() after truncate = %d, want 1", f.height())
	}
	if f.top() != int64(1) {
		t.Errorf("top() after truncate = %v, want 1", f.top())
	}
}

// =====================================
// Block machine
// =====================================

func TestPushBlockRecordsLevel(t *testing.T) {
	f := NewFrame(&bytecode.CodeObject{}, testhost.NewModuleScope())
	f.push(int64(1))
	f.push(int64(2))

	f.pushBlock(Block{Kind: BlockLoop, Start: 10, End: 20})

	blk, ok := f.currentBlock()
	if !ok {
		t.Fatal("currentBlock() ok = false, want true")
	}
	if blk.Level != 2 {
		t.Errorf("Level = %d, want 2", blk.Level)
	}
	if blk.Kind != BlockLoop {
		t.Errorf("Kind = %v, want BlockLoop", blk.Kind)
	}
}

func TestPopBlockTruncatesUnconditionally(t *testing.T) {
	f := NewFrame(&bytecode.CodeObject{}, testhost.NewModuleScope())
	f.push(int64(1))
	f.pushBlock(Block{Kind: BlockTryExcept})
	f.push(int64(2))
	f.push(int64(3))
	f.push(int64(4))

	blk := f.popBlock()
	if blk.Kind != BlockTryExcept {
		t.Errorf("popBlock().Kind = %v, want BlockTryExcept", blk.Kind)
	}
	if f.height() != 1 {
		t.Errorf("height() after popBlock = %d, want 1 (truncated to recorded level)", f.height())
	}
}

func TestCurrentBlockEmptyStack(t *testing.T) {
	f := NewFrame(&bytecode.CodeObject{}, testhost.NewModuleScope())
	if _, ok := f.currentBlock(); ok {
		t.Error("currentBlock() on empty block stack: ok = true, want false")
	}
}

func TestBlockKindString(t *testing.T) {
	cases := map[BlockKind]string{
		BlockLoop:           "loop",
		BlockTryExcept:      "try-except",
		BlockWith:           "with",
		BlockExceptHandler:  "except-handler",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", kind, got, want)
		}
	}
}
