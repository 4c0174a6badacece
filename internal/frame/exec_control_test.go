package frame

import (
	"testing"

	"github.com/emberlang/ember/internal/bytecode"
	"github.com/emberlang/ember/internal/hostiface"
	"github.com/emberlang/ember/internal/testhost"
)

func TestExecJumpIfTakesBranch(t *testing.T) {
	host := testhost.NewHost()
	f := NewFrame(&bytecode.CodeObject{}, testhost.NewModuleScope())
	f.push(host.NewBool(true))

	if err := f.execJumpIf(bytecode.Instruction{Op: bytecode.OpJumpIfTrue, Target: 7}, host); err != nil {
		t.Fatalf("execJumpIf returned error: %v", err)
	}
	if f.ip != 7 {
		t.Errorf("ip = %d, want 7", f.ip)
	}
	if f.height() != 0 {
		t.Errorf("height() = %d, want 0 (value consumed)", f.height())
	}
}

func TestExecJumpIfFalseDoesNotJumpOnTrue(t *testing.T) {
	host := testhost.NewHost()
	f := NewFrame(&bytecode.CodeObject{}, testhost.NewModuleScope())
	f.push(host.NewBool(true))

	if err := f.execJumpIf(bytecode.Instruction{Op: bytecode.OpJumpIfFalse, Target: 7}, host); err != nil {
		t.Fatalf("execJumpIf returned error: %v", err)
	}
	if f.ip != 0 {
		t.Errorf("ip = %d, want 0 (no jump)", f.ip)
	}
}

func TestExecJumpOrPopLeavesValueWhenTaken(t *testing.T) {
	host := testhost.NewHost()
	f := NewFrame(&bytecode.CodeObject{}, testhost.NewModuleScope())
	f.push(host.NewBool(true))

	if err := f.execJumpOrPop(bytecode.Instruction{Op: bytecode.OpJumpIfTrueOrPop, Target: 3}, host); err != nil {
		t.Fatalf("execJumpOrPop returned error: %v", err)
	}
	if f.ip != 3 {
		t.Errorf("ip = %d, want 3", f.ip)
	}
	if f.height() != 1 {
		t.Errorf("height() = %d, want 1 (value kept)", f.height())
	}
}

func TestExecJumpOrPopPopsWhenNotTaken(t *testing.T) {
	host := testhost.NewHost()
	f := NewFrame(&bytecode.CodeObject{}, testhost.NewModuleScope())
	f.push(host.NewBool(false))

	if err := f.execJumpOrPop(bytecode.Instruction{Op: bytecode.OpJumpIfTrueOrPop, Target: 3}, host); err != nil {
		t.Fatalf("execJumpOrPop returned error: %v", err)
	}
	if f.ip != 0 {
		t.Errorf("ip = %d, want 0 (no jump)", f.ip)
	}
	if f.height() != 0 {
		t.Errorf("height() = %d, want 0 (value popped)", f.height())
	}
}

func TestExecBreakPopsLoopAndJumpsToEnd(t *testing.T) {
	host := testhost.NewHost()
	f := NewFrame(&bytecode.CodeObject{}, testhost.NewModuleScope())
	f.pushBlock(Block{Kind: BlockLoop, Start: 0, End: 20})

	if err := f.execBreak(host); err != nil {
		t.Fatalf("execBreak returned error: %v", err)
	}
	if f.ip != 20 {
		t.Errorf("ip = %d, want 20", f.ip)
	}
	if len(f.blocks) != 0 {
		t.Errorf("blocks remaining = %d, want 0", len(f.blocks))
	}
}

func TestExecContinueJumpsToStartLeavesLoop(t *testing.T) {
	host := testhost.NewHost()
	f := NewFrame(&bytecode.CodeObject{}, testhost.NewModuleScope())
	f.pushBlock(Block{Kind: BlockLoop, Start: 4, End: 20})

	if err := f.execContinue(host); err != nil {
		t.Fatalf("execContinue returned error: %v", err)
	}
	if f.ip != 4 {
		t.Errorf("ip = %d, want 4", f.ip)
	}
	if len(f.blocks) != 1 {
		t.Errorf("blocks remaining = %d, want 1 (Loop block stays for Continue)", len(f.blocks))
	}
}

func TestExecGetIterPushesIterator(t *testing.T) {
	host := testhost.NewHost()
	f := NewFrame(&bytecode.CodeObject{}, testhost.NewModuleScope())
	f.push(host.NewList([]hostiface.Value{int64(1)}))

	if err := f.execGetIter(host); err != nil {
		t.Fatalf("execGetIter returned error: %v", err)
	}
	if f.height() != 1 {
		t.Errorf("height() = %d, want 1", f.height())
	}
}

func TestExecForIterYieldsThenExhausts(t *testing.T) {
	host := testhost.NewHost()
	f := NewFrame(&bytecode.CodeObject{}, testhost.NewModuleScope())
	list := host.NewList([]hostiface.Value{int64(1), int64(2)})
	f.push(list)
	if err := f.execGetIter(host); err != nil {
		t.Fatalf("execGetIter returned error: %v", err)
	}

	if err := f.execForIter(bytecode.Instruction{Target: 99}, host); err != nil {
		t.Fatalf("execForIter returned error: %v", err)
	}
	if f.pop() != int64(1) {
		t.Error("first ForIter did not push the first element")
	}

	if err := f.execForIter(bytecode.Instruction{Target: 99}, host); err != nil {
		t.Fatalf("execForIter returned error: %v", err)
	}
	if f.pop() != int64(2) {
		t.Error("second ForIter did not push the second element")
	}

	if err := f.execForIter(bytecode.Instruction{Target: 99}, host); err != nil {
		t.Fatalf("execForIter returned error: %v", err)
	}
	if f.ip != 99 {
		t.Errorf("ip after exhaustion = %d, want 99", f.ip)
	}
	if f.height() != 0 {
		t.Errorf("height() after exhaustion = %d, want 0 (iterator popped)", f.height())
	}
}
