package frame

import (
	"testing"

	"github.com/emberlang/ember/internal/bytecode"
	"github.com/emberlang/ember/internal/testhost"
)

func TestExecLoadConstMaterializesHostValue(t *testing.T) {
	host := testhost.NewHost()
	code := &bytecode.CodeObject{Constants: []any{42, "hi"}}
	f := NewFrame(code, testhost.NewModuleScope())

	if err := f.execLoadConst(bytecode.Instruction{Arg: 0}, host); err != nil {
		t.Fatalf("execLoadConst returned error: %v", err)
	}
	if f.top() != int64(42) {
		t.Errorf("top() = %v, want 42", f.top())
	}

	if err := f.execLoadConst(bytecode.Instruction{Arg: 1}, host); err != nil {
		t.Fatalf("execLoadConst returned error: %v", err)
	}
	if f.top() != "hi" {
		t.Errorf("top() = %v, want hi", f.top())
	}
}

func TestExecLoadConstPushesNestedCodeObjectAsIs(t *testing.T) {
	host := testhost.NewHost()
	inner := &bytecode.CodeObject{Name: "<inner>"}
	code := &bytecode.CodeObject{Constants: []any{inner}}
	f := NewFrame(code, testhost.NewModuleScope())

	if err := f.execLoadConst(bytecode.Instruction{Arg: 0}, host); err != nil {
		t.Fatalf("execLoadConst returned error: %v", err)
	}
	got, ok := f.top().(*bytecode.CodeObject)
	if !ok || got != inner {
		t.Errorf("top() = %v, want the nested code object unchanged", f.top())
	}
}
