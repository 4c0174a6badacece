package frame

import (
	"testing"

	"github.com/emberlang/ember/internal/bytecode"
	"github.com/emberlang/ember/internal/hostiface"
	"github.com/emberlang/ember/internal/testhost"
)

func TestExecStoreAndLoadLocal(t *testing.T) {
	host := testhost.NewHost()
	f := NewFrame(&bytecode.CodeObject{}, testhost.NewModuleScope())
	f.push(int64(42))

	if err := f.execStoreName(bytecode.Instruction{Op: bytecode.OpStoreLocal, Name: "x"}, host); err != nil {
		t.Fatalf("execStoreName returned error: %v", err)
	}
	if err := f.execLoadName(bytecode.Instruction{Op: bytecode.OpLoadLocal, Name: "x"}, host); err != nil {
		t.Fatalf("execLoadName returned error: %v", err)
	}
	if f.top() != int64(42) {
		t.Errorf("loaded = %v, want 42", f.top())
	}
}

func TestExecLoadNameUndefinedRaisesNameError(t *testing.T) {
	host := testhost.NewHost()
	f := NewFrame(&bytecode.CodeObject{}, testhost.NewModuleScope())

	err := f.execLoadName(bytecode.Instruction{Op: bytecode.OpLoadGlobal, Name: "missing"}, host)
	if err == nil {
		t.Fatal("execLoadName() on an undefined global: err = nil, want NameError")
	}
}

func TestExecDeleteNameMissingRaises(t *testing.T) {
	host := testhost.NewHost()
	f := NewFrame(&bytecode.CodeObject{}, testhost.NewModuleScope())

	err := f.execDeleteName(bytecode.Instruction{Op: bytecode.OpDeleteLocal, Name: "nope"}, host)
	if err == nil {
		t.Fatal("execDeleteName() on an undefined local: err = nil, want NameError")
	}
}

func TestExecDeleteNameRemovesBinding(t *testing.T) {
	host := testhost.NewHost()
	f := NewFrame(&bytecode.CodeObject{}, testhost.NewModuleScope())
	f.Scope.Store(hostiface.ScopeLocal, "x", int64(1))

	if err := f.execDeleteName(bytecode.Instruction{Op: bytecode.OpDeleteLocal, Name: "x"}, host); err != nil {
		t.Fatalf("execDeleteName returned error: %v", err)
	}
	if _, ok := f.Scope.Load(hostiface.ScopeLocal, "x"); ok {
		t.Error("x still bound after delete")
	}
}
