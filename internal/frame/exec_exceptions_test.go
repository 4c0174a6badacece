package frame

import (
	"testing"

	"github.com/emberlang/ember/internal/bytecode"
	"github.com/emberlang/ember/internal/hostiface"
	"github.com/emberlang/ember/internal/testhost"
)

func TestExecPopExceptionClearsRegisterAndBlock(t *testing.T) {
	host := testhost.NewHost()
	f := NewFrame(&bytecode.CodeObject{}, testhost.NewModuleScope())
	f.pushBlock(Block{Kind: BlockExceptHandler})
	exc := &testhost.Exception{Class: testhost.ValueErrorClass}
	host.PushException(exc)

	f.execPopException(host)

	if len(f.blocks) != 0 {
		t.Errorf("blocks remaining = %d, want 0", len(f.blocks))
	}
	if host.CurrentException() != nil {
		t.Error("CurrentException() still set after PopException")
	}
}

func TestExecRaiseBareReraisesCurrent(t *testing.T) {
	host := testhost.NewHost()
	f := NewFrame(&bytecode.CodeObject{}, testhost.NewModuleScope())
	exc := &testhost.Exception{Class: testhost.ValueErrorClass}
	host.PushException(exc)

	err := f.execRaise(bytecode.Instruction{Arg: 0}, host)
	if err == nil {
		t.Fatal("execRaise(0) returned nil, want the reraised exception")
	}
	if re, ok := err.(*hostiface.RaisedError); !ok || re.Exc != hostiface.Value(exc) {
		t.Errorf("err = %v, want the current exception re-raised", err)
	}
}

func TestExecRaiseBareWithNoActiveExceptionFails(t *testing.T) {
	host := testhost.NewHost()
	f := NewFrame(&bytecode.CodeObject{}, testhost.NewModuleScope())

	err := f.execRaise(bytecode.Instruction{Arg: 0}, host)
	if err == nil {
		t.Fatal("execRaise(0) with no active exception: err = nil, want a RuntimeError")
	}
}

func TestExecRaiseOneArgInstantiatesClass(t *testing.T) {
	host := testhost.NewHost()
	f := NewFrame(&bytecode.CodeObject{}, testhost.NewModuleScope())
	f.push(testhost.ValueErrorClass)

	err := f.execRaise(bytecode.Instruction{Arg: 1}, host)
	if err == nil {
		t.Fatal("execRaise(1) returned nil, want the raised exception")
	}
	re, ok := err.(*hostiface.RaisedError)
	if !ok {
		t.Fatalf("err = %T, want *hostiface.RaisedError", err)
	}
	if inst, ok := re.Exc.(*testhost.Exception); !ok || inst.Class != testhost.ValueErrorClass {
		t.Errorf("raised %#v, want a ValueErrorClass instance", re.Exc)
	}
}

func TestExecRaiseTwoArgSetsCause(t *testing.T) {
	host := testhost.NewHost()
	f := NewFrame(&bytecode.CodeObject{}, testhost.NewModuleScope())
	cause := &testhost.Exception{Class: testhost.TypeErrorClass}
	exc := &testhost.Exception{Class: testhost.ValueErrorClass}
	f.push(exc)
	f.push(cause)

	err := f.execRaise(bytecode.Instruction{Arg: 2}, host)
	if err == nil {
		t.Fatal("execRaise(2) returned nil, want the raised exception")
	}
	if exc.Cause != hostiface.Value(cause) {
		t.Errorf("Cause = %v, want %v", exc.Cause, cause)
	}
}

func TestExecRaiseTwoArgInstantiatesClassCause(t *testing.T) {
	host := testhost.NewHost()
	f := NewFrame(&bytecode.CodeObject{}, testhost.NewModuleScope())
	exc := &testhost.Exception{Class: testhost.ValueErrorClass}
	f.push(exc)
	f.push(testhost.TypeErrorClass)

	err := f.execRaise(bytecode.Instruction{Arg: 2}, host)
	if err == nil {
		t.Fatal("execRaise(2) returned nil, want the raised exception")
	}
	causeInst, ok := exc.Cause.(*testhost.Exception)
	if !ok {
		t.Fatalf("Cause = %#v, want an *testhost.Exception instantiated from the pushed class", exc.Cause)
	}
	if causeInst.Class != testhost.TypeErrorClass {
		t.Errorf("Cause.Class = %v, want TypeErrorClass", causeInst.Class)
	}
}

func TestExecRaiseArgc3Panics(t *testing.T) {
	host := testhost.NewHost()
	f := NewFrame(&bytecode.CodeObject{}, testhost.NewModuleScope())

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("execRaise(3) did not panic")
		}
	}()
	_ = f.execRaise(bytecode.Instruction{Arg: 3}, host)
}
