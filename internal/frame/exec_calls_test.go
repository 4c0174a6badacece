package frame

import (
	"testing"

	"github.com/emberlang/ember/internal/bytecode"
	"github.com/emberlang/ember/internal/hostiface"
	"github.com/emberlang/ember/internal/testhost"
)

func TestExecReturnValuePopsAndUnwinds(t *testing.T) {
	host := testhost.NewHost()
	f := NewFrame(&bytecode.CodeObject{}, testhost.NewModuleScope())
	mgr := &testhost.Manager{EnterResult: testhost.None}
	f.pushBlock(Block{Kind: BlockWith, Manager: mgr})
	f.push(int64(9))

	sig, val, err := f.execReturnValue(host)
	if err != nil {
		t.Fatalf("execReturnValue returned error: %v", err)
	}
	if sig != sigReturn {
		t.Errorf("signal = %v, want sigReturn", sig)
	}
	if val != int64(9) {
		t.Errorf("value = %v, want 9", val)
	}
	if len(mgr.ExitCalls) != 1 || mgr.ExitCalls[0] != nil {
		t.Errorf("ExitCalls = %v, want one no-exception exit", mgr.ExitCalls)
	}
}

func TestExecMakeFunctionBuildsCallable(t *testing.T) {
	host := testhost.NewHost()
	inner := &bytecode.CodeObject{Name: "f", ArgNames: []string{"x"}}
	scope := testhost.NewModuleScope()
	f := NewFrame(&bytecode.CodeObject{}, scope)
	f.push(inner)
	f.push("mod.f")

	err := f.execMakeFunction(bytecode.Instruction{Arg: 0}, host)
	if err != nil {
		t.Fatalf("execMakeFunction returned error: %v", err)
	}
	fn, ok := f.top().(*testhost.Function)
	if !ok {
		t.Fatalf("top of stack = %T, want *testhost.Function", f.top())
	}
	if fn.Name != "f" || fn.Qualname != "mod.f" {
		t.Errorf("Name/Qualname = %q/%q, want f/mod.f", fn.Name, fn.Qualname)
	}
}

func TestExecCallFunctionPositional(t *testing.T) {
	host := testhost.NewHost()
	f := NewFrame(&bytecode.CodeObject{}, testhost.NewModuleScope())
	callee := &testhost.NativeFunc{Name: "add", Fn: func(args []hostiface.Value, kwargs map[string]hostiface.Value) (hostiface.Value, error) {
		return args[0].(int64) + args[1].(int64), nil
	}}
	f.push(callee)
	f.push(int64(3))
	f.push(int64(4))

	err := f.execCallFunction(bytecode.Instruction{Arg: int(bytecode.CallPositional), Arg2: 2}, host)
	if err != nil {
		t.Fatalf("execCallFunction returned error: %v", err)
	}
	if f.top() != int64(7) {
		t.Errorf("result = %v, want 7", f.top())
	}
}

func TestExecCallFunctionKeyword(t *testing.T) {
	host := testhost.NewHost()
	f := NewFrame(&bytecode.CodeObject{}, testhost.NewModuleScope())
	var gotKwargs map[string]hostiface.Value
	callee := &testhost.NativeFunc{Name: "f", Fn: func(args []hostiface.Value, kwargs map[string]hostiface.Value) (hostiface.Value, error) {
		gotKwargs = kwargs
		return testhost.None, nil
	}}
	f.push(callee)
	f.push(int64(1))  // positional
	f.push(int64(99)) // kw value for "y"
	f.push(host.NewTuple([]hostiface.Value{"y"}))

	err := f.execCallFunction(bytecode.Instruction{Arg: int(bytecode.CallKeyword), Arg2: 2}, host)
	if err != nil {
		t.Fatalf("execCallFunction returned error: %v", err)
	}
	if gotKwargs["y"] != int64(99) {
		t.Errorf("kwargs[y] = %v, want 99", gotKwargs["y"])
	}
}

func TestExecCallFunctionEx(t *testing.T) {
	host := testhost.NewHost()
	f := NewFrame(&bytecode.CodeObject{}, testhost.NewModuleScope())
	var gotArgs []hostiface.Value
	callee := &testhost.NativeFunc{Name: "f", Fn: func(args []hostiface.Value, kwargs map[string]hostiface.Value) (hostiface.Value, error) {
		gotArgs = args
		return testhost.None, nil
	}}
	f.push(callee)
	f.push(host.NewList([]hostiface.Value{int64(1), int64(2)}))

	err := f.execCallFunction(bytecode.Instruction{Arg: int(bytecode.CallEx), HasKwargs: false}, host)
	if err != nil {
		t.Fatalf("execCallFunction returned error: %v", err)
	}
	if len(gotArgs) != 2 || gotArgs[0] != int64(1) || gotArgs[1] != int64(2) {
		t.Errorf("args = %v, want [1 2]", gotArgs)
	}
}
