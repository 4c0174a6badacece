package frame

import (
	"testing"

	"github.com/emberlang/ember/internal/bytecode"
	"github.com/emberlang/ember/internal/hostiface"
	"github.com/emberlang/ember/internal/testhost"
)

func newInstance() *testhost.Instance {
	return &testhost.Instance{
		Class: &testhost.Class{Name: "Obj", Attrs: map[string]hostiface.Value{}},
		Attrs: map[string]hostiface.Value{},
	}
}

func TestExecLoadStoreDeleteAttr(t *testing.T) {
	host := testhost.NewHost()
	f := NewFrame(&bytecode.CodeObject{}, testhost.NewModuleScope())
	obj := newInstance()

	f.push(int64(7))
	f.push(obj)
	if err := f.execStoreAttr(bytecode.Instruction{Name: "n"}, host); err != nil {
		t.Fatalf("execStoreAttr returned error: %v", err)
	}

	f.push(obj)
	if err := f.execLoadAttr(bytecode.Instruction{Name: "n"}, host); err != nil {
		t.Fatalf("execLoadAttr returned error: %v", err)
	}
	if f.top() != int64(7) {
		t.Errorf("loaded attr = %v, want 7", f.top())
	}
	f.pop()

	f.push(obj)
	if err := f.execDeleteAttr(bytecode.Instruction{Name: "n"}, host); err != nil {
		t.Fatalf("execDeleteAttr returned error: %v", err)
	}

	f.push(obj)
	err := f.execLoadAttr(bytecode.Instruction{Name: "n"}, host)
	if err == nil {
		t.Fatal("execLoadAttr() after delete: err = nil, want AttributeError")
	}
}

func TestExecStoreSubscriptPopOrder(t *testing.T) {
	host := testhost.NewHost()
	f := NewFrame(&bytecode.CodeObject{}, testhost.NewModuleScope())
	list := host.NewList([]hostiface.Value{int64(0), int64(0)})

	f.push(int64(99)) // value
	f.push(list)       // container
	f.push(int64(0))  // index

	if err := f.execStoreSubscript(host); err != nil {
		t.Fatalf("execStoreSubscript returned error: %v", err)
	}
	got, err := host.GetItem(list, int64(0))
	if err != nil {
		t.Fatalf("GetItem returned error: %v", err)
	}
	if got != int64(99) {
		t.Errorf("list[0] = %v, want 99", got)
	}
}

func TestExecDeleteSubscript(t *testing.T) {
	host := testhost.NewHost()
	f := NewFrame(&bytecode.CodeObject{}, testhost.NewModuleScope())
	list := host.NewList([]hostiface.Value{int64(1), int64(2)})

	f.push(list)
	f.push(int64(0))
	if err := f.execDeleteSubscript(host); err != nil {
		t.Fatalf("execDeleteSubscript returned error: %v", err)
	}
	elems, _ := host.Extract(list)
	if len(elems) != 1 || elems[0] != int64(2) {
		t.Errorf("list after delete = %v, want [2]", elems)
	}
}
