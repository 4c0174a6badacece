package testhost

import (
	"fmt"
	"strings"

	"github.com/emberlang/ember/internal/bytecode"
	"github.com/emberlang/ember/internal/hostiface"
)

// Host is testhost's hostiface.Host implementation.
type Host struct {
	currentException hostiface.Value
	Stdout            strings.Builder
	Modules           map[string]*Module

	// RunCode runs a *Function's code object in the scope Call builds for
	// it and returns its result. testhost does not import internal/frame
	// (frame's own tests import testhost), so the caller supplies this,
	// e.g. via frame.NewFrame(code, scope).Run; Call fails with a
	// type-error on a *Function while it is nil.
	RunCode func(code *bytecode.CodeObject, scope hostiface.Scope) (hostiface.Value, error)
}

// NewHost returns a Host with an empty exception register and output buffer.
func NewHost() *Host { return &Host{Modules: make(map[string]*Module)} }

// Manager is a test-only context manager: EnterContext returns EnterResult,
// ExitContext records each call's exc argument in ExitCalls, returns
// Suppress, and fails with ExitErr (consumed once) if set — enough to drive
// with-on-exception and break-through-with scenarios.
type Manager struct {
	EnterResult hostiface.Value
	Suppress    bool
	ExitCalls   []hostiface.Value
	ExitErr     error
}

var _ hostiface.Host = (*Host)(nil)

// --- Constants and primitives ---

func (h *Host) LoadConst(encoded any) (hostiface.Value, error) {
	switch v := encoded.(type) {
	case int:
		return int64(v), nil
	case int64, string, bool:
		return v, nil
	case nil:
		return None, nil
	default:
		return nil, h.typeErr(fmt.Sprintf("unsupported constant encoding %T", encoded))
	}
}

func (h *Host) None() hostiface.Value { return None }

func (h *Host) IsNone(v hostiface.Value) bool {
	_, ok := v.(*noneType)
	return ok || v == nil
}

// --- Attribute protocol ---

func (h *Host) GetAttr(obj hostiface.Value, name string) (hostiface.Value, error) {
	switch o := obj.(type) {
	case *Module:
		if v, ok := o.Attrs[name]; ok {
			return v, nil
		}
	case *Instance:
		if v, ok := o.Attrs[name]; ok {
			return v, nil
		}
		if v, ok := o.Class.Attrs[name]; ok {
			return v, nil
		}
	case *Class:
		if v, ok := o.Attrs[name]; ok {
			return v, nil
		}
	case *Exception:
		switch name {
		case "args":
			return &Tuple{Elems: []hostiface.Value{o.Msg}}, nil
		case "__cause__":
			return o.Cause, nil
		case "__context__":
			return o.Context, nil
		}
	}
	return nil, h.attrErr(obj, name)
}

func (h *Host) SetAttr(obj hostiface.Value, name string, v hostiface.Value) error {
	switch o := obj.(type) {
	case *Instance:
		o.Attrs[name] = v
		return nil
	case *Module:
		o.Attrs[name] = v
		return nil
	}
	return h.attrErr(obj, name)
}

func (h *Host) DelAttr(obj hostiface.Value, name string) error {
	switch o := obj.(type) {
	case *Instance:
		if _, ok := o.Attrs[name]; !ok {
			return h.attrErr(obj, name)
		}
		delete(o.Attrs, name)
		return nil
	}
	return h.attrErr(obj, name)
}

func (h *Host) attrErr(obj hostiface.Value, name string) error {
	return hostiface.NewRaisedError(hostiface.KindVMPropagated, &Exception{
		Class: AttributeErrorClass,
		Msg:   fmt.Sprintf("%T object has no attribute '%s'", obj, name),
	})
}

// --- Item protocol ---

func (h *Host) GetItem(obj, key hostiface.Value) (hostiface.Value, error) {
	switch o := obj.(type) {
	case *List:
		i, err := h.index(key, len(o.Elems))
		if err != nil {
			return nil, err
		}
		return o.Elems[i], nil
	case *Tuple:
		i, err := h.index(key, len(o.Elems))
		if err != nil {
			return nil, err
		}
		return o.Elems[i], nil
	case *Dict:
		for _, e := range o.entries {
			if h.equal(e.Key, key) {
				return e.Val, nil
			}
		}
		return nil, hostiface.NewRaisedError(hostiface.KindVMPropagated, &Exception{Class: KeyErrorClass, Msg: fmt.Sprintf("%v", key)})
	case string:
		i, err := h.index(key, len(o))
		if err != nil {
			return nil, err
		}
		return string(o[i]), nil
	}
	return nil, h.typeErr(fmt.Sprintf("%T is not subscriptable", obj))
}

func (h *Host) SetItem(obj, key, v hostiface.Value) error {
	switch o := obj.(type) {
	case *List:
		i, err := h.index(key, len(o.Elems))
		if err != nil {
			return err
		}
		o.Elems[i] = v
		return nil
	case *Dict:
		for i, e := range o.entries {
			if h.equal(e.Key, key) {
				o.entries[i].Val = v
				return nil
			}
		}
		o.entries = append(o.entries, dictEntry{Key: key, Val: v})
		return nil
	}
	return h.typeErr(fmt.Sprintf("%T does not support item assignment", obj))
}

func (h *Host) DelItem(obj, key hostiface.Value) error {
	switch o := obj.(type) {
	case *List:
		i, err := h.index(key, len(o.Elems))
		if err != nil {
			return err
		}
		o.Elems = append(o.Elems[:i], o.Elems[i+1:]...)
		return nil
	case *Dict:
		for i, e := range o.entries {
			if h.equal(e.Key, key) {
				o.entries = append(o.entries[:i], o.entries[i+1:]...)
				return nil
			}
		}
		return hostiface.NewRaisedError(hostiface.KindVMPropagated, &Exception{Class: KeyErrorClass, Msg: fmt.Sprintf("%v", key)})
	}
	return h.typeErr(fmt.Sprintf("%T does not support item deletion", obj))
}

func (h *Host) index(key hostiface.Value, n int) (int, error) {
	i, ok := key.(int64)
	if !ok {
		return 0, h.typeErr("index must be an integer")
	}
	idx := int(i)
	if idx < 0 {
		idx += n
	}
	if idx < 0 || idx >= n {
		return 0, hostiface.NewRaisedError(hostiface.KindVMPropagated, &Exception{Class: IndexErrorClass, Msg: "index out of range"})
	}
	return idx, nil
}

// --- Operator dispatch ---

func (h *Host) BinaryOp(op bytecode.BinOp, a, b hostiface.Value, inPlace bool) (hostiface.Value, error) {
	if op == bytecode.BinAdd {
		if as, ok := a.(string); ok {
			bs, ok := b.(string)
			if !ok {
				return nil, h.typeErr("can only concatenate str to str")
			}
			return as + bs, nil
		}
		if al, ok := a.(*List); ok {
			bl, ok := b.(*List)
			if !ok {
				return nil, h.typeErr("can only concatenate list to list")
			}
			out := make([]hostiface.Value, 0, len(al.Elems)+len(bl.Elems))
			out = append(out, al.Elems...)
			out = append(out, bl.Elems...)
			if inPlace {
				al.Elems = out
				return al, nil
			}
			return &List{Elems: out}, nil
		}
	}

	ai, aok := a.(int64)
	bi, bok := b.(int64)
	if !aok || !bok {
		return nil, h.typeErr(fmt.Sprintf("unsupported operand type(s) for %s", op))
	}
	switch op {
	case bytecode.BinAdd:
		return ai + bi, nil
	case bytecode.BinSub:
		return ai - bi, nil
	case bytecode.BinMul:
		return ai * bi, nil
	case bytecode.BinFloorDiv:
		if bi == 0 {
			return nil, hostiface.NewRaisedError(hostiface.KindVMPropagated, &Exception{Class: ValueErrorClass, Msg: "division by zero"})
		}
		return ai / bi, nil
	case bytecode.BinTrueDiv:
		if bi == 0 {
			return nil, hostiface.NewRaisedError(hostiface.KindVMPropagated, &Exception{Class: ValueErrorClass, Msg: "division by zero"})
		}
		return ai / bi, nil
	case bytecode.BinMod:
		if bi == 0 {
			return nil, hostiface.NewRaisedError(hostiface.KindVMPropagated, &Exception{Class: ValueErrorClass, Msg: "modulo by zero"})
		}
		return ai % bi, nil
	case bytecode.BinLShift:
		return ai << uint(bi), nil
	case bytecode.BinRShift:
		return ai >> uint(bi), nil
	case bytecode.BinAnd:
		return ai & bi, nil
	case bytecode.BinOr:
		return ai | bi, nil
	case bytecode.BinXor:
		return ai ^ bi, nil
	case bytecode.BinPow:
		result := int64(1)
		for i := int64(0); i < bi; i++ {
			result *= ai
		}
		return result, nil
	}
	return nil, h.typeErr(fmt.Sprintf("unsupported operator %s", op))
}

func (h *Host) UnaryOp(op bytecode.UnaryOp, a hostiface.Value) (hostiface.Value, error) {
	ai, ok := a.(int64)
	if !ok {
		return nil, h.typeErr("unsupported operand for unary operator")
	}
	switch op {
	case bytecode.UnaryNeg:
		return -ai, nil
	case bytecode.UnaryPos:
		return ai, nil
	case bytecode.UnaryInvert:
		return ^ai, nil
	}
	return nil, h.typeErr("unsupported unary operator")
}

func (h *Host) Compare(op bytecode.CompareOp, a, b hostiface.Value) (hostiface.Value, error) {
	switch op {
	case bytecode.CmpEq:
		return h.equal(a, b), nil
	case bytecode.CmpNe:
		return !h.equal(a, b), nil
	case bytecode.CmpLt, bytecode.CmpLe, bytecode.CmpGt, bytecode.CmpGe:
		return h.compareOrdered(op, a, b)
	case bytecode.CmpIn, bytecode.CmpNotIn:
		contains, err := h.contains(b, a)
		if err != nil {
			return nil, err
		}
		return contains, nil
	}
	return nil, h.typeErr("unsupported comparison")
}

func (h *Host) compareOrdered(op bytecode.CompareOp, a, b hostiface.Value) (hostiface.Value, error) {
	var lt, eq bool
	switch av := a.(type) {
	case int64:
		bv, ok := b.(int64)
		if !ok {
			return nil, h.typeErr("unorderable types")
		}
		lt, eq = av < bv, av == bv
	case string:
		bv, ok := b.(string)
		if !ok {
			return nil, h.typeErr("unorderable types")
		}
		lt, eq = av < bv, av == bv
	default:
		return nil, h.typeErr("unorderable types")
	}
	switch op {
	case bytecode.CmpLt:
		return lt, nil
	case bytecode.CmpLe:
		return lt || eq, nil
	case bytecode.CmpGt:
		return !lt && !eq, nil
	default: // CmpGe
		return !lt || eq, nil
	}
}

func (h *Host) contains(container, elem hostiface.Value) (bool, error) {
	switch c := container.(type) {
	case *List:
		for _, e := range c.Elems {
			if h.equal(e, elem) {
				return true, nil
			}
		}
		return false, nil
	case *Tuple:
		for _, e := range c.Elems {
			if h.equal(e, elem) {
				return true, nil
			}
		}
		return false, nil
	case *Dict:
		for _, e := range c.entries {
			if h.equal(e.Key, elem) {
				return true, nil
			}
		}
		return false, nil
	case string:
		es, ok := elem.(string)
		if !ok {
			return false, h.typeErr("'in <string>' requires string as left operand")
		}
		return strings.Contains(c, es), nil
	}
	return false, h.typeErr(fmt.Sprintf("argument of type '%T' is not iterable", container))
}

func (h *Host) equal(a, b hostiface.Value) bool {
	if h.IsNone(a) || h.IsNone(b) {
		return h.IsNone(a) && h.IsNone(b)
	}
	switch av := a.(type) {
	case int64:
		bv, ok := b.(int64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case *List:
		bv, ok := b.(*List)
		if !ok || len(av.Elems) != len(bv.Elems) {
			return false
		}
		for i := range av.Elems {
			if !h.equal(av.Elems[i], bv.Elems[i]) {
				return false
			}
		}
		return true
	case *Tuple:
		bv, ok := b.(*Tuple)
		if !ok || len(av.Elems) != len(bv.Elems) {
			return false
		}
		for i := range av.Elems {
			if !h.equal(av.Elems[i], bv.Elems[i]) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}

func (h *Host) Bool(v hostiface.Value) (bool, error) {
	switch o := v.(type) {
	case bool:
		return o, nil
	case int64:
		return o != 0, nil
	case string:
		return o != "", nil
	case *List:
		return len(o.Elems) > 0, nil
	case *Tuple:
		return len(o.Elems) > 0, nil
	case *Dict:
		return len(o.entries) > 0, nil
	case *noneType:
		return false, nil
	default:
		return true, nil
	}
}

func (h *Host) NewBool(b bool) hostiface.Value { return b }

func (h *Host) Str(v hostiface.Value) (string, error) {
	return h.render(v, false), nil
}

func (h *Host) Repr(v hostiface.Value) (string, error) {
	return h.render(v, true), nil
}

func (h *Host) render(v hostiface.Value, repr bool) string {
	switch o := v.(type) {
	case string:
		if repr {
			return fmt.Sprintf("%q", o)
		}
		return o
	case *noneType:
		return "None"
	case nil:
		return "None"
	case *List:
		parts := make([]string, len(o.Elems))
		for i, e := range o.Elems {
			parts[i] = h.render(e, true)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *Tuple:
		parts := make([]string, len(o.Elems))
		for i, e := range o.Elems {
			parts[i] = h.render(e, true)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	default:
		return fmt.Sprintf("%v", o)
	}
}

func (h *Host) ToStr(v hostiface.Value) (hostiface.Value, error) {
	s, _ := h.Str(v)
	return s, nil
}

func (h *Host) ToRepr(v hostiface.Value) (hostiface.Value, error) {
	s, _ := h.Repr(v)
	return s, nil
}

func (h *Host) Format(v hostiface.Value, spec string) (hostiface.Value, error) {
	if spec == "" {
		s, _ := h.Str(v)
		return s, nil
	}
	return nil, h.typeErr("unsupported format spec " + spec)
}

// --- Iteration ---

func (h *Host) Iter(v hostiface.Value) (hostiface.Value, error) {
	switch o := v.(type) {
	case *List:
		return &listIterator{list: o}, nil
	case *Tuple:
		return &listIterator{list: &List{Elems: o.Elems}}, nil
	case *rangeIterator:
		return o, nil
	}
	return nil, h.typeErr(fmt.Sprintf("%T is not iterable", v))
}

func (h *Host) Next(iterator hostiface.Value) (hostiface.Value, bool, error) {
	switch it := iterator.(type) {
	case *listIterator:
		if it.idx >= len(it.list.Elems) {
			return nil, false, nil
		}
		v := it.list.Elems[it.idx]
		it.idx++
		return v, true, nil
	case *rangeIterator:
		if (it.step > 0 && it.cur >= it.stop) || (it.step < 0 && it.cur <= it.stop) {
			return nil, false, nil
		}
		v := it.cur
		it.cur += it.step
		return v, true, nil
	}
	return nil, false, h.typeErr(fmt.Sprintf("%T is not an iterator", iterator))
}

func (h *Host) Extract(v hostiface.Value) ([]hostiface.Value, error) {
	switch o := v.(type) {
	case *List:
		return append([]hostiface.Value(nil), o.Elems...), nil
	case *Tuple:
		return append([]hostiface.Value(nil), o.Elems...), nil
	case string:
		out := make([]hostiface.Value, len(o))
		for i, r := range []byte(o) {
			out[i] = string(r)
		}
		return out, nil
	}
	return nil, h.typeErr(fmt.Sprintf("cannot unpack non-iterable %T", v))
}

// NewRange builds a range iterator value, a testhost-only convenience
// (the frame and spec have no BuildRange opcode; demo code/tests call
// this directly to seed a for-loop).
func NewRange(start, stop, step int64) hostiface.Value {
	return &rangeIterator{cur: start, stop: stop, step: step}
}

// --- Container construction ---

func (h *Host) NewList(elems []hostiface.Value) hostiface.Value {
	return &List{Elems: append([]hostiface.Value(nil), elems...)}
}

func (h *Host) NewSet(elems []hostiface.Value) hostiface.Value {
	s := &Set{}
	for _, e := range elems {
		dup := false
		for _, existing := range s.Elems {
			if h.equal(existing, e) {
				dup = true
				break
			}
		}
		if !dup {
			s.Elems = append(s.Elems, e)
		}
	}
	return s
}

func (h *Host) NewTuple(elems []hostiface.Value) hostiface.Value {
	return &Tuple{Elems: append([]hostiface.Value(nil), elems...)}
}

func (h *Host) NewMap(keys, vals []hostiface.Value) (hostiface.Value, error) {
	if len(keys) != len(vals) {
		return nil, h.typeErr("mismatched key/value counts")
	}
	d := &Dict{}
	for i := range keys {
		d.entries = append(d.entries, dictEntry{Key: keys[i], Val: vals[i]})
	}
	return d, nil
}

func (h *Host) DictItems(v hostiface.Value) (keys, vals []hostiface.Value, err error) {
	d, ok := v.(*Dict)
	if !ok {
		return nil, nil, h.typeErr(fmt.Sprintf("%T is not a dict", v))
	}
	for _, e := range d.entries {
		keys = append(keys, e.Key)
		vals = append(vals, e.Val)
	}
	return keys, vals, nil
}

func (h *Host) NewSlice(start, stop, step hostiface.Value) hostiface.Value {
	return &Slice{Start: start, Stop: stop, Step: step}
}

func (h *Host) ConcatStrings(parts []hostiface.Value) (hostiface.Value, error) {
	var b strings.Builder
	for _, p := range parts {
		s, ok := p.(string)
		if !ok {
			return nil, h.typeErr("BuildString operand is not a string")
		}
		b.WriteString(s)
	}
	return b.String(), nil
}

func (h *Host) Append(container, v hostiface.Value) error {
	l, ok := container.(*List)
	if !ok {
		return h.typeErr("append target is not a list")
	}
	l.Elems = append(l.Elems, v)
	return nil
}

func (h *Host) Add(container, v hostiface.Value) error {
	s, ok := container.(*Set)
	if !ok {
		return h.typeErr("add target is not a set")
	}
	for _, e := range s.Elems {
		if h.equal(e, v) {
			return nil
		}
	}
	s.Elems = append(s.Elems, v)
	return nil
}

// --- Exceptions ---

func (h *Host) typeErr(msg string) error {
	return hostiface.NewRaisedError(hostiface.KindTypeError, &Exception{Class: TypeErrorClass, Msg: msg})
}

func (h *Host) NewTypeError(msg string) hostiface.Value {
	return &Exception{Class: TypeErrorClass, Msg: msg}
}
func (h *Host) NewNameError(msg string) hostiface.Value {
	return &Exception{Class: NameErrorClass, Msg: msg}
}
func (h *Host) NewImportError(msg string) hostiface.Value {
	return &Exception{Class: ImportErrorClass, Msg: msg}
}
func (h *Host) NewValueError(msg string) hostiface.Value {
	return &Exception{Class: ValueErrorClass, Msg: msg}
}
func (h *Host) NewRuntimeError(msg string) hostiface.Value {
	return &Exception{Class: RuntimeErrorClass, Msg: msg}
}

func (h *Host) NewException(typ hostiface.Value, msg string) hostiface.Value {
	class, ok := typ.(*ExceptionClass)
	if !ok {
		class = RuntimeErrorClass
	}
	return &Exception{Class: class, Msg: msg}
}

func (h *Host) IsExceptionClass(v hostiface.Value) bool {
	_, ok := v.(*ExceptionClass)
	return ok
}

func (h *Host) IsExceptionInstance(v hostiface.Value) bool {
	_, ok := v.(*Exception)
	return ok
}

func (h *Host) NewEmptyException(typ hostiface.Value) (hostiface.Value, error) {
	class, ok := typ.(*ExceptionClass)
	if !ok {
		return nil, h.typeErr("not an exception class")
	}
	return &Exception{Class: class}, nil
}

func (h *Host) SetCause(exc, cause hostiface.Value) {
	if e, ok := exc.(*Exception); ok {
		e.Cause = cause
	}
}

func (h *Host) SetContext(exc, context hostiface.Value) {
	if e, ok := exc.(*Exception); ok {
		e.Context = context
	}
}

func (h *Host) AppendTraceback(exc hostiface.Value, path string, line int, name string) error {
	if e, ok := exc.(*Exception); ok {
		e.Traceback = append(e.Traceback, TracebackEntry{Path: path, Line: line, Name: name})
	}
	return nil
}

func (h *Host) CurrentException() hostiface.Value { return h.currentException }

func (h *Host) PushException(exc hostiface.Value) { h.currentException = exc }

func (h *Host) PopException() { h.currentException = nil }

// --- Context managers ---

func (h *Host) EnterContext(manager hostiface.Value) (hostiface.Value, error) {
	m, ok := manager.(*Manager)
	if !ok {
		return nil, h.typeErr(fmt.Sprintf("%T is not a context manager", manager))
	}
	return m.EnterResult, nil
}

func (h *Host) ExitContext(manager, exc hostiface.Value) (bool, error) {
	m, ok := manager.(*Manager)
	if !ok {
		return false, h.typeErr(fmt.Sprintf("%T is not a context manager", manager))
	}
	m.ExitCalls = append(m.ExitCalls, exc)
	if m.ExitErr != nil {
		err := m.ExitErr
		m.ExitErr = nil
		return false, err
	}
	return m.Suppress, nil
}

// --- Import ---

func (h *Host) Import(name string, fromList []string, level int) (hostiface.Value, error) {
	if h.Modules == nil {
		return nil, hostiface.NewRaisedError(hostiface.KindImportError, &Exception{Class: ImportErrorClass, Msg: "no module named '" + name + "'"})
	}
	mod, ok := h.Modules[name]
	if !ok {
		return nil, hostiface.NewRaisedError(hostiface.KindImportError, &Exception{Class: ImportErrorClass, Msg: "no module named '" + name + "'"})
	}
	return mod, nil
}

func (h *Host) ImportStarNames(module hostiface.Value) (map[string]hostiface.Value, error) {
	m, ok := module.(*Module)
	if !ok {
		return nil, h.typeErr("ImportStar operand is not a module")
	}
	out := make(map[string]hostiface.Value)
	for name, v := range m.Attrs {
		if !strings.HasPrefix(name, "_") {
			out[name] = v
		}
	}
	return out, nil
}

// --- Functions and classes ---

func (h *Host) NewFunction(code *bytecode.CodeObject, scope hostiface.Scope, qualname string, module hostiface.Value, defaults, kwOnlyDefaults, annotations hostiface.Value) hostiface.Value {
	return &Function{
		Code:           code,
		Closure:        scope,
		Name:           lastDottedSegment(qualname),
		Qualname:       qualname,
		Module:         module,
		Defaults:       defaults,
		KwOnlyDefaults: kwOnlyDefaults,
		Annotations:    annotations,
	}
}

func (h *Host) ClassBuilder() hostiface.Value {
	return &NativeFunc{Name: "__build_class__", Fn: func(args []hostiface.Value, kwargs map[string]hostiface.Value) (hostiface.Value, error) {
		name := "object"
		if len(args) > 0 {
			if s, ok := args[0].(string); ok {
				name = s
			}
		}
		return &Class{Name: name, Attrs: make(map[string]hostiface.Value)}, nil
	}}
}

func (h *Host) Call(callable hostiface.Value, args []hostiface.Value, kwargs map[string]hostiface.Value) (hostiface.Value, error) {
	switch fn := callable.(type) {
	case *NativeFunc:
		return fn.Fn(args, kwargs)
	case *Class:
		inst := &Instance{Class: fn, Attrs: make(map[string]hostiface.Value)}
		return inst, nil
	case *Function:
		closure, ok := fn.Closure.(*Scope)
		if !ok {
			return nil, h.typeErr("function closure is not a testhost.Scope")
		}
		scope := NewChildScope(closure, fn.Code)
		for i, pname := range fn.Code.ArgNames {
			if i < len(args) {
				scope.Store(hostiface.ScopeLocal, pname, args[i])
			}
		}
		for name, v := range kwargs {
			scope.Store(hostiface.ScopeLocal, name, v)
		}
		if h.RunCode == nil {
			return nil, h.typeErr("Host.RunCode is not set, cannot run a Function")
		}
		return h.RunCode(fn.Code, scope)
	}
	return nil, h.typeErr(fmt.Sprintf("%T is not callable", callable))
}

// --- Output ---

func (h *Host) Print(s string) error {
	h.Stdout.WriteString(s)
	h.Stdout.WriteByte('\n')
	return nil
}
