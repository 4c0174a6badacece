package testhost

import (
	"github.com/emberlang/ember/internal/bytecode"
	"github.com/emberlang/ember/internal/hostiface"
)

// cell is a shared mutable box, as free/cell variables require: a nested
// function's Scope holds the *same* cell pointer as its enclosing
// function's, so a write in either is visible to the other.
type cell struct {
	val   hostiface.Value
	bound bool
}

// Scope is testhost's hostiface.Scope implementation: a local namespace,
// a shared module-level globals map, and a set of cells for free/cell
// variables.
type Scope struct {
	locals  map[string]hostiface.Value
	globals map[string]hostiface.Value
	cells   map[string]*cell
}

// NewModuleScope creates a top-level scope whose locals and globals are
// the same namespace, the way a module body's frame runs with
// globals-is-locals.
func NewModuleScope() *Scope {
	g := make(map[string]hostiface.Value)
	return &Scope{locals: g, globals: g, cells: make(map[string]*cell)}
}

// NewChildScope builds the scope for one call to a Function: fresh
// locals, the closure's globals (module-level namespace is shared, not
// copied), free variables' cells taken directly from the closure so
// writes are visible across nesting, and fresh cells for this code
// object's own CellVars.
func NewChildScope(closure *Scope, code *bytecode.CodeObject) *Scope {
	s := &Scope{
		locals:  make(map[string]hostiface.Value),
		globals: closure.globals,
		cells:   make(map[string]*cell),
	}
	for _, name := range code.FreeVars {
		if c, ok := closure.cells[name]; ok {
			s.cells[name] = c
		}
	}
	for _, name := range code.CellVars {
		s.cells[name] = &cell{}
	}
	return s
}

func (s *Scope) Load(kind hostiface.ScopeKind, name string) (hostiface.Value, bool) {
	switch kind {
	case hostiface.ScopeLocal:
		v, ok := s.locals[name]
		return v, ok
	case hostiface.ScopeGlobal:
		v, ok := s.globals[name]
		return v, ok
	case hostiface.ScopeCell:
		c, ok := s.cells[name]
		if !ok || !c.bound {
			return nil, false
		}
		return c.val, true
	}
	return nil, false
}

func (s *Scope) Store(kind hostiface.ScopeKind, name string, v hostiface.Value) {
	switch kind {
	case hostiface.ScopeLocal:
		s.locals[name] = v
	case hostiface.ScopeGlobal:
		s.globals[name] = v
	case hostiface.ScopeCell:
		c, ok := s.cells[name]
		if !ok {
			c = &cell{}
			s.cells[name] = c
		}
		c.val = v
		c.bound = true
	}
}

func (s *Scope) Delete(kind hostiface.ScopeKind, name string) bool {
	switch kind {
	case hostiface.ScopeLocal:
		if _, ok := s.locals[name]; !ok {
			return false
		}
		delete(s.locals, name)
		return true
	case hostiface.ScopeGlobal:
		if _, ok := s.globals[name]; !ok {
			return false
		}
		delete(s.globals, name)
		return true
	case hostiface.ScopeCell:
		c, ok := s.cells[name]
		if !ok || !c.bound {
			return false
		}
		c.bound = false
		c.val = nil
		return true
	}
	return false
}

func (s *Scope) Locals() map[string]hostiface.Value {
	out := make(map[string]hostiface.Value, len(s.locals))
	for k, v := range s.locals {
		out[k] = v
	}
	return out
}

func (s *Scope) GlobalsGet(name string) (hostiface.Value, bool) {
	v, ok := s.globals[name]
	return v, ok
}
