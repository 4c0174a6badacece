package frame

import (
	"fmt"

	"github.com/emberlang/ember/internal/bytecode"
	"github.com/emberlang/ember/internal/hostiface"
)

func scopeKindFor(op bytecode.Opcode) hostiface.ScopeKind {
	switch op {
	case bytecode.OpLoadLocal, bytecode.OpStoreLocal, bytecode.OpDeleteLocal:
		return hostiface.ScopeLocal
	case bytecode.OpLoadGlobal, bytecode.OpStoreGlobal, bytecode.OpDeleteGlobal:
		return hostiface.ScopeGlobal
	default:
		return hostiface.ScopeCell
	}
}

func isCellVar(code *bytecode.CodeObject, name string) bool {
	for _, n := range code.CellVars {
		if n == name {
			return true
		}
	}
	return false
}

// execLoadName consults the scope in the requested variant; a miss fails
// with name-undefined. For the cell variant, a declared-but-unbound
// CellVar reads as an unbound-local message while a never-bound FreeVar
// reads as a plain undefined name — the same distinction ATSOTECK-rage's
// vm_dispatch.go draws between OpLoadDeref's CellVars and FreeVars cases.
func (f *Frame) execLoadName(instr bytecode.Instruction, host hostiface.Host) error {
	kind := scopeKindFor(instr.Op)
	v, ok := f.Scope.Load(kind, instr.Name)
	if !ok {
		var msg string
		switch {
		case kind == hostiface.ScopeCell && isCellVar(f.Code, instr.Name):
			msg = fmt.Sprintf("local variable '%s' referenced before assignment", instr.Name)
		case kind == hostiface.ScopeLocal:
			msg = fmt.Sprintf("local variable '%s' referenced before assignment", instr.Name)
		default:
			msg = fmt.Sprintf("name '%s' is not defined", instr.Name)
		}
		return raise(hostiface.KindNameUndefined, host.NewNameError(msg))
	}
	f.push(v)
	return nil
}

// execStoreName implements StoreName: pop a value and store it.
func (f *Frame) execStoreName(instr bytecode.Instruction, host hostiface.Host) error {
	kind := scopeKindFor(instr.Op)
	v := f.pop()
	f.Scope.Store(kind, instr.Name, v)
	return nil
}

// execDeleteName implements DeleteName: delete; a missing name fails with
// name-undefined.
func (f *Frame) execDeleteName(instr bytecode.Instruction, host hostiface.Host) error {
	kind := scopeKindFor(instr.Op)
	if ok := f.Scope.Delete(kind, instr.Name); !ok {
		return raise(hostiface.KindNameUndefined, host.NewNameError(fmt.Sprintf("name '%s' is not defined", instr.Name)))
	}
	return nil
}
