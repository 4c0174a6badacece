package frame

import (
	"github.com/emberlang/ember/internal/bytecode"
	"github.com/emberlang/ember/internal/hostiface"
)

// execPopException implements PopException: pop an ExceptHandler block
// and clear the host's current-exception register.
func (f *Frame) execPopException(host hostiface.Host) {
	f.popBlock()
	host.PopException()
}

// execRaise implements Raise(argc): a bare reraise of the host's current
// exception, a one-operand raise of a class or instance, or a two-operand
// raise that also sets the cause via `raise exc from cause`. argc==3 is
// deliberately unimplemented and treated as fatal; nothing in this
// subsystem's opcode set ever compiles it.
func (f *Frame) execRaise(instr bytecode.Instruction, host hostiface.Host) error {
	switch instr.Arg {
	case 0:
		cur := host.CurrentException()
		if cur == nil {
			return raise(hostiface.KindRuntimeError, host.NewRuntimeError("No active exception to reraise"))
		}
		return raise(hostiface.KindVMPropagated, cur)

	case 1:
		exc, err := f.getException(host, false)
		if err != nil {
			return err
		}
		if ctx := host.CurrentException(); ctx != nil {
			host.SetContext(exc, ctx)
		}
		return raise(hostiface.KindVMPropagated, exc)

	case 2:
		rawCause := f.pop()
		exc, err := f.getException(host, false)
		if err != nil {
			return err
		}
		cause, err := resolveException(host, rawCause, true)
		if err != nil {
			return err
		}
		host.SetCause(exc, cause)
		if ctx := host.CurrentException(); ctx != nil {
			host.SetContext(exc, ctx)
		}
		return raise(hostiface.KindVMPropagated, exc)

	default:
		hostiface.Panic("Raise argc=3 is not implemented")
		return nil
	}
}
