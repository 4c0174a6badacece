package frame

import (
	"github.com/emberlang/ember/internal/bytecode"
	"github.com/emberlang/ember/internal/hostiface"
)

// execLoadConst materializes a host object from the encoded constant at
// instr.Arg and pushes it. A nested *CodeObject constant (the operand
// MakeFunction expects) is a compiler artifact, not a host object, so it
// is pushed as-is rather than passed through the host's materializer.
func (f *Frame) execLoadConst(instr bytecode.Instruction, host hostiface.Host) error {
	encoded := f.Code.Constants[instr.Arg]
	if code, ok := encoded.(*bytecode.CodeObject); ok {
		f.push(code)
		return nil
	}
	v, err := host.LoadConst(encoded)
	if err != nil {
		return wrapHostErr(host, err)
	}
	f.push(v)
	return nil
}
