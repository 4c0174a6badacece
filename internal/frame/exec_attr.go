package frame

import (
	"github.com/emberlang/ember/internal/bytecode"
	"github.com/emberlang/ember/internal/hostiface"
)

// execLoadAttr pops the parent, delegates to the host's attribute getter,
// and pushes the result.
func (f *Frame) execLoadAttr(instr bytecode.Instruction, host hostiface.Host) error {
	parent := f.pop()
	v, err := host.GetAttr(parent, instr.Name)
	if err != nil {
		return wrapHostErr(host, err)
	}
	f.push(v)
	return nil
}

// execStoreAttr pops parent then value — value sits below parent on the
// stack — and delegates to the host's attribute setter.
func (f *Frame) execStoreAttr(instr bytecode.Instruction, host hostiface.Host) error {
	parent := f.pop()
	value := f.pop()
	if err := host.SetAttr(parent, instr.Name, value); err != nil {
		return wrapHostErr(host, err)
	}
	return nil
}

// execDeleteAttr pops the parent and deletes the attribute.
func (f *Frame) execDeleteAttr(instr bytecode.Instruction, host hostiface.Host) error {
	parent := f.pop()
	if err := host.DelAttr(parent, instr.Name); err != nil {
		return wrapHostErr(host, err)
	}
	return nil
}

// execStoreSubscript pops in order index, container, value and performs
// container[index] = value.
func (f *Frame) execStoreSubscript(host hostiface.Host) error {
	index := f.pop()
	container := f.pop()
	value := f.pop()
	if err := host.SetItem(container, index, value); err != nil {
		return wrapHostErr(host, err)
	}
	return nil
}

// execDeleteSubscript pops index then container and deletes container[index].
func (f *Frame) execDeleteSubscript(host hostiface.Host) error {
	index := f.pop()
	container := f.pop()
	if err := host.DelItem(container, index); err != nil {
		return wrapHostErr(host, err)
	}
	return nil
}
