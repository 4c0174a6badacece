package frame

import (
	"fmt"

	"github.com/emberlang/ember/internal/bytecode"
	"github.com/emberlang/ember/internal/hostiface"
)

// pushReversed pushes elems so the first element ends at the top of the
// stack, the order UnpackSequence/Unpack's stored-name pops expect.
func (f *Frame) pushReversed(elems []hostiface.Value) {
	for i := len(elems) - 1; i >= 0; i-- {
		f.push(elems[i])
	}
}

// execUnpackSequence implements UnpackSequence(n): pop a value, extract
// its elements, require exactly n, push in reverse so the first element
// ends at top.
func (f *Frame) execUnpackSequence(instr bytecode.Instruction, host hostiface.Host) error {
	v := f.pop()
	elems, err := host.Extract(v)
	if err != nil {
		return wrapHostErr(host, err)
	}
	if len(elems) != instr.Arg {
		return raise(hostiface.KindValueError, host.NewValueError(
			fmt.Sprintf("expected %d values to unpack, got %d", instr.Arg, len(elems))))
	}
	f.pushReversed(elems)
	return nil
}

// execUnpackEx implements UnpackEx(before, after): same as
// UnpackSequence but the middle is packed into a list; requires at least
// before+after elements. The final pop order (first pop to last) is the
// before-names in order, then the middle list, then the after-names in
// order, which is achieved by pushing the after-part reversed, then the
// middle list, then the before-part reversed.
func (f *Frame) execUnpackEx(instr bytecode.Instruction, host hostiface.Host) error {
	before, after := instr.Arg, instr.Arg2
	v := f.pop()
	elems, err := host.Extract(v)
	if err != nil {
		return wrapHostErr(host, err)
	}
	if len(elems) < before+after {
		return raise(hostiface.KindValueError, host.NewValueError(
			fmt.Sprintf("not enough values to unpack (expected at least %d, got %d)", before+after, len(elems))))
	}
	beforeVals := elems[:before]
	afterVals := elems[len(elems)-after:]
	middle := elems[before : len(elems)-after]

	f.pushReversed(afterVals)
	f.push(host.NewList(middle))
	f.pushReversed(beforeVals)
	return nil
}

// execUnpack implements Unpack: extract and push reversed, with no count
// check.
func (f *Frame) execUnpack(host hostiface.Host) error {
	v := f.pop()
	elems, err := host.Extract(v)
	if err != nil {
		return wrapHostErr(host, err)
	}
	f.pushReversed(elems)
	return nil
}
