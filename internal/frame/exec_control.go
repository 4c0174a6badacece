package frame

import (
	"github.com/emberlang/ember/internal/bytecode"
	"github.com/emberlang/ember/internal/hostiface"
)

// execJumpIf implements JumpIfTrue(t)/JumpIfFalse(t): pop and jump
// conditionally.
func (f *Frame) execJumpIf(instr bytecode.Instruction, host hostiface.Host) error {
	v := f.pop()
	b, err := host.Bool(v)
	if err != nil {
		return wrapHostErr(host, err)
	}
	take := (instr.Op == bytecode.OpJumpIfTrue && b) || (instr.Op == bytecode.OpJumpIfFalse && !b)
	if take {
		f.ip = instr.Target
	}
	return nil
}

// execJumpOrPop implements JumpIfTrueOrPop(t)/JumpIfFalseOrPop(t): peek;
// on the branch-taken outcome, leave the value on the stack and jump; on
// the other outcome, pop it.
func (f *Frame) execJumpOrPop(instr bytecode.Instruction, host hostiface.Host) error {
	v := f.top()
	b, err := host.Bool(v)
	if err != nil {
		return wrapHostErr(host, err)
	}
	take := (instr.Op == bytecode.OpJumpIfTrueOrPop && b) || (instr.Op == bytecode.OpJumpIfFalseOrPop && !b)
	if take {
		f.ip = instr.Target
		return nil
	}
	f.pop()
	return nil
}

// execBreak implements Break: unwind to and pop the innermost Loop block,
// jump to its end label. An error from a With exit encountered along the
// way propagates normally through the ordinary raise machinery (the
// caller's generic error handling unwinds it again against whatever
// blocks remain outside the loop).
func (f *Frame) execBreak(host hostiface.Host) error {
	blk, err := f.unwindForLoop(host, false)
	if err != nil {
		return err
	}
	f.popBlock()
	f.ip = blk.End
	return nil
}

// execContinue implements Continue: unwind to the innermost Loop block
// (without popping it) and jump to its start label.
func (f *Frame) execContinue(host hostiface.Host) error {
	blk, err := f.unwindForLoop(host, true)
	if err != nil {
		return err
	}
	f.ip = blk.Start
	return nil
}

// execGetIter implements GetIter: pop an iterable and push its iterator.
func (f *Frame) execGetIter(host hostiface.Host) error {
	v := f.pop()
	it, err := host.Iter(v)
	if err != nil {
		return wrapHostErr(host, err)
	}
	f.push(it)
	return nil
}

// execForIter implements ForIter(target): peek top (the iterator); fetch
// next. On a value, push it and fall through. On exhaustion, pop the
// iterator and jump to target. On error, pop the iterator and propagate.
func (f *Frame) execForIter(instr bytecode.Instruction, host hostiface.Host) error {
	it := f.top()
	v, ok, err := host.Next(it)
	if err != nil {
		f.pop()
		return wrapHostErr(host, err)
	}
	if !ok {
		f.pop()
		f.ip = instr.Target
		return nil
	}
	f.push(v)
	return nil
}
