package frame

import (
	"github.com/emberlang/ember/internal/bytecode"
	"github.com/emberlang/ember/internal/hostiface"
)

// execUnaryOp implements UnaryOperation(op): pop a and dispatch -a, +a,
// ~a, or not a — the last computed via boolean coercion rather than a
// host operator dispatch.
func (f *Frame) execUnaryOp(instr bytecode.Instruction, host hostiface.Host) error {
	op := bytecode.UnaryOp(instr.Arg)
	a := f.pop()
	if op == bytecode.UnaryNot {
		b, err := host.Bool(a)
		if err != nil {
			return wrapHostErr(host, err)
		}
		f.push(host.NewBool(!b))
		return nil
	}
	v, err := host.UnaryOp(op, a)
	if err != nil {
		return wrapHostErr(host, err)
	}
	f.push(v)
	return nil
}

// execBinaryOp implements BinaryOperation(op, inplace): pops b, then a,
// dispatches to the host's operator by op token; Subscript routes to
// a[b] via the item protocol instead of the operator table.
func (f *Frame) execBinaryOp(instr bytecode.Instruction, host hostiface.Host) error {
	op := bytecode.BinOp(instr.Arg)
	b := f.pop()
	a := f.pop()
	if op == bytecode.BinSubscript {
		v, err := host.GetItem(a, b)
		if err != nil {
			return wrapHostErr(host, err)
		}
		f.push(v)
		return nil
	}
	v, err := host.BinaryOp(op, a, b, instr.InPlace)
	if err != nil {
		return wrapHostErr(host, err)
	}
	f.push(v)
	return nil
}

// execCompareOp implements CompareOperation(op): pops b, then a; identity
// (is/is not) uses Go pointer equality directly without a host round
// trip; membership (in/not in) uses the host's membership protocol then
// boolean-coerces; every other comparison dispatches to the host.
func (f *Frame) execCompareOp(instr bytecode.Instruction, host hostiface.Host) error {
	op := bytecode.CompareOp(instr.Arg)
	b := f.pop()
	a := f.pop()

	switch op {
	case bytecode.CmpIs:
		f.push(host.NewBool(a == b))
		return nil
	case bytecode.CmpIsNot:
		f.push(host.NewBool(a != b))
		return nil
	case bytecode.CmpIn, bytecode.CmpNotIn:
		res, err := host.Compare(op, a, b)
		if err != nil {
			return wrapHostErr(host, err)
		}
		member, err := host.Bool(res)
		if err != nil {
			return wrapHostErr(host, err)
		}
		if op == bytecode.CmpNotIn {
			member = !member
		}
		f.push(host.NewBool(member))
		return nil
	default:
		v, err := host.Compare(op, a, b)
		if err != nil {
			return wrapHostErr(host, err)
		}
		f.push(v)
		return nil
	}
}
