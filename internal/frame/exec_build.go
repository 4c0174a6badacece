package frame

import (
	"github.com/emberlang/ember/internal/bytecode"
	"github.com/emberlang/ember/internal/hostiface"
)

// execBuildContainer implements BuildList/BuildSet/BuildTuple(size,
// unpack): pop size values; if unpack, each popped value is iterated and
// its elements concatenated before building the container.
func (f *Frame) execBuildContainer(instr bytecode.Instruction, host hostiface.Host) error {
	vals := f.popN(instr.Arg)
	if instr.Unpack {
		var merged []hostiface.Value
		for _, v := range vals {
			elems, err := host.Extract(v)
			if err != nil {
				return wrapHostErr(host, err)
			}
			merged = append(merged, elems...)
		}
		vals = merged
	}
	switch instr.Op {
	case bytecode.OpBuildList:
		f.push(host.NewList(vals))
	case bytecode.OpBuildSet:
		f.push(host.NewSet(vals))
	case bytecode.OpBuildTuple:
		f.push(host.NewTuple(vals))
	}
	return nil
}

// execBuildMap implements BuildMap(size, unpack): if unpack, pop size
// dicts and merge (later keys override earlier); else pop 2*size values
// as [k0,v0,k1,v1,...] and build the dict preserving insertion order.
func (f *Frame) execBuildMap(instr bytecode.Instruction, host hostiface.Host) error {
	if instr.Unpack {
		dicts := f.popN(instr.Arg)
		var keys, vals []hostiface.Value
		for _, d := range dicts {
			ks, vs, err := host.DictItems(d)
			if err != nil {
				return wrapHostErr(host, err)
			}
			keys = append(keys, ks...)
			vals = append(vals, vs...)
		}
		m, err := host.NewMap(keys, vals)
		if err != nil {
			return wrapHostErr(host, err)
		}
		f.push(m)
		return nil
	}

	flat := f.popN(2 * instr.Arg)
	keys := make([]hostiface.Value, instr.Arg)
	vals := make([]hostiface.Value, instr.Arg)
	for i := 0; i < instr.Arg; i++ {
		keys[i] = flat[2*i]
		vals[i] = flat[2*i+1]
	}
	m, err := host.NewMap(keys, vals)
	if err != nil {
		return wrapHostErr(host, err)
	}
	f.push(m)
	return nil
}

// execBuildSlice implements BuildSlice(size ∈ {2,3}): pop step? (if
// size==3), stop, start and construct a slice.
func (f *Frame) execBuildSlice(instr bytecode.Instruction, host hostiface.Host) error {
	var step hostiface.Value
	if instr.Arg == 3 {
		step = f.pop()
	}
	stop := f.pop()
	start := f.pop()
	f.push(host.NewSlice(start, stop, step))
	return nil
}

// execBuildString implements BuildString(size): pop size strings and
// concatenate in stack order.
func (f *Frame) execBuildString(instr bytecode.Instruction, host hostiface.Host) error {
	parts := f.popN(instr.Arg)
	v, err := host.ConcatStrings(parts)
	if err != nil {
		return wrapHostErr(host, err)
	}
	f.push(v)
	return nil
}

// execListAppend implements ListAppend(i): peek the i-th element from top
// (not counting top), pop top, call append.
func (f *Frame) execListAppend(instr bytecode.Instruction, host hostiface.Host) error {
	container := f.peek(instr.Arg)
	v := f.pop()
	if err := host.Append(container, v); err != nil {
		return wrapHostErr(host, err)
	}
	return nil
}

// execSetAdd implements SetAdd(i): same as ListAppend but calls add.
func (f *Frame) execSetAdd(instr bytecode.Instruction, host hostiface.Host) error {
	container := f.peek(instr.Arg)
	v := f.pop()
	if err := host.Add(container, v); err != nil {
		return wrapHostErr(host, err)
	}
	return nil
}

// execMapAdd implements MapAdd(i): peek the (i+1)-th element from top, pop
// value then key, call __setitem__(key, value).
func (f *Frame) execMapAdd(instr bytecode.Instruction, host hostiface.Host) error {
	container := f.peek(instr.Arg + 1)
	value := f.pop()
	key := f.pop()
	if err := host.SetItem(container, key, value); err != nil {
		return wrapHostErr(host, err)
	}
	return nil
}
