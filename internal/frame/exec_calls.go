package frame

import (
	"github.com/emberlang/ember/internal/bytecode"
	"github.com/emberlang/ember/internal/hostiface"
)

// execReturnValue implements ReturnValue: pop the return value, unwind
// all remaining blocks (invoking With exits, popping ExceptHandlers), and
// terminate with Return(v). If unwinding itself raises, that error
// supersedes the return.
func (f *Frame) execReturnValue(host hostiface.Host) (signal, hostiface.Value, error) {
	v := f.pop()
	if err := f.unwindForReturn(host); err != nil {
		return sigNone, nil, wrapHostErr(host, err)
	}
	return sigReturn, v, nil
}

// execMakeFunction implements MakeFunction(flags): pops qualified-name,
// then the code object, then conditionally defaults/kw-only-defaults/
// annotations as indicated by flags. Builds a callable capturing the
// current scope; __name__ is the qualname's last dotted segment,
// __module__ comes from globals["__name__"] or none.
func (f *Frame) execMakeFunction(instr bytecode.Instruction, host hostiface.Host) error {
	qualnameVal := f.pop()
	qualname, err := host.Str(qualnameVal)
	if err != nil {
		return wrapHostErr(host, err)
	}

	codeVal := f.pop()
	code, ok := codeVal.(*bytecode.CodeObject)
	if !ok {
		hostiface.Panic("MakeFunction: operand is not a code object")
	}

	var defaults, kwOnlyDefaults, annotations hostiface.Value
	if instr.Arg&int(bytecode.FuncHasDefaults) != 0 {
		defaults = f.pop()
	}
	if instr.Arg&int(bytecode.FuncHasKwOnlyDefaults) != 0 {
		kwOnlyDefaults = f.pop()
	}
	if instr.Arg&int(bytecode.FuncHasAnnotations) != 0 {
		annotations = f.pop()
	}

	var module hostiface.Value
	if name, ok := f.Scope.GlobalsGet("__name__"); ok {
		module = name
	} else {
		module = host.None()
	}

	fn := host.NewFunction(code, f.Scope, qualname, module, defaults, kwOnlyDefaults, annotations)
	f.push(fn)
	return nil
}

// execCallFunction implements CallFunction(kind)'s three calling forms:
// positional, keyword, and the *args/**kwargs expansion form.
func (f *Frame) execCallFunction(instr bytecode.Instruction, host hostiface.Host) error {
	switch bytecode.CallKind(instr.Arg) {
	case bytecode.CallPositional:
		args := f.popN(instr.Arg2)
		callee := f.pop()
		result, err := host.Call(callee, args, nil)
		if err != nil {
			return wrapHostErr(host, err)
		}
		f.push(result)
		return nil

	case bytecode.CallKeyword:
		namesVal := f.pop()
		names, err := host.Extract(namesVal)
		if err != nil {
			return wrapHostErr(host, err)
		}
		vals := f.popN(instr.Arg2)
		callee := f.pop()

		posCount := len(vals) - len(names)
		args := vals[:posCount]
		kwVals := vals[posCount:]
		kwargs := make(map[string]hostiface.Value, len(names))
		for i, nameVal := range names {
			name, err := host.Str(nameVal)
			if err != nil {
				return wrapHostErr(host, err)
			}
			kwargs[name] = kwVals[i]
		}
		result, err := host.Call(callee, args, kwargs)
		if err != nil {
			return wrapHostErr(host, err)
		}
		f.push(result)
		return nil

	case bytecode.CallEx:
		var kwargsDict hostiface.Value
		if instr.HasKwargs {
			kwargsDict = f.pop()
		}
		posIterable := f.pop()
		callee := f.pop()

		args, err := host.Extract(posIterable)
		if err != nil {
			return wrapHostErr(host, err)
		}
		var kwargs map[string]hostiface.Value
		if kwargsDict != nil {
			keys, vals, err := host.DictItems(kwargsDict)
			if err != nil {
				return wrapHostErr(host, err)
			}
			kwargs = make(map[string]hostiface.Value, len(keys))
			for i, k := range keys {
				name, err := host.Str(k)
				if err != nil {
					return wrapHostErr(host, err)
				}
				kwargs[name] = vals[i]
			}
		}
		result, err := host.Call(callee, args, kwargs)
		if err != nil {
			return wrapHostErr(host, err)
		}
		f.push(result)
		return nil
	}

	hostiface.Panic("CallFunction: unknown call kind")
	return nil
}
