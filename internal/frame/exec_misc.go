package frame

import (
	"fmt"

	"github.com/emberlang/ember/internal/bytecode"
	"github.com/emberlang/ember/internal/hostiface"
)

// execImport implements Import(name, symbols, level): calls the host's
// import with a from-list tuple of symbols and pushes the result.
func (f *Frame) execImport(instr bytecode.Instruction, host hostiface.Host) error {
	mod, err := host.Import(instr.Name, instr.Names, instr.Arg)
	if err != nil {
		return wrapHostErr(host, err)
	}
	f.push(mod)
	return nil
}

// execImportFrom implements ImportFrom(name): reads attribute name from
// the top module (left on the stack for any following ImportFrom);
// a miss is an import-error rather than whatever the attribute protocol
// itself would raise.
func (f *Frame) execImportFrom(instr bytecode.Instruction, host hostiface.Host) error {
	mod := f.top()
	v, err := host.GetAttr(mod, instr.Name)
	if err != nil {
		return raise(hostiface.KindImportError, host.NewImportError(
			fmt.Sprintf("cannot import name '%s'", instr.Name)))
	}
	f.push(v)
	return nil
}

// execImportStar implements ImportStar: pops a module and copies each of
// its namespace entries whose key does not start with "_" into the
// current scope as locals.
func (f *Frame) execImportStar(host hostiface.Host) error {
	mod := f.pop()
	names, err := host.ImportStarNames(mod)
	if err != nil {
		return wrapHostErr(host, err)
	}
	for name, v := range names {
		f.Scope.Store(hostiface.ScopeLocal, name, v)
	}
	return nil
}

// execPrintExpr implements PrintExpr: pops and, if not none, prints via
// builtins.print(repr(v)).
func (f *Frame) execPrintExpr(host hostiface.Host) error {
	v := f.pop()
	if host.IsNone(v) {
		return nil
	}
	s, err := host.Repr(v)
	if err != nil {
		return wrapHostErr(host, err)
	}
	if err := host.Print(s); err != nil {
		return wrapHostErr(host, err)
	}
	return nil
}

// execFormatValue implements FormatValue(conversion, spec): pop a value,
// optionally coerce via str()/repr(), then call __format__(spec) with the
// supplied format specification (or an empty one if none was compiled in).
func (f *Frame) execFormatValue(instr bytecode.Instruction, host hostiface.Host) error {
	var specStr string
	if instr.HasFormatSpec {
		specVal := f.pop()
		s, err := host.Str(specVal)
		if err != nil {
			return wrapHostErr(host, err)
		}
		specStr = s
	}
	v := f.pop()

	var err error
	switch bytecode.Conversion(instr.Arg) {
	case bytecode.ConvStr:
		v, err = host.ToStr(v)
	case bytecode.ConvRepr:
		v, err = host.ToRepr(v)
	}
	if err != nil {
		return wrapHostErr(host, err)
	}

	result, err := host.Format(v, specStr)
	if err != nil {
		return wrapHostErr(host, err)
	}
	f.push(result)
	return nil
}
