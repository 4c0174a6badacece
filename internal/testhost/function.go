package testhost

import (
	"strings"

	"github.com/emberlang/ember/internal/bytecode"
	"github.com/emberlang/ember/internal/hostiface"
)

// Function is a callable built by MakeFunction: a code object closing
// over a scope, plus the metadata MakeFunction sets on it (name,
// qualname, module, defaults, keyword-only defaults, annotations).
type Function struct {
	Code     *bytecode.CodeObject
	Closure  hostiface.Scope
	Name     string
	Qualname string
	Module   hostiface.Value

	Defaults       hostiface.Value
	KwOnlyDefaults hostiface.Value
	Annotations    hostiface.Value
}

// lastDottedSegment implements MakeFunction's "__name__ (last dotted
// segment)" derivation from a qualname like "Outer.method".
func lastDottedSegment(qualname string) string {
	if i := strings.LastIndexByte(qualname, '.'); i >= 0 {
		return qualname[i+1:]
	}
	return qualname
}
