package testhost

import "github.com/emberlang/ember/internal/hostiface"

// TracebackEntry is one (path, line, name) annotation appended by the
// frame's exception-annotation step each time an instruction raises,
// before unwinding (so caught exceptions get entries too).
type TracebackEntry struct {
	Path string
	Line int
	Name string
}

// ExceptionClass is a node in the small built-in exception hierarchy
// testhost exposes — enough to back the exception kinds the frame raises
// and catches, not a general class system.
type ExceptionClass struct {
	Name   string
	Parent *ExceptionClass
}

// IsSubclassOf reports whether c descends from (or is) other.
func (c *ExceptionClass) IsSubclassOf(other *ExceptionClass) bool {
	for cur := c; cur != nil; cur = cur.Parent {
		if cur == other {
			return true
		}
	}
	return false
}

var (
	BaseExceptionClass = &ExceptionClass{Name: "BaseException"}
	ExceptionClassRoot = &ExceptionClass{Name: "Exception", Parent: BaseExceptionClass}
	TypeErrorClass     = &ExceptionClass{Name: "TypeError", Parent: ExceptionClassRoot}
	NameErrorClass     = &ExceptionClass{Name: "NameError", Parent: ExceptionClassRoot}
	ValueErrorClass    = &ExceptionClass{Name: "ValueError", Parent: ExceptionClassRoot}
	ImportErrorClass   = &ExceptionClass{Name: "ImportError", Parent: ExceptionClassRoot}
	RuntimeErrorClass  = &ExceptionClass{Name: "RuntimeError", Parent: ExceptionClassRoot}
	AttributeErrorClass = &ExceptionClass{Name: "AttributeError", Parent: ExceptionClassRoot}
	KeyErrorClass      = &ExceptionClass{Name: "KeyError", Parent: ExceptionClassRoot}
	IndexErrorClass    = &ExceptionClass{Name: "IndexError", Parent: ExceptionClassRoot}
	StopIterationClass = &ExceptionClass{Name: "StopIteration", Parent: ExceptionClassRoot}
)

// Exception is an instance of an ExceptionClass.
type Exception struct {
	Class      *ExceptionClass
	Msg        string
	Cause      hostiface.Value
	Context    hostiface.Value
	Traceback  []TracebackEntry
}

func (e *Exception) Error() string { return e.Class.Name + ": " + e.Msg }
