package hostiface

import "github.com/emberlang/ember/internal/bytecode"

// Host is everything the frame consumes from the surrounding virtual
// machine: object construction, attribute/item protocols, operator
// dispatch, coercion, iteration, exceptions, import, and function/class
// construction. The frame never holds a concrete VM type — it is driven
// entirely through this capability interface, so it can be exercised
// against internal/testhost's small reference implementation instead of
// a real object model.
//
// Every method that can fail in a way source code should be able to catch
// returns an error; the frame wraps that error as a *RaisedError (or lets
// one already wrapped pass through) and hands it to the unwinder. A Host
// method should never panic for an ordinary script-level failure — panics
// are reserved for *FatalError, which only the frame itself raises.
type Host interface {
	// --- Constants and primitives ---

	// LoadConst materializes a host object from an encoded constant taken
	// from CodeObject.Constants. The encoding is host-defined; the frame
	// passes the constant through unexamined.
	LoadConst(encoded any) (Value, error)

	// None returns the host's singleton none value, used by MakeFunction
	// as the __module__ fallback when the scope has no __name__. (On a
	// non-exceptional With exit the frame passes nil to ExitContext, not
	// this value.)
	None() Value
	// IsNone reports whether v is the host's none value (used by PrintExpr).
	IsNone(v Value) bool

	// --- Attribute protocol ---

	GetAttr(obj Value, name string) (Value, error)
	SetAttr(obj Value, name string, v Value) error
	DelAttr(obj Value, name string) error

	// --- Item protocol ---

	GetItem(obj, key Value) (Value, error)
	SetItem(obj, key, v Value) error
	DelItem(obj, key Value) error

	// --- Operator dispatch ---

	BinaryOp(op bytecode.BinOp, a, b Value, inPlace bool) (Value, error)
	UnaryOp(op bytecode.UnaryOp, a Value) (Value, error)
	// Compare handles every CompareOp except Is/IsNot, which the frame
	// resolves itself via Go identity comparison without a Host
	// round-trip. Membership (In/NotIn) still comes through here: Compare
	// returns the raw membership result and the frame boolean-coerces it
	// via Bool.
	Compare(op bytecode.CompareOp, a, b Value) (Value, error)

	// Bool coerces v to a boolean via the host's truthiness protocol.
	Bool(v Value) (bool, error)
	// NewBool wraps a Go bool as a host boolean Value, used by
	// UnaryOperation(Not) and the membership/identity comparisons, which
	// compute their result without a host operator dispatch.
	NewBool(b bool) Value
	// ToStr and ToRepr return a host string Value (as opposed to Str/Repr
	// below, which return a Go string for the frame's own use), for
	// FormatValue's optional str()/repr() coercion before __format__.
	ToStr(v Value) (Value, error)
	ToRepr(v Value) (Value, error)
	// Format calls v.__format__(spec).
	Format(v Value, spec string) (Value, error)
	Str(v Value) (string, error)
	Repr(v Value) (string, error)

	// --- Iteration ---

	// Iter returns an iterator Value for an iterable, for GetIter.
	Iter(v Value) (Value, error)
	// Next advances iterator. ok is false on ordinary exhaustion (not an
	// error); err is non-nil only for an actual failure raised mid-iteration.
	Next(iterator Value) (v Value, ok bool, err error)
	// Extract fully realizes an iterable into a slice, for the unpacking
	// opcodes (UnpackSequence/UnpackEx/Unpack) and unpack-flagged container
	// builds.
	Extract(v Value) ([]Value, error)

	// --- Container construction ---

	NewList(elems []Value) Value
	NewSet(elems []Value) Value
	NewTuple(elems []Value) Value
	// NewMap builds a dict preserving insertion order from parallel
	// keys/values slices of equal length.
	NewMap(keys, vals []Value) (Value, error)
	NewSlice(start, stop, step Value) Value
	// DictItems returns a dict's entries as parallel slices, in insertion
	// order, for BuildMap's unpack-merge form.
	DictItems(v Value) (keys, vals []Value, err error)
	// ConcatStrings implements BuildString: concatenate Values already
	// known to be host strings, in stack order.
	ConcatStrings(parts []Value) (Value, error)

	// Append implements ListAppend's append(container, v).
	Append(container, v Value) error
	// Add implements SetAdd's add(container, v).
	Add(container, v Value) error

	// --- Context managers (With) ---

	// EnterContext calls manager's __enter__() and returns its result, for
	// SetupWith.
	EnterContext(manager Value) (Value, error)
	// ExitContext calls manager's __exit__(type(exc), exc, none), or
	// __exit__(None, None, None) when exc is nil (the no-exception exit
	// path), and reports whether the call returned truthy (suppress the
	// exception). err is non-nil only when __exit__ itself raised; that new
	// exception replaces the one being unwound.
	ExitContext(manager Value, exc Value) (suppressed bool, err error)

	// --- Exceptions ---

	NewTypeError(msg string) Value
	NewNameError(msg string) Value
	NewImportError(msg string) Value
	NewValueError(msg string) Value
	NewRuntimeError(msg string) Value
	// NewException builds an instance of typ with the single constructor
	// argument msg, for VM-level raises that need a specific exception
	// class rather than one of the fixed constructors above.
	NewException(typ Value, msg string) Value

	// IsExceptionClass reports whether v is a class descending from the
	// host's BaseException, for get_exception's class-vs-instance check.
	IsExceptionClass(v Value) bool
	// IsExceptionInstance reports whether v is already an instance of a
	// BaseException subclass.
	IsExceptionInstance(v Value) bool
	// NewEmptyException instantiates typ (already known to be an exception
	// class) with no constructor arguments.
	NewEmptyException(typ Value) (Value, error)

	// SetCause and SetContext set __cause__/__context__ on exc, per Raise.
	SetCause(exc, cause Value)
	SetContext(exc, context Value)
	// AppendTraceback appends one (path, line, name) entry to exc's
	// traceback list. The frame calls it each time an instruction raises,
	// before unwinding, so an exception that a handler then catches also
	// gets an entry.
	AppendTraceback(exc Value, path string, line int, name string) error

	// CurrentException returns the host's current-exception register, or
	// nil if none is set.
	CurrentException() Value
	// PushException and PopException are the only two operations allowed
	// to mutate the current-exception register, invoked exclusively by
	// TryExcept handler entry and ExceptHandler block pop.
	PushException(exc Value)
	PopException()

	// --- Import ---

	Import(name string, fromList []string, level int) (Value, error)
	// ImportStarNames returns every entry of module's namespace whose key
	// does not start with "_", for ImportStar.
	ImportStarNames(module Value) (map[string]Value, error)

	// --- Functions and classes ---

	// NewFunction builds a callable capturing scope, with __name__ set to
	// qualname's last dotted segment, per MakeFunction.
	NewFunction(code *bytecode.CodeObject, scope Scope, qualname string, module Value, defaults, kwOnlyDefaults, annotations Value) Value
	// ClassBuilder returns the callable LoadBuildClass pushes.
	ClassBuilder() Value
	// Call invokes callable with positional args and keyword arguments.
	Call(callable Value, args []Value, kwargs map[string]Value) (Value, error)

	// --- Output ---

	// Print implements PrintExpr's builtins.print(repr(v)) call.
	Print(s string) error

	// --- Signals (optional) ---

	// PollSignal is consulted once per instruction, before fetch, when
	// non-nil on the concrete Host (a Host that has no signal source can
	// simply not implement it — frame type-asserts for the optional
	// SignalSource interface below rather than requiring every Host to
	// stub it out).
}

// SignalSource is an optional capability a Host may additionally
// implement. Frame.Run/Throw type-asserts the Host it is given against
// this interface once per instruction, before fetch, mirroring
// frame.rs's check_signals(vm) placement. A Host that does not implement
// it is simply never polled.
type SignalSource interface {
	// PollSignal returns (exc, true) if a pending signal should be raised
	// as exc at the current instruction boundary; (nil, false) otherwise.
	PollSignal() (Value, bool)
}
