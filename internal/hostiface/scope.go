package hostiface

// ScopeKind selects which namespace a name operation targets: the
// frame's own locals, the enclosing globals dict, and a free/cell
// variable shared with an enclosing or nested scope.
type ScopeKind int

const (
	ScopeLocal ScopeKind = iota
	ScopeGlobal
	ScopeCell
)

// Scope is the name-resolution capability a Frame borrows from NewFrame
// onward, across all of its Run/Throw calls. It neither creates nor destroys the
// underlying namespace; closures and generators may hold the same Scope
// across many frames, so synchronization is the Scope implementation's
// concern, not the frame's.
type Scope interface {
	// Load looks up name in the given variant. ok is false when the name
	// is unbound; the frame turns that into a KindNameUndefined raise,
	// choosing the exact message by variant (ATSOTECK-rage's
	// vm_dispatch.go distinguishes an UnboundLocalError for a
	// declared-but-unset local or cell from a plain NameError for a free
	// variable never bound).
	Load(kind ScopeKind, name string) (Value, bool)

	// Store binds name to v in the given variant.
	Store(kind ScopeKind, name string, v Value)

	// Delete removes name from the given variant. ok is false if the name
	// was not present, which the frame turns into KindNameUndefined.
	Delete(kind ScopeKind, name string) bool

	// Locals returns a snapshot of the local namespace, for debug dumps
	// and a locals() introspection builtin.
	Locals() map[string]Value

	// GlobalsGet is the direct globals mapping lookup by key, used e.g. by
	// MakeFunction to resolve __module__ from globals["__name__"] without
	// going through the ordinary load/store variant dispatch (which may
	// consult builtins).
	GlobalsGet(name string) (Value, bool)
}
