package bytecode

// Instruction is one decoded bytecode instruction. Not every field is
// meaningful for every Op; see the per-opcode doc above each field for
// which opcodes read it.
type Instruction struct {
	Op Opcode

	// Arg is the primary integer operand: a constant index, a
	// container size, a BinOp/UnaryOp/CompareOp/Conversion/CallKind/
	// FunctionFlag token, a raise argc, or a comprehension peek depth.
	Arg int

	// Arg2 is a secondary integer operand, used by UnpackEx (after-count)
	// and CallFunction (the argument count n; Arg holds the CallKind).
	Arg2 int

	// Target is the resolved instruction index for Jump*, SetupLoop's
	// start, SetupExcept's handler, SetupWith/CleanupWith's end, and
	// ForIter's exhaustion target.
	Target int

	// Target2 is SetupLoop's end label (Target carries start).
	Target2 int

	// Name is the symbol operand for Load/Store/DeleteLocal/Global/Cell,
	// Load/Store/DeleteAttr, and Import/ImportFrom.
	Name string

	// Names is the from-list operand for Import.
	Names []string

	// InPlace marks BinaryOperation as an augmented assignment (a += b).
	InPlace bool

	// Unpack marks BuildList/Set/Tuple/Map as "pop N iterables and
	// concatenate/merge" rather than "pop N values directly".
	Unpack bool

	// HasFormatSpec marks FormatValue as popping a format-spec string
	// above the value (popped first), rather than using an empty spec.
	HasFormatSpec bool

	// HasKwargs marks CallFunction(Ex) as popping a kwargs dict above the
	// positional iterable, rather than passing no keyword arguments.
	HasKwargs bool
}

// SourceLocation is the position a single Instruction maps back to.
type SourceLocation struct {
	Path   string
	Line   int
	Column int
}

// CodeObject is the immutable, read-only input a Frame executes. Frames
// borrow a CodeObject; it is never mutated once built and may outlive
// every frame that references it.
type CodeObject struct {
	// Name is the owning function/class/module's human-readable name,
	// used in traceback entries and Frame.Dump's header.
	Name string
	// SourcePath is the file the code was compiled from.
	SourcePath string

	Instructions []Instruction
	// Locations holds one entry per instruction, parallel to Instructions.
	Locations []SourceLocation
	// Labels maps a symbolic label id to an instruction index. Nothing in
	// the frame reads it: the dispatch loop jumps via the already-resolved
	// Instruction.Target/Target2 fields.
	Labels map[string]int

	// Constants is the pool LoadConst indexes into. Each entry is an
	// encoded constant the Host materializes via LoadConst (the same
	// value, across calls, need not be re-materialized into an identical
	// object each time — that decision belongs to the Host).
	Constants []any

	// CellVars and FreeVars size the cell slots a Scope exposes via
	// load_cell/store_cell; the frame itself never indexes into them
	// directly, that's the Scope's job, but they're recorded here since
	// they are a property of the code object, not of any one frame.
	CellVars []string
	FreeVars []string

	// ArgNames and KwOnlyArgNames name the positional and keyword-only
	// parameters, in declaration order. The frame's own opcodes never
	// read these — argument binding happens in the Host's Call, outside
	// this package's scope — but a CodeObject carries them so a Host can
	// build the callee's initial locals, mirroring ATSOTECK-rage's
	// CodeObject.ArgCount/KwOnlyArgCount (internal/runtime/opcode.go),
	// named here instead of counted since this package has no fixed
	// locals-slot layout to count against.
	ArgNames       []string
	KwOnlyArgNames []string
}

// LineFor returns the source location recorded for instruction index ip,
// or the zero SourceLocation if ip is out of range.
func (c *CodeObject) LineFor(ip int) SourceLocation {
	if ip < 0 || ip >= len(c.Locations) {
		return SourceLocation{}
	}
	return c.Locations[ip]
}
