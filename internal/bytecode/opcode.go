// Package bytecode defines the decoded instruction format consumed by the
// execution frame. Compiling source to this format is out of scope here;
// a CodeObject always arrives with instructions already decoded and jump
// targets already resolved to instruction indices.
package bytecode

// Opcode identifies the effect a single Instruction has on a Frame.
type Opcode int

const (
	// Stack manipulation
	OpPop Opcode = iota
	OpDup
	OpRotate // move top element down Arg-1 slots
	OpReverse

	// Constants and names
	OpLoadConst
	OpLoadLocal
	OpStoreLocal
	OpDeleteLocal
	OpLoadGlobal
	OpStoreGlobal
	OpDeleteGlobal
	OpLoadCell
	OpStoreCell
	OpDeleteCell

	// Attributes
	OpLoadAttr
	OpStoreAttr
	OpDeleteAttr

	// Subscripts (read is BinaryOperation(Subscript))
	OpStoreSubscript
	OpDeleteSubscript

	// Container construction
	OpBuildList
	OpBuildSet
	OpBuildTuple
	OpBuildMap
	OpBuildSlice
	OpBuildString

	// Comprehension helpers
	OpListAppend
	OpSetAdd
	OpMapAdd

	// Arithmetic / compare
	OpUnaryOperation
	OpBinaryOperation
	OpCompareOperation

	// Control flow
	OpJump
	OpJumpIfTrue
	OpJumpIfFalse
	OpJumpIfTrueOrPop
	OpJumpIfFalseOrPop

	// Loop blocks
	OpSetupLoop
	OpBreak
	OpContinue
	OpPopBlock

	// Iteration
	OpGetIter
	OpForIter

	// Try/except
	OpSetupExcept
	OpPopException

	// With
	OpSetupWith
	OpCleanupWith

	// Generators
	OpYieldValue
	OpYieldFrom

	// Return
	OpReturnValue

	// Functions
	OpMakeFunction
	OpCallFunction

	// Unpacking
	OpUnpackSequence
	OpUnpackEx
	OpUnpack

	// Raise
	OpRaise

	// Misc
	OpPass
	OpImport
	OpImportFrom
	OpImportStar
	OpPrintExpr
	OpLoadBuildClass
	OpFormatValue
)

var opcodeNames = map[Opcode]string{
	OpPop:              "POP",
	OpDup:              "DUP",
	OpRotate:           "ROTATE",
	OpReverse:          "REVERSE",
	OpLoadConst:        "LOAD_CONST",
	OpLoadLocal:        "LOAD_LOCAL",
	OpStoreLocal:       "STORE_LOCAL",
	OpDeleteLocal:      "DELETE_LOCAL",
	OpLoadGlobal:       "LOAD_GLOBAL",
	OpStoreGlobal:      "STORE_GLOBAL",
	OpDeleteGlobal:     "DELETE_GLOBAL",
	OpLoadCell:         "LOAD_CELL",
	OpStoreCell:        "STORE_CELL",
	OpDeleteCell:       "DELETE_CELL",
	OpLoadAttr:         "LOAD_ATTR",
	OpStoreAttr:        "STORE_ATTR",
	OpDeleteAttr:       "DELETE_ATTR",
	OpStoreSubscript:   "STORE_SUBSCR",
	OpDeleteSubscript:  "DELETE_SUBSCR",
	OpBuildList:        "BUILD_LIST",
	OpBuildSet:         "BUILD_SET",
	OpBuildTuple:       "BUILD_TUPLE",
	OpBuildMap:         "BUILD_MAP",
	OpBuildSlice:       "BUILD_SLICE",
	OpBuildString:      "BUILD_STRING",
	OpListAppend:       "LIST_APPEND",
	OpSetAdd:           "SET_ADD",
	OpMapAdd:           "MAP_ADD",
	OpUnaryOperation:   "UNARY_OP",
	OpBinaryOperation:  "BINARY_OP",
	OpCompareOperation: "COMPARE_OP",
	OpJump:             "JUMP",
	OpJumpIfTrue:       "JUMP_IF_TRUE",
	OpJumpIfFalse:      "JUMP_IF_FALSE",
	OpJumpIfTrueOrPop:  "JUMP_IF_TRUE_OR_POP",
	OpJumpIfFalseOrPop: "JUMP_IF_FALSE_OR_POP",
	OpSetupLoop:        "SETUP_LOOP",
	OpBreak:            "BREAK",
	OpContinue:         "CONTINUE",
	OpPopBlock:         "POP_BLOCK",
	OpGetIter:          "GET_ITER",
	OpForIter:          "FOR_ITER",
	OpSetupExcept:      "SETUP_EXCEPT",
	OpPopException:     "POP_EXCEPT",
	OpSetupWith:        "SETUP_WITH",
	OpCleanupWith:      "CLEANUP_WITH",
	OpYieldValue:       "YIELD_VALUE",
	OpYieldFrom:        "YIELD_FROM",
	OpReturnValue:      "RETURN_VALUE",
	OpMakeFunction:     "MAKE_FUNCTION",
	OpCallFunction:     "CALL_FUNCTION",
	OpUnpackSequence:   "UNPACK_SEQUENCE",
	OpUnpackEx:         "UNPACK_EX",
	OpUnpack:           "UNPACK",
	OpRaise:            "RAISE_VARARGS",
	OpPass:             "PASS",
	OpImport:           "IMPORT_NAME",
	OpImportFrom:       "IMPORT_FROM",
	OpImportStar:       "IMPORT_STAR",
	OpPrintExpr:        "PRINT_EXPR",
	OpLoadBuildClass:   "LOAD_BUILD_CLASS",
	OpFormatValue:      "FORMAT_VALUE",
}

func (op Opcode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return "UNKNOWN"
}

// BinOp identifies a binary operator token for OpBinaryOperation.
type BinOp int

const (
	BinAdd BinOp = iota
	BinSub
	BinMul
	BinTrueDiv
	BinFloorDiv
	BinMod
	BinPow
	BinMatMul
	BinLShift
	BinRShift
	BinAnd
	BinOr
	BinXor
	BinSubscript // a[b]; never valid with InPlace set
)

var binOpNames = map[BinOp]string{
	BinAdd:       "+",
	BinSub:       "-",
	BinMul:       "*",
	BinTrueDiv:   "/",
	BinFloorDiv:  "//",
	BinMod:       "%",
	BinPow:       "**",
	BinMatMul:    "@",
	BinLShift:    "<<",
	BinRShift:    ">>",
	BinAnd:       "&",
	BinOr:        "|",
	BinXor:       "^",
	BinSubscript: "[]",
}

func (op BinOp) String() string {
	if name, ok := binOpNames[op]; ok {
		return name
	}
	return "?"
}

// UnaryOp identifies a unary operator token for OpUnaryOperation.
type UnaryOp int

const (
	UnaryNeg UnaryOp = iota
	UnaryPos
	UnaryInvert
	UnaryNot
)

// CompareOp identifies a comparison operator token for OpCompareOperation.
type CompareOp int

const (
	CmpEq CompareOp = iota
	CmpNe
	CmpLt
	CmpLe
	CmpGt
	CmpGe
	CmpIs
	CmpIsNot
	CmpIn
	CmpNotIn
)

// Conversion identifies the coercion FormatValue applies before __format__.
type Conversion int

const (
	ConvNone Conversion = iota
	ConvStr
	ConvRepr
)

// CallKind identifies how CallFunction assembles its argument list.
type CallKind int

const (
	// CallPositional(n): pop n positional args, then the callable.
	CallPositional CallKind = iota
	// CallKeyword(n): pop a tuple of kwarg names, then n values; the last
	// len(names) values align with those names, the rest are positional.
	CallKeyword
	// CallEx: pop an optional kwargs dict, then a positional iterable.
	CallEx
)

// FunctionFlag marks which optional operands MakeFunction pops, in the
// order Defaults, then KwOnlyDefaults, then Annotations (innermost first,
// i.e. popped in that order off the stack after qualname and code).
type FunctionFlag int

const (
	FuncHasDefaults FunctionFlag = 1 << iota
	FuncHasKwOnlyDefaults
	FuncHasAnnotations
)
