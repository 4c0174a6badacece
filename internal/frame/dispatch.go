package frame

import (
	"context"

	"github.com/emberlang/ember/internal/bytecode"
	"github.com/emberlang/ember/internal/hostiface"
)

// signal is the internal per-instruction outcome an executor reports back
// to the dispatch loop, before it is translated into an Outcome.
type signal int

const (
	sigNone signal = iota
	sigReturn
	sigYield
)

// Run drives the frame from its current instruction pointer until a
// terminal outcome. ctx is polled for cancellation every checkInterval
// instructions; a nil ctx is treated as context.Background().
func (f *Frame) Run(ctx context.Context, host hostiface.Host) Outcome {
	if ctx == nil {
		ctx = context.Background()
	}
	return f.dispatch(ctx, host)
}

// Throw delivers an externally-raised exception to a suspended frame. It
// first attempts to unwind exc against the block stack; if a handler
// catches it, dispatch resumes from the handler address. Otherwise Throw
// surfaces the error without executing any further opcodes.
func (f *Frame) Throw(ctx context.Context, host hostiface.Host, exc hostiface.Value) Outcome {
	if ctx == nil {
		ctx = context.Background()
	}
	if f.done {
		return Outcome{Kind: OutcomeError, Err: hostiface.NewRaisedError(hostiface.KindRuntimeError, exc)}
	}
	re := hostiface.NewRaisedError(hostiface.KindVMPropagated, exc)
	if handled, out := f.handleError(host, re); !handled {
		f.done = true
		return out
	}
	return f.dispatch(ctx, host)
}

// dispatch is the fetch/advance/apply loop.
func (f *Frame) dispatch(ctx context.Context, host hostiface.Host) Outcome {
	for {
		if f.checkInterval > 0 {
			f.checkCounter--
			if f.checkCounter <= 0 {
				f.checkCounter = f.checkInterval
				select {
				case <-ctx.Done():
					var err error
					if ctx.Err() == context.DeadlineExceeded {
						err = hostiface.ErrTimeout
					} else {
						err = hostiface.ErrCancelled
					}
					f.done = true
					return Outcome{Kind: OutcomeError, Err: err}
				default:
				}
			}
		}

		if ss, ok := host.(hostiface.SignalSource); ok {
			if exc, pending := ss.PollSignal(); pending {
				re := hostiface.NewRaisedError(hostiface.KindVMPropagated, exc)
				if handled, out := f.handleError(host, re); !handled {
					f.done = true
					return out
				}
				continue
			}
		}

		if f.ip >= len(f.Code.Instructions) {
			// Falling off the end of the instruction list without an
			// explicit ReturnValue is a compiler invariant violation.
			hostiface.Panic("instruction pointer ran past end of code object")
		}
		instr := f.Code.Instructions[f.ip]
		f.ip++

		sig, val, err := f.apply(instr, host)
		if err != nil {
			re, ok := err.(*hostiface.RaisedError)
			if !ok {
				// Every executor is required to raise through
				// hostiface.RaisedError so the unwinder always has a
				// Value to push; a plain error reaching here is an
				// executor bug, not a script-level failure.
				hostiface.Panic("executor returned a non-RaisedError: " + err.Error())
			}
			loc := f.Code.LineFor(f.ip - 1)
			_ = host.AppendTraceback(re.Exc, loc.Path, loc.Line, f.Code.Name)
			if handled, out := f.handleError(host, re); !handled {
				f.done = true
				return out
			}
			continue
		}

		switch sig {
		case sigReturn:
			f.done = true
			return Outcome{Kind: OutcomeReturn, Value: val}
		case sigYield:
			return Outcome{Kind: OutcomeYield, Value: val}
		default:
			continue
		}
	}
}

// handleError runs the exception unwinder against the current raised
// error. If a handler is found, the block stack and instruction pointer
// are left ready for dispatch to resume and handled is true. Otherwise it
// returns the final Outcome to surface to the caller.
func (f *Frame) handleError(host hostiface.Host, re *hostiface.RaisedError) (handled bool, out Outcome) {
	if f.unwindForException(host, re) {
		return true, Outcome{}
	}
	return false, Outcome{Kind: OutcomeError, Err: re}
}

// apply executes one decoded instruction and reports its signal.
func (f *Frame) apply(instr bytecode.Instruction, host hostiface.Host) (signal, hostiface.Value, error) {
	switch instr.Op {
	case bytecode.OpPop:
		f.pop()
		return sigNone, nil, nil
	case bytecode.OpDup:
		v := f.top()
		f.push(v)
		return sigNone, nil, nil
	case bytecode.OpRotate:
		f.rotate(instr.Arg)
		return sigNone, nil, nil
	case bytecode.OpReverse:
		f.reverse(instr.Arg)
		return sigNone, nil, nil
	case bytecode.OpLoadConst:
		return sigNone, nil, f.execLoadConst(instr, host)

	case bytecode.OpLoadLocal, bytecode.OpLoadGlobal, bytecode.OpLoadCell:
		return sigNone, nil, f.execLoadName(instr, host)
	case bytecode.OpStoreLocal, bytecode.OpStoreGlobal, bytecode.OpStoreCell:
		return sigNone, nil, f.execStoreName(instr, host)
	case bytecode.OpDeleteLocal, bytecode.OpDeleteGlobal, bytecode.OpDeleteCell:
		return sigNone, nil, f.execDeleteName(instr, host)

	case bytecode.OpLoadAttr:
		return sigNone, nil, f.execLoadAttr(instr, host)
	case bytecode.OpStoreAttr:
		return sigNone, nil, f.execStoreAttr(instr, host)
	case bytecode.OpDeleteAttr:
		return sigNone, nil, f.execDeleteAttr(instr, host)

	case bytecode.OpStoreSubscript:
		return sigNone, nil, f.execStoreSubscript(host)
	case bytecode.OpDeleteSubscript:
		return sigNone, nil, f.execDeleteSubscript(host)

	case bytecode.OpBuildList, bytecode.OpBuildSet, bytecode.OpBuildTuple:
		return sigNone, nil, f.execBuildContainer(instr, host)
	case bytecode.OpBuildMap:
		return sigNone, nil, f.execBuildMap(instr, host)
	case bytecode.OpBuildSlice:
		return sigNone, nil, f.execBuildSlice(instr, host)
	case bytecode.OpBuildString:
		return sigNone, nil, f.execBuildString(instr, host)

	case bytecode.OpListAppend:
		return sigNone, nil, f.execListAppend(instr, host)
	case bytecode.OpSetAdd:
		return sigNone, nil, f.execSetAdd(instr, host)
	case bytecode.OpMapAdd:
		return sigNone, nil, f.execMapAdd(instr, host)

	case bytecode.OpUnaryOperation:
		return sigNone, nil, f.execUnaryOp(instr, host)
	case bytecode.OpBinaryOperation:
		return sigNone, nil, f.execBinaryOp(instr, host)
	case bytecode.OpCompareOperation:
		return sigNone, nil, f.execCompareOp(instr, host)

	case bytecode.OpJump:
		f.ip = instr.Target
		return sigNone, nil, nil
	case bytecode.OpJumpIfTrue, bytecode.OpJumpIfFalse:
		return sigNone, nil, f.execJumpIf(instr, host)
	case bytecode.OpJumpIfTrueOrPop, bytecode.OpJumpIfFalseOrPop:
		return sigNone, nil, f.execJumpOrPop(instr, host)

	case bytecode.OpSetupLoop:
		f.pushBlock(Block{Kind: BlockLoop, Start: instr.Target, End: instr.Target2})
		return sigNone, nil, nil
	case bytecode.OpBreak:
		return sigNone, nil, f.execBreak(host)
	case bytecode.OpContinue:
		return sigNone, nil, f.execContinue(host)
	case bytecode.OpPopBlock:
		f.popBlock()
		return sigNone, nil, nil

	case bytecode.OpGetIter:
		return sigNone, nil, f.execGetIter(host)
	case bytecode.OpForIter:
		return sigNone, nil, f.execForIter(instr, host)

	case bytecode.OpSetupExcept:
		f.pushBlock(Block{Kind: BlockTryExcept, Handler: instr.Target})
		return sigNone, nil, nil
	case bytecode.OpPopException:
		f.execPopException(host)
		return sigNone, nil, nil

	case bytecode.OpSetupWith:
		return sigNone, nil, f.execSetupWith(instr, host)
	case bytecode.OpCleanupWith:
		return sigNone, nil, f.execCleanupWith(instr, host)

	case bytecode.OpYieldValue:
		return f.execYieldValue(host)
	case bytecode.OpYieldFrom:
		return f.execYieldFrom(host)

	case bytecode.OpReturnValue:
		return f.execReturnValue(host)

	case bytecode.OpMakeFunction:
		return sigNone, nil, f.execMakeFunction(instr, host)
	case bytecode.OpCallFunction:
		return sigNone, nil, f.execCallFunction(instr, host)

	case bytecode.OpUnpackSequence:
		return sigNone, nil, f.execUnpackSequence(instr, host)
	case bytecode.OpUnpackEx:
		return sigNone, nil, f.execUnpackEx(instr, host)
	case bytecode.OpUnpack:
		return sigNone, nil, f.execUnpack(host)

	case bytecode.OpRaise:
		return sigNone, nil, f.execRaise(instr, host)

	case bytecode.OpPass:
		return sigNone, nil, nil
	case bytecode.OpImport:
		return sigNone, nil, f.execImport(instr, host)
	case bytecode.OpImportFrom:
		return sigNone, nil, f.execImportFrom(instr, host)
	case bytecode.OpImportStar:
		return sigNone, nil, f.execImportStar(host)
	case bytecode.OpPrintExpr:
		return sigNone, nil, f.execPrintExpr(host)
	case bytecode.OpLoadBuildClass:
		f.push(host.ClassBuilder())
		return sigNone, nil, nil
	case bytecode.OpFormatValue:
		return sigNone, nil, f.execFormatValue(instr, host)
	}

	hostiface.Panic("unhandled opcode " + instr.Op.String())
	return sigNone, nil, nil
}
