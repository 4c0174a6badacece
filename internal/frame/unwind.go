package frame

import "github.com/emberlang/ember/internal/hostiface"

// unwindForException is the general raise-time walk: pop blocks one at a
// time until a handler is found, invoking With exits and discarding
// Loop/ExceptHandler blocks along the way. Returns true (and leaves the
// frame positioned to resume dispatch at the handler) if a TryExcept
// caught it, or a With suppressed it; false if the block stack emptied
// without handling, in which case the caller reports Error(e).
func (f *Frame) unwindForException(host hostiface.Host, re *hostiface.RaisedError) bool {
	exc := re.Exc
	for {
		blk, ok := f.currentBlock()
		if !ok {
			return false
		}
		f.popBlock()

		switch blk.Kind {
		case BlockTryExcept:
			f.pushBlock(Block{Kind: BlockExceptHandler})
			f.push(exc)
			host.PushException(exc)
			f.ip = blk.Handler
			return true

		case BlockWith:
			suppressed, exitErr := host.ExitContext(blk.Manager, exc)
			if exitErr != nil {
				// If __exit__ itself raises, that new exception replaces
				// exc and the walk keeps going against the remaining
				// blocks rather than returning immediately.
				if newRe, ok := exitErr.(*hostiface.RaisedError); ok {
					exc = newRe.Exc
					re = newRe
				} else {
					hostiface.Panic("With exit returned a non-RaisedError: " + exitErr.Error())
				}
				continue
			}
			if suppressed {
				f.ip = blk.End
				return true
			}
			// falsy: continue unwinding with the original exception.
			continue

		case BlockLoop:
			continue

		case BlockExceptHandler:
			host.PopException()
			continue
		}
	}
}

// unwindForReturn is the block-stack walk ReturnValue runs on its way out:
// the same traversal as unwindForException without TryExcept handling — a
// TryExcept at return time is simply discarded, a With still triggers a
// no-exception __exit__, and an ExceptHandler still clears the host's
// exception register. If a With exit raises during this walk, that error
// supersedes the return.
func (f *Frame) unwindForReturn(host hostiface.Host) error {
	for {
		blk, ok := f.currentBlock()
		if !ok {
			return nil
		}
		f.popBlock()

		switch blk.Kind {
		case BlockTryExcept:
			continue
		case BlockWith:
			_, exitErr := host.ExitContext(blk.Manager, nil)
			if exitErr != nil {
				return exitErr
			}
			continue
		case BlockLoop:
			continue
		case BlockExceptHandler:
			host.PopException()
			continue
		}
	}
}

// unwindForLoop is the walk Break and Continue run: pop blocks until the
// innermost Loop (exclusive — the Loop itself is left for the caller to
// pop-and-jump on Break, or left in place for Continue), running With
// exits and popping ExceptHandlers along the way. An error from a With
// exit is fatal in the Continue path (no handler is reachable by
// re-entering the loop body) but propagates normally from Break via the
// ordinary raise machinery, since that walk is already headed out of the
// loop (see DESIGN.md for why this differs from a literal port of
// original_source/).
func (f *Frame) unwindForLoop(host hostiface.Host, isContinue bool) (Block, error) {
	for {
		blk, ok := f.currentBlock()
		if !ok {
			hostiface.Panic("unwind_loop: no enclosing Loop block")
		}
		if blk.Kind == BlockLoop {
			return blk, nil
		}
		f.popBlock()

		switch blk.Kind {
		case BlockWith:
			_, exitErr := host.ExitContext(blk.Manager, nil)
			if exitErr != nil {
				if isContinue {
					hostiface.Panic("With __exit__ raised during continue: " + exitErr.Error())
				}
				return Block{}, exitErr
			}
		case BlockExceptHandler:
			host.PopException()
		case BlockTryExcept:
			// discard
		}
	}
}

// getException pops a value off the stack and resolves it to a raisable
// exception instance via resolveException.
func (f *Frame) getException(host hostiface.Host, allowNone bool) (hostiface.Value, error) {
	return resolveException(host, f.pop(), allowNone)
}

// resolveException normalizes a raw value into a raisable exception
// instance: a BaseException instance is returned as-is, a
// BaseException-descended class is instantiated with no arguments, the
// none value is accepted only when allowNone is set, and anything else is
// a type-error. Used both for the value Raise/TryExcept actually raises
// and for Raise's optional cause operand, which is subject to the same
// class-or-instance rule.
func resolveException(host hostiface.Host, v hostiface.Value, allowNone bool) (hostiface.Value, error) {
	if allowNone && host.IsNone(v) {
		return nil, nil
	}
	if host.IsExceptionInstance(v) {
		return v, nil
	}
	if host.IsExceptionClass(v) {
		inst, err := host.NewEmptyException(v)
		if err != nil {
			return nil, err
		}
		return inst, nil
	}
	return nil, hostiface.NewRaisedError(hostiface.KindTypeError, host.NewTypeError("exceptions must derive from BaseException"))
}
