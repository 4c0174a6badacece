package frame

import (
	"fmt"
	"strings"
)

// Dump renders a multi-line snapshot of the frame's operand stack, block
// stack, and local bindings. Adapted from kristofer/smog's debugger
// ShowStack/ShowLocals/ShowCallStack formatting, collapsed from an
// interactive breakpoint prompt into a single on-demand snapshot — no
// interactivity here, this package has no REPL.
func (f *Frame) Dump() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Frame %s (%s) ip=%d\n", f.Code.Name, f.Code.SourcePath, f.ip)

	fmt.Fprintln(&b, "Stack (top to bottom):")
	if len(f.stack) == 0 {
		fmt.Fprintln(&b, "  (empty)")
	} else {
		for i := len(f.stack) - 1; i >= 0; i-- {
			fmt.Fprintf(&b, "  [%d] %v\n", i, f.stack[i])
		}
	}

	fmt.Fprintln(&b, "Block stack (top to bottom):")
	if len(f.blocks) == 0 {
		fmt.Fprintln(&b, "  (empty)")
	} else {
		for i := len(f.blocks) - 1; i >= 0; i-- {
			blk := f.blocks[i]
			fmt.Fprintf(&b, "  [%d] %s level=%d\n", i, blk.Kind, blk.Level)
		}
	}

	fmt.Fprintln(&b, "Locals:")
	locals := f.Scope.Locals()
	if len(locals) == 0 {
		fmt.Fprintln(&b, "  (none set)")
	} else {
		for name, v := range locals {
			fmt.Fprintf(&b, "  %s = %v\n", name, v)
		}
	}

	return b.String()
}
