// Command emberframe hand-assembles a few CodeObjects and drives them
// through internal/frame against internal/testhost, printing the
// Return/Yield sequence each one produces. This repository has no
// compiler, so the "programs" below are built directly as
// bytecode.Instruction slices rather than read from source.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/emberlang/ember/internal/bytecode"
	"github.com/emberlang/ember/internal/frame"
	"github.com/emberlang/ember/internal/testhost"
)

func main() {
	host := testhost.NewHost()

	fmt.Println("-- arithmetic --")
	runAndPrint(host, arithmeticProgram())

	fmt.Println("-- generator --")
	runGenerator(host, countdownProgram())
}

func runAndPrint(host *testhost.Host, code *bytecode.CodeObject) {
	f := frame.NewFrame(code, testhost.NewModuleScope())
	outcome := f.Run(context.Background(), host)
	switch outcome.Kind {
	case frame.OutcomeReturn:
		fmt.Printf("return: %v\n", outcome.Value)
	case frame.OutcomeError:
		fmt.Fprintf(os.Stderr, "error: %v\n", outcome.Err)
	}
}

func runGenerator(host *testhost.Host, code *bytecode.CodeObject) {
	f := frame.NewFrame(code, testhost.NewModuleScope())
	for {
		outcome := f.Run(context.Background(), host)
		switch outcome.Kind {
		case frame.OutcomeYield:
			fmt.Printf("yield: %v\n", outcome.Value)
			continue
		case frame.OutcomeReturn:
			fmt.Printf("return: %v\n", outcome.Value)
		case frame.OutcomeError:
			fmt.Fprintf(os.Stderr, "error: %v\n", outcome.Err)
		}
		return
	}
}

// arithmeticProgram computes (2 + 3) * 4 and returns it.
func arithmeticProgram() *bytecode.CodeObject {
	return &bytecode.CodeObject{
		Name:       "<arithmetic>",
		SourcePath: "<emberframe>",
		Constants:  []any{2, 3, 4},
		Instructions: []bytecode.Instruction{
			{Op: bytecode.OpLoadConst, Arg: 0},
			{Op: bytecode.OpLoadConst, Arg: 1},
			{Op: bytecode.OpBinaryOperation, Arg: int(bytecode.BinAdd)},
			{Op: bytecode.OpLoadConst, Arg: 2},
			{Op: bytecode.OpBinaryOperation, Arg: int(bytecode.BinMul)},
			{Op: bytecode.OpReturnValue},
		},
		Locations: []bytecode.SourceLocation{
			{Path: "<emberframe>", Line: 1}, {Path: "<emberframe>", Line: 1},
			{Path: "<emberframe>", Line: 1}, {Path: "<emberframe>", Line: 1},
			{Path: "<emberframe>", Line: 1}, {Path: "<emberframe>", Line: 1},
		},
	}
}

// countdownProgram yields 2, 1, 0, then returns 0 — a hand-rolled
// generator body equivalent to:
//
//	i = 2
//	while i >= 0:
//	    yield i
//	    i = i - 1
//	return 0
//
// Instruction 2's SetupLoop.Target2 (the block's End, used by Break,
// which this program never executes) points past the PopBlock at 14;
// the ordinary JumpIfFalse exit at 6 instead targets PopBlock directly,
// since on that path the Loop block is still on the stack and needs
// popping, whereas Break pops it itself before jumping.
//
// YieldValue pops the yielded value and suspends; it does not push
// anything back when the frame is driven again, so the instruction right
// after it must not assume a value is there to discard.
func countdownProgram() *bytecode.CodeObject {
	full := []bytecode.Instruction{
		{Op: bytecode.OpLoadConst, Arg: 0},                          // 0: push 2
		{Op: bytecode.OpStoreLocal, Name: "i"},                      // 1: i = 2
		{Op: bytecode.OpSetupLoop, Target: 3, Target2: 15},          // 2
		{Op: bytecode.OpLoadLocal, Name: "i"},                       // 3: push i
		{Op: bytecode.OpLoadConst, Arg: 1},                          // 4: push 0
		{Op: bytecode.OpCompareOperation, Arg: int(bytecode.CmpGe)}, // 5: i >= 0
		{Op: bytecode.OpJumpIfFalse, Target: 14},                    // 6: exit to PopBlock if false
		{Op: bytecode.OpLoadLocal, Name: "i"},                       // 7: push i
		{Op: bytecode.OpYieldValue},                                 // 8: yield i
		{Op: bytecode.OpLoadLocal, Name: "i"},                       // 9: push i
		{Op: bytecode.OpLoadConst, Arg: 2},                          // 10: push 1
		{Op: bytecode.OpBinaryOperation, Arg: int(bytecode.BinSub)}, // 11: i - 1
		{Op: bytecode.OpStoreLocal, Name: "i"},                      // 12: i = i - 1
		{Op: bytecode.OpJump, Target: 3},                            // 13: back to loop test
		{Op: bytecode.OpPopBlock},                                   // 14: pop the Loop block
		{Op: bytecode.OpLoadConst, Arg: 1},                          // 15: push 0
		{Op: bytecode.OpReturnValue},                                // 16: return 0
	}
	code := &bytecode.CodeObject{
		Name:         "<countdown>",
		SourcePath:   "<emberframe>",
		Constants:    []any{2, 0, 1},
		Instructions: full,
	}
	locs := make([]bytecode.SourceLocation, len(full))
	for i := range locs {
		locs[i] = bytecode.SourceLocation{Path: "<emberframe>", Line: 2}
	}
	code.Locations = locs
	return code
}
