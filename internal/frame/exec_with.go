package frame

import (
	"github.com/emberlang/ember/internal/bytecode"
	"github.com/emberlang/ember/internal/hostiface"
)

// execSetupWith implements SetupWith(end): pop the context manager, call
// its __enter__, push a With block (holding end and the manager), then
// push the __enter__ result.
func (f *Frame) execSetupWith(instr bytecode.Instruction, host hostiface.Host) error {
	cm := f.pop()
	result, err := host.EnterContext(cm)
	if err != nil {
		return wrapHostErr(host, err)
	}
	f.pushBlock(Block{Kind: BlockWith, End: instr.Target, Manager: cm})
	f.push(result)
	return nil
}

// execCleanupWith implements CleanupWith(end): pop the With block
// (asserting its end label matches, since the block stack must stay in
// sync with the compiled jump target), then call the manager's
// __exit__(None, None, None).
func (f *Frame) execCleanupWith(instr bytecode.Instruction, host hostiface.Host) error {
	blk := f.popBlock()
	if blk.Kind != BlockWith || blk.End != instr.Target {
		hostiface.Panic("CleanupWith: block stack out of sync with compiled end label")
	}
	if _, err := host.ExitContext(blk.Manager, nil); err != nil {
		return wrapHostErr(host, err)
	}
	return nil
}
