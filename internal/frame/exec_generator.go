package frame

import "github.com/emberlang/ember/internal/hostiface"

// execYieldValue implements YieldValue: pop a value and yield it. The
// pointer has already advanced past this instruction, so re-entry resumes
// at the following one.
func (f *Frame) execYieldValue(host hostiface.Host) (signal, hostiface.Value, error) {
	v := f.pop()
	return sigYield, v, nil
}

// execYieldFrom implements YieldFrom. The sent-in value is popped and
// discarded (see DESIGN.md: a full delegating generator would thread it
// via send/throw on the delegate instead, but nothing in this codebase
// emits a sequence that would exercise that path). The delegate iterator
// is then peeked (left on the stack) and advanced; on a value, the
// pointer is rewound by one so re-entry retries this same YieldFrom
// instruction, reproducing the pop-sent/peek-iterator sequence. On
// exhaustion, execution falls through and leaves the iterator on the
// stack for the compiled code that follows to pop.
func (f *Frame) execYieldFrom(host hostiface.Host) (signal, hostiface.Value, error) {
	_ = f.pop() // sent value — discarded, see above

	it := f.top()
	v, ok, err := host.Next(it)
	if err != nil {
		return sigNone, nil, wrapHostErr(host, err)
	}
	if !ok {
		return sigNone, nil, nil
	}
	f.ip--
	return sigYield, v, nil
}
