package frame

import "github.com/emberlang/ember/internal/hostiface"

// wrapHostErr normalizes an error returned by a Host call into a
// *hostiface.RaisedError: a Host is expected to already return one for
// any script-visible failure, but this is a safety net for a Host that
// returns a plain error (e.g. from an adapted stdlib call) instead of
// constructing the exception object itself.
func wrapHostErr(host hostiface.Host, err error) error {
	if err == nil {
		return nil
	}
	if re, ok := err.(*hostiface.RaisedError); ok {
		return re
	}
	return hostiface.NewRaisedError(hostiface.KindVMPropagated, host.NewRuntimeError(err.Error()))
}

// raise is a small helper for the frame's own invariant checks (name
// lookups, unpack arity, reraise-with-nothing-active) that need to
// manufacture a RaisedError of a specific kind from a host constructor.
func raise(kind hostiface.ExceptionKind, exc hostiface.Value) error {
	return hostiface.NewRaisedError(kind, exc)
}
