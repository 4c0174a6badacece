// Package hostiface defines the capability interfaces the execution frame
// consumes from its two external collaborators: the host virtual machine
// (object model, operator dispatch, exceptions, import) and the scope
// handle (name resolution). Neither is implemented here; internal/testhost
// provides a reference implementation for tests, and internal/frame is
// built only against these interfaces.
package hostiface

// Value is an opaque reference to a host object. The frame never inspects
// a Value's concrete type; every operation on one goes through Host.
type Value interface{}
