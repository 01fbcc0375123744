package assert

import "github.com/bumpmine-sim/subtick/oerror"

// IsTrue panics with an *oerror.SimError if ok is false. It is used for programmer-contract
// violations that must fail fast instead of being handled at runtime.
func IsTrue(ok bool, message string, args ...interface{}) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}

// Unreachable panics unconditionally.
func Unreachable(message string, args ...interface{}) {
	panic(oerror.New(message, args...))
}
