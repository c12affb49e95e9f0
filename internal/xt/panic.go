// Package xt holds small helpers shared by the iet, decomposition and
// vectorlengths packages that would otherwise be duplicated across
// package boundaries. It exports nothing meant for callers of the module
// itself.
package xt

import "fmt"

// PreconditionViolation is the panic value raised when a caller breaks one
// of this module's construction-time or call-time invariants. These are
// programmer errors, never returned as values.
type PreconditionViolation struct {
	Package string
	Detail  string
}

func (p PreconditionViolation) Error() string {
	return fmt.Sprintf("%s: precondition violated: %s", p.Package, p.Detail)
}

// Precondition panics with a PreconditionViolation built from pkg and a
// formatted detail message.
func Precondition(pkg, format string, args ...interface{}) {
	panic(PreconditionViolation{Package: pkg, Detail: fmt.Sprintf(format, args...)})
}
