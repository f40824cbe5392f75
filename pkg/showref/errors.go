package showref

import (
	"errors"
	"fmt"

	"github.com/odvcencio/showref/pkg/object"
)

// ErrNoMatch signals that an invocation found no refs to report. It is the
// "failure" exit signal, not a diagnostic.
var ErrNoMatch = errors.New("no matching refs")

// ErrVerifyUsage signals that verify mode was invoked without any ref
// names.
var ErrVerifyUsage = errors.New("verify requires a reference")

// BadRefError reports a ref whose target object is missing from the object
// store. This is treated as repository corruption and aborts the whole
// invocation.
type BadRefError struct {
	Name   string
	Target object.Hash
}

func (e *BadRefError) Error() string {
	return fmt.Sprintf("bad ref %s (%s)", e.Name, e.Target)
}

// InvalidRefError reports a name that verify mode refused: either it is
// not a fully qualified ref name, or it did not resolve.
type InvalidRefError struct {
	Name string
}

func (e *InvalidRefError) Error() string {
	return fmt.Sprintf("'%s' - not a valid ref", e.Name)
}
