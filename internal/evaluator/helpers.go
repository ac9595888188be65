package evaluator

import "fmt"

func isError(obj Object) bool {
	if obj != nil {
		return obj.Type() == ERROR_OBJ
	}
	return false
}

func newError(format string, args ...interface{}) *Error {
	return &Error{Kind: TypeError, Message: fmt.Sprintf(format, args...)}
}

func newTypeError(format string, args ...interface{}) *Error {
	return &Error{Kind: TypeError, Message: fmt.Sprintf(format, args...)}
}

func newUnboundNameError(name string) *Error {
	return &Error{
		Kind:    UnboundNameError,
		Message: fmt.Sprintf("name '%s' is not defined", name),
	}
}

func newArityError(name string, expected, given int) *Error {
	return &Error{
		Kind: ArityError,
		Message: fmt.Sprintf("%s() takes %d positional arguments but %d were given",
			name, expected, given),
	}
}

// equalsTrue is the truth test of if/while: the value is compared against
// boolean true, with booleans numerically equal to 0 and 1. Anything else,
// non-empty strings included, does not pass.
func equalsTrue(obj Object) bool {
	switch obj := obj.(type) {
	case *Boolean:
		return obj.Value
	case *Integer:
		return obj.Value == 1
	case *Float:
		return obj.Value == 1.0
	}
	return false
}
