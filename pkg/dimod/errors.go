package dimod

import "fmt"

// UnsupportedVartypeError is returned when a variable's declared
// domain cannot be enumerated. Only Binary, Spin, and Integer
// variables are supported as free-form variables of a constrained
// model.
type UnsupportedVartypeError struct {
	Variable Variable
	Vartype  Vartype
}

func (e UnsupportedVartypeError) Error() string {
	return fmt.Sprintf("variable %q has vartype %s: only BINARY, SPIN, or INTEGER variables can be enumerated", e.Variable, e.Vartype)
}

// DuplicateVariable is returned when a variable is added to a model
// that already contains it.
type DuplicateVariable Variable

func (e DuplicateVariable) Error() string {
	return fmt.Sprintf("duplicate variable %q in model", Variable(e))
}

// UnknownVariable is returned when an operation references a variable
// the model does not contain.
type UnknownVariable Variable

func (e UnknownVariable) Error() string {
	return fmt.Sprintf("unknown variable %q", Variable(e))
}

// UnknownConstraint is returned when an operation references a
// constraint label the model does not contain.
type UnknownConstraint string

func (e UnknownConstraint) Error() string {
	return fmt.Sprintf("unknown constraint %q", string(e))
}
