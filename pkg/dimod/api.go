package dimod

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Variable values uniquely identify particular variables within a
// single model. A Variable carries no state beyond its identity; its
// domain is declared by the model that owns it.
type Variable string

func (v Variable) String() string {
	return string(v)
}

// VariableFromString returns a Variable based on a provided string.
func VariableFromString(s string) Variable {
	return Variable(s)
}

// Vartype is the closed set of variable domains a model can declare.
type Vartype int

const (
	// Binary variables take values in {0, 1}.
	Binary Vartype = iota
	// Spin variables take values in {-1, +1}.
	Spin
	// Integer variables take values in a contiguous inclusive range.
	Integer
	// Discrete variables take case indices in {0, ..., k-1}.
	Discrete
	// Real variables are continuous and cannot be enumerated.
	Real
)

func (t Vartype) String() string {
	switch t {
	case Binary:
		return "BINARY"
	case Spin:
		return "SPIN"
	case Integer:
		return "INTEGER"
	case Discrete:
		return "DISCRETE"
	case Real:
		return "REAL"
	default:
		return fmt.Sprintf("Vartype(%d)", int(t))
	}
}

// VartypeFromString parses the canonical name of a Vartype.
func VartypeFromString(s string) (Vartype, error) {
	switch s {
	case "BINARY":
		return Binary, nil
	case "SPIN":
		return Spin, nil
	case "INTEGER":
		return Integer, nil
	case "DISCRETE":
		return Discrete, nil
	case "REAL":
		return Real, nil
	default:
		return 0, fmt.Errorf("unknown vartype %q", s)
	}
}

// Model is the read-only surface shared by every quadratic model the
// exhaustive solvers can enumerate.
type Model interface {
	// Variables returns the model's variables in a fixed order.
	Variables() []Variable
	// Vartype returns the declared domain of the given variable.
	Vartype(v Variable) Vartype
	// Energies evaluates the model's objective for every row of
	// samples in one call. Columns of samples are labeled by order,
	// which need not match the model's own variable order.
	Energies(samples *mat.Dense, order []Variable) []float64
}

// CaseModel is implemented by multi-valued discrete models whose
// variables take one of a fixed number of cases.
type CaseModel interface {
	Model
	// NumCases returns the number of cases of the given variable.
	NumCases(v Variable) int
}

// DiscreteGroup is a named set of binary variables that jointly form
// a one-hot encoding of a single logical discrete variable. Exactly
// one member variable equals 1 in any valid assignment.
type DiscreteGroup struct {
	Label     string
	Variables []Variable
}

// ConstrainedModel is implemented by models that carry constraints in
// addition to an objective, over a heterogeneous variable set.
type ConstrainedModel interface {
	Model
	// Bounds returns the inclusive range of an Integer variable.
	Bounds(v Variable) (lower, upper int)
	// DiscreteGroups returns the registered one-hot groups in
	// registration order. Group variable sets are disjoint from each
	// other and from the free-form variables.
	DiscreteGroups() []DiscreteGroup
	// ConstraintLabels returns the labels of all constraints in the
	// order they were added, including one-hot group constraints.
	ConstraintLabels() []string
	// Violations evaluates the named constraint over every row of
	// samples, returning one nonnegative violation magnitude per row.
	// Zero means exactly satisfied.
	Violations(label string, samples *mat.Dense, order []Variable) ([]float64, error)
}
