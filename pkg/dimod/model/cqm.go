package model

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/k8culver/dimod/pkg/dimod"
)

// Sense is the comparison a constraint applies between its expression
// and its right-hand side.
type Sense int

const (
	Eq Sense = iota
	Le
	Ge
)

func (s Sense) String() string {
	switch s {
	case Eq:
		return "=="
	case Le:
		return "<="
	case Ge:
		return ">="
	default:
		return fmt.Sprintf("Sense(%d)", int(s))
	}
}

// SenseFromString parses a comparison operator.
func SenseFromString(s string) (Sense, error) {
	switch s {
	case "==":
		return Eq, nil
	case "<=":
		return Le, nil
	case ">=":
		return Ge, nil
	default:
		return 0, fmt.Errorf("unknown constraint sense %q", s)
	}
}

// Constraint is a labeled comparison of a quadratic expression
// against a constant.
type Constraint struct {
	Label string
	Expr  *Expr
	Sense Sense
	Rhs   float64
}

// violation is the nonnegative magnitude by which lhs breaches the
// constraint; zero means exactly satisfied.
func (c *Constraint) violation(lhs float64) float64 {
	switch c.Sense {
	case Le:
		return math.Max(0, lhs-c.Rhs)
	case Ge:
		return math.Max(0, c.Rhs-lhs)
	default:
		return math.Abs(lhs - c.Rhs)
	}
}

type bounds struct {
	lower, upper int
}

// ConstrainedQuadraticModel carries a quadratic objective and labeled
// quadratic constraints over a heterogeneous variable set. Binary
// variables may additionally be registered into one-hot discrete
// groups.
type ConstrainedQuadraticModel struct {
	variables   []dimod.Variable
	vartypes    map[dimod.Variable]dimod.Vartype
	bounds      map[dimod.Variable]bounds
	objective   *Expr
	constraints []*Constraint
	byLabel     map[string]*Constraint
	discrete    []dimod.DiscreteGroup
	grouped     map[dimod.Variable]bool
}

var _ dimod.ConstrainedModel = &ConstrainedQuadraticModel{}

// NewConstrainedQuadraticModel returns an empty constrained model.
func NewConstrainedQuadraticModel() *ConstrainedQuadraticModel {
	return &ConstrainedQuadraticModel{
		vartypes:  map[dimod.Variable]dimod.Vartype{},
		bounds:    map[dimod.Variable]bounds{},
		objective: NewExpr(),
		byLabel:   map[string]*Constraint{},
		grouped:   map[dimod.Variable]bool{},
	}
}

// AddVariable adds v with the given vartype. Integer variables must
// be added with AddInteger so their bounds are known.
func (m *ConstrainedQuadraticModel) AddVariable(v dimod.Variable, vartype dimod.Vartype) error {
	if vartype == dimod.Integer {
		return fmt.Errorf("integer variable %q must be added with AddInteger", v)
	}
	return m.add(v, vartype)
}

// AddInteger adds v with an inclusive [lower, upper] range.
func (m *ConstrainedQuadraticModel) AddInteger(v dimod.Variable, lower, upper int) error {
	if upper < lower {
		return fmt.Errorf("variable %q has empty range [%d, %d]", v, lower, upper)
	}
	if err := m.add(v, dimod.Integer); err != nil {
		return err
	}
	m.bounds[v] = bounds{lower: lower, upper: upper}
	return nil
}

func (m *ConstrainedQuadraticModel) add(v dimod.Variable, vartype dimod.Vartype) error {
	if _, ok := m.vartypes[v]; ok {
		return dimod.DuplicateVariable(v)
	}
	m.vartypes[v] = vartype
	m.variables = append(m.variables, v)
	return nil
}

// checkExpr verifies every variable expr references is declared in
// the model. Silently reading a wrong column would defeat the point
// of an exhaustive solver, so expressions over undeclared variables
// are rejected up front.
func (m *ConstrainedQuadraticModel) checkExpr(expr *Expr) error {
	for _, v := range expr.Variables() {
		if _, ok := m.vartypes[v]; !ok {
			return dimod.UnknownVariable(v)
		}
	}
	return nil
}

// SetObjective replaces the model's objective expression. Every
// variable the expression references must already be declared.
func (m *ConstrainedQuadraticModel) SetObjective(expr *Expr) error {
	if err := m.checkExpr(expr); err != nil {
		return err
	}
	m.objective = expr
	return nil
}

// Objective returns the model's objective expression.
func (m *ConstrainedQuadraticModel) Objective() *Expr {
	return m.objective
}

// AddConstraint adds a labeled constraint expr sense rhs. Every
// variable the expression references must already be declared.
func (m *ConstrainedQuadraticModel) AddConstraint(label string, expr *Expr, sense Sense, rhs float64) error {
	if _, ok := m.byLabel[label]; ok {
		return fmt.Errorf("duplicate constraint label %q", label)
	}
	if err := m.checkExpr(expr); err != nil {
		return err
	}
	c := &Constraint{Label: label, Expr: expr, Sense: sense, Rhs: rhs}
	m.constraints = append(m.constraints, c)
	m.byLabel[label] = c
	return nil
}

// AddDiscrete registers the given binary variables as a one-hot group
// under label, and adds the corresponding sum == 1 constraint. Each
// variable can belong to at most one group.
func (m *ConstrainedQuadraticModel) AddDiscrete(label string, variables ...dimod.Variable) error {
	if len(variables) == 0 {
		return fmt.Errorf("discrete group %q has no variables", label)
	}
	for _, v := range variables {
		vartype, ok := m.vartypes[v]
		if !ok {
			return dimod.UnknownVariable(v)
		}
		if vartype != dimod.Binary {
			return fmt.Errorf("discrete group %q member %q must be BINARY, got %s", label, v, vartype)
		}
		if m.grouped[v] {
			return fmt.Errorf("variable %q already belongs to a discrete group", v)
		}
	}

	onehot := NewExpr()
	for _, v := range variables {
		onehot.AddLinear(v, 1)
	}
	if err := m.AddConstraint(label, onehot, Eq, 1); err != nil {
		return err
	}
	for _, v := range variables {
		m.grouped[v] = true
	}
	m.discrete = append(m.discrete, dimod.DiscreteGroup{Label: label, Variables: variables})
	return nil
}

func (m *ConstrainedQuadraticModel) Variables() []dimod.Variable {
	return m.variables
}

func (m *ConstrainedQuadraticModel) Vartype(v dimod.Variable) dimod.Vartype {
	return m.vartypes[v]
}

func (m *ConstrainedQuadraticModel) Bounds(v dimod.Variable) (int, int) {
	b := m.bounds[v]
	return b.lower, b.upper
}

func (m *ConstrainedQuadraticModel) DiscreteGroups() []dimod.DiscreteGroup {
	return m.discrete
}

func (m *ConstrainedQuadraticModel) ConstraintLabels() []string {
	labels := make([]string, len(m.constraints))
	for i, c := range m.constraints {
		labels[i] = c.Label
	}
	return labels
}

func (m *ConstrainedQuadraticModel) Energies(samples *mat.Dense, order []dimod.Variable) []float64 {
	return m.objective.Energies(samples, order)
}

func (m *ConstrainedQuadraticModel) Violations(label string, samples *mat.Dense, order []dimod.Variable) ([]float64, error) {
	c, ok := m.byLabel[label]
	if !ok {
		return nil, dimod.UnknownConstraint(label)
	}
	lhs := c.Expr.Energies(samples, order)
	violations := make([]float64, len(lhs))
	for i, l := range lhs {
		violations[i] = c.violation(l)
	}
	return violations, nil
}
