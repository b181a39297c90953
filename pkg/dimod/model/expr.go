package model

import (
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/k8culver/dimod/pkg/dimod"
)

// VarPair keys a quadratic interaction between two variables. The
// pair (u, v) and the pair (v, u) denote the same interaction; Expr
// normalizes them to a single key.
type VarPair struct {
	U, V dimod.Variable
}

func pair(u, v dimod.Variable) VarPair {
	if v < u {
		u, v = v, u
	}
	return VarPair{U: u, V: v}
}

// Expr is a quadratic expression over model variables:
//
//	sum_i linear_i*x_i + sum_ij quadratic_ij*x_i*x_j + offset
//
// A pair with U == V contributes bias*x*x.
type Expr struct {
	linear    map[dimod.Variable]float64
	quadratic map[VarPair]float64
	offset    float64
}

// NewExpr returns an empty quadratic expression.
func NewExpr() *Expr {
	return &Expr{
		linear:    map[dimod.Variable]float64{},
		quadratic: map[VarPair]float64{},
	}
}

// AddLinear accumulates a linear bias on v.
func (e *Expr) AddLinear(v dimod.Variable, bias float64) *Expr {
	e.linear[v] += bias
	return e
}

// AddQuadratic accumulates a quadratic bias on the interaction (u, v).
func (e *Expr) AddQuadratic(u, v dimod.Variable, bias float64) *Expr {
	e.quadratic[pair(u, v)] += bias
	return e
}

// AddOffset accumulates a constant offset.
func (e *Expr) AddOffset(offset float64) *Expr {
	e.offset += offset
	return e
}

// Linear returns the linear bias on v.
func (e *Expr) Linear(v dimod.Variable) float64 {
	return e.linear[v]
}

// Quadratic returns the quadratic bias on the interaction (u, v).
func (e *Expr) Quadratic(u, v dimod.Variable) float64 {
	return e.quadratic[pair(u, v)]
}

// Offset returns the constant offset.
func (e *Expr) Offset() float64 {
	return e.offset
}

// Variables returns every variable the expression references, sorted
// lexicographically.
func (e *Expr) Variables() []dimod.Variable {
	seen := map[dimod.Variable]bool{}
	for v := range e.linear {
		seen[v] = true
	}
	for p := range e.quadratic {
		seen[p.U] = true
		seen[p.V] = true
	}
	variables := make([]dimod.Variable, 0, len(seen))
	for v := range seen {
		variables = append(variables, v)
	}
	sort.Slice(variables, func(i, k int) bool { return variables[i] < variables[k] })
	return variables
}

// Energies evaluates the expression for every row of samples in one
// call. Columns of samples are labeled by order.
func (e *Expr) Energies(samples *mat.Dense, order []dimod.Variable) []float64 {
	column := make(map[dimod.Variable]int, len(order))
	for i, v := range order {
		column[v] = i
	}

	rows, _ := samples.Dims()
	energies := make([]float64, rows)
	for i := 0; i < rows; i++ {
		energy := e.offset
		for v, bias := range e.linear {
			energy += bias * samples.At(i, column[v])
		}
		for p, bias := range e.quadratic {
			energy += bias * samples.At(i, column[p.U]) * samples.At(i, column[p.V])
		}
		energies[i] = energy
	}
	return energies
}
