package model

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/k8culver/dimod/pkg/dimod"
)

// BinaryQuadraticModel is a pairwise model over two-valued variables,
// either Binary ({0,1}) or Spin ({-1,+1}):
//
//	E(x) = sum_i h_i*x_i + sum_(i<j) J_ij*x_i*x_j + offset
type BinaryQuadraticModel struct {
	vartype   dimod.Vartype
	variables []dimod.Variable
	seen      map[dimod.Variable]bool
	expr      *Expr
}

var _ dimod.Model = &BinaryQuadraticModel{}

// NewBinaryQuadraticModel returns an empty model of the given vartype,
// which must be Binary or Spin.
func NewBinaryQuadraticModel(vartype dimod.Vartype) (*BinaryQuadraticModel, error) {
	if vartype != dimod.Binary && vartype != dimod.Spin {
		return nil, fmt.Errorf("binary quadratic model vartype must be BINARY or SPIN, got %s", vartype)
	}
	return &BinaryQuadraticModel{
		vartype: vartype,
		seen:    map[dimod.Variable]bool{},
		expr:    NewExpr(),
	}, nil
}

// FromIsing builds a Spin model from linear biases h and pairwise
// couplings j. Variables are ordered lexicographically so that the
// result is deterministic regardless of map iteration order.
func FromIsing(h map[dimod.Variable]float64, j map[VarPair]float64, offset float64) *BinaryQuadraticModel {
	bqm, _ := NewBinaryQuadraticModel(dimod.Spin)
	populate(bqm, h, j, offset)
	return bqm
}

// FromQUBO builds a Binary model from the upper-triangular QUBO
// mapping q. Diagonal entries (u == v) become linear biases, since
// x*x == x for binary x.
func FromQUBO(q map[VarPair]float64, offset float64) *BinaryQuadraticModel {
	bqm, _ := NewBinaryQuadraticModel(dimod.Binary)
	linear := map[dimod.Variable]float64{}
	quadratic := map[VarPair]float64{}
	for p, bias := range q {
		if p.U == p.V {
			linear[p.U] += bias
		} else {
			quadratic[pair(p.U, p.V)] += bias
		}
	}
	populate(bqm, linear, quadratic, offset)
	return bqm
}

func populate(bqm *BinaryQuadraticModel, linear map[dimod.Variable]float64, quadratic map[VarPair]float64, offset float64) {
	names := make([]dimod.Variable, 0, len(linear))
	for v := range linear {
		names = append(names, v)
	}
	sort.Slice(names, func(i, k int) bool { return names[i] < names[k] })
	for _, v := range names {
		bqm.AddVariable(v, linear[v])
	}

	pairs := make([]VarPair, 0, len(quadratic))
	for p := range quadratic {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, k int) bool {
		if pairs[i].U != pairs[k].U {
			return pairs[i].U < pairs[k].U
		}
		return pairs[i].V < pairs[k].V
	})
	for _, p := range pairs {
		bqm.AddInteraction(p.U, p.V, quadratic[p])
	}
	bqm.expr.AddOffset(offset)
}

// AddVariable adds v with the given linear bias, accumulating the
// bias if v is already present.
func (b *BinaryQuadraticModel) AddVariable(v dimod.Variable, bias float64) {
	if !b.seen[v] {
		b.seen[v] = true
		b.variables = append(b.variables, v)
	}
	b.expr.AddLinear(v, bias)
}

// AddInteraction adds a pairwise coupling between u and v, adding
// either variable first if absent.
func (b *BinaryQuadraticModel) AddInteraction(u, v dimod.Variable, bias float64) {
	if !b.seen[u] {
		b.AddVariable(u, 0)
	}
	if !b.seen[v] {
		b.AddVariable(v, 0)
	}
	b.expr.AddQuadratic(u, v, bias)
}

// AddOffset accumulates a constant energy offset.
func (b *BinaryQuadraticModel) AddOffset(offset float64) {
	b.expr.AddOffset(offset)
}

func (b *BinaryQuadraticModel) Variables() []dimod.Variable {
	return b.variables
}

// ModelVartype returns the vartype shared by every variable.
func (b *BinaryQuadraticModel) ModelVartype() dimod.Vartype {
	return b.vartype
}

func (b *BinaryQuadraticModel) Vartype(_ dimod.Variable) dimod.Vartype {
	return b.vartype
}

func (b *BinaryQuadraticModel) Energies(samples *mat.Dense, order []dimod.Variable) []float64 {
	return b.expr.Energies(samples, order)
}
