package model

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/k8culver/dimod/pkg/dimod"
)

type caseKey struct {
	v dimod.Variable
	c int
}

type caseInteraction struct {
	u, v   dimod.Variable
	cu, cv int
}

// DiscreteQuadraticModel is a pairwise model over multi-valued
// discrete variables. Each variable takes one of a fixed number of
// cases; biases attach to individual cases and to pairs of cases of
// distinct variables.
type DiscreteQuadraticModel struct {
	variables []dimod.Variable
	cases     map[dimod.Variable]int
	linear    map[caseKey]float64
	quadratic map[caseInteraction]float64
}

var _ dimod.CaseModel = &DiscreteQuadraticModel{}

// NewDiscreteQuadraticModel returns an empty discrete model.
func NewDiscreteQuadraticModel() *DiscreteQuadraticModel {
	return &DiscreteQuadraticModel{
		cases:     map[dimod.Variable]int{},
		linear:    map[caseKey]float64{},
		quadratic: map[caseInteraction]float64{},
	}
}

// AddVariable adds a discrete variable with the given number of cases.
func (d *DiscreteQuadraticModel) AddVariable(v dimod.Variable, numCases int) error {
	if numCases < 1 {
		return fmt.Errorf("variable %q must have at least one case, got %d", v, numCases)
	}
	if _, ok := d.cases[v]; ok {
		return dimod.DuplicateVariable(v)
	}
	d.cases[v] = numCases
	d.variables = append(d.variables, v)
	return nil
}

// SetLinearCase sets the bias applied when v takes case c.
func (d *DiscreteQuadraticModel) SetLinearCase(v dimod.Variable, c int, bias float64) error {
	if err := d.checkCase(v, c); err != nil {
		return err
	}
	d.linear[caseKey{v, c}] = bias
	return nil
}

// SetQuadraticCase sets the bias applied when u takes case cu and v
// takes case cv. u and v must be distinct.
func (d *DiscreteQuadraticModel) SetQuadraticCase(u dimod.Variable, cu int, v dimod.Variable, cv int, bias float64) error {
	if u == v {
		return fmt.Errorf("self-interaction on variable %q", u)
	}
	if err := d.checkCase(u, cu); err != nil {
		return err
	}
	if err := d.checkCase(v, cv); err != nil {
		return err
	}
	if v < u {
		u, v = v, u
		cu, cv = cv, cu
	}
	d.quadratic[caseInteraction{u, v, cu, cv}] = bias
	return nil
}

func (d *DiscreteQuadraticModel) checkCase(v dimod.Variable, c int) error {
	k, ok := d.cases[v]
	if !ok {
		return dimod.UnknownVariable(v)
	}
	if c < 0 || c >= k {
		return fmt.Errorf("case %d out of range for variable %q with %d cases", c, v, k)
	}
	return nil
}

func (d *DiscreteQuadraticModel) Variables() []dimod.Variable {
	return d.variables
}

func (d *DiscreteQuadraticModel) Vartype(_ dimod.Variable) dimod.Vartype {
	return dimod.Discrete
}

func (d *DiscreteQuadraticModel) NumCases(v dimod.Variable) int {
	return d.cases[v]
}

func (d *DiscreteQuadraticModel) Energies(samples *mat.Dense, order []dimod.Variable) []float64 {
	column := make(map[dimod.Variable]int, len(order))
	for i, v := range order {
		column[v] = i
	}

	rows, _ := samples.Dims()
	energies := make([]float64, rows)
	for i := 0; i < rows; i++ {
		var energy float64
		for k, bias := range d.linear {
			if int(samples.At(i, column[k.v])) == k.c {
				energy += bias
			}
		}
		for k, bias := range d.quadratic {
			if int(samples.At(i, column[k.u])) == k.cu && int(samples.At(i, column[k.v])) == k.cv {
				energy += bias
			}
		}
		energies[i] = energy
	}
	return energies
}
