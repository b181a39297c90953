// Package satcheck verifies the one-hot structure of an enumerated
// assignment space with an independent SAT encoding. The mixed-domain
// enumerator promises that every discrete group appears only as a
// one-hot vector and that every one-hot combination appears; satcheck
// rechecks both claims through the gini solver rather than trusting
// the enumerator's own arithmetic.
package satcheck

import (
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
	"gonum.org/v1/gonum/mat"

	"github.com/k8culver/dimod/pkg/dimod"
)

const satisfiable = 1

// Checker encodes the exactly-one constraint of each discrete group
// as a cardinality circuit over one literal per group variable.
type Checker struct {
	circuit   *logic.C
	lits      map[dimod.Variable]z.Lit
	structure []z.Lit
}

// New returns a Checker for the given discrete groups.
func New(groups []dimod.DiscreteGroup) *Checker {
	c := &Checker{
		circuit: logic.NewC(),
		lits:    make(map[dimod.Variable]z.Lit),
	}
	for _, group := range groups {
		ms := make([]z.Lit, len(group.Variables))
		for i, v := range group.Variables {
			ms[i] = c.litOf(v)
		}
		card := c.circuit.CardSort(ms)
		exactlyOne := c.circuit.And(card.Leq(1), card.Geq(1))
		c.structure = append(c.structure, exactlyOne)
	}
	return c
}

// litOf returns the positive literal for the variable with the given
// identity, creating it on first use.
func (c *Checker) litOf(v dimod.Variable) z.Lit {
	if m, ok := c.lits[v]; ok {
		return m
	}
	m := c.circuit.Lit()
	c.lits[v] = m
	return m
}

func (c *Checker) newSolver() *gini.Gini {
	g := gini.New()
	c.circuit.ToCnf(g)
	return g
}

// VerifyRows checks that every row of samples is a model of the
// one-hot structure: for each row the group-variable literals are
// assumed with the row's polarity and the formula must remain
// satisfiable. Columns of samples are labeled by order; columns for
// variables outside every group are ignored.
func (c *Checker) VerifyRows(samples *mat.Dense, order []dimod.Variable) error {
	type binding struct {
		lit z.Lit
		col int
	}
	bindings := make([]binding, 0, len(c.lits))
	for j, v := range order {
		if m, ok := c.lits[v]; ok {
			bindings = append(bindings, binding{lit: m, col: j})
		}
	}

	g := c.newSolver()
	rows, _ := samples.Dims()
	for i := 0; i < rows; i++ {
		g.Assume(c.structure...)
		for _, b := range bindings {
			if samples.At(i, b.col) == 1 {
				g.Assume(b.lit)
			} else {
				g.Assume(b.lit.Not())
			}
		}
		if g.Solve() != satisfiable {
			return fmt.Errorf("row %d is not a one-hot assignment of the discrete groups", i)
		}
	}
	return nil
}

// CountModels counts the distinct assignments of the group variables
// that satisfy every exactly-one constraint, by repeated solving with
// blocking clauses. The result must equal the product of the group
// sizes; with no groups it is 1 (the empty assignment).
func (c *Checker) CountModels() int {
	g := c.newSolver()
	count := 0
	for {
		g.Assume(c.structure...)
		if g.Solve() != satisfiable {
			return count
		}
		count++
		// Block the model just found.
		for _, m := range c.lits {
			if g.Value(m) {
				g.Add(m.Not())
			} else {
				g.Add(m)
			}
		}
		g.Add(z.LitNull)
	}
}
