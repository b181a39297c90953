package model

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/k8culver/dimod/pkg/dimod"
)

// term is one product term of a polynomial: bias times the product of
// its variables. Variables are kept sorted and distinct.
type term struct {
	variables []dimod.Variable
	bias      float64
}

// BinaryPolynomial is a higher-order model over two-valued variables,
// either Binary ({0,1}) or Spin ({-1,+1}):
//
//	E(x) = sum_S bias_S * prod_(i in S) x_i + offset
//
// where each S is a set of variables. Repeated variables within a
// term collapse, so AddTerm(bias, "a", "a") is AddTerm(bias, "a").
type BinaryPolynomial struct {
	vartype   dimod.Vartype
	variables []dimod.Variable
	seen      map[dimod.Variable]bool
	terms     map[string]*term
	offset    float64
}

var _ dimod.Model = &BinaryPolynomial{}

// NewBinaryPolynomial returns an empty polynomial of the given
// vartype, which must be Binary or Spin.
func NewBinaryPolynomial(vartype dimod.Vartype) (*BinaryPolynomial, error) {
	if vartype != dimod.Binary && vartype != dimod.Spin {
		return nil, fmt.Errorf("binary polynomial vartype must be BINARY or SPIN, got %s", vartype)
	}
	return &BinaryPolynomial{
		vartype: vartype,
		seen:    map[dimod.Variable]bool{},
		terms:   map[string]*term{},
	}, nil
}

// AddTerm accumulates bias on the product of the given variables,
// adding any variable not yet present. A term with no variables
// accumulates a constant offset.
func (p *BinaryPolynomial) AddTerm(bias float64, variables ...dimod.Variable) *BinaryPolynomial {
	for _, v := range variables {
		if !p.seen[v] {
			p.seen[v] = true
			p.variables = append(p.variables, v)
		}
	}

	distinct := normalize(variables)
	if len(distinct) == 0 {
		p.offset += bias
		return p
	}

	key := termKey(distinct)
	if t, ok := p.terms[key]; ok {
		t.bias += bias
	} else {
		p.terms[key] = &term{variables: distinct, bias: bias}
	}
	return p
}

// normalize sorts variables and drops duplicates.
func normalize(variables []dimod.Variable) []dimod.Variable {
	distinct := make([]dimod.Variable, 0, len(variables))
	in := map[dimod.Variable]bool{}
	for _, v := range variables {
		if !in[v] {
			in[v] = true
			distinct = append(distinct, v)
		}
	}
	sort.Slice(distinct, func(i, k int) bool { return distinct[i] < distinct[k] })
	return distinct
}

func termKey(variables []dimod.Variable) string {
	names := make([]string, len(variables))
	for i, v := range variables {
		names[i] = string(v)
	}
	return strings.Join(names, "\x00")
}

func (p *BinaryPolynomial) Variables() []dimod.Variable {
	return p.variables
}

// ModelVartype returns the vartype shared by every variable.
func (p *BinaryPolynomial) ModelVartype() dimod.Vartype {
	return p.vartype
}

func (p *BinaryPolynomial) Vartype(_ dimod.Variable) dimod.Vartype {
	return p.vartype
}

func (p *BinaryPolynomial) Energies(samples *mat.Dense, order []dimod.Variable) []float64 {
	column := make(map[dimod.Variable]int, len(order))
	for i, v := range order {
		column[v] = i
	}

	rows, _ := samples.Dims()
	energies := make([]float64, rows)
	for i := 0; i < rows; i++ {
		energy := p.offset
		for _, t := range p.terms {
			product := t.bias
			for _, v := range t.variables {
				product *= samples.At(i, column[v])
			}
			energy += product
		}
		energies[i] = energy
	}
	return energies
}
