// Package solver exposes the exhaustive ground-truth solvers. Each
// solver enumerates every possible assignment of its model regime,
// evaluates the model's energy over the whole batch, and hands the
// result off as a SampleSet. Cost is exponential in the variable
// count; these solvers exist to validate other solvers on small
// problems, not to be fast.
package solver

import (
	"fmt"

	"github.com/k8culver/dimod/internal/enumerate"
	"github.com/k8culver/dimod/pkg/dimod"
	"github.com/k8culver/dimod/pkg/dimod/model"
	"github.com/k8culver/dimod/pkg/dimod/sampleset"
)

// ExactSolver enumerates every assignment of a binary or spin
// pairwise model in Gray-code order.
type ExactSolver struct{}

// NewExactSolver returns an ExactSolver.
func NewExactSolver() *ExactSolver {
	return &ExactSolver{}
}

// Sample computes the energy of all 2^n assignments of m. Consecutive
// samples differ in exactly one variable. An empty model yields an
// empty SampleSet.
func (s *ExactSolver) Sample(m dimod.Model) (*sampleset.SampleSet, error) {
	variables := m.Variables()
	if len(variables) == 0 {
		return sampleset.Empty(), nil
	}

	vartype := m.Vartype(variables[0])
	if vartype != dimod.Binary && vartype != dimod.Spin {
		return nil, dimod.UnsupportedVartypeError{Variable: variables[0], Vartype: vartype}
	}

	samples := enumerate.GrayCode(len(variables))
	if vartype == dimod.Spin {
		enumerate.AsSpin(samples)
	}

	energies := m.Energies(samples, variables)
	return sampleset.New(samples, variables, energies), nil
}

// ExactPolySolver enumerates every assignment of a binary or spin
// higher-order model. Terms of any degree are allowed; enumeration
// and ordering are identical to ExactSolver's.
type ExactPolySolver struct{}

// NewExactPolySolver returns an ExactPolySolver.
func NewExactPolySolver() *ExactPolySolver {
	return &ExactPolySolver{}
}

// SamplePoly computes the energy of all 2^n assignments of p. A
// polynomial evaluates batches just like a pairwise model, so this
// delegates to the pairwise enumeration.
func (s *ExactPolySolver) SamplePoly(p *model.BinaryPolynomial) (*sampleset.SampleSet, error) {
	return NewExactSolver().Sample(p)
}

// ExactDQMSolver enumerates every case combination of a discrete
// model. If variable i has k_i cases this produces k_1 * ... * k_n
// samples.
type ExactDQMSolver struct{}

// NewExactDQMSolver returns an ExactDQMSolver.
func NewExactDQMSolver() *ExactDQMSolver {
	return &ExactDQMSolver{}
}

// SampleDQM computes the energy of every case combination of m. An
// empty model yields an empty SampleSet.
func (s *ExactDQMSolver) SampleDQM(m dimod.CaseModel) (*sampleset.SampleSet, error) {
	variables := m.Variables()
	if len(variables) == 0 {
		return sampleset.Empty(), nil
	}

	counts := make([]int, len(variables))
	for i, v := range variables {
		k := m.NumCases(v)
		if k < 1 {
			return nil, fmt.Errorf("variable %q has no cases", v)
		}
		counts[i] = k
	}

	samples := enumerate.CaseGrid(counts)
	energies := m.Energies(samples, variables)
	return sampleset.New(samples, variables, energies), nil
}

// Default feasibility tolerances.
const (
	DefaultRelativeTolerance = 1e-6
	DefaultAbsoluteTolerance = 1e-8
)

// ExactCQMSolver enumerates every assignment of a constrained model
// and evaluates constraint feasibility at each one. Its tolerances
// are fixed at construction.
type ExactCQMSolver struct {
	rtol float64
	atol float64
}

// Option configures an ExactCQMSolver.
type Option func(s *ExactCQMSolver) error

// WithTolerances sets the relative and absolute feasibility
// tolerances. A constraint is satisfied at a sample iff its violation
// is at most atol + rtol*|energy| at that sample.
func WithTolerances(rtol, atol float64) Option {
	return func(s *ExactCQMSolver) error {
		if rtol < 0 || atol < 0 {
			return fmt.Errorf("tolerances must be nonnegative, got rtol=%g atol=%g", rtol, atol)
		}
		s.rtol = rtol
		s.atol = atol
		return nil
	}
}

// NewExactCQMSolver returns an ExactCQMSolver with the given options
// applied over the default tolerances.
func NewExactCQMSolver(options ...Option) (*ExactCQMSolver, error) {
	s := ExactCQMSolver{
		rtol: DefaultRelativeTolerance,
		atol: DefaultAbsoluteTolerance,
	}
	for _, option := range options {
		if err := option(&s); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

// SampleCQM computes the energy and feasibility of every assignment
// of m. Discrete-group variables only take one-hot realizations; all
// other variables range over their full declared domains. An empty
// model yields an empty SampleSet. A free-form variable with a
// non-enumerable vartype aborts the call before any enumeration.
func (s *ExactCQMSolver) SampleCQM(m dimod.ConstrainedModel) (*sampleset.SampleSet, error) {
	if len(m.Variables()) == 0 {
		return sampleset.Empty(), nil
	}

	samples, order, err := enumerate.MixedCases(m)
	if err != nil {
		return nil, err
	}

	energies := m.Energies(samples, order)
	feasibility, err := enumerate.EvaluateFeasibility(m, samples, order, energies, s.rtol, s.atol)
	if err != nil {
		return nil, err
	}

	return sampleset.NewConstrained(samples, order, energies, feasibility.Labels, feasibility.Satisfied, feasibility.Feasible), nil
}
