// Package sampleset collects the output of an exhaustive solve: the
// assignment matrix, its aligned variable list, the per-sample
// energies and, for constrained models, the per-constraint
// satisfaction data. A SampleSet is immutable after construction.
package sampleset

import (
	"fmt"
	"sort"
	"strings"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/mat"

	"github.com/k8culver/dimod/pkg/dimod"
)

// SampleSet holds every enumerated assignment alongside its energy
// and, for constrained models, its satisfaction and feasibility data.
type SampleSet struct {
	variables []dimod.Variable
	samples   *mat.Dense
	energies  []float64

	labels    []string
	satisfied [][]bool
	feasible  []bool

	byEnergy []int
}

// Empty returns a SampleSet with zero samples. Enumerating a model
// with no variables yields this, not an error.
func Empty() *SampleSet {
	return &SampleSet{}
}

// New returns a SampleSet over the given assignment matrix, whose
// columns are labeled by variables, with one energy per row.
func New(samples *mat.Dense, variables []dimod.Variable, energies []float64) *SampleSet {
	return &SampleSet{
		variables: variables,
		samples:   samples,
		energies:  energies,
		byEnergy:  energyOrder(energies),
	}
}

// NewConstrained returns a SampleSet that additionally carries the
// per-sample, per-constraint satisfaction matrix and the per-sample
// feasibility vector.
func NewConstrained(samples *mat.Dense, variables []dimod.Variable, energies []float64, labels []string, satisfied [][]bool, feasible []bool) *SampleSet {
	s := New(samples, variables, energies)
	s.labels = labels
	s.satisfied = satisfied
	s.feasible = feasible
	return s
}

func energyOrder(energies []float64) []int {
	order := make([]int, len(energies))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return energies[order[i]] < energies[order[j]]
	})
	return order
}

// Len returns the number of samples.
func (s *SampleSet) Len() int {
	return len(s.energies)
}

// Variables returns the ordered variable list aligned with the
// columns of the assignment matrix.
func (s *SampleSet) Variables() []dimod.Variable {
	return s.variables
}

// Samples returns the assignment matrix, one row per sample. It is
// nil for an empty SampleSet.
func (s *SampleSet) Samples() *mat.Dense {
	return s.samples
}

// Energies returns the per-sample energy vector in enumeration order.
func (s *SampleSet) Energies() []float64 {
	return s.energies
}

// Constrained reports whether the set carries feasibility data.
func (s *SampleSet) Constrained() bool {
	return s.feasible != nil
}

// ConstraintLabels returns the constraint labels indexing the columns
// of the satisfaction data, or nil for unconstrained sets.
func (s *SampleSet) ConstraintLabels() []string {
	return s.labels
}

// Satisfied returns the per-constraint satisfaction flags of sample i.
func (s *SampleSet) Satisfied(i int) []bool {
	if s.satisfied == nil {
		return nil
	}
	return s.satisfied[i]
}

// Feasible reports whether sample i satisfies all constraints. It is
// true for every sample of an unconstrained set.
func (s *SampleSet) Feasible(i int) bool {
	if s.feasible == nil {
		return true
	}
	return s.feasible[i]
}

// Sample returns the assignment of sample i keyed by variable.
func (s *SampleSet) Sample(i int) map[dimod.Variable]float64 {
	sample := make(map[dimod.Variable]float64, len(s.variables))
	for j, v := range s.variables {
		sample[v] = s.samples.At(i, j)
	}
	return sample
}

// Record is one sample together with its evaluation results.
type Record struct {
	Sample   map[dimod.Variable]float64
	Energy   float64
	Feasible bool
}

// First returns the lowest-energy sample, or false for an empty set.
// Ties are broken by enumeration order.
func (s *SampleSet) First() (Record, bool) {
	if s.Len() == 0 {
		return Record{}, false
	}
	i := s.byEnergy[0]
	return Record{Sample: s.Sample(i), Energy: s.energies[i], Feasible: s.Feasible(i)}, true
}

// Summary describes the energy distribution over all samples.
type Summary struct {
	Min    float64
	Max    float64
	Mean   float64
	Median float64
}

// EnergySummary returns summary statistics of the energy vector.
func (s *SampleSet) EnergySummary() (Summary, error) {
	if s.Len() == 0 {
		return Summary{}, fmt.Errorf("empty sample set has no energy summary")
	}
	data := stats.Float64Data(s.energies)
	min, err := data.Min()
	if err != nil {
		return Summary{}, err
	}
	max, err := data.Max()
	if err != nil {
		return Summary{}, err
	}
	mean, err := data.Mean()
	if err != nil {
		return Summary{}, err
	}
	median, err := data.Median()
	if err != nil {
		return Summary{}, err
	}
	return Summary{Min: min, Max: max, Mean: mean, Median: median}, nil
}

// String renders the set as a table sorted by ascending energy, one
// column per variable, with a trailing feasibility column for
// constrained sets.
func (s *SampleSet) String() string {
	if s.Len() == 0 {
		return "empty sample set\n"
	}

	var b strings.Builder
	for _, v := range s.variables {
		fmt.Fprintf(&b, "%8s", v)
	}
	fmt.Fprintf(&b, "  %10s", "energy")
	if s.Constrained() {
		fmt.Fprintf(&b, "  %8s", "feasible")
	}
	b.WriteByte('\n')

	for _, i := range s.byEnergy {
		for j := range s.variables {
			fmt.Fprintf(&b, "%8g", s.samples.At(i, j))
		}
		fmt.Fprintf(&b, "  %10g", s.energies[i])
		if s.Constrained() {
			fmt.Fprintf(&b, "  %8t", s.feasible[i])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
