package enumerate

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/k8culver/dimod/pkg/dimod"
)

// Feasibility holds the per-sample constraint evaluation of a
// constrained model over an enumerated assignment matrix.
type Feasibility struct {
	// Labels are the constraint labels, in model order; they index
	// the columns of Satisfied.
	Labels []string
	// Satisfied[i][c] reports whether sample i satisfies constraint c
	// within tolerance.
	Satisfied [][]bool
	// Feasible[i] is the conjunction of Satisfied[i] across all
	// constraints.
	Feasible []bool
}

// EvaluateFeasibility computes each constraint's violation magnitude
// for every sample and marks the constraint satisfied iff
//
//	violation <= atol + rtol*|energy|
//
// where energy is the model's objective value at that sample. The
// tolerance deliberately scales with the objective magnitude rather
// than any constraint-specific scale.
func EvaluateFeasibility(m dimod.ConstrainedModel, samples *mat.Dense, order []dimod.Variable, energies []float64, rtol, atol float64) (*Feasibility, error) {
	labels := m.ConstraintLabels()
	rows, _ := samples.Dims()

	satisfied := make([][]bool, rows)
	for i := range satisfied {
		satisfied[i] = make([]bool, len(labels))
	}

	for c, label := range labels {
		violations, err := m.Violations(label, samples, order)
		if err != nil {
			return nil, err
		}
		for i, violation := range violations {
			satisfied[i][c] = violation <= atol+rtol*math.Abs(energies[i])
		}
	}

	feasible := make([]bool, rows)
	for i, row := range satisfied {
		feasible[i] = true
		for _, ok := range row {
			if !ok {
				feasible[i] = false
				break
			}
		}
	}

	return &Feasibility{Labels: labels, Satisfied: satisfied, Feasible: feasible}, nil
}
