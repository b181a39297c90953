package cqm

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/k8culver/dimod/internal/satcheck"
	"github.com/k8culver/dimod/pkg/dimod/model"
	"github.com/k8culver/dimod/pkg/dimod/sampleset"
	"github.com/k8culver/dimod/pkg/dimod/solver"
)

func NewCQMCommand() *cobra.Command {
	var rtol, atol float64
	var verify bool

	cmd := &cobra.Command{
		Use:   "cqm <path>",
		Short: "Exhaustively solves a constrained quadratic model given as YAML",
		Long: `Exhaustively solves a constrained quadratic model given as a YAML file.
Every assignment of the joint variable space is evaluated; discrete groups
contribute only their one-hot encodings. Each sample is printed with its
energy and feasibility, in ascending energy order.

A constraint is satisfied at a sample iff its violation is at most
atol + rtol*|energy| at that sample.`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("file (%s) not found", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(args[0], rtol, atol, verify)
		},
	}

	cmd.Flags().Float64Var(&rtol, "rtol", solver.DefaultRelativeTolerance, "relative feasibility tolerance, scales with sample energy")
	cmd.Flags().Float64Var(&atol, "atol", solver.DefaultAbsoluteTolerance, "absolute feasibility tolerance")
	cmd.Flags().BoolVar(&verify, "verify", false, "cross-check the one-hot enumeration against a SAT encoding")
	return cmd
}

func solve(path string, rtol, atol float64, verify bool) error {
	problemFile, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error opening problem file (%s): %w", path, err)
	}
	defer problemFile.Close()

	problem, err := NewProblem(problemFile)
	if err != nil {
		return fmt.Errorf("error parsing problem file (%s): %w", path, err)
	}

	m, err := problem.Model()
	if err != nil {
		return err
	}

	cqmSolver, err := solver.NewExactCQMSolver(solver.WithTolerances(rtol, atol))
	if err != nil {
		return err
	}

	sampleSet, err := cqmSolver.SampleCQM(m)
	if err != nil {
		return err
	}

	fmt.Print(sampleSet)

	if verify {
		if err := verifyOneHot(m, sampleSet); err != nil {
			return err
		}
		fmt.Println("one-hot structure verified against SAT encoding")
	}

	feasible := 0
	for i := 0; i < sampleSet.Len(); i++ {
		if sampleSet.Feasible(i) {
			feasible++
		}
	}
	fmt.Printf("%d samples, %d feasible\n", sampleSet.Len(), feasible)
	return nil
}

func verifyOneHot(m *model.ConstrainedQuadraticModel, sampleSet *sampleset.SampleSet) error {
	if sampleSet.Len() == 0 {
		return nil
	}

	groups := m.DiscreteGroups()
	checker := satcheck.New(groups)

	if err := checker.VerifyRows(sampleSet.Samples(), sampleSet.Variables()); err != nil {
		return err
	}

	expected := 1
	for _, group := range groups {
		expected *= len(group.Variables)
	}
	if models := checker.CountModels(); models != expected {
		return fmt.Errorf("SAT encoding admits %d one-hot combinations, enumeration expects %d", models, expected)
	}
	if sampleSet.Len()%expected != 0 {
		return fmt.Errorf("%d samples is not a multiple of the %d one-hot combinations", sampleSet.Len(), expected)
	}
	return nil
}
