package ising

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/k8culver/dimod/pkg/dimod/solver"
)

func NewIsingCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ising <path>",
		Short: "Exhaustively solves a binary or spin pairwise model given as YAML",
		Long: `Exhaustively solves a binary or spin pairwise model given as a YAML file.
For instance:

vartype: SPIN
linear:
  a: -0.5
  b: 1.0
quadratic:
  - u: a
    v: b
    bias: -1.5

Every one of the 2^n assignments is evaluated and printed in ascending
energy order.`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("file (%s) not found", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(args[0])
		},
	}
}

func solve(path string) error {
	problemFile, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error opening problem file (%s): %w", path, err)
	}
	defer problemFile.Close()

	problem, err := NewProblem(problemFile)
	if err != nil {
		return fmt.Errorf("error parsing problem file (%s): %w", path, err)
	}

	bqm, err := problem.Model()
	if err != nil {
		return err
	}

	sampleSet, err := solver.NewExactSolver().Sample(bqm)
	if err != nil {
		return err
	}

	fmt.Print(sampleSet)
	if summary, err := sampleSet.EnergySummary(); err == nil {
		fmt.Printf("%d samples, min energy %g, mean %g\n", sampleSet.Len(), summary.Min, summary.Mean)
	}
	return nil
}
