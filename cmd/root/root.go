package root

import (
	"github.com/spf13/cobra"

	"github.com/k8culver/dimod/cmd/cqm"
	"github.com/k8culver/dimod/cmd/ising"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dimod",
		Short: "dimod is an exhaustive ground-truth solver for quadratic models",
		Long: `An exhaustive solver for binary, spin, discrete, and constrained quadratic
models. It computes the energy of every possible assignment, so it is only
usable on small problems; its purpose is to serve as a ground truth when
validating other solvers.`,
	}

	// add sub-commands
	rootCmd.AddCommand(ising.NewIsingCommand())
	rootCmd.AddCommand(cqm.NewCQMCommand())

	return rootCmd
}
