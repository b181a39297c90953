// Package enumerate builds the complete assignment space of a model:
// all 2^n binary vectors for pairwise models, the full case product
// for discrete models, and the one-hot/free-form cross join for
// constrained models, plus the feasibility evaluation applied to the
// constrained result. Time and memory are exponential in the variable
// count; the full matrix is materialized at once.
package enumerate

import (
	"math/bits"

	"gonum.org/v1/gonum/mat"
)

// GrayCode returns the (2^n x n) matrix of all binary vectors in
// single-bit-flip order: row 0 is all zeros, and row i equals row i-1
// with the bit at the least significant set bit index of i flipped.
// n must be positive; callers short-circuit empty models before
// reaching this function.
func GrayCode(n int) *mat.Dense {
	rows := 1 << n
	samples := mat.NewDense(rows, n, nil)
	for i := 1; i < rows; i++ {
		flip := bits.TrailingZeros(uint(i))
		for j := 0; j < n; j++ {
			samples.Set(i, j, samples.At(i-1, j))
		}
		samples.Set(i, flip, 1-samples.At(i-1, flip))
	}
	return samples
}

// AsSpin remaps a {0,1} matrix to {-1,+1} in place, elementwise.
// Every produced value is an exact small integer.
func AsSpin(samples *mat.Dense) {
	rows, cols := samples.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			samples.Set(i, j, 2*samples.At(i, j)-1)
		}
	}
}
