package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/k8culver/dimod/pkg/dimod"
)

func TestNewBinaryPolynomialVartype(t *testing.T) {
	_, err := NewBinaryPolynomial(dimod.Integer)
	assert.Error(t, err)

	poly, err := NewBinaryPolynomial(dimod.Spin)
	require.NoError(t, err)
	assert.Equal(t, dimod.Spin, poly.ModelVartype())
	assert.Equal(t, dimod.Spin, poly.Vartype("anything"))
}

func TestBinaryPolynomialSpinEnergies(t *testing.T) {
	// E = -0.5a + b - 1.5ab - abc
	poly, err := NewBinaryPolynomial(dimod.Spin)
	require.NoError(t, err)
	poly.AddTerm(-0.5, "a").
		AddTerm(1.0, "b").
		AddTerm(-1.5, "a", "b").
		AddTerm(-1.0, "a", "b", "c")

	assert.Equal(t, []dimod.Variable{"a", "b", "c"}, poly.Variables())

	samples := mat.NewDense(4, 3, []float64{
		-1, -1, +1,
		+1, +1, +1,
		-1, -1, -1,
		-1, +1, +1,
	})
	energies := poly.Energies(samples, []dimod.Variable{"a", "b", "c"})
	assert.Equal(t, []float64{-3, -2, -1, 4}, energies)
}

func TestBinaryPolynomialBinaryEnergies(t *testing.T) {
	// E = 2ab + c - 0.5abc
	poly, err := NewBinaryPolynomial(dimod.Binary)
	require.NoError(t, err)
	poly.AddTerm(2.0, "a", "b").
		AddTerm(1.0, "c").
		AddTerm(-0.5, "a", "b", "c")

	samples := mat.NewDense(4, 3, []float64{
		0, 0, 0,
		1, 1, 0,
		1, 1, 1,
		0, 0, 1,
	})
	energies := poly.Energies(samples, []dimod.Variable{"a", "b", "c"})
	assert.Equal(t, []float64{0, 2, 2.5, 1}, energies)
}

func TestBinaryPolynomialTermNormalization(t *testing.T) {
	poly, err := NewBinaryPolynomial(dimod.Binary)
	require.NoError(t, err)

	// repeated variables collapse within a term
	poly.AddTerm(1.0, "a", "a")
	assert.Equal(t, []dimod.Variable{"a"}, poly.Variables())

	// term keys ignore variable order, biases accumulate
	poly.AddTerm(1.0, "a", "b").AddTerm(2.0, "b", "a")

	samples := mat.NewDense(2, 2, []float64{
		1, 0,
		1, 1,
	})
	energies := poly.Energies(samples, []dimod.Variable{"a", "b"})
	assert.Equal(t, []float64{1, 4}, energies)
}

func TestBinaryPolynomialOffset(t *testing.T) {
	poly, err := NewBinaryPolynomial(dimod.Spin)
	require.NoError(t, err)
	poly.AddTerm(2.5).AddTerm(1.0, "a")

	samples := mat.NewDense(2, 1, []float64{-1, +1})
	energies := poly.Energies(samples, []dimod.Variable{"a"})
	assert.Equal(t, []float64{1.5, 3.5}, energies)
}
