package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/k8culver/dimod/pkg/dimod"
)

func TestNewBinaryQuadraticModelVartype(t *testing.T) {
	for _, vartype := range []dimod.Vartype{dimod.Binary, dimod.Spin} {
		bqm, err := NewBinaryQuadraticModel(vartype)
		require.NoError(t, err)
		assert.Equal(t, vartype, bqm.ModelVartype())
	}

	_, err := NewBinaryQuadraticModel(dimod.Integer)
	assert.Error(t, err)
}

func TestFromIsingEnergies(t *testing.T) {
	bqm := FromIsing(
		map[dimod.Variable]float64{"a": -0.5, "b": 1.0},
		map[VarPair]float64{{U: "a", V: "b"}: -1.5},
		0,
	)

	require.Equal(t, []dimod.Variable{"a", "b"}, bqm.Variables())
	assert.Equal(t, dimod.Spin, bqm.Vartype("a"))

	samples := mat.NewDense(4, 2, []float64{
		-1, -1,
		+1, +1,
		+1, -1,
		-1, +1,
	})
	energies := bqm.Energies(samples, bqm.Variables())
	assert.Equal(t, []float64{-2.0, -1.0, 0.0, 3.0}, energies)
}

func TestFromQUBOEnergies(t *testing.T) {
	bqm := FromQUBO(map[VarPair]float64{
		{U: "a", V: "a"}: 1.0,
		{U: "b", V: "b"}: -0.5,
		{U: "a", V: "b"}: 2.0,
	}, 0)

	require.Equal(t, []dimod.Variable{"a", "b"}, bqm.Variables())
	assert.Equal(t, dimod.Binary, bqm.ModelVartype())

	samples := mat.NewDense(4, 2, []float64{
		0, 0,
		0, 1,
		1, 0,
		1, 1,
	})
	energies := bqm.Energies(samples, bqm.Variables())
	assert.Equal(t, []float64{0, -0.5, 1.0, 2.5}, energies)
}

func TestEnergiesRespectColumnOrder(t *testing.T) {
	bqm := FromIsing(map[dimod.Variable]float64{"a": 1, "b": -1}, nil, 0)

	// columns reversed relative to the model's own variable order
	samples := mat.NewDense(1, 2, []float64{1, -1})
	energies := bqm.Energies(samples, []dimod.Variable{"b", "a"})
	assert.Equal(t, []float64{-2.0}, energies)
}

func TestAddInteractionAddsVariables(t *testing.T) {
	bqm, err := NewBinaryQuadraticModel(dimod.Spin)
	require.NoError(t, err)
	bqm.AddInteraction("p", "q", 0.5)
	bqm.AddOffset(1.25)

	assert.Equal(t, []dimod.Variable{"p", "q"}, bqm.Variables())

	samples := mat.NewDense(1, 2, []float64{-1, 1})
	assert.Equal(t, []float64{0.75}, bqm.Energies(samples, bqm.Variables()))
}
