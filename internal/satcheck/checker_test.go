package satcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/k8culver/dimod/internal/enumerate"
	"github.com/k8culver/dimod/pkg/dimod"
	"github.com/k8culver/dimod/pkg/dimod/model"
)

var groups = []dimod.DiscreteGroup{
	{Label: "color", Variables: []dimod.Variable{"r", "g", "b"}},
	{Label: "pair", Variables: []dimod.Variable{"u", "v"}},
}

func TestCountModels(t *testing.T) {
	assert.Equal(t, 6, New(groups).CountModels())
}

func TestCountModelsNoGroups(t *testing.T) {
	// the empty assignment is the single model
	assert.Equal(t, 1, New(nil).CountModels())
}

func TestVerifyRowsAcceptsEnumeration(t *testing.T) {
	m := model.NewConstrainedQuadraticModel()
	for _, v := range []dimod.Variable{"r", "g", "b", "u", "v"} {
		require.NoError(t, m.AddVariable(v, dimod.Binary))
	}
	require.NoError(t, m.AddVariable("x", dimod.Binary))
	require.NoError(t, m.AddDiscrete("color", "r", "g", "b"))
	require.NoError(t, m.AddDiscrete("pair", "u", "v"))

	samples, order, err := enumerate.MixedCases(m)
	require.NoError(t, err)

	checker := New(m.DiscreteGroups())
	assert.NoError(t, checker.VerifyRows(samples, order))
	assert.Equal(t, 6, checker.CountModels())
}

func TestVerifyRowsRejectsBrokenOneHot(t *testing.T) {
	order := []dimod.Variable{"r", "g", "b", "u", "v"}

	for name, row := range map[string][]float64{
		"two hot": {1, 1, 0, 1, 0},
		"all off": {0, 0, 0, 0, 1},
	} {
		t.Run(name, func(t *testing.T) {
			samples := mat.NewDense(1, len(order), row)
			err := New(groups).VerifyRows(samples, order)
			assert.Error(t, err)
		})
	}
}
