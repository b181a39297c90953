package enumerate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k8culver/dimod/pkg/dimod"
	"github.com/k8culver/dimod/pkg/dimod/model"
)

func newMixedModel(t *testing.T) *model.ConstrainedQuadraticModel {
	t.Helper()
	m := model.NewConstrainedQuadraticModel()
	for _, v := range []dimod.Variable{"r", "g", "b", "u", "v"} {
		require.NoError(t, m.AddVariable(v, dimod.Binary))
	}
	require.NoError(t, m.AddVariable("x", dimod.Binary))
	require.NoError(t, m.AddVariable("s", dimod.Spin))
	require.NoError(t, m.AddInteger("n", 1, 3))
	require.NoError(t, m.AddDiscrete("color", "r", "g", "b"))
	require.NoError(t, m.AddDiscrete("pair", "u", "v"))
	return m
}

func TestMixedCasesCompleteness(t *testing.T) {
	m := newMixedModel(t)

	samples, order, err := MixedCases(m)
	require.NoError(t, err)

	// group columns first, free-form columns after, matching the matrix
	assert.Equal(t, []dimod.Variable{"r", "g", "b", "u", "v", "x", "s", "n"}, order)

	rows, cols := samples.Dims()
	// 3 * 2 one-hot combinations times 2 * 2 * 3 free-form combinations
	require.Equal(t, 72, rows)
	require.Equal(t, 8, cols)

	seen := make(map[string]bool, rows)
	for i := 0; i < rows; i++ {
		assertOneHot(t, samples.RawRowView(i)[0:3])
		assertOneHot(t, samples.RawRowView(i)[3:5])

		x, s, n := samples.At(i, 5), samples.At(i, 6), samples.At(i, 7)
		assert.Contains(t, []float64{0, 1}, x)
		assert.Contains(t, []float64{-1, 1}, s)
		assert.Contains(t, []float64{1, 2, 3}, n)

		seen[rowKey(samples.RawRowView(i))] = true
	}
	assert.Len(t, seen, rows, "no duplicate assignments")
}

func assertOneHot(t *testing.T, segment []float64) {
	t.Helper()
	ones := 0
	for _, v := range segment {
		require.True(t, v == 0 || v == 1)
		if v == 1 {
			ones++
		}
	}
	require.Equal(t, 1, ones, "segment %v must be one-hot", segment)
}

func TestMixedCasesNoGroups(t *testing.T) {
	m := model.NewConstrainedQuadraticModel()
	require.NoError(t, m.AddVariable("x", dimod.Binary))
	require.NoError(t, m.AddInteger("n", 0, 2))

	samples, order, err := MixedCases(m)
	require.NoError(t, err)

	assert.Equal(t, []dimod.Variable{"x", "n"}, order)
	rows, _ := samples.Dims()
	assert.Equal(t, 6, rows)
}

func TestMixedCasesNoFreeForm(t *testing.T) {
	m := model.NewConstrainedQuadraticModel()
	for _, v := range []dimod.Variable{"a", "b", "c"} {
		require.NoError(t, m.AddVariable(v, dimod.Binary))
	}
	require.NoError(t, m.AddDiscrete("only", "a", "b", "c"))

	samples, order, err := MixedCases(m)
	require.NoError(t, err)

	// the degenerate free-form side must not drop the group rows
	assert.Equal(t, []dimod.Variable{"a", "b", "c"}, order)
	rows, _ := samples.Dims()
	require.Equal(t, 3, rows)
	for i := 0; i < rows; i++ {
		assertOneHot(t, samples.RawRowView(i))
	}
}

func TestMixedCasesUnsupportedVartype(t *testing.T) {
	m := model.NewConstrainedQuadraticModel()
	require.NoError(t, m.AddVariable("x", dimod.Binary))
	require.NoError(t, m.AddVariable("w", dimod.Real))

	_, _, err := MixedCases(m)
	var unsupported dimod.UnsupportedVartypeError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, dimod.Variable("w"), unsupported.Variable)
	assert.Equal(t, dimod.Real, unsupported.Vartype)
}
