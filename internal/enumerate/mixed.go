package enumerate

import (
	"gonum.org/v1/gonum/mat"

	"github.com/k8culver/dimod/pkg/dimod"
)

// oneHotRows returns every combination of one-hot choices across the
// groups, one row per combination. counts[g] is the size (and case
// count) of group g; each row concatenates one one-hot vector per
// group. Zero groups yield a single empty row.
func oneHotRows(counts []int) [][]float64 {
	total := 1
	width := 0
	for _, k := range counts {
		total *= k
		width += k
	}

	rows := make([][]float64, total)
	for i := 0; i < total; i++ {
		row := make([]float64, width)
		idx := i
		offset := width
		for g := len(counts) - 1; g >= 0; g-- {
			k := counts[g]
			offset -= k
			row[offset+idx%k] = 1
			idx /= k
		}
		rows[i] = row
	}
	return rows
}

// MixedCases enumerates the full joint assignment space of a
// constrained model. Variables belonging to a registered one-hot
// group only ever take the group's k one-hot realizations; every
// other variable ranges over its full declared domain. The returned
// column order places discrete-group variables first (group
// registration order, then within-group order), followed by the
// free-form variables in model order; it is always consistent with
// the matrix columns.
func MixedCases(m dimod.ConstrainedModel) (*mat.Dense, []dimod.Variable, error) {
	groups := m.DiscreteGroups()

	order := make([]dimod.Variable, 0, len(m.Variables()))
	grouped := make(map[dimod.Variable]bool)
	counts := make([]int, len(groups))
	for g, group := range groups {
		counts[g] = len(group.Variables)
		order = append(order, group.Variables...)
		for _, v := range group.Variables {
			grouped[v] = true
		}
	}

	var free []dimod.Variable
	for _, v := range m.Variables() {
		if !grouped[v] {
			free = append(free, v)
		}
	}
	order = append(order, free...)

	domains := make([][]float64, len(free))
	for i, v := range free {
		values, err := domainValues(m, v)
		if err != nil {
			return nil, nil, err
		}
		domains[i] = values
	}

	// Either side of the cross join degenerates to a single empty
	// row when it has no columns, so the other side's rows survive
	// unchanged.
	groupRows := oneHotRows(counts)
	freeRows := productRows(domains)

	samples := mat.NewDense(len(groupRows)*len(freeRows), len(order), nil)
	i := 0
	for _, g := range groupRows {
		for _, f := range freeRows {
			copy(samples.RawRowView(i), g)
			copy(samples.RawRowView(i)[len(g):], f)
			i++
		}
	}
	return samples, order, nil
}
