package enumerate

import "gonum.org/v1/gonum/mat"

// productRows returns every combination of one value per domain, the
// last domain varying fastest. Zero domains yield a single empty row,
// the identity of the cross join.
func productRows(domains [][]float64) [][]float64 {
	total := 1
	for _, d := range domains {
		total *= len(d)
	}

	rows := make([][]float64, total)
	for i := 0; i < total; i++ {
		row := make([]float64, len(domains))
		idx := i
		for j := len(domains) - 1; j >= 0; j-- {
			d := domains[j]
			row[j] = d[idx%len(d)]
			idx /= len(d)
		}
		rows[i] = row
	}
	return rows
}

// Grid returns the full Cartesian product of the given value domains,
// one row per combination. Row order is deterministic (odometer
// order) and every combination appears exactly once. All domains must
// be non-empty and there must be at least one domain.
func Grid(domains [][]float64) *mat.Dense {
	rows := productRows(domains)
	samples := mat.NewDense(len(rows), len(domains), nil)
	for i, row := range rows {
		samples.SetRow(i, row)
	}
	return samples
}

// CaseGrid returns the Cartesian product of case indices, where
// variable j ranges over {0, ..., counts[j]-1}.
func CaseGrid(counts []int) *mat.Dense {
	domains := make([][]float64, len(counts))
	for i, k := range counts {
		d := make([]float64, k)
		for c := 0; c < k; c++ {
			d[c] = float64(c)
		}
		domains[i] = d
	}
	return Grid(domains)
}
