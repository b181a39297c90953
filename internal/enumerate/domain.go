package enumerate

import "github.com/k8culver/dimod/pkg/dimod"

// domainValues returns the iterable value set of a free-form variable
// of a constrained model. The vartype switch is exhaustive over the
// enumerable domains; anything else is a hard error detected before
// any enumeration work begins.
func domainValues(m dimod.ConstrainedModel, v dimod.Variable) ([]float64, error) {
	switch vartype := m.Vartype(v); vartype {
	case dimod.Binary:
		return []float64{0, 1}, nil
	case dimod.Spin:
		return []float64{-1, 1}, nil
	case dimod.Integer:
		lower, upper := m.Bounds(v)
		values := make([]float64, 0, upper-lower+1)
		for x := lower; x <= upper; x++ {
			values = append(values, float64(x))
		}
		return values, nil
	default:
		return nil, dimod.UnsupportedVartypeError{Variable: v, Vartype: vartype}
	}
}
