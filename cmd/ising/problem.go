package ising

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/k8culver/dimod/pkg/dimod"
	"github.com/k8culver/dimod/pkg/dimod/model"
)

// Problem describes a binary or spin pairwise model in the YAML form
// accepted by the ising subcommand. For instance:
//
//	vartype: SPIN
//	linear:
//	  a: -0.5
//	  b: 1.0
//	quadratic:
//	  - u: a
//	    v: b
//	    bias: -1.5
//	offset: 0.0
type Problem struct {
	Vartype   string             `yaml:"vartype"`
	Linear    map[string]float64 `yaml:"linear"`
	Quadratic []Interaction      `yaml:"quadratic"`
	Offset    float64            `yaml:"offset"`
}

// Interaction is one pairwise coupling of a Problem.
type Interaction struct {
	U    string  `yaml:"u"`
	V    string  `yaml:"v"`
	Bias float64 `yaml:"bias"`
}

// NewProblem parses the YAML problem description afforded by r.
func NewProblem(r io.Reader) (*Problem, error) {
	var p Problem
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&p); err != nil {
		return nil, fmt.Errorf("error parsing problem: %w", err)
	}
	if p.Vartype == "" {
		p.Vartype = dimod.Spin.String()
	}
	for i, q := range p.Quadratic {
		if q.U == "" || q.V == "" {
			return nil, fmt.Errorf("quadratic term %d is missing a variable", i)
		}
		if q.U == q.V {
			return nil, fmt.Errorf("quadratic term %d couples %q with itself", i, q.U)
		}
	}
	return &p, nil
}

// Model builds the binary quadratic model the problem describes.
func (p *Problem) Model() (*model.BinaryQuadraticModel, error) {
	vartype, err := dimod.VartypeFromString(p.Vartype)
	if err != nil {
		return nil, err
	}

	if _, err := model.NewBinaryQuadraticModel(vartype); err != nil {
		return nil, err
	}

	h := make(map[dimod.Variable]float64, len(p.Linear))
	for name, bias := range p.Linear {
		h[dimod.VariableFromString(name)] = bias
	}
	j := make(map[model.VarPair]float64, len(p.Quadratic))
	for _, q := range p.Quadratic {
		j[model.VarPair{U: dimod.VariableFromString(q.U), V: dimod.VariableFromString(q.V)}] += q.Bias
	}

	if vartype == dimod.Spin {
		return model.FromIsing(h, j, p.Offset), nil
	}

	qubo := make(map[model.VarPair]float64, len(h)+len(j))
	for v, bias := range h {
		qubo[model.VarPair{U: v, V: v}] = bias
	}
	for pair, bias := range j {
		qubo[pair] += bias
	}
	return model.FromQUBO(qubo, p.Offset), nil
}
