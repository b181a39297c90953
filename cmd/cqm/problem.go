package cqm

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/k8culver/dimod/pkg/dimod"
	"github.com/k8culver/dimod/pkg/dimod/model"
)

// Problem describes a constrained quadratic model in the YAML form
// accepted by the cqm subcommand. For instance:
//
//	variables:
//	  - name: x
//	    vartype: BINARY
//	  - name: n
//	    vartype: INTEGER
//	    lower: 0
//	    upper: 3
//	objective:
//	  linear: {x: 1.0}
//	constraints:
//	  - label: cap
//	    sense: "<="
//	    rhs: 2
//	    linear: {x: 1.0, n: 1.0}
//	discrete:
//	  - label: color
//	    variables: [r, g, b]
//
// Discrete group members are declared like any other BINARY variable
// and referenced by name in the group.
type Problem struct {
	Variables   []VariableDecl   `yaml:"variables"`
	Objective   Expression       `yaml:"objective"`
	Constraints []ConstraintDecl `yaml:"constraints"`
	Discrete    []GroupDecl      `yaml:"discrete"`
}

// VariableDecl declares one variable and its domain.
type VariableDecl struct {
	Name    string `yaml:"name"`
	Vartype string `yaml:"vartype"`
	Lower   int    `yaml:"lower"`
	Upper   int    `yaml:"upper"`
}

// Expression is a quadratic expression in YAML form.
type Expression struct {
	Linear    map[string]float64 `yaml:"linear"`
	Quadratic []Interaction      `yaml:"quadratic"`
	Offset    float64            `yaml:"offset"`
}

// Interaction is one pairwise term of an Expression.
type Interaction struct {
	U    string  `yaml:"u"`
	V    string  `yaml:"v"`
	Bias float64 `yaml:"bias"`
}

// ConstraintDecl declares one labeled constraint.
type ConstraintDecl struct {
	Expression `yaml:",inline"`

	Label string  `yaml:"label"`
	Sense string  `yaml:"sense"`
	Rhs   float64 `yaml:"rhs"`
}

// GroupDecl declares one one-hot discrete group.
type GroupDecl struct {
	Label     string   `yaml:"label"`
	Variables []string `yaml:"variables"`
}

// NewProblem parses the YAML problem description afforded by r.
func NewProblem(r io.Reader) (*Problem, error) {
	var p Problem
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&p); err != nil {
		return nil, fmt.Errorf("error parsing problem: %w", err)
	}
	if len(p.Variables) == 0 {
		return nil, fmt.Errorf("problem declares no variables")
	}
	for i, v := range p.Variables {
		if v.Name == "" {
			return nil, fmt.Errorf("variable %d has no name", i)
		}
	}
	return &p, nil
}

func (e *Expression) build() *model.Expr {
	expr := model.NewExpr()
	for name, bias := range e.Linear {
		expr.AddLinear(dimod.VariableFromString(name), bias)
	}
	for _, q := range e.Quadratic {
		expr.AddQuadratic(dimod.VariableFromString(q.U), dimod.VariableFromString(q.V), q.Bias)
	}
	expr.AddOffset(e.Offset)
	return expr
}

// Model builds the constrained quadratic model the problem describes.
func (p *Problem) Model() (*model.ConstrainedQuadraticModel, error) {
	m := model.NewConstrainedQuadraticModel()

	for _, decl := range p.Variables {
		v := dimod.VariableFromString(decl.Name)
		vartype, err := dimod.VartypeFromString(decl.Vartype)
		if err != nil {
			return nil, fmt.Errorf("variable %q: %w", decl.Name, err)
		}
		if vartype == dimod.Integer {
			err = m.AddInteger(v, decl.Lower, decl.Upper)
		} else {
			err = m.AddVariable(v, vartype)
		}
		if err != nil {
			return nil, err
		}
	}

	if err := m.SetObjective(p.Objective.build()); err != nil {
		return nil, err
	}

	for _, decl := range p.Constraints {
		sense, err := model.SenseFromString(decl.Sense)
		if err != nil {
			return nil, fmt.Errorf("constraint %q: %w", decl.Label, err)
		}
		if err := m.AddConstraint(decl.Label, decl.Expression.build(), sense, decl.Rhs); err != nil {
			return nil, err
		}
	}

	for _, decl := range p.Discrete {
		members := make([]dimod.Variable, len(decl.Variables))
		for i, name := range decl.Variables {
			members[i] = dimod.VariableFromString(name)
		}
		if err := m.AddDiscrete(decl.Label, members...); err != nil {
			return nil, err
		}
	}

	return m, nil
}
