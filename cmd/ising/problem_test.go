package ising_test

import (
	"bytes"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/k8culver/dimod/cmd/ising"
	"github.com/k8culver/dimod/pkg/dimod"
)

func TestIsing(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Ising Suite")
}

var _ = Describe("Problem", func() {
	It("should parse a valid problem", func() {
		problem := `
vartype: SPIN
linear:
  a: -0.5
  b: 1.0
quadratic:
  - u: a
    v: b
    bias: -1.5
`
		p, err := ising.NewProblem(bytes.NewReader([]byte(problem)))
		Expect(err).ToNot(HaveOccurred())
		Expect(p.Vartype).To(Equal("SPIN"))
		Expect(p.Linear).To(HaveLen(2))
		Expect(p.Quadratic).To(HaveLen(1))
	})

	It("should default to SPIN", func() {
		p, err := ising.NewProblem(bytes.NewReader([]byte("linear: {a: 1.0}\n")))
		Expect(err).ToNot(HaveOccurred())
		Expect(p.Vartype).To(Equal("SPIN"))
	})

	It("should fail on unknown fields", func() {
		_, err := ising.NewProblem(bytes.NewReader([]byte("couplings: {}\n")))
		Expect(err).To(HaveOccurred())
	})

	It("should fail on self couplings", func() {
		problem := `
quadratic:
  - u: a
    v: a
    bias: 1.0
`
		_, err := ising.NewProblem(bytes.NewReader([]byte(problem)))
		Expect(err).To(HaveOccurred())
	})

	It("should fail on incomplete couplings", func() {
		problem := `
quadratic:
  - u: a
    bias: 1.0
`
		_, err := ising.NewProblem(bytes.NewReader([]byte(problem)))
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Problem Model", func() {
	It("should build a spin model with sorted variables", func() {
		problem := `
vartype: SPIN
linear:
  b: 1.0
  a: -0.5
quadratic:
  - u: a
    v: b
    bias: -1.5
`
		p, err := ising.NewProblem(bytes.NewReader([]byte(problem)))
		Expect(err).ToNot(HaveOccurred())

		bqm, err := p.Model()
		Expect(err).ToNot(HaveOccurred())
		Expect(bqm.ModelVartype()).To(Equal(dimod.Spin))
		Expect(bqm.Variables()).To(Equal([]dimod.Variable{"a", "b"}))
	})

	It("should fold linear terms into the diagonal for binary models", func() {
		problem := `
vartype: BINARY
linear:
  a: 1.0
quadratic:
  - u: a
    v: b
    bias: 2.0
`
		p, err := ising.NewProblem(bytes.NewReader([]byte(problem)))
		Expect(err).ToNot(HaveOccurred())

		bqm, err := p.Model()
		Expect(err).ToNot(HaveOccurred())
		Expect(bqm.ModelVartype()).To(Equal(dimod.Binary))
		Expect(bqm.Variables()).To(Equal([]dimod.Variable{"a", "b"}))
	})

	It("should reject non two-valued vartypes", func() {
		p, err := ising.NewProblem(bytes.NewReader([]byte("vartype: INTEGER\nlinear: {a: 1.0}\n")))
		Expect(err).ToNot(HaveOccurred())
		_, err = p.Model()
		Expect(err).To(HaveOccurred())
	})
})
