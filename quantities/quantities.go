package quantities

import (
	"strings"

	"github.com/katalvlaran/spacetime/algebra"
	"github.com/katalvlaran/spacetime/mvec"
)

// Index-string snippets for building the standard quantities.
const (
	formsP  = "p"
	formsT  = "0"
	formsH  = "123"
	formsQ  = "0123"
	formsB  = "23 31 12"
	formsTT = "023 031 012"
	formsA  = "1 2 3"
	formsE  = "01 02 03"
)

// fromIndexList builds a positive, magnitude-1 multivector from a
// whitespace-separated list of registry index strings. The inputs are
// fixed package constants, so a parse failure is a defect and panics.
func fromIndexList(indices string) mvec.MultiVector {
	m := mvec.New()
	for _, s := range strings.Fields(indices) {
		m.Push(mvec.NewTerm(algebra.MustAlpha(s)))
	}

	return m
}

func alphaList(indices string) []algebra.Alpha {
	fields := strings.Fields(indices)
	out := make([]algebra.Alpha, len(fields))
	for i, s := range fields {
		out[i] = algebra.MustAlpha(s)
	}

	return out
}

// G is the general multivector: one term for each of the 16 registry forms.
func G() mvec.MultiVector {
	return fromIndexList(strings.Join(algebra.AllowedFormStrings(), " "))
}

// Fields is the combined field multivector B + E.
func Fields() mvec.MultiVector {
	return fromIndexList(formsB + " " + formsE)
}

// EvenSubAlgebra spans the even-grade forms: p, B, the quadrivector and E.
func EvenSubAlgebra() mvec.MultiVector {
	return fromIndexList(formsP + " " + formsB + " " + formsQ + " " + formsE)
}

// OddSubAlgebra spans the odd-grade forms: a0, T, a123 and A.
func OddSubAlgebra() mvec.MultiVector {
	return fromIndexList(formsT + " " + formsTT + " " + formsH + " " + formsA)
}

// B is the magnetic-type bivector triple a23, a31, a12.
func B() mvec.MultiVector { return fromIndexList(formsB) }

// T is the time-space trivector triple a023, a031, a012.
func T() mvec.MultiVector { return fromIndexList(formsTT) }

// A is the spatial vector triple a1, a2, a3.
func A() mvec.MultiVector { return fromIndexList(formsA) }

// E is the electric-type bivector triple a01, a02, a03.
func E() mvec.MultiVector { return fromIndexList(formsE) }

// ZetB is the B zet: p with the spatial bivectors.
func ZetB() mvec.MultiVector { return fromIndexList(formsP + " " + formsB) }

// ZetT is the T zet: a0 with the time-space trivectors.
func ZetT() mvec.MultiVector { return fromIndexList(formsT + " " + formsTT) }

// ZetA is the A zet: a123 with the spatial vectors.
func ZetA() mvec.MultiVector { return fromIndexList(formsH + " " + formsA) }

// ZetE is the E zet: the quadrivector with the time-space bivectors.
func ZetE() mvec.MultiVector { return fromIndexList(formsQ + " " + formsE) }

// Dmu is the four-vector differential operator over a0, a1, a2, a3.
func Dmu() mvec.Differential {
	return mvec.NewDifferential(alphaList("0 1 2 3")...)
}

// DG is the differential operator over all 16 registry units.
func DG() mvec.Differential {
	return mvec.NewDifferential(alphaList(strings.Join(algebra.AllowedFormStrings(), " "))...)
}
