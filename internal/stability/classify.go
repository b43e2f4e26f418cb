package stability

import (
	"math"
	"math/cmplx"
)

// DefaultTolerance is the half-width of the neutral band around zero real
// part (flows) and around the unit circle (maps, cycles).
const DefaultTolerance = 1e-6

// Classifier derives stability labels from eigenvalues or Floquet
// multipliers. It only ever produces Stable, Unstable, or None: the
// bifurcation tags require solver-side test functions and are passed
// through from the snapshot, never derived here.
type Classifier struct {
	Tolerance float64
}

func NewClassifier(tolerance float64) Classifier {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return Classifier{Tolerance: tolerance}
}

// Flow classifies a continuous-time equilibrium by the signs of the
// eigenvalue real parts. An eigenvalue within tolerance of the imaginary
// axis leaves the point on a stability boundary, which maps to None.
func (c Classifier) Flow(eigenvalues []complex128) Kind {
	if len(eigenvalues) == 0 {
		return None
	}
	boundary := false
	for _, ev := range eigenvalues {
		re := real(ev)
		if math.IsNaN(re) {
			return None
		}
		if re > c.Tolerance {
			return Unstable
		}
		if re >= -c.Tolerance {
			boundary = true
		}
	}
	if boundary {
		return None
	}
	return Stable
}

// Map classifies a discrete-time fixed point or cycle by eigenvalue
// modulus relative to the unit circle.
func (c Classifier) Map(eigenvalues []complex128) Kind {
	return c.unitCircle(eigenvalues, false)
}

// Cycle classifies a limit cycle by its Floquet multipliers. One
// multiplier is always trivially ~1 (tangent to the flow); the one
// closest to 1 is excluded before testing the rest against the unit
// circle.
func (c Classifier) Cycle(multipliers []complex128) Kind {
	return c.unitCircle(multipliers, true)
}

func (c Classifier) unitCircle(values []complex128, dropTrivial bool) Kind {
	if len(values) == 0 {
		return None
	}
	skip := -1
	if dropTrivial {
		best := math.Inf(1)
		for i, v := range values {
			d := cmplx.Abs(v - 1)
			if !math.IsNaN(d) && d < best {
				best = d
				skip = i
			}
		}
		if len(values) == 1 {
			return Stable
		}
	}
	boundary := false
	for i, v := range values {
		if i == skip {
			continue
		}
		mod := cmplx.Abs(v)
		if math.IsNaN(mod) {
			return None
		}
		if mod > 1+c.Tolerance {
			return Unstable
		}
		if mod >= 1-c.Tolerance {
			boundary = true
		}
	}
	if boundary {
		return None
	}
	return Stable
}

// Resolve merges the solver's authoritative tag with a derived label.
// The solver tag wins whenever present, so a bifurcation flagged by a
// test-function sign change is never overwritten by the cruder
// eigenvalue test.
func Resolve(tagged, derived Kind) Kind {
	if tagged != None {
		return tagged
	}
	return derived
}
