package integrals

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goqc/gomint/basis"
)

func sPrim(center [3]float64, alpha float64) basis.Primitive {
	return basis.NewPrimitive(center, alpha, [3]int{0, 0, 0})
}

func randPrim(rng *rand.Rand, maxL int) basis.Primitive {
	center := [3]float64{
		rng.Float64()*2 - 1,
		rng.Float64()*2 - 1,
		rng.Float64()*2 - 1,
	}
	alpha := 0.2 + 2.5*rng.Float64()
	lmn := [3]int{rng.Intn(maxL + 1), rng.Intn(maxL + 1), rng.Intn(maxL + 1)}
	return basis.NewPrimitive(center, alpha, lmn)
}

// h2STO3G builds the STO-3G basis for H2 at bond length r (Bohr), with
// the standard hydrogen 1s exponents and contraction coefficients.
func h2STO3G(t *testing.T, r float64) *basis.Basis {
	t.Helper()
	alphas := []float64{3.425250914, 0.6239137298, 0.1688554040}
	coeffs := []float64{0.1543289673, 0.5353281423, 0.4446345422}

	orbital := func(center [3]float64) basis.Orbital {
		o := basis.Orbital{Coefficients: coeffs}
		for _, a := range alphas {
			o.Primitives = append(o.Primitives, sPrim(center, a))
		}
		return o
	}

	s := basis.Structure{
		AtomicNumbers: []int{1, 1},
		Positions:     [][3]float64{{0, 0, 0}, {r, 0, 0}},
	}
	b, err := basis.New(s, []basis.Orbital{
		orbital([3]float64{0, 0, 0}),
		orbital([3]float64{r, 0, 0}),
	})
	require.NoError(t, err)
	return b
}

// mixedBasis builds a small two-center basis with s and p orbitals and
// uneven contraction depths.
func mixedBasis(t *testing.T) *basis.Basis {
	t.Helper()
	c1 := [3]float64{0, 0, 0}
	c2 := [3]float64{0.9, -0.4, 0.3}

	s1 := basis.Orbital{
		Primitives:   []basis.Primitive{sPrim(c1, 2.0), sPrim(c1, 0.5)},
		Coefficients: []float64{0.7, 0.4},
	}
	px := basis.Orbital{
		Primitives:   []basis.Primitive{basis.NewPrimitive(c2, 1.1, [3]int{1, 0, 0})},
		Coefficients: []float64{1.0},
	}
	pz := basis.Orbital{
		Primitives: []basis.Primitive{
			basis.NewPrimitive(c1, 0.8, [3]int{0, 0, 1}),
			basis.NewPrimitive(c1, 0.3, [3]int{0, 0, 1}),
		},
		Coefficients: []float64{0.6, 0.5},
	}

	st := basis.Structure{
		AtomicNumbers: []int{1, 2},
		Positions:     [][3]float64{c1, c2},
	}
	b, err := basis.New(st, []basis.Orbital{s1, px, pz})
	require.NoError(t, err)
	return b
}

// boys0 is F_0 via the error function, independent of package special.
func boys0(x float64) float64 {
	if x < 1e-12 {
		return 1.0 - x/3.0
	}
	return 0.5 * math.Sqrt(math.Pi/x) * math.Erf(math.Sqrt(x))
}

// Closed forms for s-type primitives, in the shape used by goHF-style
// reference implementations.

func overlapSRef(a, b basis.Primitive) float64 {
	p := a.Alpha + b.Alpha
	mu := a.Alpha * b.Alpha / p
	return a.Norm * b.Norm * math.Exp(-mu*basis.Dist2(a.Center, b.Center)) *
		math.Pow(math.Pi/p, 1.5)
}

func kineticSRef(a, b basis.Primitive) float64 {
	p := a.Alpha + b.Alpha
	s := overlapSRef(a, b)
	var pb2 float64
	for ax := 0; ax < 3; ax++ {
		pc := (a.Alpha*a.Center[ax] + b.Alpha*b.Center[ax]) / p
		d := pc - b.Center[ax]
		pb2 += d * d
	}
	return 3*b.Alpha*s - 2*b.Alpha*b.Alpha*s*(pb2+1.5/p)
}

func nuclearSRef(a, b basis.Primitive, c [3]float64) float64 {
	p := a.Alpha + b.Alpha
	var pc2 float64
	for ax := 0; ax < 3; ax++ {
		pcen := (a.Alpha*a.Center[ax] + b.Alpha*b.Center[ax]) / p
		d := pcen - c[ax]
		pc2 += d * d
	}
	mu := a.Alpha * b.Alpha / p
	pre := a.Norm * b.Norm * math.Exp(-mu*basis.Dist2(a.Center, b.Center))
	return -pre * 2.0 * math.Pi / p * boys0(p*pc2)
}

func eriSRef(a, b, c, d basis.Primitive) float64 {
	p := a.Alpha + b.Alpha
	q := c.Alpha + d.Alpha
	var pq2 float64
	for ax := 0; ax < 3; ax++ {
		pcen := (a.Alpha*a.Center[ax] + b.Alpha*b.Center[ax]) / p
		qcen := (c.Alpha*c.Center[ax] + d.Alpha*d.Center[ax]) / q
		dd := pcen - qcen
		pq2 += dd * dd
	}
	preP := a.Norm * b.Norm * math.Exp(-a.Alpha*b.Alpha/p*basis.Dist2(a.Center, b.Center))
	preQ := c.Norm * d.Norm * math.Exp(-c.Alpha*d.Alpha/q*basis.Dist2(c.Center, d.Center))
	return 2 * math.Pi * math.Pi / (p * q) * math.Sqrt(math.Pi/(p+q)) *
		preP * preQ * boys0(pq2/(1.0/p+1.0/q))
}
