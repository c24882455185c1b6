package integrals

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goqc/gomint/basis"
)

func TestNuclear1sAnalytic(t *testing.T) {
	// For a normalized 1s pair and a unit-charge nucleus at the shared
	// center, V = -2 sqrt(p/pi) with combined exponent p = 2 alpha.
	for _, alpha := range []float64{0.5, 1.0, 2.5} {
		p := sPrim([3]float64{0, 0, 0}, alpha)
		want := -2.0 * math.Sqrt(2.0*alpha/math.Pi)
		require.InDelta(t, want, Nuclear(p, p, [3]float64{0, 0, 0}), 1e-12, "alpha=%g", alpha)
	}
}

func TestNuclearMatchesSTypeReference(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	for n := 0; n < 50; n++ {
		a := randPrim(rng, 0)
		b := randPrim(rng, 0)
		c := [3]float64{rng.Float64() - 0.5, rng.Float64() - 0.5, rng.Float64() - 0.5}
		require.InDelta(t, nuclearSRef(a, b, c), Nuclear(a, b, c), 1e-11)
	}
}

func TestNuclearKernelSymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	c := [3]float64{0.2, -0.1, 0.4}
	for n := 0; n < 50; n++ {
		a := randPrim(rng, 2)
		b := randPrim(rng, 2)
		require.InDelta(t, Nuclear(a, b, c), Nuclear(b, a, c), 1e-11)
	}
}

func TestNuclearDegenerateGeometryNoNaN(t *testing.T) {
	// Nucleus exactly at the product center: the pc^(idx-u) powers hit
	// 0^0 and 0^n; all of them must mask to clean values.
	px := basis.NewPrimitive([3]float64{0, 0, 0}, 1.0, [3]int{1, 0, 0})
	dz := basis.NewPrimitive([3]float64{0, 0, 0}, 0.7, [3]int{0, 0, 2})
	for _, pair := range [][2]basis.Primitive{{px, px}, {px, dz}, {dz, dz}} {
		got := Nuclear(pair[0], pair[1], [3]float64{0, 0, 0})
		require.False(t, math.IsNaN(got))
		require.False(t, math.IsInf(got, 0))
	}
}

func TestNuclearMatrixH2(t *testing.T) {
	b := h2STO3G(t, 1.4)
	V := NuclearMatrix(b)
	require.Equal(t, V.At(0, 1), V.At(1, 0))
	// Sum of the one- and two-center attraction terms from Szabo &
	// Ostlund for STO-3G H2 at R = 1.4 Bohr: -1.2266 - 0.6538.
	require.InDelta(t, -1.8804, V.At(0, 0), 5e-4)
	require.Less(t, V.At(0, 1), 0.0)
}
