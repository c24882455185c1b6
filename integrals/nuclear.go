// nuclear.go --  This file is part of goMINT project.
//
//	goMINT is distributed in the hope that it will be useful,
//	but WITHOUT ANY WARRANTY; without even the implied warranty
//	of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
//	See the GNU General Public License for more details.
//
//	You should have received a copy of the GNU General Public License
//	along with this program.  If not, see http://www.gnu.org/licenses/
//
// ------------------------------------------------
package integrals

import (
	"math"

	"github.com/goqc/gomint/basis"
	"github.com/goqc/gomint/special"
)

// Nuclear computes the attraction integral <a| -1/|r-c| |b> for a
// unit-charge nucleus at c. Each axis contributes a Hermite coefficient
// sequence G; the three sequences combine as an outer product weighted by
// F_nu evaluated at the combined exponent times the squared nucleus
// offset, with nu the total power index.
func Nuclear(a, b basis.Primitive, c [3]float64) float64 {
	p := basis.Product(a, b)
	eps := 1.0 / (4.0 * p.Alpha)

	var g [3][]float64
	pc2 := 0.0
	for ax := 0; ax < 3; ax++ {
		pa := p.Center[ax] - a.Center[ax]
		pb := p.Center[ax] - b.Center[ax]
		pc := p.Center[ax] - c[ax]
		pc2 += pc * pc
		g[ax] = nuclearAxis(a.Lmn[ax], b.Lmn[ax], pa, pb, pc, eps)
	}

	nuMax := len(g[0]) + len(g[1]) + len(g[2]) - 3
	fn := special.GammanuSeq(nuMax, p.Alpha*pc2)

	sum := 0.0
	for i, gi := range g[0] {
		for j, gj := range g[1] {
			for k, gk := range g[2] {
				sum += gi * gj * gk * fn[i+j+k]
			}
		}
	}
	return -2.0 * math.Pi / p.Alpha * p.Prefactor * sum
}

// nuclearAxis builds the one-dimensional Hermite coefficient sequence
// G_I, I = i - 2r - u, via the combinatorial (i, r, u) sum over the
// binomial-factor expansion of the two shifted monomials.
func nuclearAxis(l1, l2 int, pa, pb, cp, eps float64) []float64 {
	f := special.BinomFactor(l1, l2, pa, pb, l1+l2)
	g := make([]float64, l1+l2+1)
	for i := 0; i <= l1+l2; i++ {
		for r := 0; 2*r <= i; r++ {
			for u := 0; 2*u <= i-2*r; u++ {
				idx := i - 2*r - u
				sign := 1.0
				if (i+u)%2 == 1 {
					sign = -1.0
				}
				g[idx] += sign * f[i] * special.Factorial(i) *
					powi(cp, idx-u) * powi(eps, r+u) /
					(special.Factorial(r) * special.Factorial(u) * special.Factorial(idx-u))
			}
		}
	}
	return g
}
