// overlap.go --  This file is part of goMINT project.
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

// Overlap computes <a|b> for two Gaussian primitives. The three Cartesian
// axes factorize; each axis contributes the Hermite-expansion sum
//
//	Σ_s f_2s(l1, l2, pa, pb) (2s-1)!! / (2p)^s
//
// over even expansion orders (odd orders integrate to zero), with the
// binomial-factor table supplying the f coefficients.
func Overlap(a, b basis.Primitive) float64 {
	p := basis.Product(a, b)
	res := math.Pow(math.Pi/p.Alpha, 1.5) * p.Prefactor
	for ax := 0; ax < 3; ax++ {
		pa := p.Center[ax] - a.Center[ax]
		pb := p.Center[ax] - b.Center[ax]
		res *= overlapAxis(a.Lmn[ax], b.Lmn[ax], pa, pb, p.Alpha)
	}
	return res
}

// overlapAxis evaluates the one-dimensional overlap sum.
func overlapAxis(l1, l2 int, pa, pb, alpha float64) float64 {
	f := special.BinomFactor(l1, l2, pa, pb, l1+l2)
	sum := 0.0
	for s := 0; 2*s <= l1+l2; s++ {
		sum += f[2*s] * special.Factorial2(2*s-1) / powi(2.0*alpha, s)
	}
	return sum
}

// powi computes x^n for small non-negative integer exponents.
func powi(x float64, n int) float64 {
	res := 1.0
	for i := 0; i < n; i++ {
		res *= x
	}
	return res
}
