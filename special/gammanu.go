// gammanu.go --  This file is part of goMINT project.
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
package special

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// gammanuSmallX switches Gammanu to its series branch. Below this
// threshold the incomplete-gamma form is a ratio of two vanishing
// quantities.
const gammanuSmallX = 1.0

// gammanuTerms truncates the series branch; at x = 1 the omitted tail is
// below 1e-40.
const gammanuTerms = 40

// Gammanu evaluates F_nu(x) = ∫₀¹ t^(2 nu) exp(-x t²) dt, the auxiliary
// integral family of the Coulomb kernels. For small x a truncated Taylor
// series is used; elsewhere the value follows from the regularized lower
// incomplete gamma function,
//
//	F_nu(x) = P(nu+1/2, x) Γ(nu+1/2) / (2 x^(nu+1/2)).
//
// Negative orders are clamped to zero.
func Gammanu(nu int, x float64) float64 {
	if nu < 0 {
		nu = 0
	}
	if x < gammanuSmallX {
		return gammanuSeries(nu, x)
	}
	nf := float64(nu)
	return mathext.GammaIncReg(nf+0.5, x) * math.Gamma(nf+0.5) / (2.0 * math.Pow(x, nf+0.5))
}

// gammanuSeries sums F_nu(x) = Σ_k (-x)^k / (k! (2 nu + 2k + 1)).
func gammanuSeries(nu int, x float64) float64 {
	term := 1.0
	sum := 1.0 / float64(2*nu+1)
	for k := 1; k <= gammanuTerms; k++ {
		term *= -x / float64(k)
		sum += term / float64(2*nu+2*k+1)
	}
	return sum
}

// GammanuSeq returns F_0(x)..F_nuMax(x) in one call. The highest order is
// evaluated directly and the remaining orders follow from the downward
// recursion
//
//	F_{nu-1}(x) = (2 x F_nu(x) + exp(-x)) / (2 nu - 1),
//
// which is numerically stable in this direction.
func GammanuSeq(nuMax int, x float64) []float64 {
	out := make([]float64, nuMax+1)
	out[nuMax] = Gammanu(nuMax, x)
	ex := math.Exp(-x)
	for nu := nuMax; nu > 0; nu-- {
		out[nu-1] = (2.0*x*out[nu] + ex) / float64(2*nu-1)
	}
	return out
}
