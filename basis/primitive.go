// primitive.go --  This file is part of goMINT project.
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
package basis

import (
	"math"

	"github.com/goqc/gomint/special"
)

// Primitive is a single un-normalized Cartesian Gaussian
//
//	x^l y^m z^n exp(-alpha |r - C|²)
//
// with center C, exponent alpha and angular momentum triple (l, m, n).
// Norm carries the normalization constant fixed at construction.
// Primitive is an immutable value type.
type Primitive struct {
	Center [3]float64
	Alpha  float64
	Lmn    [3]int
	Norm   float64
}

// NewPrimitive returns a primitive with its normalization constant
//
//	N = (2 alpha/pi)^(3/4) (4 alpha)^(L/2) / sqrt((2l-1)!! (2m-1)!! (2n-1)!!)
//
// where L = l+m+n, so that the self-overlap of the primitive is unity.
func NewPrimitive(center [3]float64, alpha float64, lmn [3]int) Primitive {
	l, m, n := lmn[0], lmn[1], lmn[2]
	norm := math.Pow(2.0*alpha/math.Pi, 0.75) *
		math.Pow(4.0*alpha, 0.5*float64(l+m+n)) /
		math.Sqrt(special.Factorial2(2*l-1)*special.Factorial2(2*m-1)*special.Factorial2(2*n-1))
	return Primitive{Center: center, Alpha: alpha, Lmn: lmn, Norm: norm}
}

// TotalAngularMomentum returns l+m+n.
func (p Primitive) TotalAngularMomentum() int {
	return p.Lmn[0] + p.Lmn[1] + p.Lmn[2]
}

// GaussianProduct is the derived result of combining two primitives by
// the Gaussian product rule: combined exponent, weighted-average center
// and a scalar prefactor. It is computed on demand and never stored.
type GaussianProduct struct {
	Center    [3]float64
	Alpha     float64
	Prefactor float64
}

// Product applies the Gaussian product rule to a and b. The prefactor
// carries both normalization constants together with the
// exp(-mu |A-B|²) attenuation between the two centers.
func Product(a, b Primitive) GaussianProduct {
	p := a.Alpha + b.Alpha
	var center [3]float64
	for ax := 0; ax < 3; ax++ {
		center[ax] = (a.Alpha*a.Center[ax] + b.Alpha*b.Center[ax]) / p
	}
	mu := a.Alpha * b.Alpha / p
	return GaussianProduct{
		Center:    center,
		Alpha:     p,
		Prefactor: a.Norm * b.Norm * math.Exp(-mu*Dist2(a.Center, b.Center)),
	}
}

// Dist2 returns the squared Euclidean distance between two points.
func Dist2(a, b [3]float64) float64 {
	res := 0.0
	for ax := 0; ax < 3; ax++ {
		d := a[ax] - b[ax]
		res += d * d
	}
	return res
}
