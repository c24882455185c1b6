// kinetic.go --  This file is part of goMINT project.
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

import "github.com/goqc/gomint/basis"

// Kinetic computes the kinetic-energy integral <a| -∇²/2 |b>. The second
// derivative of a Gaussian reduces to overlaps with b's angular momentum
// shifted by ±2 along each axis:
//
//	T = alpha_b (2 L_b + 3) S(a,b)
//	  - 2 alpha_b² Σ_ax S(a, b+2e_ax)
//	  - 1/2 Σ_ax l_ax (l_ax - 1) S(a, b-2e_ax)
//
// The lowered term vanishes for l_ax < 2, so no invalid primitive is ever
// formed. Shifted primitives keep b's normalization constant.
func Kinetic(a, b basis.Primitive) float64 {
	t0 := b.Alpha * float64(2*b.TotalAngularMomentum()+3) * Overlap(a, b)

	t1, t2 := 0.0, 0.0
	for ax := 0; ax < 3; ax++ {
		up := b
		up.Lmn[ax] += 2
		t1 += Overlap(a, up)

		if l := b.Lmn[ax]; l >= 2 {
			down := b
			down.Lmn[ax] -= 2
			t2 += float64(l*(l-1)) * Overlap(a, down)
		}
	}
	return t0 - 2.0*b.Alpha*b.Alpha*t1 - 0.5*t2
}
