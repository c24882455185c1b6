// binomfactor.go --  This file is part of goMINT project.
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

// LMax is the largest per-axis angular momentum a basis primitive may
// carry (0..4, s through g functions).
const LMax = 4

// lMaxTable extends the table bound past LMax so that the kinetic-energy
// recursion may raise an angular momentum component by two.
const lMaxTable = LMax + 2

// binomTerm is one monomial contribution coeff * pa^powA * pb^powB to a
// binomial-factor expansion coefficient.
type binomTerm struct {
	coeff      float64
	powA, powB int
}

// binomTable[l1][l2][k] lists the terms of f_k(l1, l2, pa, pb), the
// coefficient of x^k in the expansion of (x+pa)^l1 (x+pb)^l2. Built once
// below and read-only afterwards.
var binomTable [lMaxTable + 1][lMaxTable + 1][][]binomTerm

func init() {
	for l1 := 0; l1 <= lMaxTable; l1++ {
		for l2 := 0; l2 <= lMaxTable; l2++ {
			rows := make([][]binomTerm, l1+l2+1)
			for i := 0; i <= l1; i++ {
				for j := 0; j <= l2; j++ {
					rows[i+j] = append(rows[i+j], binomTerm{
						coeff: Binom(l1, i) * Binom(l2, j),
						powA:  l1 - i,
						powB:  l2 - j,
					})
				}
			}
			binomTable[l1][l2] = rows
		}
	}
}

// BinomFactor returns the vector f_0..f_maxK of coefficients expanding
// (x+pa)^l1 (x+pb)^l2 in powers of x. Entries with k > l1+l2 are zero.
// Requires 0 <= l1, l2 <= LMax+2.
func BinomFactor(l1, l2 int, pa, pb float64, maxK int) []float64 {
	out := make([]float64, maxK+1)
	rows := binomTable[l1][l2]
	for k := 0; k <= maxK && k < len(rows); k++ {
		sum := 0.0
		for _, t := range rows[k] {
			sum += t.coeff * powi(pa, t.powA) * powi(pb, t.powB)
		}
		out[k] = sum
	}
	return out
}
