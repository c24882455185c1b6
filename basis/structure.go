// structure.go --  This file is part of goMINT project.
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

import "math"

// Structure holds the ordered atomic numbers and positions of the
// nuclei, in Bohr. Consumed read-only by the nuclear-attraction
// integrals.
type Structure struct {
	AtomicNumbers []int
	Positions     [][3]float64
}

// NumAtoms returns the number of nuclei.
func (s Structure) NumAtoms() int { return len(s.AtomicNumbers) }

// NuclearRepulsion returns the classical point-charge repulsion energy
// Σ_{i<j} Z_i Z_j / |R_i - R_j| in Hartree.
func (s Structure) NuclearRepulsion() float64 {
	res := 0.0
	for i := range s.AtomicNumbers {
		for j := 0; j < i; j++ {
			r := math.Sqrt(Dist2(s.Positions[i], s.Positions[j]))
			res += float64(s.AtomicNumbers[i]) * float64(s.AtomicNumbers[j]) / r
		}
	}
	return res
}
