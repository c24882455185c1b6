// basis.go --  This file is part of goMINT project.
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
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/goqc/gomint/special"
)

// Orbital is one contracted basis function: a fixed linear combination of
// primitives with one contraction coefficient per primitive.
type Orbital struct {
	Primitives   []Primitive
	Coefficients []float64
}

// NumPrimitives returns the contraction depth of the orbital.
func (o Orbital) NumPrimitives() int { return len(o.Primitives) }

// Basis is an ordered collection of contracted orbitals over a molecular
// structure, together with flattened primitive and coefficient arrays and
// the orbital index mapping each flattened primitive position back to its
// owning orbital. Built once by New and read-only afterwards.
type Basis struct {
	Structure Structure
	Orbitals  []Orbital

	// Primitives and Coefficients concatenate the per-orbital lists.
	Primitives   []Primitive
	Coefficients []float64
	// OrbitalIndex[i] is the orbital owning flattened primitive i; it is
	// non-decreasing.
	OrbitalIndex []int
	// Offsets[o]..Offsets[o+1] spans orbital o's primitives in the
	// flattened arrays.
	Offsets []int
}

// New validates the orbitals and builds the flattened evaluation arrays.
// Violations of the structural invariants are construction-time errors;
// the integral kernels themselves assume a valid Basis and never check.
func New(s Structure, orbitals []Orbital) (*Basis, error) {
	if len(orbitals) == 0 {
		return nil, ErrNoOrbitals
	}
	b := &Basis{
		Structure: s,
		Orbitals:  orbitals,
		Offsets:   make([]int, 1, len(orbitals)+1),
	}
	for i, o := range orbitals {
		if len(o.Primitives) == 0 {
			return nil, fmt.Errorf("orbital %d: %w", i, ErrNoPrimitives)
		}
		if len(o.Coefficients) != len(o.Primitives) {
			return nil, fmt.Errorf("orbital %d: %w", i, ErrCoefficientCount)
		}
		for _, p := range o.Primitives {
			if p.Alpha <= 0 {
				return nil, fmt.Errorf("orbital %d: %w", i, ErrExponent)
			}
			if slices.Min(p.Lmn[:]) < 0 || slices.Max(p.Lmn[:]) > special.LMax {
				return nil, fmt.Errorf("orbital %d: %w", i, ErrAngularMomentum)
			}
		}
		b.Primitives = append(b.Primitives, o.Primitives...)
		b.Coefficients = append(b.Coefficients, o.Coefficients...)
		for range o.Primitives {
			b.OrbitalIndex = append(b.OrbitalIndex, i)
		}
		b.Offsets = append(b.Offsets, len(b.Primitives))
	}
	return b, nil
}

// NumOrbitals returns the number of contracted orbitals.
func (b *Basis) NumOrbitals() int { return len(b.Orbitals) }

// NumPrimitives returns the total number of flattened primitives.
func (b *Basis) NumPrimitives() int { return len(b.Primitives) }
