// errors.go --  This file is part of goMINT project.
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

import "errors"

var (
	// ErrNoOrbitals indicates an empty orbital list.
	ErrNoOrbitals = errors.New("basis: orbital list is empty")
	// ErrNoPrimitives indicates an orbital without primitives.
	ErrNoPrimitives = errors.New("basis: orbital has no primitives")
	// ErrCoefficientCount indicates mismatched primitive and contraction
	// coefficient counts within one orbital.
	ErrCoefficientCount = errors.New("basis: primitive and coefficient counts differ")
	// ErrAngularMomentum indicates an angular momentum component outside
	// 0..LMax.
	ErrAngularMomentum = errors.New("basis: angular momentum outside supported range")
	// ErrExponent indicates a non-positive primitive exponent.
	ErrExponent = errors.New("basis: primitive exponent must be positive")
)
