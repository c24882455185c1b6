// eri_basis.go --  This file is part of goMINT project.
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
	"gonum.org/v1/gonum/floats"

	"github.com/goqc/gomint/basis"
)

// ERITensor is the four-index electron-repulsion tensor over contracted
// orbitals, stored flat in row-major order.
type ERITensor struct {
	N    int
	Data []float64
}

// NewERITensor returns a zeroed n×n×n×n tensor.
func NewERITensor(n int) *ERITensor {
	return &ERITensor{N: n, Data: make([]float64, n*n*n*n)}
}

// At returns the element (ij|kl).
func (t *ERITensor) At(i, j, k, l int) float64 {
	return t.Data[((i*t.N+j)*t.N+k)*t.N+l]
}

func (t *ERITensor) set(i, j, k, l int, v float64) {
	t.Data[((i*t.N+j)*t.N+k)*t.N+l] = v
}

// DefaultERIBatchSize bounds how many orbital quadruples are expanded
// into primitive tuples at once by ERISparseBatched.
const DefaultERIBatchSize = 1 << 20

// eriQuads enumerates the canonically distinct orbital quadruples under
// the 8-fold permutation symmetry of the two-electron integral, in the
// four-index transformation order of S. Wilson (p. 257).
func eriQuads(n int) [][4]int {
	var out [][4]int
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			for k := 0; k <= i; k++ {
				lmax := k
				if i == k {
					lmax = j
				}
				for l := 0; l <= lmax; l++ {
					out = append(out, [4]int{i, j, k, l})
				}
			}
		}
	}
	return out
}

// ERISparse returns one contracted value per canonically distinct
// orbital quadruple, in eriQuads order.
func ERISparse(b *basis.Basis) []float64 {
	return ERISparseBatched(b, DefaultERIBatchSize)
}

// ERISparseBatched evaluates the unique ERIs in fixed-size chunks of the
// quadruple stream. Batching bounds peak memory only; results are
// identical for any batch size.
func ERISparseBatched(b *basis.Basis, batchSize int) []float64 {
	if batchSize < 1 {
		batchSize = DefaultERIBatchSize
	}
	quads := eriQuads(b.NumOrbitals())
	out := make([]float64, 0, len(quads))
	for lo := 0; lo < len(quads); lo += batchSize {
		hi := lo + batchSize
		if hi > len(quads) {
			hi = len(quads)
		}
		out = append(out, eriBatch(b, quads[lo:hi])...)
	}
	return out
}

// eriBatch expands a run of orbital quadruples into their primitive
// cross-products, evaluates the kernel over all tuples in parallel, and
// contracts each quadruple's segment back to one value by the dot
// product with the coefficient products.
func eriBatch(b *basis.Basis, quads [][4]int) []float64 {
	var tuples [][4]int
	var cprod []float64
	seg := make([]int, len(quads)+1)
	for qn, q := range quads {
		for i := b.Offsets[q[0]]; i < b.Offsets[q[0]+1]; i++ {
			for j := b.Offsets[q[1]]; j < b.Offsets[q[1]+1]; j++ {
				for k := b.Offsets[q[2]]; k < b.Offsets[q[2]+1]; k++ {
					for l := b.Offsets[q[3]]; l < b.Offsets[q[3]+1]; l++ {
						tuples = append(tuples, [4]int{i, j, k, l})
						cprod = append(cprod, b.Coefficients[i]*b.Coefficients[j]*
							b.Coefficients[k]*b.Coefficients[l])
					}
				}
			}
		}
		seg[qn+1] = len(tuples)
	}

	vals := parallelMap(len(tuples), func(t int) float64 {
		tp := tuples[t]
		return ERI(b.Primitives[tp[0]], b.Primitives[tp[1]],
			b.Primitives[tp[2]], b.Primitives[tp[3]])
	})

	out := make([]float64, len(quads))
	for qn := range quads {
		out[qn] = floats.Dot(cprod[seg[qn]:seg[qn+1]], vals[seg[qn]:seg[qn+1]])
	}
	return out
}

// ERIDense returns the full orbital ERI tensor, expanding each unique
// value into its 8 symmetry-equivalent index positions.
func ERIDense(b *basis.Basis) *ERITensor {
	vals := ERISparse(b)
	quads := eriQuads(b.NumOrbitals())
	t := NewERITensor(b.NumOrbitals())
	for qn, q := range quads {
		i, j, k, l := q[0], q[1], q[2], q[3]
		v := vals[qn]
		t.set(i, j, k, l, v)
		t.set(i, j, l, k, v)
		t.set(j, i, k, l, v)
		t.set(j, i, l, k, v)
		t.set(k, l, i, j, v)
		t.set(k, l, j, i, v)
		t.set(l, k, i, j, v)
		t.set(l, k, j, i, v)
	}
	return t
}
