// integrate.go --  This file is part of goMINT project.
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
	"runtime"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/goqc/gomint/basis"
)

// PairFunc is a primitive-level integral kernel lifted by the aggregation
// layer to an orbital-indexed matrix. It must be symmetric in its
// arguments within floating tolerance.
type PairFunc func(a, b basis.Primitive) float64

// Dense lifts op to the orbital overlap-style matrix by evaluating every
// unique unordered primitive pair, weighting by the contraction
// coefficients, scattering into a symmetric primitive×primitive matrix
// (A + Aᵀ - diag(A) over the lower-triangular evaluations), and reducing
// both axes to orbital indices by grouped summation over each
// primitive's owning orbital.
func Dense(b *basis.Basis, op PairFunc) *mat.SymDense {
	np := b.NumPrimitives()
	pairs := lowerPairs(np)
	vals := parallelMap(len(pairs), func(t int) float64 {
		i, j := pairs[t][0], pairs[t][1]
		return b.Coefficients[i] * b.Coefficients[j] * op(b.Primitives[i], b.Primitives[j])
	})

	A := mat.NewDense(np, np, nil)
	for t, pr := range pairs {
		A.Set(pr[0], pr[1], vals[t])
		A.Set(pr[1], pr[0], vals[t])
	}

	no := b.NumOrbitals()
	out := mat.NewSymDense(no, nil)
	for oi := 0; oi < no; oi++ {
		for oj := 0; oj <= oi; oj++ {
			sum := 0.0
			for i := b.Offsets[oi]; i < b.Offsets[oi+1]; i++ {
				sum += floats.Sum(A.RawRowView(i)[b.Offsets[oj]:b.Offsets[oj+1]])
			}
			out.SetSym(oi, oj, sum)
		}
	}
	return out
}

// Sparse lifts op one orbital pair at a time: each unique pair expands to
// its primitive cross-product and is contracted on the spot, so only the
// orbital-sized matrix is ever held. Results match Dense within floating
// tolerance.
func Sparse(b *basis.Basis, op PairFunc) *mat.SymDense {
	no := b.NumOrbitals()
	pairs := lowerPairs(no)
	vals := parallelMap(len(pairs), func(t int) float64 {
		oi, oj := pairs[t][0], pairs[t][1]
		sum := 0.0
		for i := b.Offsets[oi]; i < b.Offsets[oi+1]; i++ {
			for j := b.Offsets[oj]; j < b.Offsets[oj+1]; j++ {
				sum += b.Coefficients[i] * b.Coefficients[j] * op(b.Primitives[i], b.Primitives[j])
			}
		}
		return sum
	})
	out := mat.NewSymDense(no, nil)
	for t, pr := range pairs {
		out.SetSym(pr[0], pr[1], vals[t])
	}
	return out
}

// OverlapMatrix returns the symmetric orbital overlap matrix S.
func OverlapMatrix(b *basis.Basis) *mat.SymDense { return Dense(b, Overlap) }

// KineticMatrix returns the symmetric kinetic-energy matrix T.
func KineticMatrix(b *basis.Basis) *mat.SymDense { return Dense(b, Kinetic) }

// NuclearMatrix returns the symmetric nuclear-attraction matrix V,
// summing the single-nucleus kernel over all nuclei weighted by atomic
// number.
func NuclearMatrix(b *basis.Basis) *mat.SymDense {
	s := b.Structure
	return Dense(b, func(pa, pb basis.Primitive) float64 {
		sum := 0.0
		for at, z := range s.AtomicNumbers {
			sum += float64(z) * Nuclear(pa, pb, s.Positions[at])
		}
		return sum
	})
}

// lowerPairs enumerates (i, j) with j <= i < n in deterministic order.
func lowerPairs(n int) [][2]int {
	out := make([][2]int, 0, n*(n+1)/2)
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			out = append(out, [2]int{i, j})
		}
	}
	return out
}

// parallelMap evaluates fn over 0..n-1 across GOMAXPROCS workers, each
// owning a contiguous disjoint index range. The output order is fixed by
// the index, so accumulation downstream is deterministic regardless of
// worker count.
func parallelMap(n int, fn func(int) float64) []float64 {
	out := make([]float64, n)
	if n == 0 {
		return out
	}
	workers := runtime.GOMAXPROCS(-1)
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			break
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for t := lo; t < hi; t++ {
				out[t] = fn(t)
			}
		}(lo, hi)
	}
	wg.Wait()
	return out
}
