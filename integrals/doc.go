// Package integrals evaluates the one- and two-electron integrals over
// contracted Gaussian basis functions required by ab-initio electronic
// structure methods: overlap, kinetic energy, nuclear attraction and
// electron repulsion (ERI).
//
// The primitive-level kernels implement the closed-form expansions of
//
//	Taketa, H., Huzinaga, S., & O-ohata, K. (1966). Gaussian-expansion
//	methods for molecular integrals. J. Phys. Soc. Japan, 21(11), 2313.
//
// The aggregation layer lifts a primitive kernel to an orbital-indexed
// matrix or tensor:
//
//   - Dense: evaluate every unique primitive pair, symmetrize, then
//     reduce primitive indices to orbital indices by grouped summation.
//   - Sparse: enumerate unique orbital pairs and contract each one's
//     primitive cross-product in place.
//   - ERISparseBatched: enumerate only the canonically distinct orbital
//     quadruples under the 8-fold permutation symmetry of the
//     two-electron integral, expanding them into primitive tuples in
//     fixed-size batches so that peak memory stays bounded.
//
// Every function here is a pure, deterministic map over a read-only
// Basis; pair and tuple evaluation fans out across GOMAXPROCS workers on
// disjoint index ranges, so results are bit-reproducible across runs.
package integrals
