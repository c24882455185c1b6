// Package basis defines the value types consumed by the integral engine:
// un-normalized Cartesian Gaussian primitives, contracted orbitals, the
// flattened Basis built from them, and the molecular Structure whose
// nuclei enter the attraction integrals.
//
// A Basis is assembled once by New, which validates every structural
// invariant, and is read-only for the lifetime of an integral evaluation;
// concurrent evaluation over a shared Basis needs no locking.
package basis
