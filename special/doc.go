// Package special provides the combinatorial and incomplete-gamma kernels
// underlying Gaussian integral evaluation: factorials, binomial
// coefficients, the binomial-factor expansion table, and the auxiliary
// function family F_nu(x) = ∫₀¹ t^(2nu) exp(-x t²) dt needed for Coulomb
// integrals.
//
// All functions are pure and never panic on out-of-domain combinatorial
// arguments; invalid index combinations are clamped to the neutral
// convention so that integral expansions can treat them as zero-weight
// terms.
package special
