// special.go --  This file is part of goMINT project.
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

// Factorial returns n! as a float64. Arguments below 2 yield 1, so the
// combinatorial edge cases arising in the integral expansions contribute
// a neutral factor instead of raising.
func Factorial(n int) float64 {
	res := 1.0
	for i := 2; i <= n; i++ {
		res *= float64(i)
	}
	return res
}

// Factorial2 returns the double factorial n!!, defined as 1 for n <= 0.
func Factorial2(n int) float64 {
	res := 1.0
	for i := n; i > 1; i -= 2 {
		res *= float64(i)
	}
	return res
}

// Binom returns the binomial coefficient C(n, k), or 0 when k < 0 or
// k > n.
func Binom(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	res := 1.0
	for i := 0; i < k; i++ {
		res = res * float64(n-i) / float64(i+1)
	}
	return res
}

// powi computes x^n for small non-negative integer exponents.
func powi(x float64, n int) float64 {
	res := 1.0
	for i := 0; i < n; i++ {
		res *= x
	}
	return res
}
