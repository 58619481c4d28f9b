// SPDX-License-Identifier: MIT

package rational

import "math/big"

// GCD returns the greatest common divisor of |a| and |b|.
// GCD(0, 0) is 1 so callers can always divide by it.
func GCD(a, b int) int {
	x, y := a, b
	if x < 0 {
		x = -x
	}
	if y < 0 {
		y = -y
	}
	for y != 0 {
		x, y = y, x%y
	}
	if x == 0 {
		return 1
	}

	return x
}

// Binomial returns C(n, k), or 0 when k < 0 or k > n.
func Binomial(n, k int) int64 {
	if k < 0 || n < 0 || k > n {
		return 0
	}

	return new(big.Int).Binomial(int64(n), int64(k)).Int64()
}

// Mod returns a mod m in [0, m) for m > 0.
func Mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}

	return r
}

func gcd64(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}

	return a
}

func abs64(a int64) int64 {
	if a < 0 {
		return -a
	}

	return a
}
