// SPDX-License-Identifier: MIT

package rational

// Poly is an integer-coefficient polynomial in q: p[i] is the coefficient of q^i.
type Poly []int64

// Trim returns p without trailing zero coefficients; the zero polynomial is Poly{0}.
func (p Poly) Trim() Poly {
	end := len(p)
	for end > 1 && p[end-1] == 0 {
		end--
	}
	if end == 0 {
		return Poly{0}
	}
	out := make(Poly, end)
	copy(out, p[:end])

	return out
}

// Degree returns the degree of p; the zero polynomial has degree 0.
func (p Poly) Degree() int { return len(p.Trim()) - 1 }

// Add returns p + o.
func (p Poly) Add(o Poly) Poly {
	size := len(p)
	if len(o) > size {
		size = len(o)
	}
	out := make(Poly, size)
	for i := range out {
		if i < len(p) {
			out[i] += p[i]
		}
		if i < len(o) {
			out[i] += o[i]
		}
	}

	return out.Trim()
}

// Shift returns q^amount · p. Non-positive amounts return a copy of p.
func (p Poly) Shift(amount int) Poly {
	if amount <= 0 {
		out := make(Poly, len(p))
		copy(out, p)

		return out
	}
	out := make(Poly, len(p)+amount)
	copy(out[amount:], p)

	return out
}

// Sum returns p(1), the sum of all coefficients.
func (p Poly) Sum() int64 {
	var s int64
	for _, c := range p {
		s += c
	}

	return s
}

// Equal compares p and o after trimming.
func (p Poly) Equal(o Poly) bool {
	a, b := p.Trim(), o.Trim()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
