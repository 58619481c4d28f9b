// SPDX-License-Identifier: MIT

package bitmask

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

const (
	// Words is the number of 64-bit words backing a Mask.
	Words = 4
	// MaxBits is the number of addressable bits in a Mask.
	MaxBits = Words * 64
)

var (
	// ErrCapacity is returned when a structure needs more than MaxBits bits.
	ErrCapacity = errors.New("bitmask: capacity exceeded")

	// ErrParse is returned by Parse for malformed index lists.
	ErrParse = errors.New("bitmask: malformed index list")
)

// Mask is a 256-bit set of small non-negative integers. The zero value is empty.
type Mask struct {
	w [Words]uint64
}

// CheckCapacity returns ErrCapacity (wrapped with the size) when n > MaxBits.
func CheckCapacity(n int) error {
	if n > MaxBits {
		return fmt.Errorf("%w: %d elements, at most %d supported", ErrCapacity, n, MaxBits)
	}

	return nil
}

// FromIndices returns the Mask with exactly the given bits set.
// It panics on an out-of-range index (programmer error).
func FromIndices(indices ...int) Mask {
	var m Mask
	for _, i := range indices {
		m = m.Set(i)
	}

	return m
}

// Parse reads a comma or space separated index list such as "0,2,5".
// The empty string and "{}" parse to the empty Mask.
func Parse(s string) (Mask, error) {
	var m Mask
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "{")
	s = strings.TrimSuffix(s, "}")
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
	for _, f := range fields {
		i, err := strconv.Atoi(f)
		if err != nil {
			return Mask{}, fmt.Errorf("%w: %q", ErrParse, f)
		}
		if i < 0 || i >= MaxBits {
			return Mask{}, fmt.Errorf("%w: index %d outside [0,%d)", ErrParse, i, MaxBits)
		}
		m = m.Set(i)
	}

	return m, nil
}

// Has reports whether bit i is set. Out-of-range indices report false.
func (m Mask) Has(i int) bool {
	if i < 0 || i >= MaxBits {
		return false
	}

	return m.w[i>>6]&(1<<(uint(i)&63)) != 0
}

// Set returns m with bit i set. It panics when i is out of range.
func (m Mask) Set(i int) Mask {
	mustIndex(i)
	m.w[i>>6] |= 1 << (uint(i) & 63)

	return m
}

// Clear returns m with bit i cleared. It panics when i is out of range.
func (m Mask) Clear(i int) Mask {
	mustIndex(i)
	m.w[i>>6] &^= 1 << (uint(i) & 63)

	return m
}

// Count returns the number of set bits.
func (m Mask) Count() int {
	c := 0
	for _, w := range m.w {
		c += bits.OnesCount64(w)
	}

	return c
}

// IsZero reports whether no bit is set.
func (m Mask) IsZero() bool { return m == Mask{} }

// Or returns the union of m and o.
func (m Mask) Or(o Mask) Mask {
	for k := range m.w {
		m.w[k] |= o.w[k]
	}

	return m
}

// And returns the intersection of m and o.
func (m Mask) And(o Mask) Mask {
	for k := range m.w {
		m.w[k] &= o.w[k]
	}

	return m
}

// AndNot returns the bits of m that are not in o.
func (m Mask) AndNot(o Mask) Mask {
	for k := range m.w {
		m.w[k] &^= o.w[k]
	}

	return m
}

// Contains reports whether o is a subset of m.
func (m Mask) Contains(o Mask) bool { return o.AndNot(m).IsZero() }

// Indices returns the set bits in increasing order.
func (m Mask) Indices() []int {
	out := make([]int, 0, m.Count())
	for k, w := range m.w {
		for w != 0 {
			tz := bits.TrailingZeros64(w)
			out = append(out, k*64+tz)
			w &= w - 1
		}
	}

	return out
}

// Words64 returns a copy of the backing words, least significant first.
func (m Mask) Words64() [Words]uint64 { return m.w }

// String renders the mask as "{0,2,5}".
func (m Mask) String() string {
	idx := m.Indices()
	parts := make([]string, len(idx))
	for i, v := range idx {
		parts[i] = strconv.Itoa(v)
	}

	return "{" + strings.Join(parts, ",") + "}"
}

// MarshalJSON encodes the mask as a sorted array of indices.
func (m Mask) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Indices())
}

// UnmarshalJSON decodes a sorted or unsorted array of indices.
func (m *Mask) UnmarshalJSON(data []byte) error {
	var idx []int
	if err := json.Unmarshal(data, &idx); err != nil {
		return fmt.Errorf("%w: %v", ErrParse, err)
	}
	var out Mask
	for _, i := range idx {
		if i < 0 || i >= MaxBits {
			return fmt.Errorf("%w: index %d outside [0,%d)", ErrParse, i, MaxBits)
		}
		out = out.Set(i)
	}
	*m = out

	return nil
}

func mustIndex(i int) {
	if i < 0 || i >= MaxBits {
		panic(fmt.Sprintf("bitmask: index %d outside [0,%d)", i, MaxBits))
	}
}
