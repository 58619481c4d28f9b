// SPDX-License-Identifier: MIT

package verify

import (
	"github.com/katalvlaran/minuscule/bitmask"
	"github.com/katalvlaran/minuscule/poset"
)

// zeroSeed replaces a zero xorshift state, which would stay zero forever.
const zeroSeed uint32 = 0x9e3779b9

// xorshift32 is Marsaglia's 13/17/5 generator. Not safe for concurrent use;
// each sampling attempt owns its own stream.
type xorshift32 struct {
	state uint32
}

func newXorshift32(seed uint32) *xorshift32 {
	if seed == 0 {
		seed = zeroSeed
	}

	return &xorshift32{state: seed}
}

func (x *xorshift32) next() uint32 {
	x.state ^= x.state << 13
	x.state ^= x.state >> 17
	x.state ^= x.state << 5

	return x.state
}

// float returns a value in [0, 1).
func (x *xorshift32) float() float64 { return float64(x.next()) / 4294967296.0 }

// deriveSeed mixes an ideal, an attempt number and the configuration into a
// 32-bit stream seed with the SplitMix64 finalizer, so nearby inputs give
// unrelated streams.
func deriveSeed(mask bitmask.Mask, attempt int, p *poset.Poset) uint32 {
	x := uint64(attempt+1)*0x9e3779b97f4a7c15 ^
		uint64(p.Rank())<<8 ^ uint64(p.Index())<<16 ^ uint64(p.Type()[0])<<24
	for _, w := range mask.Words64() {
		x = splitmix64(x ^ w)
	}

	return uint32(splitmix64(x) >> 32)
}

func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb

	return x ^ (x >> 31)
}

// randomChooser picks uniformly among the ready elements.
func randomChooser(r *xorshift32) poset.Chooser {
	return func(_ *poset.Poset, ready []int) int {
		return ready[int(r.float()*float64(len(ready)))]
	}
}
