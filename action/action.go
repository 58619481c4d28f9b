// SPDX-License-Identifier: MIT

package action

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/minuscule/bitmask"
	"github.com/katalvlaran/minuscule/fault"
	"github.com/katalvlaran/minuscule/poset"
)

// FonDerFlaass toggles ranks from the top rank down to the bottom rank.
type FonDerFlaass struct{}

// Name implements Action.
func (FonDerFlaass) Name() string { return "fdf" }

// String implements Action.
func (FonDerFlaass) String() string { return "Fon-Der-Flaass" }

func (FonDerFlaass) apply(p *poset.Poset, mask bitmask.Mask) Result {
	res := Result{Mask: mask}
	var tr poset.ToggleResult
	for r := p.RankMax(); r >= p.RankMin(); r-- {
		tr = p.ToggleByRank(res.Mask, r)
		res.Steps = append(res.Steps, Step{
			Rank:    r,
			Before:  res.Mask,
			After:   tr.Mask,
			Changed: tr.Changed,
		})
		res.Mask = tr.Mask
	}
	res.Changed = union(res.Steps)

	return res
}

// CoxeterWord is c = s_{i1}…s_{in} for a permutation (i1, …, in) of 1..n.
type CoxeterWord struct {
	word []int
}

// NewCoxeterWord validates that word is a permutation of 1..n.
func NewCoxeterWord(word []int, n int) (CoxeterWord, error) {
	if len(word) != n {
		return CoxeterWord{}, wordError(word, "need exactly "+strconv.Itoa(n)+" entries, each used once")
	}
	used := make([]bool, n+1)
	for _, l := range word {
		if l < 1 || l > n {
			return CoxeterWord{}, wordError(word, "index "+strconv.Itoa(l)+" outside 1.."+strconv.Itoa(n))
		}
		if used[l] {
			return CoxeterWord{}, wordError(word, "index "+strconv.Itoa(l)+" repeated")
		}
		used[l] = true
	}

	return CoxeterWord{word: append([]int(nil), word...)}, nil
}

var (
	wordSeparators = regexp.MustCompile(`[\s,>]+`)
	wordDigits     = regexp.MustCompile(`\d+`)
)

// ParseCoxeterWord reads "2 1 3", "2,1,3", "s2 s1 s3" or "2>1>3" and
// validates the result with NewCoxeterWord.
func ParseCoxeterWord(text string, n int) (CoxeterWord, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return CoxeterWord{}, fault.Config[string]("word", `""`, nil, "enter a permutation of 1.."+strconv.Itoa(n))
	}

	var word []int
	for _, piece := range wordSeparators.Split(text, -1) {
		if piece == "" {
			continue
		}
		digits := wordDigits.FindString(piece)
		if digits == "" {
			return CoxeterWord{}, fault.Config[string]("word", text, nil, "piece "+strconv.Quote(piece)+" has no index")
		}
		v, err := strconv.Atoi(digits)
		if err != nil {
			return CoxeterWord{}, fault.Config[string]("word", text, nil, err.Error())
		}
		word = append(word, v)
	}

	return NewCoxeterWord(word, n)
}

// Word returns a copy of the word.
func (c CoxeterWord) Word() []int { return append([]int(nil), c.word...) }

// Name implements Action.
func (CoxeterWord) Name() string { return "coxeter" }

// String renders "s2 s1 s3".
func (c CoxeterWord) String() string {
	parts := make([]string, len(c.word))
	for i, l := range c.word {
		parts[i] = "s" + strconv.Itoa(l)
	}

	return strings.Join(parts, " ")
}

func (c CoxeterWord) apply(p *poset.Poset, mask bitmask.Mask) Result {
	res := Result{Mask: mask}
	var tr poset.ToggleResult
	for pos := len(c.word) - 1; pos >= 0; pos-- {
		tr = p.ToggleByLabel(res.Mask, c.word[pos])
		res.Steps = append(res.Steps, Step{
			Label:        c.word[pos],
			WordPosition: pos,
			Before:       res.Mask,
			After:        tr.Mask,
			Changed:      tr.Changed,
		})
		res.Mask = tr.Mask
	}
	res.Changed = union(res.Steps)

	return res
}

// Apply applies a once to mask.
func Apply(p *poset.Poset, mask bitmask.Mask, a Action) Result { return a.apply(p, mask) }

// Iterate applies a to mask times times; non-positive times returns mask.
func Iterate(p *poset.Poset, mask bitmask.Mask, a Action, times int) bitmask.Mask {
	for i := 0; i < times; i++ {
		mask = a.apply(p, mask).Mask
	}

	return mask
}

func union(steps []Step) []int {
	out := []int{}
	seen := make(map[int]struct{})
	for _, s := range steps {
		for _, i := range s.Changed {
			if _, ok := seen[i]; ok {
				continue
			}
			seen[i] = struct{}{}
			out = append(out, i)
		}
	}

	return out
}

func wordError(word []int, context string) error {
	return fault.Config[string]("word", formatWord(word), nil, "("+context+")")
}

func formatWord(word []int) string {
	parts := make([]string, len(word))
	for i, l := range word {
		parts[i] = strconv.Itoa(l)
	}

	return "[" + strings.Join(parts, " ") + "]"
}
