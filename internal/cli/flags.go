// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/minuscule/action"
	"github.com/katalvlaran/minuscule/bitmask"
	"github.com/katalvlaran/minuscule/fault"
	"github.com/katalvlaran/minuscule/lie"
	"github.com/katalvlaran/minuscule/poset"
)

// configFlags selects one (type, rank, index) triple.
type configFlags struct {
	typ   string
	rank  int
	index int
}

func (c *configFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&c.typ, "type", "t", "A", "Lie type (A|D|E)")
	cmd.Flags().IntVarP(&c.rank, "rank", "n", 4, "rank n")
	cmd.Flags().IntVarP(&c.index, "index", "k", 2, "minuscule node k")
}

func (c configFlags) triple() (lie.Triple, error) {
	t, err := lie.ParseType(c.typ)
	if err != nil {
		return lie.Triple{}, err
	}
	if err := lie.Validate(t, c.rank, c.index); err != nil {
		return lie.Triple{}, err
	}

	return lie.Triple{Type: t, Rank: c.rank, Index: c.index}, nil
}

func (c configFlags) build() (*poset.Poset, error) {
	tr, err := c.triple()
	if err != nil {
		return nil, err
	}

	return poset.Build(tr.Type, tr.Rank, tr.Index)
}

// actionFlags selects a toggle action.
type actionFlags struct {
	name string
	word string
}

func (a *actionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&a.name, "action", "a", "fdf", "toggle action (fdf|coxeter)")
	cmd.Flags().StringVarP(&a.word, "word", "w", "", `Coxeter word, e.g. "2 1 3" or "s2 s1 s3" (default 1..n)`)
}

func (a actionFlags) resolve(n int) (action.Action, error) {
	switch strings.ToLower(strings.TrimSpace(a.name)) {
	case "fdf", "fon-der-flaass", "rowmotion":
		return action.FonDerFlaass{}, nil
	case "coxeter":
		if strings.TrimSpace(a.word) == "" {
			word := make([]int, n)
			for i := range word {
				word[i] = i + 1
			}
			return action.NewCoxeterWord(word, n)
		}
		return action.ParseCoxeterWord(a.word, n)
	}

	return nil, fault.Config("action", a.name, []string{"fdf", "coxeter"}, "")
}

// parseIdeal reads --mask and checks that it is an order ideal of p.
func parseIdeal(p *poset.Poset, s string) (bitmask.Mask, error) {
	m, err := bitmask.Parse(s)
	if err != nil {
		return bitmask.Mask{}, fmt.Errorf("cli: --mask: %w (%w)", err, fault.ErrConfiguration)
	}
	if !p.IsIdeal(m) {
		return bitmask.Mask{}, fmt.Errorf("cli: --mask %s is not an order ideal of a %d-element poset: %w",
			m, p.Size(), fault.ErrConfiguration)
	}

	return m, nil
}

// parseOrder reads a comma or space separated index list; "" means nil.
func parseOrder(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	if len(fields) == 0 {
		return nil, nil
	}
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		i, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("cli: --order: %q is not an index: %w", f, fault.ErrConfiguration)
		}
		out = append(out, i)
	}

	return out, nil
}

func joinInts(xs []int, sep string) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}

	return strings.Join(parts, sep)
}
