// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/minuscule/bitmask"
	"github.com/katalvlaran/minuscule/fault"
	"github.com/katalvlaran/minuscule/lie"
	"github.com/katalvlaran/minuscule/poset"
)

// PhiResult is the output of `minuscule phi`.
type PhiResult struct {
	Config    lie.Triple   `json:"config"`
	Mask      bitmask.Mask `json:"mask"`
	Weight    []int        `json:"weight"`
	Formatted string       `json:"formatted"`
	Labels    []int        `json:"labels"`
	Order     []int        `json:"order"`
	Subset    []int        `json:"subset,omitempty"` // type A only
}

// RenderText prints the weight and the extension it was computed along.
func (r PhiResult) RenderText(w io.Writer) {
	fmt.Fprintf(w, "φ(%s) = [%s] = %s\n", r.Mask, joinInts(r.Weight, ", "), r.Formatted)
	fmt.Fprintf(w, "order:  [%s]\n", joinInts(r.Order, " "))
	fmt.Fprintf(w, "labels: [%s]\n", joinInts(r.Labels, " "))
	if r.Subset != nil {
		fmt.Fprintf(w, "subset: {%s}\n", joinInts(r.Subset, ","))
	}
}

// NewPhiCommand creates the phi command.
func NewPhiCommand(rootOpts *RootOptions) *cobra.Command {
	var cf configFlags
	var mask, order string
	cmd := &cobra.Command{
		Use:   "phi",
		Short: "Compute the weight φ(I) of an order ideal",
		Long: `Compute φ(I): start from the highest weight ω_k and apply the simple
reflection of each node's label along a linear extension of I. Without
--order the least-index extension is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)
			p, err := cf.build()
			if err != nil {
				return f.Fail(err)
			}
			res, err := computePhi(p, mask, order)
			if err != nil {
				return f.Fail(err)
			}

			return f.Success(res)
		},
	}
	cf.register(cmd)
	cmd.Flags().StringVarP(&mask, "mask", "m", "", `order ideal as node indices, e.g. "0,1,3"`)
	cmd.Flags().StringVar(&order, "order", "", "linear extension of the ideal (default: least index first)")

	return cmd
}

func computePhi(p *poset.Poset, maskText, orderText string) (PhiResult, error) {
	m, err := parseIdeal(p, maskText)
	if err != nil {
		return PhiResult{}, err
	}
	order, err := parseOrder(orderText)
	if err != nil {
		return PhiResult{}, err
	}
	if order != nil && !p.IsLinearExtension(order, m) {
		return PhiResult{}, fmt.Errorf("cli: --order %v is not a linear extension of %s: %w", order, m, fault.ErrConfiguration)
	}

	info, err := p.Phi(m, order)
	if err != nil {
		return PhiResult{}, err
	}
	res := PhiResult{
		Config:    lie.Triple{Type: p.Type(), Rank: p.Rank(), Index: p.Index()},
		Mask:      m,
		Weight:    info.Weight,
		Formatted: lie.FormatWeight(info.Weight),
		Labels:    info.Labels,
		Order:     info.Order,
	}
	if p.Type() == lie.TypeA {
		if res.Subset, err = p.SubsetOf(info.Labels); err != nil {
			return PhiResult{}, err
		}
	}

	return res, nil
}
