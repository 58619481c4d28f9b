// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/minuscule/action"
	"github.com/katalvlaran/minuscule/bitmask"
	"github.com/katalvlaran/minuscule/lie"
	"github.com/katalvlaran/minuscule/poset"
)

// OrbitResult is the output of `minuscule orbit`.
type OrbitResult struct {
	Config  lie.Triple     `json:"config"`
	Action  string         `json:"action"`
	Orbit   action.Orbit   `json:"orbit"`
	Weights [][]int        `json:"weights"`
	Summary action.Summary `json:"summary"`
}

// RenderText lists the orbit with the weight of each ideal.
func (r OrbitResult) RenderText(w io.Writer) {
	fmt.Fprintf(w, "%s, %s orbit of %s: length %d\n", r.Config, r.Action, r.Orbit.Start, r.Orbit.Length)
	for i, m := range r.Orbit.Masks {
		fmt.Fprintf(w, "  %2d  %-24s %s\n", i, m, lie.FormatWeight(r.Weights[i]))
	}
	fmt.Fprintf(w, "average size %s, antichain %s, per label [", r.Summary.AvgSize, r.Summary.AvgAntichainSize)
	for i, f := range r.Summary.AvgLabelCounts {
		if i > 0 {
			fmt.Fprint(w, " ")
		}
		fmt.Fprint(w, f)
	}
	fmt.Fprintln(w, "]")
}

// NewOrbitCommand creates the orbit command.
func NewOrbitCommand(rootOpts *RootOptions) *cobra.Command {
	var cf configFlags
	var af actionFlags
	var mask string
	cmd := &cobra.Command{
		Use:   "orbit",
		Short: "Follow an ideal around its orbit under a toggle action",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)
			p, err := cf.build()
			if err != nil {
				return f.Fail(err)
			}
			a, err := af.resolve(p.Rank())
			if err != nil {
				return f.Fail(err)
			}
			start, err := parseIdeal(p, mask)
			if err != nil {
				return f.Fail(err)
			}
			res, err := traceOrbit(p, a, start)
			if err != nil {
				return f.Fail(err)
			}
			rootOpts.Logger().Debug("orbit traced", "action", a.Name(), "length", res.Orbit.Length)

			return f.Success(res)
		},
	}
	cf.register(cmd)
	af.register(cmd)
	cmd.Flags().StringVarP(&mask, "mask", "m", "", "starting order ideal (default: empty ideal)")

	return cmd
}

func traceOrbit(p *poset.Poset, a action.Action, start bitmask.Mask) (OrbitResult, error) {
	o, err := action.OrbitFrom(p, start, a)
	if err != nil {
		return OrbitResult{}, err
	}
	s, err := action.Summarize(p, o.Masks)
	if err != nil {
		return OrbitResult{}, err
	}

	weights := make([][]int, 0, len(o.Masks))
	for _, m := range o.Masks {
		info, err := p.Phi(m, nil)
		if err != nil {
			return OrbitResult{}, err
		}
		weights = append(weights, info.Weight)
	}

	return OrbitResult{
		Config:  lie.Triple{Type: p.Type(), Rank: p.Rank(), Index: p.Index()},
		Action:  a.String(),
		Orbit:   o,
		Weights: weights,
		Summary: s,
	}, nil
}
