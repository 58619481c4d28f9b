// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/minuscule/csp"
	"github.com/katalvlaran/minuscule/lie"
)

// HomomesyResult is the output of `minuscule homomesy`.
type HomomesyResult struct {
	Config lie.Triple         `json:"config"`
	Action string             `json:"action"`
	TypeA  *csp.Homomesy      `json:"typeA,omitempty"`
	Report csp.HomomesyReport `json:"report"`
}

// RenderText prints the predictions and which statistics are homomesic.
func (r HomomesyResult) RenderText(w io.Writer) {
	pred := r.Report.Predictions
	fmt.Fprintf(w, "%s under %s: %d orbits\n", r.Config, r.Action, r.Report.Orbits)
	fmt.Fprintf(w, "  size       predicted %-8s %s\n", pred.AvgSize, passFail(r.Report.SizePass))
	anti := passFail(r.Report.AntichainPass)
	if !r.Report.AntichainExpected {
		anti += " (not expected for this action)"
	}
	fmt.Fprintf(w, "  antichain  predicted %-8s %s\n", pred.AvgAntichainSize, anti)
	for i, f := range pred.AvgLabelCounts {
		fmt.Fprintf(w, "  label %-3d  predicted %-8s %s\n", i+1, f, passFail(r.Report.LabelPass[i]))
	}
	if r.TypeA != nil {
		fmt.Fprintf(w, "  type A closed forms: size %s, antichain %s\n", r.TypeA.AvgSize, r.TypeA.AvgAntichainSize)
	}
	fmt.Fprintf(w, "homomesy: %s\n", passFail(r.Report.AllPass))
	if c := r.Report.Counterexample; c != nil {
		fmt.Fprintf(w, "  first mismatch: %s on the orbit of %s (length %d): %s vs %s\n",
			c.Statistic, c.Start, c.Length, c.Observed, c.Predicted)
	}
}

// NewHomomesyCommand creates the homomesy command. It exits 1 when a
// statistic predicted to be homomesic under the chosen action is not.
func NewHomomesyCommand(rootOpts *RootOptions) *cobra.Command {
	var cf configFlags
	var af actionFlags
	cmd := &cobra.Command{
		Use:   "homomesy",
		Short: "Compare orbit averages with the inverse-Cartan predictions",
		Long: `Partition the order ideals into orbits of the action and compare every
orbit average with the inverse-Cartan predictions. Size and per-label counts
must be homomesic under any action, antichain size under Fon-Der-Flaass only.
Exits 1 when one of those fails.`,
		Args: cobra.NoArgs,
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
			rep, err := csp.CheckHomomesy(p, a, nil)
			if err != nil {
				return f.Fail(err)
			}
			res := HomomesyResult{
				Config: lie.Triple{Type: p.Type(), Rank: p.Rank(), Index: p.Index()},
				Action: a.String(),
				Report: rep,
			}
			if p.Type() == lie.TypeA {
				ta, err := csp.TypeAHomomesyPredictions(p)
				if err != nil {
					return f.Fail(err)
				}
				res.TypeA = &ta
			}

			if err := f.Success(res); err != nil {
				return err
			}
			if !rep.AllPass {
				return NewExitError(ExitFailure, "homomesy failed for "+res.Config.String())
			}
			return nil
		},
	}
	cf.register(cmd)
	af.register(cmd)

	return cmd
}
