// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/minuscule/csp"
	"github.com/katalvlaran/minuscule/lie"
	"github.com/katalvlaran/minuscule/poset"
)

// PowerDetail expands one power of the cyclic sieving check.
type PowerDetail struct {
	Power     int                  `json:"power"`
	RankBased csp.RankPrediction   `json:"rankBased"`
	TypeA     *csp.TypeAPrediction `json:"typeA,omitempty"`
}

// CSPResult is the output of `minuscule csp`.
type CSPResult struct {
	Config lie.Triple   `json:"config"`
	Report csp.Report   `json:"report"`
	Detail *PowerDetail `json:"detail,omitempty"`
}

// RenderText prints the polynomial and one row per power.
func (r CSPResult) RenderText(w io.Writer) {
	fmt.Fprintf(w, "%s: rank-generating coefficients %v, order h=%d\n", r.Config, r.Report.Coefficients, r.Report.Order)
	fmt.Fprintln(w, "  power  observed  predicted  closed-form  match")
	for _, pc := range r.Report.Powers {
		closed := "-"
		if pc.ClosedForm >= 0 {
			closed = fmt.Sprint(pc.ClosedForm)
		}
		fmt.Fprintf(w, "  %5d  %8d  %9d  %11s  %s\n", pc.Power, pc.Observed, pc.Predicted, closed, passFail(pc.Match))
	}
	if d := r.Detail; d != nil {
		ev := d.RankBased.Evaluation
		fmt.Fprintf(w, "power %d: q = exp(2πi·%d/%d), value %.9f%+.9fi, stable=%t\n",
			d.Power, ev.UnitPower, ev.RootOrder, ev.Real, ev.Imag, ev.Stable)
		if d.TypeA != nil {
			fmt.Fprintf(w, "type A closed form: gcd=%d r=%d divisible=%t → %d\n",
				d.TypeA.GCD, d.TypeA.RootOrder, d.TypeA.Divisible, d.TypeA.FixedPoints)
		}
	}
	fmt.Fprintf(w, "cyclic sieving: %s\n", passFail(r.Report.AllMatch))
}

// NewCSPCommand creates the csp command.
func NewCSPCommand(rootOpts *RootOptions) *cobra.Command {
	var cf configFlags
	var power int
	cmd := &cobra.Command{
		Use:   "csp",
		Short: "Check cyclic sieving for Fon-Der-Flaass on J(P)",
		Long: `For every power d in 0..h-1 count the ideals fixed by FDF^d and compare
with the rank-generating polynomial evaluated at exp(2πi·d/h) (and, in type
A, with the q-binomial closed form). Exits 1 when a power disagrees.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)
			p, err := cf.build()
			if err != nil {
				return f.Fail(err)
			}
			var pw *int
			if cmd.Flags().Changed("power") {
				pw = &power
			}
			res, err := checkCSP(p, pw)
			if err != nil {
				return f.Fail(err)
			}
			if err := f.Success(res); err != nil {
				return err
			}
			if !res.Report.AllMatch {
				return NewExitError(ExitFailure, "cyclic sieving mismatch for "+res.Config.String())
			}
			return nil
		},
	}
	cf.register(cmd)
	cmd.Flags().IntVarP(&power, "power", "p", 0, "also expand the prediction for this power")

	return cmd
}

func checkCSP(p *poset.Poset, power *int) (CSPResult, error) {
	ideals := p.EnumerateIdeals()
	rep, err := csp.Check(p, ideals)
	if err != nil {
		return CSPResult{}, err
	}
	res := CSPResult{
		Config: lie.Triple{Type: p.Type(), Rank: p.Rank(), Index: p.Index()},
		Report: rep,
	}
	if power == nil {
		return res, nil
	}

	rb, err := csp.FixedPointsFromRankGenerating(p, *power, ideals)
	if err != nil {
		return CSPResult{}, err
	}
	res.Detail = &PowerDetail{Power: rb.Evaluation.Power, RankBased: rb}
	if p.Type() == lie.TypeA {
		ta, err := csp.FixedPointsTypeA(p, *power)
		if err != nil {
			return CSPResult{}, err
		}
		res.Detail.TypeA = &ta
	}

	return res, nil
}
