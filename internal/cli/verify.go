// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/minuscule/lie"
	"github.com/katalvlaran/minuscule/verify"
)

// VerifyResult wraps a verification report for display.
type VerifyResult struct {
	verify.Report
}

func passFail(ok bool) string {
	if ok {
		return "PASS"
	}
	return "FAIL"
}

// RenderText prints one line per check and the first counterexamples.
func (r VerifyResult) RenderText(w io.Writer) {
	fmt.Fprintf(w, "%s: %d ideals (expected %d), %d distinct weights\n",
		r.Config, r.IdealsCount, r.ExpectedCount, r.DistinctWeights)
	fmt.Fprintf(w, "  count = dimension     %s\n", passFail(r.CountMatchesDimension))
	fmt.Fprintf(w, "  φ bijective           %s\n", passFail(r.Bijective))
	fmt.Fprintf(w, "  φ equivariant         %s\n", passFail(r.Equivariant))
	fmt.Fprintf(w, "  weights in orbit      %s\n", passFail(r.InOrbit))
	if r.SubsetModelChecked {
		fmt.Fprintf(w, "  subset model          %s\n", passFail(r.SubsetModel))
	}
	fmt.Fprintf(w, "  cover property        %s\n", passFail(r.LabelStructure.CoverPropertyPass))
	fmt.Fprintf(w, "  label toggle order    %s\n", passFail(r.LabelStructure.ToggleOrderIndependencePass))
	phi := r.PhiExtensionIndependence
	if phi.Ran {
		fmt.Fprintf(w, "  φ extension-free      %s (%d ideals, %d samples, ≤%d per ideal)\n",
			passFail(phi.Pass), phi.IdealsChecked, phi.SamplesChecked, phi.MaxSamplesPerIdeal)
	} else {
		fmt.Fprintf(w, "  φ extension-free      SKIP (%s)\n", phi.SkippedReason)
	}

	if c := r.DuplicateWeight; c != nil {
		fmt.Fprintf(w, "  duplicate weight %v: %s and %s\n", c.Weight, c.First, c.Second)
	}
	if c := r.EquivarianceFailure; c != nil {
		fmt.Fprintf(w, "  equivariance at %s label %d: %v != %v\n", c.Mask, c.Label, c.LHS, c.RHS)
	}
	if c := r.OutOfOrbitWeight; c != nil {
		fmt.Fprintf(w, "  out of orbit: φ(%s) = %v\n", c.Mask, c.Weight)
	}
	if c := r.SubsetMismatch; c != nil {
		fmt.Fprintf(w, "  subset model at %s: %v vs %v\n", c.Mask, c.Weight, c.FromSubset)
	}
	if c := r.LabelStructure.CoverCounterexample; c != nil {
		fmt.Fprintf(w, "  cover %d ⋖ %d shares label %d\n", c.Lower, c.Upper, c.Label)
	}
	if c := r.LabelStructure.ToggleCounterexample; c != nil {
		fmt.Fprintf(w, "  label %d toggles %s to %s forward, %s reverse\n", c.Label, c.Ideal, c.Forward, c.Reverse)
	}
	if c := phi.Counterexample; c != nil {
		fmt.Fprintf(w, "  φ(%s) along %v is %v, along %v is %v\n",
			c.Mask, c.BaseOrder, c.BaseWeight, c.WitnessOrder, c.WitnessWeight)
	}
	fmt.Fprintf(w, "all checks: %s\n", passFail(r.AllPass))
}

// NewVerifyCommand creates the verify command.
func NewVerifyCommand(rootOpts *RootOptions) *cobra.Command {
	var cf configFlags
	var phiCheck string
	var maxSamples, idealCap int
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Exhaustively verify φ and the label structure of a poset",
		Long: `Enumerate every order ideal and check that φ is a bijection onto the
weights of V(ω_k), that it intertwines label toggles with simple reflections,
that no cover joins equal labels, that label toggles commute and (optionally)
that φ does not depend on the linear extension. Exits 1 when a check fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)
			p, err := cf.build()
			if err != nil {
				return f.Fail(err)
			}
			mode, err := verify.ParsePhiCheck(phiCheck)
			if err != nil {
				return f.Fail(err)
			}
			f.VerboseLog("verifying %s: %d nodes, %d expected ideals, φ check %s",
				lie.Triple{Type: p.Type(), Rank: p.Rank(), Index: p.Index()}, p.Size(), p.ExpectedIdeals(), mode)
			opts := []verify.Option{verify.WithPhiCheck(mode)}
			if maxSamples > 0 {
				opts = append(opts, verify.WithMaxSamplesPerIdeal(maxSamples))
			}
			if idealCap > 0 {
				opts = append(opts, verify.WithIdealSampleCap(idealCap))
			}

			rep, err := verify.VerifyExhaustively(p, opts...)
			if err != nil {
				return f.Fail(err)
			}
			rootOpts.Logger().Debug("verification finished",
				"config", rep.Config.String(), "ideals", rep.IdealsCount, "pass", rep.AllPass)
			if err := f.Success(VerifyResult{rep}); err != nil {
				return err
			}
			if !rep.AllPass {
				return NewExitError(ExitFailure, "verification failed for "+rep.Config.String())
			}
			return nil
		},
	}
	cf.register(cmd)
	cmd.Flags().StringVar(&phiCheck, "phi-check", "auto", "φ extension-independence check (auto|on|off)")
	cmd.Flags().IntVar(&maxSamples, "max-samples", 0, "linear extensions sampled per ideal (default 8, minimum 4)")
	cmd.Flags().IntVar(&idealCap, "ideal-cap", 0, "check φ extensions on the first N ideals only (0 = all)")

	return cmd
}
