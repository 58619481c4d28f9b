// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/minuscule/internal/config"
	"github.com/katalvlaran/minuscule/lie"
	"github.com/katalvlaran/minuscule/poset"
	"github.com/katalvlaran/minuscule/verify"
)

// BatchItem is the verification outcome of one configuration.
type BatchItem struct {
	Config     lie.Triple `json:"config"`
	Nodes      int        `json:"nodes"`
	Ideals     int        `json:"ideals"`
	PhiChecked bool       `json:"phiChecked"`
	AllPass    bool       `json:"allChecksPass"`
	DurationMs int64      `json:"durationMs"`
}

// BatchResult is the output of `minuscule batch`.
type BatchResult struct {
	RunID   string      `json:"runId"`
	Workers int         `json:"workers"`
	Items   []BatchItem `json:"items"`
	Passed  int         `json:"passed"`
	Failed  int         `json:"failed"`
}

// RenderText prints one line per configuration and a summary.
func (r BatchResult) RenderText(w io.Writer) {
	for _, it := range r.Items {
		phi := "skipped"
		if it.PhiChecked {
			phi = "checked"
		}
		fmt.Fprintf(w, "%-10s nodes=%-3d ideals=%-4d φ-extensions %-7s %s\n",
			it.Config, it.Nodes, it.Ideals, phi, passFail(it.AllPass))
	}
	fmt.Fprintf(w, "run %s: %d configurations, %d passed, %d failed\n", r.RunID, len(r.Items), r.Passed, r.Failed)
}

// NewBatchCommand creates the batch command.
func NewBatchCommand(rootOpts *RootOptions) *cobra.Command {
	var path string
	var workers int
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Verify many configurations concurrently",
		Long: `Verify the configurations listed in a YAML file (or every supported
configuration when no file or an empty list is given), with at most
workers verifications running at once. Exits 1 when any configuration fails.

Example file:

  workers: 4
  phi_check: auto
  max_samples_per_ideal: 8
  configurations:
    - {type: A, rank: 4, index: 2}
    - {type: E, rank: 7, index: 7}`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)
			b, err := config.Load(path)
			if err != nil {
				return f.Fail(err)
			}
			if cmd.Flags().Changed("workers") && workers > 0 {
				b.Workers = workers
			}
			f.VerboseLog("batch: %d configurations, %d workers, φ check %s",
				len(b.Configurations), b.Workers, b.PhiCheck)

			res, err := runBatch(cmd, rootOpts, b)
			if err != nil {
				return f.Fail(err)
			}
			if err := f.SuccessWithRun(res.RunID, res); err != nil {
				return err
			}
			if res.Failed > 0 {
				return NewExitError(ExitFailure, fmt.Sprintf("%d of %d configurations failed", res.Failed, len(res.Items)))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "config", "c", "", "YAML batch file (default: every supported configuration)")
	cmd.Flags().IntVarP(&workers, "workers", "j", 0, "override the number of concurrent verifications")

	return cmd
}

func runBatch(cmd *cobra.Command, rootOpts *RootOptions, b config.Batch) (BatchResult, error) {
	triples, err := b.Triples()
	if err != nil {
		return BatchResult{}, err
	}
	opts, err := b.VerifyOptions()
	if err != nil {
		return BatchResult{}, err
	}

	res := BatchResult{
		RunID:   uuid.NewString(),
		Workers: b.Workers,
		Items:   make([]BatchItem, len(triples)),
	}
	log := rootOpts.Logger().With("run_id", res.RunID)
	log.Info("batch started", "configurations", len(triples), "workers", b.Workers, "phi_check", b.PhiCheck)
	started := time.Now()

	// Each goroutine owns its poset and writes only its own slot.
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(b.Workers)
	for i, tr := range triples {
		i, tr := i, tr
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t0 := time.Now()
			p, err := poset.Build(tr.Type, tr.Rank, tr.Index)
			if err != nil {
				return fmt.Errorf("%s: %w", tr, err)
			}
			rep, err := verify.VerifyExhaustively(p, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", tr, err)
			}

			res.Items[i] = BatchItem{
				Config:     tr,
				Nodes:      p.Size(),
				Ideals:     rep.IdealsCount,
				PhiChecked: rep.PhiExtensionIndependence.Ran,
				AllPass:    rep.AllPass,
				DurationMs: time.Since(t0).Milliseconds(),
			}
			log.Debug("configuration verified", "config", tr.String(), "ideals", rep.IdealsCount, "pass", rep.AllPass)
			if !rep.AllPass {
				log.Warn("configuration failed verification", "config", tr.String())
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Error("batch aborted", "error", err)
		return BatchResult{}, err
	}

	for _, it := range res.Items {
		if it.AllPass {
			res.Passed++
		} else {
			res.Failed++
		}
	}
	log.Info("batch finished", "passed", res.Passed, "failed", res.Failed, "elapsed", time.Since(started))

	return res, nil
}
