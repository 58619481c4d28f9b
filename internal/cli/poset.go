// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/minuscule/lie"
	"github.com/katalvlaran/minuscule/poset"
)

// PosetResult describes a built poset.
type PosetResult struct {
	Config         lie.Triple         `json:"config"`
	Representation lie.Representation `json:"representation"`
	Size           int                `json:"size"`
	Ideals         int                `json:"expectedIdeals"`
	CoxeterNumber  int                `json:"coxeterNumber"`
	RankMin        int                `json:"rankMin"`
	RankMax        int                `json:"rankMax"`
	Cartan         lie.Matrix         `json:"cartan"`
	Nodes          []poset.Node       `json:"nodes"`
}

// RenderText prints a header followed by one line per node.
func (r PosetResult) RenderText(w io.Writer) {
	fmt.Fprintf(w, "%s: %s\n", r.Config, r.Representation.Model)
	fmt.Fprintf(w, "nodes: %d  ideals: %d  coxeter number: %d  ranks: %d..%d\n",
		r.Size, r.Ideals, r.CoxeterNumber, r.RankMin, r.RankMax)
	for _, nd := range r.Nodes {
		fmt.Fprintf(w, "  %-6s index=%-2d label=%d rank=%-2d preds=[%s] succs=[%s]\n",
			nd.Display, nd.Index, nd.Label, nd.Rank, joinInts(nd.Preds, " "), joinInts(nd.Succs, " "))
	}
}

// NewPosetCommand creates the poset command.
func NewPosetCommand(rootOpts *RootOptions) *cobra.Command {
	var cf configFlags
	cmd := &cobra.Command{
		Use:   "poset",
		Short: "Build and describe a minuscule poset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)
			p, err := cf.build()
			if err != nil {
				return f.Fail(err)
			}
			rootOpts.Logger().Debug("poset built", "config", cf.typ, "rank", cf.rank, "index", cf.index, "size", p.Size())

			return f.Success(describePoset(p))
		},
	}
	cf.register(cmd)

	return cmd
}

func describePoset(p *poset.Poset) PosetResult {
	return PosetResult{
		Config:         lie.Triple{Type: p.Type(), Rank: p.Rank(), Index: p.Index()},
		Representation: p.Representation(),
		Size:           p.Size(),
		Ideals:         p.ExpectedIdeals(),
		CoxeterNumber:  p.CoxeterNumber(),
		RankMin:        p.RankMin(),
		RankMax:        p.RankMax(),
		Cartan:         p.Cartan(),
		Nodes:          p.Nodes(),
	}
}
