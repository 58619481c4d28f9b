// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/minuscule/lie"
)

// ListEntry is one supported (type, rank) with its minuscule nodes.
type ListEntry struct {
	Type    lie.Type `json:"type"`
	Rank    int      `json:"rank"`
	Indices []int    `json:"indices"`
}

// ListResult is the output of `minuscule list`.
type ListResult struct {
	Configurations []ListEntry `json:"configurations"`
	Total          int         `json:"total"`
}

// RenderText prints one "A_4 k=1,2,3,4" line per rank.
func (r ListResult) RenderText(w io.Writer) {
	for _, e := range r.Configurations {
		fmt.Fprintf(w, "%s_%d k=%s\n", e.Type, e.Rank, joinInts(e.Indices, ","))
	}
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List supported types, ranks and minuscule indices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.formatter(cmd).Success(listConfigurations())
		},
	}
}

func listConfigurations() ListResult {
	var r ListResult
	for _, t := range lie.SupportedTypes() {
		for _, n := range lie.SupportedRanks(t) {
			idx := lie.MinusculeIndices(t, n)
			r.Configurations = append(r.Configurations, ListEntry{Type: t, Rank: n, Indices: idx})
			r.Total += len(idx)
		}
	}

	return r
}
