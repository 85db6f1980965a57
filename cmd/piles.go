/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnkey/pkg/dataset"
	"github.com/spf13/cobra"
)

func getPilesCmd() *cobra.Command {
	var src source

	pilesCmd := &cobra.Command{
		Use:   "piles",
		Short: "List piles of the key",
		Long: `Piles shows every pile of the key with the number of its species,
characters and character values.

Examples:
  gnkey piles
  gnkey piles --file key.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPiles(cmd.OutOrStdout(), src)
		},
	}

	pilesCmd.Flags().StringVarP(&src.file, "file", "i", "",
		"read the key from a file instead of the database")

	return pilesCmd
}

func runPiles(w io.Writer, src source) error {
	ds, _, err := src.load(context.Background())
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	return writePiles(w, ds)
}

// pileSummary holds counts shown by the piles command.
type pileSummary struct {
	Slug       string
	Name       string
	Species    int
	Characters int
	Values     int
}

func summarizePiles(ds *dataset.Dataset) []pileSummary {
	res := make([]pileSummary, 0, len(ds.Piles))
	for i := range ds.Piles {
		p := &ds.Piles[i]
		res = append(res, pileSummary{
			Slug:       p.Slug,
			Name:       p.Name,
			Species:    len(ds.PileSpeciesIDs(p)),
			Characters: len(ds.PileCharacterIDs(p)),
			Values:     countUnique(p.ValueIDs),
		})
	}
	return res
}

func writePiles(w io.Writer, ds *dataset.Dataset) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("SLUG", "NAME", "SPECIES", "CHARACTERS", "VALUES")
	for _, v := range summarizePiles(ds) {
		t.Row(
			v.Slug, v.Name,
			humanize.Comma(int64(v.Species)),
			humanize.Comma(int64(v.Characters)),
			humanize.Comma(int64(v.Values)),
		)
	}
	_, err := fmt.Fprintln(w, t.String())
	return err
}

func countUnique(ids []int) int {
	seen := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		seen[id] = struct{}{}
	}
	return len(seen)
}
