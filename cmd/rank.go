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

	"github.com/gnames/gn"
	"github.com/gnames/gnkey/internal/ioreport"
	"github.com/gnames/gnkey/pkg/errcode"
	"github.com/gnames/gnkey/pkg/igdt"
	"github.com/gnames/gnkey/pkg/ranking"
	"github.com/spf13/cobra"
)

// rankOpts collects flags of the rank command.
type rankOpts struct {
	src     source
	species []int
	weights []string
	all     bool
	format  string
	width   int
}

func getRankCmd() *cobra.Command {
	var opts rankOpts

	rankCmd := &cobra.Command{
		Use:   "rank [PILE_SLUG]",
		Short: "Rank characters of a pile",
		Long: `Rank scores characters of a pile by how well they split candidate
species. The best characters come first.

Without --species all species of the pile are candidates. Weights come
from the database (see 'gnkey weights'), or from config.yaml when the key
is read with --file. Use --weight to override them for one run:

  coverage_weight               fraction of species with data
  ease_of_observability_weight  how easy a character is to observe
  length_weight                 multiplier for LENGTH characters

Examples:
  gnkey rank trees
  gnkey rank trees --species 1,5,12 --format pretty
  gnkey rank trees -w coverage_weight=2 -w length_weight=1
  gnkey rank --all --file key.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var slug string
			if len(args) > 0 {
				slug = args[0]
			}
			return runRank(cmd.Context(), cmd.OutOrStdout(), slug, opts)
		},
	}

	f := rankCmd.Flags()
	f.IntSliceVarP(&opts.species, "species", "s", nil,
		"candidate species ids, comma separated")
	f.StringArrayVarP(&opts.weights, "weight", "w", nil,
		"weight override as name=value, can be repeated")
	f.StringVarP(&opts.src.file, "file", "i", "",
		"read the key from a file instead of the database")
	f.BoolVarP(&opts.all, "all", "a", false,
		"rank all species of every pile")
	f.StringVarP(&opts.format, "format", "f", "text",
		"output format: compact, pretty or text")
	f.IntVar(&opts.width, "width", 0,
		"width of LENGTH graphs, 0 takes it from config")
	f.BoolVarP(&opts.src.cache, "cache", "c", false,
		"keep the database key in a local snapshot")
	f.BoolVarP(&opts.src.refresh, "refresh", "r", false,
		"rebuild the local snapshot")

	return rankCmd
}

func runRank(ctx context.Context, w io.Writer, slug string, opts rankOpts) error {
	format, ok := ioreport.NewFormat(opts.format)
	if !ok {
		err := ioreport.FormatError(opts.format)
		gn.PrintErrorMessage(err)
		return err
	}
	if slug == "" && !opts.all {
		err := missingPileError()
		gn.PrintErrorMessage(err)
		return err
	}
	if opts.all && len(opts.species) > 0 {
		gn.Warn("Species are ignored with <em>--all</em>")
	}

	ds, defaults, err := opts.src.load(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	weights := igdt.ParseWeights(defaults, weightOverrides(opts.weights))

	width := opts.width
	if width <= 0 {
		width = cfg.Rank.Width
	}
	r := ranking.New(
		ranking.OptWidth(width),
		ranking.OptJobsNumber(cfg.JobsNumber),
	)

	var res []*ranking.Ranking
	if opts.all {
		res, err = r.RankAll(ctx, ds, weights)
	} else {
		var one *ranking.Ranking
		one, err = r.Rank(ds, slug, opts.species, weights)
		res = []*ranking.Ranking{one}
	}
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	return ioreport.Write(w, res, format)
}

func missingPileError() error {
	return &gn.Error{
		Code: errcode.MissingPileError,
		Msg:  "Give a pile slug or use <em>--all</em>",
		Err:  fmt.Errorf("pile slug is missing"),
	}
}
