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

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnkey/internal/iocache"
	"github.com/gnames/gnkey/internal/iooptimize"
	"github.com/gnames/gnkey/pkg/config"
	"github.com/gnames/gnkey/pkg/parserpool"
	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/spf13/cobra"
)

func getOptimizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "optimize",
		Short: "Tidy an imported key",
		Long: `Optimize prepares an imported key for ranking:

  1. reparses species names, filling missing canonical forms and genera
  2. removes rows that point to missing species, piles or values
  3. updates PostgreSQL statistics with VACUUM ANALYZE

It is safe to run optimize several times.

Examples:
  gnkey optimize`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOptimize(cmd.Context())
		},
	}
}

func runOptimize(ctx context.Context) error {
	op, err := connect(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	pool := parserpool.NewPool(cfg.JobsNumber, nomcode.Botanical)
	defer pool.Close()

	stats, err := iooptimize.NewOptimizer(cfg, op, pool).Optimize(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	snap := config.SnapshotPath(cfg.HomeDir, cfg.Database.Database)
	if err = iocache.Remove(snap); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Reparsed <em>%s</em> species, removed <em>%s</em> orphaned rows",
		humanize.Comma(int64(stats.Reparsed)),
		humanize.Comma(stats.Orphans),
	)
	return nil
}
