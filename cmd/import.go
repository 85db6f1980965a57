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
	"os"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnkey/internal/iocache"
	"github.com/gnames/gnkey/internal/ioimport"
	"github.com/gnames/gnkey/internal/iokeyfile"
	"github.com/gnames/gnkey/internal/ioschema"
	"github.com/gnames/gnkey/pkg/config"
	"github.com/gnames/gnkey/pkg/parserpool"
	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/spf13/cobra"
)

func getImportCmd() *cobra.Command {
	var force bool

	importCmd := &cobra.Command{
		Use:   "import KEY_FILE",
		Short: "Import an identification key into the database",
		Long: `Import reads a key file and stores it in PostgreSQL.

Supported files: YAML (.yaml, .yml), TOML (.toml) and SQLite archives
(.sqlite, .sqlite3, .db). Species names are parsed with the botanical
code to get canonical forms and genera. A key that is already in the
database is replaced, ranking weights are kept. The schema is created
when the database is empty.

Examples:
  gnkey import key.yaml
  gnkey import key.sqlite --force`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(args[0], force)
		},
	}

	importCmd.Flags().BoolVarP(&force, "force", "f",
		false, "replace existing key without confirmation")

	return importCmd
}

func runImport(path string, force bool) error {
	ctx := context.Background()

	ds, err := iokeyfile.Read(path)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	gn.Info("Read <em>%s</em> species and <em>%s</em> characters from %s",
		humanize.Comma(int64(len(ds.Species))),
		humanize.Comma(int64(len(ds.Characters))),
		path,
	)

	op, err := connect(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	hasTables, err := op.HasTables(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	if !hasTables {
		if err = ioschema.NewManager(op).Create(ctx); err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
	}

	exists, err := ioimport.HasKeyData(ctx, op)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	if exists && !force {
		gn.Warn("Database already has a key, importing replaces it.")
		ok, err := confirm(os.Stdin, "Do you want to continue?")
		if err != nil {
			gn.Warn("Cannot read the answer")
			return err
		}
		if !ok {
			gn.Info("Aborted, no changes made")
			return nil
		}
	}

	pool := parserpool.NewPool(cfg.JobsNumber, nomcode.Botanical)
	defer pool.Close()

	stats, err := ioimport.NewImporter(cfg, op, pool).Import(ctx, ds)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// snapshot of the previous key is stale now
	snap := config.SnapshotPath(cfg.HomeDir, cfg.Database.Database)
	if err = iocache.Remove(snap); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info(
		"Imported <em>%s</em> piles, <em>%s</em> species, "+
			"<em>%s</em> characters, <em>%s</em> values, "+
			"<em>%s</em> assignments",
		humanize.Comma(int64(stats.Piles)),
		humanize.Comma(int64(stats.Species)),
		humanize.Comma(int64(stats.Characters)),
		humanize.Comma(int64(stats.Values)),
		humanize.Comma(int64(stats.Assignments)),
	)
	return nil
}
