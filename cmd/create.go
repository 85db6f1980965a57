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

	"github.com/gnames/gn"
	"github.com/gnames/gnkey/internal/ioschema"
	"github.com/spf13/cobra"
)

func getCreateCmd() *cobra.Command {
	var force bool

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create database schema",
		Long: `Create the GNkey database schema from scratch.

The command connects to PostgreSQL, asks before dropping existing tables,
and creates key tables and indexes with GORM AutoMigrate.

Use --force to drop existing tables without confirmation.

Examples:
  gnkey create
  gnkey create --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(force)
		},
	}

	createCmd.Flags().BoolVarP(&force, "force", "f",
		false, "drop existing tables without confirmation")

	return createCmd
}

func runCreate(force bool) error {
	ctx := context.Background()

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

	if hasTables {
		if !force {
			gn.Warn("Database contains tables. Creating schema drops ALL of them.")
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
		if err = op.DropAllTables(ctx); err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
		gn.Info("Existing tables dropped")
	}

	sm := ioschema.NewManager(op)
	if err = sm.Create(ctx); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Schema is created. Next step: <em>gnkey import KEY_FILE</em>")
	return nil
}
