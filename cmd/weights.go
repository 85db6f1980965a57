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
	"strconv"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnkey/internal/ioparams"
	"github.com/gnames/gnkey/pkg/igdt"
	"github.com/gnames/gnkey/pkg/lifecycle"
	"github.com/spf13/cobra"
)

func getWeightsCmd() *cobra.Command {
	var set []string

	weightsCmd := &cobra.Command{
		Use:   "weights",
		Short: "Show or change ranking weights",
		Long: `Weights prints ranking weights stored in the database. Missing
weights are created from config.yaml values. Use --set to change them.

Examples:
  gnkey weights
  gnkey weights --set coverage_weight=2 --set length_weight=0.5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWeights(cmd.Context(), cmd.OutOrStdout(), set)
		},
	}

	weightsCmd.Flags().StringArrayVar(&set, "set", nil,
		"new weight as name=value, can be repeated")

	return weightsCmd
}

func runWeights(ctx context.Context, w io.Writer, set []string) error {
	op, err := connect(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	store := ioparams.NewStore(op)
	weights, err := store.Weights(ctx, igdt.NewWeights(cfg.Rank))
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if weights, err = updateWeights(ctx, store, weights, set); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	for _, p := range weights.Params() {
		fmt.Fprintf(w, "%-30s %s\n", p.Name,
			strconv.FormatFloat(p.Value, 'f', -1, 64))
	}
	return nil
}

// updateWeights validates all name=value entries first and saves them
// only when every entry is valid.
func updateWeights(
	ctx context.Context,
	store lifecycle.ParamStore,
	weights igdt.Weights,
	set []string,
) (igdt.Weights, error) {
	res := weights
	for _, v := range set {
		name, value, _ := strings.Cut(v, "=")
		name = strings.TrimSpace(name)
		f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || !res.Set(name, f) {
			return weights, ioparams.UnknownError(name, value)
		}
	}
	if len(set) == 0 {
		return res, nil
	}

	for _, p := range res.Params() {
		if err := store.Set(ctx, p.Name, p.Value); err != nil {
			return weights, err
		}
	}
	gn.Info("Ranking weights are saved")
	return res, nil
}
