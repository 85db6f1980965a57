// Package iooptimize implements lifecycle.Optimizer for keys stored in
// PostgreSQL.
package iooptimize

import (
	"context"
	"log/slog"
	"time"

	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnkey/internal/iodb"
	"github.com/gnames/gnkey/pkg/config"
	"github.com/gnames/gnkey/pkg/db"
	"github.com/gnames/gnkey/pkg/lifecycle"
	"github.com/gnames/gnkey/pkg/parserpool"
)

type optimizer struct {
	cfg      *config.Config
	operator db.Operator
	parser   parserpool.Pool
}

// NewOptimizer creates an Optimizer. The operator must be connected.
func NewOptimizer(
	cfg *config.Config,
	op db.Operator,
	parser parserpool.Pool,
) lifecycle.Optimizer {
	return &optimizer{cfg: cfg, operator: op, parser: parser}
}

// Optimize runs three steps:
//  1. reparse species names, filling missing canonical forms and genera
//  2. remove rows that point to missing records
//  3. VACUUM ANALYZE key tables
func (o *optimizer) Optimize(ctx context.Context) (lifecycle.OptimizeStats, error) {
	var stats lifecycle.OptimizeStats
	if o.operator.Pool() == nil {
		return stats, iodb.NotConnectedError()
	}
	start := time.Now()
	gn.Info("Optimizing the key, <em>it might take a while</em>...")

	var err error
	slog.Info("Step 1/3: Reparsing species names")
	if stats.Reparsed, err = reparseSpecies(ctx, o); err != nil {
		return stats, err
	}

	slog.Info("Step 2/3: Removing orphaned rows")
	if stats.Orphans, err = removeOrphans(ctx, o); err != nil {
		return stats, err
	}

	slog.Info("Step 3/3: Updating statistics")
	if err = vacuumAnalyze(ctx, o); err != nil {
		return stats, err
	}

	slog.Info("Key optimization completed",
		"reparsed", stats.Reparsed,
		"orphans", stats.Orphans,
		"duration", gnfmt.TimeString(time.Since(start).Seconds()),
	)
	return stats, nil
}
