package iooptimize

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/gnames/gnfmt"
	"github.com/gnames/gnkey/pkg/schema"
	"github.com/jackc/pgx/v5"
)

// vacuumAnalyze reclaims space and refreshes planner statistics of key
// tables. VACUUM cannot run inside a transaction.
func vacuumAnalyze(ctx context.Context, o *optimizer) error {
	start := time.Now()

	names := schema.TableNames()
	for i, v := range names {
		names[i] = pgx.Identifier{v}.Sanitize()
	}
	q := "VACUUM ANALYZE " + strings.Join(names, ", ")
	if _, err := o.operator.Pool().Exec(ctx, q); err != nil {
		return VacuumError(err)
	}

	slog.Info("VACUUM ANALYZE completed",
		"duration", gnfmt.TimeString(time.Since(start).Seconds()))
	return nil
}
