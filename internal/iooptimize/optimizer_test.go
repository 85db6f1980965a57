package iooptimize_test

import (
	"context"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnkey/internal/iodb"
	"github.com/gnames/gnkey/internal/ioimport"
	"github.com/gnames/gnkey/internal/iooptimize"
	"github.com/gnames/gnkey/internal/ioschema"
	"github.com/gnames/gnkey/internal/iotesting"
	"github.com/gnames/gnkey/pkg/config"
	"github.com/gnames/gnkey/pkg/errcode"
	"github.com/gnames/gnkey/pkg/parserpool"
	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimizeNotConnected(t *testing.T) {
	pool := parserpool.NewPool(1, nomcode.Botanical)
	defer pool.Close()

	opt := iooptimize.NewOptimizer(config.New(), iodb.NewPgxOperator(), pool)
	_, err := opt.Optimize(context.Background())
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.DBNotConnectedError, gnErr.Code)
}

func TestOptimize(t *testing.T) {
	cfg := iotesting.GetTestConfig()
	iotesting.SkipWithoutDatabase(t, cfg)

	ctx := context.Background()
	op := iodb.NewPgxOperator()
	require.NoError(t, op.Connect(ctx, &cfg.Database))
	defer op.Close()
	require.NoError(t, op.DropAllTables(ctx))
	require.NoError(t, ioschema.NewManager(op).Create(ctx))

	pool := parserpool.NewPool(2, nomcode.Botanical)
	defer pool.Close()

	_, err := ioimport.NewImporter(cfg, op, pool).
		Import(ctx, iotesting.ThreeSpeciesKey())
	require.NoError(t, err)

	// break the key: forget a canonical form and a species
	_, err = op.Pool().Exec(ctx,
		"UPDATE species SET canonical = NULL, canonical_id = NULL WHERE id = $1",
		iotesting.SpeciesB)
	require.NoError(t, err)
	_, err = op.Pool().Exec(ctx, "DELETE FROM species WHERE id = $1",
		iotesting.SpeciesC)
	require.NoError(t, err)

	opt := iooptimize.NewOptimizer(cfg, op, pool)
	stats, err := opt.Optimize(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Reparsed)
	// species C had one assignment and one pile link
	assert.Equal(t, int64(2), stats.Orphans)

	var canonical string
	err = op.Pool().QueryRow(ctx,
		"SELECT canonical FROM species WHERE id = $1",
		iotesting.SpeciesB).Scan(&canonical)
	require.NoError(t, err)
	assert.Equal(t, "Betula papyrifera", canonical)

	stats, err = opt.Optimize(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.Reparsed)
	assert.Zero(t, stats.Orphans)
}
