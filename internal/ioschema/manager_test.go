package ioschema_test

import (
	"context"
	"testing"

	"github.com/gnames/gnkey/internal/iodb"
	"github.com/gnames/gnkey/internal/ioschema"
	"github.com/gnames/gnkey/internal/iotesting"
	"github.com/gnames/gnkey/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNotConnected verifies that schema operations need a connection.
func TestNotConnected(t *testing.T) {
	mgr := ioschema.NewManager(iodb.NewPgxOperator())
	require.NotNil(t, mgr)
	assert.Error(t, mgr.Create(context.Background()))
	assert.Error(t, mgr.Migrate(context.Background()))
}

func TestCreate(t *testing.T) {
	cfg := iotesting.GetTestConfig()
	iotesting.SkipWithoutDatabase(t, cfg)

	ctx := context.Background()
	op := iodb.NewPgxOperator()
	require.NoError(t, op.Connect(ctx, &cfg.Database))
	defer op.Close()
	require.NoError(t, op.DropAllTables(ctx))

	mgr := ioschema.NewManager(op)
	require.NoError(t, mgr.Create(ctx))
	for _, table := range schema.TableNames() {
		exists, err := op.TableExists(ctx, table)
		require.NoError(t, err)
		assert.True(t, exists, table)
	}

	// repeated migration is harmless
	require.NoError(t, mgr.Migrate(ctx))
}
