package iocache_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gnkey/internal/iocache"
	"github.com/gnames/gnkey/internal/iotesting"
	"github.com/gnames/gnkey/pkg/igdt"
	"github.com/gnames/gnkey/pkg/ranking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoad(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping file system test in short mode")
	}

	path := filepath.Join(t.TempDir(), "cache", "gnkey.msgpack")
	ds, ok, err := iocache.Load(path)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, ds)

	src := iotesting.ThreeSpeciesKey()
	require.NoError(t, iocache.Save(path, src))

	ds, ok, err = iocache.Load(path)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, ds.IsBuilt())
	assert.Equal(t, src.Piles, ds.Piles)
	assert.Equal(t, src.Values, ds.Values)

	w := igdt.Weights{CoverageWeight: 1, EaseWeight: 0.5, LengthWeight: 0.7}
	r := ranking.New()
	want, err := r.Rank(src, "demo", nil, w)
	require.NoError(t, err)
	got, err := r.Rank(ds, "demo", nil, w)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, iocache.Remove(path))
	require.NoError(t, iocache.Remove(path))
	_, ok, err = iocache.Load(path)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoadCorrupted(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping file system test in short mode")
	}

	path := filepath.Join(t.TempDir(), "bad.msgpack")
	require.NoError(t, os.WriteFile(path, []byte("not msgpack"), 0644))

	_, ok, err := iocache.Load(path)
	assert.False(t, ok)
	assert.Error(t, err)
}
