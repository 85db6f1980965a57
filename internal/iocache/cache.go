// Package iocache keeps msgpack snapshots of datasets loaded from
// PostgreSQL, so that repeated ranking runs skip the database.
package iocache

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gnames/gnkey/pkg/dataset"
	"github.com/gnames/gnsys"
	"github.com/vmihailenco/msgpack/v5"
)

// schemaVersion changes when the snapshot layout changes.
const schemaVersion uint16 = 1

// snapshot is the on-disk payload.
type snapshot struct {
	Schema  uint16
	Created int64
	Dataset *dataset.Dataset
}

// Save writes a snapshot of the dataset to path, replacing an existing one
// atomically.
func Save(path string, ds *dataset.Dataset) error {
	dir := filepath.Dir(path)
	if err := gnsys.MakeDir(dir); err != nil {
		return WriteError(path, err)
	}

	f, err := os.CreateTemp(dir, "snapshot-*")
	if err != nil {
		return WriteError(path, err)
	}
	defer os.Remove(f.Name())

	payload := snapshot{
		Schema:  schemaVersion,
		Created: time.Now().Unix(),
		Dataset: ds,
	}
	if err = msgpack.NewEncoder(f).Encode(&payload); err != nil {
		f.Close()
		return WriteError(path, err)
	}
	if err = f.Close(); err != nil {
		return WriteError(path, err)
	}
	if err = os.Rename(f.Name(), path); err != nil {
		return WriteError(path, err)
	}

	slog.Info("Saved dataset snapshot", "path", path)
	return nil
}

// Load reads a snapshot and returns a built dataset. It returns false
// without error when there is no usable snapshot: the file is missing or
// was written by an incompatible version.
func Load(path string) (*dataset.Dataset, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, ReadError(path, err)
	}
	defer f.Close()

	var payload snapshot
	if err = msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false, ReadError(path, err)
	}
	if payload.Schema != schemaVersion || payload.Dataset == nil {
		slog.Warn("Ignoring stale dataset snapshot",
			"path", path, "schema", payload.Schema)
		return nil, false, nil
	}

	ds := payload.Dataset
	if err = ds.Build(); err != nil {
		return nil, false, err
	}
	slog.Info("Loaded dataset snapshot",
		"path", path,
		"created", time.Unix(payload.Created, 0).Format(time.RFC3339),
	)
	return ds, true, nil
}

// Remove deletes a snapshot if it exists.
func Remove(path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return WriteError(path, err)
	}
	return nil
}
