package cmd

import (
	"context"

	"github.com/gnames/gn"
	"github.com/gnames/gnkey/internal/iocache"
	"github.com/gnames/gnkey/internal/iokeyfile"
	"github.com/gnames/gnkey/internal/ioload"
	"github.com/gnames/gnkey/internal/ioparams"
	"github.com/gnames/gnkey/pkg/config"
	"github.com/gnames/gnkey/pkg/dataset"
	"github.com/gnames/gnkey/pkg/igdt"
)

// source tells where a command takes its key from.
type source struct {
	file    string
	cache   bool
	refresh bool
}

// load returns a built dataset and default weights. A key file gives
// weights from configuration, the database gives persisted weights.
func (s source) load(ctx context.Context) (*dataset.Dataset, igdt.Weights, error) {
	defaults := igdt.NewWeights(cfg.Rank)
	if s.file != "" {
		ds, err := iokeyfile.Read(s.file)
		return ds, defaults, err
	}

	op, err := connect(ctx)
	if err != nil {
		return nil, defaults, err
	}
	defer op.Close()

	w, err := ioparams.NewStore(op).Weights(ctx, defaults)
	if err != nil {
		return nil, defaults, err
	}

	snap := config.SnapshotPath(cfg.HomeDir, cfg.Database.Database)
	if s.cache && !s.refresh {
		ds, ok, err := iocache.Load(snap)
		if err != nil {
			gn.Warn("Cannot use snapshot <em>%s</em>, reading the database", snap)
		}
		if ok {
			return ds, w, nil
		}
	}

	ds, err := ioload.NewLoader(cfg, op).Load(ctx)
	if err != nil {
		return nil, w, err
	}

	if s.cache {
		if err = iocache.Save(snap, ds); err != nil {
			return nil, w, err
		}
	}
	return ds, w, nil
}
