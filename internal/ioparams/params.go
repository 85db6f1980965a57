// Package ioparams stores named numeric parameters in PostgreSQL.
package ioparams

import (
	"context"
	"log/slog"

	"github.com/gnames/gnkey/internal/iodb"
	"github.com/gnames/gnkey/pkg/db"
	"github.com/gnames/gnkey/pkg/igdt"
	"github.com/gnames/gnkey/pkg/lifecycle"
)

type store struct {
	operator db.Operator
}

// NewStore creates a ParamStore on top of a connected operator.
func NewStore(op db.Operator) lifecycle.ParamStore {
	return &store{operator: op}
}

// Get implements lifecycle.ParamStore.
func (s *store) Get(
	ctx context.Context,
	name string,
	def float64,
) (float64, error) {
	pool := s.operator.Pool()
	if pool == nil {
		return 0, iodb.NotConnectedError()
	}

	q := `INSERT INTO parameters (name, value) VALUES ($1, $2)
	ON CONFLICT (name) DO NOTHING`
	tag, err := pool.Exec(ctx, q, name, def)
	if err != nil {
		return 0, LoadError(name, err)
	}
	if tag.RowsAffected() > 0 {
		slog.Info("Created parameter", "name", name, "value", def)
		return def, nil
	}

	var res float64
	q = `SELECT value FROM parameters WHERE name = $1`
	if err = pool.QueryRow(ctx, q, name).Scan(&res); err != nil {
		return 0, LoadError(name, err)
	}
	return res, nil
}

// Set implements lifecycle.ParamStore.
func (s *store) Set(ctx context.Context, name string, value float64) error {
	pool := s.operator.Pool()
	if pool == nil {
		return iodb.NotConnectedError()
	}

	q := `INSERT INTO parameters (name, value) VALUES ($1, $2)
	ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value`
	if _, err := pool.Exec(ctx, q, name, value); err != nil {
		return SaveError(name, err)
	}
	slog.Info("Saved parameter", "name", name, "value", value)
	return nil
}

// Weights implements lifecycle.ParamStore.
func (s *store) Weights(
	ctx context.Context,
	defaults igdt.Weights,
) (igdt.Weights, error) {
	var res igdt.Weights
	for _, p := range defaults.Params() {
		v, err := s.Get(ctx, p.Name, p.Value)
		if err != nil {
			return defaults, err
		}
		if !res.Set(p.Name, v) {
			slog.Warn("Ignoring invalid stored weight",
				"name", p.Name, "value", v)
			res.Set(p.Name, p.Value)
		}
	}
	return res, nil
}
