// Package ioload reads identification keys from PostgreSQL into an
// in-memory dataset. Every table is read with one query.
package ioload

import (
	"context"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnkey/internal/iodb"
	"github.com/gnames/gnkey/pkg/config"
	"github.com/gnames/gnkey/pkg/dataset"
	"github.com/gnames/gnkey/pkg/db"
	"github.com/gnames/gnkey/pkg/lifecycle"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type loader struct {
	cfg      *config.Config
	operator db.Operator
}

// NewLoader creates a Loader that uses a connected operator.
func NewLoader(cfg *config.Config, op db.Operator) lifecycle.Loader {
	return &loader{cfg: cfg, operator: op}
}

// Load implements lifecycle.Loader.
func (l *loader) Load(ctx context.Context) (*dataset.Dataset, error) {
	start := time.Now()
	pool := l.operator.Pool()
	if pool == nil {
		return nil, iodb.NotConnectedError()
	}

	exists, err := l.operator.TableExists(ctx, "piles")
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, iodb.EmptyDatabaseError(
			l.cfg.Database.Host, l.cfg.Database.Database,
		)
	}

	ds := &dataset.Dataset{}
	if ds.Species, err = collect(ctx, pool, "species", qSpecies, rowToSpecies); err != nil {
		return nil, err
	}
	if ds.Characters, err = collect(ctx, pool, "characters", qCharacters, rowToCharacter); err != nil {
		return nil, err
	}
	if ds.Values, err = collect(ctx, pool, "character_values", qValues, rowToValue); err != nil {
		return nil, err
	}
	if ds.Assignments, err = collect(ctx, pool, "taxon_character_values", qAssignments, rowToAssignment); err != nil {
		return nil, err
	}
	if ds.Piles, err = collect(ctx, pool, "piles", qPiles, rowToPile); err != nil {
		return nil, err
	}

	pileSpecies, err := collect(ctx, pool, "pile_species", qPileSpecies, rowToPair)
	if err != nil {
		return nil, err
	}
	pileValues, err := collect(ctx, pool, "pile_character_values", qPileValues, rowToPair)
	if err != nil {
		return nil, err
	}
	attachMembers(ds.Piles, pileSpecies, pileValues)

	if err := ds.Build(); err != nil {
		return nil, err
	}

	slog.Info("Loaded key data",
		"piles", len(ds.Piles),
		"species", len(ds.Species),
		"values", len(ds.Values),
		"assignments", len(ds.Assignments),
		"duration", gnfmt.TimeString(time.Since(start).Seconds()),
	)
	slog.Debug("Assignments loaded",
		"count", humanize.Comma(int64(len(ds.Assignments))))
	return ds, nil
}

const (
	qPiles = `SELECT id, slug, name FROM piles ORDER BY id`

	qSpecies = `SELECT id, scientific_name, COALESCE(canonical, ''),
		COALESCE(genus, ''), COALESCE(family, '')
	FROM species ORDER BY id`

	qCharacters = `SELECT id, short_name, COALESCE(name, ''), value_type,
		ease_of_observability, COALESCE(unit, '')
	FROM characters ORDER BY id`

	qValues = `SELECT id, character_id, COALESCE(value_str, ''),
		value_min, value_max, value_flt
	FROM character_values ORDER BY id`

	qAssignments = `SELECT taxon_id, character_value_id
	FROM taxon_character_values ORDER BY taxon_id, character_value_id`

	qPileSpecies = `SELECT pile_id, species_id
	FROM pile_species ORDER BY pile_id, species_id`

	qPileValues = `SELECT pile_id, character_value_id
	FROM pile_character_values ORDER BY pile_id, character_value_id`
)

func collect[T any](
	ctx context.Context,
	pool *pgxpool.Pool,
	table, query string,
	fn pgx.RowToFunc[T],
) ([]T, error) {
	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, QueryError(table, err)
	}
	res, err := pgx.CollectRows(rows, fn)
	if err != nil {
		return nil, QueryError(table, err)
	}
	return res, nil
}

func rowToPile(row pgx.CollectableRow) (dataset.Pile, error) {
	var p dataset.Pile
	err := row.Scan(&p.ID, &p.Slug, &p.Name)
	return p, err
}

func rowToSpecies(row pgx.CollectableRow) (dataset.Species, error) {
	var s dataset.Species
	err := row.Scan(&s.ID, &s.ScientificName, &s.Canonical, &s.Genus, &s.Family)
	return s, err
}

func rowToCharacter(row pgx.CollectableRow) (dataset.Character, error) {
	var c dataset.Character
	var vt string
	err := row.Scan(&c.ID, &c.ShortName, &c.Name, &vt, &c.Ease, &c.Unit)
	c.ValueType = dataset.ValueType(vt)
	return c, err
}

func rowToValue(row pgx.CollectableRow) (dataset.CharacterValue, error) {
	var v dataset.CharacterValue
	err := row.Scan(&v.ID, &v.CharacterID, &v.ValueStr, &v.Min, &v.Max, &v.Flt)
	return v, err
}

func rowToAssignment(row pgx.CollectableRow) (dataset.Assignment, error) {
	var a dataset.Assignment
	err := row.Scan(&a.SpeciesID, &a.ValueID)
	return a, err
}

// pair is a row of a join table.
type pair struct {
	pileID, memberID int
}

func rowToPair(row pgx.CollectableRow) (pair, error) {
	var p pair
	err := row.Scan(&p.pileID, &p.memberID)
	return p, err
}

// attachMembers fills species and value ids of piles from join tables.
func attachMembers(piles []dataset.Pile, species, values []pair) {
	idx := make(map[int]int, len(piles))
	for i := range piles {
		idx[piles[i].ID] = i
	}
	for _, p := range species {
		if i, ok := idx[p.pileID]; ok {
			piles[i].SpeciesIDs = append(piles[i].SpeciesIDs, p.memberID)
		}
	}
	for _, p := range values {
		if i, ok := idx[p.pileID]; ok {
			piles[i].ValueIDs = append(piles[i].ValueIDs, p.memberID)
		}
	}
}
