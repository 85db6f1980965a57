// Package ioimport writes identification keys into PostgreSQL.
// Species names are parsed to get canonical forms and genera, key
// tables are replaced in a single transaction with bulk copies.
package ioimport

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnkey/internal/iodb"
	"github.com/gnames/gnkey/pkg/config"
	"github.com/gnames/gnkey/pkg/dataset"
	"github.com/gnames/gnkey/pkg/db"
	"github.com/gnames/gnkey/pkg/lifecycle"
	"github.com/gnames/gnkey/pkg/parserpool"
	"github.com/gnames/gnkey/pkg/schema"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type importer struct {
	cfg      *config.Config
	operator db.Operator
	parser   parserpool.Pool
}

// NewImporter creates an Importer. The operator must be connected and
// the schema must exist.
func NewImporter(
	cfg *config.Config,
	op db.Operator,
	parser parserpool.Pool,
) lifecycle.Importer {
	return &importer{cfg: cfg, operator: op, parser: parser}
}

// table is a set of rows ready for COPY.
type table struct {
	name    string
	columns []string
	rows    [][]any
}

// Import implements lifecycle.Importer.
func (im *importer) Import(
	ctx context.Context,
	ds *dataset.Dataset,
) (lifecycle.ImportStats, error) {
	var stats lifecycle.ImportStats
	start := time.Now()

	if !ds.IsBuilt() {
		return stats, dataset.InvalidDataError("dataset is not built")
	}
	pool := im.operator.Pool()
	if pool == nil {
		return stats, iodb.NotConnectedError()
	}

	species, err := im.parseSpecies(ctx, ds.Species)
	if err != nil {
		return stats, err
	}

	tables := buildTables(ds, species)
	var total int
	for _, t := range tables {
		total += len(t.rows)
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return stats, InsertError("transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// Key tables are replaced, parameters are kept.
	names := make([]string, len(tables))
	for i, t := range tables {
		names[i] = pgx.Identifier{t.name}.Sanitize()
	}
	q := "TRUNCATE " + strings.Join(names, ", ")
	if _, err = tx.Exec(ctx, q); err != nil {
		return stats, InsertError("truncate", err)
	}

	bar := pb.Full.Start(total)
	bar.Set("prefix", "Importing key: ")
	bar.Set(pb.CleanOnFinish, true)

	batchSize := max(im.cfg.Database.BatchSize, 1)
	for _, t := range tables {
		for i := 0; i < len(t.rows); i += batchSize {
			end := min(i+batchSize, len(t.rows))
			_, err = tx.CopyFrom(
				ctx,
				pgx.Identifier{t.name},
				t.columns,
				pgx.CopyFromRows(t.rows[i:end]),
			)
			if err != nil {
				bar.Finish()
				return stats, InsertError(t.name, err)
			}
			bar.Add(end - i)
		}
	}
	bar.Finish()

	if err = tx.Commit(ctx); err != nil {
		return stats, InsertError("transaction", err)
	}

	stats = lifecycle.ImportStats{
		Piles:       len(ds.Piles),
		Species:     len(ds.Species),
		Characters:  len(ds.Characters),
		Values:      len(ds.Values),
		Assignments: len(tables[len(tables)-1].rows),
	}
	slog.Info("Imported key data",
		"piles", stats.Piles,
		"species", stats.Species,
		"characters", stats.Characters,
		"values", stats.Values,
		"assignments", stats.Assignments,
		"duration", gnfmt.TimeString(time.Since(start).Seconds()),
	)
	return stats, nil
}

// HasKeyData reports whether the database already holds an imported
// key. A database without the piles table has none.
func HasKeyData(ctx context.Context, op db.Operator) (bool, error) {
	name := schema.Pile{}.TableName()
	exists, err := op.TableExists(ctx, name)
	if err != nil || !exists {
		return false, err
	}

	var found bool
	q := "SELECT EXISTS (SELECT 1 FROM " + pgx.Identifier{name}.Sanitize() + ")"
	if err = op.Pool().QueryRow(ctx, q).Scan(&found); err != nil {
		return false, iodb.TableCheckError(err)
	}
	return found, nil
}

// buildTables converts a dataset into rows of schema tables. Assignments
// come last.
func buildTables(ds *dataset.Dataset, species []schema.Species) []table {
	piles := table{name: schema.Pile{}.TableName(), columns: schema.Columns(schema.Pile{})}
	pileSpecies := table{name: schema.PileSpecies{}.TableName(), columns: schema.Columns(schema.PileSpecies{})}
	pileValues := table{name: schema.PileCharacterValue{}.TableName(), columns: schema.Columns(schema.PileCharacterValue{})}
	for _, p := range ds.Piles {
		piles.rows = append(piles.rows, []any{p.ID, p.Slug, p.Name})
		for _, id := range ds.PileSpeciesIDs(&p) {
			pileSpecies.rows = append(pileSpecies.rows, []any{p.ID, id})
		}
		for _, id := range unique(p.ValueIDs) {
			pileValues.rows = append(pileValues.rows, []any{p.ID, id})
		}
	}

	sp := table{name: schema.Species{}.TableName(), columns: schema.Columns(schema.Species{})}
	for _, s := range species {
		var canonicalID any
		if s.CanonicalID.Valid {
			canonicalID = uuidBytes(s.CanonicalID.String)
		}
		sp.rows = append(sp.rows, []any{
			s.ID, s.ScientificName, s.Canonical, s.Genus, s.Family,
			uuidBytes(s.NameID), canonicalID,
		})
	}

	chars := table{name: schema.Character{}.TableName(), columns: schema.Columns(schema.Character{})}
	for _, c := range ds.Characters {
		chars.rows = append(chars.rows, []any{
			c.ID, c.ShortName, c.Name, string(c.ValueType), c.Ease, c.Unit,
		})
	}

	vals := table{name: schema.CharacterValue{}.TableName(), columns: schema.Columns(schema.CharacterValue{})}
	for _, v := range ds.Values {
		var valueStr any
		if v.ValueStr != "" {
			valueStr = v.ValueStr
		}
		vals.rows = append(vals.rows, []any{
			v.ID, v.CharacterID, valueStr, v.Min, v.Max, v.Flt,
		})
	}

	assignments := table{name: schema.TaxonCharacterValue{}.TableName(), columns: schema.Columns(schema.TaxonCharacterValue{})}
	seen := make(map[dataset.Assignment]struct{}, len(ds.Assignments))
	for _, a := range ds.Assignments {
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		assignments.rows = append(assignments.rows, []any{a.SpeciesID, a.ValueID})
	}

	return []table{piles, sp, pileSpecies, chars, vals, pileValues, assignments}
}

// uuidBytes converts a UUID string for binary COPY.
func uuidBytes(s string) pgtype.UUID {
	var res pgtype.UUID
	_ = res.Scan(s)
	return res
}

func unique(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	res := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		res = append(res, id)
	}
	return res
}
