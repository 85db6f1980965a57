package iooptimize

import (
	"context"
	"database/sql"

	"github.com/gnames/gnkey/pkg/parserpool"
	"github.com/gnames/gnuuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"
)

// reparsed holds a species row before and after parsing.
type reparsed struct {
	id             int
	scientificName string
	canonical      string
	genus          string
	nameID         sql.NullString
	canonicalID    sql.NullString
	changed        bool
}

// reparseSpecies parses species names again. Canonical forms and genera
// given by the key are kept; empty ones are filled from the parser and
// name UUIDs are recalculated. Only changed rows are written back.
func reparseSpecies(ctx context.Context, o *optimizer) (int, error) {
	pool := o.operator.Pool()

	q := `SELECT id, scientific_name, COALESCE(canonical, ''),
	COALESCE(genus, ''), name_id::text, canonical_id::text
	FROM species`
	rows, err := pool.Query(ctx, q)
	if err != nil {
		return 0, ReparseError("query", err)
	}
	names, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (reparsed, error) {
		var r reparsed
		err := row.Scan(
			&r.id, &r.scientificName, &r.canonical,
			&r.genus, &r.nameID, &r.canonicalID,
		)
		return r, err
	})
	if err != nil {
		return 0, ReparseError("scan", err)
	}

	chIn := make(chan reparsed)
	chOut := make(chan reparsed)
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(chIn)
		for _, v := range names {
			select {
			case <-gCtx.Done():
				return gCtx.Err()
			case chIn <- v:
			}
		}
		return nil
	})

	workers, wCtx := errgroup.WithContext(gCtx)
	for range max(o.cfg.JobsNumber, 1) {
		workers.Go(func() error {
			for v := range chIn {
				select {
				case <-wCtx.Done():
					return wCtx.Err()
				case chOut <- reparse(o.parser, v):
				}
			}
			return nil
		})
	}
	g.Go(func() error {
		defer close(chOut)
		return workers.Wait()
	})

	var updates []reparsed
	bar := newProgressBar(len(names), "Reparsing species: ")
	g.Go(func() error {
		for v := range chOut {
			bar.Increment()
			if v.changed {
				updates = append(updates, v)
			}
		}
		return nil
	})
	err = g.Wait()
	bar.Finish()
	if err != nil {
		return 0, err
	}

	if err = saveReparsed(ctx, o, updates); err != nil {
		return 0, err
	}
	return len(updates), nil
}

// reparse fills a species row from the parser and marks it changed when
// any stored field differs.
func reparse(p parserpool.Pool, r reparsed) reparsed {
	canonical, genus := parserpool.Canonical(p.Parse(r.scientificName))
	res := r
	if res.canonical == "" {
		res.canonical = canonical
	}
	if res.genus == "" {
		res.genus = genus
	}
	res.nameID = sql.NullString{
		String: gnuuid.New(res.scientificName).String(),
		Valid:  true,
	}
	res.canonicalID = sql.NullString{}
	if res.canonical != "" {
		res.canonicalID = sql.NullString{
			String: gnuuid.New(res.canonical).String(),
			Valid:  true,
		}
	}
	res.changed = res.canonical != r.canonical ||
		res.genus != r.genus ||
		res.nameID != r.nameID ||
		res.canonicalID != r.canonicalID
	return res
}

func saveReparsed(ctx context.Context, o *optimizer, updates []reparsed) error {
	if len(updates) == 0 {
		return nil
	}

	q := `UPDATE species
	SET canonical = $2, genus = $3, name_id = $4::uuid, canonical_id = $5::uuid
	WHERE id = $1`

	batchSize := max(o.cfg.Database.BatchSize, 1)
	for i := 0; i < len(updates); i += batchSize {
		end := min(i+batchSize, len(updates))
		batch := &pgx.Batch{}
		for _, v := range updates[i:end] {
			batch.Queue(q, v.id, v.canonical, v.genus, v.nameID, v.canonicalID)
		}
		if err := o.operator.Pool().SendBatch(ctx, batch).Close(); err != nil {
			return ReparseError("update", err)
		}
	}
	return nil
}
