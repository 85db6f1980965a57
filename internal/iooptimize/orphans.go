package iooptimize

import (
	"context"
	"log/slog"

	"github.com/dustin/go-humanize"
)

// orphanQueries remove rows that point to missing records. Values go
// first so that assignments and pile links to them are caught later.
var orphanQueries = []struct {
	table string
	query string
}{
	{"character_values", `DELETE FROM character_values v
	WHERE NOT EXISTS (SELECT 1 FROM characters c WHERE c.id = v.character_id)`},
	{"taxon_character_values", `DELETE FROM taxon_character_values t
	WHERE NOT EXISTS (SELECT 1 FROM species s WHERE s.id = t.taxon_id)
	OR NOT EXISTS (SELECT 1 FROM character_values v WHERE v.id = t.character_value_id)`},
	{"pile_species", `DELETE FROM pile_species ps
	WHERE NOT EXISTS (SELECT 1 FROM piles p WHERE p.id = ps.pile_id)
	OR NOT EXISTS (SELECT 1 FROM species s WHERE s.id = ps.species_id)`},
	{"pile_character_values", `DELETE FROM pile_character_values pv
	WHERE NOT EXISTS (SELECT 1 FROM piles p WHERE p.id = pv.pile_id)
	OR NOT EXISTS (SELECT 1 FROM character_values v WHERE v.id = pv.character_value_id)`},
}

// removeOrphans deletes dangling rows and returns how many were removed.
func removeOrphans(ctx context.Context, o *optimizer) (int64, error) {
	pool := o.operator.Pool()

	var total int64
	for _, v := range orphanQueries {
		tag, err := pool.Exec(ctx, v.query)
		if err != nil {
			return total, OrphanRemovalError(v.table, err)
		}
		if n := tag.RowsAffected(); n > 0 {
			slog.Info("Removed orphaned rows",
				"table", v.table, "rows", humanize.Comma(n))
			total += n
		}
	}
	return total, nil
}
