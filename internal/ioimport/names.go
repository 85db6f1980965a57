package ioimport

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/gnames/gnkey/pkg/dataset"
	"github.com/gnames/gnkey/pkg/parserpool"
	"github.com/gnames/gnkey/pkg/schema"
	"github.com/gnames/gnuuid"
	"golang.org/x/sync/errgroup"
)

// parseSpecies parses scientific names concurrently. Canonical forms and
// genera already present in the key are kept.
func (im *importer) parseSpecies(
	ctx context.Context,
	species []dataset.Species,
) ([]schema.Species, error) {
	res := make([]schema.Species, len(species))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(max(im.cfg.JobsNumber, 1))

	for i, sp := range species {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			res[i] = speciesRecord(im.parser, sp)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var unparsed int
	for _, s := range res {
		if s.Canonical == "" {
			unparsed++
		}
	}
	if unparsed > 0 {
		slog.Warn("Some species names could not be parsed", "count", unparsed)
	}
	return res, nil
}

func speciesRecord(p parserpool.Pool, sp dataset.Species) schema.Species {
	canonical, genus := parserpool.Canonical(p.Parse(sp.ScientificName))
	if sp.Canonical != "" {
		canonical = sp.Canonical
	}
	if sp.Genus != "" {
		genus = sp.Genus
	}

	res := schema.Species{
		ID:             sp.ID,
		ScientificName: sp.ScientificName,
		Canonical:      canonical,
		Genus:          genus,
		Family:         sp.Family,
		NameID:         gnuuid.New(sp.ScientificName).String(),
	}
	if canonical != "" {
		res.CanonicalID = sql.NullString{
			String: gnuuid.New(canonical).String(),
			Valid:  true,
		}
	}
	return res
}
