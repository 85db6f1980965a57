package ranking

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/gnames/gnkey/pkg/dataset"
	"github.com/gnames/gnkey/pkg/igdt"
	"github.com/gnames/gnkey/pkg/matrix"
	"golang.org/x/sync/errgroup"
)

const ratioReason = "RATIO characters are not ranked"

// Rank implements Ranker.
func (r *ranker) Rank(
	ds *dataset.Dataset,
	slug string,
	speciesIDs []int,
	w igdt.Weights,
) (*Ranking, error) {
	if !ds.IsBuilt() {
		return nil, dataset.InvalidDataError("dataset is not built")
	}
	pile, ok := ds.PileBySlug(slug)
	if !ok {
		return nil, dataset.PileNotFoundError(slug)
	}

	ids, err := candidateIDs(ds, pile, speciesIDs)
	if err != nil {
		return nil, err
	}

	res := &Ranking{
		Pile:       pile.Slug,
		PileName:   pile.Name,
		Species:    ids,
		Weights:    w,
		Characters: []CharacterReport{},
		Skipped:    []Skipped{},
	}

	for _, ce := range igdt.ComputeCharacterEntropies(ds, pile, ids) {
		ch, ok := ds.CharacterByID(ce.CharacterID)
		if !ok {
			return nil, dataset.CharacterNotFoundError(ce.CharacterID)
		}
		values := ds.PileValues(pile, ch.ID)

		rep := CharacterReport{
			ID:        ch.ID,
			ShortName: ch.ShortName,
			Name:      ch.Name,
			ValueType: ch.ValueType,
			Unit:      ch.Unit,
			Entropy:   ce.Entropy,
			Coverage:  ce.Coverage,
			Ease:      ch.Ease,
			ValuesNum: len(values),
		}

		switch ch.ValueType {
		case dataset.Text:
			tbl := matrix.Tablefy(*ch, values, ds, ids)
			rep.Table = &tbl
		case dataset.Length:
			g := matrix.Graphify(values, ds, ids, r.width)
			rep.Graph = &g
		default:
			res.Skipped = append(res.Skipped, Skipped{
				ID:        ch.ID,
				ShortName: ch.ShortName,
				ValueType: ch.ValueType,
				Reason:    ratioReason,
			})
			continue
		}

		rep.Score = igdt.ComputeScore(
			ce.Entropy, ce.Coverage, ch.Ease, ch.ValueType, w,
		)
		res.Characters = append(res.Characters, rep)
	}

	slices.SortFunc(res.Characters, func(a, b CharacterReport) int {
		return cmp.Or(
			cmp.Compare(a.Score, b.Score),
			strings.Compare(a.ShortName, b.ShortName),
			cmp.Compare(a.ID, b.ID),
		)
	})
	return res, nil
}

// RankAll implements Ranker.
func (r *ranker) RankAll(
	ctx context.Context,
	ds *dataset.Dataset,
	w igdt.Weights,
) ([]*Ranking, error) {
	if !ds.IsBuilt() {
		return nil, dataset.InvalidDataError("dataset is not built")
	}
	slugs := make([]string, len(ds.Piles))
	for i := range ds.Piles {
		slugs[i] = ds.Piles[i].Slug
	}
	slices.Sort(slugs)

	res := make([]*Ranking, len(slugs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.jobsNum)

	for i, slug := range slugs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rnk, err := r.Rank(ds, slug, nil, w)
			if err != nil {
				return err
			}
			res[i] = rnk
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

// candidateIDs returns ascending unique candidate species. All species
// of the pile are used when ids is empty.
func candidateIDs(
	ds *dataset.Dataset,
	pile *dataset.Pile,
	ids []int,
) ([]int, error) {
	if len(ids) == 0 {
		return ds.PileSpeciesIDs(pile), nil
	}
	res := slices.Clone(ids)
	slices.Sort(res)
	res = slices.Compact(res)
	for _, id := range res {
		if !ds.HasSpecies(pile, id) {
			return nil, dataset.SpeciesNotFoundError(id, pile.Slug)
		}
	}
	return res, nil
}
