package ranking_test

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnkey/internal/iotesting"
	"github.com/gnames/gnkey/pkg/config"
	"github.com/gnames/gnkey/pkg/dataset"
	"github.com/gnames/gnkey/pkg/errcode"
	"github.com/gnames/gnkey/pkg/igdt"
	"github.com/gnames/gnkey/pkg/ranking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func defaultWeights() igdt.Weights {
	return igdt.NewWeights(config.New().Rank)
}

func TestRank(t *testing.T) {
	ds := iotesting.ThreeSpeciesKey()
	r := ranking.New()

	res, err := r.Rank(ds, "demo", nil, defaultWeights())
	require.Nil(t, err)

	assert.Equal(t, "demo", res.Pile)
	assert.Equal(t, "Demo", res.PileName)
	assert.Equal(t, []int{1, 2, 3}, res.Species)
	require.Len(t, res.Characters, 2)

	leaf := res.Characters[0]
	assert.Equal(t, "leaf_length", leaf.ShortName)
	assert.Equal(t, dataset.Length, leaf.ValueType)
	assert.Equal(t, "cm", leaf.Unit)
	assert.Equal(t, 3, leaf.ValuesNum)
	assert.Nil(t, leaf.Table)
	require.NotNil(t, leaf.Graph)
	assert.Len(t, leaf.Graph.Bars, 2)
	third := 1.0 / 3.0
	split := -(third*math.Log2(third) + 2*third*math.Log2(2*third))
	assert.InDelta(t, (split+1.0+0.5*2)*0.7, leaf.Score, eps)

	color := res.Characters[1]
	assert.Equal(t, "flower_color", color.ShortName)
	assert.Equal(t, 2, color.ValuesNum)
	assert.Nil(t, color.Graph)
	require.NotNil(t, color.Table)
	assert.Len(t, color.Table.Rows, 3)
	assert.InDelta(t, math.Log2(3), color.Entropy, eps)
	assert.InDelta(t, 2.0/3.0, color.Coverage, eps)
	assert.InDelta(t, math.Log2(3)+2.0/3.0+0.5, color.Score, eps)

	assert.Equal(t, []ranking.Skipped{{
		ID:        iotesting.PetalRatio,
		ShortName: "petal_ratio",
		ValueType: dataset.Ratio,
		Reason:    "RATIO characters are not ranked",
	}}, res.Skipped)
}

func TestRankOrderDependsOnWeights(t *testing.T) {
	ds := iotesting.ThreeSpeciesKey()
	r := ranking.New()

	w := defaultWeights()
	w.LengthWeight = 10
	res, err := r.Rank(ds, "demo", nil, w)
	require.Nil(t, err)
	require.Len(t, res.Characters, 2)
	assert.Equal(t, "flower_color", res.Characters[0].ShortName)
	assert.Equal(t, "leaf_length", res.Characters[1].ShortName)
	assert.Equal(t, w, res.Weights)
}

func TestRankSpecies(t *testing.T) {
	ds := iotesting.ThreeSpeciesKey()
	r := ranking.New()
	w := defaultWeights()

	res1, err := r.Rank(ds, "demo", []int{3, 2, 3}, w)
	require.Nil(t, err)
	assert.Equal(t, []int{2, 3}, res1.Species)

	res2, err := r.Rank(ds, "demo", []int{2, 3}, w)
	require.Nil(t, err)
	assert.Equal(t, res1, res2)
	for _, c := range res1.Characters {
		if c.Table != nil {
			assert.Len(t, c.Table.Species, 2)
		}
	}
}

func TestRankErrors(t *testing.T) {
	ds := iotesting.ThreeSpeciesKey()
	r := ranking.New()
	w := defaultWeights()

	tests := []struct {
		msg     string
		slug    string
		species []int
		code    gn.ErrorCode
	}{
		{"unknown pile", "nope", nil, errcode.PileNotFoundError},
		{"unknown species", "demo", []int{1, 99}, errcode.SpeciesNotFoundError},
	}

	for _, v := range tests {
		res, err := r.Rank(ds, v.slug, v.species, w)
		assert.Nil(t, res, v.msg)
		require.NotNil(t, err, v.msg)
		var gnErr *gn.Error
		require.True(t, errors.As(err, &gnErr), v.msg)
		assert.Equal(t, v.code, gnErr.Code, v.msg)
	}

	_, err := r.Rank(&dataset.Dataset{}, "demo", nil, w)
	assert.NotNil(t, err)
}

func TestRankTies(t *testing.T) {
	ds := &dataset.Dataset{
		Species: []dataset.Species{{ID: 1}, {ID: 2}},
		Characters: []dataset.Character{
			{ID: 7, ShortName: "stem", ValueType: dataset.Text, Ease: 1},
			{ID: 5, ShortName: "bark", ValueType: dataset.Text, Ease: 1},
			{ID: 6, ShortName: "bark", ValueType: dataset.Text, Ease: 1},
		},
		Values: []dataset.CharacterValue{
			{ID: 70, CharacterID: 7, ValueStr: "smooth"},
			{ID: 50, CharacterID: 5, ValueStr: "smooth"},
			{ID: 60, CharacterID: 6, ValueStr: "smooth"},
		},
		Assignments: []dataset.Assignment{
			{SpeciesID: 1, ValueID: 70},
			{SpeciesID: 1, ValueID: 50},
			{SpeciesID: 1, ValueID: 60},
		},
		Piles: []dataset.Pile{{
			ID: 1, Slug: "ties", SpeciesIDs: []int{1, 2},
			ValueIDs: []int{70, 50, 60},
		}},
	}
	require.Nil(t, ds.Build())

	res, err := ranking.New().Rank(ds, "ties", nil, defaultWeights())
	require.Nil(t, err)
	ids := make([]int, len(res.Characters))
	for i, c := range res.Characters {
		ids[i] = c.ID
	}
	assert.Equal(t, []int{5, 6, 7}, ids)
}

func TestRankDeterministicJSON(t *testing.T) {
	ds := iotesting.ThreeSpeciesKey()
	r := ranking.New(ranking.OptWidth(300))
	w := defaultWeights()

	res, err := r.Rank(ds, "demo", nil, w)
	require.Nil(t, err)
	first, err := json.Marshal(res)
	require.Nil(t, err)

	for range 10 {
		res, err := r.Rank(ds, "demo", nil, w)
		require.Nil(t, err)
		out, err := json.Marshal(res)
		require.Nil(t, err)
		assert.Equal(t, string(first), string(out))
	}
}

func twoPileKey(t *testing.T) *dataset.Dataset {
	base := iotesting.ThreeSpeciesKey()
	ds := &dataset.Dataset{
		Species:     base.Species,
		Characters:  base.Characters,
		Values:      base.Values,
		Assignments: base.Assignments,
		Piles: []dataset.Pile{
			base.Piles[0],
			{
				ID: 2, Slug: "alpha", Name: "Alpha",
				SpeciesIDs: []int{iotesting.SpeciesA, iotesting.SpeciesB},
				ValueIDs:   []int{iotesting.Red, iotesting.Blue},
			},
		},
	}
	require.Nil(t, ds.Build())
	return ds
}

func TestRankAll(t *testing.T) {
	ds := twoPileKey(t)
	w := defaultWeights()

	for _, jobs := range []int{1, 4} {
		r := ranking.New(ranking.OptJobsNumber(jobs))
		res, err := r.RankAll(context.Background(), ds, w)
		require.Nil(t, err)
		require.Len(t, res, 2)
		assert.Equal(t, "alpha", res[0].Pile)
		assert.Equal(t, "demo", res[1].Pile)

		assert.Len(t, res[0].Characters, 1)
		assert.InDelta(t, 1.0, res[0].Characters[0].Entropy, eps)

		demo, err := r.Rank(ds, "demo", nil, w)
		require.Nil(t, err)
		assert.Equal(t, demo, res[1])
	}
}

func TestRankAllCanceled(t *testing.T) {
	ds := twoPileKey(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := ranking.New().RankAll(ctx, ds, defaultWeights())
	assert.Nil(t, res)
	assert.ErrorIs(t, err, context.Canceled)
}
