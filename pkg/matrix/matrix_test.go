package matrix_test

import (
	"testing"

	"github.com/gnames/gnkey/internal/iotesting"
	"github.com/gnames/gnkey/pkg/dataset"
	"github.com/gnames/gnkey/pkg/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabel(t *testing.T) {
	f := dataset.Float
	tests := []struct {
		msg string
		vt  dataset.ValueType
		v   dataset.CharacterValue
		res string
	}{
		{"text", dataset.Text, dataset.CharacterValue{ValueStr: "red"}, "red"},
		{"text na", dataset.Text, dataset.CharacterValue{ValueStr: "NA"}, "NA"},
		{"length", dataset.Length,
			dataset.CharacterValue{Min: f(1.5), Max: f(3)}, "1.5 - 3"},
		{"length na", dataset.Length,
			dataset.CharacterValue{Min: f(0), Max: f(0)}, "NA"},
		{"length nil max", dataset.Length,
			dataset.CharacterValue{Min: f(1)}, "NULL"},
		{"ratio", dataset.Ratio, dataset.CharacterValue{Flt: f(0.25)}, "float 0.25"},
		{"ratio nil", dataset.Ratio, dataset.CharacterValue{}, "float NULL"},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, matrix.Label(v.vt, v.v), v.msg)
	}
}

func TestTablefy(t *testing.T) {
	ds := iotesting.ThreeSpeciesKey()
	pile, ok := ds.PileBySlug("demo")
	require.True(t, ok)
	ch, ok := ds.CharacterByID(iotesting.FlowerColor)
	require.True(t, ok)

	tbl := matrix.Tablefy(*ch, ds.PileValues(pile, ch.ID), ds,
		[]int{iotesting.SpeciesC, iotesting.SpeciesA, iotesting.SpeciesB})

	assert.Equal(t,
		[]int{iotesting.SpeciesB, iotesting.SpeciesA, iotesting.SpeciesC},
		tbl.Species)
	require.Len(t, tbl.Rows, 3)

	assert.Equal(t, matrix.Row{
		ValueID: iotesting.Blue, Label: "blue", Count: 1,
		Cells: []string{"Y", "n", "n"},
	}, tbl.Rows[0])
	assert.Equal(t, matrix.Row{
		ValueID: iotesting.Red, Label: "red", Count: 1,
		Cells: []string{"n", "Y", "n"},
	}, tbl.Rows[1])
	assert.Equal(t, matrix.Row{
		Label: "NULL", Count: 1, Unknown: true,
		Cells: []string{"n", "n", "Y"},
	}, tbl.Rows[2])
}

func TestTablefyNA(t *testing.T) {
	ds := iotesting.TextKey(4, []string{"NA", "b", "a"}, map[string][]int{
		"NA": {4}, "b": {1, 2}, "a": {2},
	})
	pile, _ := ds.PileBySlug("text")
	ch, _ := ds.CharacterByID(1)

	tbl := matrix.Tablefy(*ch, ds.PileValues(pile, 1), ds, ds.PileSpeciesIDs(pile))

	labels := make([]string, len(tbl.Rows))
	for i, r := range tbl.Rows {
		labels[i] = r.Label
	}
	assert.Equal(t, []string{"a", "b", "NA", "NULL"}, labels)

	// 2: Y Y n n, 1: n Y n n, 4: n n Y n, 3: n n n Y
	assert.Equal(t, []int{2, 1, 4, 3}, tbl.Species)
	assert.Equal(t, []int{1, 2, 1, 1}, []int{
		tbl.Rows[0].Count, tbl.Rows[1].Count, tbl.Rows[2].Count, tbl.Rows[3].Count,
	})
}

func TestTablefyTies(t *testing.T) {
	ds := iotesting.TextKey(5, []string{"x"}, map[string][]int{
		"x": {5, 3, 1},
	})
	pile, _ := ds.PileBySlug("text")
	ch, _ := ds.CharacterByID(1)

	tbl := matrix.Tablefy(*ch, ds.PileValues(pile, 1), ds,
		[]int{5, 4, 3, 3, 2, 1})
	assert.Equal(t, []int{1, 3, 5, 2, 4}, tbl.Species)
	assert.Equal(t, 3, tbl.Rows[0].Count)
	assert.Equal(t, 2, tbl.Rows[1].Count)
}

func TestTablefyEmpty(t *testing.T) {
	ds := iotesting.ThreeSpeciesKey()
	ch, _ := ds.CharacterByID(iotesting.FlowerColor)

	tbl := matrix.Tablefy(*ch, nil, ds, nil)
	assert.Empty(t, tbl.Species)
	require.Len(t, tbl.Rows, 1)
	assert.True(t, tbl.Rows[0].Unknown)
	assert.Equal(t, 0, tbl.Rows[0].Count)
}

func TestGraphify(t *testing.T) {
	ds := iotesting.ThreeSpeciesKey()
	pile, _ := ds.PileBySlug("demo")
	all := ds.PileSpeciesIDs(pile)

	g := matrix.Graphify(ds.PileValues(pile, iotesting.LeafLength), ds, all, 500)
	assert.Equal(t, 1.0, g.VMin)
	assert.Equal(t, 5.0, g.VMax)
	assert.Equal(t, 125.0, g.Scale)
	assert.Equal(t, 500, g.Width)
	assert.Equal(t, []matrix.Bar{
		{ValueID: iotesting.Short, Offset: 0, Width: 125, Min: 1, Max: 2,
			Species: []int{iotesting.SpeciesA}},
		{ValueID: iotesting.Long, Offset: 250, Width: 250, Min: 3, Max: 5,
			Species: []int{iotesting.SpeciesB, iotesting.SpeciesC}},
	}, g.Bars)

	t.Run("subset of species", func(t *testing.T) {
		g := matrix.Graphify(ds.PileValues(pile, iotesting.LeafLength), ds,
			[]int{iotesting.SpeciesC}, 500)
		require.Len(t, g.Bars, 2)
		assert.Equal(t, []int{}, g.Bars[0].Species)
		assert.Equal(t, []int{iotesting.SpeciesC}, g.Bars[1].Species)
	})
}

func TestGraphifyEdgeCases(t *testing.T) {
	f := dataset.Float
	ds := iotesting.ThreeSpeciesKey()

	t.Run("collapsed range", func(t *testing.T) {
		vals := []dataset.CharacterValue{
			{ID: 2, Min: f(2), Max: f(2)},
			{ID: 1, Min: f(2), Max: f(2)},
		}
		g := matrix.Graphify(vals, ds, nil, 500)
		assert.Equal(t, 0.0, g.Scale)
		require.Len(t, g.Bars, 2)
		for _, b := range g.Bars {
			assert.Equal(t, 0, b.Offset)
			assert.Equal(t, 0, b.Width)
		}
		assert.Equal(t, 1, g.Bars[0].ValueID)
	})

	t.Run("no usable values", func(t *testing.T) {
		vals := []dataset.CharacterValue{{ID: 1, Min: f(1)}, {ID: 2}}
		g := matrix.Graphify(vals, ds, nil, 500)
		assert.Empty(t, g.Bars)
		assert.Equal(t, 0.0, g.VMin)
		assert.Equal(t, 0.0, g.VMax)
	})

	t.Run("rounding", func(t *testing.T) {
		vals := []dataset.CharacterValue{
			{ID: 2, Min: f(1), Max: f(2)},
			{ID: 1, Min: f(0), Max: f(1)},
		}
		g := matrix.Graphify(vals, ds, nil, 5)
		require.Len(t, g.Bars, 2)
		assert.Equal(t, 0, g.Bars[0].Offset)
		assert.Equal(t, 3, g.Bars[0].Width)
		assert.Equal(t, 3, g.Bars[1].Offset)
		assert.Equal(t, 2, g.Bars[1].Width)
	})

	t.Run("bars stay inside width", func(t *testing.T) {
		vals := []dataset.CharacterValue{
			{ID: 1, Min: f(0.3), Max: f(7.1)},
			{ID: 2, Min: f(-2), Max: f(1)},
			{ID: 3, Min: f(0), Max: f(0)},
			{ID: 4, Min: f(5), Max: f(12.25)},
		}
		g := matrix.Graphify(vals, ds, nil, 333)
		for _, b := range g.Bars {
			assert.GreaterOrEqual(t, b.Offset, 0)
			assert.GreaterOrEqual(t, b.Width, 0)
			assert.LessOrEqual(t, b.Offset+b.Width, 333)
		}
		ids := make([]int, len(g.Bars))
		for i, b := range g.Bars {
			ids[i] = b.ValueID
		}
		assert.Equal(t, []int{2, 3, 1, 4}, ids)
	})
}
