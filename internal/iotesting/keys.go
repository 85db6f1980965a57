package iotesting

import "github.com/gnames/gnkey/pkg/dataset"

// Ids used by ThreeSpeciesKey.
const (
	SpeciesA = 1
	SpeciesB = 2
	SpeciesC = 3

	FlowerColor = 10
	Red         = 101
	Blue        = 102

	LeafLength = 20
	Short      = 201
	Long       = 202
	NoRange    = 203

	PetalRatio = 30
	Half       = 301
)

// ThreeSpeciesKey returns a built dataset with pile "demo":
//
//	flower_color (TEXT):   red -> A, blue -> B, C has no value
//	leaf_length (LENGTH):  [1,2] -> A, [3,5] -> B and C, nil range -> none
//	petal_ratio (RATIO):   0.5 -> A
func ThreeSpeciesKey() *dataset.Dataset {
	ds := &dataset.Dataset{
		Species: []dataset.Species{
			{ID: SpeciesA, ScientificName: "Acer rubrum L.",
				Canonical: "Acer rubrum", Genus: "Acer", Family: "Sapindaceae"},
			{ID: SpeciesB, ScientificName: "Betula papyrifera Marshall",
				Canonical: "Betula papyrifera", Genus: "Betula",
				Family: "Betulaceae"},
			{ID: SpeciesC, ScientificName: "Carya ovata (Mill.) K.Koch",
				Canonical: "Carya ovata", Genus: "Carya", Family: "Juglandaceae"},
		},
		Characters: []dataset.Character{
			{ID: FlowerColor, ShortName: "flower_color", Name: "Flower color",
				ValueType: dataset.Text, Ease: 1},
			{ID: LeafLength, ShortName: "leaf_length", Name: "Leaf length",
				ValueType: dataset.Length, Ease: 2, Unit: "cm"},
			{ID: PetalRatio, ShortName: "petal_ratio", Name: "Petal ratio",
				ValueType: dataset.Ratio, Ease: 3},
		},
		Values: []dataset.CharacterValue{
			{ID: Red, CharacterID: FlowerColor, ValueStr: "red"},
			{ID: Blue, CharacterID: FlowerColor, ValueStr: "blue"},
			{ID: Short, CharacterID: LeafLength,
				Min: dataset.Float(1), Max: dataset.Float(2)},
			{ID: Long, CharacterID: LeafLength,
				Min: dataset.Float(3), Max: dataset.Float(5)},
			{ID: NoRange, CharacterID: LeafLength},
			{ID: Half, CharacterID: PetalRatio, Flt: dataset.Float(0.5)},
		},
		Assignments: []dataset.Assignment{
			{SpeciesID: SpeciesA, ValueID: Red},
			{SpeciesID: SpeciesB, ValueID: Blue},
			{SpeciesID: SpeciesA, ValueID: Short},
			{SpeciesID: SpeciesB, ValueID: Long},
			{SpeciesID: SpeciesC, ValueID: Long},
			{SpeciesID: SpeciesA, ValueID: Half},
		},
		Piles: []dataset.Pile{
			{
				ID:         1,
				Slug:       "demo",
				Name:       "Demo",
				SpeciesIDs: []int{SpeciesA, SpeciesB, SpeciesC},
				ValueIDs:   []int{Red, Blue, Short, Long, NoRange, Half},
			},
		},
	}
	if err := ds.Build(); err != nil {
		panic(err)
	}
	return ds
}

// TextKey returns a built dataset with pile "text" holding one TEXT
// character "habit" (id 1) and n species. values maps a label to the
// species that hold it. Value ids start at 100 in the order of labels.
func TextKey(n int, labels []string, values map[string][]int) *dataset.Dataset {
	ds := &dataset.Dataset{
		Characters: []dataset.Character{
			{ID: 1, ShortName: "habit", Name: "Habit",
				ValueType: dataset.Text, Ease: 1},
		},
	}
	pile := dataset.Pile{ID: 1, Slug: "text", Name: "Text"}
	for i := 1; i <= n; i++ {
		ds.Species = append(ds.Species, dataset.Species{ID: i})
		pile.SpeciesIDs = append(pile.SpeciesIDs, i)
	}
	for i, l := range labels {
		vid := 100 + i
		ds.Values = append(ds.Values, dataset.CharacterValue{
			ID: vid, CharacterID: 1, ValueStr: l,
		})
		pile.ValueIDs = append(pile.ValueIDs, vid)
		for _, sid := range values[l] {
			ds.Assignments = append(ds.Assignments,
				dataset.Assignment{SpeciesID: sid, ValueID: vid})
		}
	}
	ds.Piles = []dataset.Pile{pile}
	if err := ds.Build(); err != nil {
		panic(err)
	}
	return ds
}
