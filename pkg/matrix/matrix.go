// Package matrix arranges character values of a pile for display.
// TEXT characters become a Y/n table of values by species, LENGTH
// characters become a set of horizontal bars on a common scale.
//
// This is a pure package - it does not modify its inputs.
package matrix

import (
	"slices"
	"strconv"

	"github.com/gnames/gnkey/pkg/dataset"
)

// HolderIndex returns ascending ids of species that hold a value.
// *dataset.Dataset satisfies it.
type HolderIndex interface {
	Holders(valueID int) []int
}

// Label renders a character value the way it appears in a table row.
func Label(vt dataset.ValueType, v dataset.CharacterValue) string {
	switch vt {
	case dataset.Text:
		return v.ValueStr
	case dataset.Length:
		if v.IsNA(vt) {
			return dataset.NA
		}
		if !v.HasRange() {
			return "NULL"
		}
		return formatFloat(*v.Min) + " - " + formatFloat(*v.Max)
	case dataset.Ratio:
		if v.Flt == nil {
			return "float NULL"
		}
		return "float " + formatFloat(*v.Flt)
	default:
		return "UNKNOWN VALUE TYPE"
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// candidates returns ascending unique ids and a set made of them.
func candidates(speciesIDs []int) ([]int, map[int]struct{}) {
	ids := append(make([]int, 0, len(speciesIDs)), speciesIDs...)
	slices.Sort(ids)
	ids = slices.Compact(ids)
	set := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return ids, set
}
