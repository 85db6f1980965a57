package matrix

import (
	"cmp"
	"math"
	"slices"

	"github.com/gnames/gnkey/pkg/dataset"
)

// Graph places LENGTH value ranges on a common horizontal scale.
type Graph struct {
	VMin float64 `json:"vmin"`
	VMax float64 `json:"vmax"`
	// Scale is the number of graph units per unit of measure.
	Scale float64 `json:"scale"`
	Width int     `json:"width"`
	Bars  []Bar   `json:"bars"`
}

// Bar is a value range drawn from Offset to Offset+Width.
type Bar struct {
	ValueID int     `json:"valueId"`
	Offset  int     `json:"offset"`
	Width   int     `json:"width"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	// Species are candidate species holding the value, ascending.
	Species []int `json:"species"`
}

// Graphify scales value ranges into [0, width]. Values without both bounds
// are dropped. When all ranges collapse into one point the scale is zero
// and every bar has zero offset and width.
func Graphify(
	values []dataset.CharacterValue,
	holders HolderIndex,
	speciesIDs []int,
	width int,
) Graph {
	res := Graph{Width: width, Bars: []Bar{}}
	vals := make([]dataset.CharacterValue, 0, len(values))
	for _, v := range values {
		if v.HasRange() {
			vals = append(vals, v)
		}
	}
	if len(vals) == 0 {
		return res
	}

	res.VMin, res.VMax = *vals[0].Min, *vals[0].Max
	for _, v := range vals[1:] {
		res.VMin = min(res.VMin, *v.Min)
		res.VMax = max(res.VMax, *v.Max)
	}
	if res.VMax > res.VMin {
		res.Scale = float64(width) / (res.VMax - res.VMin)
	}

	slices.SortFunc(vals, func(a, b dataset.CharacterValue) int {
		return cmp.Or(
			cmp.Compare(*a.Min, *b.Min),
			cmp.Compare(*a.Max, *b.Max),
			cmp.Compare(a.ID, b.ID),
		)
	})

	_, set := candidates(speciesIDs)
	for _, v := range vals {
		x0 := int(math.Round(res.Scale * (*v.Min - res.VMin)))
		x1 := int(math.Round(res.Scale * (*v.Max - res.VMin)))
		species := []int{}
		for _, sid := range holders.Holders(v.ID) {
			if _, ok := set[sid]; ok {
				species = append(species, sid)
			}
		}
		res.Bars = append(res.Bars, Bar{
			ValueID: v.ID,
			Offset:  x0,
			Width:   x1 - x0,
			Min:     *v.Min,
			Max:     *v.Max,
			Species: species,
		})
	}
	return res
}
