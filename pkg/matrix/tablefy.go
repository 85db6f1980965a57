package matrix

import (
	"cmp"
	"slices"
	"strings"

	"github.com/gnames/gnkey/pkg/dataset"
)

const (
	yes = "Y"
	no  = "n"

	unknownLabel = "NULL"
)

// Table shows which candidate species hold which values of a character.
type Table struct {
	// Species are species ids in column order.
	Species []int `json:"species"`
	// Rows has one row per value and a trailing row for species that have
	// no value at all.
	Rows []Row `json:"rows"`
}

// Row is one value of a character across all table columns.
type Row struct {
	// ValueID is zero for the trailing unknown row.
	ValueID int    `json:"valueId"`
	Label   string `json:"label"`
	// Count is the number of "Y" cells in the row.
	Count   int      `json:"count"`
	Cells   []string `json:"cells"`
	Unknown bool     `json:"unknown,omitempty"`
}

// Tablefy builds a Y/n matrix of values of a character by candidate
// species. Values are sorted by their string with the first NA value moved
// to the end, and a trailing unknown row marks species without any value.
// Columns are ordered by their Y/n vectors, "Y" first; species with equal
// vectors stay in ascending id order.
func Tablefy(
	ch dataset.Character,
	values []dataset.CharacterValue,
	holders HolderIndex,
	speciesIDs []int,
) Table {
	ids, set := candidates(speciesIDs)
	vals := sortValues(ch.ValueType, values)

	cols := make(map[int][]string, len(ids))
	for _, id := range ids {
		cols[id] = make([]string, len(vals)+1)
		for i := range cols[id] {
			cols[id][i] = no
		}
	}

	for i, v := range vals {
		for _, sid := range holders.Holders(v.ID) {
			if _, ok := set[sid]; ok {
				cols[sid][i] = yes
			}
		}
	}
	last := len(vals)
	for _, col := range cols {
		if !slices.Contains(col[:last], yes) {
			col[last] = yes
		}
	}

	order := slices.Clone(ids)
	slices.SortStableFunc(order, func(a, b int) int {
		return slices.Compare(cols[a], cols[b])
	})

	rows := make([]Row, 0, len(vals)+1)
	for i := 0; i <= last; i++ {
		row := Row{Cells: make([]string, len(order))}
		if i < last {
			row.ValueID = vals[i].ID
			row.Label = Label(ch.ValueType, vals[i])
		} else {
			row.Label = unknownLabel
			row.Unknown = true
		}
		for j, sid := range order {
			row.Cells[j] = cols[sid][i]
			if row.Cells[j] == yes {
				row.Count++
			}
		}
		rows = append(rows, row)
	}

	return Table{Species: order, Rows: rows}
}

// sortValues orders values by their string, ties by id, and moves the
// first NA value to the end.
func sortValues(
	vt dataset.ValueType,
	values []dataset.CharacterValue,
) []dataset.CharacterValue {
	res := slices.Clone(values)
	slices.SortFunc(res, func(a, b dataset.CharacterValue) int {
		return cmp.Or(
			strings.Compare(a.ValueStr, b.ValueStr),
			cmp.Compare(a.ID, b.ID),
		)
	})
	for i, v := range res {
		if v.IsNA(vt) {
			res = append(res[:i:i], res[i+1:]...)
			res = append(res, v)
			break
		}
	}
	return res
}
