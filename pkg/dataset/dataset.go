package dataset

import (
	"fmt"
	"math"
	"slices"
)

// Dataset contains all tables of one or more identification keys.
// Fill the tables, call Build, and use the accessors afterwards.
type Dataset struct {
	Piles       []Pile           `yaml:"piles"       toml:"piles"`
	Species     []Species        `yaml:"species"     toml:"species"`
	Characters  []Character      `yaml:"characters"  toml:"characters"`
	Values      []CharacterValue `yaml:"values"      toml:"values"`
	Assignments []Assignment     `yaml:"assignments" toml:"assignments"`

	idx *index
}

// index maps ids to positions in the flat tables.
type index struct {
	piles      map[string]int
	species    map[int]int
	characters map[int]int
	values     map[int]int

	// holders maps a value id to ascending ids of species holding it.
	holders map[int][]int

	// pileSpecies maps a pile id to the set of its species.
	pileSpecies map[int]map[int]struct{}
	// pileChars maps a pile id to ascending ids of its characters.
	pileChars map[int][]int
	// pileValues maps pile id and character id to ascending value ids.
	pileValues map[int]map[int][]int
}

// Build validates references between tables and creates lookup indexes.
// It must be called once before any accessor is used. References to
// missing records produce NotFound errors.
func (d *Dataset) Build() error {
	idx := &index{
		piles:       make(map[string]int, len(d.Piles)),
		species:     make(map[int]int, len(d.Species)),
		characters:  make(map[int]int, len(d.Characters)),
		values:      make(map[int]int, len(d.Values)),
		holders:     make(map[int][]int),
		pileSpecies: make(map[int]map[int]struct{}, len(d.Piles)),
		pileChars:   make(map[int][]int, len(d.Piles)),
		pileValues:  make(map[int]map[int][]int, len(d.Piles)),
	}

	for i, sp := range d.Species {
		if _, ok := idx.species[sp.ID]; ok {
			return InvalidDataError(fmt.Sprintf("duplicate species id %d", sp.ID))
		}
		idx.species[sp.ID] = i
	}

	for i, ch := range d.Characters {
		if _, ok := idx.characters[ch.ID]; ok {
			return InvalidDataError(
				fmt.Sprintf("duplicate character id %d", ch.ID),
			)
		}
		switch ch.ValueType {
		case Text, Length, Ratio:
		default:
			return InvalidDataError(
				fmt.Sprintf("character %q has unknown value type %q",
					ch.ShortName, ch.ValueType),
			)
		}
		idx.characters[ch.ID] = i
	}

	for i, v := range d.Values {
		if _, ok := idx.values[v.ID]; ok {
			return InvalidDataError(fmt.Sprintf("duplicate value id %d", v.ID))
		}
		ci, ok := idx.characters[v.CharacterID]
		if !ok {
			return CharacterNotFoundError(v.CharacterID)
		}
		if !finite(v.Min) || !finite(v.Max) || !finite(v.Flt) {
			return InvalidDataError(
				fmt.Sprintf("value %d has a non-finite number", v.ID),
			)
		}
		if d.Characters[ci].ValueType == Length && v.HasRange() && *v.Min > *v.Max {
			return InvalidDataError(
				fmt.Sprintf("value %d has min %v greater than max %v",
					v.ID, *v.Min, *v.Max),
			)
		}
		idx.values[v.ID] = i
	}

	seen := make(map[Assignment]struct{}, len(d.Assignments))
	for _, a := range d.Assignments {
		if _, ok := idx.species[a.SpeciesID]; !ok {
			return SpeciesNotFoundError(a.SpeciesID, "")
		}
		if _, ok := idx.values[a.ValueID]; !ok {
			return ValueNotFoundError(a.ValueID)
		}
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		idx.holders[a.ValueID] = append(idx.holders[a.ValueID], a.SpeciesID)
	}
	for _, ids := range idx.holders {
		slices.Sort(ids)
	}

	for i, p := range d.Piles {
		if _, ok := idx.piles[p.Slug]; ok {
			return InvalidDataError(fmt.Sprintf("duplicate pile slug %q", p.Slug))
		}
		if _, ok := idx.pileSpecies[p.ID]; ok {
			return InvalidDataError(fmt.Sprintf("duplicate pile id %d", p.ID))
		}
		idx.piles[p.Slug] = i

		set := make(map[int]struct{}, len(p.SpeciesIDs))
		for _, id := range p.SpeciesIDs {
			if _, ok := idx.species[id]; !ok {
				return SpeciesNotFoundError(id, p.Slug)
			}
			set[id] = struct{}{}
		}
		idx.pileSpecies[p.ID] = set

		byChar := make(map[int][]int)
		for _, vid := range p.ValueIDs {
			vi, ok := idx.values[vid]
			if !ok {
				return ValueNotFoundError(vid)
			}
			cid := d.Values[vi].CharacterID
			if slices.Contains(byChar[cid], vid) {
				continue
			}
			byChar[cid] = append(byChar[cid], vid)
		}
		chars := make([]int, 0, len(byChar))
		for cid, vids := range byChar {
			slices.Sort(vids)
			chars = append(chars, cid)
		}
		slices.Sort(chars)
		idx.pileChars[p.ID] = chars
		idx.pileValues[p.ID] = byChar
	}

	d.idx = idx
	return nil
}

// IsBuilt is true after a successful Build.
func (d *Dataset) IsBuilt() bool {
	return d.idx != nil
}

// PileBySlug finds a pile by its slug.
func (d *Dataset) PileBySlug(slug string) (*Pile, bool) {
	i, ok := d.idx.piles[slug]
	if !ok {
		return nil, false
	}
	return &d.Piles[i], true
}

// SpeciesByID finds a species by its id.
func (d *Dataset) SpeciesByID(id int) (*Species, bool) {
	i, ok := d.idx.species[id]
	if !ok {
		return nil, false
	}
	return &d.Species[i], true
}

// CharacterByID finds a character by its id.
func (d *Dataset) CharacterByID(id int) (*Character, bool) {
	i, ok := d.idx.characters[id]
	if !ok {
		return nil, false
	}
	return &d.Characters[i], true
}

// ValueByID finds a character value by its id.
func (d *Dataset) ValueByID(id int) (*CharacterValue, bool) {
	i, ok := d.idx.values[id]
	if !ok {
		return nil, false
	}
	return &d.Values[i], true
}

// Holders returns ascending ids of species that hold the value.
// The returned slice must not be modified.
func (d *Dataset) Holders(valueID int) []int {
	return d.idx.holders[valueID]
}

// HasSpecies tells if a species belongs to the pile.
func (d *Dataset) HasSpecies(p *Pile, speciesID int) bool {
	_, ok := d.idx.pileSpecies[p.ID][speciesID]
	return ok
}

// PileSpeciesIDs returns ascending, de-duplicated species ids of the pile.
func (d *Dataset) PileSpeciesIDs(p *Pile) []int {
	res := append(make([]int, 0, len(p.SpeciesIDs)), p.SpeciesIDs...)
	slices.Sort(res)
	return slices.Compact(res)
}

// PileCharacterIDs returns ascending ids of characters that have at least
// one value in the pile. The returned slice must not be modified.
func (d *Dataset) PileCharacterIDs(p *Pile) []int {
	return d.idx.pileChars[p.ID]
}

// PileValues returns the values of a character that belong to the pile,
// ordered by id.
func (d *Dataset) PileValues(p *Pile, characterID int) []CharacterValue {
	vids := d.idx.pileValues[p.ID][characterID]
	res := make([]CharacterValue, 0, len(vids))
	for _, vid := range vids {
		res = append(res, d.Values[d.idx.values[vid]])
	}
	return res
}

// finite is true for a missing number or one that is neither NaN nor
// infinite.
func finite(f *float64) bool {
	return f == nil || (!math.IsNaN(*f) && !math.IsInf(*f, 0))
}
