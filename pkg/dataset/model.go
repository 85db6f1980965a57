// Package dataset holds the in-memory tables of an identification key:
// piles, species, characters, character values and the assignments of
// values to species. Tables are flat slices addressed by integer ids;
// Build creates the indexes once, after that the dataset is read-only and
// safe for concurrent use.
package dataset

// ValueType tells how values of a character are recorded.
type ValueType string

const (
	// Text characters have a closed set of labelled values.
	Text ValueType = "TEXT"
	// Length characters have numeric [min, max] ranges.
	Length ValueType = "LENGTH"
	// Ratio characters hold a single float. They are not ranked.
	Ratio ValueType = "RATIO"
)

// NA is the label of the explicit not-applicable value.
const NA = "NA"

// Species is a taxon that can be identified by a key.
type Species struct {
	ID             int    `yaml:"id"              toml:"id"`
	ScientificName string `yaml:"scientific_name" toml:"scientific_name"`
	// Canonical is the scientific name without authorship.
	Canonical string `yaml:"canonical,omitempty" toml:"canonical,omitempty"`
	Genus     string `yaml:"genus,omitempty"     toml:"genus,omitempty"`
	Family    string `yaml:"family,omitempty"    toml:"family,omitempty"`
}

// Character is an observable trait such as "leaf shape".
type Character struct {
	ID        int       `yaml:"id"         toml:"id"`
	ShortName string    `yaml:"short_name" toml:"short_name"`
	Name      string    `yaml:"name"       toml:"name"`
	ValueType ValueType `yaml:"value_type" toml:"value_type"`
	// Ease is the ease of observability rating of the character.
	Ease float64 `yaml:"ease_of_observability" toml:"ease_of_observability"`
	Unit string  `yaml:"unit,omitempty"        toml:"unit,omitempty"`
}

// CharacterValue is one value a character can take: a label for TEXT
// characters, a range for LENGTH characters or a float for RATIO ones.
//
// For LENGTH characters Min == Max == 0 is the not-applicable marker,
// while a nil bound means there is no usable range.
type CharacterValue struct {
	ID          int      `yaml:"id"                  toml:"id"`
	CharacterID int      `yaml:"character_id"        toml:"character_id"`
	ValueStr    string   `yaml:"value_str,omitempty" toml:"value_str,omitempty"`
	Min         *float64 `yaml:"min,omitempty"       toml:"min,omitempty"`
	Max         *float64 `yaml:"max,omitempty"       toml:"max,omitempty"`
	Flt         *float64 `yaml:"flt,omitempty"       toml:"flt,omitempty"`
}

// IsNA is true for the explicit not-applicable value.
func (v CharacterValue) IsNA(vt ValueType) bool {
	switch vt {
	case Length:
		return v.Min != nil && v.Max != nil && *v.Min == 0 && *v.Max == 0
	default:
		return v.ValueStr == NA
	}
}

// HasRange is true when both bounds of the value are known.
func (v CharacterValue) HasRange() bool {
	return v.Min != nil && v.Max != nil
}

// Assignment records that a species exhibits a character value.
type Assignment struct {
	SpeciesID int `yaml:"species_id" toml:"species_id"`
	ValueID   int `yaml:"value_id"   toml:"value_id"`
}

// Pile is one identification key: a curated set of species together with
// the character values used to tell them apart.
type Pile struct {
	ID         int    `yaml:"id"          toml:"id"`
	Slug       string `yaml:"slug"        toml:"slug"`
	Name       string `yaml:"name"        toml:"name"`
	SpeciesIDs []int  `yaml:"species_ids" toml:"species_ids"`
	ValueIDs   []int  `yaml:"value_ids"   toml:"value_ids"`
}

// Float returns a pointer to f. It helps building values in code and tests.
func Float(f float64) *float64 {
	return &f
}
