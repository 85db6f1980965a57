package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// generateDDL creates a CREATE TABLE statement from struct tags.
func generateDDL(model any, tableName string) string {
	v := reflect.ValueOf(model)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	t := v.Type()

	var columns []string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		dbTag := field.Tag.Get("db")
		ddlTag := field.Tag.Get("ddl")

		if dbTag != "" && ddlTag != "" {
			columns = append(columns, fmt.Sprintf("    %s %s", dbTag, ddlTag))
		}
	}

	return fmt.Sprintf("CREATE TABLE %s (\n%s\n);",
		tableName,
		strings.Join(columns, ",\n"))
}

// Columns returns column names of a model in field order.
func Columns(model any) []string {
	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	var res []string
	for i := 0; i < t.NumField(); i++ {
		if tag := t.Field(i).Tag.Get("db"); tag != "" {
			res = append(res, tag)
		}
	}
	return res
}

func (p Pile) TableDDL() string   { return generateDDL(p, p.TableName()) }
func (p Pile) IndexDDL() []string { return []string{} }
func (p Pile) TableName() string  { return "piles" }

func (s Species) TableDDL() string { return generateDDL(s, s.TableName()) }
func (s Species) IndexDDL() []string {
	return []string{
		"CREATE INDEX IF NOT EXISTS idx_species_canonical ON species(canonical);",
	}
}
func (s Species) TableName() string { return "species" }

func (ps PileSpecies) TableDDL() string {
	return generateDDL(ps, ps.TableName()) +
		"\nALTER TABLE pile_species ADD PRIMARY KEY (pile_id, species_id);"
}
func (ps PileSpecies) IndexDDL() []string {
	return []string{
		"CREATE INDEX IF NOT EXISTS idx_pile_species_species ON pile_species(species_id);",
	}
}
func (ps PileSpecies) TableName() string { return "pile_species" }

func (c Character) TableDDL() string { return generateDDL(c, c.TableName()) }
func (c Character) IndexDDL() []string {
	return []string{
		"CREATE INDEX IF NOT EXISTS idx_characters_short_name ON characters(short_name);",
	}
}
func (c Character) TableName() string { return "characters" }

func (cv CharacterValue) TableDDL() string   { return generateDDL(cv, cv.TableName()) }
func (cv CharacterValue) IndexDDL() []string { return []string{} }
func (cv CharacterValue) TableName() string  { return "character_values" }

func (pcv PileCharacterValue) TableDDL() string {
	return generateDDL(pcv, pcv.TableName()) +
		"\nALTER TABLE pile_character_values " +
		"ADD PRIMARY KEY (pile_id, character_value_id);"
}
func (pcv PileCharacterValue) IndexDDL() []string {
	return []string{
		"CREATE INDEX IF NOT EXISTS idx_pile_character_values_value " +
			"ON pile_character_values(character_value_id);",
	}
}
func (pcv PileCharacterValue) TableName() string { return "pile_character_values" }

func (tcv TaxonCharacterValue) TableDDL() string {
	return generateDDL(tcv, tcv.TableName()) +
		"\nALTER TABLE taxon_character_values " +
		"ADD PRIMARY KEY (taxon_id, character_value_id);"
}
func (tcv TaxonCharacterValue) IndexDDL() []string { return []string{} }
func (tcv TaxonCharacterValue) TableName() string  { return "taxon_character_values" }

func (p Parameter) TableDDL() string   { return generateDDL(p, p.TableName()) }
func (p Parameter) IndexDDL() []string { return []string{} }
func (p Parameter) TableName() string  { return "parameters" }
