package iokeyfile

import (
	"database/sql"
	"os"

	"github.com/gnames/gnkey/pkg/dataset"
	_ "modernc.org/sqlite"
)

// readSQLite reads key tables from a SQLite archive.
func readSQLite(path string) (*dataset.Dataset, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, ReadFileError(path, err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, DecodeError(SQLite, err)
	}
	defer db.Close()

	ds := &dataset.Dataset{}
	readers := []func(*sql.DB, *dataset.Dataset) error{
		readPiles,
		readSpecies,
		readCharacters,
		readValues,
		readAssignments,
		readPileMembers,
	}
	for _, fn := range readers {
		if err = fn(db, ds); err != nil {
			return nil, DecodeError(SQLite, err)
		}
	}
	return ds, nil
}

func readPiles(db *sql.DB, ds *dataset.Dataset) error {
	rows, err := db.Query(`SELECT id, slug, COALESCE(name, '')
		FROM piles ORDER BY id`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var p dataset.Pile
		if err = rows.Scan(&p.ID, &p.Slug, &p.Name); err != nil {
			return err
		}
		ds.Piles = append(ds.Piles, p)
	}
	return rows.Err()
}

func readSpecies(db *sql.DB, ds *dataset.Dataset) error {
	rows, err := db.Query(`SELECT id, scientific_name,
		COALESCE(canonical, ''), COALESCE(genus, ''), COALESCE(family, '')
		FROM species ORDER BY id`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var s dataset.Species
		err = rows.Scan(&s.ID, &s.ScientificName, &s.Canonical, &s.Genus, &s.Family)
		if err != nil {
			return err
		}
		ds.Species = append(ds.Species, s)
	}
	return rows.Err()
}

func readCharacters(db *sql.DB, ds *dataset.Dataset) error {
	rows, err := db.Query(`SELECT id, short_name, COALESCE(name, ''),
		value_type, COALESCE(ease_of_observability, 0), COALESCE(unit, '')
		FROM characters ORDER BY id`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var c dataset.Character
		var vt string
		err = rows.Scan(&c.ID, &c.ShortName, &c.Name, &vt, &c.Ease, &c.Unit)
		if err != nil {
			return err
		}
		c.ValueType = dataset.ValueType(vt)
		ds.Characters = append(ds.Characters, c)
	}
	return rows.Err()
}

func readValues(db *sql.DB, ds *dataset.Dataset) error {
	rows, err := db.Query(`SELECT id, character_id, COALESCE(value_str, ''),
		value_min, value_max, value_flt
		FROM character_values ORDER BY id`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var v dataset.CharacterValue
		var vmin, vmax, flt sql.NullFloat64
		err = rows.Scan(&v.ID, &v.CharacterID, &v.ValueStr, &vmin, &vmax, &flt)
		if err != nil {
			return err
		}
		v.Min, v.Max, v.Flt = nullFloat(vmin), nullFloat(vmax), nullFloat(flt)
		ds.Values = append(ds.Values, v)
	}
	return rows.Err()
}

func readAssignments(db *sql.DB, ds *dataset.Dataset) error {
	rows, err := db.Query(`SELECT taxon_id, character_value_id
		FROM taxon_character_values ORDER BY taxon_id, character_value_id`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var a dataset.Assignment
		if err = rows.Scan(&a.SpeciesID, &a.ValueID); err != nil {
			return err
		}
		ds.Assignments = append(ds.Assignments, a)
	}
	return rows.Err()
}

// readPileMembers fills species and value ids of piles from join tables.
func readPileMembers(db *sql.DB, ds *dataset.Dataset) error {
	idx := make(map[int]*dataset.Pile, len(ds.Piles))
	for i := range ds.Piles {
		idx[ds.Piles[i].ID] = &ds.Piles[i]
	}

	joins := []struct {
		query string
		add   func(p *dataset.Pile, id int)
	}{
		{
			`SELECT pile_id, species_id FROM pile_species
			ORDER BY pile_id, species_id`,
			func(p *dataset.Pile, id int) { p.SpeciesIDs = append(p.SpeciesIDs, id) },
		},
		{
			`SELECT pile_id, character_value_id FROM pile_character_values
			ORDER BY pile_id, character_value_id`,
			func(p *dataset.Pile, id int) { p.ValueIDs = append(p.ValueIDs, id) },
		},
	}

	for _, j := range joins {
		if err := readJoin(db, j.query, idx, j.add); err != nil {
			return err
		}
	}
	return nil
}

func readJoin(
	db *sql.DB,
	query string,
	idx map[int]*dataset.Pile,
	add func(*dataset.Pile, int),
) error {
	rows, err := db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var pileID, id int
		if err = rows.Scan(&pileID, &id); err != nil {
			return err
		}
		if p, ok := idx[pileID]; ok {
			add(p, id)
		}
	}
	return rows.Err()
}

func nullFloat(f sql.NullFloat64) *float64 {
	if !f.Valid {
		return nil
	}
	return dataset.Float(f.Float64)
}
