package iokeyfile_test

import (
	"database/sql"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnkey/internal/iokeyfile"
	"github.com/gnames/gnkey/internal/iotesting"
	"github.com/gnames/gnkey/pkg/dataset"
	"github.com/gnames/gnkey/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func assertSameKey(t *testing.T, want, got *dataset.Dataset) {
	t.Helper()
	assert.True(t, got.IsBuilt())
	assert.Equal(t, want.Piles, got.Piles)
	assert.Equal(t, want.Species, got.Species)
	assert.Equal(t, want.Characters, got.Characters)
	assert.Equal(t, want.Values, got.Values)
	assert.ElementsMatch(t, want.Assignments, got.Assignments)
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		res  iokeyfile.Format
	}{
		{"key.yaml", iokeyfile.YAML},
		{"key.YML", iokeyfile.YAML},
		{"dir/key.toml", iokeyfile.TOML},
		{"key.sqlite", iokeyfile.SQLite},
		{"key.db", iokeyfile.SQLite},
		{"key.json", iokeyfile.UnknownFormat},
		{"key", iokeyfile.UnknownFormat},
	}
	for _, v := range tests {
		assert.Equal(t, v.res, iokeyfile.FormatFromPath(v.path), v.path)
	}
	assert.Equal(t, "toml", iokeyfile.TOML.String())
}

func TestReadYAMLAndTOML(t *testing.T) {
	want := iotesting.ThreeSpeciesKey()
	for _, name := range []string{"demo.yaml", "demo.toml"} {
		ds, err := iokeyfile.Read(filepath.Join("testdata", name))
		require.NoError(t, err, name)
		assertSameKey(t, want, ds)
	}
}

func TestReadSQLite(t *testing.T) {
	want := iotesting.ThreeSpeciesKey()
	path := filepath.Join(t.TempDir(), "demo.sqlite")
	writeSQLite(t, path, want)

	ds, err := iokeyfile.Read(path)
	require.NoError(t, err)
	assertSameKey(t, want, ds)
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		msg  string
		path string
		code gn.ErrorCode
	}{
		{"unknown extension", "testdata/demo.json", errcode.KeyFileFormatError},
		{"missing file", "testdata/nope.yaml", errcode.ReadFileError},
		{"missing sqlite", "testdata/nope.sqlite", errcode.ReadFileError},
		{"malformed", "testdata/broken.yaml", errcode.KeyFileDecodeError},
		{"bad reference", "testdata/missing_species.yaml",
			errcode.SpeciesNotFoundError},
	}

	for _, v := range tests {
		ds, err := iokeyfile.Read(v.path)
		assert.Nil(t, ds, v.msg)
		var gnErr *gn.Error
		require.True(t, errors.As(err, &gnErr), v.msg)
		assert.Equal(t, v.code, gnErr.Code, v.msg)
	}
}

func TestDecodeUnknownField(t *testing.T) {
	doc := "species:\n  - id: 1\n    colour: red\n"
	_, err := iokeyfile.Decode(strings.NewReader(doc), iokeyfile.YAML)
	assert.Error(t, err)
}

func TestDecodeEmpty(t *testing.T) {
	ds, err := iokeyfile.Decode(strings.NewReader(""), iokeyfile.YAML)
	require.NoError(t, err)
	require.NoError(t, ds.Build())
	assert.Empty(t, ds.Piles)
}

func writeSQLite(t *testing.T, path string, ds *dataset.Dataset) {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	ddl := []string{
		`CREATE TABLE piles (id INTEGER PRIMARY KEY, slug TEXT, name TEXT)`,
		`CREATE TABLE species (id INTEGER PRIMARY KEY, scientific_name TEXT,
			canonical TEXT, genus TEXT, family TEXT)`,
		`CREATE TABLE pile_species (pile_id INTEGER, species_id INTEGER)`,
		`CREATE TABLE characters (id INTEGER PRIMARY KEY, short_name TEXT,
			name TEXT, value_type TEXT, ease_of_observability REAL, unit TEXT)`,
		`CREATE TABLE character_values (id INTEGER PRIMARY KEY,
			character_id INTEGER, value_str TEXT, value_min REAL,
			value_max REAL, value_flt REAL)`,
		`CREATE TABLE pile_character_values (pile_id INTEGER,
			character_value_id INTEGER)`,
		`CREATE TABLE taxon_character_values (taxon_id INTEGER,
			character_value_id INTEGER)`,
	}
	for _, q := range ddl {
		_, err = db.Exec(q)
		require.NoError(t, err)
	}

	exec := func(q string, args ...any) {
		_, err := db.Exec(q, args...)
		require.NoError(t, err)
	}
	for _, p := range ds.Piles {
		exec(`INSERT INTO piles VALUES (?, ?, ?)`, p.ID, p.Slug, p.Name)
		for _, id := range p.SpeciesIDs {
			exec(`INSERT INTO pile_species VALUES (?, ?)`, p.ID, id)
		}
		for _, id := range p.ValueIDs {
			exec(`INSERT INTO pile_character_values VALUES (?, ?)`, p.ID, id)
		}
	}
	for _, s := range ds.Species {
		exec(`INSERT INTO species VALUES (?, ?, ?, ?, ?)`,
			s.ID, s.ScientificName, s.Canonical, s.Genus, s.Family)
	}
	for _, c := range ds.Characters {
		exec(`INSERT INTO characters VALUES (?, ?, ?, ?, ?, ?)`,
			c.ID, c.ShortName, c.Name, string(c.ValueType), c.Ease, c.Unit)
	}
	for _, v := range ds.Values {
		var valueStr any
		if v.ValueStr != "" {
			valueStr = v.ValueStr
		}
		exec(`INSERT INTO character_values VALUES (?, ?, ?, ?, ?, ?)`,
			v.ID, v.CharacterID, valueStr, ptr(v.Min), ptr(v.Max), ptr(v.Flt))
	}
	for _, a := range ds.Assignments {
		exec(`INSERT INTO taxon_character_values VALUES (?, ?)`,
			a.SpeciesID, a.ValueID)
	}
}

func ptr(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}
