package ioimport

import (
	"testing"

	"github.com/gnames/gnkey/internal/iotesting"
	"github.com/gnames/gnkey/pkg/dataset"
	"github.com/gnames/gnkey/pkg/parserpool"
	"github.com/gnames/gnkey/pkg/schema"
	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnuuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpeciesRecord(t *testing.T) {
	pool := parserpool.NewPool(1, nomcode.Botanical)
	defer pool.Close()

	rec := speciesRecord(pool, dataset.Species{
		ID: 5, ScientificName: "Acer rubrum L.", Family: "Sapindaceae",
	})
	assert.Equal(t, 5, rec.ID)
	assert.Equal(t, "Acer rubrum", rec.Canonical)
	assert.Equal(t, "Acer", rec.Genus)
	assert.Equal(t, "Sapindaceae", rec.Family)
	assert.Equal(t, gnuuid.New("Acer rubrum L.").String(), rec.NameID)
	require.True(t, rec.CanonicalID.Valid)
	assert.Equal(t, gnuuid.New("Acer rubrum").String(), rec.CanonicalID.String)

	rec = speciesRecord(pool, dataset.Species{
		ID: 6, ScientificName: "Acer rubrum L.", Genus: "Rufacer",
	})
	assert.Equal(t, "Rufacer", rec.Genus)

	rec = speciesRecord(pool, dataset.Species{ID: 7})
	assert.Empty(t, rec.Canonical)
	assert.False(t, rec.CanonicalID.Valid)
}

func TestBuildTables(t *testing.T) {
	ds := iotesting.ThreeSpeciesKey()
	pool := parserpool.NewPool(1, nomcode.Botanical)
	defer pool.Close()

	var species []schema.Species
	for _, sp := range ds.Species {
		species = append(species, speciesRecord(pool, sp))
	}

	tables := buildTables(ds, species)
	counts := make(map[string]int, len(tables))
	for _, tbl := range tables {
		counts[tbl.name] = len(tbl.rows)
		for _, row := range tbl.rows {
			assert.Len(t, row, len(tbl.columns), tbl.name)
		}
	}
	assert.Equal(t, map[string]int{
		"piles":                  1,
		"species":                3,
		"pile_species":           3,
		"characters":             3,
		"character_values":       6,
		"pile_character_values":  6,
		"taxon_character_values": 6,
	}, counts)
	assert.Equal(t, "taxon_character_values", tables[len(tables)-1].name)
}

func TestUnique(t *testing.T) {
	assert.Equal(t, []int{3, 1, 2}, unique([]int{3, 1, 3, 2, 1}))
	assert.Equal(t, []int{}, unique(nil))
}
