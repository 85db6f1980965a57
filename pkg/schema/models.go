// Package schema provides database schema models for GNkey.
// Tables follow the layout of Go Botany core tables so that keys exported
// from there can be loaded without reshaping.
package schema

import (
	"database/sql"
)

// DDLGenerator defines how Go models generate PostgreSQL DDL.
type DDLGenerator interface {
	// TableDDL returns the CREATE TABLE statement for this model.
	TableDDL() string

	// IndexDDL returns CREATE INDEX statements for this model.
	// Returns empty slice if no indexes needed.
	IndexDDL() []string

	// TableName returns the PostgreSQL table name for this model.
	TableName() string
}

// Pile is one identification key.
type Pile struct {
	ID int `db:"id" ddl:"INT PRIMARY KEY" gorm:"primaryKey;autoIncrement:false"`

	// Slug is the unique short name used on the command line.
	Slug string `db:"slug" ddl:"VARCHAR(100) NOT NULL UNIQUE" gorm:"type:varchar(100);not null;uniqueIndex"`

	Name string `db:"name" ddl:"VARCHAR(255)" gorm:"type:varchar(255)"`
}

// Species is a taxon identified by keys.
type Species struct {
	ID int `db:"id" ddl:"INT PRIMARY KEY" gorm:"primaryKey;autoIncrement:false"`

	// ScientificName is the name with authorship as given by the key.
	ScientificName string `db:"scientific_name" ddl:"VARCHAR(255) NOT NULL" gorm:"type:varchar(255);not null"`

	// Canonical is the simple canonical form from the name parser.
	Canonical string `db:"canonical" ddl:"VARCHAR(255)" gorm:"type:varchar(255)"`

	Genus  string `db:"genus" ddl:"VARCHAR(100)" gorm:"type:varchar(100)"`
	Family string `db:"family" ddl:"VARCHAR(100)" gorm:"type:varchar(100)"`

	// NameID is UUID v5 of the scientific name.
	NameID string `db:"name_id" ddl:"UUID" gorm:"type:uuid"`

	// CanonicalID is UUID v5 of the canonical form, if any.
	CanonicalID sql.NullString `db:"canonical_id" ddl:"UUID" gorm:"type:uuid"`
}

// PileSpecies assigns species to piles.
type PileSpecies struct {
	PileID    int `db:"pile_id" ddl:"INT NOT NULL" gorm:"primaryKey;autoIncrement:false"`
	SpeciesID int `db:"species_id" ddl:"INT NOT NULL" gorm:"primaryKey;autoIncrement:false"`
}

// Character is an observable trait.
type Character struct {
	ID        int    `db:"id" ddl:"INT PRIMARY KEY" gorm:"primaryKey;autoIncrement:false"`
	ShortName string `db:"short_name" ddl:"VARCHAR(100) NOT NULL" gorm:"type:varchar(100);not null"`
	Name      string `db:"name" ddl:"VARCHAR(255)" gorm:"type:varchar(255)"`

	// ValueType is one of TEXT, LENGTH, RATIO.
	ValueType string `db:"value_type" ddl:"VARCHAR(10) NOT NULL" gorm:"type:varchar(10);not null"`

	EaseOfObservability float64 `db:"ease_of_observability" ddl:"DOUBLE PRECISION NOT NULL DEFAULT 0" gorm:"not null;default:0"`
	Unit                string  `db:"unit" ddl:"VARCHAR(20)" gorm:"type:varchar(20)"`
}

// CharacterValue is one value of a character.
type CharacterValue struct {
	ID          int             `db:"id" ddl:"INT PRIMARY KEY" gorm:"primaryKey;autoIncrement:false"`
	CharacterID int             `db:"character_id" ddl:"INT NOT NULL" gorm:"not null;index"`
	ValueStr    sql.NullString  `db:"value_str" ddl:"VARCHAR(260)" gorm:"type:varchar(260)"`
	ValueMin    sql.NullFloat64 `db:"value_min" ddl:"DOUBLE PRECISION"`
	ValueMax    sql.NullFloat64 `db:"value_max" ddl:"DOUBLE PRECISION"`
	ValueFlt    sql.NullFloat64 `db:"value_flt" ddl:"DOUBLE PRECISION"`
}

// PileCharacterValue assigns character values to piles.
type PileCharacterValue struct {
	PileID           int `db:"pile_id" ddl:"INT NOT NULL" gorm:"primaryKey;autoIncrement:false"`
	CharacterValueID int `db:"character_value_id" ddl:"INT NOT NULL" gorm:"primaryKey;autoIncrement:false"`
}

// TaxonCharacterValue records that a species exhibits a value.
type TaxonCharacterValue struct {
	TaxonID          int `db:"taxon_id" ddl:"INT NOT NULL" gorm:"primaryKey;autoIncrement:false"`
	CharacterValueID int `db:"character_value_id" ddl:"INT NOT NULL" gorm:"primaryKey;autoIncrement:false;index"`
}

// Parameter is a named tunable number such as a ranking weight.
type Parameter struct {
	Name  string  `db:"name" ddl:"VARCHAR(100) PRIMARY KEY" gorm:"primaryKey;type:varchar(100)"`
	Value float64 `db:"value" ddl:"DOUBLE PRECISION NOT NULL" gorm:"not null"`
}
