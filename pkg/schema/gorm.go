package schema

import (
	"gorm.io/gorm"
)

// AllModels returns all schema models for GORM AutoMigrate.
func AllModels() []any {
	return []any{
		&Pile{},
		&Species{},
		&PileSpecies{},
		&Character{},
		&CharacterValue{},
		&PileCharacterValue{},
		&TaxonCharacterValue{},
		&Parameter{},
	}
}

// TableNames returns names of all tables in the order of AllModels.
func TableNames() []string {
	models := AllModels()
	res := make([]string, len(models))
	for i, m := range models {
		res[i] = m.(DDLGenerator).TableName()
	}
	return res
}

// Migrate runs GORM AutoMigrate to create or update schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
