package lifecycle

import (
	"context"
)

// SchemaManager defines the interface for database schema management.
// It uses GORM AutoMigrate to handle both initial schema creation and
// migrations. Schema management is idempotent, it is safe to run it
// multiple times.
type SchemaManager interface {
	// Create creates the database schema and secondary indexes.
	Create(ctx context.Context) error

	// Migrate updates the schema to the current models.
	Migrate(ctx context.Context) error
}
