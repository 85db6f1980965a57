package lifecycle

import (
	"context"

	"github.com/gnames/gnkey/pkg/dataset"
)

// ImportStats summarizes an import.
type ImportStats struct {
	Piles       int
	Species     int
	Characters  int
	Values      int
	Assignments int
}

// Importer writes a dataset into the database, replacing key data that
// are already there. Species names are canonicalized on the way.
type Importer interface {
	Import(ctx context.Context, ds *dataset.Dataset) (ImportStats, error)
}
