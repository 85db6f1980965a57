package lifecycle

import (
	"context"

	"github.com/gnames/gnkey/pkg/dataset"
)

// Loader reads all key tables from the database and returns a built
// dataset. Each table is read with a single query.
type Loader interface {
	Load(ctx context.Context) (*dataset.Dataset, error)
}
