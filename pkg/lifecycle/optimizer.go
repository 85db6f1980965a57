package lifecycle

import "context"

// OptimizeStats summarizes an optimization run.
type OptimizeStats struct {
	// Reparsed is the number of species rows changed by reparsing.
	Reparsed int
	// Orphans is the number of rows removed because they point to
	// missing records.
	Orphans int64
}

// Optimizer tidies an imported key. It reparses species names with the
// current parser, removes orphaned rows and refreshes planner statistics.
// Running it several times is safe.
type Optimizer interface {
	Optimize(ctx context.Context) (OptimizeStats, error)
}
