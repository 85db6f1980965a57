package ranking

import "runtime"

// DefaultWidth is the graph width used when none is given.
const DefaultWidth = 500

// Option changes a setting of the ranker.
type Option func(*ranker)

// OptWidth sets the width of LENGTH graphs. Non-positive values are
// ignored.
func OptWidth(i int) Option {
	return func(r *ranker) {
		if i > 0 {
			r.width = i
		}
	}
}

// OptJobsNumber sets how many piles RankAll processes at once.
// Non-positive values are ignored.
func OptJobsNumber(i int) Option {
	return func(r *ranker) {
		if i > 0 {
			r.jobsNum = i
		}
	}
}

type ranker struct {
	width   int
	jobsNum int
}

// New creates a Ranker. Without options graphs are DefaultWidth units
// wide and RankAll uses one job per CPU.
func New(opts ...Option) Ranker {
	res := &ranker{
		width:   DefaultWidth,
		jobsNum: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(res)
	}
	return res
}
