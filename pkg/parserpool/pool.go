// Package parserpool provides a pool of gnparser instances for concurrent
// name parsing. This is a pure package - parsing is computation, not I/O.
package parserpool

import (
	"runtime"
	"strings"

	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnparser"
	"github.com/gnames/gnparser/ent/parsed"
)

// Pool provides a pool of gnparser instances for concurrent parsing.
type Pool interface {
	// Parse parses a scientific name string. It borrows a parser from the
	// pool and returns it afterwards, so it is safe for concurrent use.
	Parse(nameString string) parsed.Parsed

	// Code is the nomenclatural code used by parsers of the pool.
	Code() nomcode.Code

	// Close shuts down the pool. After calling Close, the pool should not
	// be used.
	Close()
}

type pool struct {
	ch   chan gnparser.GNparser
	code nomcode.Code
}

// NewPool creates a pool of jobsNum parsers for the nomenclatural code.
// If jobsNum is 0, it defaults to runtime.NumCPU().
func NewPool(jobsNum int, code nomcode.Code) Pool {
	size := jobsNum
	if size <= 0 {
		size = runtime.NumCPU()
	}

	cfg := gnparser.NewConfig(
		gnparser.OptCode(code),
		gnparser.OptWithDetails(true),
	)
	return &pool{
		ch:   gnparser.NewPool(cfg, size),
		code: code,
	}
}

// Parse implements Pool.
func (p *pool) Parse(nameString string) parsed.Parsed {
	parser := <-p.ch
	res := parser.ParseName(nameString)
	p.ch <- parser
	return res
}

// Code implements Pool.
func (p *pool) Code() nomcode.Code {
	return p.code
}

// Close implements Pool.
func (p *pool) Close() {
	if p.ch != nil {
		close(p.ch)
		for range p.ch {
		}
		p.ch = nil
	}
}

// Canonical returns the simple canonical form of a parsed name and its
// genus (the first word of the canonical form). Both are empty for names
// that could not be parsed.
func Canonical(p parsed.Parsed) (canonical, genus string) {
	if !p.Parsed || p.Canonical == nil {
		return "", ""
	}
	canonical = p.Canonical.Simple
	genus, _, _ = strings.Cut(canonical, " ")
	return canonical, genus
}
