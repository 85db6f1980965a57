// Package ioreport writes ranking results as JSON or as human-readable
// text.
package ioreport

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnkey/pkg/matrix"
	"github.com/gnames/gnkey/pkg/ranking"
)

// Format of the report.
type Format int

const (
	Compact Format = iota
	Pretty
	Text
)

var formats = map[string]Format{
	"compact": Compact,
	"pretty":  Pretty,
	"text":    Text,
}

// NewFormat converts a format name. Unknown names give Compact and false.
func NewFormat(s string) (Format, bool) {
	f, ok := formats[strings.ToLower(strings.TrimSpace(s))]
	return f, ok
}

// String returns the name of the format.
func (f Format) String() string {
	for k, v := range formats {
		if v == f {
			return k
		}
	}
	return "unknown"
}

var (
	headerColor = color.New(color.Bold)
	nameColor   = color.New(color.FgGreen, color.Bold)
	scoreColor  = color.New(color.FgYellow)
	skipColor   = color.New(color.FgBlue)
)

// Write outputs rankings. JSON formats write a single object for one
// ranking and an array otherwise.
func Write(w io.Writer, rs []*ranking.Ranking, f Format) error {
	switch f {
	case Text:
		for i, r := range rs {
			if i > 0 {
				fmt.Fprintln(w)
			}
			writeText(w, r)
		}
		return nil
	default:
		var v any = rs
		if len(rs) == 1 {
			v = rs[0]
		}
		enc := gnfmt.GNjson{Pretty: f == Pretty}
		res, err := enc.Encode(v)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(res))
		return err
	}
}

func writeText(w io.Writer, r *ranking.Ranking) {
	headerColor.Fprintf(w, "Pile %s (%s): %d species, %d characters\n",
		r.Pile, r.PileName, len(r.Species), len(r.Characters))
	fmt.Fprintf(w, "Weights: coverage %g, ease %g, length %g\n",
		r.Weights.CoverageWeight, r.Weights.EaseWeight, r.Weights.LengthWeight)

	for i, c := range r.Characters {
		fmt.Fprintf(w, "\n%3d. ", i+1)
		nameColor.Fprint(w, c.ShortName)
		fmt.Fprintf(w, " %s ", c.ValueType)
		scoreColor.Fprintf(w, "score %.4f", c.Score)
		fmt.Fprintf(w, " entropy %.4f coverage %.4f ease %g\n",
			c.Entropy, c.Coverage, c.Ease)
		switch {
		case c.Table != nil:
			writeTable(w, c.Table)
		case c.Graph != nil:
			writeGraph(w, c.Graph, c.Unit)
		}
	}

	for _, s := range r.Skipped {
		skipColor.Fprintf(w, "skipped %s: %s\n", s.ShortName, s.Reason)
	}
}

func writeTable(w io.Writer, t *matrix.Table) {
	width := 0
	for _, row := range t.Rows {
		width = max(width, len(row.Label))
	}
	ids := make([]string, len(t.Species))
	for i, id := range t.Species {
		ids[i] = fmt.Sprint(id)
	}
	fmt.Fprintf(w, "     %-*s %5s  %s\n", width, "", "", strings.Join(ids, " "))
	for _, row := range t.Rows {
		cells := make([]string, len(row.Cells))
		for i, c := range row.Cells {
			cells[i] = fmt.Sprintf("%*s", len(ids[i]), c)
		}
		fmt.Fprintf(w, "     %-*s %5d  %s\n",
			width, row.Label, row.Count, strings.Join(cells, " "))
	}
}

func writeGraph(w io.Writer, g *matrix.Graph, unit string) {
	fmt.Fprintf(w, "     range %g - %g %s, scale %.4f\n", g.VMin, g.VMax, unit, g.Scale)
	for _, b := range g.Bars {
		fmt.Fprintf(w, "     %-12s offset %4d width %4d  species %v\n",
			fmt.Sprintf("%g - %g", b.Min, b.Max), b.Offset, b.Width, b.Species)
	}
}
