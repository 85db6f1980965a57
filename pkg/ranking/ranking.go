// Package ranking orders characters of identification keys by how useful
// they are for telling candidate species apart. It glues together the
// entropy engine, the scoring function and the matrix builder.
package ranking

import (
	"context"

	"github.com/gnames/gnkey/pkg/dataset"
	"github.com/gnames/gnkey/pkg/igdt"
	"github.com/gnames/gnkey/pkg/matrix"
)

// Ranker ranks characters of piles.
type Ranker interface {
	// Rank scores characters of the pile with the given slug for the
	// candidate species. Empty speciesIDs means all species of the pile.
	Rank(
		ds *dataset.Dataset,
		slug string,
		speciesIDs []int,
		w igdt.Weights,
	) (*Ranking, error)

	// RankAll ranks all species of every pile concurrently. Results are
	// ordered by pile slug.
	RankAll(
		ctx context.Context,
		ds *dataset.Dataset,
		w igdt.Weights,
	) ([]*Ranking, error)
}

// Ranking is the result of ranking one pile.
type Ranking struct {
	Pile     string `json:"pile"`
	PileName string `json:"pileName"`
	// Species are the candidate species ids, ascending.
	Species []int        `json:"species"`
	Weights igdt.Weights `json:"weights"`
	// Characters are ordered by ascending score.
	Characters []CharacterReport `json:"characters"`
	// Skipped lists characters that were not scored.
	Skipped []Skipped `json:"skipped"`
}

// CharacterReport describes one ranked character.
type CharacterReport struct {
	ID        int               `json:"id"`
	ShortName string            `json:"shortName"`
	Name      string            `json:"name"`
	ValueType dataset.ValueType `json:"valueType"`
	Unit      string            `json:"unit,omitempty"`
	Entropy   float64           `json:"entropy"`
	Coverage  float64           `json:"coverage"`
	Ease      float64           `json:"ease"`
	Score     float64           `json:"score"`
	ValuesNum int               `json:"valuesNum"`
	// Table is set for TEXT characters.
	Table *matrix.Table `json:"table,omitempty"`
	// Graph is set for LENGTH characters.
	Graph *matrix.Graph `json:"graph,omitempty"`
}

// Skipped is a character left out of the ranking.
type Skipped struct {
	ID        int               `json:"id"`
	ShortName string            `json:"shortName"`
	ValueType dataset.ValueType `json:"valueType"`
	Reason    string            `json:"reason"`
}
