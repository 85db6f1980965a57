package igdt

import (
	"math"
	"strconv"
	"strings"

	"github.com/gnames/gnkey/pkg/config"
	"github.com/gnames/gnkey/pkg/dataset"
)

// Names of weight parameters as they are persisted and accepted as
// overrides.
const (
	CoverageWeightName = "coverage_weight"
	EaseWeightName     = "ease_of_observability_weight"
	LengthWeightName   = "length_weight"
)

// Weights blend entropy, coverage and ease of observability into one
// score. All weights are non-negative.
type Weights struct {
	CoverageWeight float64 `json:"coverageWeight"`
	EaseWeight     float64 `json:"easeWeight"`
	LengthWeight   float64 `json:"lengthWeight"`
}

// NewWeights takes default weights from the configuration.
func NewWeights(cfg config.RankConfig) Weights {
	return Weights{
		CoverageWeight: cfg.CoverageWeight,
		EaseWeight:     cfg.EaseWeight,
		LengthWeight:   cfg.LengthWeight,
	}
}

// ComputeScore combines entropy, coverage and ease of a character.
// The score grows with each of them; LENGTH characters are additionally
// multiplied by the length weight. RATIO characters are not scored and
// get zero. Characters are presented in ascending order of the score.
func ComputeScore(
	entropy, coverage, ease float64,
	vt dataset.ValueType,
	w Weights,
) float64 {
	base := entropy + w.CoverageWeight*coverage + w.EaseWeight*ease
	switch vt {
	case dataset.Text:
		return base
	case dataset.Length:
		return base * w.LengthWeight
	default:
		return 0
	}
}

// ParseWeights applies string overrides to defaults and returns the
// result. Keys are parameter names; "ease_weight" is accepted as a
// synonym of the ease parameter. Unknown keys and values that are not
// non-negative finite numbers are ignored.
func ParseWeights(defaults Weights, overrides map[string]string) Weights {
	res := defaults
	for k, v := range overrides {
		f, ok := parseWeight(v)
		if !ok {
			continue
		}
		switch strings.TrimSpace(k) {
		case CoverageWeightName:
			res.CoverageWeight = f
		case EaseWeightName, "ease_weight":
			res.EaseWeight = f
		case LengthWeightName:
			res.LengthWeight = f
		}
	}
	return res
}

// Set changes one weight by its parameter name. It returns false for
// unknown names and invalid values.
func (w *Weights) Set(name string, value float64) bool {
	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return false
	}
	switch name {
	case CoverageWeightName:
		w.CoverageWeight = value
	case EaseWeightName:
		w.EaseWeight = value
	case LengthWeightName:
		w.LengthWeight = value
	default:
		return false
	}
	return true
}

// Params lists weights as parameter name and value pairs in a fixed order.
func (w Weights) Params() []Param {
	return []Param{
		{Name: CoverageWeightName, Value: w.CoverageWeight},
		{Name: EaseWeightName, Value: w.EaseWeight},
		{Name: LengthWeightName, Value: w.LengthWeight},
	}
}

// Param is a named weight.
type Param struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

func parseWeight(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
