package igdt_test

import (
	"testing"

	"github.com/gnames/gnkey/pkg/config"
	"github.com/gnames/gnkey/pkg/dataset"
	"github.com/gnames/gnkey/pkg/igdt"
	"github.com/stretchr/testify/assert"
)

func TestNewWeights(t *testing.T) {
	w := igdt.NewWeights(config.New().Rank)
	assert.Equal(t, igdt.Weights{
		CoverageWeight: 1.0,
		EaseWeight:     0.5,
		LengthWeight:   0.7,
	}, w)
}

func TestComputeScore(t *testing.T) {
	w := igdt.Weights{CoverageWeight: 2, EaseWeight: 0.5, LengthWeight: 3}

	tests := []struct {
		msg                     string
		entropy, coverage, ease float64
		vt                      dataset.ValueType
		res                     float64
	}{
		{"text", 1, 0.5, 2, dataset.Text, 1 + 2*0.5 + 0.5*2},
		{"length gets multiplier", 1, 0.5, 2, dataset.Length, 3 * (1 + 2*0.5 + 0.5*2)},
		{"ratio is not scored", 1, 0.5, 2, dataset.Ratio, 0},
		{"all zeros", 0, 0, 0, dataset.Text, 0},
	}

	for _, v := range tests {
		res := igdt.ComputeScore(v.entropy, v.coverage, v.ease, v.vt, w)
		assert.InDelta(t, v.res, res, eps, v.msg)
	}
}

func TestComputeScoreMonotonic(t *testing.T) {
	weights := []igdt.Weights{
		{CoverageWeight: 0, EaseWeight: 0, LengthWeight: 0},
		{CoverageWeight: 1, EaseWeight: 0.5, LengthWeight: 0.7},
		{CoverageWeight: 10, EaseWeight: 3, LengthWeight: 2},
	}
	steps := []float64{0, 0.1, 0.5, 1, 2, 3.5}
	types := []dataset.ValueType{dataset.Text, dataset.Length}

	for _, w := range weights {
		for _, vt := range types {
			for _, a := range steps {
				for _, b := range steps {
					for i := 1; i < len(steps); i++ {
						lo, hi := steps[i-1], steps[i]
						assert.LessOrEqual(t,
							igdt.ComputeScore(lo, a, b, vt, w),
							igdt.ComputeScore(hi, a, b, vt, w), "entropy")
						assert.LessOrEqual(t,
							igdt.ComputeScore(a, lo, b, vt, w),
							igdt.ComputeScore(a, hi, b, vt, w), "coverage")
						assert.LessOrEqual(t,
							igdt.ComputeScore(a, b, lo, vt, w),
							igdt.ComputeScore(a, b, hi, vt, w), "ease")
					}
				}
			}
		}
	}
}

func TestParseWeights(t *testing.T) {
	defaults := igdt.Weights{CoverageWeight: 1, EaseWeight: 0.5, LengthWeight: 0.7}

	tests := []struct {
		msg       string
		overrides map[string]string
		res       igdt.Weights
	}{
		{"nil overrides", nil, defaults},
		{
			"all overrides",
			map[string]string{
				"coverage_weight":              "2",
				"ease_of_observability_weight": "0.25",
				"length_weight":                " 3 ",
			},
			igdt.Weights{CoverageWeight: 2, EaseWeight: 0.25, LengthWeight: 3},
		},
		{
			"short ease name",
			map[string]string{"ease_weight": "0"},
			igdt.Weights{CoverageWeight: 1, EaseWeight: 0, LengthWeight: 0.7},
		},
		{
			"non-numeric values ignored",
			map[string]string{"coverage_weight": "lots", "length_weight": ""},
			defaults,
		},
		{
			"negative and special values ignored",
			map[string]string{
				"coverage_weight": "-1", "ease_weight": "NaN",
				"length_weight": "+Inf",
			},
			defaults,
		},
		{
			"unknown names ignored",
			map[string]string{"color_weight": "5"},
			defaults,
		},
	}

	for _, v := range tests {
		res := igdt.ParseWeights(defaults, v.overrides)
		assert.Equal(t, v.res, res, v.msg)
	}
	assert.Equal(t, 1.0, defaults.CoverageWeight, "defaults are not mutated")
}

func TestWeightsSet(t *testing.T) {
	var w igdt.Weights
	assert.True(t, w.Set(igdt.CoverageWeightName, 0.3))
	assert.True(t, w.Set(igdt.EaseWeightName, 0.2))
	assert.True(t, w.Set(igdt.LengthWeightName, 0.1))
	assert.False(t, w.Set("ease_weight", 1))
	assert.False(t, w.Set(igdt.LengthWeightName, -1))

	assert.Equal(t, []igdt.Param{
		{Name: "coverage_weight", Value: 0.3},
		{Name: "ease_of_observability_weight", Value: 0.2},
		{Name: "length_weight", Value: 0.1},
	}, w.Params())
}
