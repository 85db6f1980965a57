package cmd

import (
	"context"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnkey/pkg/errcode"
	"github.com/gnames/gnkey/pkg/igdt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore keeps parameters in memory.
type memStore struct {
	params map[string]float64
}

func (m *memStore) Get(_ context.Context, name string, def float64) (float64, error) {
	if v, ok := m.params[name]; ok {
		return v, nil
	}
	m.params[name] = def
	return def, nil
}

func (m *memStore) Set(_ context.Context, name string, value float64) error {
	m.params[name] = value
	return nil
}

func (m *memStore) Weights(ctx context.Context, def igdt.Weights) (igdt.Weights, error) {
	res := def
	for _, p := range def.Params() {
		v, _ := m.Get(ctx, p.Name, p.Value)
		res.Set(p.Name, v)
	}
	return res, nil
}

func TestUpdateWeights(t *testing.T) {
	ctx := context.Background()
	start := igdt.Weights{CoverageWeight: 1, EaseWeight: 0.5, LengthWeight: 0.7}

	t.Run("no changes", func(t *testing.T) {
		st := &memStore{params: map[string]float64{}}
		res, err := updateWeights(ctx, st, start, nil)
		require.NoError(t, err)
		assert.Equal(t, start, res)
		assert.Empty(t, st.params)
	})

	t.Run("valid changes", func(t *testing.T) {
		st := &memStore{params: map[string]float64{}}
		res, err := updateWeights(ctx, st, start, []string{
			"coverage_weight=2",
			igdt.EaseWeightName + " = 0",
		})
		require.NoError(t, err)
		assert.Equal(t, 2.0, res.CoverageWeight)
		assert.Equal(t, 0.0, res.EaseWeight)
		assert.Equal(t, map[string]float64{
			igdt.CoverageWeightName: 2,
			igdt.EaseWeightName:     0,
			igdt.LengthWeightName:   0.7,
		}, st.params)
	})

	bad := [][]string{
		{"height_weight=1"},
		{"coverage_weight=-1"},
		{"coverage_weight=abc"},
		{"coverage_weight=2", "length_weight"},
	}
	for _, set := range bad {
		st := &memStore{params: map[string]float64{}}
		res, err := updateWeights(ctx, st, start, set)
		require.Error(t, err, set)
		assert.Equal(t, start, res)
		assert.Empty(t, st.params, "nothing is saved")

		gnErr, ok := err.(*gn.Error)
		require.True(t, ok)
		assert.Equal(t, errcode.ParamUnknownError, gnErr.Code)
	}
}

func TestGetWeightsCmd(t *testing.T) {
	cmd := getWeightsCmd()
	assert.Equal(t, "weights", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("set"))
}
