package linear

import (
	"github.com/neverfolds/connect383/internal/parameters"
	"github.com/neverfolds/connect383/internal/searchers"
	"github.com/neverfolds/connect383/internal/searchers/searcherstest"
	"github.com/neverfolds/connect383/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestEstimate(t *testing.T) {
	empty, err := state.NewBoard(5, 4)
	require.NoError(t, err)
	wantDefault := []searchers.Value{1.5, 2.0, 3.25, 2.0, 1.5}
	for ii, successor := range empty.Successors() {
		v, err := Default.Estimate(successor.State)
		require.NoError(t, err)
		assert.Equalf(t, wantDefault[ii], v, "move %d", successor.Move)
	}

	v, err := Default.Estimate(empty)
	require.NoError(t, err)
	assert.Equal(t, searchers.Value(0), v)

	v, err = Alt.Estimate(empty.Act(2))
	require.NoError(t, err)
	assert.InDelta(t, 2.1, v, 1e-5)

	// Boards with the same utility get different estimates.
	center, err := Default.Estimate(empty.Act(2))
	require.NoError(t, err)
	corner, err := Default.Estimate(empty.Act(0))
	require.NoError(t, err)
	assert.Greater(t, center, corner)

	_, err = Default.Estimate(searcherstest.Leaf(1))
	assert.Error(t, err)
}

func TestEstimateFeatures(t *testing.T) {
	e := NewWithWeights(2, -1, 4, 0, 3)
	v, err := e.EstimateFeatures([]float32{1, 1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, searchers.Value(8), v)

	_, err = e.EstimateFeatures([]float32{1, 1})
	assert.Error(t, err)
}

func TestParseWeights(t *testing.T) {
	e, err := ParseWeights("mine", " 1; 0.5 ;2;0.25;-1")
	require.NoError(t, err)
	assert.Equal(t, "mine", e.String())
	assert.Equal(t, []float32{1, 0.5, 2, 0.25, -1}, e.Weights())

	_, err = ParseWeights("short", "1;2;3")
	assert.Error(t, err)
	_, err = ParseWeights("nan", "1;2;3;four;5")
	assert.Error(t, err)
}

func TestWithNameCopies(t *testing.T) {
	e := Default.WithName("copy")
	e.weights[0] = 100
	assert.Equal(t, float32(1), Default.weights[0])
	assert.Equal(t, "default", Default.String())
}

func TestAsGoCode(t *testing.T) {
	want := "\t// RunsScore\n\t1.0000,\n" +
		"\t// OpenOne\n\t0.5000,\n" +
		"\t// OpenTwo\n\t2.0000,\n" +
		"\t// Center\n\t0.2500,\n" +
		"\t// Bias\n\t0.0000,\n"
	assert.Equal(t, want, Default.AsGoCode())
}

func TestNewFromParams(t *testing.T) {
	params := parameters.Params{}
	e, err := NewFromParams(params, "alt")
	require.NoError(t, err)
	assert.Same(t, Alt, e)

	params = parameters.Params{"evaluator": "default", "depth": "2"}
	e, err = NewFromParams(params, "alt")
	require.NoError(t, err)
	assert.Same(t, Default, e)
	assert.Equal(t, parameters.Params{"depth": "2"}, params)

	params = parameters.Params{"weights": "1;0;0;0;0.5"}
	e, err = NewFromParams(params, "default")
	require.NoError(t, err)
	assert.Equal(t, "custom", e.String())
	assert.Equal(t, []float32{1, 0, 0, 0, 0.5}, e.Weights())
	assert.Empty(t, params)

	_, err = NewFromParams(parameters.Params{"evaluator": "best"}, "default")
	assert.Error(t, err)
}
