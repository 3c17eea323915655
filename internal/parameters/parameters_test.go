package parameters

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestNewFromConfigString(t *testing.T) {
	params := NewFromConfigString("depth=3, prune ,weights=1;2;3;4;5,,expr=a=b")
	assert.Equal(t, Params{"depth": "3", "prune": "", "weights": "1;2;3;4;5", "expr": "a=b"}, params)
	assert.Empty(t, NewFromConfigString(""))
}

func TestGetParamOr(t *testing.T) {
	params := Params{"depth": "3", "prune": "", "verbose": "false", "c": "1.5", "name": "x", "bad": "maybe"}

	depth, err := GetParamOr(params, "depth", 1)
	require.NoError(t, err)
	assert.Equal(t, 3, depth)
	assert.Contains(t, params, "depth")

	missing, err := GetParamOr(params, "missing", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, missing)

	prune, err := GetParamOr(params, "prune", false)
	require.NoError(t, err)
	assert.True(t, prune)

	verbose, err := GetParamOr(params, "verbose", true)
	require.NoError(t, err)
	assert.False(t, verbose)

	c32, err := GetParamOr(params, "c", float32(0))
	require.NoError(t, err)
	assert.Equal(t, float32(1.5), c32)
	c64, err := GetParamOr(params, "c", 0.0)
	require.NoError(t, err)
	assert.Equal(t, 1.5, c64)

	name, err := GetParamOr(params, "name", "")
	require.NoError(t, err)
	assert.Equal(t, "x", name)

	_, err = GetParamOr(params, "bad", false)
	assert.Error(t, err)
	_, err = GetParamOr(params, "name", 0)
	assert.Error(t, err)
}

func TestPopParamOrAndCheckAllUsed(t *testing.T) {
	params := NewFromConfigString("depth=2,prune=false,seed=3,extra")
	depth, err := PopParamOr(params, "depth", 0)
	require.NoError(t, err)
	assert.Equal(t, 2, depth)
	assert.NotContains(t, params, "depth")

	// Failed parsing keeps the parameter.
	_, err = PopParamOr(params, "prune", 0)
	require.Error(t, err)
	assert.Contains(t, params, "prune")

	err = CheckAllUsed(params)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"extra", "prune", "seed"`)

	for _, key := range []string{"prune", "seed", "extra"} {
		delete(params, key)
	}
	assert.NoError(t, CheckAllUsed(params))
}
