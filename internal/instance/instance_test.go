package instance_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lvqubo/core"
	"github.com/katalvlaran/lvqubo/internal/instance"
	"github.com/katalvlaran/lvqubo/knapsack"
	"github.com/stretchr/testify/require"
)

func TestDecodeGraph_Unweighted(t *testing.T) {
	g, err := instance.DecodeGraph(strings.NewReader(`{
		"vertices": [9],
		"edges": [{"u": 1, "v": 2, "weight": 5}, {"u": 2, "v": 3}]
	}`))
	require.NoError(t, err)
	require.False(t, g.Weighted())
	require.Equal(t, []int{1, 2, 3, 9}, g.Vertices())
	require.Equal(t, []core.Edge{{U: 1, V: 2, Weight: 1}, {U: 2, V: 3, Weight: 1}}, g.Edges())
}

func TestDecodeGraph_Weighted(t *testing.T) {
	g, err := instance.DecodeGraph(strings.NewReader(`{"weighted": true,
		"edges": [{"u": 3, "v": 1, "weight": 2.5}, {"u": 1, "v": 2}]}`))
	require.NoError(t, err)
	require.Equal(t, []core.Edge{{U: 1, V: 2, Weight: 1}, {U: 1, V: 3, Weight: 2.5}}, g.Edges())
}

func TestDecodeGraph_Errors(t *testing.T) {
	_, err := instance.DecodeGraph(strings.NewReader(`{"edges": [{"u": 1, "v": 1}]}`))
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = instance.DecodeGraph(strings.NewReader(`{"edges": []}`))
	require.ErrorIs(t, err, instance.ErrEmptyGraph)

	_, err = instance.DecodeGraph(strings.NewReader(`{"edges": [`))
	require.Error(t, err)
}

func TestLoadKnapsack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"capacity": 5,
		"items": [{"weight": 2, "value": 3}, {"weight": 3, "value": 4}]}`), 0o600))

	in, err := instance.LoadKnapsack(path)
	require.NoError(t, err)
	require.Equal(t, knapsack.Instance{
		Weights:  []float64{2, 3},
		Values:   []float64{3, 4},
		Capacity: 5,
	}, in)

	_, err = instance.LoadKnapsack(filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = instance.DecodeKnapsack(strings.NewReader(`{"capacity": -1, "items": [{"weight": 1, "value": 1}]}`))
	require.ErrorIs(t, err, knapsack.ErrNegativeInput)
}

func TestLoadGraph(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"edges": [{"u": 0, "v": 1}]}`), 0o600))
	g, err := instance.LoadGraph(path)
	require.NoError(t, err)
	require.Equal(t, 1, g.EdgeCount())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, instance.WriteJSON(&buf, map[string]any{"cut": 5}))
	require.Equal(t, "{\n  \"cut\": 5\n}\n", buf.String())
}
