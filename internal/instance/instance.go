// Package instance reads problem instances from JSON files and writes
// results back as JSON.
//
// Graph file:
//
//	{"weighted": true, "vertices": [7], "edges": [{"u": 1, "v": 2, "weight": 1.5}]}
//
// "vertices" lists isolated vertices only; edge endpoints are added
// implicitly. On unweighted graphs "weight" is ignored. On weighted graphs
// a missing weight means 1.
//
// Knapsack file:
//
//	{"capacity": 5, "items": [{"weight": 2, "value": 3}]}
package instance

import (
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvqubo/core"
	"github.com/katalvlaran/lvqubo/knapsack"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrEmptyGraph indicates a graph file with no vertices.
var ErrEmptyGraph = errors.New("instance: graph has no vertices")

type edgeJSON struct {
	U      int      `json:"u"`
	V      int      `json:"v"`
	Weight *float64 `json:"weight,omitempty"`
}

type graphJSON struct {
	Weighted bool       `json:"weighted"`
	Vertices []int      `json:"vertices,omitempty"`
	Edges    []edgeJSON `json:"edges"`
}

type itemJSON struct {
	Weight float64 `json:"weight"`
	Value  float64 `json:"value"`
}

type knapsackJSON struct {
	Capacity float64    `json:"capacity"`
	Items    []itemJSON `json:"items"`
}

// DecodeGraph reads one graph document from r.
func DecodeGraph(r io.Reader) (*core.Graph, error) {
	var doc graphJSON
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decoding graph")
	}

	var opts []core.GraphOption
	if doc.Weighted {
		opts = append(opts, core.WithWeighted())
	}
	g := core.NewGraph(opts...)
	for _, v := range doc.Vertices {
		g.AddVertex(v)
	}
	for n, e := range doc.Edges {
		var w float64
		if doc.Weighted {
			w = 1
			if e.Weight != nil {
				w = *e.Weight
			}
		}
		if err := g.AddEdge(e.U, e.V, w); err != nil {
			return nil, errors.Wrapf(err, "edge #%d (%d-%d)", n, e.U, e.V)
		}
	}
	if g.VertexCount() == 0 {
		return nil, ErrEmptyGraph
	}
	return g, nil
}

// DecodeKnapsack reads one knapsack document from r and validates it.
func DecodeKnapsack(r io.Reader) (knapsack.Instance, error) {
	var doc knapsackJSON
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return knapsack.Instance{}, errors.Wrap(err, "decoding knapsack")
	}
	in := knapsack.Instance{
		Weights:  make([]float64, len(doc.Items)),
		Values:   make([]float64, len(doc.Items)),
		Capacity: doc.Capacity,
	}
	for i, it := range doc.Items {
		in.Weights[i] = it.Weight
		in.Values[i] = it.Value
	}
	if err := in.Validate(); err != nil {
		return knapsack.Instance{}, errors.Wrap(err, "knapsack instance")
	}
	return in, nil
}

// LoadGraph reads a graph file.
func LoadGraph(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening graph file %s", path)
	}
	defer f.Close()
	g, err := DecodeGraph(f)
	return g, errors.Wrapf(err, "graph file %s", path)
}

// LoadKnapsack reads a knapsack file.
func LoadKnapsack(path string) (knapsack.Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return knapsack.Instance{}, errors.Wrapf(err, "opening knapsack file %s", path)
	}
	defer f.Close()
	in, err := DecodeKnapsack(f)
	return in, errors.Wrapf(err, "knapsack file %s", path)
}

// WriteJSON writes v to w as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding result")
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return errors.Wrap(err, "writing result")
}
