package graphio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/graphforge/graphgen/pkg/graph"
)

// MarshalGraph encodes a graph as indented JSON bytes.
func MarshalGraph(g *graph.Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteGraph(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteGraph encodes a graph as JSON and writes it to w.
// The output is two-space indented and can be re-imported with
// [ReadGraph] for round-trip processing.
func WriteGraph(g *graph.Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromGraph(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteGraphFile writes a graph to a JSON file at path.
// This is a convenience wrapper around [WriteGraph] for file-based output.
func WriteGraphFile(g *graph.Graph, path string) error {
	data, err := MarshalGraph(g)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ReadGraph decodes a JSON document from r and rebuilds the graph.
//
// The input must be a JSON object with a "depth" field and "vertices"
// and "edges" arrays:
//
//	{
//	  "depth": 2,
//	  "vertices": [{"id": 0, "edge_ids": [0], "depth": 1}],
//	  "edges": [{"id": 0, "vertex_ids": [0, 1], "color": "grey"}]
//	}
//
// ReadGraph returns an error if the JSON is malformed or if the document
// fails the replay validation described on [ToGraph]. The returned graph
// is independent of r and can be modified freely. ReadGraph does not
// close r.
func ReadGraph(r io.Reader) (*graph.Graph, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return ToGraph(&doc)
}

// ReadGraphFile reads a JSON file at path and returns the decoded graph.
//
// ReadGraphFile opens the file, decodes it using [ReadGraph], and closes
// the file. Errors wrap the underlying cause with the file path for
// context, and replay validation failures carry the same codes as
// [ToGraph].
func ReadGraphFile(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadGraph(f)
}
