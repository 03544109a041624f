// Package testgraphs builds small, deterministic uncertain graphs shared by
// this module's package tests. Constructors mirror the synthetic-topology
// style of a graph-construction builder: each one is a pure function from
// parameters to a *graph.Graph, with no hidden randomness.
package testgraphs

import "github.com/go-ugraph/relclust/graph"

// Triangle returns a 3-cycle A-B-C with uniform edge probability p.
func Triangle(p float64) *graph.Graph {
	b := graph.NewBuilder()
	b.AddEdge("A", "B", p)
	b.AddEdge("B", "C", p)
	b.AddEdge("A", "C", p)
	g, err := b.Build()
	if err != nil {
		panic(err)
	}
	return g
}

// Path returns a simple path v0-v1-...-v(n-1) with uniform edge probability p.
func Path(n int, p float64) *graph.Graph {
	b := graph.NewBuilder()
	labels := vertexLabels(n)
	for i := 0; i < n; i++ {
		b.VertexID(labels[i])
	}
	for i := 0; i+1 < n; i++ {
		b.AddEdge(labels[i], labels[i+1], p)
	}
	g, err := b.Build()
	if err != nil {
		panic(err)
	}
	return g
}

// DisjointEdges returns k disjoint 2-vertex components, each a single edge
// of probability p: (A0,B0), (A1,B1), ...
func DisjointEdges(k int, p float64) *graph.Graph {
	b := graph.NewBuilder()
	for i := 0; i < k; i++ {
		u, v := pairLabel(i, 0), pairLabel(i, 1)
		b.AddEdge(u, v, p)
	}
	g, err := b.Build()
	if err != nil {
		panic(err)
	}
	return g
}

// DisjointTriangles returns k disjoint 3-cycles, each with uniform edge
// probability p.
func DisjointTriangles(k int, p float64) *graph.Graph {
	b := graph.NewBuilder()
	labels := vertexLabels(3 * k)
	for i := 0; i < k; i++ {
		a, c, d := labels[3*i], labels[3*i+1], labels[3*i+2]
		b.AddEdge(a, c, p)
		b.AddEdge(c, d, p)
		b.AddEdge(a, d, p)
	}
	g, err := b.Build()
	if err != nil {
		panic(err)
	}
	return g
}

// Star returns a hub vertex connected to n leaves, each edge with
// probability p (hub is vertex 0).
func Star(n int, p float64) *graph.Graph {
	b := graph.NewBuilder()
	hub := "hub"
	b.VertexID(hub)
	for i := 0; i < n; i++ {
		b.AddEdge(hub, pairLabel(i, 0), p)
	}
	g, err := b.Build()
	if err != nil {
		panic(err)
	}
	return g
}

func vertexLabels(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = pairLabel(i, 0)
	}
	return out
}

func pairLabel(i, which int) string {
	letters := "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	idx := i*2 + which
	if idx < len(letters) {
		return string(letters[idx])
	}
	return string(rune('a'+idx%26)) + string(rune('0'+idx/26))
}
