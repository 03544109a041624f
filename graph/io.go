package graph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Load reads an edge-list graph from r.
//
// Format: one edge per line, "SRC\tDST[\tPROB]" (tab- or space-separated).
// Lines that are empty or begin with '#' are comments. A missing PROB
// defaults to 1.0. Vertex tokens are arbitrary strings; ids are assigned in
// first-seen order. Duplicate undirected edges are silently dropped (first
// occurrence wins). A self-edge is accepted but has no semantic effect.
func Load(r io.Reader) (*Graph, error) {
	b := NewBuilder()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 && len(fields) != 3 {
			return nil, fmt.Errorf("graph: line %d: %w", lineNo, ErrMalformedLine)
		}
		src, dst := fields[0], fields[1]
		prob := 1.0
		if len(fields) == 3 {
			p, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("graph: line %d: %w", lineNo, ErrMalformedLine)
			}
			if p <= 0 || p > 1 {
				return nil, fmt.Errorf("graph: line %d: %w", lineNo, ErrInvalidProbability)
			}
			prob = p
		}
		b.AddEdge(src, dst, prob)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graph: reading edge list: %w", err)
	}
	return b.Build()
}
