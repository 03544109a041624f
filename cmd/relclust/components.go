package main

import "github.com/go-ugraph/relclust/graph"

// countConnectedComponents counts g's structural connected components,
// ignoring edge probabilities (every edge with p > 0 counts as an
// adjacency for this purpose, per spec.md §7's "target below number of
// connected components" hard refusal).
func countConnectedComponents(g *graph.Graph) int {
	n := g.NumVertices()
	visited := make([]bool, n)
	count := 0
	queue := make([]int, 0, n)

	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		count++
		visited[start] = true
		queue = queue[:0]
		queue = append(queue, start)
		for len(queue) > 0 {
			v := queue[len(queue)-1]
			queue = queue[:len(queue)-1]
			for _, h := range g.Neighbors(v) {
				if !visited[h.To] {
					visited[h.To] = true
					queue = append(queue, h.To)
				}
			}
		}
	}
	return count
}
