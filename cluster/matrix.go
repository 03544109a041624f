package cluster

// centerMatrix is a small square, symmetric, row-major matrix of pairwise
// center-to-center connection probabilities, used only by the concurrent
// engine's optional shrink pass (spec §4.8). Cut down from the dense
// float64 matrix shape used elsewhere in the pack (row/col accessors over
// a flat backing slice) to the square symmetric sub-case this pass needs.
type centerMatrix struct {
	n    int
	data []float64
}

// newCenterMatrix returns an n x n matrix with 1.0 on the diagonal and 0.0
// elsewhere.
func newCenterMatrix(n int) *centerMatrix {
	m := &centerMatrix{n: n, data: make([]float64, n*n)}
	for i := 0; i < n; i++ {
		m.set(i, i, 1.0)
	}
	return m
}

func (m *centerMatrix) at(i, j int) float64 {
	return m.data[i*m.n+j]
}

func (m *centerMatrix) set(i, j int, v float64) {
	m.data[i*m.n+j] = v
	m.data[j*m.n+i] = v
}
