package cluster

// VertexState is the tagged variant of a cluster vertex record. Exactly one
// of Uncovered, Covered or Center holds for any vertex at any point; this
// replaces the original implementation's negative-number sentinel encoding
// (a center id of -1 meaning "uncovered", a probability of 0 overloaded as
// "never assigned") with a type that cannot represent an invalid state.
type VertexState interface {
	isVertexState()
}

// Uncovered is a vertex with no assigned center yet. BestCenter and BestP
// track the best "unreliable" candidate seen so far (spec.md §4.6 step
// 4(c)): a center whose estimate exceeded the vertex's previous unreliable
// best but not p_curr. BestCenter is nil until such a candidate exists.
type Uncovered struct {
	BestCenter *int
	BestP      float64
}

// Covered is a non-center vertex assigned to Center with estimated
// connection probability P. The greedy cover step records P >= the
// threshold that covered it; the avg-prob post-loop augmentation records a
// below-threshold P, and the degenerate fallback records P = 0.
type Covered struct {
	Center int
	P      float64
}

// Center is a vertex that is itself a cluster center. Self is its own id,
// kept so a VertexState can be inspected without the caller's index.
type Center struct {
	Self int
}

func (Uncovered) isVertexState() {}
func (Covered) isVertexState()   {}
func (Center) isVertexState()    {}

// Clustering is the working (or finished) assignment of every vertex to a
// state. Index i holds vertex i's record.
type Clustering struct {
	Info []VertexState
}

// NewClustering returns a Clustering of n vertices, all Uncovered.
func NewClustering(n int) *Clustering {
	c := &Clustering{Info: make([]VertexState, n)}
	c.Reset()
	return c
}

// Reset marks every vertex Uncovered, discarding any prior assignment.
func (c *Clustering) Reset() {
	for i := range c.Info {
		c.Info[i] = Uncovered{}
	}
}

// NumVertices returns the number of vertex records.
func (c *Clustering) NumVertices() int {
	return len(c.Info)
}

// IsUncovered reports whether vertex v currently has no center.
func (c *Clustering) IsUncovered(v int) bool {
	_, ok := c.Info[v].(Uncovered)
	return ok
}

// IsCenter reports whether vertex v is itself a center.
func (c *Clustering) IsCenter(v int) bool {
	_, ok := c.Info[v].(Center)
	return ok
}

// CenterOf returns the center assigned to v and true, for a Covered or
// Center vertex; (0, false) for an Uncovered vertex.
func (c *Clustering) CenterOf(v int) (int, bool) {
	switch s := c.Info[v].(type) {
	case Center:
		return s.Self, true
	case Covered:
		return s.Center, true
	default:
		return 0, false
	}
}

// Probability returns v's current estimated connection probability to its
// center (1.0 if v is itself a center, 0.0 if still uncovered).
func (c *Clustering) Probability(v int) float64 {
	switch s := c.Info[v].(type) {
	case Center:
		return 1.0
	case Covered:
		return s.P
	default:
		return 0.0
	}
}

// MakeCenter promotes v to be its own center.
func (c *Clustering) MakeCenter(v int) {
	c.Info[v] = Center{Self: v}
}

// Cover assigns uncovered (or re-covered) vertex v to center with
// probability p.
func (c *Clustering) Cover(v, center int, p float64) {
	c.Info[v] = Covered{Center: center, P: p}
}

// UnreliableCover records a new best-but-still-unreliable candidate for
// still-uncovered vertex v, without covering it.
func (c *Clustering) UnreliableCover(v, center int, p float64) {
	bc := center
	c.Info[v] = Uncovered{BestCenter: &bc, BestP: p}
}

// UnreliableProbability returns the best unreliable candidate probability
// recorded for uncovered vertex v, or 0 if none has been recorded.
func (c *Clustering) UnreliableProbability(v int) float64 {
	if u, ok := c.Info[v].(Uncovered); ok {
		return u.BestP
	}
	return 0
}

// CountUncovered returns the number of vertices still Uncovered.
func (c *Clustering) CountUncovered() int {
	n := 0
	for _, s := range c.Info {
		if _, ok := s.(Uncovered); ok {
			n++
		}
	}
	return n
}

// Clone returns a deep copy, used to snapshot the incumbent winner.
func (c *Clustering) Clone() *Clustering {
	out := &Clustering{Info: make([]VertexState, len(c.Info))}
	copy(out.Info, c.Info)
	return out
}

// Warning is a non-fatal run-level diagnostic, e.g. the degenerate fallback
// recorded when the post-loop fixup must assign a zero-probability vertex.
type Warning struct {
	Message string
}
