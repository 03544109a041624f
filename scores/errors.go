package scores

import "errors"

// ErrAVPRUnsupported is returned by ComputeAVPR when the sampler in use
// does not expose per-world partitions (e.g. the BFS sampler, whose worlds
// have no global connected-components structure to intersect against).
var ErrAVPRUnsupported = errors.New("scores: sampler does not support per-world AVPR computation")
