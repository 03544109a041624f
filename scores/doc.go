// Package scores computes reliability diagnostics over a finished
// clustering: p_min, sum/average probability, ACR (Average Cluster
// Reliability) and inner/outer AVPR (Average Vertex Pairwise Reliability).
//
// ACR is answered directly by the sampler's connection-probability query;
// AVPR needs each possible world's full partition and is computed by a
// parallel fan-out over samples, grounded on the same worker-buffer/reduce
// shape the sampler itself uses for probability estimation.
package scores
