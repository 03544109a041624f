// Package sampler implements the Monte-Carlo connection-probability
// estimator: a growing, append-only pool of "possible worlds" drawn from the
// edge-independent Bernoulli model, and the queries that turn a prefix of
// that pool into per-source connection-probability estimates.
//
// Two interchangeable implementations satisfy the Sampler contract: CC
// (full connected-components, via union-find reduction) and BFS
// (bounded-depth breadth-first reachability). Both answer
// MinProbability/ConnectionProbabilities/ConnectionProbabilitiesCache/
// ConnectionProbability identically from the caller's point of view; a
// clustering engine is generic over either.
//
// Growing the pool never regenerates or reorders existing samples — only
// new slots are written — and world generation fans out across a fixed
// pool of worker goroutines, each with its own persistent RNG stream and
// scratch buffers, so that a world's content depends only on its own index
// and not on how many times the pool has been grown to reach it.
package sampler
