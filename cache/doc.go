// Package cache implements the per-source connection-counts cache: a
// bounded map from source vertex to an incrementally-updated counts
// element, evicted by an approximate least-frequently-used policy driven by
// an explicit access counter rather than a generation clock.
//
// The cache is mutated only from the engine thread, between the sampler's
// parallel estimation regions (see package sampler); it requires no lock of
// its own.
package cache
