// Package rng provides the splittable pseudo-random number source used to
// seed per-worker streams for Monte-Carlo world sampling.
//
// A single root stream is derived from a uint64 seed via SplitMix64, then
// expanded into the 16-word state of a Xorshift1024* generator. Each worker
// receives an independent stream by calling Jump on a clone of the root
// stream once per worker index: worker w's stream is Jump applied w times.
// Jump advances the generator by 2^512 draws, which is far beyond what any
// single worker will consume in one run, so worker streams never overlap.
//
// The concrete generator (SplitMix64 + Xorshift1024*) is an implementation
// detail: any splittable generator with a documented jump-ahead operation
// satisfies the contract. A fixed choice is made here because reproducing a
// run bit-for-bit given a seed requires one.
package rng
