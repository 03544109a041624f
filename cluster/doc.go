// Package cluster implements the reliability-oriented clustering engines:
// min-prob (k-center-style), avg-prob (k-median-style) and a concurrent
// batched variant, all sharing one probing loop over a sampler.Sampler and
// one cache.Cache.
//
// The min-prob and avg-prob engines drive a guesser.Guesser (or a
// ScoreGuesser) through a sequence of threshold guesses, rebuilding a
// candidate clustering at every guess and keeping the best valid one seen so
// far. The concurrent engine uses no guesser: it builds one clustering,
// halving its threshold whenever a round cannot cover enough vertices.
package cluster
