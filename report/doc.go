// Package report provides the structured logger and experiment-result
// serialisation for a clustering run: a thin wrapper over zerolog matching
// the --debug/--trace CLI flags to its Debug/Trace levels, and a JSON
// (optionally bzip2-compressed) result document carrying the run's tags,
// clustering table, performance timings, score tables and algorithm-info
// diagnostics.
package report
