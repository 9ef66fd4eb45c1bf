// Package analysis computes structural metrics over a [graph.Graph].
//
// All functions are read-only. Shortest paths use Floyd-Warshall over a
// gonum dense matrix; the per-vertex averages, the graph-wide average and
// closeness centrality are derived from one [Distances] value, so callers
// needing several of them should compute [ShortestPaths] once.
//
// PageRank is the unnormalized variant: the teleport term is (1-d), not
// (1-d)/N. Scores therefore do not sum to one.
//
// [Analyze] bundles everything into a JSON-serializable [Report], and
// [AnalyzeCached] memoizes reports in a [cache.Cache].
package analysis
