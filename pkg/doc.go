// Package pkg provides the core libraries for babelgraph.
//
// # Overview
//
// babelgraph builds graphs from classic generators, places their vertices in
// 3D space, relaxes the layout and computes structural metrics. The pkg
// directory is organized into four main areas:
//
//  1. [graph] - The vertex and edge store every other package works on
//  2. [generate], [layout], [analysis] - Algorithms over that store
//  3. [io], [render] - Persistence (.bgx, JSON) and drawing (DOT, SVG, PNG, PDF)
//  4. [cache], [config], [observability], [errors] - Infrastructure
//
// # Architecture
//
// The typical data flow:
//
//	generator or .bgx/.json file
//	         ↓
//	    [graph] package (ids, names, colors, positions, weighted edges)
//	         ↓
//	    [layout] package (placement, force-directed, self-organizing)
//	         ↓
//	    [analysis] package (paths, PageRank, clustering, homophily)
//	         ↓
//	    .bgx/JSON, DOT/SVG/PNG/PDF, metric reports
//
// # Quick Start
//
//	import (
//	    "context"
//	    "github.com/matzehuels/babelgraph/pkg/analysis"
//	    "github.com/matzehuels/babelgraph/pkg/generate"
//	    bgio "github.com/matzehuels/babelgraph/pkg/io"
//	    "github.com/matzehuels/babelgraph/pkg/layout"
//	)
//
//	// 1. Generate a graph
//	g, _ := generate.StrangersBanquet(40, 4, 0.1, 0.8, generate.WithSeed(7))
//
//	// 2. Lay it out
//	_ = layout.FruchtermanReingold(g, layout.DefaultBounds())
//
//	// 3. Analyze it
//	report, _ := analysis.Analyze(context.Background(), g)
//
//	// 4. Save it
//	_ = bgio.ExportBGX(g, "banquet.bgx")
//
// # Main Packages
//
// [graph] - Directed graph with stable integer ids for vertices and edges,
// ordered iteration and an undirected mode that stores every connection as
// two edge records.
//
// [generate] - Empty, complete, random, k-regular, binary tree and
// strangers' banquet generators, all seedable.
//
// [layout] - Random, circle, spiral, sphere and per-group layer placement,
// Fruchterman-Reingold and the self-organizing relaxation step with its
// periodic [layout.Arranger].
//
// [analysis] - All-pairs shortest paths, average path length, closeness,
// PageRank, clustering coefficients and homophilic dyad density, plus a
// cached [analysis.Report].
//
// [io] - The line-oriented .bgx format and a JSON node-link format.
//
// [render/nodelink] - Node-link diagrams through Graphviz with vertices
// pinned at their layout positions.
//
// [render] - Conversion from SVG to PDF and PNG.
//
// [palette] - The named group colors.
//
// [cache] - File, redis and null caches for analysis reports.
//
// [config] - TOML configuration for bounds, layout, relaxation and caching.
//
// [observability] - Hooks for generation, loading, layout, analysis and
// cache events.
//
// [errors] - Coded errors and input validation.
//
// [buildinfo] - Version information injected at build time.
//
// # Testing
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/layout/...             # Specific package
//	BABELGRAPH_REDIS_ADDR=localhost:6379 go test ./pkg/cache/...
//
// [graph]: https://pkg.go.dev/github.com/matzehuels/babelgraph/pkg/graph
// [generate]: https://pkg.go.dev/github.com/matzehuels/babelgraph/pkg/generate
// [layout]: https://pkg.go.dev/github.com/matzehuels/babelgraph/pkg/layout
// [layout.Arranger]: https://pkg.go.dev/github.com/matzehuels/babelgraph/pkg/layout#Arranger
// [analysis]: https://pkg.go.dev/github.com/matzehuels/babelgraph/pkg/analysis
// [analysis.Report]: https://pkg.go.dev/github.com/matzehuels/babelgraph/pkg/analysis#Report
// [io]: https://pkg.go.dev/github.com/matzehuels/babelgraph/pkg/io
// [render]: https://pkg.go.dev/github.com/matzehuels/babelgraph/pkg/render
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/babelgraph/pkg/render/nodelink
// [palette]: https://pkg.go.dev/github.com/matzehuels/babelgraph/pkg/palette
// [cache]: https://pkg.go.dev/github.com/matzehuels/babelgraph/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/babelgraph/pkg/config
// [observability]: https://pkg.go.dev/github.com/matzehuels/babelgraph/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/babelgraph/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/babelgraph/pkg/buildinfo
package pkg
