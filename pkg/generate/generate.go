package generate

import (
	"errors"
	"fmt"
	"math"

	"github.com/matzehuels/babelgraph/pkg/graph"
)

var (
	// ErrNegativeCount is returned for a negative vertex count, degree or
	// generation number.
	ErrNegativeCount = graph.ErrNegativeCount

	// ErrInvalidProbability is returned when a density or mu lies outside [0, 1].
	ErrInvalidProbability = errors.New("probability out of range [0, 1]")

	// ErrNotConverged is returned together with the partial graph when a
	// rejection sampler runs out of attempts or can provably make no progress.
	ErrNotConverged = errors.New("generator did not reach its target edge count")
)

// Empty returns a graph with n isolated vertices.
func Empty(n int, opts ...Option) (*graph.Graph, error) {
	c := newConfig(opts)
	return empty(n, c)
}

func empty(n int, c config) (*graph.Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("empty(%d): %w", n, ErrNegativeCount)
	}
	g := graph.New()
	if c.undirected {
		g.MakeUndirected()
	}
	_ = g.AddVertices(n)
	return g, nil
}

// Complete returns the complete graph on n vertices: both directed edges for
// every unordered pair, n(n-1) records in total.
func Complete(n int, opts ...Option) (*graph.Graph, error) {
	g, err := empty(n, newConfig(opts))
	if err != nil {
		return nil, err
	}
	for i := range n {
		for j := i + 1; j < n; j++ {
			g.AddEdge(i, j)
			g.AddEdge(j, i)
		}
	}
	return g, nil
}

// Random returns a graph with n vertices and roughly density*n*(n-1) edge
// records, drawn by rejection sampling over ordered pairs. The target is
// floor(density*n*(n-1)), at least 1 when density > 0 and n > 1.
//
// In undirected mode every accepted pair adds two records, so the target is
// consumed two at a time.
//
// Sampling has no built-in bound: as density approaches 1 it slows down
// considerably. Use [WithMaxAttempts] to cap it.
func Random(n int, density float64, opts ...Option) (*graph.Graph, error) {
	if density < 0 || density > 1 || math.IsNaN(density) {
		return nil, fmt.Errorf("random(%d, %g): %w", n, density, ErrInvalidProbability)
	}
	c := newConfig(opts)
	g, err := empty(n, c)
	if err != nil {
		return nil, err
	}
	if n < 2 {
		return g, nil
	}

	pairs := n * (n - 1)
	target := int(math.Floor(density * float64(pairs)))
	if target == 0 && density > 0 {
		target = 1
	}
	step := 1
	if c.undirected {
		step = 2
	}

	for remaining, attempt := target, 1; remaining > 0; attempt++ {
		if c.exhausted(attempt) {
			return g, fmt.Errorf("random(%d, %g): %d of %d edges after %d attempts: %w",
				n, density, target-remaining, target, c.maxAttempts, ErrNotConverged)
		}
		if _, err := g.AddEdge(c.rng.IntN(n), c.rng.IntN(n)); err == nil {
			remaining -= step
		}
	}
	return g, nil
}

// KRegular returns a circular lattice: vertex i is connected in both
// directions to the k/2 vertices following it modulo n, so every vertex has
// k distinct neighbors and 2k edge records (k in, k out). An odd k is
// rounded up to the next even value. For k >= n the lattice saturates at the
// complete graph.
func KRegular(n, k int, opts ...Option) (*graph.Graph, error) {
	if k < 0 {
		return nil, fmt.Errorf("kregular(%d, %d): %w", n, k, ErrNegativeCount)
	}
	g, err := empty(n, newConfig(opts))
	if err != nil {
		return nil, err
	}
	if k%2 == 1 {
		k++
	}
	for i := range n {
		for j := 1; j <= k/2; j++ {
			next := (i + j) % n
			g.AddEdge(i, next)
			g.AddEdge(next, i)
		}
	}
	return g, nil
}

// BinaryTree returns a tree in heap order: vertex i has children 2i+1 and
// 2i+2 when those are below n. Edges point from parent to child.
func BinaryTree(n int, opts ...Option) (*graph.Graph, error) {
	g, err := empty(n, newConfig(opts))
	if err != nil {
		return nil, err
	}
	for i := range n {
		for _, child := range []int{2*i + 1, 2*i + 2} {
			if child < n {
				g.AddEdge(i, child)
			}
		}
	}
	return g, nil
}

// maxGenerations keeps 2^generations - 1 well inside int range.
const maxGenerations = 30

// BinaryTreeGenerations returns a full binary tree with the given number of
// levels, that is 2^generations - 1 vertices.
func BinaryTreeGenerations(generations int, opts ...Option) (*graph.Graph, error) {
	if generations < 0 {
		return nil, fmt.Errorf("binary tree generations %d: %w", generations, ErrNegativeCount)
	}
	if generations > maxGenerations {
		return nil, fmt.Errorf("binary tree generations %d exceeds %d", generations, maxGenerations)
	}
	return BinaryTree(1<<generations-1, opts...)
}
