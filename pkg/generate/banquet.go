package generate

import (
	"fmt"
	"math"

	"github.com/matzehuels/babelgraph/pkg/graph"
)

// StrangersBanquet returns an undirected homophily-biased random graph.
//
// Vertices are colored round-robin over groups (clamped to [1, n]). Unordered
// pairs are drawn at random from a pool of candidates: a pair inside one group
// is always accepted, while a pair across groups is accepted only if two
// independent uniform draws are both at least mu. Accepted pairs leave the
// pool; rejected ones stay and may be drawn again. Sampling stops once
// floor(density * n(n-1)/2) connections exist.
//
// With a high mu and a high density the acceptance rate of the remaining
// cross-group pairs can become tiny, so convergence slows down or stalls.
// That is a property of the model. Use [WithMaxAttempts] to bound it; when
// mu >= 1 and only cross-group pairs remain, the call stops immediately with
// [ErrNotConverged].
func StrangersBanquet(n, groups int, density, mu float64, opts ...Option) (*graph.Graph, error) {
	switch {
	case n < 0:
		return nil, fmt.Errorf("banquet(%d): %w", n, ErrNegativeCount)
	case density < 0 || density > 1 || math.IsNaN(density):
		return nil, fmt.Errorf("banquet density %g: %w", density, ErrInvalidProbability)
	case mu < 0 || mu > 1 || math.IsNaN(mu):
		return nil, fmt.Errorf("banquet mu %g: %w", mu, ErrInvalidProbability)
	}

	c := newConfig(opts)
	c.undirected = true
	g, _ := empty(n, c)

	groups = max(1, min(groups, n))
	for i := range n {
		g.SetColor(i, i%groups)
	}

	type pair struct{ a, b int }
	pool := make([]pair, 0, n*(n-1)/2)
	sameGroup := 0
	for i := range n {
		for j := i + 1; j < n; j++ {
			pool = append(pool, pair{i, j})
			if i%groups == j%groups {
				sameGroup++
			}
		}
	}

	target := int(math.Floor(density * float64(len(pool))))
	for made, attempt := 0, 1; made < target; attempt++ {
		if c.exhausted(attempt) || (mu >= 1 && sameGroup == 0) {
			return g, fmt.Errorf("banquet: %d of %d connections after %d attempts: %w",
				made, target, attempt-1, ErrNotConverged)
		}
		idx := c.rng.IntN(len(pool))
		p := pool[idx]
		same := g.Color(p.a) == g.Color(p.b)
		if !same {
			x, y := c.rng.Float64(), c.rng.Float64()
			if x < mu || y < mu {
				continue
			}
		}
		g.AddEdge(p.a, p.b)
		made++
		if same {
			sameGroup--
		}
		pool[idx] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]
	}
	return g, nil
}
