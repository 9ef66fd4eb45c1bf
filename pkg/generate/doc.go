// Package generate builds graphs with specific topologies.
//
// Every generator returns a fresh [graph.Graph] whose vertex ids run from 0
// to n-1 in creation order. Deterministic generators ([Empty], [Complete],
// [KRegular], [BinaryTree]) depend only on their arguments. The stochastic
// ones ([Random], [StrangersBanquet]) draw from a math/rand/v2 source that can
// be fixed with [WithSeed] or [WithRand]:
//
//	g, err := generate.Random(50, 0.1, generate.WithSeed(7))
//
// Both stochastic generators are rejection samplers. They have no inherent
// iteration bound, so callers facing adversarial parameters should pass
// [WithMaxAttempts]; on exhaustion the partial graph is returned along with
// [ErrNotConverged].
package generate
