// Package layout assigns 3D positions to the vertices of a [graph.Graph].
//
// Deterministic placements ([Circle], [Spiral], [Sphere], [LayersByGroup])
// depend only on vertex order and color. [Random] and [RandomVertex] draw
// uniform points inside a [Bounds] box.
//
// Two force-directed methods are provided. [SelfOrganize] performs a single
// relaxation step and is designed to be driven periodically, which is what
// [Arranger] models: the caller owns the clock and calls [Arranger.Tick].
// [FruchtermanReingold] is a blocking, fixed-iteration layout with a cooling
// schedule.
//
// Layout only writes positions; vertex and edge identity never changes.
package layout
