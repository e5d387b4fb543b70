// Package mat provides the geometric groundwork for medial axis transforms
// of shapes bounded by Bézier curves.
//
// A shape boundary is represented as one or more [Loop]s, each a closed,
// cyclically ordered sequence of Bézier [Curve]s (lines, quadratics, or
// cubics, stored uniformly as control-point sequences). Loops can be built
// directly from control points with [NewLoop], from cubic Béziers with
// [FromCubics], or from a sequence of path elements with
// [LoopsFromElements].
//
// # Corners
//
// The central operation is classifying the corner formed where one curve of
// a loop ends and the next begins. [ClassifyCorner] produces a [Corner]
// descriptor: the unit tangents on either side of the joint, their cross
// product, and four booleans describing the turn. Sharp and Dull carry the
// topological turning direction and are computed with an exact orientation
// predicate ([InterfaceTurn]); QuiteSharp and QuiteDull additionally require
// the turn to exceed a small angular tolerance ([CornerTolerance]) and are
// computed from inexact unit tangents. Downstream algorithms (offsetting,
// medial axis construction, fillet and miter decisions) branch on these
// fields.
//
// [Curve.EndCorner] memoizes the classification per curve, so walking a
// loop repeatedly never reclassifies a joint.
//
// # Exactness
//
// The predicate's exactness rests on a precondition: control point
// coordinates must be aligned to a common power-of-two grid with a bounded
// number of significant bits, so that differences of consecutive control
// points (and the products the predicate forms from them) are exact in
// float64. [SnapPoint] and [GridSpacing] establish this precondition.
// Feeding arbitrary floating-point coordinates voids the predicate's
// guarantees but never its termination.
//
// Unit tangent normalization takes a square root and is inherently inexact;
// the package therefore never derives a topological decision from unit
// tangents alone.
//
// # Literature
//
//   - [A Primer on Bézier Curves]
//   - [Adaptive Precision Floating-Point Arithmetic and Fast Robust Geometric Predicates] by Jonathan Shewchuk
//   - [Further Analysis of Kahan's Algorithm for the Accurate Computation of 2x2 Determinants] by Jeannerod, Louvet, and Muller
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [Adaptive Precision Floating-Point Arithmetic and Fast Robust Geometric Predicates]: https://people.eecs.berkeley.edu/~jrs/papers/robustr.pdf
// [Further Analysis of Kahan's Algorithm for the Accurate Computation of 2x2 Determinants]: https://hal.science/hal-00649347
package mat
