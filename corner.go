package mat

// CornerTolerance is the angular tolerance separating Sharp from QuiteSharp
// and Dull from QuiteDull, expressed as the cross product of two unit
// tangents. The value is sin(4°): corners turning by less than about 4
// degrees are not "quite" anything.
//
// Changing it moves only the QuiteSharp/QuiteDull thresholds; Sharp and
// Dull always come from the exact predicate.
const CornerTolerance = 0.06975647374412530

// Corner describes the joint between a curve and its successor in a loop:
// the point where the incoming curve's last control point meets the
// outgoing curve's first.
//
// A Corner is a pure value. Once constructed it is never modified.
type Corner struct {
	// Unit tangents at the joint: the end tangent of the incoming curve
	// followed by the start tangent of the outgoing curve. Normalized with a
	// square root, hence inexact.
	Tangents [2]Vec2
	// Cross product of the two unit tangents. The sign carries the turning
	// direction; for small angles the magnitude approximates the sine of
	// the angle between the tangents.
	CrossTangents float64
	// Turning direction from the exact orientation predicate: Sharp for a
	// right bend, Dull for a left bend. Mutually exclusive; both false only
	// when the curves continue straight through the joint.
	Sharp bool
	Dull  bool
	// Like Sharp and Dull, but additionally requiring the turn to exceed
	// CornerTolerance, "sharp enough to matter".
	QuiteSharp bool
	QuiteDull  bool
}

// ClassifyCorner classifies the corner at the interface between an incoming
// curve ending at the joint and an outgoing curve starting at it. Both are
// given as control point sequences of 2 to 4 points, the incoming curve's
// last point coinciding with the outgoing curve's first.
//
// Sharp and Dull are exact under the grid precondition of [InterfaceTurn].
// QuiteSharp and QuiteDull compare the cross product of the unit tangents
// against [CornerTolerance] when the raw tangents point into the same
// half-plane (their dot product is positive). The small-angle approximation
// breaks down otherwise, since it cannot tell a hairpin cusp from a
// near-straight dull turn, so for a non-positive dot product they fall back
// to the exact classification.
//
// Degenerate input (fewer than 2 points, coincident points at the joint)
// panics.
func ClassifyCorner(psI, psO []Point) Corner {
	turn := InterfaceTurn(psI, psO)

	// Exact under the grid precondition.
	tanI := psI[len(psI)-1].Sub(psI[len(psI)-2])
	tanO := psO[1].Sub(psO[0])

	utanI := tanI.Normalize()
	utanO := tanO.Normalize()
	cross := utanI.Cross(utanO)

	corner := Corner{
		Tangents:      [2]Vec2{utanI, utanO},
		CrossTangents: cross,
		Sharp:         turn < 0,
		Dull:          turn > 0,
	}
	if tanI.Dot(tanO) > 0 {
		corner.QuiteSharp = cross < -CornerTolerance
		corner.QuiteDull = cross > CornerTolerance
	} else {
		corner.QuiteSharp = corner.Sharp
		corner.QuiteDull = corner.Dull
	}
	return corner
}
