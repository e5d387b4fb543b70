package mat

import "math"

// DefaultGridBits is a grid resolution under which the floating point path
// of [InterfaceTurn] is exact: coordinate differences carry at most
// DefaultGridBits+1 significant bits, the derivative vectors at most three
// more, and the products inside the level-1 determinant therefore still fit
// a float64 significand.
const DefaultGridBits = 22

// GridSpacing returns the spacing of a power-of-two grid covering
// [-extent, extent] with the given number of significant bits per
// coordinate.
func GridSpacing(extent float64, bits int) float64 {
	_, exp := math.Frexp(extent)
	return math.Ldexp(1, exp-bits)
}

// SnapPoint rounds the coordinates of p to the nearest multiple of spacing,
// which must be a power of two. Snapping all control points of a boundary
// to one common grid establishes the precondition under which
// [InterfaceTurn] and the Sharp/Dull classification of [ClassifyCorner] are
// exact: on the grid, scaling by spacing is lossless, so differences and
// bounded products of snapped coordinates round to their true values.
func SnapPoint(p Point, spacing float64) Point {
	return Point{
		X: math.Round(p.X/spacing) * spacing,
		Y: math.Round(p.Y/spacing) * spacing,
	}
}

// SnapPoints snaps a control point sequence onto the grid. It returns a new
// slice and leaves ps unmodified.
func SnapPoints(ps []Point, spacing float64) []Point {
	out := make([]Point, len(ps))
	for i, p := range ps {
		out[i] = SnapPoint(p, spacing)
	}
	return out
}
