package mat

import (
	"math"
	"math/big"
)

// InterfaceTurn returns the turning direction at the interface where the
// incoming curve psI ends and the outgoing curve psO starts: -1 if the
// outgoing curve bends to the right of the incoming curve's polynomial
// extension (a sharp corner), +1 if it bends to the left (a dull corner),
// and 0 if the two curves are a straight continuation of one another.
//
// Each sequence must hold between 2 and 4 control points, with psI ending
// at the point psO starts at. The result is exact, never wrong due to
// floating point rounding, provided the control points are grid-aligned;
// see [SnapPoint]. For arbitrary coordinates the sign is still computed
// robustly, but a zero result no longer certifies an exact straight
// continuation.
//
// A zero-length end or start tangent is a contract violation and panics.
func InterfaceTurn(psI, psO []Point) int {
	d1, d2, d3 := derivsAtEnd(psI)
	e1, e2, e3 := derivsAtStart(psO)
	if (d1 == Vec2{}) || (e1 == Vec2{}) {
		panic("mat: degenerate curve interface: zero-length tangent")
	}

	if s := detSign(d1, e1); s != 0 {
		return s
	}

	// The first derivatives are collinear, so the turn is decided by how the
	// two curves bend away from their shared tangent line. Reparametrize the
	// outgoing curve by the tangent speed ratio λ = dot(d1,e1)/dot(d1,d1);
	// its deviation from the incoming curve's extension is then
	//
	//	(e2/λ² − d2)·t²/2 + (e3/λ³ − d3)·t³/6 + …
	//
	// and the side the deviation falls on is the sign of its cross product
	// with d1. Clearing denominators level by level gives
	//
	//	L_k = cross(d1, e_k) − λ^k·cross(d1, d_k)
	//
	// which also covers λ < 0, where the outgoing curve doubles back over
	// the incoming one. These terms only decide when the determinant above
	// ties, and they must never lie, so they are evaluated in rational
	// arithmetic.
	lam := ratDot(d1, e1)
	lam.Quo(lam, ratDot(d1, d1))
	lam2 := new(big.Rat).Mul(lam, lam)
	lam3 := new(big.Rat).Mul(lam2, lam)

	l2 := ratCross(d1, e2)
	l2.Sub(l2, lam2.Mul(lam2, ratCross(d1, d2)))
	if s := l2.Sign(); s != 0 {
		return s
	}
	l3 := ratCross(d1, e3)
	l3.Sub(l3, lam3.Mul(lam3, ratCross(d1, d3)))
	return l3.Sign()
}

// derivsAtStart returns the curve's first three derivative vectors at its
// start point. Derivatives beyond the curve's degree are zero.
func derivsAtStart(ps []Point) (d1, d2, d3 Vec2) {
	n := len(ps) - 1
	fn := float64(n)
	d1 = ps[1].Sub(ps[0]).Mul(fn)
	if n >= 2 {
		d2 = ps[2].Sub(ps[1]).Sub(ps[1].Sub(ps[0])).Mul(fn * (fn - 1))
	}
	if n >= 3 {
		d3 = ps[3].Sub(ps[2]).
			Sub(ps[2].Sub(ps[1]).Mul(2)).
			Add(ps[1].Sub(ps[0])).
			Mul(fn * (fn - 1) * (fn - 2))
	}
	return d1, d2, d3
}

// derivsAtEnd returns the curve's first three derivative vectors at its end
// point. Derivatives beyond the curve's degree are zero.
func derivsAtEnd(ps []Point) (d1, d2, d3 Vec2) {
	n := len(ps) - 1
	fn := float64(n)
	d1 = ps[n].Sub(ps[n-1]).Mul(fn)
	if n >= 2 {
		d2 = ps[n].Sub(ps[n-1]).Sub(ps[n-1].Sub(ps[n-2])).Mul(fn * (fn - 1))
	}
	if n >= 3 {
		d3 = ps[n].Sub(ps[n-1]).
			Sub(ps[n-1].Sub(ps[n-2]).Mul(2)).
			Add(ps[n-2].Sub(ps[n-3])).
			Mul(fn * (fn - 1) * (fn - 2))
	}
	return d1, d2, d3
}

// detSign returns the sign of the cross product of a and b, computed with
// Kahan's FMA determinant algorithm. The relative error is at most 2 ulps,
// so the sign is correct whenever the true cross product is nonzero. For
// grid-aligned input the intermediate products are exact and a true zero is
// reported as zero.
func detSign(a, b Vec2) int {
	w := a.Y * b.X
	e := math.FMA(a.Y, b.X, -w)
	f := math.FMA(a.X, b.Y, -w)
	det := f - e
	switch {
	case det > 0:
		return 1
	case det < 0:
		return -1
	default:
		return 0
	}
}

func rat(f float64) *big.Rat {
	r := new(big.Rat).SetFloat64(f)
	if r == nil {
		panic("mat: non-finite coordinate in exact predicate")
	}
	return r
}

// ratCross computes the cross product of a and b exactly.
func ratCross(a, b Vec2) *big.Rat {
	x := new(big.Rat).Mul(rat(a.X), rat(b.Y))
	y := new(big.Rat).Mul(rat(a.Y), rat(b.X))
	return x.Sub(x, y)
}

// ratDot computes the dot product of a and b exactly.
func ratDot(a, b Vec2) *big.Rat {
	x := new(big.Rat).Mul(rat(a.X), rat(b.X))
	y := new(big.Rat).Mul(rat(a.Y), rat(b.Y))
	return x.Add(x, y)
}
