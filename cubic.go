package mat

// CubicBez is a single cubic Bézier segment.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// Points returns the control points as a sequence, the representation
// [Loop] stores curves in.
func (c CubicBez) Points() []Point {
	return []Point{c.P0, c.P1, c.P2, c.P3}
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

// Eval evaluates the curve at parameter t.
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	cc := Vec2(c.P2).Mul(mt * 3.0)
	d := Vec2(c.P3)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Reverse returns the same curve traversed in the opposite direction.
func (c CubicBez) Reverse() CubicBez {
	return CubicBez{c.P3, c.P2, c.P1, c.P0}
}
