package mat

import (
	"math"
	"testing"
)

func TestClassifyCornerCollinear(t *testing.T) {
	corner := ClassifyCorner(
		[]Point{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0)},
		[]Point{Pt(3, 0), Pt(4, 0), Pt(5, 0), Pt(6, 0)},
	)
	want := Corner{
		Tangents:      [2]Vec2{Vec(1, 0), Vec(1, 0)},
		CrossTangents: 0,
	}
	diff(t, want, corner)
}

func TestClassifyCornerRightAngle(t *testing.T) {
	// The raw tangents are orthogonal, so the dot product is exactly zero
	// and the classification must come from the exact predicate, not the
	// angular threshold.
	left := ClassifyCorner(
		[]Point{Pt(0, 0), Pt(1, 0)},
		[]Point{Pt(1, 0), Pt(1, 1)},
	)
	diff(t, Corner{
		Tangents:      [2]Vec2{Vec(1, 0), Vec(0, 1)},
		CrossTangents: 1,
		Dull:          true,
		QuiteDull:     true,
	}, left)

	right := ClassifyCorner(
		[]Point{Pt(0, 0), Pt(1, 0)},
		[]Point{Pt(1, 0), Pt(1, -1)},
	)
	diff(t, Corner{
		Tangents:      [2]Vec2{Vec(1, 0), Vec(0, -1)},
		CrossTangents: -1,
		Sharp:         true,
		QuiteSharp:    true,
	}, right)
}

// A turn below the angular tolerance is sharp or dull, but not quite.
func TestClassifyCornerShallowTurn(t *testing.T) {
	turn := func(deg float64) Corner {
		th := deg * math.Pi / 180
		return ClassifyCorner(
			[]Point{Pt(-1, 0), Pt(0, 0)},
			[]Point{Pt(0, 0), Pt(math.Cos(th), math.Sin(th))},
		)
	}

	shallow := turn(2)
	if !shallow.Dull || shallow.Sharp {
		t.Errorf("2° turn: got Sharp=%t Dull=%t, want dull", shallow.Sharp, shallow.Dull)
	}
	if shallow.QuiteDull || shallow.QuiteSharp {
		t.Errorf("2° turn: got QuiteSharp=%t QuiteDull=%t, want neither", shallow.QuiteSharp, shallow.QuiteDull)
	}
	if got, want := shallow.CrossTangents, math.Sin(2*math.Pi/180); math.Abs(got-want) > 1e-12 {
		t.Errorf("2° turn: got cross %g, want approximately %g", got, want)
	}

	if c := turn(8); !c.QuiteDull || c.QuiteSharp {
		t.Errorf("8° turn: got QuiteSharp=%t QuiteDull=%t, want quite dull", c.QuiteSharp, c.QuiteDull)
	}
	if c := turn(-8); !c.QuiteSharp || c.QuiteDull {
		t.Errorf("-8° turn: got QuiteSharp=%t QuiteDull=%t, want quite sharp", c.QuiteSharp, c.QuiteDull)
	}
}

// At a hairpin the unit tangents point in near-opposite directions and
// their cross product is useless: it cannot tell a full reversal from no
// turn at all. The quite-classification must fall back to the exact one.
func TestClassifyCornerCusp(t *testing.T) {
	corner := ClassifyCorner(
		[]Point{Pt(0, 0), Pt(1, 0)},
		[]Point{Pt(1, 0), Pt(0, 0), Pt(0, 1)},
	)
	diff(t, Corner{
		Tangents:      [2]Vec2{Vec(1, 0), Vec(-1, 0)},
		CrossTangents: 0,
		Dull:          true,
		QuiteDull:     true,
	}, corner)
}

// Mirroring the configuration across the x axis negates the cross product
// and swaps sharp with dull.
func TestClassifyCornerMirror(t *testing.T) {
	for _, tt := range turnTests {
		t.Run(tt.name, func(t *testing.T) {
			c := ClassifyCorner(tt.psI, tt.psO)
			m := ClassifyCorner(mirrorY(tt.psI), mirrorY(tt.psO))
			if m.CrossTangents != -c.CrossTangents {
				t.Errorf("got mirrored cross %g, want %g", m.CrossTangents, -c.CrossTangents)
			}
			if m.Sharp != c.Dull || m.Dull != c.Sharp {
				t.Errorf("got mirrored Sharp=%t Dull=%t, want Sharp=%t Dull=%t",
					m.Sharp, m.Dull, c.Dull, c.Sharp)
			}
			if m.QuiteSharp != c.QuiteDull || m.QuiteDull != c.QuiteSharp {
				t.Errorf("got mirrored QuiteSharp=%t QuiteDull=%t, want QuiteSharp=%t QuiteDull=%t",
					m.QuiteSharp, m.QuiteDull, c.QuiteDull, c.QuiteSharp)
			}
		})
	}
}

// Exactly one of Sharp and Dull holds unless the curves continue straight.
func TestClassifyCornerExclusive(t *testing.T) {
	for _, tt := range turnTests {
		t.Run(tt.name, func(t *testing.T) {
			c := ClassifyCorner(tt.psI, tt.psO)
			if tt.want == 0 {
				if c.Sharp || c.Dull {
					t.Errorf("got Sharp=%t Dull=%t for straight continuation, want neither", c.Sharp, c.Dull)
				}
			} else if c.Sharp == c.Dull {
				t.Errorf("got Sharp=%t Dull=%t, want exactly one", c.Sharp, c.Dull)
			}
			if c.QuiteSharp && c.QuiteDull {
				t.Error("QuiteSharp and QuiteDull are both set")
			}
			for i, tan := range c.Tangents {
				if math.Abs(tan.Hypot2()-1) > 1e-12 {
					t.Errorf("tangent %d = %s is not unit length", i, tan)
				}
			}
		})
	}
}

// The quite-classification is strictly stronger than the exact one on the
// same-direction branch.
func TestClassifyCornerToleranceContainment(t *testing.T) {
	for _, tt := range turnTests {
		t.Run(tt.name, func(t *testing.T) {
			c := ClassifyCorner(tt.psI, tt.psO)
			rawI := tt.psI[len(tt.psI)-1].Sub(tt.psI[len(tt.psI)-2])
			rawO := tt.psO[1].Sub(tt.psO[0])
			if rawI.Dot(rawO) > 0 {
				if c.QuiteSharp && !(c.CrossTangents < -CornerTolerance) {
					t.Errorf("QuiteSharp with cross %g", c.CrossTangents)
				}
				if c.QuiteDull && !(c.CrossTangents > CornerTolerance) {
					t.Errorf("QuiteDull with cross %g", c.CrossTangents)
				}
			} else {
				if c.QuiteSharp != c.Sharp || c.QuiteDull != c.Dull {
					t.Errorf("got QuiteSharp=%t QuiteDull=%t on the fallback branch, want Sharp=%t Dull=%t",
						c.QuiteSharp, c.QuiteDull, c.Sharp, c.Dull)
				}
			}
		})
	}
}

func TestClassifyCornerDegenerate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for coincident points at the joint")
		}
	}()
	ClassifyCorner(
		[]Point{Pt(0, 0), Pt(1, 1), Pt(1, 1)},
		[]Point{Pt(1, 1), Pt(2, 0)},
	)
}
