package mat

import (
	"fmt"
	"iter"
)

// Loop is a closed, cyclically ordered sequence of Bézier curves tracing
// one boundary of a shape: an outer contour or a hole.
//
// Curves live in a contiguous arena; a curve's position in the arena is its
// position in the cyclic order, so neighbor lookup is index arithmetic
// rather than pointer chasing. The loop also owns the per-curve corner
// cache, which is populated lazily by [Curve.EndCorner].
type Loop struct {
	curves  []Curve
	corners []option[Corner]
}

// Curve is one Bézier segment of a loop, stored as 2 to 4 control points.
type Curve struct {
	loop *Loop
	idx  int
	ps   []Point
}

// NewLoop builds a loop from control point sequences, one per curve, in
// cyclic order. Each sequence must hold 2 to 4 points (a line, a quadratic,
// or a cubic), end exactly where its successor starts (the last curve
// wrapping around to the first), and have distinct points at both ends:
// corner classification needs a nonzero tangent on both sides of every
// joint.
//
// The loop assumes ownership of the point slices; callers must not modify
// them afterwards. Curve immutability is what keeps cached corners valid
// for the lifetime of the loop.
func NewLoop(pss [][]Point) (*Loop, error) {
	if len(pss) == 0 {
		return nil, fmt.Errorf("loop must contain at least one curve")
	}
	for i, ps := range pss {
		if len(ps) < 2 || len(ps) > 4 {
			return nil, fmt.Errorf("curve %d has %d control points, want 2 to 4", i, len(ps))
		}
		if ps[0] == ps[1] {
			return nil, fmt.Errorf("curve %d has a zero-length start tangent at %v", i, ps[0])
		}
		if ps[len(ps)-1] == ps[len(ps)-2] {
			return nil, fmt.Errorf("curve %d has a zero-length end tangent at %v", i, ps[len(ps)-1])
		}
		next := pss[(i+1)%len(pss)]
		if ps[len(ps)-1] != next[0] {
			return nil, fmt.Errorf("curve %d ends at %v but curve %d starts at %v",
				i, ps[len(ps)-1], (i+1)%len(pss), next[0])
		}
	}
	l := &Loop{
		curves:  make([]Curve, len(pss)),
		corners: make([]option[Corner], len(pss)),
	}
	for i, ps := range pss {
		l.curves[i] = Curve{loop: l, idx: i, ps: ps}
	}
	return l, nil
}

// FromCubics builds a loop from cubic Bézier segments in cyclic order.
func FromCubics(cs []CubicBez) (*Loop, error) {
	pss := make([][]Point, len(cs))
	for i, c := range cs {
		pss[i] = c.Points()
	}
	return NewLoop(pss)
}

// Len returns the number of curves in the loop.
func (l *Loop) Len() int {
	return len(l.curves)
}

// Curve returns the i'th curve of the loop.
func (l *Loop) Curve(i int) *Curve {
	return &l.curves[i]
}

// Curves iterates over the curves of the loop in cyclic order, starting at
// index 0.
func (l *Loop) Curves() iter.Seq[*Curve] {
	return func(yield func(*Curve) bool) {
		for i := range l.curves {
			if !yield(&l.curves[i]) {
				return
			}
		}
	}
}

// Points returns the curve's control points. The slice is owned by the loop
// and must not be modified.
func (c *Curve) Points() []Point {
	return c.ps
}

// Index returns the curve's position in the loop's cyclic order.
func (c *Curve) Index() int {
	return c.idx
}

func (c *Curve) Start() Point {
	return c.ps[0]
}

func (c *Curve) End() Point {
	return c.ps[len(c.ps)-1]
}

// Next returns the curve's successor in the loop.
func (c *Curve) Next() *Curve {
	return &c.loop.curves[(c.idx+1)%len(c.loop.curves)]
}

// Prev returns the curve's predecessor in the loop.
func (c *Curve) Prev() *Curve {
	n := len(c.loop.curves)
	return &c.loop.curves[(c.idx+n-1)%n]
}

// EndCorner returns the corner at the interface between the curve's end and
// its successor's start. The classification runs at most once per curve;
// the result is cached in the loop and repeated calls return the cached
// value. Not safe for concurrent use.
func (c *Curve) EndCorner() Corner {
	memo := &c.loop.corners[c.idx]
	if !memo.isSet {
		memo.set(ClassifyCorner(c.ps, c.Next().ps))
	}
	return memo.value
}

// StartCorner returns the corner at the curve's start, which is the end
// corner of its predecessor.
func (c *Curve) StartCorner() Corner {
	return c.Prev().EndCorner()
}

// option is a value that may be absent. The zero value is absent.
type option[T any] struct {
	isSet bool
	value T
}

func (opt *option[T]) set(v T) {
	opt.isSet = true
	opt.value = v
}
