package mat

import (
	"fmt"
	"iter"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a quadratic Bézier using the current location and the two points.
	QuadToKind
	// Draw a cubic Bézier using the current location and the three points.
	CubicToKind
	// Close off the subpath.
	ClosePathKind
)

// PathElement is one element of a Bézier path. A valid path has MoveTo at
// the beginning of each subpath.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func QuadTo(p0, p1 Point) PathElement {
	return PathElement{Kind: QuadToKind, P0: p0, P1: p1}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

func (el PathElement) String() string {
	switch el.Kind {
	case MoveToKind:
		return fmt.Sprintf("MoveTo(%s)", el.P0)
	case LineToKind:
		return fmt.Sprintf("LineTo(%s)", el.P0)
	case QuadToKind:
		return fmt.Sprintf("QuadTo(%s, %s)", el.P0, el.P1)
	case CubicToKind:
		return fmt.Sprintf("CubicTo(%s, %s, %s)", el.P0, el.P1, el.P2)
	case ClosePathKind:
		return "ClosePath()"
	default:
		return "InvalidPathElement"
	}
}

// LoopsFromElements builds one loop per subpath of a path. Subpaths that
// don't end where they started are closed with a line back to their start
// point, whether or not they end in ClosePath.
//
// The elements must describe boundaries suitable for [NewLoop]: every curve
// with distinct points at both ends, every subpath with at least one curve.
func LoopsFromElements(elements iter.Seq[PathElement]) ([]*Loop, error) {
	var loops []*Loop
	var pss [][]Point
	var currentPos option[Point]
	var startPt Point

	pos := func() Point {
		if !currentPos.isSet {
			panic("path must start with MoveTo")
		}
		return currentPos.value
	}
	finish := func() error {
		if pss == nil {
			return nil
		}
		if pos() != startPt {
			pss = append(pss, []Point{pos(), startPt})
		}
		l, err := NewLoop(pss)
		if err != nil {
			return fmt.Errorf("subpath %d: %w", len(loops), err)
		}
		loops = append(loops, l)
		pss = nil
		return nil
	}

	for el := range elements {
		switch el.Kind {
		case MoveToKind:
			if err := finish(); err != nil {
				return nil, err
			}
			startPt = el.P0
			currentPos.set(el.P0)
		case LineToKind:
			pss = append(pss, []Point{pos(), el.P0})
			currentPos.set(el.P0)
		case QuadToKind:
			pss = append(pss, []Point{pos(), el.P0, el.P1})
			currentPos.set(el.P1)
		case CubicToKind:
			pss = append(pss, []Point{pos(), el.P0, el.P1, el.P2})
			currentPos.set(el.P2)
		case ClosePathKind:
			if err := finish(); err != nil {
				return nil, err
			}
			currentPos.set(startPt)
		default:
			panic(fmt.Sprintf("unhandled case %v", el.Kind))
		}
	}
	if err := finish(); err != nil {
		return nil, err
	}
	return loops, nil
}

// Elements iterates over the loop's curves as path elements: a MoveTo to
// the start of the first curve, one drawing element per curve, and a
// ClosePath.
func (l *Loop) Elements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if !yield(MoveTo(l.curves[0].Start())) {
			return
		}
		for i := range l.curves {
			ps := l.curves[i].ps
			var el PathElement
			switch len(ps) {
			case 2:
				el = LineTo(ps[1])
			case 3:
				el = QuadTo(ps[1], ps[2])
			case 4:
				el = CubicTo(ps[1], ps[2], ps[3])
			default:
				panic("unreachable")
			}
			if !yield(el) {
				return
			}
		}
		yield(ClosePath())
	}
}
