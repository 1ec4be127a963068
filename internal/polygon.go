package internal

import (
	"fmt"
	"math"
)

// VertexType classifies a polygon vertex relative to the sweep direction and
// its interior angle.
type VertexType int

const (
	Start VertexType = iota
	Split
	End
	Merge
	LeftRegular
	RightRegular
)

func (t VertexType) String() string {
	switch t {
	case Start:
		return "START"
	case Split:
		return "SPLIT"
	case End:
		return "END"
	case Merge:
		return "MERGE"
	case LeftRegular:
		return "LEFT_REGULAR"
	case RightRegular:
		return "RIGHT_REGULAR"
	}
	return fmt.Sprintf("VertexType(%d)", int(t))
}

type Vertex struct {
	Point Point
	Type  VertexType
	prev  *Vertex
	next  *Vertex
}

func (v *Vertex) Prev() *Vertex { return v.prev }
func (v *Vertex) Next() *Vertex { return v.next }

// Adjacent reports whether other is one of the two ring neighbours of v.
func (v *Vertex) Adjacent(other *Vertex) bool {
	return v.prev == other || v.next == other
}

func (v *Vertex) String() string {
	return fmt.Sprintf("%v:%v", v.Point, v.Type)
}

// Polygon is a closed ring of points, always stored clockwise. The ring and
// the vertex types are computed once at construction and never change.
//
// Input rings have distinct points. A ring read back from a DCEL face keeps
// every point of the face boundary: where the face pinches, touching itself
// at a single vertex, that point appears twice.
type Polygon struct {
	tol     Tolerance
	ring    []*Vertex
	byPoint map[Point]*Vertex
}

// NewPolygon builds the ring in input order after dropping exact duplicate
// points (the first occurrence wins). A counterclockwise input is reversed.
func NewPolygon(points []Point, tol Tolerance) *Polygon {
	seen := make(map[Point]struct{}, len(points))
	unique := make([]Point, 0, len(points))
	for _, p := range points {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		unique = append(unique, p)
	}
	return newRing(unique, tol)
}

// newRing is NewPolygon without the dedupe. Point lookups find the first
// vertex at a repeated point.
func newRing(points []Point, tol Tolerance) *Polygon {
	poly := &Polygon{tol: tol, byPoint: make(map[Point]*Vertex, len(points))}
	if len(points) == 0 {
		return poly
	}

	ring := append([]Point(nil), points...)
	if !IsClockwise(ring) {
		for i, j := 0, len(ring)-1; i < j; i, j = i+1, j-1 {
			ring[i], ring[j] = ring[j], ring[i]
		}
		// Keep the first input point as the entry vertex.
		last := ring[len(ring)-1]
		copy(ring[1:], ring[:len(ring)-1])
		ring[0] = last
	}

	poly.ring = make([]*Vertex, len(ring))
	for i, p := range ring {
		v := &Vertex{Point: p}
		poly.ring[i] = v
		if _, ok := poly.byPoint[p]; !ok {
			poly.byPoint[p] = v
		}
	}
	n := len(poly.ring)
	for i, v := range poly.ring {
		v.prev = poly.ring[CircularIndex(i-1, n)]
		v.next = poly.ring[CircularIndex(i+1, n)]
	}
	for _, v := range poly.ring {
		v.Type = poly.classify(v)
	}
	return poly
}

func (poly *Polygon) classify(v *Vertex) VertexType {
	tol := poly.tol
	prev, cur, next := v.prev.Point, v.Point, v.next.Point
	reflex := tol.MoreThanPi(prev.Sub(cur), next.Sub(cur))

	switch {
	case tol.SweepsBefore(cur, prev) && tol.SweepsBefore(cur, next):
		if reflex {
			return Split
		}
		return Start
	case tol.SweepsBefore(prev, cur) && tol.SweepsBefore(next, cur):
		if reflex {
			return Merge
		}
		return End
	case tol.SweepsBefore(next, cur):
		// Walking clockwise, the chain that climbs toward the top is the left
		// boundary of the interior.
		return LeftRegular
	default:
		return RightRegular
	}
}

func (poly *Polygon) Tolerance() Tolerance {
	return poly.tol
}

func (poly *Polygon) Size() int {
	return len(poly.ring)
}

// AnyVertex is the entry point of the ring, nil for an empty polygon.
func (poly *Polygon) AnyVertex() *Vertex {
	if len(poly.ring) == 0 {
		return nil
	}
	return poly.ring[0]
}

// Vertices in clockwise ring order starting from AnyVertex. The slice is a
// copy; the vertices are shared.
func (poly *Polygon) Vertices() []*Vertex {
	return append([]*Vertex(nil), poly.ring...)
}

func (poly *Polygon) Points() []Point {
	points := make([]Point, len(poly.ring))
	for i, v := range poly.ring {
		points[i] = v.Point
	}
	return points
}

// Segments are the ring edges, each directed from a vertex to its successor.
func (poly *Polygon) Segments() []Segment {
	segments := make([]Segment, len(poly.ring))
	for i, v := range poly.ring {
		segments[i] = Segment{v.Point, v.next.Point}
	}
	return segments
}

// Vertex finds the vertex stored at exactly p.
func (poly *Polygon) Vertex(p Point) (*Vertex, bool) {
	v, ok := poly.byPoint[p]
	return v, ok
}

func (poly *Polygon) Prev(p Point) (Point, bool) {
	v, ok := poly.byPoint[p]
	if !ok {
		return Point{}, false
	}
	return v.prev.Point, true
}

func (poly *Polygon) Next(p Point) (Point, bool) {
	v, ok := poly.byPoint[p]
	if !ok {
		return Point{}, false
	}
	return v.next.Point, true
}

func (poly *Polygon) TypeOf(p Point) (VertexType, bool) {
	v, ok := poly.byPoint[p]
	if !ok {
		return 0, false
	}
	return v.Type, true
}

// SignedArea follows the usual convention: positive when counterclockwise.
// Stored polygons are clockwise, so this is never positive for them.
func (poly *Polygon) SignedArea() float64 {
	return SignedArea(poly.Points())
}

func (poly *Polygon) Area() float64 {
	return math.Abs(poly.SignedArea())
}

// Even-odd point-in-polygon, used to compare regions covered by different
// decompositions of the same shape.
func (poly *Polygon) ContainsPointByEvenOdd(p Point) bool {
	return CrossingCount(poly.Points(), p)%2 == 1
}

func (poly *Polygon) String() string {
	return fmt.Sprint(poly.Points())
}

// IsClockwise uses the sum of (x2 - x1) * (y2 + y1) over the edges, which is
// positive for a clockwise ring. Degenerate rings are not clockwise.
func IsClockwise(points []Point) bool {
	var sum float64
	for i, p := range points {
		q := points[CircularIndex(i+1, len(points))]
		sum += (q.X - p.X) * (q.Y + p.Y)
	}
	return sum > 0
}

// Shoelace area of a ring, positive when counterclockwise.
func SignedArea(points []Point) float64 {
	var sum float64
	for i, p := range points {
		q := points[CircularIndex(i+1, len(points))]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

// Crossing count helper for the even odd rule. A horizontal ray is cast to the
// right of p.
func CrossingCount(points []Point, p Point) int {
	crossingCount := 0
	for i, a := range points {
		b := points[CircularIndex(i+1, len(points))]
		if (a.Y > p.Y) == (b.Y > p.Y) {
			continue
		}
		x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
		if x > p.X {
			crossingCount++
		}
	}
	return crossingCount
}
