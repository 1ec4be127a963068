package internal

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

// DefaultEpsilon is the tolerance used when none is configured.
const DefaultEpsilon = 1e-10

// Tolerance is the epsilon that every predicate in this package compares
// against. It is threaded explicitly through each stage so that concurrent
// triangulations with different tolerances never share state.
type Tolerance float64

type Point struct {
	X, Y float64
}

// Vector is a displacement between two points. Cross and dot products come
// from r2.
type Vector = r2.Point

type Segment struct {
	A, B Point
}

type Triangle struct {
	A, B, C Point
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vector {
	return Vector{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Add(v Vector) Point {
	return Point{p.X + v.X, p.Y + v.Y}
}

// Less is plain lexicographic order, x first. It is only used where some
// total order is needed and the sweep order does not apply.
func (p Point) Less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

func (p Point) toR2() r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

func (s Segment) Vector() Vector {
	return s.B.Sub(s.A)
}

func (s Segment) Reversed() Segment {
	return Segment{s.B, s.A}
}

func (s Segment) String() string {
	return fmt.Sprintf("%v->%v", s.A, s.B)
}

// Lexicographic order on (A, B), used to break ties between collinear
// segments.
func (s Segment) less(other Segment) bool {
	if s.A != other.A {
		return s.A.Less(other.A)
	}
	return s.B.Less(other.B)
}

func (t Tolerance) Valid() bool {
	return t > 0 && !math.IsInf(float64(t), 0) && !math.IsNaN(float64(t))
}

func (t Tolerance) Equal(a, b float64) bool {
	return math.Abs(a-b) < float64(t)
}

func (t Tolerance) LessOrEqual(a, b float64) bool {
	return a < b || t.Equal(a, b)
}

func (t Tolerance) PointsEqual(p, q Point) bool {
	return t.Equal(p.X, q.X) && t.Equal(p.Y, q.Y)
}

func (t Tolerance) SegmentsEqual(a, b Segment) bool {
	return t.PointsEqual(a.A, b.A) && t.PointsEqual(a.B, b.B)
}

func (t Tolerance) IsDegenerate(s Segment) bool {
	return t.PointsEqual(s.A, s.B)
}

// MoreThanPi reports whether turning from v to u counterclockwise sweeps an
// angle greater than pi, i.e. the z component of v x u is negative. A zero
// cross product (collinear vectors) is never more than pi.
func (t Tolerance) MoreThanPi(v, u Vector) bool {
	z := v.Cross(u)
	if t.Equal(z, 0) {
		return false
	}
	return z < 0
}

// SweepsBefore is the sweep order: higher y first, and on equal y the smaller
// x. Equal points never sweep before each other.
func (t Tolerance) SweepsBefore(p, q Point) bool {
	if t.PointsEqual(p, q) {
		return false
	}
	if t.Equal(p.Y, q.Y) {
		return p.X < q.X
	}
	return p.Y > q.Y
}

// IsPointInsideSegment reports whether p lies on the closed segment, assuming
// p is already known to be collinear with it.
func (t Tolerance) IsPointInsideSegment(s Segment, p Point) bool {
	if t.PointsEqual(s.A, p) || t.IsDegenerate(s) {
		return t.PointsEqual(s.A, p)
	}
	k := MagnitudeRatio(p.Sub(s.A), s.Vector())
	return t.LessOrEqual(0, k) && t.LessOrEqual(k, 1)
}

// MagnitudeRatio returns the signed ratio |v| / |u| for collinear v and u,
// computed as |v|^2 / (v . u).
func MagnitudeRatio(v, u Vector) float64 {
	return v.Dot(v) / v.Dot(u)
}

// IntersectionPoint finds a point shared by both closed segments. For
// collinear overlapping segments an endpoint of b that lies on a is
// returned.
func (t Tolerance) IntersectionPoint(a, b Segment) (Point, bool) {
	v1 := a.Vector()
	v2 := b.Vector()
	v3 := b.A.Sub(a.A)
	s1 := v1.Cross(v2)
	s2 := v1.Cross(v3)

	if t.Equal(s1, 0) {
		if !t.Equal(s2, 0) {
			// parallel
			return Point{}, false
		}
		if t.IsPointInsideSegment(a, b.A) {
			return b.A, true
		}
		if t.IsPointInsideSegment(a, b.B) {
			return b.B, true
		}
		return Point{}, false
	}

	k := v3.Cross(v2) / s1
	p := a.A.Add(v1.Mul(k))
	if t.IsPointInsideSegment(a, p) && t.IsPointInsideSegment(b, p) {
		return p, true
	}
	return Point{}, false
}

// IsIntersectionOnVertex reports whether the segments share an endpoint.
func (t Tolerance) IsIntersectionOnVertex(a, b Segment) bool {
	return t.PointsEqual(a.A, b.A) || t.PointsEqual(a.A, b.B) ||
		t.PointsEqual(a.B, b.A) || t.PointsEqual(a.B, b.B)
}

// IsPointLeftOfSegment looks along the segment from A to B.
func (t Tolerance) IsPointLeftOfSegment(s Segment, p Point) bool {
	return t.MoreThanPi(p.Sub(s.A), s.Vector())
}

// Doubled signed area, positive when the triangle winds counterclockwise.
func (tri Triangle) signedArea2() float64 {
	return tri.B.Sub(tri.A).Cross(tri.C.Sub(tri.A))
}

func (tri Triangle) SignedArea() float64 {
	return tri.signedArea2() / 2
}

func (tri Triangle) Area() float64 {
	return math.Abs(tri.SignedArea())
}

func (tri Triangle) IsCCW() bool {
	return tri.signedArea2() > 0
}

func (tri Triangle) IsCW() bool {
	return tri.signedArea2() < 0
}

func (tri Triangle) Points() []Point {
	return []Point{tri.A, tri.B, tri.C}
}

func (tri Triangle) String() string {
	return fmt.Sprintf("[%v %v %v]", tri.A, tri.B, tri.C)
}

// Bounds is the smallest axis aligned rectangle containing the points.
func Bounds(points ...Point) r2.Rect {
	rect := r2.EmptyRect()
	for _, p := range points {
		rect = rect.AddPoint(p.toR2())
	}
	return rect
}
