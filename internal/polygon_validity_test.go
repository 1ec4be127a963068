package internal

// This contains no actual tests. It is just a helper for testing
// decomposition and triangulation validity.

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTolerance Tolerance = DefaultEpsilon

func testConfig() Config {
	return Config{Tolerance: testTolerance, Strict: true}
}

var approxPoints = cmpopts.EquateApprox(0, 1e-6)

// sameRing compares two rings up to rotation, keeping direction.
func sameRing(expected, actual []Point) bool {
	if len(expected) != len(actual) {
		return false
	}
	if len(expected) == 0 {
		return true
	}
	for offset := range actual {
		if !cmp.Equal(expected[0], actual[offset], approxPoints) {
			continue
		}
		rotated := append(append([]Point(nil), actual[offset:]...), actual[:offset]...)
		if cmp.Equal(expected, rotated, approxPoints) {
			return true
		}
	}
	return false
}

// Helper to check that polygons match the expected rings, in any order.
func assertSameRings(t *testing.T, expected [][]Point, actual []*Polygon) {
	t.Helper()
	actualRings := make([][]Point, len(actual))
	for i, poly := range actual {
		actualRings[i] = poly.Points()
	}
	require.Len(t, actualRings, len(expected), "got %v", actualRings)
	for _, ring := range expected {
		found := false
		for _, candidate := range actualRings {
			if sameRing(ring, candidate) {
				found = true
				break
			}
		}
		assert.True(t, found, "expected ring %v among %v", ring, actualRings)
	}
}

// Helper to check that a triangulation is valid. The rules are:
// 1. The triangle count is n - 2.
// 2. The set of points in the triangles equals the set of points in the polygon.
// 3. Every polygon edge is a triangle edge.
// 4. No triangle has zero area.
// 5. The sum of the areas of all triangles is equal to the area of the polygon.
func AssertValidTriangulation(t *testing.T, polygon *Polygon, triangles []Triangle) {
	t.Helper()
	require.Len(t, triangles, polygon.Size()-2)

	polyPoints := make(map[Point]struct{})
	for _, p := range polygon.Points() {
		polyPoints[p] = struct{}{}
	}
	trianglePoints := make(map[Point]struct{})
	var triangleArea float64
	segments := make(normalizedSegmentSet)
	for _, tri := range triangles {
		require.Greater(t, tri.Area(), 0.0, "degenerate triangle: %s", tri)
		triangleArea += tri.Area()
		for _, p := range tri.Points() {
			trianglePoints[p] = struct{}{}
		}
		segments.add(tri.A, tri.B)
		segments.add(tri.B, tri.C)
		segments.add(tri.C, tri.A)
	}
	require.Equal(t, polyPoints, trianglePoints, "set of points in the triangles must equal the set of points in the polygon")

	for _, s := range polygon.Segments() {
		require.True(t, segments.contains(s.A, s.B), "segment %v is not in the set of segments in the triangles", s)
	}
	require.InDelta(t, polygon.Area(), triangleArea, 1e-6*math.Max(1, polygon.Area()), "sum of the areas of all triangles is equal to the area of the polygon")
}

// Sum of sizes minus two per extra piece gives back the original vertex count
// when every piece is cut off by a diagonal between original vertices.
func assertDiagonalSplit(t *testing.T, original *Polygon, pieces []*Polygon) {
	t.Helper()
	total := 0
	for _, piece := range pieces {
		total += piece.Size()
	}
	assert.Equal(t, original.Size(), total-2*(len(pieces)-1))
}

// Used in the helper above, this is an unordered segment.
type normalizedSegment struct {
	lower, upper Point
}

func newNormalizedSegment(a, b Point) normalizedSegment {
	if a.Less(b) {
		return normalizedSegment{a, b}
	}
	return normalizedSegment{b, a}
}

type normalizedSegmentSet map[normalizedSegment]struct{}

func (set normalizedSegmentSet) add(a, b Point) {
	set[newNormalizedSegment(a, b)] = struct{}{}
}

func (set normalizedSegmentSet) contains(a, b Point) bool {
	_, ok := set[newNormalizedSegment(a, b)]
	return ok
}

func containsByEvenOdd(polygons []*Polygon, p Point) bool {
	count := 0
	for _, poly := range polygons {
		count += CrossingCount(poly.Points(), p)
	}
	return count%2 == 1
}

// validatePolygonsBySampling checks on a grid that two sets of polygons cover
// the same region.
func validatePolygonsBySampling(t *testing.T, actualPolygons []*Polygon, expectedPolygons []*Polygon) {
	t.Helper()
	var all []Point
	for _, list := range [][]*Polygon{actualPolygons, expectedPolygons} {
		for _, poly := range list {
			all = append(all, poly.Points()...)
		}
	}
	// Pad the bounding box by 10%
	bounds := Bounds(all...)
	bounds = bounds.ExpandedByMargin(0.1 * math.Max(bounds.X.Length(), bounds.Y.Length()))

	// Offsetting by an irrational fraction keeps samples off edges.
	step := math.Max(bounds.X.Length(), bounds.Y.Length()) / 50
	for y := bounds.Y.Lo + step/math.Pi; y <= bounds.Y.Hi; y += step {
		for x := bounds.X.Lo + step/math.E; x <= bounds.X.Hi; x += step {
			p := Point{X: x, Y: y}
			if containsByEvenOdd(expectedPolygons, p) {
				assert.True(t, containsByEvenOdd(actualPolygons, p), "point %v should be covered", p)
			} else {
				assert.False(t, containsByEvenOdd(actualPolygons, p), "point %v should not be covered", p)
			}
		}
	}
}

func trianglesAsPolygons(triangles []Triangle) []*Polygon {
	polygons := make([]*Polygon, len(triangles))
	for i, tri := range triangles {
		polygons[i] = NewPolygon(tri.Points(), testTolerance)
	}
	return polygons
}
