package internal

import (
	"embed"
	"log"
	"math"
	"math/rand"
	"sort"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs point rings. This is not a
// full (or even correct) svg parser. It parses the SVG, finds the only
// polygon, and returns its points in document order. If anything goes wrong,
// it panics.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected exactly one polygon in fixture %q, found %d", name, len(polygons))
	}

	pointStrings := strings.Fields(polygons[0].Attributes["points"])
	points := make([]Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		points = append(points, Point{x, y})
	}
	return points
}

// Some ad hoc code specified fixtures

func SimpleStar() []Point {
	var points []Point
	const outerRadius = 5
	const innerRadius = 2
	for i := 0; i < 10; i++ {
		radius := float64(outerRadius)
		if i%2 == 1 {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		points = append(points, Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return points
}

// Pentagram drawn the way children do: five strokes that cross each other
// five times.
func CrossedStar() []Point {
	var points []Point
	for i := 0; i < 5; i++ {
		angle := math.Pi/2 + 4*math.Pi*float64(i)/5
		points = append(points, Point{X: 10 * math.Cos(angle), Y: 10 * math.Sin(angle)})
	}
	return points
}

// Quarter of a circle closed by its chord, the shape used for benchmarks.
func Arc(n int) []Point {
	points := make([]Point, n)
	step := math.Pi / 2 / float64(n)
	for i := range points {
		angle := step * float64(i)
		points[i] = Point{X: 1e3 * math.Cos(angle), Y: 1e3 * math.Sin(angle)}
	}
	return points
}

func RandomPoints(rng *rand.Rand, n int) []Point {
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{X: rng.Float64() * 100, Y: rng.Float64() * 100}
	}
	return points
}

// RandomGridStar sorts distinct integer points in [-r, r] by angle around a
// point just off their centroid. Grid points are often collinear, so the
// rings have straight runs of three or more vertices. The result is not
// always simple; see isSimpleRing.
func RandomGridStar(rng *rand.Rand, n, r int) []Point {
	seen := make(map[Point]struct{}, n)
	points := make([]Point, 0, n)
	var center Point
	for i := 0; i < n; i++ {
		p := Point{X: float64(rng.Intn(2*r+1) - r), Y: float64(rng.Intn(2*r+1) - r)}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		points = append(points, p)
		center.X += p.X
		center.Y += p.Y
	}
	center.X = center.X/float64(len(points)) + 0.31
	center.Y = center.Y/float64(len(points)) + 0.17
	sort.Slice(points, func(i, j int) bool {
		a, b := points[i].Sub(center), points[j].Sub(center)
		return math.Atan2(a.Y, a.X) < math.Atan2(b.Y, b.X)
	})
	return points
}

// isSimpleRing reports whether only neighbouring edges meet, and those only
// at their shared vertex.
func isSimpleRing(points []Point, tol Tolerance) bool {
	n := len(points)
	edge := func(i int) Segment {
		return Segment{points[i], points[CircularIndex(i+1, n)]}
	}
	for i := 0; i < n; i++ {
		a := edge(i)
		for j := i + 1; j < n; j++ {
			b := edge(j)
			if j == i+1 || (i == 0 && j == n-1) {
				// Neighbours must not fold back over each other.
				if tol.Equal(a.Vector().Cross(b.Vector()), 0) && a.Vector().Dot(b.Vector()) < 0 {
					return false
				}
				continue
			}
			if _, ok := tol.IntersectionPoint(a, b); ok {
				return false
			}
		}
	}
	return true
}

var (
	// Polygons the decomposition and triangulation tests run over.
	testPolygons = map[string][]Point{
		"notch": {
			{0, 0.5}, {-2.1, 2.9}, {-2.8, -4.1}, {-2.2, -4.9}, {6.3, 0.9},
		},
		"castle": {
			{0, 1}, {5, 0}, {6, 1}, {8, 0}, {7, 3},
			{11, 2}, {12, 4}, {10, 6}, {9, 8}, {7, 7},
			{6, 8}, {2, 7}, {4, 5}, {3, 3}, {1, 4},
		},
		"square": {
			{0, 0}, {0, 1}, {1, 1}, {1, 0},
		},
	}

	monotonePolygons = map[string][]Point{
		"zigzag": {{0, 0}, {-1, 1}, {3, 3}, {-2, 5}, {4, 6}, {5, 3}, {2, 2}},
		"flat":   {{0, 1}, {1, 4}, {3, 3}, {7, 3}, {8, 0}, {6, 1}},
		"long": {
			{1, 9}, {1.5, 7}, {-1, 5}, {0.2, 3.5}, {1, 2.8}, {2, 2.5}, {4, 2.4},
			{3, 2}, {2.5, 1}, {0, 0}, {-3, 1.5}, {-1, 6}, {-2, 8}, {0, 10},
		},
		"long mirrored": {
			{-1, 9}, {-1.5, 7}, {1, 5}, {-0.2, 3.5}, {-1, 2.8}, {-2, 2.5}, {-4, 2.4},
			{-3, 2}, {-2.5, 1}, {0, 0}, {3, 1.5}, {1, 6}, {2, 8}, {0, 10},
		},
		"fan": {{-1, 6}, {-1, 5}, {0.2, 3.5}, {1, 2.8}, {2, 2.5}, {3, 2}, {-3, 1.5}},
	}
)
