package advanced

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var castle = []Point{
	{0, 0}, {1, 1}, {2, 0}, {3, 1}, {4, 0},
	{4, 3}, {3, 2}, {2, 3}, {1, 2}, {0, 3},
}

func strictConfig() Config {
	cfg := DefaultConfig()
	cfg.Strict = true
	return cfg
}

func TestNewPolygon(t *testing.T) {
	poly := NewPolygon([]Point{{0, 0}, {1, 0}, {0, 1}}, DefaultEpsilon)
	assert.True(t, IsClockwise(poly.Points()), "rings are stored clockwise")
	assert.Equal(t, 3, poly.Size())

	vt, ok := poly.TypeOf(Point{0, 1})
	require.True(t, ok)
	assert.Equal(t, Start, vt)
	// (0, 0) sweeps before (1, 0) on the tie, so the end is on the right.
	vt, ok = poly.TypeOf(Point{1, 0})
	require.True(t, ok)
	assert.Equal(t, End, vt)
}

func TestDCELFaces(t *testing.T) {
	square := NewPolygon([]Point{{0, 0}, {0, 1}, {1, 1}, {1, 0}}, DefaultEpsilon)
	d := NewDCEL(square, strictConfig())

	faces, err := Faces(d)
	require.NoError(t, err)
	require.Len(t, faces, 1)
	assert.Equal(t, 4, faces[0].Size())

	assert.True(t, d.InsertEdge(Segment{Point{0, 0}, Point{1, 1}}))
	faces, err = Faces(d)
	require.NoError(t, err)
	require.Len(t, faces, 2)
	for _, face := range faces {
		_, ok := AsTriangle(face)
		assert.True(t, ok)
	}
}

func TestStages(t *testing.T) {
	cfg := strictConfig()
	polygon := NewPolygon(castle, cfg.Tolerance)

	simple, err := ResolveIntersections(polygon, cfg)
	require.NoError(t, err)
	require.Len(t, simple, 1)

	monotones, err := DecomposeToYMonotones(simple[0], cfg)
	require.NoError(t, err)
	assert.Greater(t, len(monotones), 1)

	var area float64
	count := 0
	for _, monotone := range monotones {
		faces, err := TriangulateYMonotone(monotone, cfg)
		require.NoError(t, err)
		for _, face := range faces {
			tri, ok := AsTriangle(face)
			require.True(t, ok)
			area += tri.Area()
			count++
		}
	}
	assert.Equal(t, polygon.Size()-2, count)
	assert.InDelta(t, polygon.Area(), area, 1e-9)

	triangles, err := Triangulate(castle, cfg)
	require.NoError(t, err)
	assert.Len(t, triangles, count)
}

func TestResolveIntersections_Bowtie(t *testing.T) {
	polygon := NewPolygon([]Point{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}, DefaultEpsilon)
	faces, err := ResolveIntersections(polygon, strictConfig())
	require.NoError(t, err)
	require.Len(t, faces, 2)
	for _, face := range faces {
		assert.InDelta(t, 1.0, face.Area(), 1e-12)
	}
}

func TestTracer(t *testing.T) {
	assert.Nil(t, NewTracer(nil, false))

	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Trace = NewTracer(log.New(&buf, "", 0), false)
	_, err := Triangulate(castle, cfg)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "[triangulate] 10 points into 8 triangles")
}
