// Package advanced exposes the individual stages of the triangulation
// pipeline, and the half-edge structure they work on, for callers who want to
// run or inspect them separately.
//
// Stage functions return an error only in strict mode, when one of the
// algorithm's own assertions fails. Everything else degrades into imperfect
// output rather than an error.
package advanced

import (
	"log"

	"github.com/osuushi/polytri/internal"
	"github.com/osuushi/polytri/internal/dbg"
)

type Point = internal.Point
type Segment = internal.Segment
type Triangle = internal.Triangle
type Tolerance = internal.Tolerance
type Polygon = internal.Polygon
type Vertex = internal.Vertex
type VertexType = internal.VertexType
type DCEL = internal.DCEL
type Config = internal.Config
type Tracer = dbg.Tracer

const (
	Start        = internal.Start
	Split        = internal.Split
	End          = internal.End
	Merge        = internal.Merge
	LeftRegular  = internal.LeftRegular
	RightRegular = internal.RightRegular
)

const DefaultEpsilon = internal.DefaultEpsilon

func DefaultConfig() Config {
	return internal.DefaultConfig()
}

// NewTracer returns a tracer writing to logger, or nil when logger is nil.
func NewTracer(logger *log.Logger, colors bool) *Tracer {
	return dbg.NewTracer(logger, colors)
}

// NewPolygon builds a clockwise ring with classified vertices. Repeated
// points are dropped.
func NewPolygon(points []Point, tol Tolerance) *Polygon {
	return internal.NewPolygon(points, tol)
}

func IsClockwise(points []Point) bool {
	return internal.IsClockwise(points)
}

// NewDCEL builds a two face subdivision from the polygon's boundary. Edges
// are added with InsertEdge and crossings split with ResolveIntersection.
func NewDCEL(polygon *Polygon, cfg Config) *DCEL {
	return internal.NewDCEL(polygon, cfg)
}

// Faces extracts every bounded face of the subdivision.
func Faces(d *DCEL) (result []*Polygon, err error) {
	defer recoverInto(&err)
	return d.Polygons(), nil
}

func ResolveIntersections(polygon *Polygon, cfg Config) (result []*Polygon, err error) {
	defer recoverInto(&err)
	return internal.ResolveIntersections(polygon, cfg), nil
}

func DecomposeToYMonotones(polygon *Polygon, cfg Config) (result []*Polygon, err error) {
	defer recoverInto(&err)
	return internal.DecomposeToYMonotones(polygon, cfg), nil
}

// TriangulateYMonotone expects a y-monotone polygon. This is not checked.
func TriangulateYMonotone(polygon *Polygon, cfg Config) (result []*Polygon, err error) {
	defer recoverInto(&err)
	return internal.TriangulateYMonotone(polygon, cfg), nil
}

func Triangulate(points []Point, cfg Config) (result []Triangle, err error) {
	defer recoverInto(&err)
	return internal.Triangulate(points, cfg), nil
}

func AsTriangle(polygon *Polygon) (Triangle, bool) {
	return internal.AsTriangle(polygon)
}

// Must be called directly in a defer, since it calls recover.
func recoverInto(err *error) {
	if recoveredErr := internal.HandlePanicRecover(recover()); recoveredErr != nil {
		*err = recoveredErr
	}
}
