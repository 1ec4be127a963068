// Polygon triangulation for Go.
//
// This package converts a single polygon ring, which may be non-convex and
// may intersect itself, into a set of triangles. Self-intersections are first
// resolved into simple pieces, each piece is split into y-monotone polygons,
// and those are triangulated. Triangles only use the input points and the
// points where the ring crosses itself.
//
// See the advanced package to run the stages on their own.
package polytri

import (
	"log"

	"github.com/osuushi/polytri/internal"
	"github.com/osuushi/polytri/internal/dbg"
	"github.com/pkg/errors"
)

type Point = internal.Point
type Triangle = internal.Triangle

type Options struct {
	Eps    float64
	Strict bool
	Logger *log.Logger
}

type Option func(*Options) error

// WithEps sets the absolute tolerance used for every geometric comparison.
// The default is 1e-10.
func WithEps(eps float64) Option {
	return func(o *Options) error {
		if !internal.Tolerance(eps).Valid() {
			return errors.Errorf("invalid tolerance %v: must be positive and finite", eps)
		}
		o.Eps = eps
		return nil
	}
}

// WithStrict makes failed internal assertions return an error instead of
// skipping the offending step.
func WithStrict(strict bool) Option {
	return func(o *Options) error {
		o.Strict = strict
		return nil
	}
}

// WithLogger sends stage traces to logger. Tracing is off by default.
func WithLogger(logger *log.Logger) Option {
	return func(o *Options) error {
		o.Logger = logger
		return nil
	}
}

func newConfig(opts []Option) (internal.Config, error) {
	o := Options{Eps: internal.DefaultEpsilon}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return internal.Config{}, err
		}
	}
	return internal.Config{
		Tolerance: internal.Tolerance(o.Eps),
		Strict:    o.Strict,
		Trace:     dbg.NewTracer(o.Logger, false),
	}, nil
}

// recoverInto turns a failure raised inside the pipeline into err and drops
// whatever partial result was built.
func recoverInto[T any](result *T, err *error) {
	if recoveredErr := internal.HandlePanicRecover(recover()); recoveredErr != nil {
		var zero T
		*result = zero
		*err = recoveredErr
	}
}

func rings(polygons []*internal.Polygon) [][]Point {
	result := make([][]Point, 0, len(polygons))
	for _, poly := range polygons {
		result = append(result, poly.Points())
	}
	return result
}

// Triangulate converts a polygon ring into triangles. The ring may wind in
// either direction and may cross itself; fewer than three distinct points
// give no triangles.
func Triangulate(points []Point, opts ...Option) (result []Triangle, err error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	defer recoverInto(&result, &err)
	return internal.Triangulate(points, cfg), nil
}

// ResolveIntersections splits a self-intersecting ring at its crossings and
// returns the simple pieces, each wound clockwise.
func ResolveIntersections(points []Point, opts ...Option) (result [][]Point, err error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	defer recoverInto(&result, &err)
	return rings(internal.ResolveIntersections(internal.NewPolygon(points, cfg.Tolerance), cfg)), nil
}

// DecomposeToYMonotones splits a simple ring into y-monotone pieces, wound
// clockwise.
func DecomposeToYMonotones(points []Point, opts ...Option) (result [][]Point, err error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	defer recoverInto(&result, &err)
	return rings(internal.DecomposeToYMonotones(internal.NewPolygon(points, cfg.Tolerance), cfg)), nil
}

// TriangulateYMonotone triangulates a ring that is already y-monotone. This
// precondition is not checked.
func TriangulateYMonotone(points []Point, opts ...Option) (result []Triangle, err error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	defer recoverInto(&result, &err)

	polygon := internal.NewPolygon(points, cfg.Tolerance)
	if polygon.Size() < 3 {
		return nil, nil
	}
	for _, face := range internal.TriangulateYMonotone(polygon, cfg) {
		if tri, ok := internal.AsTriangle(face); ok {
			result = append(result, tri)
		}
	}
	return result, nil
}
