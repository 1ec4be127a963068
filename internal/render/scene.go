// Package render draws polygons and triangulations for inspection, either as
// SVG, as PNG, or straight into an iTerm compatible terminal.
package render

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/osuushi/polytri/internal"
)

// Style is shared by the SVG and PNG backends. Colours are hex strings such
// as "#00ffff"; an empty colour skips that part of the drawing.
type Style struct {
	Fill         string  `yaml:"fill"`
	Stroke       string  `yaml:"stroke"`
	StrokeWidth  float64 `yaml:"stroke_width"`
	VertexRadius float64 `yaml:"vertex_radius"`
}

// Layer is a set of rings drawn with one style.
type Layer struct {
	Rings [][]internal.Point
	Style Style
}

// Scene is drawn in layer order, with y pointing up.
type Scene struct {
	Layers     []Layer
	Scale      float64
	Padding    float64
	Background string
}

var (
	InputStyle  = Style{Stroke: "#ff00ff", StrokeWidth: 2, VertexRadius: 3}
	ResultStyle = Style{Fill: "#008000", Stroke: "#00ffff", StrokeWidth: 1}
)

func NewScene(scale, padding float64) *Scene {
	return &Scene{Scale: scale, Padding: padding, Background: "#000000"}
}

func (s *Scene) Add(style Style, rings ...[]internal.Point) {
	s.Layers = append(s.Layers, Layer{Rings: rings, Style: style})
}

// AddTriangles adds a layer with one ring per triangle.
func (s *Scene) AddTriangles(style Style, triangles []internal.Triangle) {
	rings := make([][]internal.Point, len(triangles))
	for i, tri := range triangles {
		rings[i] = tri.Points()
	}
	s.Add(style, rings...)
}

func (s *Scene) Bounds() r2.Rect {
	var all []internal.Point
	for _, layer := range s.Layers {
		for _, ring := range layer.Rings {
			all = append(all, ring...)
		}
	}
	bounds := internal.Bounds(all...)
	if bounds.IsEmpty() {
		return r2.RectFromPoints(r2.Point{})
	}
	return bounds
}

// Size is the canvas size in pixels.
func (s *Scene) Size() (width, height int) {
	size := s.Bounds().Size()
	width = int(math.Ceil(s.Scale*size.X + 2*s.Padding))
	height = int(math.Ceil(s.Scale*size.Y + 2*s.Padding))
	return width, height
}

// ToScreen maps a point to canvas coordinates, flipping y so the origin is at
// the bottom left.
func (s *Scene) ToScreen(p internal.Point) (float64, float64) {
	return s.projection().apply(p)
}

type projection struct {
	minX, maxY     float64
	scale, padding float64
}

func (s *Scene) projection() projection {
	bounds := s.Bounds()
	return projection{minX: bounds.X.Lo, maxY: bounds.Y.Hi, scale: s.Scale, padding: s.Padding}
}

func (pr projection) apply(p internal.Point) (float64, float64) {
	return pr.padding + pr.scale*(p.X-pr.minX), pr.padding + pr.scale*(pr.maxY-p.Y)
}
