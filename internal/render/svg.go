package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"
)

// svgo never reports write failures, so remember the first one.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return len(p), nil
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}

func (s *Style) svg() string {
	var parts []string
	if s.Fill != "" {
		parts = append(parts, "fill:"+s.Fill)
	} else {
		parts = append(parts, "fill:none")
	}
	if s.Stroke != "" {
		parts = append(parts, "stroke:"+s.Stroke, fmt.Sprintf("stroke-width:%g", s.StrokeWidth))
	}
	return strings.Join(parts, ";")
}

func (s *Style) vertexSVG() string {
	color := s.Stroke
	if color == "" {
		color = s.Fill
	}
	return "fill:" + color
}

func round(f float64) int {
	return int(math.Round(f))
}

// WriteSVG draws the scene as an SVG document.
func (s *Scene) WriteSVG(w io.Writer) error {
	ew := &errWriter{w: w}
	width, height := s.Size()
	pr := s.projection()

	canvas := svg.New(ew)
	canvas.Start(width, height)
	if s.Background != "" {
		canvas.Rect(0, 0, width, height, "fill:"+s.Background)
	}

	xs := make([]int, 0)
	ys := make([]int, 0)
	for _, layer := range s.Layers {
		style := layer.Style.svg()
		for _, ring := range layer.Rings {
			xs, ys = xs[:0], ys[:0]
			for _, p := range ring {
				x, y := pr.apply(p)
				xs = append(xs, round(x))
				ys = append(ys, round(y))
			}
			canvas.Polygon(xs, ys, style)
		}

		if layer.Style.VertexRadius <= 0 {
			continue
		}
		vertexStyle := layer.Style.vertexSVG()
		for _, ring := range layer.Rings {
			for _, p := range ring {
				x, y := pr.apply(p)
				canvas.Circle(round(x), round(y), round(layer.Style.VertexRadius), vertexStyle)
			}
		}
	}
	canvas.End()
	return ew.err
}
