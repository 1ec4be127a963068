package render

import (
	"io"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

func (s *Scene) draw() *gg.Context {
	width, height := s.Size()
	pr := s.projection()

	c := gg.NewContext(width, height)
	if s.Background != "" {
		c.SetHexColor(s.Background)
		c.DrawRectangle(0, 0, float64(width), float64(height))
		c.Fill()
	}
	c.SetFillRuleEvenOdd()

	for _, layer := range s.Layers {
		style := layer.Style
		for _, ring := range layer.Rings {
			if len(ring) == 0 {
				continue
			}
			c.MoveTo(pr.apply(ring[0]))
			for _, p := range ring[1:] {
				c.LineTo(pr.apply(p))
			}
			c.ClosePath()
		}
		if style.Fill != "" {
			c.SetHexColor(style.Fill)
			c.FillPreserve()
		}
		if style.Stroke != "" {
			c.SetHexColor(style.Stroke)
			c.SetLineWidth(style.StrokeWidth)
			c.StrokePreserve()
		}
		c.ClearPath()

		if style.VertexRadius <= 0 {
			continue
		}
		color := style.Stroke
		if color == "" {
			color = style.Fill
		}
		c.SetHexColor(color)
		for _, ring := range layer.Rings {
			for _, p := range ring {
				x, y := pr.apply(p)
				c.DrawCircle(x, y, style.VertexRadius)
				c.Fill()
			}
		}
	}
	return c
}

// WritePNG rasterizes the scene.
func (s *Scene) WritePNG(w io.Writer) error {
	return s.draw().EncodePNG(w)
}

// Preview prints the scene inline in the terminal.
func (s *Scene) Preview(w io.Writer) error {
	file, err := os.CreateTemp("", "polytri-*.png")
	if err != nil {
		return errors.Wrap(err, "creating preview file")
	}
	defer os.Remove(file.Name())

	if err := s.WritePNG(file); err != nil {
		file.Close()
		return errors.Wrap(err, "encoding preview")
	}
	if err := file.Close(); err != nil {
		return errors.Wrap(err, "writing preview")
	}
	imgcat.CatFile(file.Name(), w)
	return nil
}
