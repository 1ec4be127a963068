// Demo of triangulation by rendering the output of a pipeline stage. Input
// should be newline separated points in the form "x y", with each polygon
// separated by an extra newline, or an SVG file whose <polygon> elements are
// used.
//
// Polygons may wind in either direction and may intersect themselves.
package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/osuushi/polytri"
	"github.com/osuushi/polytri/internal/input"
	"github.com/osuushi/polytri/internal/render"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
	"gopkg.in/yaml.v3"
)

type config struct {
	Eps        float64 `yaml:"eps"`
	Strict     bool    `yaml:"strict"`
	Scale      float64 `yaml:"scale"`
	Padding    float64 `yaml:"padding"`
	Background string  `yaml:"background"`
	Styles     struct {
		Input  render.Style `yaml:"input"`
		Result render.Style `yaml:"result"`
	} `yaml:"styles"`
}

func defaultConfig() config {
	c := config{
		Eps:        1e-10,
		Scale:      1,
		Padding:    10,
		Background: "#000000",
	}
	c.Styles.Input = render.InputStyle
	c.Styles.Result = render.ResultStyle
	return c
}

// loadConfig reads a YAML file over the defaults. Missing keys keep their
// default value.
func loadConfig(path string) (config, error) {
	c := defaultConfig()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return c, errors.Wrap(err, "reading config")
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, errors.Wrapf(err, "parsing config %s", path)
	}
	return c, nil
}

type flags struct {
	stage   string
	format  string
	output  string
	config  string
	eps     float64
	strict  bool
	scale   float64
	padding float64
	preview bool
	verbose bool
	input   string
}

func newApp(f *flags) *kingpin.Application {
	app := kingpin.New("polytri", "Triangulate polygons and render the result.")
	app.Flag("stage", "Pipeline stage to run.").Default("triangulate").
		EnumVar(&f.stage, "resolve", "decompose", "monotone", "triangulate")
	app.Flag("format", "Output format.").Default("svg").EnumVar(&f.format, "svg", "png")
	app.Flag("output", "Output file. Defaults to stdout.").Short('o').StringVar(&f.output)
	app.Flag("config", "YAML file with tolerance and render settings.").StringVar(&f.config)
	app.Flag("eps", "Geometric tolerance. Overrides the config file.").Float64Var(&f.eps)
	app.Flag("strict", "Fail on broken algorithm invariants instead of skipping them.").BoolVar(&f.strict)
	app.Flag("scale", "Pixels per unit. Overrides the config file.").Float64Var(&f.scale)
	app.Flag("padding", "Canvas padding in pixels. Overrides the config file.").Float64Var(&f.padding)
	app.Flag("preview", "Print a PNG preview to the terminal.").BoolVar(&f.preview)
	app.Flag("verbose", "Trace the pipeline stages to stderr.").Short('v').BoolVar(&f.verbose)
	app.Arg("input", "Points file or SVG. Defaults to stdin.").StringVar(&f.input)
	return app
}

// apply lets flags that were given override the file.
func (f *flags) apply(c *config) {
	if f.eps != 0 {
		c.Eps = f.eps
	}
	if f.strict {
		c.Strict = true
	}
	if f.scale != 0 {
		c.Scale = f.scale
	}
	if f.padding != 0 {
		c.Padding = f.padding
	}
}

func readInput(path string) ([][]polytri.Point, error) {
	var r io.Reader = os.Stdin
	if path != "" && path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		defer file.Close()
		r = file
	}
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return input.ReadSVG(r)
	}
	return input.ReadText(r)
}

// run applies the stage to each polygon and collects the results into a
// scene, with the input outlines drawn on top.
func run(stage string, polygons [][]polytri.Point, c config, opts ...polytri.Option) (*render.Scene, error) {
	opts = append([]polytri.Option{polytri.WithEps(c.Eps), polytri.WithStrict(c.Strict)}, opts...)

	scene := render.NewScene(c.Scale, c.Padding)
	scene.Background = c.Background
	for i, points := range polygons {
		var err error
		switch stage {
		case "resolve":
			var rings [][]polytri.Point
			rings, err = polytri.ResolveIntersections(points, opts...)
			scene.Add(c.Styles.Result, rings...)
		case "decompose":
			var rings [][]polytri.Point
			rings, err = polytri.DecomposeToYMonotones(points, opts...)
			scene.Add(c.Styles.Result, rings...)
		case "monotone":
			var triangles []polytri.Triangle
			triangles, err = polytri.TriangulateYMonotone(points, opts...)
			scene.AddTriangles(c.Styles.Result, triangles)
		case "triangulate":
			var triangles []polytri.Triangle
			triangles, err = polytri.Triangulate(points, opts...)
			scene.AddTriangles(c.Styles.Result, triangles)
		default:
			return nil, errors.Errorf("unknown stage %q", stage)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %d", i)
		}
	}
	scene.Add(c.Styles.Input, polygons...)
	return scene, nil
}

func write(scene *render.Scene, format string, w io.Writer) error {
	if format == "png" {
		return scene.WritePNG(w)
	}
	return scene.WriteSVG(w)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("polytri: ")

	var f flags
	app := newApp(&f)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	c, err := loadConfig(f.config)
	if err != nil {
		log.Fatalf("%v", err)
	}
	f.apply(&c)

	polygons, err := readInput(f.input)
	if err != nil {
		log.Fatalf("%v", err)
	}
	log.Printf("Read %d polygons", len(polygons))

	var opts []polytri.Option
	if f.verbose {
		opts = append(opts, polytri.WithLogger(log.New(os.Stderr, "", 0)))
	}
	scene, err := run(f.stage, polygons, c, opts...)
	if err != nil {
		log.Fatalf("%v", err)
	}

	var out io.Writer = os.Stdout
	if f.output != "" {
		file, err := os.Create(f.output)
		if err != nil {
			log.Fatalf("creating output: %v", err)
		}
		defer file.Close()
		out = file
	}
	if err := write(scene, f.format, out); err != nil {
		log.Fatalf("writing output: %v", err)
	}
	if f.preview {
		if err := scene.Preview(os.Stderr); err != nil {
			log.Fatalf("%v", err)
		}
	}
}
