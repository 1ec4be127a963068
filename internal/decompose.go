package internal

import "sort"

// Decomposition of a simple polygon into y-monotone pieces. Vertices are
// visited in sweep order while the sweep line holds the edges that bound the
// interior on its left. Every such edge has a helper: the lowest vertex seen
// so far that can see the edge horizontally. Split and merge vertices are
// removed by connecting them to helpers with diagonals, which are inserted
// into a DCEL whose faces are the monotone pieces.

const decomposeStage = "decompose"

type decomposer struct {
	cfg     Config
	dcel    *DCEL
	sweep   *SweepLine
	helpers map[Segment]*Vertex
}

// DecomposeToYMonotones splits a simple polygon into y-monotone polygons. The
// input must not cross itself, though it may touch itself at a vertex.
func DecomposeToYMonotones(polygon *Polygon, cfg Config) []*Polygon {
	if polygon.Size() < 3 {
		return []*Polygon{polygon}
	}
	d := &decomposer{
		cfg:     cfg,
		dcel:    NewDCEL(polygon, cfg),
		sweep:   NewSweepLine(cfg.Tolerance),
		helpers: make(map[Segment]*Vertex),
	}

	for _, v := range sweepOrder(polygon, cfg.Tolerance) {
		d.sweep.SetY(v.Point.Y)
		switch v.Type {
		case Start:
			d.handleStart(v)
		case End:
			d.handleEnd(v)
		case Split:
			d.handleSplit(v)
		case Merge:
			d.handleMerge(v)
		case LeftRegular:
			d.handleLeftRegular(v)
		case RightRegular:
			d.handleRightRegular(v)
		}
	}

	polygons := d.dcel.Polygons()
	cfg.Trace.Tracef(decomposeStage, "%d vertices into %d monotone polygons", polygon.Size(), len(polygons))
	return polygons
}

// sweepOrder sorts the vertices top to bottom, left to right on ties.
func sweepOrder(polygon *Polygon, tol Tolerance) []*Vertex {
	vertices := polygon.Vertices()
	sort.SliceStable(vertices, func(i, j int) bool {
		return tol.SweepsBefore(vertices[i].Point, vertices[j].Point)
	})
	return vertices
}

// The edge leaving v, running down toward its predecessor. It bounds the
// interior on the left below start, split and left regular vertices.
func prevEdge(v *Vertex) Segment {
	return Segment{v.Point, v.prev.Point}
}

// The edge arriving at v from its successor above.
func nextEdge(v *Vertex) Segment {
	return Segment{v.next.Point, v.Point}
}

func (d *decomposer) diagonal(v, helper *Vertex) {
	d.dcel.InsertEdge(Segment{v.Point, helper.Point})
}

func (d *decomposer) addLeftEdge(v *Vertex) {
	e := prevEdge(v)
	d.sweep.Add(e)
	d.helpers[e] = v
}

// closeLeftEdge retires the left edge ending at v, first connecting v to the
// edge's helper if that is a merge vertex.
func (d *decomposer) closeLeftEdge(v *Vertex) {
	e := nextEdge(v)
	helper, ok := d.helpers[e]
	if !ok {
		d.cfg.fail(decomposeStage, "no helper for edge %v ending at %v", e, v)
	} else if helper.Type == Merge {
		d.diagonal(v, helper)
	}
	d.sweep.Remove(e)
	delete(d.helpers, e)
}

// leftOf finds the left edge directly left of v.
func (d *decomposer) leftOf(v *Vertex) (Segment, *Vertex, bool) {
	e, ok := d.sweep.FirstLeftOfPoint(v.Point)
	if !ok {
		d.cfg.fail(decomposeStage, "no edge left of %v", v)
		return Segment{}, nil, false
	}
	helper, ok := d.helpers[e]
	if !ok {
		d.cfg.fail(decomposeStage, "no helper for edge %v left of %v", e, v)
		return Segment{}, nil, false
	}
	return e, helper, true
}

func (d *decomposer) handleStart(v *Vertex) {
	d.addLeftEdge(v)
}

func (d *decomposer) handleEnd(v *Vertex) {
	d.closeLeftEdge(v)
}

func (d *decomposer) handleSplit(v *Vertex) {
	e, helper, ok := d.leftOf(v)
	d.addLeftEdge(v)
	if !ok {
		return
	}
	d.diagonal(v, helper)
	d.helpers[e] = v
}

func (d *decomposer) handleMerge(v *Vertex) {
	d.closeLeftEdge(v)
	e, helper, ok := d.leftOf(v)
	if !ok {
		return
	}
	if helper.Type == Merge {
		d.diagonal(v, helper)
	}
	d.helpers[e] = v
}

func (d *decomposer) handleLeftRegular(v *Vertex) {
	d.closeLeftEdge(v)
	d.addLeftEdge(v)
}

func (d *decomposer) handleRightRegular(v *Vertex) {
	e, helper, ok := d.leftOf(v)
	if !ok {
		return
	}
	if helper.Type == Merge {
		d.diagonal(v, helper)
	}
	d.helpers[e] = v
}
