package internal

import (
	"math"
	"sort"

	"github.com/google/btree"
	"github.com/osuushi/polytri/internal/dbg"
)

// DCEL is a doubly connected edge list built from a single polygon. It
// supports the two surgeries the pipeline needs: inserting a diagonal between
// existing vertices and splitting two crossing edges at their intersection.
//
// Everything lives in arenas and refers to everything else by index, so the
// structure owns all of its records and there are no reference cycles to
// manage.
type DCEL struct {
	cfg       Config
	vertices  []dcelVertex
	halfEdges []halfEdge
	// Each face record is the id of one half-edge on its boundary. Surgery
	// appends records without pruning stale ones; Polygons dedupes cycles.
	faces []int
	index *btree.BTreeG[vertexKey]
}

type dcelVertex struct {
	point Point
	// Outgoing half-edges ordered by angle. Edges whose angles are equal
	// within tolerance are not both kept here.
	edges []int
}

type halfEdge struct {
	origin int
	angle  float64
	twin   int
	prev   int
	next   int
}

type vertexKey struct {
	point Point
	id    int
}

func vertexKeyLess(a, b vertexKey) bool {
	return a.point.Less(b.point)
}

type halfEdgeName struct {
	dcel *DCEL
	id   int
}

// NewDCEL builds two faces from the polygon: the interior cycle made of the
// ring edges and the exterior cycle made of their twins.
func NewDCEL(polygon *Polygon, cfg Config) *DCEL {
	d := &DCEL{
		cfg:   cfg,
		index: btree.NewG[vertexKey](8, vertexKeyLess),
	}
	ring := polygon.Vertices()
	n := len(ring)
	if n == 0 {
		return d
	}

	// A pinched ring visits a point twice. Both visits share one vertex so
	// that its edges are ordered by angle together.
	ids := make(map[*Vertex]int, n)
	byPoint := make(map[Point]int, n)
	for _, v := range ring {
		id, ok := byPoint[v.Point]
		if !ok {
			id = d.addVertex(v.Point)
			byPoint[v.Point] = id
		}
		ids[v] = id
	}

	forward := make([]int, n)
	backward := make([]int, n)
	for i, v := range ring {
		forward[i] = d.newHalfEdge(ids[v], v.next.Point)
	}
	// backward[i] runs from ring[i+1] back to ring[i].
	for i, v := range ring {
		backward[i] = d.newHalfEdge(ids[v.next], v.Point)
	}
	for i := range ring {
		prev := CircularIndex(i-1, n)
		next := CircularIndex(i+1, n)

		f := &d.halfEdges[forward[i]]
		f.twin = backward[i]
		f.prev = forward[prev]
		f.next = forward[next]

		b := &d.halfEdges[backward[i]]
		b.twin = forward[i]
		b.prev = backward[next]
		b.next = backward[prev]
	}
	for i := range ring {
		d.attach(forward[i])
		d.attach(backward[i])
	}
	d.faces = append(d.faces, forward[0], backward[0])
	return d
}

func (d *DCEL) tol() Tolerance {
	return d.cfg.Tolerance
}

func (d *DCEL) addVertex(p Point) int {
	id := len(d.vertices)
	d.vertices = append(d.vertices, dcelVertex{point: p})
	d.index.ReplaceOrInsert(vertexKey{point: p, id: id})
	return id
}

// findVertex returns the vertex whose point equals p within tolerance. The
// index is ordered by x then y, so each column of points inside the window
// around p is entered at its lowest candidate y and left as soon as y
// passes the window.
func (d *DCEL) findVertex(p Point) (int, bool) {
	tol := d.tol()
	eps := float64(tol)
	found := -1
	pivot := Point{p.X - eps, p.Y - eps}
	for more := true; more; {
		more = false
		d.index.AscendGreaterOrEqual(vertexKey{point: pivot}, func(key vertexKey) bool {
			q := key.point
			switch {
			case q.X > p.X+eps:
			case tol.PointsEqual(q, p):
				found = key.id
			case q.Y < p.Y-eps:
				pivot, more = Point{q.X, p.Y - eps}, true
			case q.Y > p.Y+eps:
				pivot, more = Point{math.Nextafter(q.X, math.Inf(1)), p.Y - eps}, true
			default:
				return true
			}
			return false
		})
	}
	return found, found >= 0
}

func (d *DCEL) newHalfEdge(origin int, to Point) int {
	v := to.Sub(d.vertices[origin].point)
	d.halfEdges = append(d.halfEdges, halfEdge{
		origin: origin,
		angle:  math.Atan2(v.Y, v.X),
		twin:   -1,
		prev:   -1,
		next:   -1,
	})
	return len(d.halfEdges) - 1
}

// upperBound is the position of the first outgoing edge at vertex v whose
// angle is strictly greater than angle.
func (d *DCEL) upperBound(v int, angle float64) int {
	edges := d.vertices[v].edges
	return sort.Search(len(edges), func(i int) bool {
		return d.angleLess(angle, d.halfEdges[edges[i]].angle)
	})
}

// lowerBound is the position of the first outgoing edge at vertex v whose
// angle is not less than angle.
func (d *DCEL) lowerBound(v int, angle float64) int {
	edges := d.vertices[v].edges
	return sort.Search(len(edges), func(i int) bool {
		return !d.angleLess(d.halfEdges[edges[i]].angle, angle)
	})
}

func (d *DCEL) angleLess(a, b float64) bool {
	return !d.tol().Equal(a, b) && a < b
}

func (d *DCEL) hasAngle(v int, angle float64) bool {
	edges := d.vertices[v].edges
	i := d.lowerBound(v, angle)
	return i < len(edges) && d.tol().Equal(d.halfEdges[edges[i]].angle, angle)
}

// attach adds the half-edge to its origin's angular order. An edge whose
// angle duplicates an existing one stays linked but is not indexed.
func (d *DCEL) attach(e int) {
	v := d.halfEdges[e].origin
	angle := d.halfEdges[e].angle
	if d.hasAngle(v, angle) {
		return
	}
	i := d.upperBound(v, angle)
	edges := d.vertices[v].edges
	edges = append(edges, 0)
	copy(edges[i+1:], edges[i:])
	edges[i] = e
	d.vertices[v].edges = edges
}

// neighbours returns the outgoing edges at v immediately clockwise (left)
// and counterclockwise (right) of the given angle, wrapping around.
func (d *DCEL) neighbours(v int, angle float64) (left, right int) {
	edges := d.vertices[v].edges
	n := len(edges)
	i := d.upperBound(v, angle)
	return edges[CircularIndex(i-1, n)], edges[CircularIndex(i, n)]
}

// halfEdgeBetween finds the half-edge running from vertex u to vertex v.
func (d *DCEL) halfEdgeBetween(u, v int) (int, bool) {
	direction := d.vertices[v].point.Sub(d.vertices[u].point)
	edges := d.vertices[u].edges
	i := d.lowerBound(u, math.Atan2(direction.Y, direction.X))
	if i == len(edges) {
		return 0, false
	}
	e := edges[i]
	if d.halfEdges[d.halfEdges[e].next].origin != v {
		return 0, false
	}
	return e, true
}

func (d *DCEL) link(from, to int) {
	d.halfEdges[from].next = to
	d.halfEdges[to].prev = from
}

// InsertEdge splits the face containing the segment with a pair of twin
// half-edges between two existing vertices. It is a no-op when an endpoint is
// missing, when the endpoints coincide or when the edge already exists.
func (d *DCEL) InsertEdge(s Segment) bool {
	u, uOk := d.findVertex(s.A)
	v, vOk := d.findVertex(s.B)
	if !uOk || !vOk || u == v {
		d.cfg.Trace.Warnf("dcel", "cannot insert edge %v", s)
		return false
	}
	if len(d.vertices[u].edges) == 0 || len(d.vertices[v].edges) == 0 {
		d.cfg.Trace.Warnf("dcel", "cannot insert edge %v at isolated vertex", s)
		return false
	}

	uv := d.newHalfEdge(u, d.vertices[v].point)
	vu := d.newHalfEdge(v, d.vertices[u].point)
	if d.hasAngle(u, d.halfEdges[uv].angle) || d.hasAngle(v, d.halfEdges[vu].angle) {
		// Already present. Drop the two fresh records again.
		d.halfEdges = d.halfEdges[:uv]
		return false
	}
	d.halfEdges[uv].twin = vu
	d.halfEdges[vu].twin = uv

	uLeft, uRight := d.neighbours(u, d.halfEdges[uv].angle)
	vLeft, vRight := d.neighbours(v, d.halfEdges[vu].angle)

	d.link(d.halfEdges[uLeft].twin, uv)
	d.link(uv, vRight)
	d.link(d.halfEdges[vLeft].twin, vu)
	d.link(vu, uRight)

	d.attach(uv)
	d.attach(vu)
	d.faces = append(d.faces, vu, uv)
	d.cfg.Trace.Tracef("dcel", "inserted %s %v", dbg.Name(halfEdgeName{d, uv}), s)
	return true
}

// ResolveIntersection splits two crossing edges at their intersection point,
// creating the intersection vertex if needed and four new half-edges around
// it. It is a no-op if the segments do not intersect or if either edge or
// endpoint is not in the structure.
func (d *DCEL) ResolveIntersection(a, b Segment) bool {
	tol := d.tol()
	a1, a2 := a.A, a.B
	b1, b2 := b.A, b.B
	// Orient b so that it crosses a from right to left.
	if tol.IsPointLeftOfSegment(a, b.A) {
		b1, b2 = b2, b1
	}

	p, ok := tol.IntersectionPoint(a, b)
	if !ok {
		return false
	}
	va1, ok1 := d.findVertex(a1)
	va2, ok2 := d.findVertex(a2)
	vb1, ok3 := d.findVertex(b1)
	vb2, ok4 := d.findVertex(b2)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		d.cfg.Trace.Warnf("dcel", "cannot resolve %v x %v: missing endpoint", a, b)
		return false
	}
	a1a2, ok1 := d.halfEdgeBetween(va1, va2)
	b1b2, ok2 := d.halfEdgeBetween(vb1, vb2)
	if !ok1 || !ok2 {
		d.cfg.Trace.Warnf("dcel", "cannot resolve %v x %v: missing edge", a, b)
		return false
	}
	a2a1 := d.halfEdges[a1a2].twin
	b2b1 := d.halfEdges[b1b2].twin

	vi, found := d.findVertex(p)
	if !found {
		vi = d.addVertex(p)
	}

	// Each original half-edge keeps its origin and is shortened to end at
	// the intersection; its new twin runs from the intersection back.
	intA1 := d.newHalfEdge(vi, a1)
	intA2 := d.newHalfEdge(vi, a2)
	intB1 := d.newHalfEdge(vi, b1)
	intB2 := d.newHalfEdge(vi, b2)

	d.twin(intA1, a1a2)
	d.twin(intA2, a2a1)
	d.twin(intB1, b1b2)
	d.twin(intB2, b2b1)

	// Continue past the intersection the way the original edges went.
	d.link(intA1, d.halfEdges[a2a1].next)
	d.link(intA2, d.halfEdges[a1a2].next)
	d.link(intB1, d.halfEdges[b2b1].next)
	d.link(intB2, d.halfEdges[b1b2].next)

	// Turn at the intersection.
	d.link(b2b1, intA1)
	d.link(b1b2, intA2)
	d.link(a1a2, intB1)
	d.link(a2a1, intB2)

	d.attach(intA1)
	d.attach(intA2)
	d.attach(intB1)
	d.attach(intB2)
	d.faces = append(d.faces, intA1, intA2, intB1, intB2)
	if found {
		// The crossing lands on a vertex of some other edges. The turns above
		// only see the four new edges, so weave in the ones already there.
		d.spliceAround(vi)
	}
	d.cfg.Trace.Tracef("dcel", "split %v x %v at %v", a, b, p)
	return true
}

// spliceAround links every edge arriving at v to the outgoing edge that
// follows it counterclockwise, and records the faces around v.
func (d *DCEL) spliceAround(v int) {
	edges := d.vertices[v].edges
	for i, e := range edges {
		d.link(d.halfEdges[e].twin, edges[CircularIndex(i+1, len(edges))])
	}
	d.faces = append(d.faces, edges...)
}

func (d *DCEL) twin(e, f int) {
	d.halfEdges[e].twin = f
	d.halfEdges[f].twin = e
}

// cycles walks every distinct face boundary once.
func (d *DCEL) cycles() [][]Point {
	visited := make([]bool, len(d.halfEdges))
	var result [][]Point
	for _, start := range d.faces {
		if visited[start] {
			continue
		}
		var points []Point
		e := start
		for steps := 0; ; steps++ {
			if steps > len(d.halfEdges) {
				fatalf("dcel: face cycle from %s does not close", dbg.Name(halfEdgeName{d, start}))
			}
			visited[e] = true
			points = append(points, d.vertices[d.halfEdges[e].origin].point)
			e = d.halfEdges[e].next
			if e < 0 {
				fatalf("dcel: half-edge %s has no successor", dbg.Name(halfEdgeName{d, start}))
			}
			if e == start {
				break
			}
		}
		result = append(result, points)
	}
	return result
}

// Cycles returns every face boundary, including the outer one, in traversal
// order.
func (d *DCEL) Cycles() [][]Point {
	return d.cycles()
}

// Polygons returns every bounded face as a polygon. The first cycle with the
// largest absolute area is taken to be the unbounded outer face and skipped.
// A face that touches itself at a vertex keeps both visits to it, so its ring
// still encloses exactly the face.
func (d *DCEL) Polygons() []*Polygon {
	cycles := d.cycles()
	areas := make([]float64, len(cycles))
	outer := -1
	for i, cycle := range cycles {
		areas[i] = math.Abs(SignedArea(cycle))
		if outer < 0 || areas[i] > areas[outer] {
			outer = i
		}
	}

	polygons := make([]*Polygon, 0, len(cycles))
	for i, cycle := range cycles {
		if i == outer {
			continue
		}
		polygons = append(polygons, newRing(cycle, d.tol()))
	}
	return polygons
}

func (d *DCEL) VertexCount() int {
	return len(d.vertices)
}

func (d *DCEL) HalfEdgeCount() int {
	return len(d.halfEdges)
}
