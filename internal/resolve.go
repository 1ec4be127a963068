package internal

// Self-intersection resolution. A sweep from top to bottom discovers every
// pair of crossing edges, splits both of them at the crossing point in a
// DCEL, and finally reads the bounded faces back out as simple polygons.
//
// Segments are split eagerly: as soon as a crossing is found, the upper parts
// of both segments replace them on the sweep line and in the queue, and an
// intersection event re-emits the lower parts once the sweep reaches the
// crossing. Crossings that fall on an endpoint of either segment are not
// split.

const resolveStage = "resolve"

type resolver struct {
	cfg    Config
	dcel   *DCEL
	events *eventQueue
	sweep  *SweepLine
}

// ResolveIntersections splits a possibly self-intersecting polygon into
// simple polygons covering the same region. Polygons with fewer than four
// vertices cannot cross themselves and are returned as they are.
func ResolveIntersections(polygon *Polygon, cfg Config) []*Polygon {
	if polygon.Size() < 4 {
		return []*Polygon{polygon}
	}

	r := &resolver{
		cfg:    cfg,
		dcel:   NewDCEL(polygon, cfg),
		events: newEventQueue(cfg.Tolerance),
		sweep:  NewSweepLine(cfg.Tolerance),
	}
	for _, s := range polygon.Segments() {
		r.events.addSegment(normalize(s, cfg.Tolerance))
	}

	processed := 0
	for {
		e, ok := r.events.pop()
		if !ok {
			break
		}
		processed++
		r.sweep.SetY(e.point.Y)
		switch e.kind {
		case beginEvent:
			r.handleBegin(e)
		case endEvent:
			r.handleEnd(e)
		case intersectionEvent:
			r.handleIntersection(e)
		}
	}

	polygons := r.dcel.Polygons()
	cfg.Trace.Tracef(resolveStage, "%d events, %d polygons", processed, len(polygons))
	return polygons
}

func (r *resolver) handleBegin(e event) {
	seg := e.segment
	left, hasLeft := r.sweep.FirstLeft(seg)
	right, hasRight := r.sweep.FirstRight(seg)

	var (
		p       Point
		crossed bool
	)
	if hasLeft {
		p, crossed = r.split(seg, left)
	}
	if hasRight && !crossed {
		p, crossed = r.split(seg, right)
	}

	if crossed {
		// seg was shortened; it joins the sweep line when its upper part
		// comes up again.
		r.events.push(event{kind: beginEvent, point: seg.A, segment: Segment{seg.A, p}})
		return
	}
	r.sweep.Add(seg)
}

func (r *resolver) handleEnd(e event) {
	seg := e.segment
	if !r.sweep.Remove(seg) {
		r.cfg.Trace.Warnf(resolveStage, "ending segment %v was not on the sweep line", seg)
	}
	left, hasLeft := r.sweep.FirstLeft(seg)
	right, hasRight := r.sweep.FirstRight(seg)
	if hasLeft && hasRight {
		r.split(left, right)
	}
}

func (r *resolver) handleIntersection(e event) {
	tol := r.cfg.Tolerance
	r.events.addSegment(normalize(Segment{e.point, e.aEnd}, tol))
	r.events.addSegment(normalize(Segment{e.point, e.bEnd}, tol))
}

// split resolves a crossing between two segments that are both on the sweep
// line or about to be. Nothing happens when they do not cross, or when they
// only touch at an endpoint.
func (r *resolver) split(a, b Segment) (Point, bool) {
	tol := r.cfg.Tolerance
	p, ok := tol.IntersectionPoint(a, b)
	if !ok || tol.IsIntersectionOnVertex(a, b) {
		return Point{}, false
	}
	if tol.PointsEqual(p, a.A) || tol.PointsEqual(p, a.B) ||
		tol.PointsEqual(p, b.A) || tol.PointsEqual(p, b.B) {
		// One segment ends on the other one.
		r.cfg.Trace.Tracef(resolveStage, "not splitting T-junction of %v and %v at %v", a, b, p)
		return Point{}, false
	}

	r.dcel.ResolveIntersection(a, b)

	upperA := Segment{a.A, p}
	upperB := Segment{b.A, p}
	r.events.removeSegment(a)
	r.events.removeSegment(b)
	r.events.push(event{kind: endEvent, point: p, segment: upperA})
	r.events.push(event{kind: endEvent, point: p, segment: upperB})
	r.events.push(event{kind: intersectionEvent, point: p, aEnd: a.B, bEnd: b.B})

	r.sweep.Remove(a)
	r.sweep.Remove(b)
	r.sweep.Add(upperA)
	r.sweep.Add(upperB)
	r.cfg.Trace.Tracef(resolveStage, "split %v and %v at %v", a, b, p)
	return p, true
}
