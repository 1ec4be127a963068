package internal

import (
	"fmt"

	"github.com/google/btree"
)

// Events at the same point are handled in this order: segments ending there
// leave the sweep line before crossings are expanded and before new segments
// begin.
type eventKind int

const (
	endEvent eventKind = iota
	intersectionEvent
	beginEvent
)

func (k eventKind) String() string {
	switch k {
	case endEvent:
		return "END"
	case intersectionEvent:
		return "INTERSECTION"
	case beginEvent:
		return "BEGIN"
	}
	return fmt.Sprintf("eventKind(%d)", int(k))
}

type event struct {
	kind  eventKind
	point Point
	// Begin and end events.
	segment Segment
	// Intersection events: the far ends of the two segments that cross at
	// point.
	aEnd, bEnd Point
}

func (e event) String() string {
	if e.kind == intersectionEvent {
		return fmt.Sprintf("%v %v -> %v, %v", e.kind, e.point, e.aEnd, e.bEnd)
	}
	return fmt.Sprintf("%v %v", e.kind, e.segment)
}

type eventQueue struct {
	tol    Tolerance
	events *btree.BTreeG[event]
}

func newEventQueue(tol Tolerance) *eventQueue {
	q := &eventQueue{tol: tol}
	q.events = btree.NewG[event](8, q.less)
	return q
}

func (q *eventQueue) less(l, r event) bool {
	tol := q.tol
	if !tol.PointsEqual(l.point, r.point) {
		return tol.SweepsBefore(l.point, r.point)
	}
	if l.kind != r.kind {
		return l.kind < r.kind
	}
	if l.kind == intersectionEvent {
		if !tol.PointsEqual(l.aEnd, r.aEnd) {
			return tol.SweepsBefore(l.aEnd, r.aEnd)
		}
		return tol.SweepsBefore(l.bEnd, r.bEnd)
	}
	if !tol.PointsEqual(l.segment.A, r.segment.A) {
		return tol.SweepsBefore(l.segment.A, r.segment.A)
	}
	return tol.SweepsBefore(l.segment.B, r.segment.B)
}

func (q *eventQueue) Len() int {
	return q.events.Len()
}

func (q *eventQueue) push(e event) {
	q.events.ReplaceOrInsert(e)
}

func (q *eventQueue) pop() (event, bool) {
	return q.events.DeleteMin()
}

func (q *eventQueue) remove(e event) {
	q.events.Delete(e)
}

// addSegment schedules both ends of a segment whose A sweeps first.
func (q *eventQueue) addSegment(s Segment) {
	q.push(event{kind: beginEvent, point: s.A, segment: s})
	q.push(event{kind: endEvent, point: s.B, segment: s})
}

func (q *eventQueue) removeSegment(s Segment) {
	q.remove(event{kind: beginEvent, point: s.A, segment: s})
	q.remove(event{kind: endEvent, point: s.B, segment: s})
}

// normalize orients a segment so that A sweeps no later than B.
func normalize(s Segment, tol Tolerance) Segment {
	if tol.SweepsBefore(s.B, s.A) {
		return s.Reversed()
	}
	return s
}
