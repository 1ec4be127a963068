package internal

import (
	"github.com/google/btree"
)

// SweepLine is the ordered set of segments crossing the horizontal line at the
// current sweep height, left to right. The sweep moves top to bottom, so
// segments are expected with A at or above B.
//
// The order depends on the height, which is mutated between queries. Callers
// must only move the line to heights where the stored segments keep their
// relative order, which holds for non-crossing segments between events.
type SweepLine struct {
	tol      Tolerance
	y        float64
	segments *btree.BTreeG[Segment]
}

func NewSweepLine(tol Tolerance) *SweepLine {
	s := &SweepLine{tol: tol}
	s.segments = btree.NewG[Segment](8, s.less)
	return s
}

func (s *SweepLine) SetY(y float64) {
	s.y = y
}

func (s *SweepLine) Y() float64 {
	return s.y
}

func (s *SweepLine) Len() int {
	return s.segments.Len()
}

func (s *SweepLine) Add(seg Segment) {
	s.segments.ReplaceOrInsert(seg)
}

func (s *SweepLine) Remove(seg Segment) bool {
	_, ok := s.segments.Delete(seg)
	return ok
}

func (s *SweepLine) Contains(seg Segment) bool {
	return s.segments.Has(seg)
}

// Segments in left to right order at the current height.
func (s *SweepLine) Segments() []Segment {
	result := make([]Segment, 0, s.segments.Len())
	s.segments.Ascend(func(seg Segment) bool {
		result = append(result, seg)
		return true
	})
	return result
}

// XAt is the x coordinate where the segment meets the sweep line. A
// horizontal segment reports its first endpoint.
func (s *SweepLine) XAt(seg Segment) float64 {
	v := seg.Vector()
	if s.tol.Equal(v.Y, 0) {
		return seg.A.X
	}
	return seg.A.X + v.X*(s.y-seg.A.Y)/v.Y
}

func (s *SweepLine) less(l, r Segment) bool {
	tol := s.tol
	if tol.SegmentsEqual(l, r) {
		return false
	}
	lx, rx := s.XAt(l), s.XAt(r)
	if !tol.Equal(lx, rx) {
		return lx < rx
	}
	// A point probe is equivalent to everything it touches.
	if tol.IsDegenerate(l) || tol.IsDegenerate(r) {
		return false
	}

	cross := l.Vector().Cross(r.Vector())
	if !tol.Equal(cross, 0) {
		if tol.PointsEqual(l.B, r.B) {
			// Meeting at their lower ends: order by where they are above.
			return cross < 0
		}
		// Leaving a common point (or crossing here): order by where they are
		// below.
		return cross > 0
	}
	return l.less(r)
}

// FirstLeft is the nearest segment strictly left of seg at the current
// height. Segments touching seg's position are skipped.
func (s *SweepLine) FirstLeft(seg Segment) (Segment, bool) {
	x := s.XAt(seg)
	var found Segment
	ok := false
	s.segments.DescendLessOrEqual(seg, func(item Segment) bool {
		if s.tol.Equal(s.XAt(item), x) {
			return true
		}
		found, ok = item, true
		return false
	})
	return found, ok
}

// FirstRight is the nearest segment strictly right of seg at the current
// height.
func (s *SweepLine) FirstRight(seg Segment) (Segment, bool) {
	x := s.XAt(seg)
	var found Segment
	ok := false
	s.segments.AscendGreaterOrEqual(seg, func(item Segment) bool {
		if s.tol.Equal(s.XAt(item), x) {
			return true
		}
		found, ok = item, true
		return false
	})
	return found, ok
}

func (s *SweepLine) FirstLeftOfPoint(p Point) (Segment, bool) {
	return s.FirstLeft(Segment{p, p})
}
