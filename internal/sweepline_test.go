package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepLine_Order(t *testing.T) {
	farLeft := Segment{Point{-10, 20}, Point{-10, -20}}
	downLeft := Segment{Point{0, 10}, Point{-5, 0}}
	downRight := Segment{Point{0, 10}, Point{5, 0}}
	farRight := Segment{Point{10, 20}, Point{10, -20}}

	s := NewSweepLine(testTolerance)
	s.SetY(10)
	for _, seg := range []Segment{downRight, farRight, farLeft, downLeft} {
		s.Add(seg)
	}
	require.Equal(t, 4, s.Len())
	assert.Equal(t, []Segment{farLeft, downLeft, downRight, farRight}, s.Segments(),
		"segments leaving a common point are ordered by where they go")

	s.SetY(5)
	assert.Equal(t, 5.0, s.Y())
	assert.Equal(t, -2.5, s.XAt(downLeft))
	assert.Equal(t, 2.5, s.XAt(downRight))
	assert.Equal(t, []Segment{farLeft, downLeft, downRight, farRight}, s.Segments())

	assert.True(t, s.Remove(downLeft))
	assert.False(t, s.Remove(downLeft))
	assert.False(t, s.Contains(downLeft))
	assert.True(t, s.Contains(downRight))
	assert.Equal(t, 3, s.Len())
}

func TestSweepLine_SharedLowerEnd(t *testing.T) {
	fromLeft := Segment{Point{-5, 10}, Point{0, 0}}
	fromRight := Segment{Point{5, 10}, Point{0, 0}}

	s := NewSweepLine(testTolerance)
	s.SetY(10)
	s.Add(fromRight)
	s.Add(fromLeft)
	s.SetY(0)
	assert.Equal(t, []Segment{fromLeft, fromRight}, s.Segments(),
		"segments meeting at a point are ordered by where they come from")
	assert.True(t, s.Remove(fromLeft))
	assert.True(t, s.Remove(fromRight))
}

func TestSweepLine_Neighbours(t *testing.T) {
	farLeft := Segment{Point{-10, 20}, Point{-10, -20}}
	downLeft := Segment{Point{0, 10}, Point{-5, 0}}
	downRight := Segment{Point{0, 10}, Point{5, 0}}
	farRight := Segment{Point{10, 20}, Point{10, -20}}

	s := NewSweepLine(testTolerance)
	s.SetY(10)
	for _, seg := range []Segment{farLeft, downLeft, downRight, farRight} {
		s.Add(seg)
	}

	left, ok := s.FirstLeft(downLeft)
	require.True(t, ok)
	assert.Equal(t, farLeft, left)

	right, ok := s.FirstRight(downLeft)
	require.True(t, ok)
	assert.Equal(t, farRight, right, "segments touching at the sweep line are skipped")

	left, ok = s.FirstLeftOfPoint(Point{0, 10})
	require.True(t, ok)
	assert.Equal(t, farLeft, left)

	_, ok = s.FirstLeft(farLeft)
	assert.False(t, ok)
	_, ok = s.FirstRight(farRight)
	assert.False(t, ok)

	s.SetY(5)
	left, ok = s.FirstLeftOfPoint(Point{1, 5})
	require.True(t, ok)
	assert.Equal(t, downLeft, left)
	right, ok = s.FirstRight(Segment{Point{1, 5}, Point{1, 5}})
	require.True(t, ok)
	assert.Equal(t, downRight, right)
}

func TestSweepLine_Horizontal(t *testing.T) {
	horizontal := Segment{Point{0, 6}, Point{9, 6}}
	slanted := Segment{Point{12, 8}, Point{9, 6}}

	s := NewSweepLine(testTolerance)
	s.SetY(6)
	s.Add(slanted)
	s.Add(horizontal)
	assert.Equal(t, 0.0, s.XAt(horizontal), "horizontal segments sit at their first endpoint")
	assert.Equal(t, []Segment{horizontal, slanted}, s.Segments())

	left, ok := s.FirstLeft(slanted)
	require.True(t, ok)
	assert.Equal(t, horizontal, left)
}
