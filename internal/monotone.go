package internal

// Facilities for converting a Y-monotone polygon into triangles. A Y monotone
// polygon is a simple polygon such that any horizontal line intersects at most
// two edges.
//
// Vertices are visited top to bottom. The stack holds the reflex chain of
// vertices that have been seen but cannot yet be cut off: everything on it
// except the top belongs to one chain, and every consecutive triple on it
// bends away from the interior. Each diagonal goes into a DCEL, whose faces
// are the triangles.
//
// Equal y values are ordered by x (see SweepsBefore), which simulates a
// slightly rotated coordinate system without horizontal edges.

const monotoneStage = "monotone"

// TriangulateYMonotone splits a y-monotone polygon into triangles. Polygons
// with fewer than four vertices are returned as they are.
func TriangulateYMonotone(polygon *Polygon, cfg Config) []*Polygon {
	if polygon.Size() < 4 {
		return []*Polygon{polygon}
	}
	tol := cfg.Tolerance
	dcel := NewDCEL(polygon, cfg)
	vertices := sweepOrder(polygon, tol)
	n := len(vertices)

	stack := make(VertexStack, 0, n)
	stack.Push(vertices[0])
	stack.Push(vertices[1])

	for i := 2; i < n-1; i++ {
		v := vertices[i]
		if v.Adjacent(stack.Peek()) {
			// Same chain. Cut off triangles for as long as the diagonal from v
			// to the vertex under the top of the stack stays inside.
			/*
				       q
				      /|
				     / last
				    / /
				   v-/  <- diagonal v-q
			*/
			last := stack.Pop()
			for !stack.Empty() && isValidDiagonal(tol, v, last, stack.Peek()) {
				last = stack.Pop()
				dcel.InsertEdge(Segment{v.Point, last.Point})
			}
			stack.Push(last)
			stack.Push(v)
		} else {
			// Opposite chain. Monotonicity guarantees that v sees every vertex
			// on the stack, so connect to all but the bottom one, which is
			// already adjacent to v.
			for !stack.Empty() {
				if stack.Len() != 1 {
					dcel.InsertEdge(Segment{v.Point, stack.Peek().Point})
				}
				stack.Pop()
			}
			stack.Push(vertices[i-1])
			stack.Push(v)
		}
	}

	// The bottom vertex sees everything left on the stack. Its two ends are
	// already its neighbours.
	bottom := vertices[n-1]
	stack.Pop()
	for !stack.Empty() {
		if stack.Len() != 1 {
			dcel.InsertEdge(Segment{bottom.Point, stack.Peek().Point})
		}
		stack.Pop()
	}

	triangles := dcel.Polygons()
	cfg.Trace.Tracef(monotoneStage, "%d vertices into %d triangles", n, len(triangles))
	return triangles
}

// isValidDiagonal reports whether the diagonal from v to peek passes inside
// the polygon, given that last sits between them on the reflex chain. On the
// right chain the chain must turn clockwise at last, on the left chain
// counterclockwise. The turn must be strict: when v, last and peek are
// collinear the diagonal would run along the chain itself.
func isValidDiagonal(tol Tolerance, v, last, peek *Vertex) bool {
	toLast := last.Point.Sub(v.Point)
	toPeek := peek.Point.Sub(v.Point)
	if v.Type == RightRegular {
		return tol.MoreThanPi(toPeek, toLast)
	}
	return tol.MoreThanPi(toLast, toPeek)
}
