package internal

const pipelineStage = "triangulate"

// Triangulate runs the full pipeline on a single ring of points: resolve
// self-intersections, decompose each simple piece into y-monotone polygons
// and triangulate those.
func Triangulate(points []Point, cfg Config) []Triangle {
	if len(points) < 3 {
		return nil
	}
	polygon := NewPolygon(points, cfg.Tolerance)
	if polygon.Size() < 3 {
		cfg.Trace.Tracef(pipelineStage, "fewer than three distinct points")
		return nil
	}

	triangles := make([]Triangle, 0, polygon.Size()-2)
	for _, simple := range ResolveIntersections(polygon, cfg) {
		if simple.Size() < 3 {
			// A sliver left behind by collinear overlaps covers no area.
			cfg.Trace.Tracef(pipelineStage, "dropping degenerate piece %v", simple)
			continue
		}
		for _, monotone := range DecomposeToYMonotones(simple, cfg) {
			for _, face := range TriangulateYMonotone(monotone, cfg) {
				tri, ok := AsTriangle(face)
				if !ok {
					cfg.fail(pipelineStage, "face %v is not a triangle", face)
					continue
				}
				triangles = append(triangles, tri)
			}
		}
	}
	cfg.Trace.Tracef(pipelineStage, "%d points into %d triangles", len(points), len(triangles))
	return triangles
}

// AsTriangle converts a three vertex polygon, keeping its clockwise order.
func AsTriangle(polygon *Polygon) (Triangle, bool) {
	if polygon.Size() != 3 {
		return Triangle{}, false
	}
	points := polygon.Points()
	return Triangle{points[0], points[1], points[2]}, true
}
