package geometry

import (
	"math"

	"idfgen/model"
)

// PolygonArea returns the signed area of a closed polygon via the
// shoelace formula; counter-clockwise winding yields a positive area.
func PolygonArea(poly []model.Point) float64 {
	n := len(poly)
	if n < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += poly[i].X*poly[j].Y - poly[j].X*poly[i].Y
	}
	return sum / 2
}

// PolygonCentroid returns the area-weighted centroid of poly.
func PolygonCentroid(poly []model.Point) model.Point {
	n := len(poly)
	if n == 0 {
		return model.Point{}
	}
	area := PolygonArea(poly)
	if math.Abs(area) < 1e-12 {
		var cx, cy float64
		for _, p := range poly {
			cx += p.X
			cy += p.Y
		}
		return model.Point{X: cx / float64(n), Y: cy / float64(n)}
	}
	var cx, cy float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := poly[i].X*poly[j].Y - poly[j].X*poly[i].Y
		cx += (poly[i].X + poly[j].X) * cross
		cy += (poly[i].Y + poly[j].Y) * cross
	}
	factor := 1 / (6 * area)
	return model.Point{X: cx * factor, Y: cy * factor}
}

// ensureCCW returns poly with counter-clockwise winding.
func ensureCCW(poly []model.Point) []model.Point {
	if PolygonArea(poly) >= 0 {
		return poly
	}
	out := make([]model.Point, len(poly))
	for i, p := range poly {
		out[len(poly)-1-i] = p
	}
	return out
}

// ClipToRect clips poly against an axis-aligned rectangle
// [xMin,xMax]x[yMin,yMax] using Sutherland-Hodgman clipping, which is
// valid for simple (possibly concave, non-self-intersecting) polygons
// against a convex clip window. Returns nil if the intersection is
// empty or degenerate.
func ClipToRect(poly []model.Point, xMin, xMax, yMin, yMax float64) []model.Point {
	out := ensureCCW(poly)
	out = clipEdge(out, func(p model.Point) bool { return p.X >= xMin },
		func(a, b model.Point) model.Point { return intersectX(a, b, xMin) })
	out = clipEdge(out, func(p model.Point) bool { return p.X <= xMax },
		func(a, b model.Point) model.Point { return intersectX(a, b, xMax) })
	out = clipEdge(out, func(p model.Point) bool { return p.Y >= yMin },
		func(a, b model.Point) model.Point { return intersectY(a, b, yMin) })
	out = clipEdge(out, func(p model.Point) bool { return p.Y <= yMax },
		func(a, b model.Point) model.Point { return intersectY(a, b, yMax) })
	if len(out) < 3 {
		return nil
	}
	return out
}

func clipEdge(poly []model.Point, inside func(model.Point) bool, intersect func(a, b model.Point) model.Point) []model.Point {
	if len(poly) == 0 {
		return nil
	}
	var out []model.Point
	n := len(poly)
	for i := 0; i < n; i++ {
		cur := poly[i]
		prev := poly[(i-1+n)%n]
		curIn := inside(cur)
		prevIn := inside(prev)
		if curIn {
			if !prevIn {
				out = append(out, intersect(prev, cur))
			}
			out = append(out, cur)
		} else if prevIn {
			out = append(out, intersect(prev, cur))
		}
	}
	return out
}

func intersectX(a, b model.Point, x float64) model.Point {
	if b.X == a.X {
		return model.Point{X: x, Y: a.Y}
	}
	t := (x - a.X) / (b.X - a.X)
	return model.Point{X: x, Y: a.Y + t*(b.Y-a.Y)}
}

func intersectY(a, b model.Point, y float64) model.Point {
	if b.Y == a.Y {
		return model.Point{X: a.X, Y: y}
	}
	t := (y - a.Y) / (b.Y - a.Y)
	return model.Point{X: a.X + t*(b.X-a.X), Y: y}
}

// BoundingBox returns the axis-aligned bounds of poly.
func BoundingBox(poly []model.Point) (xMin, xMax, yMin, yMax float64) {
	xMin, yMin = math.Inf(1), math.Inf(1)
	xMax, yMax = math.Inf(-1), math.Inf(-1)
	for _, p := range poly {
		xMin = math.Min(xMin, p.X)
		xMax = math.Max(xMax, p.X)
		yMin = math.Min(yMin, p.Y)
		yMax = math.Max(yMax, p.Y)
	}
	return
}

// edgesMatch reports whether edges (a1,a2) and (b1,b2) are the same
// segment up to reversal and a small tolerance, which is how adjacent
// zones sharing a wall are detected in the same-floor grid layout.
func edgesMatch(a1, a2, b1, b2 model.Point, tol float64) bool {
	return (closeEnough(a1, b1, tol) && closeEnough(a2, b2, tol)) ||
		(closeEnough(a1, b2, tol) && closeEnough(a2, b1, tol))
}

func closeEnough(a, b model.Point, tol float64) bool {
	return math.Abs(a.X-b.X) < tol && math.Abs(a.Y-b.Y) < tol
}

// pointOnSegment reports whether p lies on segment [a,b] within tol.
func pointOnSegment(p, a, b model.Point, tol float64) bool {
	cross := (p.X-a.X)*(b.Y-a.Y) - (p.Y-a.Y)*(b.X-a.X)
	segLen := math.Hypot(b.X-a.X, b.Y-a.Y)
	if segLen < 1e-9 {
		return closeEnough(p, a, tol)
	}
	if math.Abs(cross)/segLen > tol {
		return false
	}
	dot := (p.X-a.X)*(b.X-a.X) + (p.Y-a.Y)*(b.Y-a.Y)
	return dot >= -tol*segLen && dot <= segLen*segLen+tol*segLen
}

// edgeOnBoundary reports whether segment [a,b] lies along one edge of
// the (outer) polygon boundary, i.e. both endpoints are on the same
// polygon edge. Used to classify a grid cell's edges as exterior
// (Outdoors) vs interior (shared with a neighbor cell or partition).
func edgeOnBoundary(a, b model.Point, boundary []model.Point, tol float64) bool {
	n := len(boundary)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if pointOnSegment(a, boundary[i], boundary[j], tol) && pointOnSegment(b, boundary[i], boundary[j], tol) {
			return true
		}
	}
	return false
}
