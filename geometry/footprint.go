package geometry

import (
	"math"
	"math/rand"

	"idfgen/model"
)

// FootprintShape names one of the synthesizable footprint families
// .
type FootprintShape string

const (
	ShapeRectangle FootprintShape = "rectangle"
	ShapeL         FootprintShape = "L"
	ShapeU         FootprintShape = "U"
	ShapeCourtyard FootprintShape = "courtyard-rectangle"
)

// shapeWeights returns the per-building-type sampling weights for
// footprint shape selection. Office/Hospital favor more articulated
// plans (L/U/courtyard) for daylighting depth; Warehouse/Retail favor
// plain rectangles for column-grid efficiency.
func shapeWeights(bt model.BuildingType) map[FootprintShape]float64 {
	switch bt {
	case model.Warehouse, model.Retail:
		return map[FootprintShape]float64{ShapeRectangle: 0.85, ShapeL: 0.15}
	case model.Office, model.Hospital, model.School:
		return map[FootprintShape]float64{ShapeRectangle: 0.4, ShapeL: 0.25, ShapeU: 0.2, ShapeCourtyard: 0.15}
	default:
		return map[FootprintShape]float64{ShapeRectangle: 0.6, ShapeL: 0.25, ShapeU: 0.15}
	}
}

// SynthesizeFootprint builds a polygon of exactly targetAreaM2, shape
// chosen by weighted sample from bt's distribution. The site footprint polygon
// is never consulted here.
func SynthesizeFootprint(targetAreaM2 float64, bt model.BuildingType, r *rand.Rand) model.Footprint {
	weights := shapeWeights(bt)
	shapes := make([]FootprintShape, 0, len(weights))
	wvals := make([]float64, 0, len(weights))
	for _, s := range []FootprintShape{ShapeRectangle, ShapeL, ShapeU, ShapeCourtyard} {
		if w, ok := weights[s]; ok {
			shapes = append(shapes, s)
			wvals = append(wvals, w)
		}
	}
	shape := shapes[weightedChoice(r, wvals)]

	poly := buildShape(shape, targetAreaM2)
	area := PolygonArea(poly)
	scale := math.Sqrt(targetAreaM2 / math.Abs(area))
	scaled := make([]model.Point, len(poly))
	for i, p := range poly {
		scaled[i] = model.Point{X: p.X * scale, Y: p.Y * scale}
	}
	return model.Footprint{
		Polygon:  scaled,
		AreaM2:   PolygonArea(scaled),
		Centroid: PolygonCentroid(scaled),
	}
}

// buildShape returns an unscaled template polygon for shape, built
// from a square of side sqrt(targetAreaM2); SynthesizeFootprint scales
// it to the exact target area via the area's square-root scale factor.
func buildShape(shape FootprintShape, targetAreaM2 float64) []model.Point {
	// aspect ratio 1.3^2 = 1.69:1, a common commercial plan shape.
	side := math.Sqrt(targetAreaM2)
	w, h := side*1.3, side/1.3

	switch shape {
	case ShapeRectangle:
		return []model.Point{{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: h}, {X: 0, Y: h}}
	case ShapeL:
		// Remove the top-right quadrant-ish notch.
		nx, ny := w*0.5, h*0.5
		return []model.Point{
			{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: ny}, {X: nx, Y: ny}, {X: nx, Y: h}, {X: 0, Y: h},
		}
	case ShapeU:
		nx1, nx2 := w*0.35, w*0.65
		ny := h * 0.5
		return []model.Point{
			{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: h}, {X: nx2, Y: h}, {X: nx2, Y: ny},
			{X: nx1, Y: ny}, {X: nx1, Y: h}, {X: 0, Y: h},
		}
	case ShapeCourtyard:
		// Outer ring minus an inner rectangular hole is not a simple
		// polygon; approximate with a C-shaped ring (one thin slit)
		// so the footprint remains a single closed, non-self-
		// intersecting loop the format requires.
		ox, oy := w, h
		inset := math.Min(w, h) * 0.25
		ix0, iy0 := inset, inset
		ix1, iy1 := ox-inset, oy-inset
		slit := inset * 0.3
		sy := (iy0+iy1)/2 - slit/2
		return []model.Point{
			{X: 0, Y: 0}, {X: ox, Y: 0}, {X: ox, Y: oy}, {X: 0, Y: oy}, {X: 0, Y: sy + slit},
			{X: ix0, Y: sy + slit}, {X: ix0, Y: iy1}, {X: ix1, Y: iy1}, {X: ix1, Y: iy0},
			{X: ix0, Y: iy0}, {X: ix0, Y: sy}, {X: 0, Y: sy},
		}
	default:
		return []model.Point{{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: h}, {X: 0, Y: h}}
	}
}
