package geometry

import (
	"fmt"
	"math/rand"

	"idfgen/defaults"
	"idfgen/model"
)

const minCellAreaM2 = 5.0

// TileFloor grids floorPoly with an axis-aligned grid of targetCellAreaM2
// cells, clipping each cell to the polygon and discarding slivers under
// minCellAreaM2. If the surviving coverage falls below
// minCoverageFraction of the polygon's area, the grid step is halved
// once and retried (the "27% efficiency" regression guard).
func TileFloor(floorPoly []model.Point, targetCellAreaM2 float64, minCoverageFraction float64, maxHalvings int) [][]model.Point {
	targetArea := PolygonArea(floorPoly)
	if targetArea <= 0 {
		return nil
	}

	cellSide := sqrtF(targetCellAreaM2)
	var cells [][]model.Point
	for halving := 0; halving <= maxHalvings; halving++ {
		cells = gridClip(floorPoly, cellSide)
		covered := 0.0
		for _, c := range cells {
			covered += PolygonArea(c)
		}
		if covered >= targetArea*minCoverageFraction || halving == maxHalvings {
			break
		}
		cellSide /= 2
	}
	return cells
}

func gridClip(poly []model.Point, cellSide float64) [][]model.Point {
	xMin, xMax, yMin, yMax := BoundingBox(poly)

	// Snap the grid to the bounding box: dividing each axis into a
	// whole number of equal steps means boundary cells are full-width,
	// so no sub-minimum sliver is ever carved off a rectangular edge.
	// Residual slivers only appear along non-axis-aligned or concave
	// boundaries.
	nx := int((xMax-xMin)/cellSide + 0.5)
	if nx < 1 {
		nx = 1
	}
	ny := int((yMax-yMin)/cellSide + 0.5)
	if ny < 1 {
		ny = 1
	}
	stepX := (xMax - xMin) / float64(nx)
	stepY := (yMax - yMin) / float64(ny)

	var cells [][]model.Point
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			x := xMin + float64(i)*stepX
			y := yMin + float64(j)*stepY
			clipped := ClipToRect(poly, x, x+stepX, y, y+stepY)
			if clipped == nil {
				continue
			}
			if PolygonArea(clipped) < minCellAreaM2 {
				continue
			}
			cells = append(cells, clipped)
		}
	}
	return cells
}

func sqrtF(v float64) float64 {
	if v <= 0 {
		return 1
	}
	x := v
	for i := 0; i < 20; i++ {
		x = 0.5 * (x + v/x)
	}
	return x
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// BuildZones assigns each grid cell on floorIndex a Zone: name,
// space-type (sampled from the template's space mix, preferring
// perimeter-affine types on perimeter cells), and ceiling height. The
// top floor reserves at least one Mechanical cell when the template
// includes one in its mix.
func BuildZones(cells [][]model.Point, floorPoly []model.Point, floorIndex int, isTopFloor bool, tmpl defaults.BuildingTemplate, ceilingHeightM float64, r *rand.Rand) []model.Zone {
	zones := make([]model.Zone, 0, len(cells))
	perimCells := classifyCells(cells, floorPoly)

	mechAssigned := false
	col := 0
	row := 0
	for i, cell := range cells {
		isPerimeter := perimCells[i]
		st := sampleSpaceType(tmpl, isPerimeter, r)
		if isTopFloor && !mechAssigned && hasSpaceType(tmpl, model.SpaceMechanical) && i == len(cells)-1 {
			st = model.SpaceMechanical
			mechAssigned = true
		}
		area := PolygonArea(cell)
		name := fmt.Sprintf("%s_%d_%d_%d", st, floorIndex, row, col)
		zones = append(zones, model.Zone{
			Name:              name,
			FloorIndex:        floorIndex,
			Row:               row,
			Col:               col,
			Polygon:           cell,
			AreaM2:            area,
			CeilingHeightM:    ceilingHeightM,
			VolumeM3:          area * ceilingHeightM,
			SpaceType:         st,
			IsPerimeter:       isPerimeter,
			IsTopFloor:        isTopFloor,
			HasExteriorWindow: isPerimeter,
		})
		col++
		if col >= 1000 { // grid is not row-major here; Col/Row are informational tags, not used for adjacency lookups
			col = 0
			row++
		}
	}
	return zones
}

const boundaryTolM = 0.01

// classifyCells reports, per cell, whether any of its edges lies
// along the floor polygon's outer boundary (i.e. it hosts at least one
// exterior wall).
func classifyCells(cells [][]model.Point, floorPoly []model.Point) []bool {
	out := make([]bool, len(cells))
	for ci, cell := range cells {
		n := len(cell)
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			if edgeOnBoundary(cell[i], cell[j], floorPoly, boundaryTolM) {
				out[ci] = true
				break
			}
		}
	}
	return out
}

func sampleSpaceType(tmpl defaults.BuildingTemplate, perimeter bool, r *rand.Rand) model.SpaceType {
	var candidates []defaults.SpaceFraction
	for _, sf := range tmpl.SpaceMix {
		if sf.Perimeter == perimeter {
			candidates = append(candidates, sf)
		}
	}
	if len(candidates) == 0 {
		candidates = tmpl.SpaceMix
	}
	if len(candidates) == 0 {
		return model.SpaceOfficeOpen
	}
	weights := make([]float64, len(candidates))
	for i, c := range candidates {
		weights[i] = c.Fraction
	}
	return candidates[weightedChoice(r, weights)].SpaceType
}

func hasSpaceType(tmpl defaults.BuildingTemplate, st model.SpaceType) bool {
	for _, sf := range tmpl.SpaceMix {
		if sf.SpaceType == st {
			return true
		}
	}
	return false
}
