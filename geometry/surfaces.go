package geometry

import (
	"fmt"
	"math"

	"idfgen/defaults"
	"idfgen/model"
)

// orientationIndex buckets an azimuth in degrees-from-north into the
// WWR array's [North, East, South, West] ordering.
func orientationIndex(azimuthDeg float64) int {
	a := math.Mod(azimuthDeg, 360)
	if a < 0 {
		a += 360
	}
	switch {
	case a >= 315 || a < 45:
		return 0 // North
	case a < 135:
		return 1 // East
	case a < 225:
		return 2 // South
	default:
		return 3 // West
	}
}

func edgeAzimuthDeg(a, b model.Point) float64 {
	// Outward normal of edge a->b assuming CCW polygon winding points
	// to the right of travel, i.e. (dy, -dx).
	dx, dy := b.X-a.X, b.Y-a.Y
	nx, ny := dy, -dx
	azimuth := math.Atan2(nx, ny) * 180 / math.Pi
	if azimuth < 0 {
		azimuth += 360
	}
	return azimuth
}

// GenerateSurfaces builds surfaces and fenestration for one floor's
// worth of zones; identical cells are stamped story by story, so the
// same cell list serves every floor. floorIndex
// identifies the story (0-based); isTopFloor controls whether the
// ceiling surface is a Roof or an interior Surface:<peer>.
// belowZones lets the caller wire floor-to-floor adjacency: zones[i]
// on this floor stacks directly on belowZones[i]. Interior ceilings
// are returned without a peer name; Generate fills it in afterwards.
func GenerateSurfaces(zones []model.Zone, floorPoly []model.Point, floorIndex int, isTopFloor bool, belowZones []model.Zone,
	cs defaults.ConstructionSet, wwr [4]float64) ([]model.Surface, []model.Fenestration) {

	var surfaces []model.Surface
	var fenestrations []model.Fenestration

	baseZ := float64(floorIndex) * averageHeight(zones)

	for zi, z := range zones {
		// Floor surface.
		floorBoundary := model.BoundaryGround
		floorConstruction := cs.GroundFloorName
		floorPeer := ""
		if floorIndex > 0 {
			floorBoundary = model.BoundarySurface
			floorConstruction = cs.FloorName
			if zi < len(belowZones) {
				floorPeer = ceilingSurfaceName(belowZones[zi].Name)
			}
		}
		floorSurf := model.Surface{
			Name:         floorSurfaceName(z.Name),
			Zone:         z.Name,
			Kind:         model.SurfaceFloor,
			Boundary:     floorBoundary,
			PeerName:     floorPeer,
			Construction: floorConstruction,
			Polygon:      toPolygon3(z.Polygon, baseZ),
			TiltDeg:      180,
			AzimuthDeg:   0,
			AreaM2:       z.AreaM2,
		}
		surfaces = append(surfaces, floorSurf)

		// Ceiling/roof surface.
		ceilBoundary := model.BoundaryOutdoors
		ceilConstruction := cs.RoofName
		ceilKind := model.SurfaceRoof
		if !isTopFloor {
			ceilBoundary = model.BoundarySurface
			ceilConstruction = cs.FloorName
			ceilKind = model.SurfaceCeiling
		}
		ceilSurf := model.Surface{
			Name:         ceilingSurfaceName(z.Name),
			Zone:         z.Name,
			Kind:         ceilKind,
			Boundary:     ceilBoundary,
			Construction: ceilConstruction,
			Polygon:      toPolygon3(z.Polygon, baseZ+z.CeilingHeightM),
			TiltDeg:      0,
			AzimuthDeg:   0,
			AreaM2:       z.AreaM2,
		}
		surfaces = append(surfaces, ceilSurf)

		// Wall surfaces, one per polygon edge.
		n := len(z.Polygon)
		for ei := 0; ei < n; ei++ {
			p1 := z.Polygon[ei]
			p2 := z.Polygon[(ei+1)%n]
			length := math.Hypot(p2.X-p1.X, p2.Y-p1.Y)
			if length < 1e-6 {
				continue
			}
			azimuth := edgeAzimuthDeg(p1, p2)
			exterior := edgeOnBoundary(p1, p2, floorPoly, boundaryTolM)

			wallName := fmt.Sprintf("%s_Wall%d", z.Name, ei+1)
			boundary := model.BoundaryAdiabatic
			peer := ""
			construction := cs.WallName
			if exterior {
				boundary = model.BoundaryOutdoors
			} else if peerZone, peerEdge, ok := findAdjacentZoneEdge(zones, zi, p1, p2); ok {
				boundary = model.BoundarySurface
				peer = fmt.Sprintf("%s_Wall%d", peerZone, peerEdge+1)
			}
			area := length * z.CeilingHeightM
			surfaces = append(surfaces, model.Surface{
				Name:         wallName,
				Zone:         z.Name,
				Kind:         model.SurfaceWall,
				Boundary:     boundary,
				PeerName:     peer,
				Construction: construction,
				Polygon:      wallVertices(p1, p2, baseZ, z.CeilingHeightM),
				TiltDeg:      90,
				AzimuthDeg:   azimuth,
				AreaM2:       area,
			})

			if exterior && wwr[orientationIndex(azimuth)] > 0 {
				winArea := area * wwr[orientationIndex(azimuth)]
				fenestrations = append(fenestrations, model.Fenestration{
					Name:         wallName + "_Window",
					Kind:         model.FenestrationWindow,
					Surface:      wallName,
					Construction: cs.WindowName,
					AreaM2:       winArea,
					AreaFraction: wwr[orientationIndex(azimuth)],
				})
			}
		}
	}

	return surfaces, fenestrations
}

func averageHeight(zones []model.Zone) float64 {
	if len(zones) == 0 {
		return 3.0
	}
	return zones[0].CeilingHeightM
}

func floorSurfaceName(zoneName string) string   { return zoneName + "_Floor" }
func ceilingSurfaceName(zoneName string) string { return zoneName + "_Ceiling" }

func toPolygon3(poly []model.Point, z float64) []model.Point3 {
	out := make([]model.Point3, len(poly))
	for i, p := range poly {
		out[i] = model.Point3{X: p.X, Y: p.Y, Z: z}
	}
	return out
}

func wallVertices(p1, p2 model.Point, baseZ, height float64) []model.Point3 {
	return []model.Point3{
		{X: p1.X, Y: p1.Y, Z: baseZ + height},
		{X: p1.X, Y: p1.Y, Z: baseZ},
		{X: p2.X, Y: p2.Y, Z: baseZ},
		{X: p2.X, Y: p2.Y, Z: baseZ + height},
	}
}

// findAdjacentZoneEdge scans every other zone on the same floor for an
// edge coincident with [p1,p2], establishing the Surface:Surface
// reciprocal adjacency shared interior walls must declare.
func findAdjacentZoneEdge(zones []model.Zone, selfIdx int, p1, p2 model.Point) (peerZone string, peerEdgeIdx int, ok bool) {
	for zi, z := range zones {
		if zi == selfIdx {
			continue
		}
		n := len(z.Polygon)
		for ei := 0; ei < n; ei++ {
			q1 := z.Polygon[ei]
			q2 := z.Polygon[(ei+1)%n]
			if edgesMatch(p1, p2, q1, q2, boundaryTolM) {
				return z.Name, ei, true
			}
		}
	}
	return "", 0, false
}
