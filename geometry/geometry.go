// Package geometry implements the footprint and zoning engine (C4):
// from a resolved footprint polygon (user-synthesized or site-derived),
// story count, and per-floor area, it produces the ordered list of
// zones, surfaces, and fenestration the rest of the pipeline consumes.
package geometry

import (
	"math/rand"

	"idfgen/config"
	"idfgen/defaults"
	"idfgen/idferrors"
	"idfgen/model"
)

// Result is everything C4 hands to the downstream loads (C5) and HVAC
// (C6) stages.
type Result struct {
	Footprint     model.Footprint
	Zones         []model.Zone // all floors, in construction order
	Surfaces      []model.Surface
	Fenestrations []model.Fenestration
}

// Generate runs the full geometry pipeline for one building.
func Generate(bp model.BuildingParameters, site *model.Site, rec defaults.Record, cfg config.GeometryConfig, r *rand.Rand) (Result, error) {
	footprint := resolveFootprint(bp, site, rec.Template, r)
	if PolygonArea(footprint.Polygon) <= 0 || len(footprint.Polygon) < 3 {
		return Result{}, idferrors.NewGeometryError("Footprint", "degenerate or non-closing footprint polygon")
	}

	targetCellArea := rec.Template.TargetCellAreaM2
	if targetCellArea <= 0 {
		targetCellArea = cfg.TargetCellAreaM2
	}
	cells := TileFloor(footprint.Polygon, targetCellArea, cfg.MinCoverageFraction, cfg.MaxGridHalvings)
	if len(cells) == 0 {
		return Result{}, idferrors.NewGeometryError("Footprint", "grid tiling produced zero surviving cells")
	}

	ceilingHeight := cfg.DefaultCeilingHeightM
	if ceilingHeight < 2.5 || ceilingHeight > 5.0 {
		ceilingHeight = 3.0
	}

	var allZones []model.Zone
	var allSurfaces []model.Surface
	var allFenestrations []model.Fenestration
	var prevFloorZones []model.Zone

	for floor := 0; floor < bp.Stories; floor++ {
		isTop := floor == bp.Stories-1
		zones := BuildZones(cells, footprint.Polygon, floor, isTop, rec.Template, ceilingHeight, r)
		surfaces, fenestrations := GenerateSurfaces(zones, footprint.Polygon, floor, isTop, prevFloorZones, rec.Constructions, bp.WWR)

		allZones = append(allZones, zones...)
		allSurfaces = append(allSurfaces, surfaces...)
		allFenestrations = append(allFenestrations, fenestrations...)
		prevFloorZones = zones
	}

	// Second pass: each upper-floor surface already names the ceiling
	// below it; point that ceiling back at the floor so every
	// Surface:<peer> adjacency is reciprocal.
	floorAbove := make(map[string]string)
	for _, s := range allSurfaces {
		if s.Kind == model.SurfaceFloor && s.PeerName != "" {
			floorAbove[s.PeerName] = s.Name
		}
	}
	for i := range allSurfaces {
		if allSurfaces[i].Kind == model.SurfaceCeiling {
			allSurfaces[i].PeerName = floorAbove[allSurfaces[i].Name]
		}
	}

	return Result{
		Footprint:     footprint,
		Zones:         allZones,
		Surfaces:      allSurfaces,
		Fenestrations: allFenestrations,
	}, nil
}

// resolveFootprint implements the footprint-derivation rule:
// a user-supplied per-story area (already folded into
// bp.FloorAreaPerStoryM2 by the parameter resolver) synthesizes a fresh
// polygon and ignores any site footprint; otherwise the site polygon is
// used as-is. A user area equal to the site footprint area cannot be
// told apart from a site-derived one and also takes the site polygon.
func resolveFootprint(bp model.BuildingParameters, site *model.Site, tmpl defaults.BuildingTemplate, r *rand.Rand) model.Footprint {
	if site != nil && len(site.FootprintPoly) >= 3 && siteAreaMatchesParams(site, bp) {
		return model.Footprint{
			Polygon:  site.FootprintPoly,
			AreaM2:   PolygonArea(site.FootprintPoly),
			Centroid: PolygonCentroid(site.FootprintPoly),
		}
	}
	return SynthesizeFootprint(bp.FloorAreaPerStoryM2, bp.BuildingType, r)
}

// siteAreaMatchesParams reports whether the resolved per-floor area
// came from the site footprint itself (within floating point slack)
// rather than from an explicit user area — in which case the actual
// site polygon shape should be used instead of a synthesized one.
func siteAreaMatchesParams(site *model.Site, bp model.BuildingParameters) bool {
	if site.FootprintM2 <= 0 {
		return false
	}
	diff := bp.FloorAreaPerStoryM2 - site.FootprintM2
	if diff < 0 {
		diff = -diff
	}
	return diff < site.FootprintM2*1e-9
}
