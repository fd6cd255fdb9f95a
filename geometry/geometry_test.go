package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idfgen/config"
	"idfgen/defaults"
	"idfgen/model"
	"idfgen/params"
)

func testGeometryConfig() config.GeometryConfig {
	return config.GeometryConfig{
		TargetCellAreaM2:      100,
		MinCellAreaM2:         5,
		MinCoverageFraction:   0.40,
		MaxGridHalvings:       1,
		DefaultCeilingHeightM: 3.0,
	}
}

func TestGenerate_ZoneAreaSumMatchesPerStoryTimesStories(t *testing.T) {
	lib := defaults.NewLibrary("2024.1")
	rec := lib.Resolve(model.Office, model.C4, nil, nil, model.LEEDNone)
	bp := model.BuildingParameters{
		BuildingType:        model.Office,
		Stories:             3,
		FloorAreaM2:         1500,
		FloorAreaPerStoryM2: 500,
		WWR:                 [4]float64{0.4, 0.4, 0.4, 0.4},
	}
	r := NewRand(SeedFor(bp, "test"))
	result, err := Generate(bp, nil, rec, testGeometryConfig(), r)
	require.NoError(t, err)

	var total float64
	for _, z := range result.Zones {
		total += z.AreaM2
	}
	assert.InDelta(t, 1500.0, total, 1500.0*0.08)
}

func TestGenerate_SiteFootprintIgnoredWhenUserAreaSupplied(t *testing.T) {
	lib := defaults.NewLibrary("2024.1")
	rec := lib.Resolve(model.Office, model.C4, nil, nil, model.LEEDNone)
	bp := model.BuildingParameters{
		BuildingType:        model.Office,
		Stories:             3,
		FloorAreaM2:         1500,
		FloorAreaPerStoryM2: 500,
		WWR:                 [4]float64{0.4, 0.4, 0.4, 0.4},
	}
	site := &model.Site{FootprintM2: 12000, FootprintPoly: []model.Point{
		{X: 0, Y: 0}, {X: 200, Y: 0}, {X: 200, Y: 60}, {X: 0, Y: 60},
	}}
	r := NewRand(SeedFor(bp, "test"))
	result, err := Generate(bp, site, rec, testGeometryConfig(), r)
	require.NoError(t, err)
	assert.InDelta(t, 500.0, result.Footprint.AreaM2, 1.0)
}

func TestGenerate_StoriesOneHasNoCeilingToBelowSurfaces(t *testing.T) {
	lib := defaults.NewLibrary("2024.1")
	rec := lib.Resolve(model.Office, model.C4, nil, nil, model.LEEDNone)
	bp := model.BuildingParameters{
		BuildingType: model.Office, Stories: 1, FloorAreaM2: 2000, FloorAreaPerStoryM2: 2000,
		WWR: [4]float64{0.4, 0.4, 0.4, 0.4},
	}
	r := NewRand(SeedFor(bp, "test"))
	result, err := Generate(bp, nil, rec, testGeometryConfig(), r)
	require.NoError(t, err)

	for _, s := range result.Surfaces {
		if s.Kind == model.SurfaceFloor {
			assert.Equal(t, model.BoundaryGround, s.Boundary)
		}
		if s.Kind == model.SurfaceRoof {
			assert.Equal(t, model.BoundaryOutdoors, s.Boundary)
		}
		assert.NotEqual(t, model.SurfaceCeiling, s.Kind)
	}
}

func TestGenerate_ReciprocalSurfaceAdjacency(t *testing.T) {
	lib := defaults.NewLibrary("2024.1")
	rec := lib.Resolve(model.Office, model.C4, nil, nil, model.LEEDNone)
	bp := model.BuildingParameters{
		BuildingType: model.Office, Stories: 2, FloorAreaM2: 1000, FloorAreaPerStoryM2: 500,
		WWR: [4]float64{0.4, 0.4, 0.4, 0.4},
	}
	r := NewRand(SeedFor(bp, "test"))
	result, err := Generate(bp, nil, rec, testGeometryConfig(), r)
	require.NoError(t, err)

	byName := map[string]model.Surface{}
	for _, s := range result.Surfaces {
		byName[s.Name] = s
	}
	for _, s := range result.Surfaces {
		if s.Boundary != model.BoundarySurface {
			continue
		}
		peer, ok := byName[s.PeerName]
		require.True(t, ok, "peer %s for %s must exist", s.PeerName, s.Name)
		assert.Equal(t, s.Name, peer.PeerName, "adjacency must be reciprocal for %s", s.Name)
	}
}

func TestGenerate_NoZeroAreaSurfaces(t *testing.T) {
	lib := defaults.NewLibrary("2024.1")
	rec := lib.Resolve(model.Office, model.C4, nil, nil, model.LEEDNone)
	bp := model.BuildingParameters{
		BuildingType: model.Office, Stories: 1, FloorAreaPerStoryM2: 50, FloorAreaM2: 50,
		WWR: [4]float64{0.4, 0.4, 0.4, 0.4},
	}
	r := NewRand(SeedFor(bp, "test"))
	result, err := Generate(bp, nil, rec, testGeometryConfig(), r)
	require.NoError(t, err)
	for _, s := range result.Surfaces {
		assert.Greater(t, s.AreaM2, 0.0, "surface %s has zero area", s.Name)
	}
}

func TestGenerate_ConcaveLShapeProducesZones(t *testing.T) {
	lib := defaults.NewLibrary("2024.1")
	rec := lib.Resolve(model.Hospital, model.C4, nil, nil, model.LEEDNone)
	bp := model.BuildingParameters{
		BuildingType: model.Hospital, Stories: 1, FloorAreaPerStoryM2: 2000, FloorAreaM2: 2000,
		WWR: [4]float64{0.3, 0.3, 0.3, 0.3},
	}
	r := NewRand(SeedFor(bp, "test"))
	result, err := Generate(bp, nil, rec, testGeometryConfig(), r)
	require.NoError(t, err)
	assert.NotEmpty(t, result.Zones)
}

func TestPolygonArea_Rectangle(t *testing.T) {
	poly := []model.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 5}, {X: 0, Y: 5}}
	assert.InDelta(t, 50.0, PolygonArea(poly), 1e-9)
}

func TestClipToRect_FullyInside(t *testing.T) {
	poly := []model.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	clipped := ClipToRect(poly, -5, 15, -5, 15)
	assert.InDelta(t, 100.0, PolygonArea(clipped), 1e-9)
}

func TestClipToRect_PartialOverlap(t *testing.T) {
	poly := []model.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	clipped := ClipToRect(poly, 5, 15, 0, 10)
	assert.InDelta(t, 50.0, PolygonArea(clipped), 1e-9)
}

func TestSeedFor_Deterministic(t *testing.T) {
	bp := model.BuildingParameters{BuildingType: model.Office, Stories: 3, FloorAreaM2: 1500}
	s1 := SeedFor(bp, "salt")
	s2 := SeedFor(bp, "salt")
	assert.Equal(t, s1, s2)
}

func TestGenerate_SitePolygonUsedWhenNoUserArea(t *testing.T) {
	lib := defaults.NewLibrary("2024.1")
	site := &model.Site{
		ClimateZone: model.C4,
		FootprintM2: 6000,
		FootprintPoly: []model.Point{
			{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 60}, {X: 0, Y: 60},
		},
	}

	// Resolve with no user area at all: the site footprint is the
	// per-floor area, stamped across every story.
	stories := 4
	bp, err := params.Resolve(params.UserInput{Stories: &stories}, site, lib)
	require.NoError(t, err)
	assert.InDelta(t, 6000.0, bp.FloorAreaPerStoryM2, 1e-6)
	assert.InDelta(t, 24000.0, bp.FloorAreaM2, 1e-6)

	rec := lib.Resolve(bp.BuildingType, site.ClimateZone, nil, nil, model.LEEDNone)
	r := NewRand(SeedFor(bp, "test"))
	result, err := Generate(bp, site, rec, testGeometryConfig(), r)
	require.NoError(t, err)

	// The real site polygon must be used as-is, not a synthesized one:
	// same vertices, same 100 x 60 bounding box.
	require.Len(t, result.Footprint.Polygon, len(site.FootprintPoly))
	for i, p := range site.FootprintPoly {
		assert.InDelta(t, p.X, result.Footprint.Polygon[i].X, 1e-9)
		assert.InDelta(t, p.Y, result.Footprint.Polygon[i].Y, 1e-9)
	}
	assert.InDelta(t, 6000.0, result.Footprint.AreaM2, 1e-6)

	var total float64
	for _, z := range result.Zones {
		total += z.AreaM2
	}
	assert.InDelta(t, 24000.0, total, 24000.0*0.005)
}
