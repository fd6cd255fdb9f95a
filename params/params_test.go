package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idfgen/defaults"
	"idfgen/model"
)

func TestResolve_PerStoryAreaOverridesSiteFootprint(t *testing.T) {
	lib := defaults.NewLibrary("2024.1")
	office := model.Office
	stories := 3
	perStory := 500.0
	site := &model.Site{FootprintM2: 12000, ClimateZone: model.C4}

	bp, err := Resolve(UserInput{
		BuildingType:        &office,
		Stories:             &stories,
		FloorAreaPerStoryM2: &perStory,
	}, site, lib)

	require.NoError(t, err)
	assert.InDelta(t, 1500.0, bp.FloorAreaM2, 1e-6)
}

func TestResolve_NoUserAreaUsesSiteFootprint(t *testing.T) {
	lib := defaults.NewLibrary("2024.1")
	site := &model.Site{FootprintM2: 8000, ClimateZone: model.C4}
	bp, err := Resolve(UserInput{}, site, lib)
	require.NoError(t, err)

	// The site footprint is the per-floor area, stamped once per story
	// (3 by default), so the building total is 3x the footprint.
	assert.InDelta(t, 8000.0, bp.FloorAreaPerStoryM2, 1e-6)
	assert.InDelta(t, 24000.0, bp.FloorAreaM2, 1e-6)
}

func TestResolve_NoUserAreaNoSiteUsesFallback(t *testing.T) {
	lib := defaults.NewLibrary("2024.1")
	bp, err := Resolve(UserInput{}, nil, lib)
	require.NoError(t, err)
	assert.Equal(t, model.Office, bp.BuildingType)
	assert.Equal(t, 3, bp.Stories)
	assert.InDelta(t, 1000.0, bp.FloorAreaM2, 1e-6)
	assert.InDelta(t, 0.4, bp.WWR[0], 1e-9)
}

func TestResolve_InconsistentAreasReturnsError(t *testing.T) {
	lib := defaults.NewLibrary("2024.1")
	stories := 2
	total := 1000.0
	perStory := 1000.0 // 2 * 1000 = 2000, disagrees with 1000 by 100%
	_, err := Resolve(UserInput{
		Stories:             &stories,
		TotalFloorAreaM2:    &total,
		FloorAreaPerStoryM2: &perStory,
	}, nil, lib)
	require.Error(t, err)
}

func TestResolve_StoriesZeroRejected(t *testing.T) {
	lib := defaults.NewLibrary("2024.1")
	stories := 0
	_, err := Resolve(UserInput{Stories: &stories}, nil, lib)
	require.Error(t, err)
}

func TestResolve_WWROutOfRangeRejected(t *testing.T) {
	lib := defaults.NewLibrary("2024.1")
	wwr := [4]float64{0.96, 0.4, 0.4, 0.4}
	_, err := Resolve(UserInput{WWR: &wwr}, nil, lib)
	require.Error(t, err)
}
