package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idfgen/config"
	"idfgen/defaults"
	"idfgen/idf"
	"idfgen/idferrors"
	"idfgen/logging"
	"idfgen/model"
	"idfgen/params"
	"idfgen/site"
	idftesting "idfgen/testing"
)

func testGenerator(t *testing.T) *Generator {
	t.Helper()
	cfg, err := config.Load()
	require.NoError(t, err)
	lib := defaults.NewLibrary(cfg.Defaults.LibraryVersion)
	return New(cfg, lib, logging.NewNop(), nil)
}

func intPtr(v int) *int                              { return &v }
func floatPtr(v float64) *float64                    { return &v }
func btPtr(v model.BuildingType) *model.BuildingType { return &v }
func leedPtr(v model.LEEDLevel) *model.LEEDLevel     { return &v }

func totalZoneArea(t *testing.T, out *Output) float64 {
	t.Helper()
	return out.Report.Stats.TotalFloorAreaM2
}

func TestScenarioS1_OfficeUserAreaOverridesSiteFootprint(t *testing.T) {
	g := testGenerator(t)
	site := idftesting.SiteFixture(model.C4, 12000)

	out, err := g.Run(context.Background(), idftesting.OfficeInput(500, 3), site)
	require.NoError(t, err)

	assert.InDelta(t, 1500.0, totalZoneArea(t, out), 8.0,
		"zone areas must sum to per-story x stories, site footprint ignored")
	assert.Equal(t, 1, strings.Count(out.IDFText, "AirLoopHVAC,\n"), "exactly one airloop")
	assert.Equal(t, 1, strings.Count(out.IDFText, "Controller:OutdoorAir,\n"),
		"exactly one outdoor-air controller per airloop")
	assert.Contains(t, out.IDFText, "DifferentialDryBulb")
	assert.NotContains(t, out.IDFText, "DifferentialEnthalpy")
}

func TestScenarioS2_Pre1980OfficeAgeAdjustment(t *testing.T) {
	g := testGenerator(t)
	user := idftesting.OfficeInput(1500, 10)
	user.YearBuilt = intPtr(1973)

	out, err := g.Run(context.Background(), user, idftesting.SiteFixture(model.C4, 0))
	require.NoError(t, err)

	assert.InDelta(t, 15000.0, totalZoneArea(t, out), 75.0)
	assert.Contains(t, out.IDFText, "ZoneInfiltration:EffectiveLeakageArea",
		"pre-1980 buildings use the leakage-area method")
	assert.NotContains(t, out.IDFText, "ZoneInfiltration:DesignFlowRate")

	lib := defaults.NewLibrary("2024.1")
	aged := lib.Resolve(model.Office, model.C4, intPtr(1973), nil, model.LEEDNone)
	modern := lib.Resolve(model.Office, model.C4, nil, nil, model.LEEDNone)
	assert.Less(t, aged.Efficiencies.CoolingCOP, modern.Efficiencies.CoolingCOP,
		"age-degraded COP must be below modern")
}

func TestScenarioS3_HospitalChilledWaterModerateClimate(t *testing.T) {
	g := testGenerator(t)
	user := params.UserInput{
		BuildingType:     btPtr(model.Hospital),
		Stories:          intPtr(5),
		TotalFloorAreaM2: floatPtr(20000),
	}

	out, err := g.Run(context.Background(), user, idftesting.SiteFixture(model.C5, 0))
	require.NoError(t, err)

	assert.Contains(t, out.IDFText, "Coil:Cooling:Water", "chilled-water system")
	assert.NotContains(t, out.IDFText, "HeatExchanger:AirToAir:SensibleAndLatent",
		"no ERV in climate C5")
	assert.NotContains(t, out.IDFText, "Controller:MechanicalVentilation",
		"no DCV for hospitals")
	assert.NotContains(t, out.IDFText, "Daylighting:Controls")
}

func TestScenarioS4_ResidentialMultiPTAC(t *testing.T) {
	g := testGenerator(t)
	user := params.UserInput{
		BuildingType:        btPtr(model.ResidentialMulti),
		Stories:             intPtr(15),
		FloorAreaPerStoryM2: floatPtr(800),
	}

	out, err := g.Run(context.Background(), user, nil)
	require.NoError(t, err)

	assert.Contains(t, out.IDFText, "ZoneHVAC:PackagedTerminalAirConditioner")
	assert.NotContains(t, out.IDFText, "AirLoopHVAC,\n", "no central airloop")
	assert.NotContains(t, out.IDFText, "Controller:OutdoorAir", "no economizer")
	assert.Contains(t, out.IDFText, "ZoneInfiltration:DesignFlowRate")
	assert.NotContains(t, out.IDFText, "ZoneInfiltration:EffectiveLeakageArea")
}

func TestScenarioS5_PlatinumOfficeHotHumid(t *testing.T) {
	g := testGenerator(t)
	user := idftesting.OfficeInput(2000, 1)
	user.LEEDLevel = leedPtr(model.LEEDPlatinum)

	out, err := g.Run(context.Background(), user, idftesting.SiteFixture(model.C1, 0))
	require.NoError(t, err)

	assert.Contains(t, out.IDFText, "DifferentialEnthalpy")
	assert.Contains(t, out.IDFText, "HeatExchanger:AirToAir:SensibleAndLatent")
	assert.Equal(t, 1, strings.Count(out.IDFText, "AirLoopHVAC,\n"))

	lib := defaults.NewLibrary("2024.1")
	platinum := lib.Resolve(model.Office, model.C1, nil, nil, model.LEEDPlatinum)
	none := lib.Resolve(model.Office, model.C1, nil, nil, model.LEEDNone)
	assert.Less(t, platinum.Constructions.WindowUFactor, none.Constructions.WindowUFactor,
		"LEED envelope multiplier must tighten the window U-factor")
}

func TestScenarioS6_ZeroStoriesIsResolveError(t *testing.T) {
	g := testGenerator(t)
	user := idftesting.OfficeInput(500, 0)

	out, err := g.Run(context.Background(), user, nil)
	require.Error(t, err)
	assert.Nil(t, out, "no IDF text on failure")
	e, ok := err.(*idferrors.Error)
	require.True(t, ok)
	assert.Equal(t, idferrors.Resolve, e.Kind)
}

func TestRunIsByteDeterministic(t *testing.T) {
	g := testGenerator(t)
	site := idftesting.SiteFixture(model.C4, 0)

	first, err := g.Run(context.Background(), idftesting.OfficeInput(500, 3), site)
	require.NoError(t, err)
	second, err := g.Run(context.Background(), idftesting.OfficeInput(500, 3), site)
	require.NoError(t, err)

	assert.Equal(t, first.IDFText, second.IDFText, "identical inputs must emit byte-identical IDF")
	assert.Equal(t, first.SHA256, second.SHA256)
}

func TestRunHonorsCancellation(t *testing.T) {
	g := testGenerator(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := g.Run(ctx, idftesting.OfficeInput(500, 3), nil)
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEmittedNodeNamesBalance(t *testing.T) {
	g := testGenerator(t)
	out, err := g.Run(context.Background(), idftesting.OfficeInput(500, 2), idftesting.SiteFixture(model.C4, 0))
	require.NoError(t, err)

	// Recover the node graph from the emitted Branch objects: walking
	// the component quads, every intermediate node must appear exactly
	// once as an outlet and once as the next component's inlet.
	objects := idf.Parse(out.IDFText)
	for _, obj := range objects {
		if obj.Kind != "Branch" {
			continue
		}
		// values: name, then (type, name, inlet, outlet) quads.
		quads := obj.Values[1:]
		for k := 1; 4*k+3 < len(quads); k++ {
			prevOutlet := quads[4*k-1]
			inlet := quads[4*k+2]
			assert.Equal(t, prevOutlet, inlet,
				"component chain must connect outlet to next inlet in branch %s", obj.Values[0])
		}
	}
}

func TestRoundTripEmitSequence(t *testing.T) {
	g := testGenerator(t)
	out, err := g.Run(context.Background(), idftesting.OfficeInput(200, 1), idftesting.SiteFixture(model.C4, 0))
	require.NoError(t, err)

	parsed := idf.Parse(out.IDFText)
	require.NotEmpty(t, parsed)
	assert.Equal(t, "Version", parsed[0].Kind)
	assert.Equal(t, []string{"24.2"}, parsed[0].Values)

	// Re-assembling the same model must yield the same object
	// sequence the permissive parse recovered.
	kinds := map[string]int{}
	for _, p := range parsed {
		kinds[p.Kind]++
	}
	assert.Equal(t, out.Report.Stats.NZones, kinds["Zone"])
	assert.Equal(t, out.Report.Stats.NSurfaces, kinds["BuildingSurface:Detailed"])
}

func TestInconsistentAreasRejected(t *testing.T) {
	g := testGenerator(t)
	user := idftesting.OfficeInput(500, 3)
	user.TotalFloorAreaM2 = floatPtr(2000) // disagrees with 500 x 3 by far more than 1%

	out, err := g.Run(context.Background(), user, nil)
	require.Error(t, err)
	assert.Nil(t, out)
}

func TestWWRZeroEmitsNoWindows(t *testing.T) {
	g := testGenerator(t)
	user := idftesting.OfficeInput(400, 1)
	user.WWR = &[4]float64{0, 0, 0, 0}

	out, err := g.Run(context.Background(), user, idftesting.SiteFixture(model.C4, 0))
	require.NoError(t, err)
	assert.NotContains(t, out.IDFText, "FenestrationSurface:Detailed")
}

func TestCHPAnnotationOnReport(t *testing.T) {
	g := testGenerator(t)
	user := idftesting.OfficeInput(400, 1)
	user.CHPCapacityKW = floatPtr(150)
	user.CHPProvidesPercent = floatPtr(90)

	out, err := g.Run(context.Background(), user, nil)
	require.NoError(t, err)
	require.NotNil(t, out.CHP)
	assert.Equal(t, 150.0, out.CHP.CapacityKW)
	assert.Equal(t, 70.0, out.CHP.ProvidesPercent, "provides percent clamps to [20, 70]")
	assert.NotContains(t, out.IDFText, "Generator:", "cogeneration stays out of the IDF graph")
}

func TestRunBatchResolvesAndGenerates(t *testing.T) {
	g := testGenerator(t)
	resolver := site.NewStatic(map[string]model.Site{
		"1 Main St": *idftesting.SiteFixture(model.C4, 0),
	})
	items := []BatchItem{
		{Address: "1 Main St", Input: idftesting.OfficeInput(400, 2)},
		{Address: "unknown address", Input: idftesting.OfficeInput(300, 1)},
		{Input: idftesting.OfficeInput(500, 0)},
	}

	results := g.RunBatch(context.Background(), items, resolver, 2)
	require.Len(t, results, 3)

	require.NoError(t, results[0].Err)
	assert.NotEmpty(t, results[0].Output.IDFText)

	// Unresolvable address falls through to generation without a site.
	require.NoError(t, results[1].Err)
	assert.NotEmpty(t, results[1].Output.IDFText)

	// One bad item fails alone without cancelling the batch.
	require.Error(t, results[2].Err)
	assert.Nil(t, results[2].Output)
}
