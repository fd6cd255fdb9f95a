package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idfgen/defaults"
	"idfgen/idferrors"
	"idfgen/model"
)

func minimalBuilding() *model.Building {
	b := model.NewBuilding()
	b.Params = model.BuildingParameters{
		BuildingType: model.Office,
		Stories:      1,
		FloorAreaM2:  100,
		WWR:          [4]float64{0.4, 0.4, 0.4, 0.4},
	}
	b.Zones = []model.Zone{{
		Name:           "OfficeOpen_0_0_0",
		Polygon:        []model.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}},
		AreaM2:         100,
		CeilingHeightM: 3,
		VolumeM3:       300,
		SpaceType:      model.SpaceOfficeOpen,
	}}
	b.Materials = []model.Material{{
		Name: "Wall_Insulation", Roughness: model.MediumRough,
		ThicknessM: 0.1, ConductivityWmK: 0.05, DensityKgM3: 50, SpecificHeatJkgK: 900,
	}}
	b.Constructions = []model.Construction{{Name: "ExtWall", Layers: []string{"Wall_Insulation"}}}
	b.Surfaces = []model.Surface{{
		Name: "OfficeOpen_0_0_0_Floor", Zone: "OfficeOpen_0_0_0", Kind: model.SurfaceFloor,
		Boundary: model.BoundaryGround, Construction: "ExtWall",
		Polygon: []model.Point3{{}, {X: 10}, {X: 10, Y: 10}, {Y: 10}}, AreaM2: 100,
	}}
	b.Schedules = []model.Schedule{{
		Name: "Occupancy_OfficeOpen", Type: model.ScheduleFraction,
		Periods: []model.SchedulePeriod{{
			DayTypes: []string{"AllDays"}, StartMonth: 1, StartDay: 1, EndMonth: 12, EndDay: 31,
		}},
	}}
	return b
}

func testRecord() defaults.Record {
	return defaults.NewLibrary("test").Resolve(model.Office, model.C4, nil, nil, model.LEEDNone)
}

func TestRunAcceptsMinimalBuilding(t *testing.T) {
	res := Run(minimalBuilding(), testRecord())
	assert.True(t, res.OK(), "errors: %v", res.Errors)
}

func TestReferenceLayerCatchesDanglingNames(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.Building)
	}{
		{"surface to unknown zone", func(b *model.Building) {
			b.Surfaces[0].Zone = "NoSuchZone"
		}},
		{"surface to unknown construction", func(b *model.Building) {
			b.Surfaces[0].Construction = "NoSuchConstruction"
		}},
		{"construction to unknown material", func(b *model.Building) {
			b.Constructions[0].Layers = []string{"NoSuchMaterial"}
		}},
		{"load to unknown schedule", func(b *model.Building) {
			b.Loads = []model.InternalLoad{{
				Name: "L", Kind: model.LoadLights, Zone: "OfficeOpen_0_0_0", Schedule: "NoSuchSchedule",
			}}
		}},
		{"infiltration to unknown zone", func(b *model.Building) {
			b.Infiltrations = []model.Infiltration{{Name: "I", Zone: "NoSuchZone"}}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := minimalBuilding()
			tt.mutate(b)
			res := Run(b, testRecord())
			require.False(t, res.OK())
			assert.Equal(t, idferrors.Reference, res.Errors[0].Kind)
		})
	}
}

func TestTopologyLayerRequiresReciprocalAdjacency(t *testing.T) {
	b := minimalBuilding()
	b.Zones = append(b.Zones, model.Zone{
		Name:           "Conference_0_0_1",
		Polygon:        []model.Point{{X: 10, Y: 0}, {X: 20, Y: 0}, {X: 20, Y: 10}, {X: 10, Y: 10}},
		AreaM2:         100,
		CeilingHeightM: 3,
		VolumeM3:       300,
	})
	b.Surfaces = append(b.Surfaces,
		model.Surface{
			Name: "WallA", Zone: "OfficeOpen_0_0_0", Kind: model.SurfaceWall,
			Boundary: model.BoundarySurface, PeerName: "WallB", Construction: "ExtWall",
			Polygon: []model.Point3{{}, {X: 10}, {X: 10, Z: 3}, {Z: 3}}, AreaM2: 30,
		},
		model.Surface{
			Name: "WallB", Zone: "Conference_0_0_1", Kind: model.SurfaceWall,
			Boundary: model.BoundarySurface, PeerName: "WallA", Construction: "ExtWall",
			Polygon: []model.Point3{{}, {X: 10}, {X: 10, Z: 3}, {Z: 3}}, AreaM2: 30,
		},
	)
	res := Run(b, testRecord())
	assert.True(t, res.OK(), "reciprocal pair must validate, errors: %v", res.Errors)

	b.Surfaces[2].PeerName = "OfficeOpen_0_0_0_Floor"
	res = Run(b, testRecord())
	require.False(t, res.OK())
	assert.Equal(t, idferrors.Topology, res.Errors[0].Kind)
}

func TestTopologyLayerRequiresExactlyOneEquipmentConnection(t *testing.T) {
	b := minimalBuilding()
	b.HVACType = model.HVACPTAC

	res := Run(b, testRecord())
	require.False(t, res.OK(), "unserved zone must be rejected when HVAC is present")

	b.PTACUnits = []model.PTACUnit{{Name: "U1", Zone: "OfficeOpen_0_0_0"}}
	res = Run(b, testRecord())
	assert.True(t, res.OK(), "errors: %v", res.Errors)

	b.PTACUnits = append(b.PTACUnits, model.PTACUnit{Name: "U2", Zone: "OfficeOpen_0_0_0"})
	res = Run(b, testRecord())
	require.False(t, res.OK(), "doubly served zone must be rejected")
}

func TestTopologyLayerRejectsUnvalidatedAirLoop(t *testing.T) {
	b := minimalBuilding()
	b.AirLoops = []model.AirLoop{{
		Name:  "AirLoop1",
		State: model.ZonesConnected,
		Zones: []string{"OfficeOpen_0_0_0"},
	}}
	res := Run(b, testRecord())
	require.False(t, res.OK())
	assert.Equal(t, idferrors.Topology, res.Errors[0].Kind)
}

func TestPhysicalLayerRanges(t *testing.T) {
	t.Run("material conductivity out of range", func(t *testing.T) {
		b := minimalBuilding()
		b.Materials[0].ConductivityWmK = 500
		res := Run(b, testRecord())
		require.False(t, res.OK())
		assert.Equal(t, idferrors.Field, res.Errors[0].Kind)
	})

	t.Run("ceiling height out of range", func(t *testing.T) {
		b := minimalBuilding()
		b.Zones[0].CeilingHeightM = 6.0
		b.Zones[0].VolumeM3 = 600
		res := Run(b, testRecord())
		require.False(t, res.OK())
	})

	t.Run("volume must equal area times height", func(t *testing.T) {
		b := minimalBuilding()
		b.Zones[0].VolumeM3 = 299
		res := Run(b, testRecord())
		require.False(t, res.OK())
	})

	t.Run("implausible infiltration is a warning not an error", func(t *testing.T) {
		b := minimalBuilding()
		b.Infiltrations = []model.Infiltration{{
			Name: "I", Zone: "OfficeOpen_0_0_0", ACH: 5.0,
		}}
		res := Run(b, testRecord())
		assert.True(t, res.OK())
		require.Len(t, res.Warnings, 1)
		assert.Equal(t, "W-INFIL-ACH", res.Warnings[0].Code)
	})

	t.Run("lighting density far from template is a warning", func(t *testing.T) {
		b := minimalBuilding()
		rec := testRecord()
		b.Loads = []model.InternalLoad{{
			Name: "L", Kind: model.LoadLights, Zone: "OfficeOpen_0_0_0",
			DesignLevelWm2: rec.Template.LightingWm2 * 10,
		}}
		res := Run(b, rec)
		assert.True(t, res.OK())
		require.NotEmpty(t, res.Warnings)
		assert.Equal(t, "W-LPD", res.Warnings[0].Code)
	})
}

func TestSyntacticLayerScheduleCoverage(t *testing.T) {
	b := minimalBuilding()
	b.Schedules[0].Periods[0].EndMonth = 11
	res := Run(b, testRecord())
	require.False(t, res.OK())
	assert.Contains(t, res.Errors[0].Error(), "full year")
}

func TestTopologyLayerRequiresPairedAirLoopEndpoints(t *testing.T) {
	b := minimalBuilding()
	b.AirLoops = []model.AirLoop{{
		Name:             "AirLoop1",
		State:            model.Validated,
		Zones:            []string{"OfficeOpen_0_0_0"},
		SupplyInletNode:  "AirLoop1_SupplyInlet",
		SupplyOutletNode: "AirLoop1_SupplyOutlet",
		Splitter:         model.Splitter{Name: "AirLoop1_Splitter", InletNode: "AirLoop1_DemandInlet"},
		Mixer:            model.Mixer{Name: "AirLoop1_ReturnMixer", OutletNode: "AirLoop1_DemandOutlet"},
		Terminals: []model.Terminal{{
			Name: "T1", ADUName: "T1_ADU", Zone: "OfficeOpen_0_0_0",
		}},
	}}
	res := Run(b, testRecord())
	require.False(t, res.OK())
	assert.Len(t, res.Errors, 2, "both unpaired endpoints must be reported")
	for _, e := range res.Errors {
		assert.Equal(t, idferrors.Topology, e.Kind)
	}

	b.AirLoops[0].Splitter.InletNode = "AirLoop1_SupplyOutlet"
	b.AirLoops[0].Mixer.OutletNode = "AirLoop1_SupplyInlet"
	res = Run(b, testRecord())
	assert.True(t, res.OK(), "paired endpoints must validate, errors: %v", res.Errors)
}
