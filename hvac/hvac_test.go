package hvac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idfgen/config"
	"idfgen/defaults"
	"idfgen/model"
)

func testHVACConfig() config.HVACConfig {
	return config.HVACConfig{
		CoolingWm2:               60,
		HeatingWm2:               50,
		SupplyAirM3sm2:           0.005,
		ERVClimateZones:          []string{"C1", "C2", "C3", "C6", "C7", "C8"},
		HumidEconomizerZones:     []string{"C1", "C2", "C5"},
		ERVSensibleEffectiveness: 0.70,
		ERVLatentEffectiveness:   0.65,
		DCVBuildingTypes:         []string{"Office", "School", "Retail"},
		CHPProvidesPercentMin:    20,
		CHPProvidesPercentMax:    70,
	}
}

func testZones(n int) []model.Zone {
	zones := make([]model.Zone, 0, n)
	for i := 0; i < n; i++ {
		zones = append(zones, model.Zone{
			Name:              model.Name("OfficeOpen_0_0_" + string(rune('0'+i))),
			FloorIndex:        0,
			AreaM2:            100,
			CeilingHeightM:    3,
			VolumeM3:          300,
			SpaceType:         model.SpaceOfficeOpen,
			IsPerimeter:       true,
			HasExteriorWindow: true,
		})
	}
	return zones
}

func testParams(bt model.BuildingType) model.BuildingParameters {
	return model.BuildingParameters{
		BuildingType: bt,
		Stories:      1,
		FloorAreaM2:  400,
		LEEDLevel:    model.LEEDNone,
	}
}

func testSite(cz model.ClimateZone) *model.Site {
	return &model.Site{ClimateZone: cz}
}

func testRecord(bt model.BuildingType) defaults.Record {
	lib := defaults.NewLibrary("test")
	return lib.Resolve(bt, model.C4, nil, nil, model.LEEDNone)
}

func TestGenerateSystemSelection(t *testing.T) {
	cfg := testHVACConfig()
	tests := []struct {
		name     string
		bt       model.BuildingType
		wantType model.HVACType
		airloops int
		zonal    int
	}{
		{"office gets VAV airloop", model.Office, model.HVACVAV, 1, 0},
		{"retail gets RTU airloop", model.Retail, model.HVACRTU, 1, 0},
		{"residential multi gets PTAC per zone", model.ResidentialMulti, model.HVACPTAC, 0, 4},
		{"residential single gets heat pump per zone", model.ResidentialSingle, model.HVACHeatPump, 0, 4},
		{"hospital gets chilled water airloop", model.Hospital, model.HVACChilledWater, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zones := testZones(4)
			res, err := Generate(zones, testParams(tt.bt), testSite(model.C4), testRecord(tt.bt), cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, res.HVACType)
			assert.Len(t, res.AirLoops, tt.airloops)
			assert.Len(t, res.PTACUnits, tt.zonal)
		})
	}
}

func TestGenerateForcedHVACTypeOverride(t *testing.T) {
	cfg := testHVACConfig()
	bp := testParams(model.Office)
	forced := model.HVACIdealLoads
	bp.ForcedHVACType = &forced

	res, err := Generate(testZones(3), bp, testSite(model.C4), testRecord(model.Office), cfg)
	require.NoError(t, err)
	assert.Equal(t, model.HVACIdealLoads, res.HVACType)
	assert.Empty(t, res.AirLoops)
	require.Len(t, res.PTACUnits, 3)
	assert.Equal(t, "ZoneHVAC:IdealLoadsAirSystem", res.PTACUnits[0].Kind)
}

func TestAirLoopReachesValidatedState(t *testing.T) {
	cfg := testHVACConfig()
	res, err := Generate(testZones(5), testParams(model.Office), testSite(model.C4), testRecord(model.Office), cfg)
	require.NoError(t, err)
	require.Len(t, res.AirLoops, 1)

	loop := res.AirLoops[0]
	assert.Equal(t, model.Validated, loop.State)
	assert.Len(t, loop.Terminals, 5)
	assert.Len(t, loop.Splitter.Outlets, 5)
	assert.Len(t, loop.Mixer.Inlets, 5)
	require.NotNil(t, loop.OAController)
	require.NotNil(t, loop.SetpointManager)
	assert.Equal(t, loop.SupplyOutletNode, loop.SetpointManager.ControlNode)
}

func TestEconomizerSelectionByClimate(t *testing.T) {
	cfg := testHVACConfig()
	tests := []struct {
		cz   model.ClimateZone
		want model.EconomizerType
	}{
		{model.C1, model.EconomizerDifferentialEnthalpy},
		{model.C2, model.EconomizerDifferentialEnthalpy},
		{model.C5, model.EconomizerDifferentialEnthalpy},
		{model.C3, model.EconomizerDifferentialDryBulb},
		{model.C4, model.EconomizerDifferentialDryBulb},
		{model.C7, model.EconomizerDifferentialDryBulb},
	}
	for _, tt := range tests {
		t.Run(string(tt.cz), func(t *testing.T) {
			res, err := Generate(testZones(2), testParams(model.Office), testSite(tt.cz), testRecord(model.Office), cfg)
			require.NoError(t, err)
			require.Len(t, res.AirLoops, 1)
			require.NotNil(t, res.AirLoops[0].OAController)
			assert.Equal(t, tt.want, res.AirLoops[0].OAController.Economizer)
		})
	}
}

func TestERVOnlyInConfiguredClimates(t *testing.T) {
	cfg := testHVACConfig()
	withERV := []model.ClimateZone{model.C1, model.C2, model.C3, model.C6, model.C7, model.C8}
	withoutERV := []model.ClimateZone{model.C4, model.C5}

	for _, cz := range withERV {
		res, err := Generate(testZones(2), testParams(model.Office), testSite(cz), testRecord(model.Office), cfg)
		require.NoError(t, err)
		assert.NotNil(t, res.AirLoops[0].ERV, "climate %s should carry an ERV", cz)
	}
	for _, cz := range withoutERV {
		res, err := Generate(testZones(2), testParams(model.Office), testSite(cz), testRecord(model.Office), cfg)
		require.NoError(t, err)
		assert.Nil(t, res.AirLoops[0].ERV, "climate %s must not carry an ERV", cz)
	}
}

func TestDCVEligibility(t *testing.T) {
	cfg := testHVACConfig()
	tests := []struct {
		name string
		bt   model.BuildingType
		want bool
	}{
		{"office VAV gets DCV", model.Office, true},
		{"retail RTU gets DCV", model.Retail, true},
		{"hospital chilled water has no DCV", model.Hospital, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Generate(testZones(2), testParams(tt.bt), testSite(model.C4), testRecord(tt.bt), cfg)
			require.NoError(t, err)
			require.Len(t, res.AirLoops, 1)
			if tt.want {
				require.NotNil(t, res.AirLoops[0].MechVentController)
				assert.True(t, res.AirLoops[0].MechVentController.DCVEnabled)
				assert.Equal(t, "Occupancy_OfficeOpen", res.AirLoops[0].MechVentController.DCVAvailabilitySchedule)
			} else {
				assert.Nil(t, res.AirLoops[0].MechVentController)
			}
		})
	}
}

func TestDaylightingOnlyForEligibleBuildings(t *testing.T) {
	cfg := testHVACConfig()

	zones := testZones(3)
	zones[1].HasExteriorWindow = false

	office, err := Generate(zones, testParams(model.Office), testSite(model.C4), testRecord(model.Office), cfg)
	require.NoError(t, err)
	assert.Len(t, office.Daylighting, 2)

	hospital, err := Generate(zones, testParams(model.Hospital), testSite(model.C4), testRecord(model.Hospital), cfg)
	require.NoError(t, err)
	assert.Empty(t, hospital.Daylighting)
}

func TestLargeBuildingSplitsAirLoopsByFloor(t *testing.T) {
	cfg := testHVACConfig()
	var zones []model.Zone
	for floor := 0; floor < 4; floor++ {
		for i := 0; i < 12; i++ {
			zones = append(zones, model.Zone{
				Name:       model.Name("OfficeOpen_" + string(rune('0'+floor)) + "_0_" + string(rune('0'+i))),
				FloorIndex: floor,
				AreaM2:     100, CeilingHeightM: 3, VolumeM3: 300,
				SpaceType: model.SpaceOfficeOpen,
			})
		}
	}
	res, err := Generate(zones, testParams(model.Office), testSite(model.C4), testRecord(model.Office), cfg)
	require.NoError(t, err)
	assert.Len(t, res.AirLoops, 4)
	for _, loop := range res.AirLoops {
		assert.Equal(t, model.Validated, loop.State)
		assert.Len(t, loop.Zones, 12)
	}
}

func TestTopologyCheckRejectsDanglingNode(t *testing.T) {
	cfg := testHVACConfig()
	res, err := Generate(testZones(2), testParams(model.Office), testSite(model.C4), testRecord(model.Office), cfg)
	require.NoError(t, err)
	loop := res.AirLoops[0]

	// Break the chain: the fan now consumes a node nothing produces.
	loop.Fan.InletNode = "Orphan_Node"
	loop.State = model.ZonesConnected
	err = validateTopology(&loop)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dangling node")
}

func TestStateMachineRejectsSkippedTransitions(t *testing.T) {
	loop := model.AirLoop{Name: "AirLoop1", State: model.Unallocated}
	err := advance(&loop, model.NodesWired)
	require.Error(t, err)
	assert.Equal(t, model.Unallocated, loop.State)

	require.NoError(t, advance(&loop, model.ComponentsCreated))
	require.NoError(t, advance(&loop, model.NodesWired))
	err = advance(&loop, model.NodesWired)
	require.Error(t, err, "transitions are one-way")
}

func TestCHPAnnotationClampsProvidesPercent(t *testing.T) {
	cfg := testHVACConfig()
	cap := 100.0

	assert.Nil(t, CHPFor(testParams(model.Office), cfg))

	low := 5.0
	bp := testParams(model.Office)
	bp.CHPCapacityKW = &cap
	bp.CHPProvidesPercent = &low
	ann := CHPFor(bp, cfg)
	require.NotNil(t, ann)
	assert.Equal(t, 20.0, ann.ProvidesPercent)

	high := 95.0
	bp.CHPProvidesPercent = &high
	assert.Equal(t, 70.0, CHPFor(bp, cfg).ProvidesPercent)
}

func TestZoneLoadSizingRule(t *testing.T) {
	cfg := testHVACConfig()
	z := testZones(1)[0]
	assert.Equal(t, 6000.0, ZoneCoolingLoadW(z, cfg))
	assert.Equal(t, 5000.0, ZoneHeatingLoadW(z, cfg))
	assert.Equal(t, 0.5, SizeSupplyFlow(testZones(1), cfg))
}

func TestAirLoopEndpointsAreSharedNodes(t *testing.T) {
	cfg := testHVACConfig()
	res, err := Generate(testZones(3), testParams(model.Office), testSite(model.C4), testRecord(model.Office), cfg)
	require.NoError(t, err)
	loop := res.AirLoops[0]

	assert.Equal(t, loop.SupplyOutletNode, loop.Splitter.InletNode,
		"demand inlet must be the supply outlet node")
	assert.Equal(t, loop.SupplyInletNode, loop.Mixer.OutletNode,
		"demand outlet must be the supply inlet node")
}

func TestTopologyCheckRejectsUnpairedLoopEndpoints(t *testing.T) {
	cfg := testHVACConfig()
	res, err := Generate(testZones(2), testParams(model.Office), testSite(model.C4), testRecord(model.Office), cfg)
	require.NoError(t, err)

	loop := res.AirLoops[0]
	loop.Splitter.InletNode = "AirLoop1_DemandInlet"
	loop.State = model.ZonesConnected
	err = validateTopology(&loop)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not the supply outlet")

	loop = res.AirLoops[0]
	loop.Mixer.OutletNode = "AirLoop1_DemandOutlet"
	loop.State = model.ZonesConnected
	err = validateTopology(&loop)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not the supply inlet")
}
