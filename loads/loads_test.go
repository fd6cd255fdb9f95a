package loads

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idfgen/defaults"
	"idfgen/model"
)

func testZone(name string, space model.SpaceType) model.Zone {
	return model.Zone{
		Name:           name,
		AreaM2:         100,
		CeilingHeightM: 3,
		VolumeM3:       300,
		SpaceType:      space,
	}
}

func record(year *int) defaults.Record {
	lib := defaults.NewLibrary("test")
	return lib.Resolve(model.Office, model.C4, year, nil, model.LEEDNone)
}

func TestBuildZoneLoadsEmitsAllThreeKinds(t *testing.T) {
	z := testZone("OfficeOpen_0_0_0", model.SpaceOfficeOpen)
	ld, _ := BuildZoneLoads(z, record(nil))

	require.Len(t, ld, 3)
	kinds := map[model.LoadKind]model.InternalLoad{}
	for _, l := range ld {
		kinds[l.Kind] = l
	}
	assert.Equal(t, "Occupancy_OfficeOpen", kinds[model.LoadPeople].Schedule)
	assert.Equal(t, "Activity_OfficeOpen", kinds[model.LoadPeople].ActivitySchedule)
	assert.Equal(t, "Lighting_OfficeOpen", kinds[model.LoadLights].Schedule)
	assert.Equal(t, "Equipment_OfficeOpen", kinds[model.LoadEquipment].Schedule)
	for _, l := range ld {
		assert.Equal(t, z.Name, l.Zone)
	}
}

func TestInfiltrationMethodByAge(t *testing.T) {
	z := testZone("OfficeOpen_0_0_0", model.SpaceOfficeOpen)

	modern := record(nil)
	_, inf := BuildZoneLoads(z, modern)
	assert.Equal(t, model.InfiltrationDesignFlowRate, inf.Method)
	assert.Greater(t, inf.FlowPerZoneM3s, 0.0)

	year := 1955
	old := record(&year)
	_, inf = BuildZoneLoads(z, old)
	assert.Equal(t, model.InfiltrationEffectiveLeakageArea, inf.Method)
	assert.Greater(t, inf.ELA_cm2, 0.0)
	assert.Greater(t, inf.ACH, modern.Template.InfiltrationACH,
		"pre-1980 band multiplies the infiltration target up")
}

func TestBuildSchedulesCoverFullYear(t *testing.T) {
	spaces := []model.SpaceType{model.SpaceOfficeOpen, model.SpaceConference, model.SpaceOfficeOpen}
	schedules := BuildSchedules(spaces, false)

	// 4 schedules per unique space type, duplicates collapsed.
	assert.Len(t, schedules, 8)
	for _, s := range schedules {
		require.NotEmpty(t, s.Periods, "schedule %s has no periods", s.Name)
		startsJan1, endsDec31 := false, false
		for _, p := range s.Periods {
			if p.StartMonth == 1 && p.StartDay == 1 {
				startsJan1 = true
			}
			if p.EndMonth == 12 && p.EndDay == 31 {
				endsDec31 = true
			}
		}
		assert.True(t, startsJan1 && endsDec31, "schedule %s must cover the full year", s.Name)
	}
}

func TestSeasonalSchedulesStayUnderPeriodCeiling(t *testing.T) {
	schedules := BuildSchedules([]model.SpaceType{model.SpaceOfficeOpen}, true)
	for _, s := range schedules {
		assert.LessOrEqual(t, len(s.Periods), 12,
			"schedule %s exceeds the compact-schedule period ceiling", s.Name)
	}
}

func TestBuildLoadsBacksEveryReferencedSchedule(t *testing.T) {
	zones := []model.Zone{
		testZone("OfficeOpen_0_0_0", model.SpaceOfficeOpen),
		testZone("Conference_0_0_1", model.SpaceConference),
	}
	ld, inf, schedules := BuildLoads(zones, record(nil), false)

	names := map[string]bool{}
	for _, s := range schedules {
		names[s.Name] = true
	}
	for _, l := range ld {
		assert.True(t, names[l.Schedule], "schedule %s referenced by %s is not emitted", l.Schedule, l.Name)
		if l.ActivitySchedule != "" {
			assert.True(t, names[l.ActivitySchedule])
		}
	}
	for _, i := range inf {
		assert.True(t, names[i.Schedule], "infiltration schedule %s is not emitted", i.Schedule)
	}
}
