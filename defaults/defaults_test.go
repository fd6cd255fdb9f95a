package defaults

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idfgen/model"
)

func TestResolve_UnknownBuildingTypeFallsBackToOffice(t *testing.T) {
	lib := NewLibrary("2024.1")
	rec := lib.Resolve(model.Other, model.C4, nil, nil, model.LEEDNone)
	assert.Equal(t, model.HVACVAV, rec.Template.HVACType)
}

func TestResolve_NoYearTreatedAsModern(t *testing.T) {
	lib := NewLibrary("2024.1")
	rec := lib.Resolve(model.Office, model.C4, nil, nil, model.LEEDNone)
	assert.Equal(t, "2011+", rec.AgeBand)
}

func TestResolve_Pre1980InfiltrationBand(t *testing.T) {
	lib := NewLibrary("2024.1")
	year := 1973
	rec := lib.Resolve(model.Office, model.C4, &year, nil, model.LEEDNone)
	require.Equal(t, "1930-1979", rec.AgeBand)
	modern := lib.Resolve(model.Office, model.C4, nil, nil, model.LEEDNone)
	assert.Greater(t, rec.Template.InfiltrationACH, modern.Template.InfiltrationACH)
	assert.Less(t, rec.Efficiencies.CoolingCOP, modern.Efficiencies.CoolingCOP)
}

func TestResolve_RetrofitYearOverridesYearBuilt(t *testing.T) {
	lib := NewLibrary("2024.1")
	built := 1925
	retrofit := 2015
	rec := lib.Resolve(model.Office, model.C4, &built, &retrofit, model.LEEDNone)
	assert.Equal(t, "2011+", rec.AgeBand)
}

func TestResolve_LEEDPlatinumReducesEUIDrivers(t *testing.T) {
	lib := NewLibrary("2024.1")
	base := lib.Resolve(model.Office, model.C4, nil, nil, model.LEEDNone)
	plat := lib.Resolve(model.Office, model.C4, nil, nil, model.LEEDPlatinum)
	assert.Less(t, plat.Template.LightingWm2, base.Template.LightingWm2)
	assert.Less(t, plat.Template.EquipmentWm2, base.Template.EquipmentWm2)
	assert.Greater(t, plat.Efficiencies.CoolingCOP, base.Efficiencies.CoolingCOP)
}

func TestBuildConstructions_ProducesReferencedNames(t *testing.T) {
	cs := constructionSetForClimate(model.C1)
	materials, constructions := BuildConstructions(cs)
	require.NotEmpty(t, materials)
	names := map[string]bool{}
	for _, c := range constructions {
		names[c.Name] = true
	}
	assert.True(t, names[cs.WallName])
	assert.True(t, names[cs.WindowName])
}

func TestScheduleProfileFor_UnknownFallsBackToOfficeOpen(t *testing.T) {
	p := ScheduleProfileFor(model.SpaceType("NotReal"))
	assert.Equal(t, scheduleProfiles[model.SpaceOfficeOpen], p)
}
