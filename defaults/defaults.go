// Package defaults implements the building-type/climate/age/LEED
// defaults library (C2): given a building type, climate zone, and
// optional year-built/retrofit-year/LEED level, it returns a fully
// populated defaults record — template loads, construction set, and
// HVAC efficiencies — with the age and LEED multiplicative adjusters
// already applied. The library is loaded once and is safe to share
// immutably across invocations; nothing here ever mutates
// after NewLibrary returns.
package defaults

import (
	"idfgen/model"
)

// SpaceFraction is one entry of a building template's space-type mix.
type SpaceFraction struct {
	SpaceType model.SpaceType
	Fraction  float64
	Perimeter bool // prefers perimeter cells when true
}

// BuildingTemplate is the base, pre-age/LEED-adjustment building-type
// template.
type BuildingTemplate struct {
	BuildingType     model.BuildingType
	HVACType         model.HVACType
	LightingWm2      float64
	EquipmentWm2     float64
	OccupancyPplM2   float64
	InfiltrationACH  float64
	WWR              float64
	TargetCellAreaM2 float64
	SpaceMix         []SpaceFraction
}

// ConstructionSet names the wall/roof/floor/ground-floor/window
// construction objects resolved for one (climate zone, age, LEED)
// combination. The named Construction/Material objects themselves are
// built by BuildConstructions once per Record.
type ConstructionSet struct {
	WallName        string
	RoofName        string
	FloorName       string
	GroundFloorName string
	WindowName      string

	WallUFactor   float64 // informational; drives the synthesized material conductivity
	RoofUFactor   float64
	WindowUFactor float64
	WindowSHGC    float64
	WindowVT      float64
}

// HVACEfficiencies are the equipment efficiency figures used by the
// HVAC topology engine (C6) when sizing components.
type HVACEfficiencies struct {
	FanPressureRisePa float64
	CoolingCOP        float64
	HeatingEfficiency float64 // electric resistance or heat-pump COP
	BoilerEfficiency  float64
	ChillerCOP        float64
}

// Record is the fully resolved, post-adjustment defaults bundle
// returned by Library.Resolve.
type Record struct {
	Template      BuildingTemplate
	Constructions ConstructionSet
	Efficiencies  HVACEfficiencies

	// AgeBand and LEEDLevel are recorded for diagnostics/reporting;
	// they do not feed back into resolution.
	AgeBand   string
	LEEDLevel model.LEEDLevel
}

// Library is the process-wide, read-only defaults library. The zero
// value is not usable; construct with NewLibrary.
type Library struct {
	version   string
	templates map[model.BuildingType]BuildingTemplate
}

// Version identifies the defaults library revision; it is part of the
// determinism contract.
func (l *Library) Version() string { return l.version }

// NewLibrary builds the library for the given version string. The
// version does not currently select among multiple template sets —
// there is only one revision — but the parameter exists so a future
// versioned library swap is a constructor argument, not an API change.
func NewLibrary(version string) *Library {
	return &Library{version: version, templates: baseTemplates()}
}

// Resolve returns the fully adjusted defaults record for the given
// inputs. buildingType of "" or Other with no template match falls
// back to Office per the tie-break rule.
func (l *Library) Resolve(buildingType model.BuildingType, cz model.ClimateZone, yearBuilt, retrofitYear *int, leed model.LEEDLevel) Record {
	tmpl, ok := l.templates[buildingType]
	if !ok {
		tmpl = l.templates[model.Office]
	}

	cs := constructionSetForClimate(cz)
	eff := baseEfficiencies(tmpl.HVACType)

	effectiveYear := retrofitYear
	if effectiveYear == nil {
		effectiveYear = yearBuilt
	}
	band := bandFor(effectiveYear)
	adj := ageAdjusterFor(band)
	applyAgeAdjustment(&tmpl, &cs, &eff, adj)

	leedMult := leedMultiplierFor(leed)
	applyLEEDAdjustment(&tmpl, &cs, &eff, leedMult)

	return Record{
		Template:      tmpl,
		Constructions: cs,
		Efficiencies:  eff,
		AgeBand:       band.Name,
		LEEDLevel:     leed,
	}
}
