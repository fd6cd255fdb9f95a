package defaults

// ageBand is one row of the age-adjustment table. Bands are
// checked in declaration order; bandFor returns the first (most
// restrictive, i.e. oldest-first) band whose range contains the
// effective year, satisfying the "most restrictive band wins" tie-break
// — ranges in this table never overlap, so the tie-break only matters
// at the nil (unknown-year, treated as modern) case.
type ageBand struct {
	Name               string
	MaxYear            int // band applies when effectiveYear <= MaxYear (0 = no upper bound within this table; last band is open-ended)
	InfiltrationMult   float64
	HVACEfficiencyMult float64
	WindowUMult        float64
	InsulationRMult    float64
}

var ageBands = []ageBand{
	{Name: "pre-1920", MaxYear: 1919, InfiltrationMult: 3.5, HVACEfficiencyMult: 0.40, WindowUMult: 3.8, InsulationRMult: 0.12},
	{Name: "1920-1929", MaxYear: 1929, InfiltrationMult: 3.0, HVACEfficiencyMult: 0.55, WindowUMult: 2.8, InsulationRMult: 0.20},
	{Name: "1930-1979", MaxYear: 1979, InfiltrationMult: 2.53, HVACEfficiencyMult: 0.585, WindowUMult: 2.75, InsulationRMult: 0.30},
	{Name: "1980-1999", MaxYear: 1999, InfiltrationMult: 1.5, HVACEfficiencyMult: 0.80, WindowUMult: 1.5, InsulationRMult: 0.60},
	{Name: "2000-2010", MaxYear: 2010, InfiltrationMult: 1.2, HVACEfficiencyMult: 0.90, WindowUMult: 1.2, InsulationRMult: 0.85},
	{Name: "2011+", MaxYear: 0, InfiltrationMult: 1.0, HVACEfficiencyMult: 1.0, WindowUMult: 1.0, InsulationRMult: 1.0},
}

var modernBand = ageBands[len(ageBands)-1]

// bandFor resolves the age band for an effective year; a nil year
// (neither retrofit nor built year supplied) is treated as modern.
func bandFor(effectiveYear *int) ageBand {
	if effectiveYear == nil {
		return modernBand
	}
	y := *effectiveYear
	for _, b := range ageBands {
		if b.MaxYear == 0 || y <= b.MaxYear {
			return b
		}
	}
	return modernBand
}

func ageAdjusterFor(b ageBand) ageBand { return b }

// applyAgeAdjustment multiplies infiltration, HVAC efficiency, window
// U-factor, and insulation R-value (expressed here as construction
// U-factors, where a lower R-multiplier means a higher U-factor) by
// the band's factors, in place.
func applyAgeAdjustment(tmpl *BuildingTemplate, cs *ConstructionSet, eff *HVACEfficiencies, b ageBand) {
	tmpl.InfiltrationACH *= b.InfiltrationMult

	cs.WindowUFactor *= b.WindowUMult
	if b.InsulationRMult > 0 {
		cs.WallUFactor /= b.InsulationRMult
		cs.RoofUFactor /= b.InsulationRMult
	}

	eff.CoolingCOP *= b.HVACEfficiencyMult
	eff.ChillerCOP *= b.HVACEfficiencyMult
	eff.BoilerEfficiency *= b.HVACEfficiencyMult
	if eff.HeatingEfficiency > 0 {
		eff.HeatingEfficiency *= b.HVACEfficiencyMult
	}
}
