package hvac

import "idfgen/model"

// Daylighting eligibility: Office and School buildings
// only, and only zones with an exterior window.
const (
	daylightFractionControlled = 0.5
	daylightSetpointLux        = 500.0
)

func daylightingEligible(bt model.BuildingType) bool {
	return bt == model.Office || bt == model.School
}

// buildDaylighting emits one Daylighting:Controls + reference point
// pair per eligible zone.
func buildDaylighting(zones []model.Zone, bt model.BuildingType) []model.DaylightingControl {
	if !daylightingEligible(bt) {
		return nil
	}
	var out []model.DaylightingControl
	for _, z := range zones {
		if !z.HasExteriorWindow {
			continue
		}
		out = append(out, model.DaylightingControl{
			Name:                   z.Name + "_Daylighting",
			Zone:                   z.Name,
			ReferencePointName:     z.Name + "_DaylRefPt",
			FractionControlled:     daylightFractionControlled,
			IlluminanceSetpointLux: daylightSetpointLux,
		})
	}
	return out
}
