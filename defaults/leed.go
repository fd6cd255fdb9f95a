package defaults

import "idfgen/model"

// leedMultiplier holds the post-age multiplicative certification
// bonuses. Platinum's figures are the calibrated set; Gold,
// Silver, and Certified scale proportionally toward 1.0 as the
// certification tier drops, matching the "scale proportionally" rule.
type leedMultiplier struct {
	EUI          float64
	HVAC         float64
	Lighting     float64
	Equipment    float64
	Envelope     float64
	WindowTriple float64
}

var platinumLEED = leedMultiplier{EUI: 0.72, HVAC: 1.28, Lighting: 1.35, Equipment: 1.18, Envelope: 1.25, WindowTriple: 1.15}

// leedMultiplierFor scales platinumLEED toward the identity bonus
// (1.0 everywhere, no-op) by certification tier.
func leedMultiplierFor(level model.LEEDLevel) leedMultiplier {
	scale := 0.0
	switch level {
	case model.LEEDPlatinum:
		scale = 1.0
	case model.LEEDGold:
		scale = 0.75
	case model.LEEDSilver:
		scale = 0.5
	case model.LEEDCertified:
		scale = 0.25
	case model.LEEDNone:
		scale = 0.0
	}
	lerp := func(bonus float64) float64 { return 1.0 + (bonus-1.0)*scale }
	return leedMultiplier{
		EUI:          1.0 + (platinumLEED.EUI-1.0)*scale,
		HVAC:         lerp(platinumLEED.HVAC),
		Lighting:     lerp(platinumLEED.Lighting),
		Equipment:    lerp(platinumLEED.Equipment),
		Envelope:     lerp(platinumLEED.Envelope),
		WindowTriple: lerp(platinumLEED.WindowTriple),
	}
}

// applyLEEDAdjustment applies m on top of the already age-adjusted
// template, construction set, and efficiencies. Lighting/equipment
// bonuses reduce density (more efficient fixtures use less power per
// area); HVAC/envelope bonuses improve efficiency and reduce U-factor.
func applyLEEDAdjustment(tmpl *BuildingTemplate, cs *ConstructionSet, eff *HVACEfficiencies, m leedMultiplier) {
	if m.Lighting > 1.0 {
		tmpl.LightingWm2 /= m.Lighting
	}
	if m.Equipment > 1.0 {
		tmpl.EquipmentWm2 /= m.Equipment
	}
	if m.Envelope > 1.0 {
		cs.WallUFactor /= m.Envelope
		cs.RoofUFactor /= m.Envelope
		cs.WindowUFactor /= m.WindowTriple
	}
	if eff.CoolingCOP > 0 {
		eff.CoolingCOP *= m.HVAC
	}
	if eff.ChillerCOP > 0 {
		eff.ChillerCOP *= m.HVAC
	}
	if eff.HeatingEfficiency > 0 {
		eff.HeatingEfficiency *= m.HVAC
	}
	if eff.BoilerEfficiency > 0 {
		eff.BoilerEfficiency *= m.HVAC
	}
}
