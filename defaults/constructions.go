package defaults

import "idfgen/model"

// constructionSetForClimate returns the ASHRAE 90.1-compliant
// construction set for cz. Insulation tightens and
// glazing improves as climate severity increases from C1 (hot) toward
// C8 (cold) per the standard's zone numbering; the u-factors below are
// representative 90.1-2016 prescriptive values, not climate-specific
// beyond the groupings the age-band table also uses.
func constructionSetForClimate(cz model.ClimateZone) ConstructionSet {
	wallU, roofU, winU, shgc := climateEnvelope(cz)
	return ConstructionSet{
		WallName:        "Wall_" + string(cz),
		RoofName:        "Roof_" + string(cz),
		FloorName:       "InteriorFloor",
		GroundFloorName: "GroundFloor_" + string(cz),
		WindowName:      "Window_" + string(cz),
		WallUFactor:     wallU,
		RoofUFactor:     roofU,
		WindowUFactor:   winU,
		WindowSHGC:      shgc,
		WindowVT:        0.6,
	}
}

func climateEnvelope(cz model.ClimateZone) (wallU, roofU, winU, shgc float64) {
	switch cz {
	case model.C1, model.C2:
		return 0.70, 0.36, 3.5, 0.25 // hot-humid: tight SHGC, loose U
	case model.C3, model.C4:
		return 0.55, 0.27, 2.8, 0.35
	case model.C5, model.C6:
		return 0.40, 0.20, 2.2, 0.40
	case model.C7, model.C8:
		return 0.28, 0.15, 1.8, 0.45 // cold/very cold: tight U, loose SHGC
	default:
		return 0.45, 0.22, 2.5, 0.38
	}
}

// BuildConstructions synthesizes the model.Material and
// model.Construction entries a ConstructionSet references. Layer
// conductivities are derived from the target U-factor via a single
// nominal insulation layer so the emitted Construction satisfies the
// IDD's Material range checks without a full layer-by-layer assembly
// catalog — the topology/validity of the assembly, not its exact
// thermal mass, is what the emitted model needs to be plausible.
func BuildConstructions(cs ConstructionSet) ([]model.Material, []model.Construction) {
	wallMat := insulationLayer(cs.WallName+"_Ins", cs.WallUFactor)
	roofMat := insulationLayer(cs.RoofName+"_Ins", cs.RoofUFactor)
	groundMat := insulationLayer(cs.GroundFloorName+"_Ins", cs.WallUFactor)
	floorMat := insulationLayer(cs.FloorName+"_Deck", 1.2)

	gypsum := model.Material{
		Name: "GypsumBoard", Roughness: model.MediumSmooth,
		ThicknessM: 0.013, ConductivityWmK: 0.16, DensityKgM3: 800, SpecificHeatJkgK: 1090,
	}
	concrete := model.Material{
		Name: "ConcreteSlab", Roughness: model.MediumRough,
		ThicknessM: 0.15, ConductivityWmK: 1.95, DensityKgM3: 2240, SpecificHeatJkgK: 900,
	}

	materials := []model.Material{wallMat, roofMat, groundMat, floorMat, gypsum, concrete}

	constructions := []model.Construction{
		{Name: cs.WallName, Layers: []string{wallMat.Name, gypsum.Name}},
		{Name: cs.RoofName, Layers: []string{roofMat.Name}},
		{Name: cs.FloorName, Layers: []string{floorMat.Name}},
		{Name: cs.GroundFloorName, Layers: []string{concrete.Name, groundMat.Name}},
		{Name: cs.WindowName, Glazing: &model.GlazingTriple{
			UFactorWm2K: cs.WindowUFactor, SHGC: cs.WindowSHGC, VisibleTransmittance: cs.WindowVT,
		}},
	}
	return materials, constructions
}

// insulationLayer synthesizes a single material whose conductivity
// yields approximately the given assembly U-factor at a fixed nominal
// thickness, clamped to the IDD's plausible material ranges.
func insulationLayer(name string, uFactor float64) model.Material {
	const thickness = 0.1 // m
	conductivity := uFactor * thickness
	if conductivity < 0.02 {
		conductivity = 0.02
	}
	if conductivity > 5.0 {
		conductivity = 5.0
	}
	return model.Material{
		Name:             name,
		Roughness:        model.MediumRough,
		ThicknessM:       thickness,
		ConductivityWmK:  conductivity,
		DensityKgM3:      40,
		SpecificHeatJkgK: 1000,
	}
}
