package idf

// Material is an opaque material layer.
type Material struct {
	MaterialName       string
	Roughness          string
	ThicknessM         float64
	ConductivityWmK    float64
	DensityKgM3        float64
	SpecificHeatJkgK   float64
	ThermalAbsorptance float64
	SolarAbsorptance   float64
	VisibleAbsorptance float64
}

func (o Material) Kind() string { return "Material" }
func (o Material) Name() string { return o.MaterialName }
func (o Material) Fields() []Field {
	return []Field{
		F(o.MaterialName, "Name"),
		F(o.Roughness, "Roughness"),
		F(o.ThicknessM, "Thickness"),
		F(o.ConductivityWmK, "Conductivity"),
		F(o.DensityKgM3, "Density"),
		F(o.SpecificHeatJkgK, "Specific Heat"),
		F(o.ThermalAbsorptance, "Thermal Absorptance"),
		F(o.SolarAbsorptance, "Solar Absorptance"),
		F(o.VisibleAbsorptance, "Visible Absorptance"),
	}
}

// WindowMaterialSimpleGlazingSystem is the simple-glazing representation
// used for all window constructions.
type WindowMaterialSimpleGlazingSystem struct {
	MaterialName         string
	UFactorWm2K          float64
	SHGC                 float64
	VisibleTransmittance float64
}

func (o WindowMaterialSimpleGlazingSystem) Kind() string {
	return "WindowMaterial:SimpleGlazingSystem"
}
func (o WindowMaterialSimpleGlazingSystem) Name() string { return o.MaterialName }
func (o WindowMaterialSimpleGlazingSystem) Fields() []Field {
	return []Field{
		F(o.MaterialName, "Name"),
		F(o.UFactorWm2K, "U-Factor"),
		F(o.SHGC, "Solar Heat Gain Coefficient"),
		F(o.VisibleTransmittance, "Visible Transmittance"),
	}
}

// Construction is an ordered outside-to-inside layer list, or a single
// simple-glazing layer for windows.
type Construction struct {
	ConstructionName string
	LayerNames       []string
}

func (o Construction) Kind() string { return "Construction" }
func (o Construction) Name() string { return o.ConstructionName }
func (o Construction) Fields() []Field {
	fields := []Field{F(o.ConstructionName, "Name")}
	for i, l := range o.LayerNames {
		label := "Outside Layer"
		if i > 0 {
			label = "Layer"
		}
		fields = append(fields, F(l, label))
	}
	return fields
}
