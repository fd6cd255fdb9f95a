package idf

// People is the People internal-gain object.
type People struct {
	PeopleName            string
	ZoneName              string
	OccupancySchedule     string
	CalculationMethod     string // "People/Area"
	PeoplePerArea         float64
	ActivityLevelSchedule string
}

func (o People) Kind() string { return "People" }
func (o People) Name() string { return o.PeopleName }
func (o People) Fields() []Field {
	return []Field{
		F(o.PeopleName, "Name"),
		F(o.ZoneName, "Zone or ZoneList Name"),
		F(o.OccupancySchedule, "Number of People Schedule Name"),
		F(o.CalculationMethod, "Number of People Calculation Method"),
		F("", "Number of People"),
		F(o.PeoplePerArea, "People per Floor Area"),
		F("", "Floor Area per Person"),
		F("", "Fraction Radiant"),
		F("", "Sensible Heat Fraction"),
		F(o.ActivityLevelSchedule, "Activity Level Schedule Name"),
	}
}

// Lights is the Lights internal-gain object.
type Lights struct {
	LightsName        string
	ZoneName          string
	Schedule          string
	CalculationMethod string // "Watts/Area"
	WattsPerArea      float64
	ReturnAirFraction float64
	FractionRadiant   float64
	FractionVisible   float64
}

func (o Lights) Kind() string { return "Lights" }
func (o Lights) Name() string { return o.LightsName }
func (o Lights) Fields() []Field {
	return []Field{
		F(o.LightsName, "Name"),
		F(o.ZoneName, "Zone or ZoneList Name"),
		F(o.Schedule, "Schedule Name"),
		F(o.CalculationMethod, "Design Level Calculation Method"),
		F("", "Lighting Level"),
		F(o.WattsPerArea, "Watts per Zone Floor Area"),
		F("", "Watts per Person"),
		F(o.ReturnAirFraction, "Return Air Fraction"),
		F(o.FractionRadiant, "Fraction Radiant"),
		F(o.FractionVisible, "Fraction Visible"),
	}
}

// ElectricEquipment is the ElectricEquipment internal-gain object.
type ElectricEquipment struct {
	EquipmentName     string
	ZoneName          string
	Schedule          string
	CalculationMethod string // "Watts/Area"
	WattsPerArea      float64
	FractionRadiant   float64
	FractionLatent    float64
}

func (o ElectricEquipment) Kind() string { return "ElectricEquipment" }
func (o ElectricEquipment) Name() string { return o.EquipmentName }
func (o ElectricEquipment) Fields() []Field {
	return []Field{
		F(o.EquipmentName, "Name"),
		F(o.ZoneName, "Zone or ZoneList Name"),
		F(o.Schedule, "Schedule Name"),
		F(o.CalculationMethod, "Design Level Calculation Method"),
		F("", "Design Level"),
		F(o.WattsPerArea, "Watts per Zone Floor Area"),
		F("", "Watts per Person"),
		F(o.FractionLatent, "Fraction Latent"),
		F(o.FractionRadiant, "Fraction Radiant"),
	}
}

// ZoneInfiltrationDesignFlowRate is the modern-building infiltration
// method.
type ZoneInfiltrationDesignFlowRate struct {
	InfiltrationName  string
	ZoneName          string
	Schedule          string
	CalculationMethod string // "Flow/Zone"
	DesignFlowRateM3s float64
}

func (o ZoneInfiltrationDesignFlowRate) Kind() string {
	return "ZoneInfiltration:DesignFlowRate"
}
func (o ZoneInfiltrationDesignFlowRate) Name() string { return o.InfiltrationName }
func (o ZoneInfiltrationDesignFlowRate) Fields() []Field {
	return []Field{
		F(o.InfiltrationName, "Name"),
		F(o.ZoneName, "Zone or ZoneList Name"),
		F(o.Schedule, "Schedule Name"),
		F(o.CalculationMethod, "Design Flow Rate Calculation Method"),
		F(o.DesignFlowRateM3s, "Design Flow Rate"),
	}
}

// ZoneInfiltrationEffectiveLeakageArea is the pre-1980-building
// infiltration method; exactly 6 fields: name, zone, schedule,
// leakage area, stack coefficient, wind coefficient.
type ZoneInfiltrationEffectiveLeakageArea struct {
	InfiltrationName string
	ZoneName         string
	Schedule         string
	ELA_cm2          float64
	StackCoefficient float64
	WindCoefficient  float64
}

func (o ZoneInfiltrationEffectiveLeakageArea) Kind() string {
	return "ZoneInfiltration:EffectiveLeakageArea"
}
func (o ZoneInfiltrationEffectiveLeakageArea) Name() string { return o.InfiltrationName }
func (o ZoneInfiltrationEffectiveLeakageArea) Fields() []Field {
	return []Field{
		F(o.InfiltrationName, "Name"),
		F(o.ZoneName, "Zone or ZoneList Name"),
		F(o.Schedule, "Schedule Name"),
		F(o.ELA_cm2, "Effective Air Leakage Area"),
		F(o.StackCoefficient, "Stack Coefficient"),
		F(o.WindCoefficient, "Wind Coefficient"),
	}
}
