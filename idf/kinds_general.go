package idf

import "fmt"

// Version is the IDD schema version declaration.
type Version struct {
	VersionID string
}

func (o Version) Kind() string { return "Version" }
func (o Version) Name() string { return "" }
func (o Version) Fields() []Field {
	return []Field{F(o.VersionID, "Version Identifier")}
}

// SimulationControl toggles sizing/design-day/weather-file runs.
type SimulationControl struct {
	DoZoneSizing   bool
	DoSystemSizing bool
	DoPlantSizing  bool
	RunForSizing   bool
	RunForWeather  bool
}

func (o SimulationControl) Kind() string { return "SimulationControl" }
func (o SimulationControl) Name() string { return "" }
func (o SimulationControl) Fields() []Field {
	return []Field{
		F(o.DoZoneSizing, "Do Zone Sizing Calculation"),
		F(o.DoSystemSizing, "Do System Sizing Calculation"),
		F(o.DoPlantSizing, "Do Plant Sizing Calculation"),
		F(o.RunForSizing, "Run Simulation for Sizing Periods"),
		F(o.RunForWeather, "Run Simulation for Weather File Run Periods"),
	}
}

// Building is the single whole-building declaration.
type Building struct {
	BuildingName              string
	NorthAxisDeg              float64
	Terrain                   string
	LoadsConvergenceTolerance float64
	TempConvergenceTolerance  float64
	SolarDistribution         string
	MaxWarmupDays             int
}

func (o Building) Kind() string { return "Building" }
func (o Building) Name() string { return o.BuildingName }
func (o Building) Fields() []Field {
	return []Field{
		F(o.BuildingName, "Name"),
		F(o.NorthAxisDeg, "North Axis"),
		F(o.Terrain, "Terrain"),
		F(o.LoadsConvergenceTolerance, "Loads Convergence Tolerance Value"),
		F(o.TempConvergenceTolerance, "Temperature Convergence Tolerance Value"),
		F(o.SolarDistribution, "Solar Distribution"),
		F(o.MaxWarmupDays, "Maximum Number of Warmup Days"),
	}
}

// Timestep sets the number of timesteps per hour.
type Timestep struct {
	StepsPerHour int
}

func (o Timestep) Kind() string { return "Timestep" }
func (o Timestep) Name() string { return "" }
func (o Timestep) Fields() []Field {
	return []Field{F(o.StepsPerHour, "Number of Timesteps per Hour")}
}

// SiteLocation is the single Site:Location object.
type SiteLocation struct {
	LocationName string
	LatitudeDeg  float64
	LongitudeDeg float64
	TimeZone     float64
	ElevationM   float64
}

func (o SiteLocation) Kind() string { return "Site:Location" }
func (o SiteLocation) Name() string { return o.LocationName }
func (o SiteLocation) Fields() []Field {
	return []Field{
		F(o.LocationName, "Name"),
		F(o.LatitudeDeg, "Latitude"),
		F(o.LongitudeDeg, "Longitude"),
		F(o.TimeZone, "Time Zone"),
		F(o.ElevationM, "Elevation"),
	}
}

// SiteGroundTemperatureBuildingSurface is the monthly 0.5 m depth
// ground temperature object used by slab-on-grade floor surfaces.
type SiteGroundTemperatureBuildingSurface struct {
	MonthlyTempsC [12]float64
}

func (o SiteGroundTemperatureBuildingSurface) Kind() string {
	return "Site:GroundTemperature:BuildingSurface"
}
func (o SiteGroundTemperatureBuildingSurface) Name() string { return "" }
func (o SiteGroundTemperatureBuildingSurface) Fields() []Field {
	months := []string{"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"}
	fields := make([]Field, 12)
	for i, m := range months {
		fields[i] = F(o.MonthlyTempsC[i], fmt.Sprintf("%s Ground Temperature", m))
	}
	return fields
}

// RunPeriod is the single annual weather-file run period.
type RunPeriod struct {
	RunPeriodName        string
	BeginMonth, BeginDay int
	EndMonth, EndDay     int
}

func (o RunPeriod) Kind() string { return "RunPeriod" }
func (o RunPeriod) Name() string { return o.RunPeriodName }
func (o RunPeriod) Fields() []Field {
	return []Field{
		F(o.RunPeriodName, "Name"),
		F(o.BeginMonth, "Begin Month"),
		F(o.BeginDay, "Begin Day of Month"),
		F(o.EndMonth, "End Month"),
		F(o.EndDay, "End Day of Month"),
	}
}

// GlobalGeometryRules fixes the vertex-entry convention used by every
// surface and fenestration object in the model.
type GlobalGeometryRules struct {
	StartingVertexPosition string
	VertexEntryDirection   string
	CoordinateSystem       string
}

func (o GlobalGeometryRules) Kind() string { return "GlobalGeometryRules" }
func (o GlobalGeometryRules) Name() string { return "" }
func (o GlobalGeometryRules) Fields() []Field {
	return []Field{
		F(o.StartingVertexPosition, "Starting Vertex Position"),
		F(o.VertexEntryDirection, "Vertex Entry Direction"),
		F(o.CoordinateSystem, "Coordinate System"),
	}
}

// OutputVariable requests a reporting variable.
type OutputVariable struct {
	KeyValue        string
	VariableName    string
	ReportFrequency string
}

func (o OutputVariable) Kind() string { return "Output:Variable" }
func (o OutputVariable) Name() string { return "" }
func (o OutputVariable) Fields() []Field {
	return []Field{
		F(o.KeyValue, "Key Value"),
		F(o.VariableName, "Variable Name"),
		F(o.ReportFrequency, "Reporting Frequency"),
	}
}

// OutputMeter requests a meter report.
type OutputMeter struct {
	MeterName       string
	ReportFrequency string
}

func (o OutputMeter) Kind() string { return "Output:Meter" }
func (o OutputMeter) Name() string { return "" }
func (o OutputMeter) Fields() []Field {
	return []Field{
		F(o.MeterName, "Key Name"),
		F(o.ReportFrequency, "Reporting Frequency"),
	}
}
