// Package model holds the value types shared across the idfgen pipeline:
// the resolved site, building parameters, geometry, loads, and the HVAC
// object graph, all addressed by name through a single per-invocation
// NameTable.
package model

import "strings"

// BuildingType enumerates the supported primary uses.
type BuildingType string

const (
	Office            BuildingType = "Office"
	Retail            BuildingType = "Retail"
	School            BuildingType = "School"
	Hospital          BuildingType = "Hospital"
	ResidentialSingle BuildingType = "ResidentialSingle"
	ResidentialMulti  BuildingType = "ResidentialMulti"
	Warehouse         BuildingType = "Warehouse"
	Hotel             BuildingType = "Hotel"
	Restaurant        BuildingType = "Restaurant"
	Other             BuildingType = "Other"
)

// LEEDLevel enumerates certification tiers.
type LEEDLevel string

const (
	LEEDNone      LEEDLevel = "None"
	LEEDCertified LEEDLevel = "Certified"
	LEEDSilver    LEEDLevel = "Silver"
	LEEDGold      LEEDLevel = "Gold"
	LEEDPlatinum  LEEDLevel = "Platinum"
)

// ClimateZone is an ASHRAE zone designation, C1 through C8.
type ClimateZone string

const (
	C1 ClimateZone = "C1"
	C2 ClimateZone = "C2"
	C3 ClimateZone = "C3"
	C4 ClimateZone = "C4"
	C5 ClimateZone = "C5"
	C6 ClimateZone = "C6"
	C7 ClimateZone = "C7"
	C8 ClimateZone = "C8"
)

// HVACType is a system topology family chosen by C6.
type HVACType string

const (
	HVACVAV          HVACType = "VAV"
	HVACPTAC         HVACType = "PTAC"
	HVACRTU          HVACType = "RTU"
	HVACHeatPump     HVACType = "HeatPump"
	HVACChilledWater HVACType = "ChilledWater"
	HVACIdealLoads   HVACType = "IdealLoads"
)

// GroundTemps holds monthly ground temperatures at three depths, °C.
type GroundTemps struct {
	Depth05m [12]float64
	Depth1m  [12]float64
	Depth2m  [12]float64
}

// Site is resolved once per invocation by a SiteResolver and is
// immutable thereafter.
type Site struct {
	Latitude      float64
	Longitude     float64
	ElevationM    float64
	TimeZone      string
	ClimateZone   ClimateZone
	WeatherFile   string
	GroundTemps   GroundTemps
	FootprintM2   float64
	FootprintPoly []Point
}

// BuildingParameters is the fully specified input record produced by
// the parameter resolver (C3).
type BuildingParameters struct {
	BuildingType        BuildingType
	Stories             int
	FloorAreaM2         float64
	FloorAreaPerStoryM2 float64
	WWR                 [4]float64 // North, East, South, West
	YearBuilt           *int
	RetrofitYear        *int
	LEEDLevel           LEEDLevel
	CHPCapacityKW       *float64
	CHPProvidesPercent  *float64
	ForcedHVACType      *HVACType
}

// EffectiveYear returns the year used for age-band lookup: the
// retrofit year if present, else the year built, else nil (treated as
// modern by the defaults library).
func (b BuildingParameters) EffectiveYear() *int {
	if b.RetrofitYear != nil {
		return b.RetrofitYear
	}
	return b.YearBuilt
}

// Point is a 2D vertex in meters, building-local coordinates.
type Point struct {
	X, Y float64
}

// Point3 is a 3D vertex in meters.
type Point3 struct {
	X, Y, Z float64
}

// Footprint is the polygon C4 tiles into zones.
type Footprint struct {
	Polygon        []Point
	AreaM2         float64
	Centroid       Point
	OrientationDeg float64
}

// SpaceType tags a Zone's predominant use.
type SpaceType string

const (
	SpaceOfficeOpen SpaceType = "OfficeOpen"
	SpaceConference SpaceType = "Conference"
	SpaceStorage    SpaceType = "Storage"
	SpaceLobby      SpaceType = "Lobby"
	SpaceKitchen    SpaceType = "Kitchen"
	SpaceLivingRoom SpaceType = "LivingRoom"
	SpaceSalesFloor SpaceType = "SalesFloor"
	SpaceWard       SpaceType = "Ward"
	SpaceClassroom  SpaceType = "Classroom"
	SpaceMechanical SpaceType = "Mechanical"
)

// Zone is one thermally uniform volume.
type Zone struct {
	Name              string
	FloorIndex        int
	Row, Col          int
	Polygon           []Point
	AreaM2            float64
	CeilingHeightM    float64
	VolumeM3          float64
	SpaceType         SpaceType
	IsPerimeter       bool
	IsTopFloor        bool
	HasExteriorWindow bool
}

// SurfaceKind enumerates the surface families.
type SurfaceKind string

const (
	SurfaceWall         SurfaceKind = "Wall"
	SurfaceFloor        SurfaceKind = "Floor"
	SurfaceCeiling      SurfaceKind = "Ceiling"
	SurfaceRoof         SurfaceKind = "Roof"
	SurfaceInternalMass SurfaceKind = "InternalMass"
)

// BoundaryKind enumerates the outside-boundary-condition families; for
// Surface the PeerName field carries the reciprocal surface name.
type BoundaryKind string

const (
	BoundaryOutdoors  BoundaryKind = "Outdoors"
	BoundaryGround    BoundaryKind = "Ground"
	BoundaryAdiabatic BoundaryKind = "Adiabatic"
	BoundarySurface   BoundaryKind = "Surface"
)

// Surface is a planar boundary of a zone.
type Surface struct {
	Name         string
	Zone         string
	Kind         SurfaceKind
	Boundary     BoundaryKind
	PeerName     string // set iff Boundary == BoundarySurface
	Construction string
	Polygon      []Point3
	TiltDeg      float64
	AzimuthDeg   float64
	AreaM2       float64
}

// FenestrationKind distinguishes windows from doors.
type FenestrationKind string

const (
	FenestrationWindow FenestrationKind = "Window"
	FenestrationDoor   FenestrationKind = "Door"
)

// Fenestration is a window or door hosted by a Surface.
type Fenestration struct {
	Name         string
	Kind         FenestrationKind
	Surface      string
	Construction string
	AreaM2       float64
	AreaFraction float64
}

// Roughness is the IDD roughness enum for opaque materials.
type Roughness string

const (
	VeryRough    Roughness = "VeryRough"
	Rough        Roughness = "Rough"
	MediumRough  Roughness = "MediumRough"
	MediumSmooth Roughness = "MediumSmooth"
	Smooth       Roughness = "Smooth"
	VerySmooth   Roughness = "VerySmooth"
)

// Material is an opaque building material layer.
type Material struct {
	Name             string
	Roughness        Roughness
	ThicknessM       float64
	ConductivityWmK  float64
	DensityKgM3      float64
	SpecificHeatJkgK float64
}

// GlazingTriple is the simple-glazing-system representation used for
// window constructions.
type GlazingTriple struct {
	UFactorWm2K          float64
	SHGC                 float64
	VisibleTransmittance float64
}

// Construction is an ordered list of material names, outside to
// inside, or a simple-glazing triple for windows.
type Construction struct {
	Name    string
	Layers  []string // material names, empty for simple glazing
	Glazing *GlazingTriple
}

// ScheduleType enumerates the schedule value semantics.
type ScheduleType string

const (
	ScheduleFraction      ScheduleType = "Fraction"
	ScheduleTemperature   ScheduleType = "Temperature"
	ScheduleOnOff         ScheduleType = "OnOff"
	ScheduleActivityLevel ScheduleType = "ActivityLevel"
)

// SchedulePeriod is one day-type rule within a schedule.
type SchedulePeriod struct {
	DayTypes             []string // e.g. "Weekdays", "Weekends", "Holidays"
	StartMonth, StartDay int
	EndMonth, EndDay     int
	HourToValue          [24]float64
}

// Schedule is a full-year Schedule:Compact definition.
type Schedule struct {
	Name    string
	Type    ScheduleType
	Periods []SchedulePeriod
}

// LoadKind enumerates internal load object families.
type LoadKind string

const (
	LoadLights    LoadKind = "Lights"
	LoadPeople    LoadKind = "People"
	LoadEquipment LoadKind = "Equipment"
)

// InternalLoad is a People/Lights/ElectricEquipment definition bound
// to one zone.
type InternalLoad struct {
	Name             string
	Kind             LoadKind
	Zone             string
	Schedule         string
	ActivitySchedule string // People only
	DesignLevelWatts float64
	DesignLevelWm2   float64
	DesignLevelPppm2 float64
	RadiantFraction  float64
	VisibleFraction  float64
	LatentFraction   float64
}

// InfiltrationMethod selects the IDD input method.
type InfiltrationMethod string

const (
	InfiltrationDesignFlowRate       InfiltrationMethod = "DesignFlowRate"
	InfiltrationEffectiveLeakageArea InfiltrationMethod = "EffectiveLeakageArea"
)

// Infiltration is a per-zone infiltration definition.
type Infiltration struct {
	Name             string
	Zone             string
	Schedule         string
	Method           InfiltrationMethod
	FlowPerZoneM3s   float64 // DesignFlowRate
	ACH              float64 // DesignFlowRate, informational
	ELA_cm2          float64 // EffectiveLeakageArea
	StackCoefficient float64 // EffectiveLeakageArea
	WindCoefficient  float64 // EffectiveLeakageArea
}

// Name normalizes a candidate EnergyPlus object name: trimmed, with
// internal whitespace collapsed to single spaces. NameTable compares
// names case-insensitively, as EnergyPlus itself does.
func Name(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
