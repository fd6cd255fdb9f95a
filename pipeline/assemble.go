package pipeline

import (
	"fmt"
	"math"
	"strings"

	"idfgen/config"
	"idfgen/defaults"
	"idfgen/hvac"
	"idfgen/idf"
	"idfgen/model"
)

// assemble maps the populated model arena to the ordered idf.Model
// the emitter consumes. Objects are added kind-group by kind-group in
// a fixed sequence, and within each group in the arena's construction
// order, so identical inputs always produce an identical emission
// sequence.
func assemble(b *model.Building, rec defaults.Record, hvacCfg config.HVACConfig) *idf.Model {
	m := idf.NewModel()

	m.Add(idf.Version{VersionID: "24.2"})
	m.Add(idf.SimulationControl{
		DoZoneSizing:   true,
		DoSystemSizing: len(b.AirLoops) > 0,
		DoPlantSizing:  false,
		RunForSizing:   false,
		RunForWeather:  true,
	})
	m.Add(idf.Building{
		BuildingName:              buildingName(b),
		NorthAxisDeg:              b.Footprint.OrientationDeg,
		Terrain:                   terrainFor(b.Params.BuildingType),
		LoadsConvergenceTolerance: 0.04,
		TempConvergenceTolerance:  0.4,
		SolarDistribution:         "FullExterior",
		MaxWarmupDays:             25,
	})
	m.Add(idf.Timestep{StepsPerHour: 4})
	m.Add(idf.SiteLocation{
		LocationName: buildingName(b) + " Site",
		LatitudeDeg:  b.Site.Latitude,
		LongitudeDeg: b.Site.Longitude,
		TimeZone:     timeZoneOffset(b.Site.TimeZone),
		ElevationM:   b.Site.ElevationM,
	})
	m.Add(idf.SiteGroundTemperatureBuildingSurface{MonthlyTempsC: b.Site.GroundTemps.Depth05m})
	m.Add(idf.RunPeriod{
		RunPeriodName: "Annual",
		BeginMonth:    1, BeginDay: 1,
		EndMonth: 12, EndDay: 31,
	})
	m.Add(idf.GlobalGeometryRules{
		StartingVertexPosition: "UpperLeftCorner",
		VertexEntryDirection:   "Counterclockwise",
		CoordinateSystem:       "Relative",
	})

	addScheduleTypeLimits(m, b.Schedules)
	for _, s := range b.Schedules {
		m.Add(toScheduleCompact(s))
	}

	addConstructions(m, b)
	addGeometry(m, b)
	addLoads(m, b)
	addHVAC(m, b, rec, hvacCfg)
	addOutputs(m)

	return m
}

func buildingName(b *model.Building) string {
	return fmt.Sprintf("%s Building", b.Params.BuildingType)
}

func terrainFor(bt model.BuildingType) string {
	switch bt {
	case model.ResidentialSingle:
		return "Suburbs"
	default:
		return "City"
	}
}

// timeZoneOffset converts an "Etc/GMT-5"-style or "+05:00"-style time
// zone string into the fractional-hours offset Site:Location expects.
// Unparseable strings fall back to 0 (UTC).
func timeZoneOffset(tz string) float64 {
	tz = strings.TrimSpace(tz)
	if tz == "" {
		return 0
	}
	// Etc/GMT names use the POSIX sign convention: Etc/GMT-5 is UTC+5.
	if rest := strings.TrimPrefix(tz, "Etc/GMT"); rest != tz {
		return -timeZoneOffset(rest)
	}
	sign := 1.0
	switch tz[0] {
	case '-':
		sign = -1
		tz = tz[1:]
	case '+':
		tz = tz[1:]
	}
	var h, min int
	if n, err := fmt.Sscanf(tz, "%d:%d", &h, &min); err == nil && n == 2 {
		return sign * (float64(h) + float64(min)/60)
	}
	if n, err := fmt.Sscanf(tz, "%d", &h); err == nil && n == 1 {
		return sign * float64(h)
	}
	return 0
}

func limitsNameFor(t model.ScheduleType) string {
	switch t {
	case model.ScheduleTemperature:
		return "Temperature"
	case model.ScheduleOnOff:
		return "OnOff"
	case model.ScheduleActivityLevel:
		return "ActivityLevel"
	default:
		return "Fraction"
	}
}

func addScheduleTypeLimits(m *idf.Model, schedules []model.Schedule) {
	seen := map[string]bool{}
	for _, s := range schedules {
		name := limitsNameFor(s.Type)
		if seen[name] {
			continue
		}
		seen[name] = true
		switch name {
		case "Temperature":
			m.Add(idf.ScheduleTypeLimits{LimitsName: name, LowerLimit: -60, UpperLimit: 200, NumericType: "Continuous"})
		case "OnOff":
			m.Add(idf.ScheduleTypeLimits{LimitsName: name, LowerLimit: 0, UpperLimit: 1, NumericType: "Discrete"})
		case "ActivityLevel":
			m.Add(idf.ScheduleTypeLimits{LimitsName: name, LowerLimit: 0, UpperLimit: 1000, NumericType: "Continuous"})
		default:
			m.Add(idf.ScheduleTypeLimits{LimitsName: name, LowerLimit: 0, UpperLimit: 1, NumericType: "Continuous"})
		}
	}
}

func toScheduleCompact(s model.Schedule) idf.ScheduleCompact {
	rules := make([]idf.ScheduleCompactRule, 0, len(s.Periods))
	for _, p := range s.Periods {
		rules = append(rules, idf.ScheduleCompactRule{
			ThroughMonth:     p.EndMonth,
			ThroughDay:       p.EndDay,
			ForDayTypes:      strings.Join(p.DayTypes, " "),
			UntilHourToValue: p.HourToValue,
		})
	}
	return idf.ScheduleCompact{
		ScheduleName: s.Name,
		TypeLimits:   limitsNameFor(s.Type),
		Rules:        rules,
	}
}

func addConstructions(m *idf.Model, b *model.Building) {
	for _, mat := range b.Materials {
		m.Add(idf.Material{
			MaterialName:       mat.Name,
			Roughness:          string(mat.Roughness),
			ThicknessM:         mat.ThicknessM,
			ConductivityWmK:    mat.ConductivityWmK,
			DensityKgM3:        mat.DensityKgM3,
			SpecificHeatJkgK:   mat.SpecificHeatJkgK,
			ThermalAbsorptance: 0.9,
			SolarAbsorptance:   0.7,
			VisibleAbsorptance: 0.7,
		})
	}
	for _, c := range b.Constructions {
		if c.Glazing != nil {
			glazingName := c.Name + "_Glazing"
			m.Add(idf.WindowMaterialSimpleGlazingSystem{
				MaterialName:         glazingName,
				UFactorWm2K:          c.Glazing.UFactorWm2K,
				SHGC:                 c.Glazing.SHGC,
				VisibleTransmittance: c.Glazing.VisibleTransmittance,
			})
			m.Add(idf.Construction{ConstructionName: c.Name, LayerNames: []string{glazingName}})
			continue
		}
		m.Add(idf.Construction{ConstructionName: c.Name, LayerNames: c.Layers})
	}
}

func addGeometry(m *idf.Model, b *model.Building) {
	for _, z := range b.Zones {
		m.Add(idf.Zone{
			ZoneName:       z.Name,
			Type:           1,
			Multiplier:     1,
			CeilingHeightM: z.CeilingHeightM,
			VolumeM3:       z.VolumeM3,
		})
	}

	surfacesByName := make(map[string]model.Surface, len(b.Surfaces))
	for _, s := range b.Surfaces {
		surfacesByName[s.Name] = s
	}

	for _, s := range b.Surfaces {
		m.Add(idf.BuildingSurfaceDetailed{
			SurfaceName:                    s.Name,
			SurfaceType:                    surfaceTypeFor(s.Kind),
			ConstructionName:               s.Construction,
			ZoneName:                       s.Zone,
			OutsideBoundaryCondition:       string(s.Boundary),
			OutsideBoundaryConditionObject: s.PeerName,
			SunExposed:                     s.Boundary == model.BoundaryOutdoors,
			WindExposed:                    s.Boundary == model.BoundaryOutdoors,
			ViewFactorToGround:             viewFactorFor(s),
			Vertices:                       toVertices(s.Polygon),
		})
	}
	for _, f := range b.Fenestrations {
		parent, ok := surfacesByName[f.Surface]
		if !ok {
			continue
		}
		m.Add(idf.FenestrationSurfaceDetailed{
			FenestrationName:    f.Name,
			SurfaceType:         string(f.Kind),
			ConstructionName:    f.Construction,
			BuildingSurfaceName: f.Surface,
			ViewFactorToGround:  0.5,
			Vertices:            windowVertices(parent, f.AreaM2),
		})
	}
}

func surfaceTypeFor(k model.SurfaceKind) string {
	switch k {
	case model.SurfaceRoof:
		return "Roof"
	case model.SurfaceCeiling:
		return "Ceiling"
	case model.SurfaceFloor:
		return "Floor"
	default:
		return "Wall"
	}
}

func viewFactorFor(s model.Surface) float64 {
	if s.Kind == model.SurfaceWall && s.Boundary == model.BoundaryOutdoors {
		return 0.5
	}
	return 0
}

func toVertices(poly []model.Point3) []idf.Vertex3 {
	out := make([]idf.Vertex3, len(poly))
	for i, p := range poly {
		out[i] = idf.Vertex3{X: p.X, Y: p.Y, Z: p.Z}
	}
	return out
}

// windowVertices cuts a centered rectangular window of the given area
// into the parent wall, sill 0.9 m above the wall base. Wall polygons
// are upper-left-first counterclockwise, so vertices 1 and 2 span the
// left edge and vertices 2 and 3 the bottom edge.
func windowVertices(wall model.Surface, areaM2 float64) []idf.Vertex3 {
	if len(wall.Polygon) < 4 {
		return nil
	}
	bottom1 := wall.Polygon[1]
	bottom2 := wall.Polygon[2]
	baseZ := bottom1.Z
	height := wall.Polygon[0].Z - baseZ
	length := math.Hypot(bottom2.X-bottom1.X, bottom2.Y-bottom1.Y)
	if length < 1e-6 || height < 1e-6 {
		return nil
	}

	const sill = 0.9
	maxW := 0.95 * length
	maxH := height - sill - 0.1
	if maxH <= 0 {
		maxH = height * 0.5
	}
	h := areaM2 / maxW
	if h > maxH {
		h = maxH
	}
	w := areaM2 / h
	if w > maxW {
		w = maxW
	}

	ux := (bottom2.X - bottom1.X) / length
	uy := (bottom2.Y - bottom1.Y) / length
	start := (length - w) / 2
	ax, ay := bottom1.X+ux*start, bottom1.Y+uy*start
	bx, by := bottom1.X+ux*(start+w), bottom1.Y+uy*(start+w)

	return []idf.Vertex3{
		{X: ax, Y: ay, Z: baseZ + sill + h},
		{X: ax, Y: ay, Z: baseZ + sill},
		{X: bx, Y: by, Z: baseZ + sill},
		{X: bx, Y: by, Z: baseZ + sill + h},
	}
}

func addLoads(m *idf.Model, b *model.Building) {
	for _, l := range b.Loads {
		switch l.Kind {
		case model.LoadPeople:
			m.Add(idf.People{
				PeopleName:            l.Name,
				ZoneName:              l.Zone,
				OccupancySchedule:     l.Schedule,
				CalculationMethod:     "People/Area",
				PeoplePerArea:         l.DesignLevelPppm2,
				ActivityLevelSchedule: l.ActivitySchedule,
			})
		case model.LoadLights:
			m.Add(idf.Lights{
				LightsName:        l.Name,
				ZoneName:          l.Zone,
				Schedule:          l.Schedule,
				CalculationMethod: "Watts/Area",
				WattsPerArea:      l.DesignLevelWm2,
				ReturnAirFraction: 0,
				FractionRadiant:   l.RadiantFraction,
				FractionVisible:   l.VisibleFraction,
			})
		case model.LoadEquipment:
			m.Add(idf.ElectricEquipment{
				EquipmentName:     l.Name,
				ZoneName:          l.Zone,
				Schedule:          l.Schedule,
				CalculationMethod: "Watts/Area",
				WattsPerArea:      l.DesignLevelWm2,
				FractionRadiant:   l.RadiantFraction,
				FractionLatent:    l.LatentFraction,
			})
		}
	}
	for _, inf := range b.Infiltrations {
		if inf.Method == model.InfiltrationEffectiveLeakageArea {
			m.Add(idf.ZoneInfiltrationEffectiveLeakageArea{
				InfiltrationName: inf.Name,
				ZoneName:         inf.Zone,
				Schedule:         inf.Schedule,
				ELA_cm2:          inf.ELA_cm2,
				StackCoefficient: inf.StackCoefficient,
				WindCoefficient:  inf.WindCoefficient,
			})
			continue
		}
		m.Add(idf.ZoneInfiltrationDesignFlowRate{
			InfiltrationName:  inf.Name,
			ZoneName:          inf.Zone,
			Schedule:          inf.Schedule,
			CalculationMethod: "Flow/Zone",
			DesignFlowRateM3s: inf.FlowPerZoneM3s,
		})
	}
}

func addHVAC(m *idf.Model, b *model.Building, rec defaults.Record, cfg config.HVACConfig) {
	zonesByName := make(map[string]model.Zone, len(b.Zones))
	for _, z := range b.Zones {
		zonesByName[z.Name] = z
	}

	for _, loop := range b.AirLoops {
		addAirLoop(m, loop, rec, cfg, zonesByName)
	}
	for _, u := range b.PTACUnits {
		addZonalUnit(m, u)
	}
	for _, d := range b.Daylighting {
		z := zonesByName[d.Zone]
		cx, cy := zoneCenter(z)
		m.Add(idf.DaylightingControls{
			ControlsName:           d.Name,
			ZoneName:               d.Zone,
			ReferencePointName:     d.ReferencePointName,
			FractionControlled:     d.FractionControlled,
			IlluminanceSetpointLux: d.IlluminanceSetpointLux,
		})
		m.Add(idf.DaylightingReferencePoint{
			PointName: d.ReferencePointName,
			ZoneName:  d.Zone,
			X:         cx,
			Y:         cy,
			Z:         0.8,
		})
	}
}

func zoneCenter(z model.Zone) (float64, float64) {
	if len(z.Polygon) == 0 {
		return 0, 0
	}
	var sx, sy float64
	for _, p := range z.Polygon {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(z.Polygon))
	return sx / n, sy / n
}

func addAirLoop(m *idf.Model, loop model.AirLoop, rec defaults.Record, cfg config.HVACConfig, zonesByName map[string]model.Zone) {
	var loopZones []model.Zone
	for _, zn := range loop.Zones {
		loopZones = append(loopZones, zonesByName[zn])
	}

	controllerList := ""
	if loop.OAController != nil {
		controllerList = loop.Name + "_Controllers"
	}
	m.Add(idf.AirLoopHVAC{
		AirLoopName:            loop.Name,
		ControllerListName:     controllerList,
		BranchListName:         loop.Branch.ListName,
		SupplyInletNode:        string(loop.SupplyInletNode),
		SupplyOutletNode:       string(loop.SupplyOutletNode),
		DemandInletNode:        string(loop.Splitter.InletNode),
		DemandOutletNode:       string(loop.Mixer.OutletNode),
		DesignSupplyAirFlowM3s: hvac.SizeSupplyFlow(loopZones, cfg),
	})
	m.Add(idf.BranchList{
		BranchListName: loop.Branch.ListName,
		BranchNames:    []string{loop.Branch.Name},
	})

	var branchComponents []idf.BranchComponent
	for _, c := range loop.Branch.Components {
		branchComponents = append(branchComponents, idf.BranchComponent{
			ObjectType: c.Kind,
			ObjectName: c.Name,
			InletNode:  string(c.InletNode),
			OutletNode: string(c.OutletNode),
		})
	}
	m.Add(idf.Branch{BranchName: loop.Branch.Name, Components: branchComponents})

	m.Add(idf.OutdoorAirMixer{
		MixerName:     loop.OAMixer.Name,
		MixedAirNode:  string(loop.MixedAirNode),
		OANode:        string(loop.OANode),
		ReliefNode:    string(loop.ReliefNode),
		ReturnAirNode: string(loop.ReturnNode),
	})

	pressureRise := hvac.FanPressureRise(rec.Efficiencies)
	switch loop.Fan.Kind {
	case "Fan:ConstantVolume":
		m.Add(idf.FanConstantVolume{
			FanName:              loop.Fan.Name,
			AvailabilitySchedule: "",
			PressureRisePa:       pressureRise,
			InletNode:            string(loop.Fan.InletNode),
			OutletNode:           string(loop.Fan.OutletNode),
		})
	default:
		m.Add(idf.FanVariableVolume{
			FanName:              loop.Fan.Name,
			AvailabilitySchedule: "",
			PressureRisePa:       pressureRise,
			InletNode:            string(loop.Fan.InletNode),
			OutletNode:           string(loop.Fan.OutletNode),
		})
	}

	switch loop.CoolCoil.Kind {
	case "Coil:Cooling:Water":
		m.Add(idf.CoilCoolingWater{
			CoilName:   loop.CoolCoil.Name,
			InletNode:  string(loop.CoolCoil.InletNode),
			OutletNode: string(loop.CoolCoil.OutletNode),
		})
	default:
		m.Add(idf.CoilCoolingDXSingleSpeed{
			CoilName:   loop.CoolCoil.Name,
			RatedCOP:   rec.Efficiencies.CoolingCOP,
			InletNode:  string(loop.CoolCoil.InletNode),
			OutletNode: string(loop.CoolCoil.OutletNode),
		})
	}
	m.Add(idf.CoilHeatingElectric{
		CoilName:   loop.HeatCoil.Name,
		Efficiency: rec.Efficiencies.HeatingEfficiency,
		InletNode:  string(loop.HeatCoil.InletNode),
		OutletNode: string(loop.HeatCoil.OutletNode),
	})

	splitterOutlets := make([]string, len(loop.Splitter.Outlets))
	for i, n := range loop.Splitter.Outlets {
		splitterOutlets[i] = string(n)
	}
	m.Add(idf.AirLoopHVACZoneSplitter{
		SplitterName: loop.Splitter.Name,
		InletNode:    string(loop.Splitter.InletNode),
		OutletNodes:  splitterOutlets,
	})
	mixerInlets := make([]string, len(loop.Mixer.Inlets))
	for i, n := range loop.Mixer.Inlets {
		mixerInlets[i] = string(n)
	}
	m.Add(idf.AirLoopHVACZoneMixer{
		MixerName:  loop.Mixer.Name,
		OutletNode: string(loop.Mixer.OutletNode),
		InletNodes: mixerInlets,
	})

	for _, t := range loop.Terminals {
		addTerminal(m, t)
	}

	if loop.OAController != nil {
		m.Add(idf.AirLoopHVACControllerList{
			ListName:       controllerList,
			ControllerType: "Controller:OutdoorAir",
			ControllerName: loop.OAController.Name,
		})
		m.Add(idf.ControllerOutdoorAir{
			ControllerName: loop.OAController.Name,
			ReturnNode:     string(loop.OAController.ReturnNode),
			MixedAirNode:   string(loop.OAController.MixedAirNode),
			ActuatorNode:   string(loop.OAController.ActuatorNode),
			ReliefNode:     string(loop.OAController.ReliefNode),
			Economizer:     string(loop.OAController.Economizer),
		})
	}
	if loop.MechVentController != nil {
		m.Add(idf.ControllerMechanicalVentilation{
			ControllerName:       loop.MechVentController.Name,
			OAControllerName:     loop.MechVentController.OAControllerName,
			DCVEnabled:           loop.MechVentController.DCVEnabled,
			AvailabilitySchedule: loop.MechVentController.DCVAvailabilitySchedule,
		})
	}
	if loop.SetpointManager != nil {
		lo, oLo, hi, oHi := hvac.ResetCurve(loop.SetpointManager.ClimateZone)
		m.Add(idf.SetpointManagerOutdoorAirReset{
			ManagerName:            loop.SetpointManager.Name,
			ControlNode:            string(loop.SetpointManager.ControlNode),
			SetpointAtOutdoorLowC:  lo,
			OutdoorLowC:            oLo,
			SetpointAtOutdoorHighC: hi,
			OutdoorHighC:           oHi,
		})
	}
	if loop.ERV != nil {
		m.Add(idf.HeatExchangerAirToAirSensibleAndLatent{
			HXName:                loop.ERV.Name,
			SensibleEffectiveness: loop.ERV.SensibleEffectiveness,
			LatentEffectiveness:   loop.ERV.LatentEffectiveness,
			SupplyInletNode:       string(loop.ERV.SupplyInletNode),
			SupplyOutletNode:      string(loop.ERV.SupplyOutletNode),
			ExhaustInletNode:      string(loop.ERV.ExhaustInletNode),
			ExhaustOutletNode:     string(loop.ERV.ExhaustOutletNode),
		})
	}
}

func addTerminal(m *idf.Model, t model.Terminal) {
	switch t.Kind {
	case "AirTerminal:SingleDuct:VAV:Reheat":
		reheatName := t.Name + "_ReheatCoil"
		reheatInlet := string(t.InletNode)
		if t.ReheatCoil != nil {
			reheatName = t.ReheatCoil.Name
			reheatInlet = string(t.ReheatCoil.InletNode)
		}
		m.Add(idf.AirTerminalSingleDuctVAVReheat{
			TerminalName:        t.Name,
			DamperAirOutletNode: string(t.OutletNode),
			AirInletNode:        string(t.InletNode),
			ReheatCoilName:      reheatName,
			ReheatCoilInletNode: reheatInlet,
		})
	default:
		m.Add(idf.AirTerminalSingleDuctConstantVolumeNoReheat{
			TerminalName:  t.Name,
			AirInletNode:  string(t.InletNode),
			AirOutletNode: string(t.OutletNode),
		})
	}

	m.Add(idf.ZoneHVACAirDistributionUnit{
		ADUName:               t.ADUName,
		AirDistUnitOutletNode: string(t.OutletNode),
		TerminalObjectType:    t.Kind,
		TerminalName:          t.Name,
	})
	m.Add(idf.ZoneHVACEquipmentList{
		ListName: t.Zone + "_Equipment",
		Entries: []idf.ZoneHVACEquipmentListEntry{
			{ObjectType: "ZoneHVAC:AirDistributionUnit", ObjectName: t.ADUName},
		},
	})
	m.Add(idf.ZoneHVACEquipmentConnections{
		ZoneName:               t.Zone,
		EquipmentListName:      t.Zone + "_Equipment",
		ZoneAirInletNodeList:   t.Zone + "_Inlets",
		ZoneAirExhaustNodeList: "",
		ZoneAirNode:            t.Zone + "_Air",
		ZoneReturnAirNode:      string(t.ZoneExhaustNode),
	})
	m.Add(idf.NodeList{
		ListName: t.Zone + "_Inlets",
		Nodes:    []string{string(t.ZoneInletNode)},
	})
}

func addZonalUnit(m *idf.Model, u model.PTACUnit) {
	switch u.Kind {
	case "ZoneHVAC:IdealLoadsAirSystem":
		m.Add(idf.ZoneHVACIdealLoadsAirSystem{
			SystemName:         u.Name,
			ZoneSupplyAirNode:  string(u.OutletNode),
			ZoneExhaustAirNode: string(u.InletNode),
		})
	case "ZoneHVAC:PackagedTerminalHeatPump":
		m.Add(idf.ZoneHVACPackagedTerminalHeatPump{
			UnitName:      u.Name,
			ZoneName:      u.Zone,
			AirInletNode:  string(u.InletNode),
			AirOutletNode: string(u.OutletNode),
		})
	default:
		m.Add(idf.ZoneHVACPackagedTerminalAirConditioner{
			UnitName:      u.Name,
			ZoneName:      u.Zone,
			AirInletNode:  string(u.InletNode),
			AirOutletNode: string(u.OutletNode),
		})
	}

	m.Add(idf.ZoneHVACEquipmentList{
		ListName: u.Zone + "_Equipment",
		Entries:  []idf.ZoneHVACEquipmentListEntry{{ObjectType: u.Kind, ObjectName: u.Name}},
	})
	m.Add(idf.ZoneHVACEquipmentConnections{
		ZoneName:               u.Zone,
		EquipmentListName:      u.Zone + "_Equipment",
		ZoneAirInletNodeList:   u.Zone + "_Inlets",
		ZoneAirExhaustNodeList: u.Zone + "_Exhausts",
		ZoneAirNode:            u.Zone + "_Air",
		ZoneReturnAirNode:      u.Zone + "_ReturnOut",
	})
	m.Add(idf.NodeList{ListName: u.Zone + "_Inlets", Nodes: []string{string(u.OutletNode)}})
	m.Add(idf.NodeList{ListName: u.Zone + "_Exhausts", Nodes: []string{string(u.InletNode)}})
}

func addOutputs(m *idf.Model) {
	m.Add(idf.OutputVariable{KeyValue: "*", VariableName: "Zone Mean Air Temperature", ReportFrequency: "Hourly"})
	m.Add(idf.OutputVariable{KeyValue: "*", VariableName: "Zone Air System Sensible Cooling Energy", ReportFrequency: "Hourly"})
	m.Add(idf.OutputVariable{KeyValue: "*", VariableName: "Zone Air System Sensible Heating Energy", ReportFrequency: "Hourly"})
	m.Add(idf.OutputMeter{MeterName: "Electricity:Facility", ReportFrequency: "Monthly"})
	m.Add(idf.OutputMeter{MeterName: "Electricity:HVAC", ReportFrequency: "Monthly"})
	m.Add(idf.OutputMeter{MeterName: "Fans:Electricity", ReportFrequency: "Monthly"})
}
