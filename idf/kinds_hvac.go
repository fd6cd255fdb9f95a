package idf

import "fmt"

// AirLoopHVAC is the top-level airloop declaration.
type AirLoopHVAC struct {
	AirLoopName                 string
	ControllerListName          string
	BranchListName              string
	SupplyInletNode             string
	SupplyOutletNode            string
	DemandInletNode             string
	DemandOutletNode            string
	DesignSupplyAirFlowAutosize bool
	DesignSupplyAirFlowM3s      float64
}

func (o AirLoopHVAC) Kind() string { return "AirLoopHVAC" }
func (o AirLoopHVAC) Name() string { return o.AirLoopName }
func (o AirLoopHVAC) Fields() []Field {
	flow := interface{}(o.DesignSupplyAirFlowM3s)
	if o.DesignSupplyAirFlowAutosize {
		flow = Autosize{}
	}
	return []Field{
		F(o.AirLoopName, "Name"),
		F(o.ControllerListName, "Controller List Name"),
		F("", "Availability Manager List Name"),
		F(flow, "Design Supply Air Flow Rate"),
		F(o.BranchListName, "Branch List Name"),
		F("", "Connector List Name"),
		F(o.SupplyInletNode, "Supply Side Inlet Node Name"),
		F(o.DemandOutletNode, "Demand Side Outlet Node Name"),
		F(o.DemandInletNode, "Demand Side Inlet Node Names"),
		F(o.SupplyOutletNode, "Supply Side Outlet Node Names"),
	}
}

// AirLoopHVACControllerList names the controllers attached to one
// airloop.
type AirLoopHVACControllerList struct {
	ListName       string
	ControllerType string
	ControllerName string
}

func (o AirLoopHVACControllerList) Kind() string { return "AirLoopHVAC:ControllerList" }
func (o AirLoopHVACControllerList) Name() string { return o.ListName }
func (o AirLoopHVACControllerList) Fields() []Field {
	return []Field{
		F(o.ListName, "Name"),
		F(o.ControllerType, "Controller 1 Object Type"),
		F(o.ControllerName, "Controller 1 Name"),
	}
}

// BranchList references the ordered set of branches composing the
// supply side of one airloop.
type BranchList struct {
	BranchListName string
	BranchNames    []string
}

func (o BranchList) Kind() string { return "BranchList" }
func (o BranchList) Name() string { return o.BranchListName }
func (o BranchList) Fields() []Field {
	fields := []Field{F(o.BranchListName, "Name")}
	for _, b := range o.BranchNames {
		fields = append(fields, F(b, "Branch Name"))
	}
	return fields
}

// BranchComponent is one component entry of a Branch object.
type BranchComponent struct {
	ObjectType string
	ObjectName string
	InletNode  string
	OutletNode string
}

// Branch enumerates one supply chain for the BranchList.
type Branch struct {
	BranchName string
	Components []BranchComponent
}

func (o Branch) Kind() string { return "Branch" }
func (o Branch) Name() string { return o.BranchName }
func (o Branch) Fields() []Field {
	fields := []Field{F(o.BranchName, "Name")}
	for _, c := range o.Components {
		fields = append(fields,
			F(c.ObjectType, "Component Object Type"),
			F(c.ObjectName, "Component Name"),
			F(c.InletNode, "Component Inlet Node Name"),
			F(c.OutletNode, "Component Outlet Node Name"),
		)
	}
	return fields
}

// OutdoorAirMixer is the supply-side OA mixer.
type OutdoorAirMixer struct {
	MixerName     string
	MixedAirNode  string
	OANode        string
	ReliefNode    string
	ReturnAirNode string
}

func (o OutdoorAirMixer) Kind() string { return "OutdoorAir:Mixer" }
func (o OutdoorAirMixer) Name() string { return o.MixerName }
func (o OutdoorAirMixer) Fields() []Field {
	return []Field{
		F(o.MixerName, "Name"),
		F(o.MixedAirNode, "Mixed Air Node Name"),
		F(o.OANode, "Outdoor Air Stream Node Name"),
		F(o.ReliefNode, "Relief Air Stream Node Name"),
		F(o.ReturnAirNode, "Return Air Stream Node Name"),
	}
}

// FanVariableVolume is the VAV supply fan.
type FanVariableVolume struct {
	FanName              string
	AvailabilitySchedule string
	PressureRisePa       float64
	InletNode            string
	OutletNode           string
}

func (o FanVariableVolume) Kind() string { return "Fan:VariableVolume" }
func (o FanVariableVolume) Name() string { return o.FanName }
func (o FanVariableVolume) Fields() []Field {
	return []Field{
		F(o.FanName, "Name"),
		F(o.AvailabilitySchedule, "Availability Schedule Name"),
		F(0.7, "Fan Total Efficiency"),
		F(o.PressureRisePa, "Pressure Rise"),
		F(Autosize{}, "Maximum Flow Rate"),
		F(o.InletNode, "Air Inlet Node Name"),
		F(o.OutletNode, "Air Outlet Node Name"),
	}
}

// CoilCoolingDXSingleSpeed is the supply-side DX cooling coil.
type CoilCoolingDXSingleSpeed struct {
	CoilName             string
	AvailabilitySchedule string
	RatedCOP             float64
	InletNode            string
	OutletNode           string
}

func (o CoilCoolingDXSingleSpeed) Kind() string { return "Coil:Cooling:DX:SingleSpeed" }
func (o CoilCoolingDXSingleSpeed) Name() string { return o.CoilName }
func (o CoilCoolingDXSingleSpeed) Fields() []Field {
	return []Field{
		F(o.CoilName, "Name"),
		F(o.AvailabilitySchedule, "Availability Schedule Name"),
		F(Autosize{}, "Gross Rated Total Cooling Capacity"),
		F(Autosize{}, "Gross Rated Sensible Heat Ratio"),
		F(o.RatedCOP, "Gross Rated Cooling COP"),
		F(Autosize{}, "Rated Air Flow Rate"),
		F(o.InletNode, "Air Inlet Node Name"),
		F(o.OutletNode, "Air Outlet Node Name"),
	}
}

// CoilHeatingElectric is the supply-side electric heating coil.
type CoilHeatingElectric struct {
	CoilName             string
	AvailabilitySchedule string
	Efficiency           float64
	InletNode            string
	OutletNode           string
}

func (o CoilHeatingElectric) Kind() string { return "Coil:Heating:Electric" }
func (o CoilHeatingElectric) Name() string { return o.CoilName }
func (o CoilHeatingElectric) Fields() []Field {
	return []Field{
		F(o.CoilName, "Name"),
		F(o.AvailabilitySchedule, "Availability Schedule Name"),
		F(o.Efficiency, "Efficiency"),
		F(Autosize{}, "Nominal Capacity"),
		F(o.InletNode, "Air Inlet Node Name"),
		F(o.OutletNode, "Air Outlet Node Name"),
	}
}

// AirLoopHVACZoneSplitter fans the supply branch into per-zone
// terminal branches.
type AirLoopHVACZoneSplitter struct {
	SplitterName string
	InletNode    string
	OutletNodes  []string
}

func (o AirLoopHVACZoneSplitter) Kind() string { return "AirLoopHVAC:ZoneSplitter" }
func (o AirLoopHVACZoneSplitter) Name() string { return o.SplitterName }
func (o AirLoopHVACZoneSplitter) Fields() []Field {
	fields := []Field{F(o.SplitterName, "Name"), F(o.InletNode, "Inlet Node Name")}
	for _, n := range o.OutletNodes {
		fields = append(fields, F(n, "Outlet Node Name"))
	}
	return fields
}

// AirLoopHVACZoneMixer merges per-zone return branches.
type AirLoopHVACZoneMixer struct {
	MixerName  string
	OutletNode string
	InletNodes []string
}

func (o AirLoopHVACZoneMixer) Kind() string { return "AirLoopHVAC:ZoneMixer" }
func (o AirLoopHVACZoneMixer) Name() string { return o.MixerName }
func (o AirLoopHVACZoneMixer) Fields() []Field {
	fields := []Field{F(o.MixerName, "Name"), F(o.OutletNode, "Outlet Node Name")}
	for _, n := range o.InletNodes {
		fields = append(fields, F(n, "Inlet Node Name"))
	}
	return fields
}

// AirTerminalSingleDuctVAVReheat is the per-zone VAV terminal with
// reheat coil.
type AirTerminalSingleDuctVAVReheat struct {
	TerminalName         string
	AvailabilitySchedule string
	DamperAirOutletNode  string
	AirInletNode         string
	ReheatCoilName       string
	ReheatCoilInletNode  string
}

func (o AirTerminalSingleDuctVAVReheat) Kind() string {
	return "AirTerminal:SingleDuct:VAV:Reheat"
}
func (o AirTerminalSingleDuctVAVReheat) Name() string { return o.TerminalName }
func (o AirTerminalSingleDuctVAVReheat) Fields() []Field {
	return []Field{
		F(o.TerminalName, "Name"),
		F(o.AvailabilitySchedule, "Availability Schedule Name"),
		F(o.DamperAirOutletNode, "Damper Air Outlet Node Name"),
		F(o.AirInletNode, "Air Inlet Node Name"),
		F(Autosize{}, "Maximum Air Flow Rate"),
		F("Coil:Heating:Electric", "Reheat Coil Object Type"),
		F(o.ReheatCoilName, "Reheat Coil Name"),
	}
}

// ZoneHVACAirDistributionUnit wraps a zone-level air terminal.
type ZoneHVACAirDistributionUnit struct {
	ADUName               string
	AirDistUnitOutletNode string
	TerminalObjectType    string
	TerminalName          string
}

func (o ZoneHVACAirDistributionUnit) Kind() string { return "ZoneHVAC:AirDistributionUnit" }
func (o ZoneHVACAirDistributionUnit) Name() string { return o.ADUName }
func (o ZoneHVACAirDistributionUnit) Fields() []Field {
	return []Field{
		F(o.ADUName, "Name"),
		F(o.AirDistUnitOutletNode, "Air Distribution Unit Outlet Node Name"),
		F(o.TerminalObjectType, "Air Terminal Object Type"),
		F(o.TerminalName, "Air Terminal Name"),
	}
}

// ZoneHVACEquipmentConnections binds one zone to its supply/return
// node set and equipment list.
type ZoneHVACEquipmentConnections struct {
	ZoneName               string
	EquipmentListName      string
	ZoneAirInletNodeList   string
	ZoneAirExhaustNodeList string
	ZoneAirNode            string
	ZoneReturnAirNode      string
}

func (o ZoneHVACEquipmentConnections) Kind() string { return "ZoneHVAC:EquipmentConnections" }
func (o ZoneHVACEquipmentConnections) Name() string { return o.ZoneName }
func (o ZoneHVACEquipmentConnections) Fields() []Field {
	return []Field{
		F(o.ZoneName, "Zone Name"),
		F(o.EquipmentListName, "Zone Conditioning Equipment List Name"),
		F(o.ZoneAirInletNodeList, "Zone Air Inlet Node or NodeList Name"),
		F(o.ZoneAirExhaustNodeList, "Zone Air Exhaust Node or NodeList Name"),
		F(o.ZoneAirNode, "Zone Air Node Name"),
		F(o.ZoneReturnAirNode, "Zone Return Air Node or NodeList Name"),
	}
}

// ZoneHVACEquipmentListEntry is one ranked entry of an equipment list.
type ZoneHVACEquipmentListEntry struct {
	ObjectType string
	ObjectName string
}

// ZoneHVACEquipmentList ranks the zone's HVAC equipment by priority.
type ZoneHVACEquipmentList struct {
	ListName string
	Entries  []ZoneHVACEquipmentListEntry
}

func (o ZoneHVACEquipmentList) Kind() string { return "ZoneHVAC:EquipmentList" }
func (o ZoneHVACEquipmentList) Name() string { return o.ListName }
func (o ZoneHVACEquipmentList) Fields() []Field {
	fields := []Field{F(o.ListName, "Name"), F("SequentialLoad", "Load Distribution Scheme")}
	for i, e := range o.Entries {
		fields = append(fields,
			F(e.ObjectType, fmt.Sprintf("Zone Equipment %d Object Type", i+1)),
			F(e.ObjectName, fmt.Sprintf("Zone Equipment %d Name", i+1)),
			F(i+1, fmt.Sprintf("Zone Equipment %d Cooling Sequence", i+1)),
			F(i+1, fmt.Sprintf("Zone Equipment %d Heating or No-Load Sequence", i+1)),
		)
	}
	return fields
}

// NodeList names a set of nodes referenced as a single list.
type NodeList struct {
	ListName string
	Nodes    []string
}

func (o NodeList) Kind() string { return "NodeList" }
func (o NodeList) Name() string { return o.ListName }
func (o NodeList) Fields() []Field {
	fields := []Field{F(o.ListName, "Name")}
	for _, n := range o.Nodes {
		fields = append(fields, F(n, "Node Name"))
	}
	return fields
}

// ControllerOutdoorAir is the per-airloop outdoor-air controller.
type ControllerOutdoorAir struct {
	ControllerName    string
	MinOAFlowAutosize bool
	MaxOAFlowAutosize bool
	ReturnNode        string
	MixedAirNode      string
	ActuatorNode      string
	ReliefNode        string
	Economizer        string
}

func (o ControllerOutdoorAir) Kind() string { return "Controller:OutdoorAir" }
func (o ControllerOutdoorAir) Name() string { return o.ControllerName }
func (o ControllerOutdoorAir) Fields() []Field {
	return []Field{
		F(o.ControllerName, "Name"),
		F(o.ReliefNode, "Relief Air Outlet Node Name"),
		F(o.ReturnNode, "Return Air Node Name"),
		F(o.MixedAirNode, "Mixed Air Node Name"),
		F(o.ActuatorNode, "Actuator Node Name"),
		F(Autosize{}, "Minimum Outdoor Air Flow Rate"),
		F(Autosize{}, "Maximum Outdoor Air Flow Rate"),
		F(o.Economizer, "Economizer Control Type"),
	}
}

// ControllerMechanicalVentilation implements Demand Controlled
// Ventilation by referencing the OA controller.
type ControllerMechanicalVentilation struct {
	ControllerName       string
	OAControllerName     string
	DCVEnabled           bool
	AvailabilitySchedule string
}

func (o ControllerMechanicalVentilation) Kind() string {
	return "Controller:MechanicalVentilation"
}
func (o ControllerMechanicalVentilation) Name() string { return o.ControllerName }
func (o ControllerMechanicalVentilation) Fields() []Field {
	dcv := "No"
	if o.DCVEnabled {
		dcv = "Yes"
	}
	return []Field{
		F(o.ControllerName, "Name"),
		F(o.AvailabilitySchedule, "Availability Schedule Name"),
		F(dcv, "Demand Controlled Ventilation"),
		F("", "System Outdoor Air Method"),
	}
}

// SetpointManagerOutdoorAirReset resets the supply-air setpoint by
// outdoor temperature at the airloop supply outlet node.
type SetpointManagerOutdoorAirReset struct {
	ManagerName            string
	ControlNode            string
	SetpointAtOutdoorLowC  float64
	OutdoorLowC            float64
	SetpointAtOutdoorHighC float64
	OutdoorHighC           float64
}

func (o SetpointManagerOutdoorAirReset) Kind() string {
	return "SetpointManager:OutdoorAirReset"
}
func (o SetpointManagerOutdoorAirReset) Name() string { return o.ManagerName }
func (o SetpointManagerOutdoorAirReset) Fields() []Field {
	return []Field{
		F(o.ManagerName, "Name"),
		F("Temperature", "Control Variable"),
		F(o.SetpointAtOutdoorLowC, "Setpoint at Outdoor Low Temperature"),
		F(o.OutdoorLowC, "Outdoor Low Temperature"),
		F(o.SetpointAtOutdoorHighC, "Setpoint at Outdoor High Temperature"),
		F(o.OutdoorHighC, "Outdoor High Temperature"),
		F(o.ControlNode, "Setpoint Node or NodeList Name"),
	}
}

// HeatExchangerAirToAirSensibleAndLatent is the ERV placed between
// return and outdoor-air paths in humid/extreme climates.
type HeatExchangerAirToAirSensibleAndLatent struct {
	HXName                string
	AvailabilitySchedule  string
	SensibleEffectiveness float64
	LatentEffectiveness   float64
	SupplyInletNode       string
	SupplyOutletNode      string
	ExhaustInletNode      string
	ExhaustOutletNode     string
}

func (o HeatExchangerAirToAirSensibleAndLatent) Kind() string {
	return "HeatExchanger:AirToAir:SensibleAndLatent"
}
func (o HeatExchangerAirToAirSensibleAndLatent) Name() string { return o.HXName }
func (o HeatExchangerAirToAirSensibleAndLatent) Fields() []Field {
	return []Field{
		F(o.HXName, "Name"),
		F(o.AvailabilitySchedule, "Availability Schedule Name"),
		F(Autosize{}, "Nominal Supply Air Flow Rate"),
		F(o.SensibleEffectiveness, "Sensible Effectiveness at 100% Heating Air Flow"),
		F(o.LatentEffectiveness, "Latent Effectiveness at 100% Heating Air Flow"),
		F(o.SensibleEffectiveness, "Sensible Effectiveness at 100% Cooling Air Flow"),
		F(o.LatentEffectiveness, "Latent Effectiveness at 100% Cooling Air Flow"),
		F(o.SupplyInletNode, "Supply Air Inlet Node Name"),
		F(o.SupplyOutletNode, "Supply Air Outlet Node Name"),
		F(o.ExhaustInletNode, "Exhaust Air Inlet Node Name"),
		F(o.ExhaustOutletNode, "Exhaust Air Outlet Node Name"),
	}
}

// DaylightingControls is the single per-zone daylighting control
// object; field order is reference point, fraction, illuminance per
type DaylightingControls struct {
	ControlsName           string
	ZoneName               string
	ReferencePointName     string
	FractionControlled     float64
	IlluminanceSetpointLux float64
}

func (o DaylightingControls) Kind() string { return "Daylighting:Controls" }
func (o DaylightingControls) Name() string { return o.ControlsName }
func (o DaylightingControls) Fields() []Field {
	return []Field{
		F(o.ControlsName, "Name"),
		F(o.ZoneName, "Zone Name"),
		F(o.ReferencePointName, "Reference Point Name"),
		F(o.FractionControlled, "Fraction of Zone Controlled by Reference Point"),
		F(o.IlluminanceSetpointLux, "Illuminance Setpoint at Reference Point"),
	}
}

// DaylightingReferencePoint is a single interior daylighting
// reference point.
type DaylightingReferencePoint struct {
	PointName string
	ZoneName  string
	X, Y, Z   float64
}

func (o DaylightingReferencePoint) Kind() string { return "Daylighting:ReferencePoint" }
func (o DaylightingReferencePoint) Name() string { return o.PointName }
func (o DaylightingReferencePoint) Fields() []Field {
	return []Field{
		F(o.PointName, "Name"),
		F(o.ZoneName, "Zone Name"),
		F(o.X, "X-Coordinate of Reference Point"),
		F(o.Y, "Y-Coordinate of Reference Point"),
		F(o.Z, "Z-Coordinate of Reference Point"),
	}
}

// ZoneHVACPackagedTerminalAirConditioner is a single-zone PTAC, used
// for ResidentialMulti/Hotel buildings (no central airloop).
type ZoneHVACPackagedTerminalAirConditioner struct {
	UnitName             string
	AvailabilitySchedule string
	ZoneName             string
	AirInletNode         string
	AirOutletNode        string
}

func (o ZoneHVACPackagedTerminalAirConditioner) Kind() string {
	return "ZoneHVAC:PackagedTerminalAirConditioner"
}
func (o ZoneHVACPackagedTerminalAirConditioner) Name() string { return o.UnitName }
func (o ZoneHVACPackagedTerminalAirConditioner) Fields() []Field {
	return []Field{
		F(o.UnitName, "Name"),
		F(o.AvailabilitySchedule, "Availability Schedule Name"),
		F(o.AirInletNode, "Air Inlet Node Name"),
		F(o.AirOutletNode, "Air Outlet Node Name"),
		F(Autosize{}, "Supply Air Flow Rate During Cooling Operation"),
	}
}

// ZoneHVACIdealLoadsAirSystem bypasses the full HVAC graph for
// load-only studies, one per zone.
type ZoneHVACIdealLoadsAirSystem struct {
	SystemName         string
	ZoneSupplyAirNode  string
	ZoneExhaustAirNode string
}

func (o ZoneHVACIdealLoadsAirSystem) Kind() string { return "ZoneHVAC:IdealLoadsAirSystem" }
func (o ZoneHVACIdealLoadsAirSystem) Name() string { return o.SystemName }
func (o ZoneHVACIdealLoadsAirSystem) Fields() []Field {
	return []Field{
		F(o.SystemName, "Name"),
		F("", "Availability Schedule Name"),
		F(o.ZoneSupplyAirNode, "Zone Supply Air Node Name"),
		F(o.ZoneExhaustAirNode, "Zone Exhaust Air Node Name"),
	}
}

// FanConstantVolume is the constant-volume supply fan used by rooftop
// unit systems.
type FanConstantVolume struct {
	FanName              string
	AvailabilitySchedule string
	PressureRisePa       float64
	InletNode            string
	OutletNode           string
}

func (o FanConstantVolume) Kind() string { return "Fan:ConstantVolume" }
func (o FanConstantVolume) Name() string { return o.FanName }
func (o FanConstantVolume) Fields() []Field {
	return []Field{
		F(o.FanName, "Name"),
		F(o.AvailabilitySchedule, "Availability Schedule Name"),
		F(0.7, "Fan Total Efficiency"),
		F(o.PressureRisePa, "Pressure Rise"),
		F(Autosize{}, "Maximum Flow Rate"),
		F(o.InletNode, "Air Inlet Node Name"),
		F(o.OutletNode, "Air Outlet Node Name"),
	}
}

// CoilCoolingWater is the chilled-water cooling coil used by
// chilled-water systems.
type CoilCoolingWater struct {
	CoilName             string
	AvailabilitySchedule string
	InletNode            string
	OutletNode           string
}

func (o CoilCoolingWater) Kind() string { return "Coil:Cooling:Water" }
func (o CoilCoolingWater) Name() string { return o.CoilName }
func (o CoilCoolingWater) Fields() []Field {
	return []Field{
		F(o.CoilName, "Name"),
		F(o.AvailabilitySchedule, "Availability Schedule Name"),
		F(Autosize{}, "Design Water Flow Rate"),
		F(Autosize{}, "Design Air Flow Rate"),
		F(Autosize{}, "Design Inlet Water Temperature"),
		F(Autosize{}, "Design Inlet Air Temperature"),
		F(Autosize{}, "Design Outlet Air Temperature"),
		F(o.InletNode, "Air Inlet Node Name"),
		F(o.OutletNode, "Air Outlet Node Name"),
	}
}

// AirTerminalSingleDuctConstantVolumeNoReheat is the per-zone terminal
// for constant-volume systems (RTU, chilled water).
type AirTerminalSingleDuctConstantVolumeNoReheat struct {
	TerminalName         string
	AvailabilitySchedule string
	AirInletNode         string
	AirOutletNode        string
}

func (o AirTerminalSingleDuctConstantVolumeNoReheat) Kind() string {
	return "AirTerminal:SingleDuct:ConstantVolume:NoReheat"
}
func (o AirTerminalSingleDuctConstantVolumeNoReheat) Name() string { return o.TerminalName }
func (o AirTerminalSingleDuctConstantVolumeNoReheat) Fields() []Field {
	return []Field{
		F(o.TerminalName, "Name"),
		F(o.AvailabilitySchedule, "Availability Schedule Name"),
		F(o.AirInletNode, "Air Inlet Node Name"),
		F(o.AirOutletNode, "Air Outlet Node Name"),
		F(Autosize{}, "Maximum Air Flow Rate"),
	}
}

// ZoneHVACPackagedTerminalHeatPump is a single-zone packaged heat
// pump, used for single-family residential buildings.
type ZoneHVACPackagedTerminalHeatPump struct {
	UnitName             string
	AvailabilitySchedule string
	ZoneName             string
	AirInletNode         string
	AirOutletNode        string
}

func (o ZoneHVACPackagedTerminalHeatPump) Kind() string {
	return "ZoneHVAC:PackagedTerminalHeatPump"
}
func (o ZoneHVACPackagedTerminalHeatPump) Name() string { return o.UnitName }
func (o ZoneHVACPackagedTerminalHeatPump) Fields() []Field {
	return []Field{
		F(o.UnitName, "Name"),
		F(o.AvailabilitySchedule, "Availability Schedule Name"),
		F(o.AirInletNode, "Air Inlet Node Name"),
		F(o.AirOutletNode, "Air Outlet Node Name"),
		F(Autosize{}, "Supply Air Flow Rate During Cooling Operation"),
	}
}
