package model

// Node is a named connection point between HVAC components. A node
// name must appear exactly once as a component outlet and
// exactly once as a component inlet (Controller/branch list references
// are exempt from the once-each rule; they point at nodes, they don't
// produce or consume them).
type Node string

// AirLoopState is one state in the airloop construction state
// machine. Transitions are one-way.
type AirLoopState int

const (
	Unallocated AirLoopState = iota
	ComponentsCreated
	NodesWired
	ControllersAttached
	ZonesConnected
	Validated
)

func (s AirLoopState) String() string {
	switch s {
	case Unallocated:
		return "Unallocated"
	case ComponentsCreated:
		return "ComponentsCreated"
	case NodesWired:
		return "NodesWired"
	case ControllersAttached:
		return "ControllersAttached"
	case ZonesConnected:
		return "ZonesConnected"
	case Validated:
		return "Validated"
	default:
		return "Unknown"
	}
}

// CanAdvanceTo reports whether s -> next is a legal one-way transition.
func (s AirLoopState) CanAdvanceTo(next AirLoopState) bool {
	return next == s+1
}

// EconomizerType selects the Controller:OutdoorAir economizer control
// type.
type EconomizerType string

const (
	EconomizerDifferentialDryBulb  EconomizerType = "DifferentialDryBulb"
	EconomizerDifferentialEnthalpy EconomizerType = "DifferentialEnthalpy"
	EconomizerNoEconomizer         EconomizerType = "NoEconomizer"
)

// AirLoop is one AirLoopHVAC and its full supply/demand side graph.
type AirLoop struct {
	Name  string
	State AirLoopState

	Zones []string // zone names served by this airloop

	// Supply side, in duct order.
	OAMixer  Component
	Fan      Component
	CoolCoil Component
	HeatCoil Component

	SupplyInletNode  Node
	SupplyOutletNode Node
	ReturnNode       Node
	MixedAirNode     Node
	ReliefNode       Node
	OANode           Node

	Branch    Branch
	Splitter  Splitter
	Mixer     Mixer
	Terminals []Terminal

	OAController       *OAController
	MechVentController *MechVentController
	SetpointManager    *SetpointManager
	ERV                *ERV
}

// Component is a single named piece of supply-side equipment with an
// inlet and outlet node.
type Component struct {
	Name       string
	Kind       string // e.g. "Fan:VariableVolume", "Coil:Cooling:DX:SingleSpeed"
	InletNode  Node
	OutletNode Node
}

// Branch enumerates one supply-side chain of components for a
// BranchList.
type Branch struct {
	Name       string
	ListName   string
	Components []Component
}

// Splitter fans the supply branch out to per-zone terminal branches.
type Splitter struct {
	Name      string
	InletNode Node
	Outlets   []Node
}

// Mixer merges per-zone return branches back into the return duct.
type Mixer struct {
	Name       string
	OutletNode Node
	Inlets     []Node
}

// Terminal is a zone-level air terminal wrapped in an
// AirDistributionUnit.
type Terminal struct {
	Name            string
	ADUName         string
	Kind            string // e.g. "AirTerminal:SingleDuct:VAV:Reheat"
	Zone            string
	InletNode       Node
	OutletNode      Node
	ZoneInletNode   Node
	ZoneExhaustNode Node
	ReheatCoil      *Component
}

// OAController is a Controller:OutdoorAir.
type OAController struct {
	Name            string
	Economizer      EconomizerType
	ReturnNode      Node
	MixedAirNode    Node
	ActuatorNode    Node
	ReliefNode      Node
	MinFlowAutosize bool
	MaxFlowAutosize bool
}

// MechVentController is a Controller:MechanicalVentilation.
type MechVentController struct {
	Name                    string
	OAControllerName        string
	DCVEnabled              bool
	DCVAvailabilitySchedule string
}

// SetpointManager is a SetpointManager:OutdoorAirReset at the supply
// outlet node.
type SetpointManager struct {
	Name        string
	ControlNode Node
	ClimateZone ClimateZone
}

// ERV is a HeatExchanger:AirToAir:SensibleAndLatent between the return
// and outdoor air paths.
type ERV struct {
	Name                  string
	SensibleEffectiveness float64
	LatentEffectiveness   float64
	SupplyInletNode       Node
	SupplyOutletNode      Node
	ExhaustInletNode      Node
	ExhaustOutletNode     Node
}

// DaylightingControl is a Daylighting:Controls + reference point pair
// for one eligible zone.
type DaylightingControl struct {
	Name                   string
	Zone                   string
	ReferencePointName     string
	FractionControlled     float64
	IlluminanceSetpointLux float64
}

// PTACUnit is a single-zone PTAC/heat-pump/IdealLoads terminal, used
// when the airloop graph is bypassed.
type PTACUnit struct {
	Name       string
	Kind       string // "ZoneHVAC:PackagedTerminalAirConditioner", "ZoneHVAC:IdealLoadsAirSystem", ...
	Zone       string
	InletNode  Node
	OutletNode Node
}

// NameTable is the single per-model, case-insensitive registry of
// object names, keyed by object kind. Every name must be unique within
// its kind and non-empty; references are resolved against it by C7.
type NameTable struct {
	byKind map[string]map[string]bool
}

// NewNameTable returns an empty table.
func NewNameTable() *NameTable {
	return &NameTable{byKind: make(map[string]map[string]bool)}
}

func foldName(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// Register adds name under kind. It reports false if name is empty or
// already registered for that kind.
func (t *NameTable) Register(kind, name string) bool {
	if name == "" {
		return false
	}
	m, ok := t.byKind[kind]
	if !ok {
		m = make(map[string]bool)
		t.byKind[kind] = m
	}
	key := foldName(name)
	if m[key] {
		return false
	}
	m[key] = true
	return true
}

// Resolves reports whether name was registered under kind.
func (t *NameTable) Resolves(kind, name string) bool {
	m, ok := t.byKind[kind]
	if !ok {
		return false
	}
	return m[foldName(name)]
}
