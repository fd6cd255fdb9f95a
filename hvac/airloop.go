package hvac

import (
	"idfgen/config"
	"idfgen/defaults"
	"idfgen/idferrors"
	"idfgen/model"
)

// buildAirLoop constructs one complete AirLoopHVAC graph for a zone
// group, advancing the airloop through the one-way state machine:
// components are created first, then nodes wired, then
// controllers attached, then zones connected, and finally the whole
// graph is topology-checked. A failure at any step discards the
// partially built loop — the caller never sees an airloop in an
// intermediate state.
func buildAirLoop(name string, zones []model.Zone, bp model.BuildingParameters, cz model.ClimateZone, rec defaults.Record, cfg config.HVACConfig, hvacType model.HVACType) (model.AirLoop, error) {
	loop := model.AirLoop{Name: name, State: model.Unallocated}
	for _, z := range zones {
		loop.Zones = append(loop.Zones, z.Name)
	}

	if err := createComponents(&loop, rec, hvacType); err != nil {
		return model.AirLoop{}, err
	}
	if err := wireNodes(&loop, cz, cfg); err != nil {
		return model.AirLoop{}, err
	}
	if err := attachControllers(&loop, bp, cz, zones, cfg, hvacType); err != nil {
		return model.AirLoop{}, err
	}
	if err := connectZones(&loop, zones, hvacType); err != nil {
		return model.AirLoop{}, err
	}
	if err := validateTopology(&loop); err != nil {
		return model.AirLoop{}, err
	}
	return loop, nil
}

// advance moves loop to next or fails; transitions are one-way and
// single-step, so a coding error that skips a stage is caught here
// rather than surfacing as a malformed graph downstream.
func advance(loop *model.AirLoop, next model.AirLoopState) error {
	if !loop.State.CanAdvanceTo(next) {
		return idferrors.NewTopologyError(loop.Name,
			"illegal airloop state transition "+loop.State.String()+" -> "+next.String())
	}
	loop.State = next
	return nil
}

// createComponents allocates the supply-side equipment for the chosen
// system family. VAV and RTU share the DX/electric packaged chain
// (RTU swaps the variable-volume fan for constant volume); the
// chilled-water family replaces the DX coil with a water coil.
func createComponents(loop *model.AirLoop, rec defaults.Record, hvacType model.HVACType) error {
	fanKind := "Fan:VariableVolume"
	coolKind := "Coil:Cooling:DX:SingleSpeed"
	switch hvacType {
	case model.HVACRTU:
		fanKind = "Fan:ConstantVolume"
	case model.HVACChilledWater:
		coolKind = "Coil:Cooling:Water"
	}

	loop.OAMixer = model.Component{Name: loop.Name + "_OAMixer", Kind: "OutdoorAir:Mixer"}
	loop.Fan = model.Component{Name: loop.Name + "_Fan", Kind: fanKind}
	loop.CoolCoil = model.Component{Name: loop.Name + "_CoolingCoil", Kind: coolKind}
	loop.HeatCoil = model.Component{Name: loop.Name + "_HeatingCoil", Kind: "Coil:Heating:Electric"}
	return advance(loop, model.ComponentsCreated)
}

// wireNodes names every connection point on the supply side and chains
// the equipment in duct order: OA mixer -> fan -> cooling coil ->
// heating coil -> supply outlet. Each node name is produced by exactly
// one component outlet and consumed by exactly one inlet; the ERV,
// when the climate calls for one, splices into the outdoor-air and
// relief paths without disturbing the main chain.
func wireNodes(loop *model.AirLoop, cz model.ClimateZone, cfg config.HVACConfig) error {
	n := loop.Name
	loop.SupplyInletNode = model.Node(n + "_SupplyInlet")
	loop.SupplyOutletNode = model.Node(n + "_SupplyOutlet")
	loop.ReturnNode = loop.SupplyInletNode
	loop.MixedAirNode = model.Node(n + "_MixedAir")
	loop.ReliefNode = model.Node(n + "_Relief")
	loop.OANode = model.Node(n + "_OAInlet")

	loop.OAMixer.InletNode = loop.ReturnNode
	loop.OAMixer.OutletNode = loop.MixedAirNode
	loop.Fan.InletNode = loop.MixedAirNode
	loop.Fan.OutletNode = model.Node(n + "_FanOutlet")
	loop.CoolCoil.InletNode = loop.Fan.OutletNode
	loop.CoolCoil.OutletNode = model.Node(n + "_CoolCoilOutlet")
	loop.HeatCoil.InletNode = loop.CoolCoil.OutletNode
	loop.HeatCoil.OutletNode = loop.SupplyOutletNode

	if wantsERV(cz, cfg) {
		loop.ERV = &model.ERV{
			Name:                  n + "_ERV",
			SensibleEffectiveness: cfg.ERVSensibleEffectiveness,
			LatentEffectiveness:   cfg.ERVLatentEffectiveness,
			SupplyInletNode:       model.Node(n + "_OAIntake"),
			SupplyOutletNode:      loop.OANode,
			ExhaustInletNode:      loop.ReliefNode,
			ExhaustOutletNode:     model.Node(n + "_ReliefExhaust"),
		}
	}

	loop.Branch = model.Branch{
		Name:     n + "_SupplyBranch",
		ListName: n + "_Branches",
		Components: []model.Component{
			loop.OAMixer, loop.Fan, loop.CoolCoil, loop.HeatCoil,
		},
	}
	return advance(loop, model.NodesWired)
}

// connectZones builds the demand side: a splitter fanning out to one
// terminal per zone, each wrapped in an air distribution unit, and a
// mixer collecting the zone returns. VAV zones get reheat terminals;
// RTU and chilled-water zones get constant-volume no-reheat terminals.
// The loop endpoints are shared physical nodes: the supply outlet IS
// the demand inlet (air leaving the AHU enters the splitter), and the
// demand outlet IS the supply inlet (mixed return air re-enters the
// AHU) — four distinct names here would be four dangling nodes in the
// emitted AirLoopHVAC.
func connectZones(loop *model.AirLoop, zones []model.Zone, hvacType model.HVACType) error {
	n := loop.Name
	terminalKind := "AirTerminal:SingleDuct:VAV:Reheat"
	if hvacType != model.HVACVAV {
		terminalKind = "AirTerminal:SingleDuct:ConstantVolume:NoReheat"
	}

	loop.Splitter = model.Splitter{
		Name:      n + "_Splitter",
		InletNode: loop.SupplyOutletNode,
	}
	loop.Mixer = model.Mixer{
		Name:       n + "_ReturnMixer",
		OutletNode: loop.SupplyInletNode,
	}

	for _, z := range zones {
		t := model.Terminal{
			Name:            z.Name + "_Terminal",
			ADUName:         z.Name + "_ADU",
			Kind:            terminalKind,
			Zone:            z.Name,
			InletNode:       model.Node(z.Name + "_TerminalInlet"),
			OutletNode:      model.Node(z.Name + "_SupplyInlet"),
			ZoneInletNode:   model.Node(z.Name + "_SupplyInlet"),
			ZoneExhaustNode: model.Node(z.Name + "_Return"),
		}
		if terminalKind == "AirTerminal:SingleDuct:VAV:Reheat" {
			t.ReheatCoil = &model.Component{
				Name:       z.Name + "_ReheatCoil",
				Kind:       "Coil:Heating:Electric",
				InletNode:  model.Node(z.Name + "_ReheatInlet"),
				OutletNode: t.OutletNode,
			}
		}
		loop.Splitter.Outlets = append(loop.Splitter.Outlets, t.InletNode)
		loop.Mixer.Inlets = append(loop.Mixer.Inlets, t.ZoneExhaustNode)
		loop.Terminals = append(loop.Terminals, t)
	}
	return advance(loop, model.ZonesConnected)
}

// wantsERV reports whether the climate zone is in the configured ERV
// set. The moderate zones C4/C5 are absent from the default set, so
// buildings there never get a heat exchanger.
func wantsERV(cz model.ClimateZone, cfg config.HVACConfig) bool {
	if cz == "" {
		return false
	}
	for _, z := range cfg.ERVClimateZones {
		if model.ClimateZone(z) == cz {
			return true
		}
	}
	return false
}
