// Package hvac implements the HVAC topology engine (C6): it selects a
// system family from the building template, sizes components from zone loads, and
// wires the full node graph — airloops, branches, controllers,
// terminals, and zone equipment — into the typed structures declared
// in package model. This is the highest-risk stage: any missing node
// edge is a fatal simulator error, so the graph is built in a single
// pass and then checked by a second pass before the airloop is allowed
// to reach the Validated state.
package hvac

import (
	"fmt"
	"math"

	"idfgen/config"
	"idfgen/defaults"
	"idfgen/idferrors"
	"idfgen/model"
)

// maxZonesPerAirLoop caps how many zones one AirLoopHVAC serves before
// the engine splits the building into one airloop per floor; this
// keeps branch/splitter/mixer field lists within a sane size for very
// large buildings.
const maxZonesPerAirLoop = 30

// Result is everything C6 hands to the validator (C7) and emitter (C1).
type Result struct {
	HVACType    model.HVACType
	AirLoops    []model.AirLoop
	PTACUnits   []model.PTACUnit
	Daylighting []model.DaylightingControl
}

// Generate runs the full HVAC topology stage for one building. The
// engine decides, per hvacType, whether to build AirLoopHVAC graphs or
// per-zone terminal units.
func Generate(zones []model.Zone, bp model.BuildingParameters, site *model.Site, rec defaults.Record, cfg config.HVACConfig) (Result, error) {
	hvacType := rec.Template.HVACType
	if bp.ForcedHVACType != nil {
		hvacType = *bp.ForcedHVACType
	}

	cz := model.ClimateZone("")
	if site != nil {
		cz = site.ClimateZone
	}

	switch hvacType {
	case model.HVACIdealLoads:
		return Result{HVACType: hvacType, PTACUnits: buildIdealLoads(zones)}, nil
	case model.HVACPTAC:
		return Result{HVACType: hvacType, PTACUnits: buildZonalUnits(zones, "ZoneHVAC:PackagedTerminalAirConditioner")}, nil
	case model.HVACHeatPump:
		return Result{HVACType: hvacType, PTACUnits: buildZonalUnits(zones, "ZoneHVAC:PackagedTerminalHeatPump")}, nil
	case model.HVACVAV, model.HVACRTU, model.HVACChilledWater:
		return buildCentralSystem(zones, bp, cz, rec, cfg, hvacType)
	default:
		return Result{}, idferrors.NewTopologyError("HVACType", fmt.Sprintf("unrecognized HVAC type %q", hvacType))
	}
}

func buildIdealLoads(zones []model.Zone) []model.PTACUnit {
	units := make([]model.PTACUnit, 0, len(zones))
	for _, z := range zones {
		units = append(units, model.PTACUnit{
			Name:       z.Name + "_IdealLoads",
			Kind:       "ZoneHVAC:IdealLoadsAirSystem",
			Zone:       z.Name,
			InletNode:  model.Node(z.Name + "_Exhaust"),
			OutletNode: model.Node(z.Name + "_SupplyIn"),
		})
	}
	return units
}

func buildZonalUnits(zones []model.Zone, kind string) []model.PTACUnit {
	units := make([]model.PTACUnit, 0, len(zones))
	for _, z := range zones {
		units = append(units, model.PTACUnit{
			Name:       z.Name + "_Unit",
			Kind:       kind,
			Zone:       z.Name,
			InletNode:  model.Node(z.Name + "_ReturnIn"),
			OutletNode: model.Node(z.Name + "_SupplyIn"),
		})
	}
	return units
}

// buildCentralSystem groups zones into one or more airloops (splitting
// by floor once a single loop would exceed maxZonesPerAirLoop), builds
// each loop's full graph, and collects eligible daylighting controls.
func buildCentralSystem(zones []model.Zone, bp model.BuildingParameters, cz model.ClimateZone, rec defaults.Record, cfg config.HVACConfig, hvacType model.HVACType) (Result, error) {
	groups := groupZonesForAirLoops(zones)

	var loops []model.AirLoop
	for gi, group := range groups {
		name := fmt.Sprintf("AirLoop%d", gi+1)
		if len(groups) == 1 {
			name = "AirLoop1"
		}
		loop, err := buildAirLoop(name, group, bp, cz, rec, cfg, hvacType)
		if err != nil {
			return Result{}, err
		}
		loops = append(loops, loop)
	}

	daylighting := buildDaylighting(zones, bp.BuildingType)

	return Result{
		HVACType:    hvacType,
		AirLoops:    loops,
		Daylighting: daylighting,
	}, nil
}

// groupZonesForAirLoops partitions zones by floor when the whole
// building would otherwise exceed maxZonesPerAirLoop on one loop; each
// floor's zones stay contiguous so airloop names correspond to a
// physical grouping a reviewer can reason about.
func groupZonesForAirLoops(zones []model.Zone) [][]model.Zone {
	if len(zones) <= maxZonesPerAirLoop {
		return [][]model.Zone{zones}
	}
	byFloor := map[int][]model.Zone{}
	var floors []int
	for _, z := range zones {
		if _, ok := byFloor[z.FloorIndex]; !ok {
			floors = append(floors, z.FloorIndex)
		}
		byFloor[z.FloorIndex] = append(byFloor[z.FloorIndex], z)
	}
	// floors collected in zone order, which Generate (C4) already
	// constructs story-by-story, so no sort is needed for determinism.
	var groups [][]model.Zone
	for _, f := range floors {
		groups = append(groups, byFloor[f])
	}
	return groups
}

// sizeSupplyFlow returns the total supply air design flow for a zone
// group, per the sizing rule: area x 0.005 m3/s per m2.
func sizeSupplyFlow(zones []model.Zone, cfg config.HVACConfig) float64 {
	total := 0.0
	for _, z := range zones {
		total += z.AreaM2 * cfg.SupplyAirM3sm2
	}
	return total
}

// ZoneCoolingLoadW and ZoneHeatingLoadW expose the per-zone design
// load rule: area times the configured W/m2 factor. Capacities in the
// emitted graph stay autosize; these figures feed reporting and any
// caller doing its own equipment selection.
func ZoneCoolingLoadW(z model.Zone, cfg config.HVACConfig) float64 {
	return z.AreaM2 * cfg.CoolingWm2
}

func ZoneHeatingLoadW(z model.Zone, cfg config.HVACConfig) float64 {
	return z.AreaM2 * cfg.HeatingWm2
}

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
