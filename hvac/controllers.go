package hvac

import (
	"fmt"

	"idfgen/config"
	"idfgen/defaults"
	"idfgen/model"
)

// attachControllers adds the Controller:OutdoorAir,
// Controller:MechanicalVentilation, and SetpointManager:OutdoorAirReset
// objects to an airloop whose nodes are already wired.
func attachControllers(loop *model.AirLoop, bp model.BuildingParameters, cz model.ClimateZone, zones []model.Zone, cfg config.HVACConfig, hvacType model.HVACType) error {
	loop.OAController = &model.OAController{
		Name:            loop.Name + "_OAController",
		Economizer:      economizerFor(cz, cfg),
		ReturnNode:      loop.ReturnNode,
		MixedAirNode:    loop.MixedAirNode,
		ActuatorNode:    loop.OANode,
		ReliefNode:      loop.ReliefNode,
		MinFlowAutosize: true,
		MaxFlowAutosize: true,
	}

	if dcvEligible(bp.BuildingType, hvacType, cfg) {
		loop.MechVentController = &model.MechVentController{
			Name:                    loop.Name + "_MechVent",
			OAControllerName:        loop.OAController.Name,
			DCVEnabled:              true,
			DCVAvailabilitySchedule: occupancyScheduleFor(zones),
		}
	}

	loop.SetpointManager = &model.SetpointManager{
		Name:        loop.Name + "_SupplyReset",
		ControlNode: loop.SupplyOutletNode,
		ClimateZone: cz,
	}

	return advance(loop, model.ControllersAttached)
}

// economizerFor picks the economizer control type: differential
// enthalpy in the humid climates listed in config (C1/C2/C5 by
// default), differential dry bulb everywhere else.
func economizerFor(cz model.ClimateZone, cfg config.HVACConfig) model.EconomizerType {
	for _, z := range cfg.HumidEconomizerZones {
		if model.ClimateZone(z) == cz {
			return model.EconomizerDifferentialEnthalpy
		}
	}
	return model.EconomizerDifferentialDryBulb
}

// dcvEligible reports whether demand controlled ventilation applies:
// the building type must be in the configured DCV set and the system
// must be VAV or RTU. PTAC and heat-pump systems never host DCV; the
// archived design docs disagreed on PTAC, and the resolution recorded
// in DESIGN.md excludes it pending domain review.
func dcvEligible(bt model.BuildingType, hvacType model.HVACType, cfg config.HVACConfig) bool {
	if hvacType != model.HVACVAV && hvacType != model.HVACRTU {
		return false
	}
	for _, t := range cfg.DCVBuildingTypes {
		if model.BuildingType(t) == bt {
			return true
		}
	}
	return false
}

// occupancyScheduleFor returns the DCV availability schedule: the
// occupancy schedule of the first served zone. All zones on one loop
// share a building template, so any zone's schedule is representative.
func occupancyScheduleFor(zones []model.Zone) string {
	if len(zones) == 0 {
		return ""
	}
	return fmt.Sprintf("Occupancy_%s", zones[0].SpaceType)
}

// resetCurveFor returns the outdoor-air-reset endpoints (setpoint at
// outdoor low, setpoint at outdoor high, in °C) for the supply-air
// setpoint manager. Cold climates reset across a wider band.
func resetCurveFor(cz model.ClimateZone) (setpointAtLow, setpointAtHigh float64) {
	switch cz {
	case model.C6, model.C7, model.C8:
		return 16.0, 12.0
	case model.C1, model.C2:
		return 14.0, 12.5
	default:
		return 15.0, 12.8
	}
}

// ResetCurve exposes resetCurveFor to the emitter assembly stage,
// which needs the numeric endpoints when serializing the setpoint
// manager.
func ResetCurve(cz model.ClimateZone) (setpointAtLow, outdoorLow, setpointAtHigh, outdoorHigh float64) {
	lo, hi := resetCurveFor(cz)
	return lo, 0.0, hi, 21.0
}

// SizeSupplyFlow exposes the zone-group supply flow sizing rule to the
// assembly stage for the AirLoopHVAC design flow field.
func SizeSupplyFlow(zones []model.Zone, cfg config.HVACConfig) float64 {
	return sizeSupplyFlow(zones, cfg)
}

// FanPressureRise returns the sized fan pressure rise for a record,
// guarding against a zero-valued efficiencies bundle.
func FanPressureRise(eff defaults.HVACEfficiencies) float64 {
	if eff.FanPressureRisePa <= 0 {
		return 500.0
	}
	return eff.FanPressureRisePa
}
