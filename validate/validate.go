// Package validate implements the pre-emit validator (C7). It runs
// four layers over the populated model arena — syntactic, reference,
// topological, physical — and returns the blocking errors and
// non-blocking warnings separately. Errors block emit; warnings ride
// along on the pipeline report.
package validate

import (
	"fmt"

	"idfgen/defaults"
	"idfgen/idferrors"
	"idfgen/model"
)

// Result carries everything the validator found.
type Result struct {
	Errors   []*idferrors.Error
	Warnings []idferrors.Warning
}

// OK reports whether emit may proceed.
func (r Result) OK() bool { return len(r.Errors) == 0 }

// Run executes all four validation layers against b. rec is the
// defaults record the building was generated from; the physical layer
// compares load densities against it.
func Run(b *model.Building, rec defaults.Record) Result {
	var res Result

	res.syntactic(b)
	res.references(b)
	res.topology(b)
	res.physical(b, rec)

	return res
}

func (r *Result) errorf(kind idferrors.Kind, object, field, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	switch kind {
	case idferrors.Reference:
		r.Errors = append(r.Errors, idferrors.NewReferenceError(object, field, msg))
	case idferrors.Topology:
		r.Errors = append(r.Errors, idferrors.NewTopologyError(object, msg))
	case idferrors.Geometry:
		r.Errors = append(r.Errors, idferrors.NewGeometryError(object, msg))
	default:
		r.Errors = append(r.Errors, idferrors.NewFieldError(object, field, msg))
	}
}

func (r *Result) warnf(code, object, format string, args ...interface{}) {
	r.Warnings = append(r.Warnings, idferrors.Warning{
		Code:    code,
		Object:  object,
		Message: fmt.Sprintf(format, args...),
	})
}

// syntactic checks that zones and surfaces carry their names, a
// positive area and (for surfaces) a construction, that no window
// covers more than 0.95 of its wall, and that every schedule covers
// the full year. Numeric plausibility ranges are the physical layer's.
func (r *Result) syntactic(b *model.Building) {
	for _, z := range b.Zones {
		if z.Name == "" {
			r.errorf(idferrors.Field, "Zone", "Name", "zone has empty name")
		}
		if z.AreaM2 <= 0 {
			r.errorf(idferrors.Geometry, z.Name, "Area", "zone area must be > 0, got %g", z.AreaM2)
		}
		if len(z.Polygon) < 3 {
			r.errorf(idferrors.Geometry, z.Name, "Polygon", "zone polygon has %d vertices, need >= 3", len(z.Polygon))
		}
	}
	for _, s := range b.Surfaces {
		if s.Name == "" {
			r.errorf(idferrors.Field, "Surface", "Name", "surface has empty name")
		}
		if s.AreaM2 <= 0 {
			r.errorf(idferrors.Geometry, s.Name, "Area", "surface has zero area")
		}
		if s.Construction == "" {
			r.errorf(idferrors.Field, s.Name, "Construction", "surface missing construction reference")
		}
	}
	for _, f := range b.Fenestrations {
		if f.AreaFraction > 0.95 {
			r.errorf(idferrors.Field, f.Name, "AreaFraction",
				"fenestration covers %.2f of its parent surface, max 0.95", f.AreaFraction)
		}
	}
	for _, sch := range b.Schedules {
		r.checkScheduleCoverage(sch)
	}
}

// checkScheduleCoverage confirms the schedule's periods cover the full
// year with no gap at either end. Periods are emitted as "Through"
// blocks, so coverage means the latest end date is Dec 31 and the
// earliest start is Jan 1.
func (r *Result) checkScheduleCoverage(sch model.Schedule) {
	if len(sch.Periods) == 0 {
		r.errorf(idferrors.Field, sch.Name, "Periods", "schedule has no periods")
		return
	}
	startsJan1 := false
	endsDec31 := false
	for _, p := range sch.Periods {
		if p.StartMonth == 1 && p.StartDay == 1 {
			startsJan1 = true
		}
		if p.EndMonth == 12 && p.EndDay == 31 {
			endsDec31 = true
		}
	}
	if !startsJan1 || !endsDec31 {
		r.errorf(idferrors.Field, sch.Name, "Periods", "schedule does not cover the full year")
	}
}

// references checks that every name reference resolves to an object of
// the expected kind.
func (r *Result) references(b *model.Building) {
	zones := make(map[string]bool, len(b.Zones))
	for _, z := range b.Zones {
		zones[z.Name] = true
	}
	surfaces := make(map[string]bool, len(b.Surfaces))
	for _, s := range b.Surfaces {
		surfaces[s.Name] = true
	}
	materials := make(map[string]bool, len(b.Materials))
	for _, m := range b.Materials {
		materials[m.Name] = true
	}
	constructions := make(map[string]bool, len(b.Constructions))
	for _, c := range b.Constructions {
		constructions[c.Name] = true
	}
	schedules := make(map[string]bool, len(b.Schedules))
	for _, s := range b.Schedules {
		schedules[s.Name] = true
	}

	for _, c := range b.Constructions {
		for _, layer := range c.Layers {
			if !materials[layer] {
				r.errorf(idferrors.Reference, c.Name, "Layers", "construction references unknown material %q", layer)
			}
		}
	}
	for _, s := range b.Surfaces {
		if !zones[s.Zone] {
			r.errorf(idferrors.Reference, s.Name, "Zone", "surface references unknown zone %q", s.Zone)
		}
		if s.Construction != "" && !constructions[s.Construction] {
			r.errorf(idferrors.Reference, s.Name, "Construction", "surface references unknown construction %q", s.Construction)
		}
	}
	for _, f := range b.Fenestrations {
		if !surfaces[f.Surface] {
			r.errorf(idferrors.Reference, f.Name, "Surface", "fenestration references unknown surface %q", f.Surface)
		}
		if f.Construction != "" && !constructions[f.Construction] {
			r.errorf(idferrors.Reference, f.Name, "Construction", "fenestration references unknown construction %q", f.Construction)
		}
	}
	for _, l := range b.Loads {
		if !zones[l.Zone] {
			r.errorf(idferrors.Reference, l.Name, "Zone", "load references unknown zone %q", l.Zone)
		}
		if l.Schedule != "" && !schedules[l.Schedule] {
			r.errorf(idferrors.Reference, l.Name, "Schedule", "load references unknown schedule %q", l.Schedule)
		}
		if l.ActivitySchedule != "" && !schedules[l.ActivitySchedule] {
			r.errorf(idferrors.Reference, l.Name, "ActivitySchedule", "load references unknown schedule %q", l.ActivitySchedule)
		}
	}
	for _, inf := range b.Infiltrations {
		if !zones[inf.Zone] {
			r.errorf(idferrors.Reference, inf.Name, "Zone", "infiltration references unknown zone %q", inf.Zone)
		}
		if inf.Schedule != "" && !schedules[inf.Schedule] {
			r.errorf(idferrors.Reference, inf.Name, "Schedule", "infiltration references unknown schedule %q", inf.Schedule)
		}
	}
	for _, d := range b.Daylighting {
		if !zones[d.Zone] {
			r.errorf(idferrors.Reference, d.Name, "Zone", "daylighting control references unknown zone %q", d.Zone)
		}
	}
	for _, loop := range b.AirLoops {
		for _, zn := range loop.Zones {
			if !zones[zn] {
				r.errorf(idferrors.Reference, loop.Name, "Zones", "airloop serves unknown zone %q", zn)
			}
		}
		if loop.MechVentController != nil {
			if sch := loop.MechVentController.DCVAvailabilitySchedule; sch != "" && !schedules[sch] {
				r.errorf(idferrors.Reference, loop.MechVentController.Name, "AvailabilitySchedule",
					"DCV availability references unknown schedule %q", sch)
			}
		}
	}
	for _, u := range b.PTACUnits {
		if !zones[u.Zone] {
			r.errorf(idferrors.Reference, u.Name, "Zone", "zone unit references unknown zone %q", u.Zone)
		}
	}
}

// topology checks the HVAC graph invariants and surface adjacency
// reciprocity: every airloop must have reached Validated, every zone
// must be served by exactly one equipment connection, and every
// Surface:<peer> boundary must point back.
func (r *Result) topology(b *model.Building) {
	for _, loop := range b.AirLoops {
		if loop.State != model.Validated {
			r.errorf(idferrors.Topology, loop.Name, "",
				"airloop emitted in state %s, must be Validated", loop.State)
		}
		// The AirLoopHVAC endpoints are shared physical nodes: the
		// demand inlet is the supply outlet and the demand outlet is
		// the supply inlet. A mismatch emits four dangling nodes.
		if loop.Splitter.InletNode != loop.SupplyOutletNode {
			r.errorf(idferrors.Topology, loop.Name, "DemandInletNode",
				"demand inlet %q is not the supply outlet %q", loop.Splitter.InletNode, loop.SupplyOutletNode)
		}
		if loop.Mixer.OutletNode != loop.SupplyInletNode {
			r.errorf(idferrors.Topology, loop.Name, "DemandOutletNode",
				"demand outlet %q is not the supply inlet %q", loop.Mixer.OutletNode, loop.SupplyInletNode)
		}
	}

	served := make(map[string]int)
	for _, loop := range b.AirLoops {
		for _, t := range loop.Terminals {
			served[t.Zone]++
		}
	}
	for _, u := range b.PTACUnits {
		served[u.Zone]++
	}
	for _, z := range b.Zones {
		switch served[z.Name] {
		case 0:
			if b.HVACType != "" {
				r.errorf(idferrors.Topology, z.Name, "", "zone has no HVAC equipment connection")
			}
		case 1:
			// exactly one, as required
		default:
			r.errorf(idferrors.Topology, z.Name, "",
				"zone appears in %d equipment connections, must be exactly 1", served[z.Name])
		}
	}

	peers := make(map[string]string, len(b.Surfaces))
	for _, s := range b.Surfaces {
		if s.Boundary == model.BoundarySurface {
			peers[s.Name] = s.PeerName
		}
	}
	for _, s := range b.Surfaces {
		if s.Boundary != model.BoundarySurface {
			continue
		}
		back, ok := peers[s.PeerName]
		if !ok {
			r.errorf(idferrors.Topology, s.Name, "OutsideBoundary",
				"adjacent surface %q does not declare a Surface boundary back", s.PeerName)
			continue
		}
		if back != s.Name {
			r.errorf(idferrors.Topology, s.Name, "OutsideBoundary",
				"adjacency is not reciprocal: %q points at %q", s.PeerName, back)
		}
	}
}

// physical checks plausibility ranges. Lighting/equipment densities
// outside 0.1x-5x the template default are warnings, not errors.
func (r *Result) physical(b *model.Building, rec defaults.Record) {
	for _, m := range b.Materials {
		if m.ConductivityWmK < 0.01 || m.ConductivityWmK > 400 {
			r.errorf(idferrors.Field, m.Name, "Conductivity",
				"conductivity %g W/m·K outside [0.01, 400]", m.ConductivityWmK)
		}
		if m.DensityKgM3 < 10 || m.DensityKgM3 > 10000 {
			r.errorf(idferrors.Field, m.Name, "Density",
				"density %g kg/m3 outside [10, 10000]", m.DensityKgM3)
		}
		if m.SpecificHeatJkgK < 100 || m.SpecificHeatJkgK > 5000 {
			r.errorf(idferrors.Field, m.Name, "SpecificHeat",
				"specific heat %g J/kg·K outside [100, 5000]", m.SpecificHeatJkgK)
		}
	}
	for _, z := range b.Zones {
		if z.CeilingHeightM < 2.5 || z.CeilingHeightM > 5.0 {
			r.errorf(idferrors.Field, z.Name, "CeilingHeight",
				"ceiling height %g m outside [2.5, 5.0]", z.CeilingHeightM)
		}
		vol := z.AreaM2 * z.CeilingHeightM
		if diff := vol - z.VolumeM3; diff > 1e-6 || diff < -1e-6 {
			r.errorf(idferrors.Geometry, z.Name, "Volume",
				"zone volume %g does not equal area x height %g", z.VolumeM3, vol)
		}
	}
	for i, w := range b.Params.WWR {
		if w < 0 || w > 0.95 {
			r.errorf(idferrors.Field, "BuildingParameters", "WWR",
				"window-to-wall ratio[%d] %g outside [0, 0.95]", i, w)
		}
	}
	for _, inf := range b.Infiltrations {
		if inf.ACH < 0.05 || inf.ACH > 3.0 {
			r.warnf("W-INFIL-ACH", inf.Name, "infiltration %g ACH outside plausible [0.05, 3.0]", inf.ACH)
		}
	}

	tmpl := rec.Template
	for _, l := range b.Loads {
		switch l.Kind {
		case model.LoadLights:
			if tmpl.LightingWm2 > 0 && outsideBand(l.DesignLevelWm2, tmpl.LightingWm2) {
				r.warnf("W-LPD", l.Name, "lighting density %g W/m2 outside 0.1x-5x template default %g",
					l.DesignLevelWm2, tmpl.LightingWm2)
			}
		case model.LoadEquipment:
			if tmpl.EquipmentWm2 > 0 && outsideBand(l.DesignLevelWm2, tmpl.EquipmentWm2) {
				r.warnf("W-EPD", l.Name, "equipment density %g W/m2 outside 0.1x-5x template default %g",
					l.DesignLevelWm2, tmpl.EquipmentWm2)
			}
		}
	}
}

func outsideBand(v, base float64) bool {
	return v < 0.1*base || v > 5*base
}
