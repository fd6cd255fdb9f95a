package hvac

import (
	"idfgen/config"
	"idfgen/model"
)

// CHPAnnotation is the cogeneration note carried on the pipeline
// report for the external post-processor. Cogeneration is not modeled
// inside the IDF graph; the post-processor reduces the
// reported grid electricity by ProvidesPercent.
type CHPAnnotation struct {
	CapacityKW      float64
	ProvidesPercent float64
}

// CHPFor derives the annotation from the resolved parameters, clamping
// the provides-percent into the configured band. Returns nil when the
// building has no CHP.
func CHPFor(bp model.BuildingParameters, cfg config.HVACConfig) *CHPAnnotation {
	if bp.CHPCapacityKW == nil || *bp.CHPCapacityKW <= 0 {
		return nil
	}
	pct := 50.0
	if bp.CHPProvidesPercent != nil {
		pct = *bp.CHPProvidesPercent
	}
	return &CHPAnnotation{
		CapacityKW:      *bp.CHPCapacityKW,
		ProvidesPercent: clamp(pct, cfg.CHPProvidesPercentMin, cfg.CHPProvidesPercentMax),
	}
}
