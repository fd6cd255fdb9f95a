// Package pipeline implements the orchestrator (C8): for one resolved
// address it drives parameter resolution, geometry, loads and
// schedules, HVAC topology, validation, and emission, and returns the
// IDF text with a structured report. Each stage is fallible and
// non-retryable; the orchestrator short-circuits on the first error
// and never returns partial IDF text.
package pipeline

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"idfgen/config"
	"idfgen/defaults"
	"idfgen/geometry"
	"idfgen/hvac"
	"idfgen/idf"
	"idfgen/idferrors"
	"idfgen/loads"
	"idfgen/metrics"
	"idfgen/model"
	"idfgen/params"
	"idfgen/validate"
)

// Generator drives the synthesis pipeline. It is safe to share across
// goroutines: the defaults library and config are read-only, and every
// Run owns its model arena.
type Generator struct {
	cfg     *config.Config
	lib     *defaults.Library
	logger  *zap.Logger
	metrics *metrics.Collector
}

// New builds a Generator. collector may be nil when metrics are
// disabled.
func New(cfg *config.Config, lib *defaults.Library, logger *zap.Logger, collector *metrics.Collector) *Generator {
	return &Generator{cfg: cfg, lib: lib, logger: logger, metrics: collector}
}

// Output is the result of one successful generation.
type Output struct {
	RunID     string
	IDFText   string
	SHA256    string
	Report    model.Report
	CHP       *hvac.CHPAnnotation
	Durations map[string]time.Duration
}

// Run generates one IDF. site may be nil when the caller has no
// resolved site; resolution then relies on user input and defaults
// alone. Cancellation is checked between stages; a canceled context
// discards the in-memory model and returns ctx.Err().
func (g *Generator) Run(ctx context.Context, user params.UserInput, site *model.Site) (*Output, error) {
	runID := uuid.NewString()
	log := g.logger.With(zap.String("run_id", runID))
	durations := make(map[string]time.Duration)

	fail := func(err error) (*Output, error) {
		idferrors.Log(log, err)
		if g.metrics != nil {
			kind := "unknown"
			if e, ok := err.(*idferrors.Error); ok {
				kind = string(e.Kind)
			}
			g.metrics.GenerationFailed(kind)
		}
		return nil, err
	}

	stage := func(name string, f func() error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		start := time.Now()
		err := f()
		durations[name] = time.Since(start)
		if g.metrics != nil {
			g.metrics.ObserveStage(name, durations[name])
		}
		return err
	}

	b := model.NewBuilding()
	if site != nil {
		b.Site = *site
	}

	var rec defaults.Record
	if err := stage("resolve", func() error {
		bp, err := params.Resolve(user, site, g.lib)
		if err != nil {
			return err
		}
		b.Params = bp
		rec = g.lib.Resolve(bp.BuildingType, b.Site.ClimateZone, bp.YearBuilt, bp.RetrofitYear, bp.LEEDLevel)
		b.Seed = geometry.SeedFor(bp, g.cfg.Determinism.SeedSalt)
		return nil
	}); err != nil {
		return fail(err)
	}

	if err := stage("geometry", func() error {
		r := geometry.NewRand(b.Seed)
		res, err := geometry.Generate(b.Params, site, rec, g.cfg.Geometry, r)
		if err != nil {
			return err
		}
		b.Footprint = res.Footprint
		b.Zones = res.Zones
		b.Surfaces = res.Surfaces
		b.Fenestrations = res.Fenestrations
		b.Materials, b.Constructions = defaults.BuildConstructions(rec.Constructions)
		registerNames(b)
		return nil
	}); err != nil {
		return fail(err)
	}

	if err := stage("loads", func() error {
		ld, inf, sch := loads.BuildLoads(b.Zones, rec, false)
		b.Loads = ld
		b.Infiltrations = inf
		b.Schedules = sch
		return nil
	}); err != nil {
		return fail(err)
	}

	if err := stage("hvac", func() error {
		res, err := hvac.Generate(b.Zones, b.Params, site, rec, g.cfg.HVAC)
		if err != nil {
			return err
		}
		b.HVACType = res.HVACType
		b.AirLoops = res.AirLoops
		b.PTACUnits = res.PTACUnits
		b.Daylighting = res.Daylighting
		return nil
	}); err != nil {
		return fail(err)
	}

	var warnings []model.Warning
	if err := stage("validate", func() error {
		res := validate.Run(b, rec)
		for _, w := range res.Warnings {
			warnings = append(warnings, model.Warning{Code: w.Code, Object: w.Object, Message: w.Message})
			if g.metrics != nil {
				g.metrics.Warning(w.Code)
			}
		}
		if !res.OK() {
			return res.Errors[0]
		}
		return nil
	}); err != nil {
		return fail(err)
	}

	var text string
	if err := stage("emit", func() error {
		m := assemble(b, rec, g.cfg.HVAC)
		emitted, err := idf.Emit(m)
		if err != nil {
			return err
		}
		text = header(b, g.lib.Version()) + emitted
		return nil
	}); err != nil {
		return fail(err)
	}

	sum := sha256.Sum256([]byte(text))
	out := &Output{
		RunID:   runID,
		IDFText: text,
		SHA256:  hex.EncodeToString(sum[:]),
		Report: model.Report{
			Warnings: warnings,
			Stats:    statsFor(b),
		},
		CHP:       hvac.CHPFor(b.Params, g.cfg.HVAC),
		Durations: durations,
	}

	if g.metrics != nil {
		g.metrics.GenerationSucceeded(len(b.Zones), len(text))
	}
	log.Info("generation complete",
		zap.Int("zones", out.Report.Stats.NZones),
		zap.Int("surfaces", out.Report.Stats.NSurfaces),
		zap.Float64("floor_area_m2", out.Report.Stats.TotalFloorAreaM2),
		zap.String("sha256", out.SHA256),
	)
	return out, nil
}

// header prefixes the IDF with the weather-file reference and the
// defaults-library version. Both lines are IDF comments; neither
// varies for identical inputs, preserving byte-identical reruns.
func header(b *model.Building, libVersion string) string {
	s := "! Generated by idfgen\n"
	s += "! Defaults library: " + libVersion + "\n"
	if b.Site.WeatherFile != "" {
		s += "! Weather file: " + b.Site.WeatherFile + "\n"
	}
	return s + "\n"
}

// registerNames records every named object in the per-model name
// table; duplicates surface later as reference errors during
// validation rather than silently shadowing each other.
func registerNames(b *model.Building) {
	for _, z := range b.Zones {
		b.Names.Register("Zone", z.Name)
	}
	for _, s := range b.Surfaces {
		b.Names.Register("Surface", s.Name)
	}
	for _, f := range b.Fenestrations {
		b.Names.Register("Fenestration", f.Name)
	}
	for _, m := range b.Materials {
		b.Names.Register("Material", m.Name)
	}
	for _, c := range b.Constructions {
		b.Names.Register("Construction", c.Name)
	}
}

func statsFor(b *model.Building) model.Stats {
	var area float64
	for _, z := range b.Zones {
		area += z.AreaM2
	}
	nHVAC := len(b.PTACUnits) + len(b.Daylighting)
	for _, loop := range b.AirLoops {
		// loop object + supply components + per-zone terminal/ADU
		// pairs + controllers.
		nHVAC += 4 + 2*len(loop.Terminals)
		if loop.OAController != nil {
			nHVAC++
		}
		if loop.MechVentController != nil {
			nHVAC++
		}
		if loop.SetpointManager != nil {
			nHVAC++
		}
		if loop.ERV != nil {
			nHVAC++
		}
		nHVAC++
	}
	return model.Stats{
		NZones:           len(b.Zones),
		NSurfaces:        len(b.Surfaces),
		NHVACObjects:     nHVAC,
		TotalFloorAreaM2: area,
	}
}
