// Package params implements the parameter resolver (C3): it merges a
// partial user-supplied building spec, an optional resolved Site, and
// the defaults library into a fully specified model.BuildingParameters
// record, following the precedence order of
package params

import (
	"math"

	"idfgen/defaults"
	"idfgen/idferrors"
	"idfgen/model"
)

// UserInput is the partial, caller-supplied building spec. Every field
// is optional; nil/zero means "not supplied" and resolution falls
// through to the next precedence tier.
type UserInput struct {
	BuildingType        *model.BuildingType
	Stories             *int
	TotalFloorAreaM2    *float64
	FloorAreaPerStoryM2 *float64
	WWR                 *[4]float64
	YearBuilt           *int
	RetrofitYear        *int
	LEEDLevel           *model.LEEDLevel
	CHPCapacityKW       *float64
	CHPProvidesPercent  *float64
	ForcedHVACType      *model.HVACType
}

const (
	fallbackBuildingType = model.Office
	fallbackStories      = 3
	fallbackTotalAreaM2  = 1000.0
	fallbackWWR          = 0.4

	inconsistencyToleranceFraction = 0.01
)

// Resolve produces a fully specified model.BuildingParameters from
// user, an optional site (nil if the caller has no resolved site), and
// the defaults library. It returns *idferrors.Error (Kind Resolve) on
// invalid or inconsistent input; see the error taxonomy
func Resolve(user UserInput, site *model.Site, lib *defaults.Library) (model.BuildingParameters, error) {
	if user.Stories != nil && *user.Stories < 1 {
		return model.BuildingParameters{}, idferrors.NewResolveError("BuildingParameters.Stories", "stories must be >= 1")
	}
	if user.TotalFloorAreaM2 != nil && *user.TotalFloorAreaM2 <= 0 {
		return model.BuildingParameters{}, idferrors.NewResolveError("BuildingParameters.FloorAreaM2", "floor area must be > 0")
	}
	if user.FloorAreaPerStoryM2 != nil && *user.FloorAreaPerStoryM2 <= 0 {
		return model.BuildingParameters{}, idferrors.NewResolveError("BuildingParameters.FloorAreaPerStoryM2", "per-story floor area must be > 0")
	}
	if user.WWR != nil {
		for i, w := range user.WWR {
			if w < 0 || w > 0.95 {
				err := idferrors.NewResolveError("BuildingParameters.WWR", "window-to-wall ratio must be in [0, 0.95]")
				err.Field = orientationName(i)
				return model.BuildingParameters{}, err
			}
		}
	}
	if user.CHPProvidesPercent != nil && (*user.CHPProvidesPercent < 0 || *user.CHPProvidesPercent > 100) {
		return model.BuildingParameters{}, idferrors.NewResolveError("BuildingParameters.CHPProvidesPercent", "CHP provides percent must be in [0, 100]")
	}

	buildingType := fallbackBuildingType
	if user.BuildingType != nil {
		buildingType = *user.BuildingType
	}

	stories := fallbackStories
	if user.Stories != nil {
		stories = *user.Stories
	}

	rec := lib.Resolve(buildingType, climateZoneOf(site), user.YearBuilt, user.RetrofitYear, leedOf(user))

	floorArea, err := resolveFloorArea(user, site, stories, rec.Template.TargetCellAreaM2)
	if err != nil {
		return model.BuildingParameters{}, err
	}

	perStory := floorArea / float64(stories)

	wwr := [4]float64{rec.Template.WWR, rec.Template.WWR, rec.Template.WWR, rec.Template.WWR}
	if user.WWR != nil {
		wwr = *user.WWR
	}

	bp := model.BuildingParameters{
		BuildingType:        buildingType,
		Stories:             stories,
		FloorAreaM2:         floorArea,
		FloorAreaPerStoryM2: perStory,
		WWR:                 wwr,
		YearBuilt:           user.YearBuilt,
		RetrofitYear:        user.RetrofitYear,
		LEEDLevel:           leedOf(user),
		CHPCapacityKW:       user.CHPCapacityKW,
		CHPProvidesPercent:  user.CHPProvidesPercent,
		ForcedHVACType:      user.ForcedHVACType,
	}
	return bp, nil
}

// resolveFloorArea implements the lower precedence tiers for total
// floor area, with the historically violated invariant restored: if
// the user supplied per-story area or total area, the
// resolved area equals that user value exactly, regardless of any
// site footprint.
func resolveFloorArea(user UserInput, site *model.Site, stories int, fallbackCellArea float64) (float64, error) {
	hasTotalArea := user.TotalFloorAreaM2 != nil
	hasPerStory := user.FloorAreaPerStoryM2 != nil

	if hasTotalArea && hasPerStory {
		fromPerStory := *user.FloorAreaPerStoryM2 * float64(stories)
		if relativeDiff(*user.TotalFloorAreaM2, fromPerStory) > inconsistencyToleranceFraction {
			return 0, idferrors.NewResolveError("BuildingParameters",
				"total_area and per_story_area*stories disagree by more than 1%")
		}
		return *user.TotalFloorAreaM2, nil
	}
	if hasPerStory {
		return *user.FloorAreaPerStoryM2 * float64(stories), nil
	}
	if hasTotalArea {
		return *user.TotalFloorAreaM2, nil
	}
	// Site fallback: the footprint is the per-floor area, stamped once
	// per story, so the building total is footprint x stories.
	if site != nil && site.FootprintM2 > 0 {
		return site.FootprintM2 * float64(stories), nil
	}
	return fallbackTotalAreaM2, nil
}

func relativeDiff(a, b float64) float64 {
	if a == 0 && b == 0 {
		return 0
	}
	denom := math.Max(math.Abs(a), math.Abs(b))
	return math.Abs(a-b) / denom
}

func climateZoneOf(site *model.Site) model.ClimateZone {
	if site == nil {
		return model.C4
	}
	return site.ClimateZone
}

func leedOf(user UserInput) model.LEEDLevel {
	if user.LEEDLevel != nil {
		return *user.LEEDLevel
	}
	return model.LEEDNone
}

func orientationName(i int) string {
	names := []string{"North", "East", "South", "West"}
	if i < 0 || i >= len(names) {
		return "Unknown"
	}
	return names[i]
}
