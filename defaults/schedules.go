package defaults

import "idfgen/model"

// ScheduleProfile is a named, reusable weekday/weekend hour pattern
// the loads package (C5) stamps into a full-year model.Schedule per
// space type, per the canonical schedule set:
// Occupancy_<space>, Lighting_<space>, Equipment_<space>,
// Activity_<space>.
type ScheduleProfile struct {
	OccupancyWeekday [24]float64
	OccupancyWeekend [24]float64
	LightingWeekday  [24]float64
	LightingWeekend  [24]float64
	EquipmentWeekday [24]float64
	EquipmentWeekend [24]float64
	ActivityLevelW   float64 // constant per-person sensible+latent W, People's ActivityLevelSchedule value
}

// ScheduleProfileFor returns the canonical daily profile for a space
// type. Spaces not named fall back to an office-hours pattern.
func ScheduleProfileFor(space model.SpaceType) ScheduleProfile {
	if p, ok := scheduleProfiles[space]; ok {
		return p
	}
	return scheduleProfiles[model.SpaceOfficeOpen]
}

func officeHours() ([24]float64, [24]float64) {
	var wd, we [24]float64
	for h := 0; h < 24; h++ {
		switch {
		case h >= 8 && h < 18:
			wd[h] = 1.0
		case h >= 6 && h < 8, h >= 18 && h < 20:
			wd[h] = 0.3
		default:
			wd[h] = 0.05
		}
		we[h] = 0.05
	}
	return wd, we
}

func residentialHours() ([24]float64, [24]float64) {
	var wd, we [24]float64
	for h := 0; h < 24; h++ {
		switch {
		case h >= 18 || h < 7:
			wd[h] = 1.0
		case h >= 7 && h < 9:
			wd[h] = 0.6
		default:
			wd[h] = 0.2
		}
		we[h] = 0.8
	}
	return wd, we
}

func roundTheClock() ([24]float64, [24]float64) {
	var wd, we [24]float64
	for h := 0; h < 24; h++ {
		wd[h] = 1.0
		we[h] = 1.0
	}
	return wd, we
}

var scheduleProfiles = buildProfiles()

func buildProfiles() map[model.SpaceType]ScheduleProfile {
	officeWd, officeWe := officeHours()
	resWd, resWe := residentialHours()
	roundWd, roundWe := roundTheClock()

	mk := func(occWd, occWe [24]float64, activity float64) ScheduleProfile {
		return ScheduleProfile{
			OccupancyWeekday: occWd, OccupancyWeekend: occWe,
			LightingWeekday: occWd, LightingWeekend: occWe,
			EquipmentWeekday: occWd, EquipmentWeekend: occWe,
			ActivityLevelW: activity,
		}
	}

	return map[model.SpaceType]ScheduleProfile{
		model.SpaceOfficeOpen: mk(officeWd, officeWe, 120),
		model.SpaceConference: mk(officeWd, officeWe, 130),
		model.SpaceStorage:    mk(officeWd, officeWe, 110),
		model.SpaceLobby:      mk(officeWd, officeWe, 110),
		model.SpaceKitchen:    mk(roundWd, roundWe, 170),
		model.SpaceLivingRoom: mk(resWd, resWe, 120),
		model.SpaceSalesFloor: mk(officeWd, officeWe, 130),
		model.SpaceWard:       mk(roundWd, roundWe, 115),
		model.SpaceClassroom:  mk(officeWd, officeWe, 115),
		model.SpaceMechanical: mk(roundWd, roundWe, 0),
	}
}
