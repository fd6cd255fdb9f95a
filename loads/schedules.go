// Package loads implements the internal loads and schedules stage
// (C5): per-zone People/Lights/ElectricEquipment objects, their
// canonical schedule set, and per-zone infiltration.
package loads

import (
	"fmt"

	"idfgen/defaults"
	"idfgen/model"
)

// ScheduleSet names the four canonical per-space-type schedules
// every load references: Occupancy_<space>, Lighting_<space>,
// Equipment_<space>, Activity_<space>.
type ScheduleSet struct {
	Occupancy string
	Lighting  string
	Equipment string
	Activity  string
}

func scheduleNamesFor(space model.SpaceType) ScheduleSet {
	return ScheduleSet{
		Occupancy: fmt.Sprintf("Occupancy_%s", space),
		Lighting:  fmt.Sprintf("Lighting_%s", space),
		Equipment: fmt.Sprintf("Equipment_%s", space),
		Activity:  fmt.Sprintf("Activity_%s", space),
	}
}

// BuildSchedules returns one full-year Schedule:Compact definition per
// unique schedule name referenced by spaceTypes. When seasonal is
// false (the default, ) each schedule is a single
// Jan-1-through-Dec-31 period split by day type; when true, three
// seasonal periods (Jan-Apr, May-Aug, Sep-Dec) each get slightly
// different hours, still within the ~12-period field-count ceiling
// (3 periods x 2 day types = 6 periods per schedule, under the limit).
func BuildSchedules(spaceTypes []model.SpaceType, seasonal bool) []model.Schedule {
	seen := map[model.SpaceType]bool{}
	var unique []model.SpaceType
	for _, st := range spaceTypes {
		if !seen[st] {
			seen[st] = true
			unique = append(unique, st)
		}
	}

	var out []model.Schedule
	for _, st := range unique {
		profile := defaults.ScheduleProfileFor(st)
		names := scheduleNamesFor(st)

		out = append(out,
			buildFractionSchedule(names.Occupancy, profile.OccupancyWeekday, profile.OccupancyWeekend, seasonal),
			buildFractionSchedule(names.Lighting, profile.LightingWeekday, profile.LightingWeekend, seasonal),
			buildFractionSchedule(names.Equipment, profile.EquipmentWeekday, profile.EquipmentWeekend, seasonal),
			buildActivitySchedule(names.Activity, profile.ActivityLevelW),
		)
	}
	return out
}

func buildFractionSchedule(name string, weekday, weekend [24]float64, seasonal bool) model.Schedule {
	if !seasonal {
		return model.Schedule{
			Name: name,
			Type: model.ScheduleFraction,
			Periods: []model.SchedulePeriod{
				{DayTypes: []string{"Weekdays"}, StartMonth: 1, StartDay: 1, EndMonth: 12, EndDay: 31, HourToValue: weekday},
				{DayTypes: []string{"Weekends Holidays AllOtherDays"}, StartMonth: 1, StartDay: 1, EndMonth: 12, EndDay: 31, HourToValue: weekend},
			},
		}
	}

	ranges := []struct {
		startM, startD, endM, endD int
		scale                      float64
	}{
		{1, 1, 4, 30, 0.9},
		{5, 1, 8, 31, 1.0},
		{9, 1, 12, 31, 0.95},
	}

	var periods []model.SchedulePeriod
	for _, rg := range ranges {
		periods = append(periods,
			model.SchedulePeriod{DayTypes: []string{"Weekdays"}, StartMonth: rg.startM, StartDay: rg.startD, EndMonth: rg.endM, EndDay: rg.endD, HourToValue: scaleHours(weekday, rg.scale)},
			model.SchedulePeriod{DayTypes: []string{"Weekends Holidays AllOtherDays"}, StartMonth: rg.startM, StartDay: rg.startD, EndMonth: rg.endM, EndDay: rg.endD, HourToValue: scaleHours(weekend, rg.scale)},
		)
	}
	return model.Schedule{Name: name, Type: model.ScheduleFraction, Periods: periods}
}

func buildActivitySchedule(name string, levelW float64) model.Schedule {
	var hours [24]float64
	for i := range hours {
		hours[i] = levelW
	}
	return model.Schedule{
		Name: name,
		Type: model.ScheduleActivityLevel,
		Periods: []model.SchedulePeriod{
			{DayTypes: []string{"AllDays"}, StartMonth: 1, StartDay: 1, EndMonth: 12, EndDay: 31, HourToValue: hours},
		},
	}
}

func scaleHours(hours [24]float64, scale float64) [24]float64 {
	var out [24]float64
	for i, v := range hours {
		scaled := v * scale
		if scaled > 1.0 {
			scaled = 1.0
		}
		out[i] = scaled
	}
	return out
}
