package idf

import "fmt"

// ScheduleTypeLimits bounds the legal value range for a Schedule kind.
type ScheduleTypeLimits struct {
	LimitsName  string
	LowerLimit  float64
	UpperLimit  float64
	NumericType string // Continuous|Discrete
}

func (o ScheduleTypeLimits) Kind() string { return "ScheduleTypeLimits" }
func (o ScheduleTypeLimits) Name() string { return o.LimitsName }
func (o ScheduleTypeLimits) Fields() []Field {
	return []Field{
		F(o.LimitsName, "Name"),
		F(o.LowerLimit, "Lower Limit Value"),
		F(o.UpperLimit, "Upper Limit Value"),
		F(o.NumericType, "Numeric Type"),
	}
}

// ScheduleCompactRule is one "Through: Date" / "For: DayTypes" /
// "Until: HH:MM,value" block.
type ScheduleCompactRule struct {
	ThroughMonth, ThroughDay int
	ForDayTypes              string
	UntilHourToValue         [24]float64
}

// ScheduleCompact is a full-year compact schedule; fields are emitted
// as alternating Through/For/Until-Value triples, one rule per period.
type ScheduleCompact struct {
	ScheduleName string
	TypeLimits   string
	Rules        []ScheduleCompactRule
}

func (o ScheduleCompact) Kind() string { return "Schedule:Compact" }
func (o ScheduleCompact) Name() string { return o.ScheduleName }
func (o ScheduleCompact) Fields() []Field {
	fields := []Field{
		F(o.ScheduleName, "Name"),
		F(o.TypeLimits, "Schedule Type Limits Name"),
	}
	for _, r := range o.Rules {
		fields = append(fields, F(fmt.Sprintf("Through: %d/%d", r.ThroughMonth, r.ThroughDay), "Field"))
		fields = append(fields, F(fmt.Sprintf("For: %s", r.ForDayTypes), "Field"))
		h := 0
		for h < 24 {
			v := r.UntilHourToValue[h]
			start := h
			for h < 24 && r.UntilHourToValue[h] == v {
				h++
			}
			fields = append(fields, F(fmt.Sprintf("Until: %02d:00", h), "Field"))
			fields = append(fields, F(v, "Field"))
			_ = start
		}
	}
	return fields
}
