package domain

// DaysPerWeek is the fixed length of a weekly plan.
const DaysPerWeek = 7

type DrillSelection struct {
	DrillID     string        `json:"drill_id"`
	Name        string        `json:"name"`
	Category    DrillCategory `json:"category"`
	DurationMin int           `json:"duration_min"`
}

type DayPlan struct {
	Day         int              `json:"day"`
	Rest        bool             `json:"rest"`
	Intensity   Intensity        `json:"intensity"`
	Drills      []DrillSelection `json:"drills"`
	WarmupMin   int              `json:"warmup_min"`
	CooldownMin int              `json:"cooldown_min"`
}

// HasCategory reports whether a training day includes a drill of category c.
// Rest days never count.
func (d DayPlan) HasCategory(c DrillCategory) bool {
	if d.Rest {
		return false
	}
	for _, dr := range d.Drills {
		if dr.Category == c {
			return true
		}
	}
	return false
}

// IsSprintDay reports whether the day counts against the weekly sprint cap.
func (d DayPlan) IsSprintDay() bool {
	return d.HasCategory(CategorySprint)
}

// IsHardDay reports whether the day counts against the weekly hard-day cap.
func (d DayPlan) IsHardDay() bool {
	return !d.Rest && d.Intensity == IntensityHigh
}

// Section is a named drill grouping such as "warm-up" or "main block".
type Section struct {
	Name   string           `json:"name"`
	Drills []DrillSelection `json:"drills"`
}

// TrainingProgramOutput is a candidate weekly plan produced by a plan generator.
type TrainingProgramOutput struct {
	PlanType    PlanType  `json:"plan_type"`
	WeeklyPlan  []DayPlan `json:"weekly_plan"`
	Sections    []Section `json:"sections"`
	Explanation string    `json:"explanation"`
}

// SprintDays returns the day numbers of sprint days in plan order.
func (p TrainingProgramOutput) SprintDays() []int {
	var days []int
	for _, d := range p.WeeklyPlan {
		if d.IsSprintDay() {
			days = append(days, d.Day)
		}
	}
	return days
}

// HardDays returns the day numbers of hard days in plan order.
func (p TrainingProgramOutput) HardDays() []int {
	var days []int
	for _, d := range p.WeeklyPlan {
		if d.IsHardDay() {
			days = append(days, d.Day)
		}
	}
	return days
}

// Clone returns a deep copy of p.
func (p TrainingProgramOutput) Clone() TrainingProgramOutput {
	out := p
	if p.WeeklyPlan != nil {
		out.WeeklyPlan = make([]DayPlan, len(p.WeeklyPlan))
		for i, d := range p.WeeklyPlan {
			d.Drills = cloneDrills(d.Drills)
			out.WeeklyPlan[i] = d
		}
	}
	if p.Sections != nil {
		out.Sections = make([]Section, len(p.Sections))
		for i, s := range p.Sections {
			s.Drills = cloneDrills(s.Drills)
			out.Sections[i] = s
		}
	}
	return out
}

func cloneDrills(ds []DrillSelection) []DrillSelection {
	if ds == nil {
		return nil
	}
	return append([]DrillSelection(nil), ds...)
}
