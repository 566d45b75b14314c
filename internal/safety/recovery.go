package safety

import "github.com/alexanderramin/trainsafe/internal/domain"

const (
	placeholderDrillID   = "technical-placeholder"
	placeholderDrillName = "Technical skill work"
)

// technicalPlaceholder is the neutral drill that replaces anything the
// envelope forbids. Technical work is never excluded by any status.
func technicalPlaceholder(durationMin int) domain.DrillSelection {
	return domain.DrillSelection{
		DrillID:     placeholderDrillID,
		Name:        placeholderDrillName,
		Category:    domain.CategoryTechnical,
		DurationMin: durationMin,
	}
}

// RecoveryTemplate returns the fixed recovery-only week used whenever the
// effective status is RED. It contains no sprint or hard days and only
// low-intensity mobility, recovery and technical drills.
func RecoveryTemplate(cfg Config) domain.TrainingProgramOutput {
	mobility := domain.DrillSelection{DrillID: "mobility-flow", Name: "Mobility flow", Category: domain.CategoryMobility, DurationMin: 15}
	recovery := domain.DrillSelection{DrillID: "recovery-walk", Name: "Easy recovery walk", Category: domain.CategoryRecovery, DurationMin: 20}
	ballWork := domain.DrillSelection{DrillID: "ball-mastery", Name: "Stationary ball mastery", Category: domain.CategoryTechnical, DurationMin: 15}

	training := func(day int, drills ...domain.DrillSelection) domain.DayPlan {
		return domain.DayPlan{
			Day:         day,
			Intensity:   domain.IntensityLow,
			Drills:      drills,
			WarmupMin:   cfg.MinWarmupMin,
			CooldownMin: cfg.MinCooldownMin,
		}
	}
	rest := func(day int) domain.DayPlan {
		return domain.DayPlan{Day: day, Rest: true, Intensity: domain.IntensityLow}
	}

	return domain.TrainingProgramOutput{
		PlanType: domain.PlanRecoveryOnly,
		WeeklyPlan: []domain.DayPlan{
			training(1, mobility, recovery),
			training(2, ballWork, mobility),
			rest(3),
			training(4, mobility, recovery),
			training(5, ballWork, mobility),
			rest(6),
			rest(7),
		},
		Sections: []domain.Section{
			{Name: "mobility", Drills: []domain.DrillSelection{mobility}},
			{Name: "recovery", Drills: []domain.DrillSelection{recovery}},
			{Name: "technical", Drills: []domain.DrillSelection{ballWork}},
		},
		Explanation: "Recovery-only week: no sprint, plyometric, contact or high-intensity work. " +
			"Low-intensity mobility, recovery and stationary technical sessions only.",
	}
}
