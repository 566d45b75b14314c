package safety

import "github.com/alexanderramin/trainsafe/internal/domain"

// baseElements is the status table. Each row is never looser than the row
// for a less restrictive status.
func baseElements(status domain.SafetyStatus) domain.AllowedElements {
	switch status {
	case domain.StatusGreen:
		return domain.AllowedElements{
			MaxSprintDaysPerWeek: 3,
			MaxHardDaysPerWeek:   3,
			AllowPlyometrics:     true,
			AllowContact:         true,
			MaxIntensity:         domain.IntensityHigh,
			SprintLimitRule:      domain.RuleSprintDayLimit,
		}
	case domain.StatusYellow:
		return domain.AllowedElements{
			MaxSprintDaysPerWeek: 1,
			MaxHardDaysPerWeek:   2,
			AllowPlyometrics:     false,
			AllowContact:         false,
			MaxIntensity:         domain.IntensityModerate,
			ExcludedCategories:   []domain.DrillCategory{domain.CategoryPlyometrics, domain.CategoryContact},
			SprintLimitRule:      domain.RuleSprintDayLimit,
		}
	default:
		return domain.AllowedElements{
			MaxSprintDaysPerWeek: 0,
			MaxHardDaysPerWeek:   0,
			AllowPlyometrics:     false,
			AllowContact:         false,
			MaxIntensity:         domain.IntensityLow,
			ExcludedCategories: []domain.DrillCategory{
				domain.CategorySprint, domain.CategoryPlyometrics, domain.CategoryContact,
			},
			SprintLimitRule: domain.RuleSprintDayLimit,
		}
	}
}

// AllowedElementsFor derives the activity envelope for a status and player.
// The age and injury rules run after the status table and only tighten it.
func AllowedElementsFor(status domain.SafetyStatus, player domain.PlayerContext, cfg Config) domain.AllowedElements {
	a := baseElements(status)

	ageCap := cfg.SeniorSprintCap
	if player.Age < cfg.YouthAgeCutoff {
		ageCap = cfg.YouthSprintCap
	}
	capSprintDays(&a, ageCap, domain.RuleAgeSprintLimit)

	if hasHighRiskInjury(player, cfg) {
		capSprintDays(&a, 0, domain.RuleHighRiskInjury)
		a.AllowPlyometrics = false
		a.AllowContact = false
		a.ExcludedCategories = unionCategories(a.ExcludedCategories,
			domain.CategorySprint, domain.CategoryPlyometrics, domain.CategoryContact)
	}

	if a.MaxSprintDaysPerWeek == 0 {
		a.ExcludedCategories = unionCategories(a.ExcludedCategories, domain.CategorySprint)
	}
	if !a.AllowPlyometrics {
		a.ExcludedCategories = unionCategories(a.ExcludedCategories, domain.CategoryPlyometrics)
	}
	if !a.AllowContact {
		a.ExcludedCategories = unionCategories(a.ExcludedCategories, domain.CategoryContact)
	}
	domain.SortCategories(a.ExcludedCategories)

	return a
}

// capSprintDays lowers the sprint cap to limit, recording rule as the binding
// rule only when it actually tightened the cap.
func capSprintDays(a *domain.AllowedElements, limit int, rule domain.RuleID) {
	if limit < a.MaxSprintDaysPerWeek {
		a.MaxSprintDaysPerWeek = limit
		a.SprintLimitRule = rule
	}
}

func hasHighRiskInjury(player domain.PlayerContext, cfg Config) bool {
	for _, code := range player.NormalizedInjuryCodes() {
		if cfg.isHighRisk(code) {
			return true
		}
	}
	return false
}

func unionCategories(set []domain.DrillCategory, add ...domain.DrillCategory) []domain.DrillCategory {
	out := append([]domain.DrillCategory(nil), set...)
	for _, c := range add {
		found := false
		for _, existing := range out {
			if existing == c {
				found = true
				break
			}
		}
		if !found {
			out = append(out, c)
		}
	}
	return out
}
