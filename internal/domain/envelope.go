package domain

import "sort"

// AllowedElements is the activity envelope a plan must fit inside.
type AllowedElements struct {
	MaxSprintDaysPerWeek int
	MaxHardDaysPerWeek   int
	AllowPlyometrics     bool
	AllowContact         bool
	MaxIntensity         Intensity
	ExcludedCategories   []DrillCategory

	// SprintLimitRule names the rule that set MaxSprintDaysPerWeek.
	SprintLimitRule RuleID
}

// Excludes reports whether drills of category c are forbidden.
// Categories outside the closed set are always forbidden.
func (a AllowedElements) Excludes(c DrillCategory) bool {
	if !c.Valid() {
		return true
	}
	for _, ex := range a.ExcludedCategories {
		if ex == c {
			return true
		}
	}
	return false
}

func (a AllowedElements) Clone() AllowedElements {
	out := a
	if a.ExcludedCategories != nil {
		out.ExcludedCategories = append([]DrillCategory(nil), a.ExcludedCategories...)
	}
	return out
}

// SortCategories sorts categories in place by name.
func SortCategories(cs []DrillCategory) {
	sort.Slice(cs, func(i, j int) bool { return cs[i] < cs[j] })
}

// OverrideMetadata records a supervisor override and whether it changed the outcome.
type OverrideMetadata struct {
	Status  SafetyStatus
	Reason  string
	Applied bool
}

// SafetyContext is the resolved, per-request safety envelope for one player.
// Treat it as a value: the builder hands out copies of every slice.
type SafetyContext struct {
	Player          PlayerContext
	ComputedStatus  SafetyStatus
	EffectiveStatus SafetyStatus
	Allowed         AllowedElements
	Flags           []ReasonFlag
	Override        *OverrideMetadata
}

// HasFlag reports whether the classifier raised f.
func (c SafetyContext) HasFlag(f ReasonFlag) bool {
	for _, fl := range c.Flags {
		if fl == f {
			return true
		}
	}
	return false
}
