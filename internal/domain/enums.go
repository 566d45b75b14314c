package domain

import "fmt"

// SafetyStatus is the overall risk classification of a player.
// The set is closed: GREEN < YELLOW < RED, where RED is the most restrictive.
type SafetyStatus string

const (
	StatusGreen  SafetyStatus = "GREEN"
	StatusYellow SafetyStatus = "YELLOW"
	StatusRed    SafetyStatus = "RED"
)

// AllSafetyStatuses lists every status from least to most restrictive.
var AllSafetyStatuses = []SafetyStatus{StatusGreen, StatusYellow, StatusRed}

// Rank returns the position of s in the restriction order.
// Values outside the closed set rank as RED.
func (s SafetyStatus) Rank() int {
	switch s {
	case StatusGreen:
		return 0
	case StatusYellow:
		return 1
	case StatusRed:
		return 2
	default:
		return 2
	}
}

func (s SafetyStatus) Valid() bool {
	switch s {
	case StatusGreen, StatusYellow, StatusRed:
		return true
	default:
		return false
	}
}

// MoreRestrictive returns the more restrictive of a and b.
// Ties resolve to a. An unknown value is never less restrictive than RED.
func MoreRestrictive(a, b SafetyStatus) SafetyStatus {
	if !a.Valid() || !b.Valid() {
		return StatusRed
	}
	if b.Rank() > a.Rank() {
		return b
	}
	return a
}

// ParseSafetyStatus converts user input into a SafetyStatus.
func ParseSafetyStatus(s string) (SafetyStatus, error) {
	st := SafetyStatus(s)
	if !st.Valid() {
		return "", fmt.Errorf("invalid safety status %q (expected GREEN, YELLOW or RED)", s)
	}
	return st, nil
}

type InjuryStatus string

const (
	InjuryHealthy  InjuryStatus = "healthy"
	InjuryMinor    InjuryStatus = "minor"
	InjuryModerate InjuryStatus = "moderate"
	InjurySevere   InjuryStatus = "severe"
	// InjuryUnknown marks a player record without an injury assessment.
	InjuryUnknown  InjuryStatus = ""
)

// Valid reports whether s is a known status. InjuryUnknown is valid: it is
// the absence of data, not a malformed value.
func (s InjuryStatus) Valid() bool {
	switch s {
	case InjuryHealthy, InjuryMinor, InjuryModerate, InjurySevere, InjuryUnknown:
		return true
	default:
		return false
	}
}

// ValidInjuryStatuses is the canonical set of accepted injury status strings.
var ValidInjuryStatuses = map[string]bool{
	"healthy": true, "minor": true, "moderate": true, "severe": true,
}

// Intensity is a day's training intensity, ordered low < moderate < high.
type Intensity string

const (
	IntensityLow      Intensity = "low"
	IntensityModerate Intensity = "moderate"
	IntensityHigh     Intensity = "high"
)

func (i Intensity) Valid() bool {
	switch i {
	case IntensityLow, IntensityModerate, IntensityHigh:
		return true
	default:
		return false
	}
}

// Rank orders intensities. Unknown values rank above high so that they
// always exceed a ceiling.
func (i Intensity) Rank() int {
	switch i {
	case IntensityLow:
		return 0
	case IntensityModerate:
		return 1
	case IntensityHigh:
		return 2
	default:
		return 3
	}
}

// LowerIntensity returns the lower of a and b. Unknown values lose to any known one.
func LowerIntensity(a, b Intensity) Intensity {
	if b.Rank() < a.Rank() {
		return b
	}
	return a
}

type PlanType string

const (
	PlanRecoveryOnly PlanType = "recovery_only"
	PlanModified     PlanType = "modified"
	PlanFullTraining PlanType = "full_training"
)

func (p PlanType) Valid() bool {
	switch p {
	case PlanRecoveryOnly, PlanModified, PlanFullTraining:
		return true
	default:
		return false
	}
}

// DrillCategory groups drills by the physical load they impose.
type DrillCategory string

const (
	CategoryTechnical    DrillCategory = "technical"
	CategoryTactical     DrillCategory = "tactical"
	CategorySprint       DrillCategory = "sprint"
	CategoryPlyometrics  DrillCategory = "plyometrics"
	CategoryContact      DrillCategory = "contact"
	CategoryStrength     DrillCategory = "strength"
	CategoryConditioning DrillCategory = "conditioning"
	CategoryMobility     DrillCategory = "mobility"
	CategoryRecovery     DrillCategory = "recovery"
)

func (c DrillCategory) Valid() bool {
	switch c {
	case CategoryTechnical, CategoryTactical, CategorySprint, CategoryPlyometrics,
		CategoryContact, CategoryStrength, CategoryConditioning, CategoryMobility, CategoryRecovery:
		return true
	default:
		return false
	}
}

// Severity classifies a validation finding.
type Severity string

const (
	SeverityWarning  Severity = "warning"
	SeverityError    Severity = "error"
	SeverityCritical Severity = "critical"
)

// Blocking reports whether a finding of this severity makes a plan invalid.
func (s Severity) Blocking() bool {
	return s == SeverityError || s == SeverityCritical
}

// ReasonFlag names a classifier rule that fired.
type ReasonFlag string

const (
	FlagHighRiskInjury      ReasonFlag = "HIGH_RISK_INJURY"
	FlagInjurySevere        ReasonFlag = "INJURY_SEVERE"
	FlagInjuryModerate      ReasonFlag = "INJURY_MODERATE"
	FlagInjuryStatusUnknown ReasonFlag = "INJURY_STATUS_UNKNOWN"
	FlagACWRCritical        ReasonFlag = "ACWR_CRITICAL"
	FlagACWRElevated        ReasonFlag = "ACWR_ELEVATED"
	FlagACWRMissing         ReasonFlag = "ACWR_MISSING"
	FlagFatigueHigh         ReasonFlag = "FATIGUE_LEVEL_HIGH"
	FlagFatigueMissing      ReasonFlag = "FATIGUE_LEVEL_MISSING"
)

// RuleID identifies the rule behind a violation or a plan modification.
type RuleID string

const (
	RulePlanShape        RuleID = "PLAN_SHAPE"
	RulePlanTypeStatus   RuleID = "PLAN_TYPE_STATUS"
	RuleSprintDayLimit   RuleID = "SPRINT_DAY_LIMIT"
	RuleAgeSprintLimit   RuleID = "AGE_SPRINT_LIMIT"
	RuleHighRiskInjury   RuleID = "HIGH_RISK_INJURY"
	RuleHardDayLimit     RuleID = "HARD_DAY_LIMIT"
	RuleExcludedCategory RuleID = "EXCLUDED_DRILL_CATEGORY"
	RuleUnknownCategory  RuleID = "UNKNOWN_DRILL_CATEGORY"
	RuleIntensityCeiling RuleID = "INTENSITY_CEILING"
	RuleWarmupTooShort   RuleID = "WARMUP_TOO_SHORT"
	RuleCooldownTooShort RuleID = "COOLDOWN_TOO_SHORT"
	RuleRecoveryTemplate RuleID = "RECOVERY_TEMPLATE"
)
