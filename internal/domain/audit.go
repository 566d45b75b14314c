package domain

import "time"

// Violation is one finding produced by plan validation.
type Violation struct {
	RuleID   RuleID
	Severity Severity
	Day      int // 0 for plan-level findings
	Message  string
}

// PlanModification is one append-only audit entry written by the sanitizer.
type PlanModification struct {
	RuleID RuleID
	Day    int // 0 for plan-level changes
	Field  string
	Before string
	After  string
}

// Evaluation is the persisted compliance record of one check request.
type Evaluation struct {
	ID              string
	PlayerID        string
	PlayerName      string
	ComputedStatus  SafetyStatus
	EffectiveStatus SafetyStatus
	Flags           []ReasonFlag
	Override        *OverrideMetadata
	PlanTypeIn      PlanType
	PlanTypeOut     PlanType
	Valid           bool
	Violations      []Violation
	Modifications   []PlanModification
	CreatedAt       time.Time
}
