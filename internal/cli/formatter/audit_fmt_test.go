package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/trainsafe/internal/domain"
	"github.com/alexanderramin/trainsafe/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestFormatEvaluationList_Empty(t *testing.T) {
	assert.Contains(t, FormatEvaluationList(nil, time.Now()), "No evaluations")
}

func TestFormatEvaluationList_Rows(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	e := testutil.NewTestEvaluation("p-1",
		testutil.WithEvaluationStatus(domain.StatusGreen, domain.StatusRed),
		testutil.WithCreatedAt(now.Add(-2*time.Hour)),
	)
	e.Valid = false
	e.Modifications = []domain.PlanModification{{RuleID: domain.RuleRecoveryTemplate}}

	out := FormatEvaluationList([]*domain.Evaluation{e}, now)

	assert.Contains(t, out, ShortID(e.ID))
	assert.Contains(t, out, "Test Player")
	assert.Contains(t, out, "RED")
	assert.Contains(t, out, "rejected")
	assert.Contains(t, out, "2h ago")
}

func TestFormatEvaluation_Detail(t *testing.T) {
	e := testutil.NewTestEvaluation("p-2")
	e.PlayerName = ""
	e.Override = &domain.OverrideMetadata{Status: domain.StatusYellow, Reason: "sore calf", Applied: true}
	e.Violations = []domain.Violation{{RuleID: domain.RuleWarmupTooShort, Severity: domain.SeverityWarning, Day: 2, Message: "warm-up 5 min"}}

	out := FormatEvaluation(e)

	assert.Contains(t, out, "p-2")
	assert.Contains(t, out, "sore calf")
	assert.Contains(t, out, "warm-up 5 min")
	assert.NotContains(t, out, "MODIFICATIONS")
}
