package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/trainsafe/internal/db"
	"github.com/alexanderramin/trainsafe/internal/domain"
	"github.com/alexanderramin/trainsafe/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluationRepo_CreateAndGet_RoundTripsChildren(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteEvaluationRepo(database)
	ctx := context.Background()

	e := testutil.NewTestEvaluation("p1", testutil.WithEvaluationStatus(domain.StatusYellow, domain.StatusRed))
	e.Flags = []domain.ReasonFlag{domain.FlagInjuryModerate, domain.FlagFatigueHigh}
	e.Override = &domain.OverrideMetadata{Status: domain.StatusRed, Reason: "coach call", Applied: true}
	e.PlanTypeOut = domain.PlanRecoveryOnly
	e.Valid = false
	e.Violations = []domain.Violation{
		{RuleID: domain.RulePlanTypeStatus, Severity: domain.SeverityCritical, Message: "not permitted"},
		{RuleID: domain.RuleWarmupTooShort, Severity: domain.SeverityWarning, Day: 3, Message: "short"},
	}
	e.Modifications = []domain.PlanModification{
		{RuleID: domain.RuleRecoveryTemplate, Field: "plan", Before: "full_training", After: "recovery_only"},
	}
	require.NoError(t, repo.Create(ctx, e))

	got, err := repo.GetByID(ctx, e.ID)
	require.NoError(t, err)

	assert.Equal(t, e.ID, got.ID)
	assert.Equal(t, domain.StatusYellow, got.ComputedStatus)
	assert.Equal(t, domain.StatusRed, got.EffectiveStatus)
	assert.Equal(t, e.Flags, got.Flags)
	assert.Equal(t, e.Override, got.Override)
	assert.Equal(t, domain.PlanFullTraining, got.PlanTypeIn)
	assert.Equal(t, domain.PlanRecoveryOnly, got.PlanTypeOut)
	assert.False(t, got.Valid)
	assert.Equal(t, e.Violations, got.Violations)
	assert.Equal(t, e.Modifications, got.Modifications)
	assert.True(t, e.CreatedAt.Equal(got.CreatedAt))
}

func TestEvaluationRepo_NoOverrideNoFlags(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteEvaluationRepo(database)
	ctx := context.Background()

	e := testutil.NewTestEvaluation("p1")
	require.NoError(t, repo.Create(ctx, e))

	got, err := repo.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Override)
	assert.Nil(t, got.Flags)
	assert.Empty(t, got.Violations)
	assert.True(t, got.Valid)
}

func TestEvaluationRepo_GetByID_NotFound(t *testing.T) {
	repo := NewSQLiteEvaluationRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEvaluationRepo_List_NewestFirstFilteredAndLimited(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteEvaluationRepo(database)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	var ids []string
	for i := 0; i < 4; i++ {
		e := testutil.NewTestEvaluation("p1", testutil.WithCreatedAt(base.Add(time.Duration(i)*90*time.Millisecond)))
		e.Violations = []domain.Violation{{RuleID: domain.RuleHardDayLimit, Severity: domain.SeverityError}}
		require.NoError(t, repo.Create(ctx, e))
		ids = append(ids, e.ID)
	}
	require.NoError(t, repo.Create(ctx, testutil.NewTestEvaluation("p2", testutil.WithCreatedAt(base.Add(time.Hour)))))

	all, err := repo.List(ctx, "", 0)
	require.NoError(t, err)
	assert.Len(t, all, 5)
	assert.Equal(t, "p2", all[0].PlayerID)

	p1, err := repo.List(ctx, "p1", 2)
	require.NoError(t, err)
	require.Len(t, p1, 2)
	assert.Equal(t, ids[3], p1[0].ID)
	assert.Equal(t, ids[2], p1[1].ID)
	assert.Len(t, p1[0].Violations, 1, "children are loaded for listed records")
}

func TestEvaluationRepo_CreateInsideUoW_RollsBackWhole(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 3, Err: errors.New("disk full")}

	e := testutil.NewTestEvaluation("p1")
	e.Violations = []domain.Violation{
		{RuleID: domain.RuleHardDayLimit, Severity: domain.SeverityError},
		{RuleID: domain.RuleIntensityCeiling, Severity: domain.SeverityError},
	}

	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return NewSQLiteEvaluationRepo(tx).Create(ctx, e)
	})
	require.Error(t, err)

	_, err = NewSQLiteEvaluationRepo(database).GetByID(ctx, e.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
