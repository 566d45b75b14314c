package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/trainsafe/internal/contract"
	"github.com/alexanderramin/trainsafe/internal/domain"
	"github.com/alexanderramin/trainsafe/internal/repository"
	"github.com/alexanderramin/trainsafe/internal/safety"
	"github.com/alexanderramin/trainsafe/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSafetyService(t *testing.T) (SafetyService, AuditService, *captureObserver) {
	t.Helper()
	database := testutil.NewTestDB(t)
	obs := &captureObserver{}
	svc := NewSafetyService(safety.DefaultConfig(), testutil.NewTestUoW(database), obs)
	audit := NewAuditService(repository.NewSQLiteEvaluationRepo(database))
	return svc, audit, obs
}

func TestBuildContext_ReturnsEnvelope(t *testing.T) {
	svc, _, obs := setupSafetyService(t)
	player := testutil.NewTestPlayer("Ana", testutil.WithAge(12))

	sctx, err := svc.BuildContext(context.Background(), contract.BuildContextRequest{
		Player: player,
		Load:   testutil.NewTestLoad(1.6, 2),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusYellow, sctx.EffectiveStatus)
	assert.Equal(t, []domain.ReasonFlag{domain.FlagACWRElevated}, sctx.Flags)
	assert.Equal(t, 1, sctx.Allowed.MaxSprintDaysPerWeek)

	require.Len(t, obs.events, 1)
	assert.Equal(t, "build-context", obs.events[0].Name)
	assert.True(t, obs.events[0].Success)
	assert.Equal(t, "YELLOW", obs.events[0].Fields["effective_status"])
}

func TestBuildContext_InvalidInjuryStatus_IsTypedError(t *testing.T) {
	svc, _, obs := setupSafetyService(t)
	player := testutil.NewTestPlayer("Ben", testutil.WithInjuryStatus("bruised"))

	_, err := svc.BuildContext(context.Background(), contract.NewBuildContextRequest(player))

	var ce *contract.CheckError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, contract.CheckErrInvalidInput, ce.Code)
	assert.ErrorIs(t, err, safety.ErrInvalidInput)
	require.Len(t, obs.events, 1)
	assert.False(t, obs.events[0].Success)
}

func TestCheck_Youth3SprintDays_SanitizesAndRecords(t *testing.T) {
	svc, audit, obs := setupSafetyService(t)
	ctx := context.Background()
	player := testutil.NewTestPlayer("Kit", testutil.WithAge(12))
	plan := testutil.NewTestProgram(testutil.WithSprintDays(1, 3, 5))
	now := time.Date(2026, 4, 2, 18, 30, 0, 0, time.UTC)

	req := contract.NewCheckRequest(player, plan)
	req.Now = &now
	resp, err := svc.Check(ctx, req)
	require.NoError(t, err)

	assert.False(t, resp.Valid)
	require.Len(t, resp.Violations, 1)
	assert.Equal(t, domain.RuleAgeSprintLimit, resp.Violations[0].RuleID)
	require.Len(t, resp.Modifications, 2)
	assert.Equal(t, []int{1}, resp.Sanitized.SprintDays())
	assert.NotEmpty(t, resp.EvaluationID)

	stored, err := audit.Get(ctx, resp.EvaluationID)
	require.NoError(t, err)
	assert.Equal(t, player.ID, stored.PlayerID)
	assert.Equal(t, domain.StatusGreen, stored.EffectiveStatus)
	assert.False(t, stored.Valid)
	assert.Equal(t, resp.Violations, stored.Violations)
	assert.Equal(t, resp.Modifications, stored.Modifications)
	assert.True(t, now.Equal(stored.CreatedAt))

	require.Len(t, obs.events, 1)
	ev := obs.events[0]
	assert.Equal(t, "check-plan", ev.Name)
	assert.Equal(t, 2, ev.Fields["modification_count"])
	assert.Equal(t, resp.EvaluationID, ev.Fields["evaluation_id"])
}

func TestCheck_RedPlayer_GetsRecoveryTemplate(t *testing.T) {
	svc, audit, _ := setupSafetyService(t)
	ctx := context.Background()
	player := testutil.NewTestPlayer("Cleo", testutil.WithInjuryCodes("ACL"))

	req := contract.NewCheckRequest(player, testutil.NewTestProgram())
	req.Override = &domain.Override{Status: domain.StatusGreen, Reason: "player says fine"}
	resp, err := svc.Check(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusRed, resp.Context.EffectiveStatus)
	assert.Equal(t, domain.PlanRecoveryOnly, resp.Sanitized.PlanType)
	assert.Contains(t, ruleIDsOf(resp.Violations), domain.RulePlanTypeStatus)

	stored, err := audit.Get(ctx, resp.EvaluationID)
	require.NoError(t, err)
	require.NotNil(t, stored.Override)
	assert.Equal(t, domain.StatusGreen, stored.Override.Status)
	assert.False(t, stored.Override.Applied)
	assert.Equal(t, domain.PlanFullTraining, stored.PlanTypeIn)
	assert.Equal(t, domain.PlanRecoveryOnly, stored.PlanTypeOut)
}

func TestCheck_DryRun_WritesNothing(t *testing.T) {
	svc, audit, _ := setupSafetyService(t)
	ctx := context.Background()
	player := testutil.NewTestPlayer("Dev")

	req := contract.NewCheckRequest(player, testutil.NewTestProgram())
	req.DryRun = true
	resp, err := svc.Check(ctx, req)
	require.NoError(t, err)

	assert.True(t, resp.Valid)
	assert.Empty(t, resp.EvaluationID)
	evals, err := audit.List(ctx, contract.AuditQuery{PlayerID: player.ID})
	require.NoError(t, err)
	assert.Empty(t, evals)
}

func TestCheck_PersistenceFailure_RollsBackAndReportsCode(t *testing.T) {
	database := testutil.NewTestDB(t)
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 2, Err: errors.New("disk full")}
	svc := NewSafetyService(safety.DefaultConfig(), uow)
	audit := NewAuditService(repository.NewSQLiteEvaluationRepo(database))
	ctx := context.Background()
	player := testutil.NewTestPlayer("Eli", testutil.WithAge(12))

	_, err := svc.Check(ctx, contract.NewCheckRequest(player, testutil.NewTestProgram(testutil.WithSprintDays(1, 3))))

	var ce *contract.CheckError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, contract.CheckErrPersistenceFailed, ce.Code)
	evals, err := audit.List(ctx, contract.NewAuditQuery())
	require.NoError(t, err)
	assert.Empty(t, evals, "no partial evaluation is left behind")
}

func TestCheck_InvalidOverride_IsRejected(t *testing.T) {
	svc, _, _ := setupSafetyService(t)

	req := contract.NewCheckRequest(testutil.NewTestPlayer("Fay"), testutil.NewTestProgram())
	req.Override = &domain.Override{Status: "AMBER", Reason: "?"}
	_, err := svc.Check(context.Background(), req)

	var ce *contract.CheckError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, contract.CheckErrInvalidInput, ce.Code)
}

func ruleIDsOf(vs []domain.Violation) []domain.RuleID {
	out := make([]domain.RuleID, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.RuleID)
	}
	return out
}
