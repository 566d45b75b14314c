package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/trainsafe/internal/contract"
	"github.com/alexanderramin/trainsafe/internal/db"
	"github.com/alexanderramin/trainsafe/internal/domain"
	"github.com/alexanderramin/trainsafe/internal/repository"
	"github.com/alexanderramin/trainsafe/internal/safety"
	"github.com/google/uuid"
)

type safetyService struct {
	cfg      safety.Config
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewSafetyService(
	cfg safety.Config,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) SafetyService {
	return &safetyService{
		cfg:      cfg,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *safetyService) BuildContext(ctx context.Context, req contract.BuildContextRequest) (sctx *domain.SafetyContext, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"player_id": req.Player.ID}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "build-context",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	built, err := safety.BuildContext(req.Player, req.Load, req.Override, s.cfg)
	if err != nil {
		return nil, invalidInput(err)
	}
	fields["computed_status"] = string(built.ComputedStatus)
	fields["effective_status"] = string(built.EffectiveStatus)
	return &built, nil
}

func (s *safetyService) Check(ctx context.Context, req contract.CheckRequest) (resp *contract.CheckResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"player_id": req.Player.ID,
		"dry_run":   req.DryRun,
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "check-plan",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	now := startedAt
	if req.Now != nil {
		now = req.Now.UTC()
	}

	sctx, err := safety.BuildContext(req.Player, req.Load, req.Override, s.cfg)
	if err != nil {
		return nil, invalidInput(err)
	}
	fields["effective_status"] = string(sctx.EffectiveStatus)

	candidate := safety.Validate(req.Plan, sctx, s.cfg)
	sanitized := safety.Sanitize(req.Plan, sctx, s.cfg)
	fields["valid"] = candidate.Valid
	fields["violation_count"] = len(candidate.Violations)
	fields["modification_count"] = len(sanitized.Modifications)

	if after := safety.Validate(sanitized.Plan, sctx, s.cfg); !after.Valid {
		return nil, &contract.CheckError{
			Code:    contract.CheckErrSanitizerDiverged,
			Message: "sanitized plan still violates " + joinRuleIDs(after.Blocking()),
		}
	}

	resp = &contract.CheckResponse{
		EvaluatedAt:   now,
		Context:       sctx,
		Valid:         candidate.Valid,
		Violations:    candidate.Violations,
		Sanitized:     sanitized.Plan,
		Modifications: sanitized.Modifications,
	}
	if req.DryRun {
		return resp, nil
	}

	eval := newEvaluation(req, resp)
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteEvaluationRepo(tx).Create(ctx, eval)
	})
	if err != nil {
		return nil, &contract.CheckError{
			Code:    contract.CheckErrPersistenceFailed,
			Message: fmt.Sprintf("recording evaluation: %v", err),
			Err:     err,
		}
	}
	resp.EvaluationID = eval.ID
	fields["evaluation_id"] = eval.ID
	return resp, nil
}

func newEvaluation(req contract.CheckRequest, resp *contract.CheckResponse) *domain.Evaluation {
	sctx := resp.Context
	e := &domain.Evaluation{
		ID:              uuid.New().String(),
		PlayerID:        sctx.Player.ID,
		PlayerName:      sctx.Player.Name,
		ComputedStatus:  sctx.ComputedStatus,
		EffectiveStatus: sctx.EffectiveStatus,
		Flags:           append([]domain.ReasonFlag(nil), sctx.Flags...),
		PlanTypeIn:      req.Plan.PlanType,
		PlanTypeOut:     resp.Sanitized.PlanType,
		Valid:           resp.Valid,
		Violations:      resp.Violations,
		Modifications:   resp.Modifications,
		CreatedAt:       resp.EvaluatedAt,
	}
	if sctx.Override != nil {
		o := *sctx.Override
		e.Override = &o
	}
	return e
}

func invalidInput(err error) error {
	if errors.Is(err, safety.ErrInvalidInput) {
		return &contract.CheckError{Code: contract.CheckErrInvalidInput, Message: err.Error(), Err: err}
	}
	return err
}

func joinRuleIDs(vs []domain.Violation) string {
	ids := make([]string, 0, len(vs))
	for _, v := range vs {
		ids = append(ids, string(v.RuleID))
	}
	return strings.Join(ids, ", ")
}
