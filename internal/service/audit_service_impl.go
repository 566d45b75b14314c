package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/trainsafe/internal/contract"
	"github.com/alexanderramin/trainsafe/internal/domain"
	"github.com/alexanderramin/trainsafe/internal/repository"
)

type auditService struct {
	evaluations repository.EvaluationRepo
}

func NewAuditService(evaluations repository.EvaluationRepo) AuditService {
	return &auditService{evaluations: evaluations}
}

func (s *auditService) Get(ctx context.Context, id string) (*domain.Evaluation, error) {
	e, err := s.evaluations.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading evaluation: %w", err)
	}
	return e, nil
}

func (s *auditService) List(ctx context.Context, q contract.AuditQuery) ([]*domain.Evaluation, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = contract.DefaultAuditLimit
	}
	evals, err := s.evaluations.List(ctx, q.PlayerID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing evaluations: %w", err)
	}
	return evals, nil
}
