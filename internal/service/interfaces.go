package service

import (
	"context"

	"github.com/alexanderramin/trainsafe/internal/contract"
	"github.com/alexanderramin/trainsafe/internal/domain"
)

type SafetyService interface {
	BuildContext(ctx context.Context, req contract.BuildContextRequest) (*domain.SafetyContext, error)
	// Check validates and sanitizes a candidate plan and records the
	// evaluation in the audit log unless req.DryRun is set.
	Check(ctx context.Context, req contract.CheckRequest) (*contract.CheckResponse, error)
}

type AuditService interface {
	Get(ctx context.Context, id string) (*domain.Evaluation, error)
	List(ctx context.Context, q contract.AuditQuery) ([]*domain.Evaluation, error)
}

type ImportService interface {
	LoadPlayer(ctx context.Context, path string) (*contract.BuildContextRequest, error)
	LoadPlan(ctx context.Context, path string) (domain.TrainingProgramOutput, error)
}
