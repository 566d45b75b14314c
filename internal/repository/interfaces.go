package repository

import (
	"context"

	"github.com/alexanderramin/trainsafe/internal/domain"
)

// EvaluationRepo persists the compliance audit log. Records are append-only.
type EvaluationRepo interface {
	// Create writes the evaluation with its violations and modifications.
	// Run it inside a UnitOfWork so the record lands whole or not at all.
	Create(ctx context.Context, e *domain.Evaluation) error
	GetByID(ctx context.Context, id string) (*domain.Evaluation, error)
	// List returns the newest evaluations first. An empty playerID lists every player.
	List(ctx context.Context, playerID string, limit int) ([]*domain.Evaluation, error)
}
