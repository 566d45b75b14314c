package contract

import (
	"time"

	"github.com/alexanderramin/trainsafe/internal/domain"
)

type CheckRequest struct {
	Player   domain.PlayerContext
	Load     *domain.LoadContext
	Override *domain.Override
	Plan     domain.TrainingProgramOutput
	Now      *time.Time
	// DryRun skips writing the evaluation to the audit log.
	DryRun bool
}

func NewCheckRequest(player domain.PlayerContext, plan domain.TrainingProgramOutput) CheckRequest {
	return CheckRequest{Player: player, Plan: plan}
}

type CheckResponse struct {
	EvaluationID string // empty on dry runs
	EvaluatedAt  time.Time
	Context      domain.SafetyContext

	// Valid and Violations describe the candidate as submitted.
	Valid      bool
	Violations []domain.Violation

	Sanitized     domain.TrainingProgramOutput
	Modifications []domain.PlanModification
}

type CheckErrorCode string

const (
	CheckErrInvalidInput      CheckErrorCode = "INVALID_INPUT"
	CheckErrSanitizerDiverged CheckErrorCode = "SANITIZER_DIVERGED"
	CheckErrPersistenceFailed CheckErrorCode = "PERSISTENCE_FAILED"
)

type CheckError struct {
	Code    CheckErrorCode
	Message string
	Err     error
}

func (e *CheckError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func (e *CheckError) Unwrap() error {
	return e.Err
}
