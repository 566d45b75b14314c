package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/trainsafe/internal/contract"
	"github.com/alexanderramin/trainsafe/internal/domain"
	"github.com/alexanderramin/trainsafe/internal/importer"
)

type importService struct{}

func NewImportService() ImportService {
	return &importService{}
}

func (s *importService) LoadPlayer(ctx context.Context, path string) (*contract.BuildContextRequest, error) {
	pf, err := importer.LoadPlayerFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading player file: %w", err)
	}
	if errs := importer.ValidatePlayerFile(pf); len(errs) > 0 {
		return nil, &contract.CheckError{
			Code:    contract.CheckErrInvalidInput,
			Message: formatValidationErrors(errs).Error(),
		}
	}

	player, load, override := importer.Convert(pf)
	return &contract.BuildContextRequest{Player: player, Load: load, Override: override}, nil
}

func (s *importService) LoadPlan(ctx context.Context, path string) (domain.TrainingProgramOutput, error) {
	plan, err := importer.LoadProgramFile(path)
	if err != nil {
		return domain.TrainingProgramOutput{}, fmt.Errorf("loading plan file: %w", err)
	}
	return plan, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("player file validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
