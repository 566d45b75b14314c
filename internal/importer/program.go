package importer

import (
	"fmt"
	"os"

	"github.com/alexanderramin/trainsafe/internal/domain"
	"github.com/alexanderramin/trainsafe/internal/llm"
)

// ParseProgram reads a candidate plan from raw plan-generator output. Text
// around the JSON, markdown fences and comments are tolerated; mistyped
// fields and a missing weekly_plan are not. Unknown enum values are kept as
// given for the validator and sanitizer to handle.
func ParseProgram(raw string) (domain.TrainingProgramOutput, error) {
	plan, err := llm.ExtractJSON[domain.TrainingProgramOutput](raw, requireWeeklyPlan)
	if err != nil {
		return domain.TrainingProgramOutput{}, fmt.Errorf("parsing candidate plan: %w", err)
	}
	return plan, nil
}

// LoadProgramFile reads a candidate plan from a file.
func LoadProgramFile(path string) (domain.TrainingProgramOutput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.TrainingProgramOutput{}, err
	}
	return ParseProgram(string(data))
}

func requireWeeklyPlan(p domain.TrainingProgramOutput) error {
	if p.WeeklyPlan == nil {
		return fmt.Errorf("weekly_plan is required")
	}
	return nil
}
