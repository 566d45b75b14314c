package testutil

import (
	"fmt"
	"time"

	"github.com/alexanderramin/trainsafe/internal/domain"
	"github.com/google/uuid"
)

// Player options
type PlayerOption func(*domain.PlayerContext)

func WithAge(age int) PlayerOption {
	return func(p *domain.PlayerContext) {
		p.Age = age
	}
}

func WithInjuryStatus(s domain.InjuryStatus) PlayerOption {
	return func(p *domain.PlayerContext) {
		p.InjuryStatus = s
	}
}

func WithInjuryCodes(codes ...string) PlayerOption {
	return func(p *domain.PlayerContext) {
		p.InjuryCodes = codes
	}
}

// NewTestPlayer returns a healthy 16-year-old unless options say otherwise.
func NewTestPlayer(name string, opts ...PlayerOption) domain.PlayerContext {
	p := domain.PlayerContext{
		ID:           uuid.New().String(),
		Name:         name,
		Age:          16,
		InjuryStatus: domain.InjuryHealthy,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// NewTestLoad returns a load context with both telemetry fields present.
func NewTestLoad(acwr float64, fatigue int) *domain.LoadContext {
	return &domain.LoadContext{ACWR: &acwr, FatigueLevel: &fatigue}
}

// TestDrill returns a drill of the given category with a stable id.
func TestDrill(cat domain.DrillCategory) domain.DrillSelection {
	return domain.DrillSelection{
		DrillID:     fmt.Sprintf("%s-drill", cat),
		Name:        fmt.Sprintf("%s drill", cat),
		Category:    cat,
		DurationMin: 15,
	}
}

// Program options
type ProgramOption func(*domain.TrainingProgramOutput)

func WithPlanType(t domain.PlanType) ProgramOption {
	return func(p *domain.TrainingProgramOutput) {
		p.PlanType = t
	}
}

// WithSprintDays turns each listed day into a training day with a sprint drill.
func WithSprintDays(days ...int) ProgramOption {
	return func(p *domain.TrainingProgramOutput) {
		for _, day := range days {
			d := trainingDay(p, day)
			d.Drills = append(d.Drills, TestDrill(domain.CategorySprint))
		}
	}
}

// WithHardDays turns each listed day into a high-intensity training day.
func WithHardDays(days ...int) ProgramOption {
	return func(p *domain.TrainingProgramOutput) {
		for _, day := range days {
			trainingDay(p, day).Intensity = domain.IntensityHigh
		}
	}
}

func WithDrill(day int, cat domain.DrillCategory) ProgramOption {
	return func(p *domain.TrainingProgramOutput) {
		d := trainingDay(p, day)
		d.Drills = append(d.Drills, TestDrill(cat))
	}
}

func WithSectionDrill(section string, cat domain.DrillCategory) ProgramOption {
	return func(p *domain.TrainingProgramOutput) {
		for i := range p.Sections {
			if p.Sections[i].Name == section {
				p.Sections[i].Drills = append(p.Sections[i].Drills, TestDrill(cat))
				return
			}
		}
		p.Sections = append(p.Sections, domain.Section{Name: section, Drills: []domain.DrillSelection{TestDrill(cat)}})
	}
}

func WithWarmup(day, warmupMin, cooldownMin int) ProgramOption {
	return func(p *domain.TrainingProgramOutput) {
		d := trainingDay(p, day)
		d.WarmupMin = warmupMin
		d.CooldownMin = cooldownMin
	}
}

// WithWeek replaces the weekly plan wholesale, for malformed-shape tests.
func WithWeek(days ...domain.DayPlan) ProgramOption {
	return func(p *domain.TrainingProgramOutput) {
		p.WeeklyPlan = days
	}
}

// NewTestProgram returns a compliant full-training week: days 1, 3 and 5
// are moderate technical/tactical sessions, the rest are rest days.
func NewTestProgram(opts ...ProgramOption) domain.TrainingProgramOutput {
	p := domain.TrainingProgramOutput{
		PlanType:    domain.PlanFullTraining,
		WeeklyPlan:  make([]domain.DayPlan, domain.DaysPerWeek),
		Explanation: "test week",
	}
	for i := range p.WeeklyPlan {
		p.WeeklyPlan[i] = domain.DayPlan{Day: i + 1, Rest: true, Intensity: domain.IntensityLow}
	}
	for _, day := range []int{1, 3, 5} {
		d := trainingDay(&p, day)
		d.Drills = []domain.DrillSelection{TestDrill(domain.CategoryTechnical), TestDrill(domain.CategoryTactical)}
	}
	p.Sections = []domain.Section{
		{Name: "main", Drills: []domain.DrillSelection{TestDrill(domain.CategoryTechnical)}},
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// trainingDay converts a rest day into a moderate training day with
// compliant warm-up and cool-down, and returns it for further edits.
func trainingDay(p *domain.TrainingProgramOutput, day int) *domain.DayPlan {
	d := &p.WeeklyPlan[day-1]
	if d.Rest {
		d.Rest = false
		d.Intensity = domain.IntensityModerate
		d.WarmupMin = 15
		d.CooldownMin = 10
	}
	return d
}

// Evaluation options
type EvaluationOption func(*domain.Evaluation)

func WithEvaluationStatus(computed, effective domain.SafetyStatus) EvaluationOption {
	return func(e *domain.Evaluation) {
		e.ComputedStatus = computed
		e.EffectiveStatus = effective
	}
}

func WithCreatedAt(t time.Time) EvaluationOption {
	return func(e *domain.Evaluation) {
		e.CreatedAt = t
	}
}

func NewTestEvaluation(playerID string, opts ...EvaluationOption) *domain.Evaluation {
	e := &domain.Evaluation{
		ID:              uuid.New().String(),
		PlayerID:        playerID,
		PlayerName:      "Test Player",
		ComputedStatus:  domain.StatusGreen,
		EffectiveStatus: domain.StatusGreen,
		PlanTypeIn:      domain.PlanFullTraining,
		PlanTypeOut:     domain.PlanFullTraining,
		Valid:           true,
		CreatedAt:       time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
