package safety

import (
	"math/rand"
	"testing"

	"github.com/alexanderramin/trainsafe/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	propInjuryStatuses = []domain.InjuryStatus{
		domain.InjuryHealthy, domain.InjuryMinor, domain.InjuryModerate, domain.InjurySevere, domain.InjuryUnknown,
	}
	propInjuryCodes = []string{"acl", "hamstring", "Concussion", "ankle_sprain", "groin"}
	propCategories  = []domain.DrillCategory{
		domain.CategoryTechnical, domain.CategoryTactical, domain.CategorySprint, domain.CategoryPlyometrics,
		domain.CategoryContact, domain.CategoryStrength, domain.CategoryConditioning, domain.CategoryMobility,
		domain.CategoryRecovery, "parkour",
	}
	propIntensities = []domain.Intensity{
		domain.IntensityLow, domain.IntensityModerate, domain.IntensityHigh, domain.IntensityHigh, "", "extreme",
	}
	propPlanTypes = []domain.PlanType{
		domain.PlanRecoveryOnly, domain.PlanModified, domain.PlanFullTraining, domain.PlanFullTraining, "",
	}
)

func randomPlayer(rng *rand.Rand) domain.PlayerContext {
	p := domain.PlayerContext{
		ID:           "p",
		Name:         "Random",
		Age:          rng.Intn(30),
		InjuryStatus: propInjuryStatuses[rng.Intn(len(propInjuryStatuses))],
	}
	for i := rng.Intn(3); i > 0; i-- {
		p.InjuryCodes = append(p.InjuryCodes, propInjuryCodes[rng.Intn(len(propInjuryCodes))])
	}
	return p
}

func randomLoad(rng *rand.Rand) *domain.LoadContext {
	if rng.Intn(3) == 0 {
		return nil
	}
	load := &domain.LoadContext{}
	if rng.Intn(5) > 0 {
		acwr := rng.Float64() * 2.5
		load.ACWR = &acwr
	}
	if rng.Intn(5) > 0 {
		fatigue := rng.Intn(7)
		load.FatigueLevel = &fatigue
	}
	return load
}

func randomOverride(rng *rand.Rand) *domain.Override {
	if rng.Intn(2) == 0 {
		return nil
	}
	return &domain.Override{
		Status: domain.AllSafetyStatuses[rng.Intn(len(domain.AllSafetyStatuses))],
		Reason: "random",
	}
}

func randomDrills(rng *rand.Rand) []domain.DrillSelection {
	var drills []domain.DrillSelection
	for i := rng.Intn(4); i > 0; i-- {
		cat := propCategories[rng.Intn(len(propCategories))]
		drills = append(drills, domain.DrillSelection{
			DrillID:     string(cat) + "-x",
			Name:        string(cat),
			Category:    cat,
			DurationMin: 5 + rng.Intn(25),
		})
	}
	return drills
}

// randomPlan mostly builds well-formed weeks, with some malformed ones mixed in.
func randomPlan(rng *rand.Rand) domain.TrainingProgramOutput {
	p := domain.TrainingProgramOutput{PlanType: propPlanTypes[rng.Intn(len(propPlanTypes))]}
	malformed := rng.Intn(5) == 0
	n := domain.DaysPerWeek
	if malformed {
		n = rng.Intn(10)
	}
	for i := 0; i < n; i++ {
		day := i + 1
		if malformed {
			day = rng.Intn(10)
		}
		d := domain.DayPlan{
			Day:         day,
			Rest:        rng.Intn(3) == 0,
			Intensity:   propIntensities[rng.Intn(len(propIntensities))],
			WarmupMin:   rng.Intn(20),
			CooldownMin: rng.Intn(12),
		}
		if !d.Rest || malformed {
			d.Drills = randomDrills(rng)
		}
		p.WeeklyPlan = append(p.WeeklyPlan, d)
	}
	for i := rng.Intn(3); i > 0; i-- {
		p.Sections = append(p.Sections, domain.Section{Name: "s", Drills: randomDrills(rng)})
	}
	return p
}

func TestEngine_Invariants_RandomInputs(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	cfg := DefaultConfig()

	for trial := 0; trial < 200; trial++ {
		player := randomPlayer(rng)
		load := randomLoad(rng)
		override := randomOverride(rng)
		plan := randomPlan(rng)

		// Classification is deterministic and GREEN exactly when nothing fired.
		cls := Classify(player, load, cfg)
		assert.Equal(t, cls, Classify(player, load, cfg), "trial %d", trial)
		assert.True(t, cls.Status.Valid(), "trial %d", trial)
		assert.Equal(t, cls.Status == domain.StatusGreen, len(cls.Flags) == 0, "trial %d: %+v", trial, cls)

		sctx, err := BuildContext(player, load, override, cfg)
		require.NoError(t, err, "trial %d", trial)

		// The effective status is never looser than the computed or the override.
		assert.GreaterOrEqual(t, sctx.EffectiveStatus.Rank(), sctx.ComputedStatus.Rank(), "trial %d", trial)
		if override != nil {
			assert.GreaterOrEqual(t, sctx.EffectiveStatus.Rank(), override.Status.Rank(), "trial %d", trial)
		}
		for _, code := range player.NormalizedInjuryCodes() {
			if cfg.isHighRisk(code) {
				assert.Equal(t, domain.StatusRed, sctx.EffectiveStatus, "trial %d", trial)
				assert.Zero(t, sctx.Allowed.MaxSprintDaysPerWeek, "trial %d", trial)
			}
		}

		// Age floors hold for every status.
		limit := cfg.SeniorSprintCap
		if player.Age < cfg.YouthAgeCutoff {
			limit = cfg.YouthSprintCap
		}
		assert.LessOrEqual(t, sctx.Allowed.MaxSprintDaysPerWeek, limit, "trial %d", trial)

		result := Validate(plan, sctx, cfg)
		if sctx.EffectiveStatus == domain.StatusRed && plan.PlanType != domain.PlanRecoveryOnly {
			assert.False(t, result.Valid, "trial %d", trial)
		}
		if len(result.Blocking()) > 0 {
			assert.False(t, result.Valid, "trial %d", trial)
		}

		before := plan.Clone()
		first := Sanitize(plan, sctx, cfg)
		assert.Equal(t, before, plan, "trial %d: input mutated", trial)

		sanitized := Validate(first.Plan, sctx, cfg)
		assert.True(t, sanitized.Valid, "trial %d: %+v", trial, sanitized.Violations)
		assert.Empty(t, sanitized.Violations, "trial %d", trial)

		second := Sanitize(first.Plan, sctx, cfg)
		assert.Empty(t, second.Modifications, "trial %d", trial)
		assert.Equal(t, first.Plan, second.Plan, "trial %d", trial)
	}
}
