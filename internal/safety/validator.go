package safety

import (
	"fmt"

	"github.com/alexanderramin/trainsafe/internal/domain"
)

// ValidationResult lists every finding for a candidate plan.
type ValidationResult struct {
	Valid      bool
	Violations []domain.Violation
}

// Blocking returns the violations that make the plan invalid.
func (r ValidationResult) Blocking() []domain.Violation {
	var out []domain.Violation
	for _, v := range r.Violations {
		if v.Severity.Blocking() {
			out = append(out, v)
		}
	}
	return out
}

// Validate checks a candidate plan against the safety context. All checks
// run regardless of earlier findings. The plan is valid iff no finding has
// error or critical severity.
func Validate(plan domain.TrainingProgramOutput, sctx domain.SafetyContext, cfg Config) ValidationResult {
	var c checker

	c.checkShape(plan)
	c.checkPlanType(plan, sctx.EffectiveStatus)
	c.checkSprintDays(plan, sctx.Allowed)
	c.checkHardDays(plan, sctx.Allowed)
	c.checkCategories(plan, sctx.Allowed)
	c.checkIntensity(plan, sctx.Allowed)
	c.checkDurations(plan, cfg)

	valid := true
	for _, v := range c.found {
		if v.Severity.Blocking() {
			valid = false
			break
		}
	}
	return ValidationResult{Valid: valid, Violations: c.found}
}

type checker struct {
	found []domain.Violation
}

func (c *checker) add(rule domain.RuleID, sev domain.Severity, day int, format string, args ...any) {
	c.found = append(c.found, domain.Violation{
		RuleID:   rule,
		Severity: sev,
		Day:      day,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (c *checker) checkShape(plan domain.TrainingProgramOutput) {
	if !plan.PlanType.Valid() {
		c.add(domain.RulePlanShape, domain.SeverityError, 0, "unknown plan type %q", plan.PlanType)
	}
	if len(plan.WeeklyPlan) != domain.DaysPerWeek {
		c.add(domain.RulePlanShape, domain.SeverityError, 0,
			"weekly plan has %d days, expected %d", len(plan.WeeklyPlan), domain.DaysPerWeek)
	}

	seen := make(map[int]bool, len(plan.WeeklyPlan))
	for _, d := range plan.WeeklyPlan {
		switch {
		case d.Day < 1 || d.Day > domain.DaysPerWeek:
			c.add(domain.RulePlanShape, domain.SeverityError, d.Day, "day number %d is outside 1..%d", d.Day, domain.DaysPerWeek)
		case seen[d.Day]:
			c.add(domain.RulePlanShape, domain.SeverityError, d.Day, "day %d appears more than once", d.Day)
		}
		seen[d.Day] = true

		if d.Rest {
			if len(d.Drills) > 0 {
				c.add(domain.RulePlanShape, domain.SeverityError, d.Day, "rest day %d carries %d drills", d.Day, len(d.Drills))
			}
			if d.Intensity != "" && d.Intensity != domain.IntensityLow {
				c.add(domain.RulePlanShape, domain.SeverityError, d.Day, "rest day %d has %q intensity", d.Day, d.Intensity)
			}
			continue
		}
		if !d.Intensity.Valid() {
			c.add(domain.RulePlanShape, domain.SeverityError, d.Day, "day %d has unknown intensity %q", d.Day, d.Intensity)
		}
	}
}

func (c *checker) checkPlanType(plan domain.TrainingProgramOutput, status domain.SafetyStatus) {
	if status.Rank() >= domain.StatusRed.Rank() && plan.PlanType != domain.PlanRecoveryOnly {
		c.add(domain.RulePlanTypeStatus, domain.SeverityCritical, 0,
			"plan type %q is not permitted under %s; only %s", plan.PlanType, domain.StatusRed, domain.PlanRecoveryOnly)
	}
}

func (c *checker) checkSprintDays(plan domain.TrainingProgramOutput, allowed domain.AllowedElements) {
	days := plan.SprintDays()
	if len(days) > allowed.MaxSprintDaysPerWeek {
		c.add(sprintRule(allowed), domain.SeverityCritical, 0,
			"%d sprint days scheduled (days %v), limit is %d", len(days), days, allowed.MaxSprintDaysPerWeek)
	}
}

func (c *checker) checkHardDays(plan domain.TrainingProgramOutput, allowed domain.AllowedElements) {
	days := plan.HardDays()
	if len(days) > allowed.MaxHardDaysPerWeek {
		c.add(domain.RuleHardDayLimit, domain.SeverityError, 0,
			"%d hard days scheduled (days %v), limit is %d", len(days), days, allowed.MaxHardDaysPerWeek)
	}
}

func (c *checker) checkCategories(plan domain.TrainingProgramOutput, allowed domain.AllowedElements) {
	for _, d := range plan.WeeklyPlan {
		if d.Rest {
			continue
		}
		for _, dr := range d.Drills {
			c.checkDrill(allowed, d.Day, fmt.Sprintf("day %d", d.Day), dr)
		}
	}
	for _, s := range plan.Sections {
		for _, dr := range s.Drills {
			c.checkDrill(allowed, 0, fmt.Sprintf("section %q", s.Name), dr)
		}
	}
}

func (c *checker) checkDrill(allowed domain.AllowedElements, day int, where string, dr domain.DrillSelection) {
	if !dr.Category.Valid() {
		c.add(domain.RuleUnknownCategory, domain.SeverityError, day,
			"%s: drill %q has unknown category %q", where, dr.Name, dr.Category)
		return
	}
	if allowed.Excludes(dr.Category) {
		c.add(domain.RuleExcludedCategory, domain.SeverityError, day,
			"%s: drill %q uses excluded category %s", where, dr.Name, dr.Category)
	}
}

func (c *checker) checkIntensity(plan domain.TrainingProgramOutput, allowed domain.AllowedElements) {
	for _, d := range plan.WeeklyPlan {
		if d.Rest || !d.Intensity.Valid() {
			continue
		}
		if d.Intensity.Rank() > allowed.MaxIntensity.Rank() {
			c.add(domain.RuleIntensityCeiling, domain.SeverityError, d.Day,
				"day %d intensity %s exceeds ceiling %s", d.Day, d.Intensity, allowed.MaxIntensity)
		}
	}
}

func (c *checker) checkDurations(plan domain.TrainingProgramOutput, cfg Config) {
	for _, d := range plan.WeeklyPlan {
		if d.Rest {
			continue
		}
		if d.WarmupMin < cfg.MinWarmupMin {
			c.add(domain.RuleWarmupTooShort, domain.SeverityWarning, d.Day,
				"day %d warm-up %d min is below the %d min minimum", d.Day, d.WarmupMin, cfg.MinWarmupMin)
		}
		if d.CooldownMin < cfg.MinCooldownMin {
			c.add(domain.RuleCooldownTooShort, domain.SeverityWarning, d.Day,
				"day %d cool-down %d min is below the %d min minimum", d.Day, d.CooldownMin, cfg.MinCooldownMin)
		}
	}
}

func sprintRule(allowed domain.AllowedElements) domain.RuleID {
	if allowed.SprintLimitRule == "" {
		return domain.RuleSprintDayLimit
	}
	return allowed.SprintLimitRule
}
