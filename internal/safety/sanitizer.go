package safety

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/alexanderramin/trainsafe/internal/domain"
)

// SanitizeResult holds the rewritten plan and the ordered audit of every change.
type SanitizeResult struct {
	Plan          domain.TrainingProgramOutput
	Modifications []domain.PlanModification
}

// Sanitize rewrites a candidate plan so that it fits the safety context.
// The input is never mutated. Fixes run most severe first:
//
//  1. RED: replace the whole plan with the recovery template.
//  2. Normalize the plan shape, then demote excess sprint and hard days,
//     highest day number first.
//  3. Replace drills in excluded or unknown categories with a technical placeholder.
//  4. Clip day intensity to the ceiling.
//  5. Pad warm-up and cool-down to the configured minimum.
//
// Sanitizing the result again produces no modifications.
func Sanitize(plan domain.TrainingProgramOutput, sctx domain.SafetyContext, cfg Config) SanitizeResult {
	if sctx.EffectiveStatus.Rank() >= domain.StatusRed.Rank() {
		return recoveryOnly(plan, cfg)
	}

	s := sanitizer{allowed: sctx.Allowed, cfg: cfg}
	out := plan.Clone()

	s.normalizeShape(&out)
	s.demoteSprintDays(&out)
	s.demoteHardDays(&out)
	s.replaceExcludedDrills(&out)
	s.clipIntensity(&out)
	s.padDurations(&out)

	return SanitizeResult{Plan: out, Modifications: s.mods}
}

func recoveryOnly(plan domain.TrainingProgramOutput, cfg Config) SanitizeResult {
	template := RecoveryTemplate(cfg)
	if reflect.DeepEqual(plan, template) {
		return SanitizeResult{Plan: template}
	}
	return SanitizeResult{
		Plan: template,
		Modifications: []domain.PlanModification{{
			RuleID: domain.RuleRecoveryTemplate,
			Field:  "plan",
			Before: summarizePlan(plan),
			After:  summarizePlan(template),
		}},
	}
}

func summarizePlan(p domain.TrainingProgramOutput) string {
	return fmt.Sprintf("%s: %d days, %d sprint days, %d hard days",
		domain.CoalesceStr(string(p.PlanType), "unset"), len(p.WeeklyPlan), len(p.SprintDays()), len(p.HardDays()))
}

type sanitizer struct {
	allowed domain.AllowedElements
	cfg     Config
	mods    []domain.PlanModification
}

func (s *sanitizer) record(rule domain.RuleID, day int, field, before, after string) {
	s.mods = append(s.mods, domain.PlanModification{
		RuleID: rule,
		Day:    day,
		Field:  field,
		Before: before,
		After:  after,
	})
}

// normalizeShape makes the plan a well-formed week: a known plan type and
// exactly one entry per day 1..7 in day order, rest days without content and
// training days with a known intensity.
func (s *sanitizer) normalizeShape(p *domain.TrainingProgramOutput) {
	if !p.PlanType.Valid() {
		s.record(domain.RulePlanShape, 0, "plan_type", string(p.PlanType), string(domain.PlanModified))
		p.PlanType = domain.PlanModified
	}

	var slots [domain.DaysPerWeek]*domain.DayPlan
	inOrder := true
	last := 0
	for i := range p.WeeklyPlan {
		d := p.WeeklyPlan[i]
		switch {
		case d.Day < 1 || d.Day > domain.DaysPerWeek:
			s.record(domain.RulePlanShape, d.Day, "day", strconv.Itoa(d.Day), "dropped")
			continue
		case slots[d.Day-1] != nil:
			s.record(domain.RulePlanShape, d.Day, "day", "duplicate", "dropped")
			continue
		}
		if d.Day < last {
			inOrder = false
		}
		last = d.Day
		slots[d.Day-1] = &d
	}
	if !inOrder {
		s.record(domain.RulePlanShape, 0, "weekly_plan", "unordered", "ordered by day")
	}

	week := make([]domain.DayPlan, domain.DaysPerWeek)
	for i, slot := range slots {
		if slot == nil {
			s.record(domain.RulePlanShape, i+1, "day", "missing", "rest")
			week[i] = domain.DayPlan{Day: i + 1, Rest: true, Intensity: domain.IntensityLow}
			continue
		}
		week[i] = *slot
	}

	for i := range week {
		d := &week[i]
		if d.Rest {
			if len(d.Drills) > 0 {
				s.record(domain.RulePlanShape, d.Day, "drills", fmt.Sprintf("%d drills", len(d.Drills)), "none")
				d.Drills = nil
			}
			if d.Intensity != domain.IntensityLow {
				s.record(domain.RulePlanShape, d.Day, "intensity", string(d.Intensity), string(domain.IntensityLow))
				d.Intensity = domain.IntensityLow
			}
			continue
		}
		if !d.Intensity.Valid() {
			s.record(domain.RulePlanShape, d.Day, "intensity", string(d.Intensity), string(domain.IntensityLow))
			d.Intensity = domain.IntensityLow
		}
	}

	p.WeeklyPlan = week
}

// demoteSprintDays turns the excess sprint days into technical days,
// starting from the highest day number.
func (s *sanitizer) demoteSprintDays(p *domain.TrainingProgramOutput) {
	var idx []int
	for i, d := range p.WeeklyPlan {
		if d.IsSprintDay() {
			idx = append(idx, i)
		}
	}
	excess := len(idx) - s.allowed.MaxSprintDaysPerWeek
	rule := sprintRule(s.allowed)
	for j := 0; j < excess; j++ {
		d := &p.WeeklyPlan[idx[len(idx)-1-j]]
		for k, dr := range d.Drills {
			if dr.Category == domain.CategorySprint {
				d.Drills[k] = technicalPlaceholder(dr.DurationMin)
			}
		}
		s.record(rule, d.Day, "day_type", "sprint", "technical")
	}
}

// demoteHardDays lowers the excess high-intensity days, starting from the
// highest day number.
func (s *sanitizer) demoteHardDays(p *domain.TrainingProgramOutput) {
	var idx []int
	for i, d := range p.WeeklyPlan {
		if d.IsHardDay() {
			idx = append(idx, i)
		}
	}
	excess := len(idx) - s.allowed.MaxHardDaysPerWeek
	target := domain.LowerIntensity(domain.IntensityModerate, s.allowed.MaxIntensity)
	for j := 0; j < excess; j++ {
		d := &p.WeeklyPlan[idx[len(idx)-1-j]]
		s.record(domain.RuleHardDayLimit, d.Day, "intensity", string(d.Intensity), string(target))
		d.Intensity = target
	}
}

func (s *sanitizer) replaceExcludedDrills(p *domain.TrainingProgramOutput) {
	for i := range p.WeeklyPlan {
		d := &p.WeeklyPlan[i]
		if d.Rest {
			continue
		}
		s.replaceIn(d.Drills, d.Day, "drill")
	}
	for i := range p.Sections {
		sec := &p.Sections[i]
		s.replaceIn(sec.Drills, 0, "section:"+sec.Name)
	}
}

func (s *sanitizer) replaceIn(drills []domain.DrillSelection, day int, field string) {
	for k, dr := range drills {
		if !s.allowed.Excludes(dr.Category) {
			continue
		}
		rule := domain.RuleExcludedCategory
		if !dr.Category.Valid() {
			rule = domain.RuleUnknownCategory
		}
		drills[k] = technicalPlaceholder(dr.DurationMin)
		s.record(rule, day, field, fmt.Sprintf("%s (%s)", dr.Name, dr.Category), placeholderDrillName)
	}
}

func (s *sanitizer) clipIntensity(p *domain.TrainingProgramOutput) {
	ceiling := s.allowed.MaxIntensity
	for i := range p.WeeklyPlan {
		d := &p.WeeklyPlan[i]
		if d.Rest || d.Intensity.Rank() <= ceiling.Rank() {
			continue
		}
		s.record(domain.RuleIntensityCeiling, d.Day, "intensity", string(d.Intensity), string(ceiling))
		d.Intensity = ceiling
	}
}

func (s *sanitizer) padDurations(p *domain.TrainingProgramOutput) {
	for i := range p.WeeklyPlan {
		d := &p.WeeklyPlan[i]
		if d.Rest {
			continue
		}
		if d.WarmupMin < s.cfg.MinWarmupMin {
			s.record(domain.RuleWarmupTooShort, d.Day, "warmup_min", strconv.Itoa(d.WarmupMin), strconv.Itoa(s.cfg.MinWarmupMin))
			d.WarmupMin = s.cfg.MinWarmupMin
		}
		if d.CooldownMin < s.cfg.MinCooldownMin {
			s.record(domain.RuleCooldownTooShort, d.Day, "cooldown_min", strconv.Itoa(d.CooldownMin), strconv.Itoa(s.cfg.MinCooldownMin))
			d.CooldownMin = s.cfg.MinCooldownMin
		}
	}
}
