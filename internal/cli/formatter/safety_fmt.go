package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/trainsafe/internal/contract"
	"github.com/alexanderramin/trainsafe/internal/domain"
)

// FormatContext renders a player's safety status and activity envelope.
func FormatContext(sctx domain.SafetyContext) string {
	return RenderBox("Safety Context", StatusTone(sctx.EffectiveStatus), contextBody(sctx))
}

func contextBody(sctx domain.SafetyContext) string {
	var b strings.Builder

	name := domain.CoalesceStr(sctx.Player.Name, sctx.Player.ID)
	b.WriteString(fmt.Sprintf("%s  %s\n", Bold(name), StatusIndicator(sctx.EffectiveStatus)))
	if sctx.ComputedStatus != sctx.EffectiveStatus {
		b.WriteString(Dim(fmt.Sprintf("computed %s, raised by supervisor override", sctx.ComputedStatus)) + "\n")
	}

	if len(sctx.Flags) > 0 {
		flags := make([]string, len(sctx.Flags))
		for i, f := range sctx.Flags {
			flags[i] = string(f)
		}
		b.WriteString(Dim("flags: ") + strings.Join(flags, ", ") + "\n")
	}

	if o := sctx.Override; o != nil {
		state := StyleGreen.Render("applied")
		if !o.Applied {
			state = StyleYellow.Render("ignored, not stricter than computed")
		}
		b.WriteString(fmt.Sprintf("%s %s (%s): %s\n", Dim("override:"), o.Status, state, o.Reason))
	}

	b.WriteString("\n")
	b.WriteString(FormatEnvelope(sctx.Allowed))
	return b.String()
}

// FormatEnvelope renders the allowed training elements as a two-column table.
func FormatEnvelope(a domain.AllowedElements) string {
	excluded := Dim("none")
	if len(a.ExcludedCategories) > 0 {
		cs := make([]string, len(a.ExcludedCategories))
		for i, c := range a.ExcludedCategories {
			cs[i] = string(c)
		}
		excluded = strings.Join(cs, ", ")
	}

	rows := [][]string{
		{"Sprint days / week", fmt.Sprintf("%d %s", a.MaxSprintDaysPerWeek, Dim("("+string(a.SprintLimitRule)+")"))},
		{"Hard days / week", fmt.Sprintf("%d", a.MaxHardDaysPerWeek)},
		{"Max intensity", string(a.MaxIntensity)},
		{"Plyometrics", allowText(a.AllowPlyometrics)},
		{"Contact", allowText(a.AllowContact)},
		{"Excluded", excluded},
	}
	return RenderTable([]string{"ELEMENT", "LIMIT"}, rows)
}

// FormatCheck renders the outcome of a plan check.
func FormatCheck(resp *contract.CheckResponse) string {
	var b strings.Builder

	b.WriteString(contextBody(resp.Context))
	b.WriteString("\n")

	verdict := StyleGreen.Render("✔ candidate plan passes every rule")
	if !resp.Valid {
		verdict = StyleRed.Render("✖ candidate plan rejected")
	}
	b.WriteString(verdict + "\n")

	if len(resp.Violations) > 0 {
		b.WriteString("\n" + Header("Violations") + "\n")
		b.WriteString(FormatViolations(resp.Violations))
	}

	if len(resp.Modifications) > 0 {
		b.WriteString("\n" + Header("Modifications") + "\n")
		b.WriteString(FormatModifications(resp.Modifications))
	}

	b.WriteString("\n" + Header("Delivered Plan") + "\n")
	b.WriteString(FormatWeek(resp.Sanitized))

	if resp.EvaluationID != "" {
		b.WriteString("\n" + Dim("evaluation "+resp.EvaluationID))
	} else {
		b.WriteString("\n" + Dim("dry run, not recorded"))
	}

	return RenderBox("Plan Check", StatusTone(resp.Context.EffectiveStatus), b.String())
}

// FormatViolations renders validation findings in the order they were raised.
func FormatViolations(vs []domain.Violation) string {
	rows := make([][]string, 0, len(vs))
	for _, v := range vs {
		rows = append(rows, []string{SeverityBadge(v.Severity), string(v.RuleID), dayLabel(v.Day), v.Message})
	}
	return RenderTable([]string{"SEVERITY", "RULE", "DAY", "MESSAGE"}, rows)
}

// FormatModifications renders the sanitizer's audit trail.
func FormatModifications(mods []domain.PlanModification) string {
	rows := make([][]string, 0, len(mods))
	for _, m := range mods {
		rows = append(rows, []string{string(m.RuleID), dayLabel(m.Day), m.Field, Dim(m.Before), m.After})
	}
	return RenderTable([]string{"RULE", "DAY", "FIELD", "BEFORE", "AFTER"}, rows)
}

// FormatWeek renders one row per day of a plan.
func FormatWeek(p domain.TrainingProgramOutput) string {
	var b strings.Builder
	b.WriteString(Dim("plan type: ") + string(p.PlanType) + "\n")

	rows := make([][]string, 0, len(p.WeeklyPlan))
	for _, d := range p.WeeklyPlan {
		if d.Rest {
			rows = append(rows, []string{fmt.Sprintf("%d", d.Day), Dim("rest"), "", ""})
			continue
		}
		drills := make([]string, len(d.Drills))
		for i, dr := range d.Drills {
			drills[i] = string(dr.Category)
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", d.Day),
			intensityText(d.Intensity),
			strings.Join(drills, ", "),
			fmt.Sprintf("%d/%d", d.WarmupMin, d.CooldownMin),
		})
	}
	b.WriteString(RenderTable([]string{"DAY", "INTENSITY", "DRILLS", "WARM/COOL"}, rows))
	return b.String()
}

func intensityText(i domain.Intensity) string {
	switch i {
	case domain.IntensityHigh:
		return StyleRed.Render(string(i))
	case domain.IntensityModerate:
		return StyleYellow.Render(string(i))
	default:
		return StyleGreen.Render(string(i))
	}
}

func allowText(ok bool) string {
	if ok {
		return StyleGreen.Render("allowed")
	}
	return StyleRed.Render("excluded")
}
