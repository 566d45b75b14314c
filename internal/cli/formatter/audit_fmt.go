package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/trainsafe/internal/domain"
)

// FormatEvaluationList renders recent evaluations newest first.
func FormatEvaluationList(evals []*domain.Evaluation, now time.Time) string {
	if len(evals) == 0 {
		return Dim("No evaluations recorded.") + "\n"
	}

	rows := make([][]string, 0, len(evals))
	for _, e := range evals {
		valid := StyleGreen.Render("valid")
		if !e.Valid {
			valid = StyleRed.Render("rejected")
		}
		rows = append(rows, []string{
			ShortID(e.ID),
			Bold(playerLabel(e)),
			StatusIndicator(e.EffectiveStatus),
			valid,
			fmt.Sprintf("%d", len(e.Modifications)),
			HumanTimestampFrom(e.CreatedAt, now),
		})
	}
	return RenderTable([]string{"ID", "PLAYER", "STATUS", "CANDIDATE", "MODS", "WHEN"}, rows)
}

// FormatEvaluation renders a single audit record with its findings.
func FormatEvaluation(e *domain.Evaluation) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n", Bold(playerLabel(e)), StatusIndicator(e.EffectiveStatus)))
	b.WriteString(Dim(fmt.Sprintf("id %s, recorded %s", e.ID, e.CreatedAt.Local().Format("Jan 2, 2006 15:04"))) + "\n")
	b.WriteString(fmt.Sprintf("%s %s  %s %s\n", Dim("computed:"), e.ComputedStatus, Dim("effective:"), e.EffectiveStatus))
	if len(e.Flags) > 0 {
		flags := make([]string, len(e.Flags))
		for i, f := range e.Flags {
			flags[i] = string(f)
		}
		b.WriteString(Dim("flags: ") + strings.Join(flags, ", ") + "\n")
	}
	if o := e.Override; o != nil {
		b.WriteString(fmt.Sprintf("%s %s (applied: %t): %s\n", Dim("override:"), o.Status, o.Applied, o.Reason))
	}
	b.WriteString(fmt.Sprintf("%s %s → %s\n", Dim("plan type:"), e.PlanTypeIn, e.PlanTypeOut))

	if len(e.Violations) > 0 {
		b.WriteString("\n" + Header("Violations") + "\n")
		b.WriteString(FormatViolations(e.Violations))
	}
	if len(e.Modifications) > 0 {
		b.WriteString("\n" + Header("Modifications") + "\n")
		b.WriteString(FormatModifications(e.Modifications))
	}

	return RenderBox("Evaluation", StatusTone(e.EffectiveStatus), b.String())
}

func playerLabel(e *domain.Evaluation) string {
	return domain.CoalesceStr(e.PlayerName, e.PlayerID)
}
