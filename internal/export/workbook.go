// Package export writes a sanitized plan and its audit trail to an Excel
// workbook for coaching staff who do not use the CLI.
package export

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/trainsafe/internal/domain"
	"github.com/xuri/excelize/v2"
)

// Sheet names
const (
	SheetPlan     = "Plan"
	SheetSections = "Sections"
	SheetAudit    = "Audit"
)

var statusFill = map[domain.SafetyStatus]string{
	domain.StatusGreen:  "C6EFCE",
	domain.StatusYellow: "FFEB9C",
	domain.StatusRed:    "FFC7CE",
}

// BuildWorkbook lays out the plan, its sections and the modification audit.
func BuildWorkbook(plan domain.TrainingProgramOutput, mods []domain.PlanModification, sctx domain.SafetyContext) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SheetPlan); err != nil {
		f.Close()
		return nil, fmt.Errorf("naming plan sheet: %w", err)
	}
	for _, name := range []string{SheetSections, SheetAudit} {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, fmt.Errorf("creating sheet %s: %w", name, err)
		}
	}

	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"1F4E79"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("creating header style: %w", err)
	}

	steps := []func(*excelize.File, int) error{
		func(f *excelize.File, style int) error { return writePlanSheet(f, style, plan) },
		func(f *excelize.File, style int) error { return writeSectionsSheet(f, style, plan) },
		func(f *excelize.File, style int) error { return writeAuditSheet(f, style, mods, sctx) },
	}
	for _, step := range steps {
		if err := step(f, header); err != nil {
			f.Close()
			return nil, err
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}

// WriteWorkbook builds the workbook and saves it to path.
func WriteWorkbook(path string, plan domain.TrainingProgramOutput, mods []domain.PlanModification, sctx domain.SafetyContext) error {
	f, err := BuildWorkbook(plan, mods, sctx)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}
	return nil
}

func writePlanSheet(f *excelize.File, headerStyle int, plan domain.TrainingProgramOutput) error {
	sheet := SheetPlan
	if err := writeHeader(f, sheet, headerStyle, "Day", "Type", "Intensity", "Sprint", "Drills", "Warm-up (min)", "Cool-down (min)"); err != nil {
		return err
	}

	for i, d := range plan.WeeklyPlan {
		kind := "training"
		if d.Rest {
			kind = "rest"
		}
		row := []interface{}{d.Day, kind, string(d.Intensity), yesNo(d.IsSprintDay()), drillNames(d.Drills), d.WarmupMin, d.CooldownMin}
		if err := f.SetSheetRow(sheet, cell("A", i+2), &row); err != nil {
			return fmt.Errorf("writing day %d: %w", d.Day, err)
		}
	}

	next := len(plan.WeeklyPlan) + 3
	summary := [][]interface{}{
		{"Plan type", string(plan.PlanType)},
		{"Explanation", plan.Explanation},
	}
	for i, row := range summary {
		if err := f.SetSheetRow(sheet, cell("A", next+i), &row); err != nil {
			return fmt.Errorf("writing plan summary: %w", err)
		}
	}

	_ = f.SetColWidth(sheet, "A", "D", 12)
	_ = f.SetColWidth(sheet, "E", "E", 60)
	_ = f.SetColWidth(sheet, "F", "G", 16)
	return nil
}

func writeSectionsSheet(f *excelize.File, headerStyle int, plan domain.TrainingProgramOutput) error {
	sheet := SheetSections
	if err := writeHeader(f, sheet, headerStyle, "Section", "Drill", "Category", "Minutes"); err != nil {
		return err
	}

	r := 2
	for _, s := range plan.Sections {
		for _, dr := range s.Drills {
			row := []interface{}{s.Name, dr.Name, string(dr.Category), dr.DurationMin}
			if err := f.SetSheetRow(sheet, cell("A", r), &row); err != nil {
				return fmt.Errorf("writing section %s: %w", s.Name, err)
			}
			r++
		}
	}

	_ = f.SetColWidth(sheet, "A", "C", 22)
	return nil
}

func writeAuditSheet(f *excelize.File, headerStyle int, mods []domain.PlanModification, sctx domain.SafetyContext) error {
	sheet := SheetAudit

	info := [][]interface{}{
		{"Player", domain.CoalesceStr(sctx.Player.Name, sctx.Player.ID)},
		{"Computed status", string(sctx.ComputedStatus)},
		{"Effective status", string(sctx.EffectiveStatus)},
		{"Flags", joinFlags(sctx.Flags)},
		{"Override", overrideText(sctx.Override)},
	}
	for i, row := range info {
		if err := f.SetSheetRow(sheet, cell("A", i+1), &row); err != nil {
			return fmt.Errorf("writing audit summary: %w", err)
		}
	}
	if color, ok := statusFill[sctx.EffectiveStatus]; ok {
		style, err := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Bold: true},
			Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		})
		if err == nil {
			_ = f.SetCellStyle(sheet, "B3", "B3", style)
		}
	}

	top := len(info) + 2
	cols := []interface{}{"Rule", "Day", "Field", "Before", "After"}
	if err := f.SetSheetRow(sheet, cell("A", top), &cols); err != nil {
		return fmt.Errorf("writing audit header: %w", err)
	}
	_ = f.SetCellStyle(sheet, cell("A", top), cell("E", top), headerStyle)

	for i, m := range mods {
		row := []interface{}{string(m.RuleID), m.Day, m.Field, m.Before, m.After}
		if err := f.SetSheetRow(sheet, cell("A", top+1+i), &row); err != nil {
			return fmt.Errorf("writing modification %d: %w", i, err)
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 26)
	_ = f.SetColWidth(sheet, "B", "B", 30)
	_ = f.SetColWidth(sheet, "C", "E", 28)
	return nil
}

func writeHeader(f *excelize.File, sheet string, style int, titles ...string) error {
	row := make([]interface{}, len(titles))
	for i, t := range titles {
		row[i] = t
	}
	if err := f.SetSheetRow(sheet, "A1", &row); err != nil {
		return fmt.Errorf("writing %s header: %w", sheet, err)
	}
	last, err := excelize.CoordinatesToCellName(len(titles), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, style)
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func drillNames(drills []domain.DrillSelection) string {
	names := make([]string, 0, len(drills))
	for _, d := range drills {
		names = append(names, fmt.Sprintf("%s (%s, %d min)", d.Name, d.Category, d.DurationMin))
	}
	return strings.Join(names, "; ")
}

func joinFlags(flags []domain.ReasonFlag) string {
	parts := make([]string, len(flags))
	for i, f := range flags {
		parts[i] = string(f)
	}
	return strings.Join(parts, ", ")
}

func overrideText(o *domain.OverrideMetadata) string {
	if o == nil {
		return "none"
	}
	applied := "ignored, not stricter than computed"
	if o.Applied {
		applied = "applied"
	}
	return fmt.Sprintf("%s (%s): %s", o.Status, applied, o.Reason)
}
