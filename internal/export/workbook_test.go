package export

import (
	"path/filepath"
	"testing"

	"github.com/alexanderramin/trainsafe/internal/domain"
	"github.com/alexanderramin/trainsafe/internal/safety"
	"github.com/alexanderramin/trainsafe/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteWorkbook_SanitizedPlanAndAudit(t *testing.T) {
	cfg := safety.DefaultConfig()
	player := testutil.NewTestPlayer("Kit", testutil.WithAge(12))
	sctx, err := safety.BuildContext(player, nil, &domain.Override{Status: domain.StatusYellow, Reason: "growth spurt"}, cfg)
	require.NoError(t, err)
	result := safety.Sanitize(testutil.NewTestProgram(testutil.WithSprintDays(1, 3)), sctx, cfg)
	require.NotEmpty(t, result.Modifications)

	path := filepath.Join(t.TempDir(), "plan.xlsx")
	require.NoError(t, WriteWorkbook(path, result.Plan, result.Modifications, sctx))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetPlan, SheetSections, SheetAudit}, f.GetSheetList())

	rows, err := f.GetRows(SheetPlan)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 8)
	assert.Equal(t, []string{"Day", "Type", "Intensity", "Sprint", "Drills", "Warm-up (min)", "Cool-down (min)"}, rows[0])
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "yes", rows[1][3])
	assert.Equal(t, "rest", rows[2][1])

	status, err := f.GetCellValue(SheetAudit, "B3")
	require.NoError(t, err)
	assert.Equal(t, "YELLOW", status)

	override, err := f.GetCellValue(SheetAudit, "B5")
	require.NoError(t, err)
	assert.Contains(t, override, "applied")

	audit, err := f.GetRows(SheetAudit)
	require.NoError(t, err)
	assert.Equal(t, "Rule", audit[6][0])
	assert.Len(t, audit, 7+len(result.Modifications))
	assert.Equal(t, string(result.Modifications[0].RuleID), audit[7][0])
}

func TestBuildWorkbook_EmptySections(t *testing.T) {
	plan := testutil.NewTestProgram()
	plan.Sections = nil

	f, err := BuildWorkbook(plan, nil, domain.SafetyContext{EffectiveStatus: domain.StatusGreen})
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetSections)
	require.NoError(t, err)
	assert.Len(t, rows, 1, "header only")
}
