package safety

import (
	"testing"

	"github.com/alexanderramin/trainsafe/internal/domain"
	"github.com/alexanderramin/trainsafe/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestAllowedElements_Green16YearOld(t *testing.T) {
	player := testutil.NewTestPlayer("Ana", testutil.WithAge(16))

	a := AllowedElementsFor(domain.StatusGreen, player, DefaultConfig())

	assert.Equal(t, 2, a.MaxSprintDaysPerWeek)
	assert.Equal(t, domain.RuleAgeSprintLimit, a.SprintLimitRule)
	assert.Equal(t, 3, a.MaxHardDaysPerWeek)
	assert.True(t, a.AllowPlyometrics)
	assert.True(t, a.AllowContact)
	assert.Equal(t, domain.IntensityHigh, a.MaxIntensity)
	assert.Empty(t, a.ExcludedCategories)
}

func TestAllowedElements_Under14_SprintCapOneEvenWhenGreen(t *testing.T) {
	player := testutil.NewTestPlayer("Kit", testutil.WithAge(12))

	a := AllowedElementsFor(domain.StatusGreen, player, DefaultConfig())

	assert.Equal(t, 1, a.MaxSprintDaysPerWeek)
	assert.Equal(t, domain.RuleAgeSprintLimit, a.SprintLimitRule)
}

func TestAllowedElements_UnknownAge_UsesYouthCap(t *testing.T) {
	player := testutil.NewTestPlayer("Lee", testutil.WithAge(0))

	a := AllowedElementsFor(domain.StatusGreen, player, DefaultConfig())

	assert.Equal(t, 1, a.MaxSprintDaysPerWeek)
}

func TestAllowedElements_Yellow(t *testing.T) {
	player := testutil.NewTestPlayer("Max", testutil.WithAge(17))

	a := AllowedElementsFor(domain.StatusYellow, player, DefaultConfig())

	assert.Equal(t, 1, a.MaxSprintDaysPerWeek)
	assert.Equal(t, domain.RuleSprintDayLimit, a.SprintLimitRule, "status table is tighter than the age cap")
	assert.Equal(t, 2, a.MaxHardDaysPerWeek)
	assert.False(t, a.AllowPlyometrics)
	assert.Equal(t, domain.IntensityModerate, a.MaxIntensity)
	assert.Equal(t, []domain.DrillCategory{domain.CategoryContact, domain.CategoryPlyometrics}, a.ExcludedCategories)
}

func TestAllowedElements_RedZeroesEverything(t *testing.T) {
	player := testutil.NewTestPlayer("Ned", testutil.WithAge(18), testutil.WithInjuryCodes("acl"))

	a := AllowedElementsFor(domain.StatusRed, player, DefaultConfig())

	assert.Equal(t, 0, a.MaxSprintDaysPerWeek)
	assert.Equal(t, 0, a.MaxHardDaysPerWeek)
	assert.False(t, a.AllowPlyometrics)
	assert.False(t, a.AllowContact)
	assert.Equal(t, domain.IntensityLow, a.MaxIntensity)
	assert.Equal(t, []domain.DrillCategory{
		domain.CategoryContact, domain.CategoryPlyometrics, domain.CategorySprint,
	}, a.ExcludedCategories)
}

func TestAllowedElements_HighRiskInjury_ExcludesEvenUnderGreen(t *testing.T) {
	// The classifier never pairs a high-risk code with GREEN; this checks
	// that the envelope does not depend on it.
	player := testutil.NewTestPlayer("Oda", testutil.WithInjuryCodes("achilles"))

	a := AllowedElementsFor(domain.StatusGreen, player, DefaultConfig())

	assert.Equal(t, 0, a.MaxSprintDaysPerWeek)
	assert.Equal(t, domain.RuleHighRiskInjury, a.SprintLimitRule)
	assert.False(t, a.AllowPlyometrics)
	assert.False(t, a.AllowContact)
	assert.True(t, a.Excludes(domain.CategorySprint))
	assert.True(t, a.Excludes(domain.CategoryPlyometrics))
	assert.True(t, a.Excludes(domain.CategoryContact))
	assert.False(t, a.Excludes(domain.CategoryTechnical))
}

func TestAllowedElements_UnknownCategoryIsAlwaysExcluded(t *testing.T) {
	a := AllowedElementsFor(domain.StatusGreen, testutil.NewTestPlayer("Pia"), DefaultConfig())
	assert.True(t, a.Excludes(domain.DrillCategory("parkour")))
}

func TestAllowedElements_MonotonicAcrossStatuses(t *testing.T) {
	cfg := DefaultConfig()
	for _, age := range []int{0, 9, 13, 14, 16, 25} {
		player := testutil.NewTestPlayer("P", testutil.WithAge(age))
		green := AllowedElementsFor(domain.StatusGreen, player, cfg)
		yellow := AllowedElementsFor(domain.StatusYellow, player, cfg)
		red := AllowedElementsFor(domain.StatusRed, player, cfg)

		assertNoLooser(t, yellow, green, age)
		assertNoLooser(t, red, yellow, age)
	}
}

// assertNoLooser checks that tighter permits nothing that looser forbids.
func assertNoLooser(t *testing.T, tighter, looser domain.AllowedElements, age int) {
	t.Helper()
	assert.LessOrEqual(t, tighter.MaxSprintDaysPerWeek, looser.MaxSprintDaysPerWeek, "age %d sprint", age)
	assert.LessOrEqual(t, tighter.MaxHardDaysPerWeek, looser.MaxHardDaysPerWeek, "age %d hard", age)
	assert.LessOrEqual(t, tighter.MaxIntensity.Rank(), looser.MaxIntensity.Rank(), "age %d intensity", age)
	if tighter.AllowPlyometrics {
		assert.True(t, looser.AllowPlyometrics, "age %d plyometrics", age)
	}
	if tighter.AllowContact {
		assert.True(t, looser.AllowContact, "age %d contact", age)
	}
	for _, c := range looser.ExcludedCategories {
		assert.True(t, tighter.Excludes(c), "age %d: %s excluded by looser envelope", age, c)
	}
}
