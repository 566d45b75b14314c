package importer

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/trainsafe/internal/domain"
)

// ValidatePlayerFile checks a player file for shape errors before conversion.
// Returns a slice of all validation errors found.
func ValidatePlayerFile(pf *PlayerFile) []error {
	var errs []error

	errs = append(errs, validatePlayer(&pf.Player)...)
	errs = append(errs, validateLoad(pf.Load)...)
	errs = append(errs, validateOverride(pf.Override)...)

	return errs
}

func validatePlayer(p *PlayerImport) []error {
	var errs []error

	if strings.TrimSpace(p.ID) == "" {
		errs = append(errs, fmt.Errorf("player.id is required"))
	}
	if p.Age != nil && *p.Age < 0 {
		errs = append(errs, fmt.Errorf("player.age must not be negative, got %d", *p.Age))
	}
	if p.InjuryStatus != "" && !domain.ValidInjuryStatuses[p.InjuryStatus] {
		errs = append(errs, fmt.Errorf("player.injury_status: invalid value %q", p.InjuryStatus))
	}
	for i, code := range p.InjuryCodes {
		if strings.TrimSpace(code) == "" {
			errs = append(errs, fmt.Errorf("player.injury_codes[%d] is empty", i))
		}
	}

	return errs
}

func validateLoad(l *LoadImport) []error {
	if l == nil {
		return nil
	}
	var errs []error

	if l.ACWR != nil && *l.ACWR < 0 {
		errs = append(errs, fmt.Errorf("load.acwr must not be negative, got %g", *l.ACWR))
	}
	if l.FatigueLevel != nil && *l.FatigueLevel < 0 {
		errs = append(errs, fmt.Errorf("load.fatigue_level must not be negative, got %d", *l.FatigueLevel))
	}

	return errs
}

func validateOverride(o *OverrideImport) []error {
	if o == nil {
		return nil
	}
	var errs []error

	if _, err := domain.ParseSafetyStatus(strings.ToUpper(strings.TrimSpace(o.Status))); err != nil {
		errs = append(errs, fmt.Errorf("override.status: %w", err))
	}
	if strings.TrimSpace(o.Reason) == "" {
		errs = append(errs, fmt.Errorf("override.reason is required"))
	}

	return errs
}
