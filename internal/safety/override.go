package safety

import "github.com/alexanderramin/trainsafe/internal/domain"

// Resolution is the outcome of combining the computed status with a
// supervisor override.
type Resolution struct {
	Effective domain.SafetyStatus
	// OverrideApplied is true only when the override made the outcome
	// stricter than the computed status.
	OverrideApplied bool
}

// ResolveStatus returns the more restrictive of computed and the override.
// An override that would loosen the outcome is accepted and has no effect.
func ResolveStatus(computed domain.SafetyStatus, override *domain.Override) Resolution {
	if override == nil {
		return Resolution{Effective: domain.MoreRestrictive(computed, computed)}
	}
	effective := domain.MoreRestrictive(computed, override.Status)
	return Resolution{
		Effective:       effective,
		OverrideApplied: effective.Rank() > computed.Rank(),
	}
}
