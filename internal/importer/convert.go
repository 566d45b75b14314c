package importer

import (
	"strings"

	"github.com/alexanderramin/trainsafe/internal/domain"
)

// Convert turns a validated PlayerFile into the inputs of the safety context
// builder. Call ValidatePlayerFile first; Convert assumes the file is valid.
func Convert(pf *PlayerFile) (domain.PlayerContext, *domain.LoadContext, *domain.Override) {
	player := domain.PlayerContext{
		ID:           strings.TrimSpace(pf.Player.ID),
		Name:         domain.CoalesceStr(strings.TrimSpace(pf.Player.Name), strings.TrimSpace(pf.Player.ID)),
		Age:          domain.ValueOr(pf.Player.Age, 0),
		InjuryStatus: domain.InjuryStatus(pf.Player.InjuryStatus),
	}
	if len(pf.Player.InjuryCodes) > 0 {
		player.InjuryCodes = append([]string(nil), pf.Player.InjuryCodes...)
	}

	var load *domain.LoadContext
	if pf.Load != nil {
		load = (&domain.LoadContext{ACWR: pf.Load.ACWR, FatigueLevel: pf.Load.FatigueLevel}).Clone()
	}

	return player, load, ConvertOverride(pf.Override)
}

// ConvertOverride maps an override block, or nil when none was given.
func ConvertOverride(o *OverrideImport) *domain.Override {
	if o == nil {
		return nil
	}
	return &domain.Override{
		Status: domain.SafetyStatus(strings.ToUpper(strings.TrimSpace(o.Status))),
		Reason: strings.TrimSpace(o.Reason),
	}
}
