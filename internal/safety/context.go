package safety

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/trainsafe/internal/domain"
)

// ErrInvalidInput indicates a malformed input value, such as an injury status
// or override status outside its closed set.
var ErrInvalidInput = errors.New("invalid safety input")

// BuildContext classifies the player, resolves the optional override and
// derives the allowed elements from the effective status. The returned
// context shares no memory with its inputs.
func BuildContext(player domain.PlayerContext, load *domain.LoadContext, override *domain.Override, cfg Config) (domain.SafetyContext, error) {
	if !player.InjuryStatus.Valid() {
		return domain.SafetyContext{}, fmt.Errorf("%w: injury status %q", ErrInvalidInput, player.InjuryStatus)
	}
	if override != nil && !override.Status.Valid() {
		return domain.SafetyContext{}, fmt.Errorf("%w: override status %q", ErrInvalidInput, override.Status)
	}

	player = player.Clone()
	class := Classify(player, load, cfg)
	res := ResolveStatus(class.Status, override)

	sctx := domain.SafetyContext{
		Player:          player,
		ComputedStatus:  class.Status,
		EffectiveStatus: res.Effective,
		Allowed:         AllowedElementsFor(res.Effective, player, cfg),
		Flags:           append([]domain.ReasonFlag(nil), class.Flags...),
	}
	if override != nil {
		sctx.Override = &domain.OverrideMetadata{
			Status:  override.Status,
			Reason:  override.Reason,
			Applied: res.OverrideApplied,
		}
	}
	return sctx, nil
}
