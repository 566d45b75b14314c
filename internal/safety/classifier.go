package safety

import (
	"math"

	"github.com/alexanderramin/trainsafe/internal/domain"
)

// Classification is the classifier's verdict for one player.
type Classification struct {
	Status domain.SafetyStatus
	Flags  []domain.ReasonFlag
}

// Classify computes the safety status of a player from injury data and
// optional load telemetry. Every rule is evaluated and the most
// severe outcome wins. A nil load means no telemetry feed exists for the
// player and skips the load rules. A load with missing fields is read at its
// worst plausible value.
func Classify(player domain.PlayerContext, load *domain.LoadContext, cfg Config) Classification {
	c := classification{status: domain.StatusGreen}

	for _, code := range player.NormalizedInjuryCodes() {
		if cfg.isHighRisk(code) {
			c.raise(domain.StatusRed, domain.FlagHighRiskInjury)
			break
		}
	}

	switch player.InjuryStatus {
	case domain.InjurySevere:
		c.raise(domain.StatusRed, domain.FlagInjurySevere)
	case domain.InjuryModerate:
		c.raise(domain.StatusYellow, domain.FlagInjuryModerate)
	case domain.InjuryHealthy, domain.InjuryMinor:
	default:
		c.raise(domain.StatusRed, domain.FlagInjuryStatusUnknown)
	}

	if load != nil {
		classifyLoad(&c, load, cfg)
	}

	return Classification{Status: c.status, Flags: c.flags}
}

func classifyLoad(c *classification, load *domain.LoadContext, cfg Config) {
	switch {
	case load.ACWR == nil || math.IsNaN(*load.ACWR) || math.IsInf(*load.ACWR, 0) || *load.ACWR < 0:
		c.raise(domain.StatusRed, domain.FlagACWRMissing)
	case *load.ACWR > cfg.ACWRCritical:
		c.raise(domain.StatusRed, domain.FlagACWRCritical)
	case *load.ACWR > cfg.ACWRElevated:
		c.raise(domain.StatusYellow, domain.FlagACWRElevated)
	}

	switch {
	case load.FatigueLevel == nil || *load.FatigueLevel < 1:
		c.raise(domain.StatusYellow, domain.FlagFatigueMissing)
	case *load.FatigueLevel >= cfg.FatigueMax:
		c.raise(domain.StatusYellow, domain.FlagFatigueHigh)
	}
}

type classification struct {
	status domain.SafetyStatus
	flags  []domain.ReasonFlag
}

func (c *classification) raise(s domain.SafetyStatus, flag domain.ReasonFlag) {
	c.status = domain.MoreRestrictive(c.status, s)
	for _, f := range c.flags {
		if f == flag {
			return
		}
	}
	c.flags = append(c.flags, flag)
}
