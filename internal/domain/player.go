package domain

import (
	"sort"
	"strings"
)

// PlayerContext is the assessment snapshot a classification is computed from.
// It is rebuilt from source data on every request.
type PlayerContext struct {
	ID           string
	Name         string
	Age          int // 0 when unknown
	InjuryStatus InjuryStatus
	InjuryCodes  []string
}

// NormalizedInjuryCodes returns the injury codes trimmed, lower-cased,
// de-duplicated and sorted.
func (p PlayerContext) NormalizedInjuryCodes() []string {
	seen := make(map[string]bool, len(p.InjuryCodes))
	out := make([]string, 0, len(p.InjuryCodes))
	for _, c := range p.InjuryCodes {
		code := strings.ToLower(strings.TrimSpace(c))
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// Clone returns a copy that shares no slices with p.
func (p PlayerContext) Clone() PlayerContext {
	out := p
	if p.InjuryCodes != nil {
		out.InjuryCodes = append([]string(nil), p.InjuryCodes...)
	}
	return out
}

// LoadContext carries workload telemetry. Nil pointer fields mean the
// telemetry feed did not report the value.
type LoadContext struct {
	ACWR         *float64
	FatigueLevel *int
}

func (l *LoadContext) Clone() *LoadContext {
	if l == nil {
		return nil
	}
	out := &LoadContext{}
	if l.ACWR != nil {
		v := *l.ACWR
		out.ACWR = &v
	}
	if l.FatigueLevel != nil {
		v := *l.FatigueLevel
		out.FatigueLevel = &v
	}
	return out
}

// Override is a supervisor-submitted status. It can only tighten the
// computed status.
type Override struct {
	Status SafetyStatus
	Reason string
}
