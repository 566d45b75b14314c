package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// PlayerFile is the top-level JSON structure for a player assessment file.
type PlayerFile struct {
	Player   PlayerImport    `json:"player"`
	Load     *LoadImport     `json:"load,omitempty"`
	Override *OverrideImport `json:"override,omitempty"`
}

// PlayerImport defines the player assessment fields. Missing optional fields
// stay nil so the classifier can apply its most restrictive reading.
type PlayerImport struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Age          *int     `json:"age,omitempty"`
	InjuryStatus string   `json:"injury_status,omitempty"`
	InjuryCodes  []string `json:"injury_codes,omitempty"`
}

// LoadImport defines the workload telemetry block.
type LoadImport struct {
	ACWR         *float64 `json:"acwr,omitempty"`
	FatigueLevel *int     `json:"fatigue_level,omitempty"`
}

// OverrideImport defines a supervisor override.
type OverrideImport struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

// LoadPlayerFile reads and parses a player assessment JSON file.
func LoadPlayerFile(path string) (*PlayerFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var pf PlayerFile
	if err := json.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parsing player file: %w", err)
	}
	return &pf, nil
}
