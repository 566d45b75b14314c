package safety

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a threshold configuration that would weaken
// the safety guarantees.
var ErrInvalidConfig = errors.New("invalid safety configuration")

// Config holds every tunable threshold used by the classifier, the
// allowed-elements generator, the validator and the sanitizer.
type Config struct {
	ACWRCritical float64 `yaml:"acwr_critical"`
	ACWRElevated float64 `yaml:"acwr_elevated"`
	FatigueMax   int     `yaml:"fatigue_max"`

	YouthAgeCutoff  int `yaml:"youth_age_cutoff"`
	YouthSprintCap  int `yaml:"youth_sprint_cap"`
	SeniorSprintCap int `yaml:"senior_sprint_cap"`

	MinWarmupMin   int `yaml:"min_warmup_min"`
	MinCooldownMin int `yaml:"min_cooldown_min"`

	HighRiskInjuryCodes []string `yaml:"high_risk_injury_codes"`
}

// DefaultConfig returns the production thresholds.
func DefaultConfig() Config {
	return Config{
		ACWRCritical:    1.8,
		ACWRElevated:    1.5,
		FatigueMax:      5,
		YouthAgeCutoff:  14,
		YouthSprintCap:  1,
		SeniorSprintCap: 2,
		MinWarmupMin:    10,
		MinCooldownMin:  5,
		HighRiskInjuryCodes: []string{
			"acl", "mcl", "pcl", "achilles", "fracture",
			"stress_fracture", "concussion", "spinal",
		},
	}
}

// Validate rejects configurations that loosen the age floors or break the
// threshold ordering.
func (c Config) Validate() error {
	var problems []string

	if c.ACWRElevated <= 0 {
		problems = append(problems, "acwr_elevated must be positive")
	}
	if c.ACWRCritical <= c.ACWRElevated {
		problems = append(problems, fmt.Sprintf("acwr_critical (%.2f) must be greater than acwr_elevated (%.2f)", c.ACWRCritical, c.ACWRElevated))
	}
	if c.FatigueMax < 1 {
		problems = append(problems, "fatigue_max must be at least 1")
	}
	if c.YouthAgeCutoff < 0 {
		problems = append(problems, "youth_age_cutoff must not be negative")
	}
	if c.YouthSprintCap < 0 || c.YouthSprintCap > 1 {
		problems = append(problems, "youth_sprint_cap must be 0 or 1")
	}
	if c.SeniorSprintCap < 0 || c.SeniorSprintCap > 2 {
		problems = append(problems, "senior_sprint_cap must be between 0 and 2")
	}
	if c.YouthSprintCap > c.SeniorSprintCap {
		problems = append(problems, "youth_sprint_cap must not exceed senior_sprint_cap")
	}
	if c.MinWarmupMin < 0 || c.MinCooldownMin < 0 {
		problems = append(problems, "minimum warm-up and cool-down must not be negative")
	}
	if len(c.HighRiskInjuryCodes) == 0 {
		problems = append(problems, "high_risk_injury_codes must not be empty")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// isHighRisk reports whether a normalized injury code is in the high-risk set.
func (c Config) isHighRisk(code string) bool {
	for _, hr := range c.HighRiskInjuryCodes {
		if strings.EqualFold(strings.TrimSpace(hr), code) {
			return true
		}
	}
	return false
}

// LoadConfigFile reads thresholds from a YAML file. Fields absent from the
// file keep their default values.
func LoadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading safety config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing safety config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadConfig builds the configuration from defaults, an optional YAML file
// named by TRAINSAFE_CONFIG, and TRAINSAFE_* environment overrides, in that order.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	if path := os.Getenv("TRAINSAFE_CONFIG"); path != "" {
		fileCfg, err := LoadConfigFile(path)
		if err != nil {
			return cfg, err
		}
		cfg = fileCfg
	}

	if v := os.Getenv("TRAINSAFE_ACWR_CRITICAL"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.ACWRCritical = f
		}
	}
	if v := os.Getenv("TRAINSAFE_ACWR_ELEVATED"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.ACWRElevated = f
		}
	}
	applyIntEnv(&cfg.FatigueMax, "TRAINSAFE_FATIGUE_MAX")
	applyIntEnv(&cfg.YouthAgeCutoff, "TRAINSAFE_YOUTH_AGE_CUTOFF")
	applyIntEnv(&cfg.MinWarmupMin, "TRAINSAFE_MIN_WARMUP_MIN")
	applyIntEnv(&cfg.MinCooldownMin, "TRAINSAFE_MIN_COOLDOWN_MIN")
	if v := os.Getenv("TRAINSAFE_HIGH_RISK_INJURIES"); v != "" {
		var codes []string
		for _, c := range strings.Split(v, ",") {
			if c = strings.TrimSpace(c); c != "" {
				codes = append(codes, strings.ToLower(c))
			}
		}
		cfg.HighRiskInjuryCodes = codes
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyIntEnv(dst *int, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*dst = n
}
