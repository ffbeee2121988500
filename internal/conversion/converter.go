// Package conversion translates a stat value between two rule systems by
// rescaling its deviation from the expected value at a character level.
package conversion

import (
	"fmt"

	"github.com/KirkDiggler/stat-converter/internal/errors"
)

// ConverterConfig holds the identity and policy of a Converter
type ConverterConfig struct {
	SourceSystem string
	TargetSystem string
	StatNameIn   string
	StatNameOut  string
	Policy       Policy
}

// Converter converts one stat from a source system to a target system.
// It holds no mutable state and is safe for concurrent use.
type Converter struct {
	SourceSystem string
	TargetSystem string
	StatNameIn   string
	StatNameOut  string

	policy Policy
}

// NewConverter creates a converter for the configured policy
func NewConverter(cfg *ConverterConfig) (*Converter, error) {
	if cfg == nil {
		return nil, errors.Configuration("converter config is required")
	}
	if cfg.Policy == nil {
		return nil, errors.Configuration("conversion policy is required")
	}

	switch p := cfg.Policy.(type) {
	case PolicyFuncs:
		if err := p.validate(); err != nil {
			return nil, err
		}
	case *PolicyFuncs:
		if p == nil {
			return nil, errors.Configuration("conversion policy is required")
		}
		if err := p.validate(); err != nil {
			return nil, err
		}
	}

	return &Converter{
		SourceSystem: cfg.SourceSystem,
		TargetSystem: cfg.TargetSystem,
		StatNameIn:   cfg.StatNameIn,
		StatNameOut:  cfg.StatNameOut,
		policy:       cfg.Policy,
	}, nil
}

// VarianceScaling delegates to the policy
func (c *Converter) VarianceScaling(variance float64) float64 {
	return c.policy.VarianceScaling(variance)
}

// NominalSourceValue delegates to the policy
func (c *Converter) NominalSourceValue(level int) float64 {
	return c.policy.NominalSourceValue(level)
}

// NominalTargetValue delegates to the policy
func (c *Converter) NominalTargetValue(level int) float64 {
	return c.policy.NominalTargetValue(level)
}

// Variance returns the fractional deviation of sourceValue from the nominal
// source value at level. A zero nominal is an arithmetic error.
func (c *Converter) Variance(level int, sourceValue float64) (float64, error) {
	nominal := c.NominalSourceValue(level)
	if nominal == 0 {
		return 0, errors.Arithmeticf("nominal %s value in %s is zero at level %d", c.StatNameIn, c.SourceSystem, level).
			WithMeta("level", level).
			WithMeta("source_system", c.SourceSystem).
			WithMeta("stat", c.StatNameIn)
	}

	return (sourceValue - nominal) / nominal, nil
}

// ConvertStat returns the target system value for sourceValue at level.
// The result is neither rounded nor clamped.
func (c *Converter) ConvertStat(level int, sourceValue float64) (float64, error) {
	estimatedTarget := c.NominalTargetValue(level)

	variance, err := c.Variance(level, sourceValue)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to convert %s", c)
	}

	return estimatedTarget * (1 + c.VarianceScaling(variance)), nil
}

func (c *Converter) String() string {
	return fmt.Sprintf("%s (%s) -> %s (%s)", c.StatNameIn, c.SourceSystem, c.StatNameOut, c.TargetSystem)
}
