package conversion

//go:generate mockgen -destination=mock/mock_policy.go -package=mockconversion -source=policy.go

import (
	"github.com/KirkDiggler/stat-converter/internal/errors"
)

// Policy supplies the three level-indexed behaviors a conversion needs.
// Implementations must be pure.
type Policy interface {
	// VarianceScaling maps a fractional deviation in the source system to the
	// equivalent deviation in the target system. It need not be linear.
	VarianceScaling(variance float64) float64

	// NominalSourceValue returns the expected value of the stat in the source
	// system at the given level. It must not return zero over the levels the
	// policy is used for.
	NominalSourceValue(level int) float64

	// NominalTargetValue returns the expected value of the stat in the target
	// system at the given level
	NominalTargetValue(level int) float64
}

// PolicyFuncs is a Policy assembled from plain functions
type PolicyFuncs struct {
	Scaling       func(variance float64) float64
	NominalSource func(level int) float64
	NominalTarget func(level int) float64
}

// VarianceScaling panics with a configuration error if Scaling is nil
func (p PolicyFuncs) VarianceScaling(variance float64) float64 {
	if p.Scaling == nil {
		panic(errors.Configuration("conversion policy must supply VarianceScaling"))
	}
	return p.Scaling(variance)
}

// NominalSourceValue panics with a configuration error if NominalSource is nil
func (p PolicyFuncs) NominalSourceValue(level int) float64 {
	if p.NominalSource == nil {
		panic(errors.Configuration("conversion policy must supply NominalSourceValue"))
	}
	return p.NominalSource(level)
}

// NominalTargetValue panics with a configuration error if NominalTarget is nil
func (p PolicyFuncs) NominalTargetValue(level int) float64 {
	if p.NominalTarget == nil {
		panic(errors.Configuration("conversion policy must supply NominalTargetValue"))
	}
	return p.NominalTarget(level)
}

func (p PolicyFuncs) validate() error {
	var missing []string
	if p.Scaling == nil {
		missing = append(missing, "VarianceScaling")
	}
	if p.NominalSource == nil {
		missing = append(missing, "NominalSourceValue")
	}
	if p.NominalTarget == nil {
		missing = append(missing, "NominalTargetValue")
	}
	if len(missing) > 0 {
		return errors.Configurationf("conversion policy is missing %v", missing).
			WithMeta("missing", missing)
	}
	return nil
}
