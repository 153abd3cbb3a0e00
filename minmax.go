package fieldvalidation

import (
	"github.com/getkin/kin-openapi/openapi3"
)

type thresholdRule struct {
	threshold float64
	min       bool
}

// Min requires the numeric value of a field to be greater than or equal to threshold.
func Min(threshold float64) Constraint {
	return thresholdRule{threshold: threshold, min: true}
}

// Max requires the numeric value of a field to be less than or equal to threshold.
func Max(threshold float64) Constraint {
	return thresholdRule{threshold: threshold}
}

func (r thresholdRule) Apply(rule *FieldRule) {
	f := r.threshold
	if r.min {
		rule.Min = &f
	} else {
		rule.Max = &f
	}
}

func (r thresholdRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if ref.Value.Type.Is(openapi3.TypeString) {
		ref.Value.Format = "number"
	}
	f := r.threshold
	if r.min {
		ref.Value.Min = &f
	} else {
		ref.Value.Max = &f
	}
	return nil
}

type thresholdCheck struct {
	name      string
	threshold float64
	min       bool
	lenient   bool
}

func (r thresholdCheck) Validate(value any) error {
	value = raw(value)
	f, ok := Float(value)
	if !ok {
		if r.lenient {
			return nil
		}
		return newError(KindNotANumber, r.name+" must be a valid number")
	}
	if r.min && f < r.threshold {
		return newError(KindOutOfRangeLow, r.name+" must be at least "+formatNumber(r.threshold))
	}
	if !r.min && f > r.threshold {
		return newError(KindOutOfRangeHigh, r.name+" must not exceed "+formatNumber(r.threshold))
	}
	return nil
}
