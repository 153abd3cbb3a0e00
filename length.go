package fieldvalidation

import (
	"fmt"
	"unicode/utf8"

	"github.com/getkin/kin-openapi/openapi3"
)

type lengthRule struct {
	min, max *int
}

// MinLength requires the string form of a value to have at least n runes.
// Values of n below 1 disable the check.
func MinLength(n int) Constraint {
	return lengthRule{min: &n}
}

// MaxLength requires the string form of a value to have at most n runes.
// Values of n below 1 disable the check.
func MaxLength(n int) Constraint {
	return lengthRule{max: &n}
}

// Length is MinLength(lo) and MaxLength(hi) together.
func Length(lo, hi int) Constraint {
	return lengthRule{min: &lo, max: &hi}
}

func (r lengthRule) Apply(rule *FieldRule) {
	if r.min != nil {
		n := *r.min
		rule.MinLength = &n
	}
	if r.max != nil {
		n := *r.max
		rule.MaxLength = &n
	}
}

func (r lengthRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if r.min != nil && *r.min > 0 {
		ref.Value.MinLength = uint64(*r.min)
	}
	if r.max != nil && *r.max > 0 {
		m := uint64(*r.max)
		ref.Value.MaxLength = &m
	}
	return nil
}

type lengthCheck struct {
	name  string
	limit int
	max   bool
}

func (r lengthCheck) Validate(value any) error {
	value = raw(value)
	n := utf8.RuneCountInString(String(value))
	switch {
	case !r.max && n < r.limit:
		return newError(KindTooShort, fmt.Sprintf("%s must be at least %d characters", r.name, r.limit))
	case r.max && n > r.limit:
		return newError(KindTooLong, fmt.Sprintf("%s must not exceed %d characters", r.name, r.limit))
	}
	return nil
}
