package fieldvalidation

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrEmptyFieldName is returned when a field has a blank name.
	ErrEmptyFieldName = errors.New("field name must not be empty")
	// ErrDuplicateField is returned when two fields share a name.
	ErrDuplicateField = errors.New("duplicate field")
	// ErrNilField is returned when a nil *FieldRules is passed to NewRuleSet.
	ErrNilField = errors.New("nil field rules")
)

// RuleSet maps field names to their rules. It is immutable once built and
// keeps fields in declaration order. The zero value has no fields.
type RuleSet struct {
	order  []string
	fields map[string]*FieldRules
}

// NewRuleSet builds a RuleSet from fields.
func NewRuleSet(fields ...*FieldRules) (RuleSet, error) {
	rs := RuleSet{
		order:  make([]string, 0, len(fields)),
		fields: make(map[string]*FieldRules, len(fields)),
	}
	for i, f := range fields {
		if f == nil {
			return RuleSet{}, fmt.Errorf("field index %d: %w", i, ErrNilField)
		}
		if strings.TrimSpace(f.name) == "" {
			return RuleSet{}, fmt.Errorf("field index %d: %w", i, ErrEmptyFieldName)
		}
		if _, ok := rs.fields[f.name]; ok {
			return RuleSet{}, fmt.Errorf("%w: %q", ErrDuplicateField, f.name)
		}
		rs.order = append(rs.order, f.name)
		rs.fields[f.name] = f
	}
	return rs, nil
}

// MustRuleSet is like NewRuleSet but panics on error.
func MustRuleSet(fields ...*FieldRules) RuleSet {
	rs, err := NewRuleSet(fields...)
	if err != nil {
		panic(err)
	}
	return rs
}

// Names returns the field names in declaration order.
func (rs RuleSet) Names() []string {
	return slices.Clone(rs.order)
}

// Len returns the number of fields.
func (rs RuleSet) Len() int {
	return len(rs.order)
}

// Has reports whether name has a rule.
func (rs RuleSet) Has(name string) bool {
	_, ok := rs.fields[name]
	return ok
}

// Rule returns a copy of the rule record for name.
func (rs RuleSet) Rule(name string) (FieldRule, bool) {
	f, ok := rs.fields[name]
	if !ok {
		return FieldRule{}, false
	}
	return f.Rule(), true
}
