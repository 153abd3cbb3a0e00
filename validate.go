package fieldvalidation

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Check evaluates value against the rule registered for name and returns
// the first violated constraint as a [validation.Error], or nil. Fields
// without a rule always pass. Values that are not numbers fail Min and Max
// rules with [KindNotANumber]; see [WithLenientNumbers] for the permissive
// alternative.
func (rs RuleSet) Check(name string, value any) error {
	return rs.check(name, value, false)
}

// ValidateField is like Check but returns only the message, or "" when the
// value is valid.
func (rs RuleSet) ValidateField(name string, value any) string {
	return message(rs.Check(name, value))
}

// Validate checks every field in rs against values and returns the
// failures keyed by field name. The map is empty when values are valid.
func (rs RuleSet) Validate(values Values) ErrorMap {
	return rs.validate(values, false)
}

func (rs RuleSet) check(name string, value any, lenient bool) error {
	f, ok := rs.fields[name]
	if !ok {
		return nil
	}
	return validation.Validate(input{value}, f.checks(value, lenient)...)
}

// input carries a field value through validation.Validate. ozzo calls
// Validate on values implementing validation.Validatable once the rules
// pass; wrapping keeps the RuleSet the only source of findings.
type input struct {
	value any
}

// raw unwraps an input. Other values are returned as is.
func raw(value any) any {
	if in, ok := value.(input); ok {
		return in.value
	}
	return value
}

func (rs RuleSet) validate(values Values, lenient bool) ErrorMap {
	errs := ErrorMap{}
	for _, name := range rs.order {
		if msg := message(rs.check(name, values[name], lenient)); msg != "" {
			errs[name] = msg
		}
	}
	return errs
}

// checks builds the ozzo rule chain for one value. The order is fixed:
// required, empty short circuit, min length, max length, pattern, min, max,
// custom. validation.Validate stops at the first failure.
func (f *FieldRules) checks(value any, lenient bool) []validation.Rule {
	r := f.rule
	rules := make([]validation.Rule, 0, 8)

	if r.Required {
		rules = append(rules, requiredCheck{name: f.name})
	}
	rules = append(rules, validation.Skip.When(isEmpty(value)))

	if r.MinLength != nil && *r.MinLength > 0 {
		rules = append(rules, lengthCheck{name: f.name, limit: *r.MinLength})
	}
	if r.MaxLength != nil && *r.MaxLength > 0 {
		rules = append(rules, lengthCheck{name: f.name, limit: *r.MaxLength, max: true})
	}
	if r.Pattern != nil {
		rules = append(rules, newPatternCheck(f.name, r.Pattern))
	}
	if r.Min != nil {
		rules = append(rules, thresholdCheck{name: f.name, threshold: *r.Min, min: true, lenient: lenient})
	}
	if r.Max != nil {
		rules = append(rules, thresholdCheck{name: f.name, threshold: *r.Max, lenient: lenient})
	}
	if r.Custom != nil {
		rules = append(rules, customCheck{f: r.Custom})
	}
	return rules
}
