package fieldvalidation

import (
	"regexp"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type patternRule struct {
	re *regexp.Regexp
}

// Pattern requires the string form of a value to match re.
func Pattern(re *regexp.Regexp) Constraint {
	return patternRule{re: re}
}

// Match is like Pattern but compiles expr, panicking if it is invalid.
func Match(expr string) Constraint {
	return patternRule{re: regexp.MustCompile(expr)}
}

func (r patternRule) Apply(rule *FieldRule) {
	rule.Pattern = r.re
}

func (r patternRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if r.re != nil {
		ref.Value.Pattern = r.re.String()
	}
	return nil
}

// patternCheck runs ozzo's MatchRule against the string form of the value
// so numeric input is matched the same way as typed text.
type patternCheck struct {
	validation.MatchRule
}

func newPatternCheck(name string, re *regexp.Regexp) patternCheck {
	return patternCheck{
		validation.Match(re).ErrorObject(newError(KindPatternMismatch, name+" format is invalid")),
	}
}

func (r patternCheck) Validate(value any) error {
	value = raw(value)
	return r.MatchRule.Validate(String(value))
}
