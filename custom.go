package fieldvalidation

import (
	"github.com/getkin/kin-openapi/openapi3"
)

type custom struct {
	f    CustomFunc
	desc string
}

// Custom returns a constraint that runs f after every built-in check has
// passed. A non-empty result from f is the field's error message. desc is
// added to the schema description. Several Custom constraints on one field
// run in order and the first message wins.
func Custom(f CustomFunc, desc string) Constraint {
	return custom{
		f:    f,
		desc: desc,
	}
}

func (r custom) Apply(rule *FieldRule) {
	if r.f == nil {
		return
	}
	prev, next := rule.Custom, r.f
	if prev == nil {
		rule.Custom = next
		return
	}
	rule.Custom = func(value any) string {
		if msg := prev(value); msg != "" {
			return msg
		}
		return next(value)
	}
}

func (r custom) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	appendDescription(ref, r.desc)
	return nil
}

type customCheck struct {
	f CustomFunc
}

func (r customCheck) Validate(value any) error {
	value = raw(value)
	if msg := r.f(value); msg != "" {
		return newError(KindCustom, msg)
	}
	return nil
}
