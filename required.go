package fieldvalidation

import (
	"slices"

	"github.com/getkin/kin-openapi/openapi3"
)

type requiredRule struct{}

// Required marks a field as mandatory. Nil, empty and whitespace-only values
// fail with [KindMissingRequired].
var Required = requiredRule{}

func (requiredRule) Apply(rule *FieldRule) {
	rule.Required = true
}

func (requiredRule) Describe(name string, schema *openapi3.Schema, _ *openapi3.SchemaRef) error {
	if !slices.Contains(schema.Required, name) {
		schema.Required = append(schema.Required, name)
	}
	return nil
}

type requiredCheck struct {
	name string
}

func (r requiredCheck) Validate(value any) error {
	value = raw(value)
	if isBlank(value) {
		return newError(KindMissingRequired, r.name+" is required")
	}
	return nil
}
