package fieldvalidation

import (
	"regexp"

	"github.com/getkin/kin-openapi/openapi3"
)

type (
	// CustomFunc checks a raw field value and returns a non-empty message
	// when the value is invalid.
	CustomFunc func(value any) string

	// Constraint is one declarative piece of a [FieldRule]. Apply fills its
	// slot in the rule record; Describe documents it on an OpenAPI schema.
	Constraint interface {
		Apply(rule *FieldRule)
		Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error
	}

	// FieldRule holds every constraint for exactly one named field. Nil
	// pointer fields are not checked. Description, Example and Default only
	// affect schema generation.
	FieldRule struct {
		Required  bool
		MinLength *int
		MaxLength *int
		Pattern   *regexp.Regexp
		Min       *float64
		Max       *float64
		Custom    CustomFunc

		Description string
		Example     any
		Default     any
	}

	// FieldRules binds a field name to its constraints.
	FieldRules struct {
		name        string
		rule        FieldRule
		constraints []Constraint
	}

	// Values is a snapshot of form input keyed by field name. Values are
	// usually strings, but numbers, json.Number and nil are accepted.
	Values map[string]any
)
