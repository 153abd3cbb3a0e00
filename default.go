package fieldvalidation

import (
	"github.com/getkin/kin-openapi/openapi3"
)

type defaulter struct {
	a any
}

// Default returns a documentation-only constraint that sets the schema default value.
func Default(a any) Constraint {
	return defaulter{
		a: a,
	}
}

func (r defaulter) Apply(rule *FieldRule) {
	rule.Default = r.a
}

func (r defaulter) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Default = r.a
	return nil
}
