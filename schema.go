package fieldvalidation

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

// Schema returns an OpenAPI object schema describing rs. Every field is a
// string property, since form input arrives as text, and each constraint
// documents itself on the property and the parent's required list.
func (rs RuleSet) Schema() (*openapi3.SchemaRef, error) {
	schema := openapi3.NewObjectSchema()
	if schema.Properties == nil {
		schema.Properties = openapi3.Schemas{}
	}
	for _, name := range rs.order {
		ref := &openapi3.SchemaRef{Value: openapi3.NewStringSchema()}
		for _, c := range rs.fields[name].constraints {
			if err := c.Describe(name, schema, ref); err != nil {
				return nil, fmt.Errorf("describe field %s: %w", name, err)
			}
		}
		schema.Properties[name] = ref
	}
	return &openapi3.SchemaRef{Value: schema}, nil
}
