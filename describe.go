package fieldvalidation

import (
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

type describe struct {
	desc string
}

// Describe returns a documentation-only constraint that appends desc to the
// field description.
func Describe(desc string) Constraint {
	return &describe{desc: desc}
}

func (r *describe) Apply(rule *FieldRule) {
	if r.desc == "" {
		return
	}
	if rule.Description != "" {
		rule.Description += " "
	}
	rule.Description += r.desc
}

func (r *describe) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	appendDescription(ref, r.desc)
	return nil
}

func appendDescription(ref *openapi3.SchemaRef, desc string) {
	if desc == "" {
		return
	}
	if ref.Value.Description != "" && !strings.HasSuffix(ref.Value.Description, " ") {
		ref.Value.Description += " "
	}
	ref.Value.Description += desc
}
