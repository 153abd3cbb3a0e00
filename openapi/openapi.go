package openapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"

	v "github.com/Gobd/fieldvalidation"
)

// Catalog is a named collection of rule sets.
type Catalog interface {
	Form(name string) (v.RuleSet, bool)
	Names() []string
}

// Response describes an HTTP response with a description and body types for schema generation.
type Response struct {
	Desc   string
	Bodies []any
}

// Endpoint describes a single API operation for the convenience helpers
// [Get] and [Post].
type Endpoint struct {
	Summary     string
	Description string
	Request     *v.RuleSet          // form body described by its rules
	RequestBody any                 // any other body type
	Parameters  openapi3.Parameters // path and query parameters
	Response    any                 // single 200 response type (convenience)
	Responses   map[string]Response // full response map (overrides Response if both set)
}

// NewSchemaRefForValue generates an OpenAPI schema for a Go value.
func NewSchemaRefForValue(value any) (*openapi3.SchemaRef, error) {
	return openapi3gen.NewSchemaRefForValue(value, nil)
}

// NewRequest generates a JSON request body from the given rule sets. More
// than one rule set produces a oneOf schema.
func NewRequest(sets ...v.RuleSet) (*openapi3.RequestBodyRef, error) {
	if len(sets) == 0 {
		return nil, errors.New("no rule sets given")
	}
	refs := make(openapi3.SchemaRefs, 0, len(sets))
	for i := range sets {
		schema, err := sets[i].Schema()
		if err != nil {
			return nil, err
		}
		refs = append(refs, schema)
	}
	return jsonBody(refs), nil
}

// NewRequestMust is like [NewRequest] but panics on error.
func NewRequestMust(sets ...v.RuleSet) *openapi3.RequestBodyRef {
	o, err := NewRequest(sets...)
	if err != nil {
		panic(err)
	}
	return o
}

func newValueRequest(vs ...any) (*openapi3.RequestBodyRef, error) {
	refs := make(openapi3.SchemaRefs, 0, len(vs))
	for i := range vs {
		schema, err := NewSchemaRefForValue(vs[i])
		if err != nil {
			return nil, err
		}
		refs = append(refs, schema)
	}
	return jsonBody(refs), nil
}

func jsonBody(refs openapi3.SchemaRefs) *openapi3.RequestBodyRef {
	schema := &openapi3.SchemaRef{Value: &openapi3.Schema{OneOf: refs}}
	if len(refs) == 1 {
		schema = refs[0]
	}
	return &openapi3.RequestBodyRef{
		Value: &openapi3.RequestBody{
			Required: true,
			Content: openapi3.Content{
				"application/json": &openapi3.MediaType{Schema: schema},
			},
		},
	}
}

// NewResponse creates an OpenAPI responses object.
// Map key is status code (e.g. "200", "4xx").
func NewResponse(vs map[string]Response) (*openapi3.Responses, error) {
	if len(vs) == 0 {
		return nil, errors.New("no values given")
	}

	opts := make([]openapi3.NewResponsesOption, 0, len(vs))

	for statusCode := range vs {
		desc := vs[statusCode].Desc

		var refs openapi3.SchemaRefs

		for k := range vs[statusCode].Bodies {
			schema, err := NewSchemaRefForValue(vs[statusCode].Bodies[k])
			if err != nil {
				return nil, err
			}
			refs = append(refs, schema)
		}

		content := openapi3.Content{
			"application/json": &openapi3.MediaType{
				Schema: &openapi3.SchemaRef{
					Value: &openapi3.Schema{
						OneOf: refs,
					},
				},
			},
		}

		if len(refs) == 1 {
			content["application/json"].Schema = refs[0]
		}

		opt := openapi3.WithName(statusCode, &openapi3.Response{
			Description: &desc,
			Content:     content,
		})
		opts = append(opts, opt)
	}

	return openapi3.NewResponses(opts...), nil
}

// NewResponseMust is like [NewResponse] but panics on error.
func NewResponseMust(vs map[string]Response) *openapi3.Responses {
	o, err := NewResponse(vs)
	if err != nil {
		panic(err)
	}
	return o
}

// DocBase returns a basic OpenAPI 3.0.3 document structure.
func DocBase(serviceName, description, version string) *openapi3.T {
	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       serviceName,
			Description: description,
			Version:     version,
		},
		Paths: openapi3.NewPaths(),
	}
}

// AddPath adds an operation to the OpenAPI document at the given path and method.
func AddPath(path, method string, s *openapi3.T, op *openapi3.Operation) {
	p := s.Paths.Value(path)
	if p == nil {
		p = &openapi3.PathItem{}
	}

	switch method {
	case http.MethodGet:
		p.Get = op
	case http.MethodPost:
		p.Post = op
	}

	s.Paths.Set(path, p)
}

// addEndpoint builds an [openapi3.Operation] from ep and registers it at path+method.
func addEndpoint(doc *openapi3.T, path, method, operationID string, ep Endpoint) error {
	op := &openapi3.Operation{
		OperationID: operationID,
		Summary:     ep.Summary,
		Description: ep.Description,
		Parameters:  ep.Parameters,
	}

	switch {
	case ep.Request != nil:
		body, err := NewRequest(*ep.Request)
		if err != nil {
			return fmt.Errorf("%s request: %w", operationID, err)
		}
		op.RequestBody = body
	case ep.RequestBody != nil:
		body, err := newValueRequest(ep.RequestBody)
		if err != nil {
			return fmt.Errorf("%s request: %w", operationID, err)
		}
		op.RequestBody = body
	}

	responses := ep.Responses
	if responses == nil && ep.Response != nil {
		responses = map[string]Response{
			"200": {Desc: "OK", Bodies: []any{ep.Response}},
		}
	}
	if responses != nil {
		r, err := NewResponse(responses)
		if err != nil {
			return fmt.Errorf("%s responses: %w", operationID, err)
		}
		op.Responses = r
	} else {
		op.Responses = openapi3.NewResponses()
	}

	AddPath(path, method, doc, op)
	return nil
}

// Get registers a GET endpoint on doc.
func Get(doc *openapi3.T, path, operationID string, ep Endpoint) error {
	return addEndpoint(doc, path, http.MethodGet, operationID, ep)
}

// Post registers a POST endpoint on doc.
func Post(doc *openapi3.T, path, operationID string, ep Endpoint) error {
	return addEndpoint(doc, path, http.MethodPost, operationID, ep)
}
