package openapi

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

var errorResponses = map[string]Response{
	"400": {Desc: "Malformed request body", Bodies: []any{ErrorResponse{}}},
	"404": {Desc: "Unknown form", Bodies: []any{ErrorResponse{}}},
}

// FormsDoc returns a document describing the validation endpoints for every
// form in c, plus the form listing.
func FormsDoc(title, version string, c Catalog) (*openapi3.T, error) {
	doc := DocBase(title, "Validates form input against per-field rules.", version)

	if err := Get(doc, "/forms", "listForms", Endpoint{
		Summary:  "List forms",
		Response: FormList{},
	}); err != nil {
		return nil, err
	}

	for _, name := range c.Names() {
		rules, ok := c.Form(name)
		if !ok {
			continue
		}

		if err := Post(doc, fmt.Sprintf("/forms/%s/validate", name), "validate_"+name, Endpoint{
			Summary:   "Validate a " + name + " form",
			Request:   &rules,
			Responses: withErrors(Response{Desc: "Validation result", Bodies: []any{FormResult{}}}),
		}); err != nil {
			return nil, err
		}

		fields := make([]any, 0, rules.Len())
		for _, f := range rules.Names() {
			fields = append(fields, f)
		}
		param := openapi3.NewPathParameter("field").
			WithSchema(openapi3.NewStringSchema().WithEnum(fields...))

		if err := Post(doc, fmt.Sprintf("/forms/%s/fields/{field}/validate", name), "validateField_"+name, Endpoint{
			Summary:     "Validate one " + name + " field",
			RequestBody: FieldRequest{},
			Parameters:  openapi3.Parameters{{Value: param}},
			Responses:   withErrors(Response{Desc: "Field validation result", Bodies: []any{FieldResult{}}}),
		}); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func withErrors(ok Response) map[string]Response {
	out := map[string]Response{"200": ok}
	for code, r := range errorResponses {
		out[code] = r
	}
	return out
}
