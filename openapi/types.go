package openapi

// FormResult is the response of a full-form validation.
type FormResult struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors"`
}

// FieldRequest is the body of a single-field validation.
type FieldRequest struct {
	Value any `json:"value"`
}

// FieldResult is the response of a single-field validation.
type FieldResult struct {
	Field string `json:"field"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
	Kind  string `json:"kind,omitempty"`
}

// FormList is the response listing available forms.
type FormList struct {
	Forms []string `json:"forms"`
}

// ErrorResponse is returned for requests that could not be processed.
type ErrorResponse struct {
	Error string `json:"error"`
}
