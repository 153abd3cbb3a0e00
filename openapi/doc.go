// Package openapi builds OpenAPI 3 documents for form validation endpoints.
// Request bodies are described from a [fieldvalidation.RuleSet]; response
// bodies are generated from Go types.
//
//	doc := openapi.DocBase("forms", "Form validation", "1.0")
//	openapi.Post(doc, "/forms/transfer/validate", "validateTransfer", openapi.Endpoint{
//	    Request:  forms.Transfer(),
//	    Response: openapi.FormResult{},
//	})
//
// [FormsDoc] registers the standard endpoints for every form in a catalog.
package openapi
