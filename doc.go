// Package fieldvalidation validates form input against declarative,
// per-field rules and tracks the validation state of a form.
//
// Build a RuleSet once per form type:
//
//	rules := fieldvalidation.MustRuleSet(
//	    fieldvalidation.Field("name", fieldvalidation.Required, fieldvalidation.Length(2, 50)),
//	    fieldvalidation.Field("amount", fieldvalidation.Required, fieldvalidation.Min(0.01)),
//	)
//
// Each field reports at most one error, from the first failing check in
// this order: required, min length, max length, pattern, min, max, custom.
// Optional fields with an empty value skip every check.
//
// A [Validator] wraps a RuleSet with per-form state. It keeps the current
// errors and the set of touched fields, so callers can show errors only
// after the user has interacted with a field:
//
//	v := fieldvalidation.New(rules)
//	v.ValidateSingleField("name", "a")
//	v.MarkTouched("name")
//	v.FieldDisplay("name") // {Error: "name must be at least 2 characters", HasError: true}
//
// Findings are ozzo-validation errors whose Code is a [Kind].
//
// Sub-packages:
//   - forms – preset field rules and the built-in form rule sets
//   - ruleconfig – rule sets declared in YAML or JSON files
//   - transform – copy-returning normalizers for form values
//   - openapi – OpenAPI documents for form validation endpoints
package fieldvalidation
