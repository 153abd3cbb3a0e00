package fieldvalidation

import (
	"errors"
	"maps"
	"slices"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Kind classifies a validation finding. It is the Code of the
// [validation.Error] returned by [RuleSet.Check].
type Kind string

const (
	KindMissingRequired Kind = "missing-required"
	KindTooShort        Kind = "too-short"
	KindTooLong         Kind = "too-long"
	KindPatternMismatch Kind = "pattern-mismatch"
	KindOutOfRangeLow   Kind = "out-of-range-low"
	KindOutOfRangeHigh  Kind = "out-of-range-high"
	KindCustom          Kind = "custom-violation"
	// KindNotANumber is reported when a Min or Max rule meets a value that
	// does not parse as a number. Validators built with WithLenientNumbers
	// never report it.
	KindNotANumber Kind = "not-a-number"
)

func newError(kind Kind, message string) validation.Error {
	return validation.NewError(string(kind), message)
}

// KindOf returns the Kind of a finding returned by [RuleSet.Check], or ""
// if err is nil or not a validation finding.
func KindOf(err error) Kind {
	var verr validation.Error
	if errors.As(err, &verr) {
		return Kind(verr.Code())
	}
	return ""
}

func message(err error) string {
	if err == nil {
		return ""
	}
	var verr validation.Error
	if errors.As(err, &verr) {
		return verr.Message()
	}
	return err.Error()
}

// ErrorMap maps field names to the message of their first violated rule.
// Only fields that currently fail appear in it.
type ErrorMap map[string]string

// Has reports whether field has an error.
func (m ErrorMap) Has(field string) bool {
	_, ok := m[field]
	return ok
}

// Get returns the error message for field, or "".
func (m ErrorMap) Get(field string) string {
	return m[field]
}

// Fields returns the failing field names sorted.
func (m ErrorMap) Fields() []string {
	return slices.Sorted(maps.Keys(m))
}

// Err converts m into [validation.Errors], or nil when m is empty.
func (m ErrorMap) Err() error {
	if len(m) == 0 {
		return nil
	}
	errs := make(validation.Errors, len(m))
	for field, msg := range m {
		errs[field] = errors.New(msg)
	}
	return errs
}

func (m ErrorMap) clone() ErrorMap {
	out := make(ErrorMap, len(m))
	maps.Copy(out, m)
	return out
}
