package fieldvalidation

import (
	"sync"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.uber.org/zap"
)

// Option configures a Validator.
type Option func(*Validator)

// WithLogger sets the logger used for debug events. The default discards
// everything.
func WithLogger(l *zap.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.log = l
		}
	}
}

// WithLenientNumbers makes Min and Max checks pass for values that do not
// parse as numbers instead of reporting [KindNotANumber].
func WithLenientNumbers() Option {
	return func(v *Validator) {
		v.lenient = true
	}
}

// FieldDisplay is what a presentation layer needs to annotate one input.
// Error is set only once the field has been touched.
type FieldDisplay struct {
	Error    string
	HasError bool
}

// Validator holds the validation state of one form instance: the current
// errors and the set of touched fields. Errors are computed eagerly but only
// surfaced through FieldDisplay for touched fields.
type Validator struct {
	rules   RuleSet
	log     *zap.Logger
	lenient bool

	mu      sync.RWMutex
	errs    map[string]validation.Error
	touched map[string]struct{}
}

// New returns a Validator for rules.
func New(rules RuleSet, opts ...Option) *Validator {
	v := &Validator{
		rules:   rules,
		log:     zap.NewNop(),
		errs:    map[string]validation.Error{},
		touched: map[string]struct{}{},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Rules returns the RuleSet the Validator was built with.
func (v *Validator) Rules() RuleSet {
	return v.rules
}

// ValidateField evaluates one value without touching stored state.
func (v *Validator) ValidateField(name string, value any) string {
	return message(v.rules.check(name, value, v.lenient))
}

// ValidateForm validates every field in the RuleSet against values, replaces
// the stored errors with the result and returns a copy of it along with
// whether the form is valid. values is not modified.
func (v *Validator) ValidateForm(values Values) (ErrorMap, bool) {
	errs := make(map[string]validation.Error)
	for _, name := range v.rules.order {
		if verr := v.finding(name, values[name]); verr != nil {
			errs[name] = verr
		}
	}

	v.mu.Lock()
	v.errs = errs
	out := v.errorMapLocked()
	v.mu.Unlock()

	v.log.Debug("form validated",
		zap.Int("fields", v.rules.Len()),
		zap.Int("errors", len(out)),
		zap.Bool("valid", len(out) == 0))
	return out, len(out) == 0
}

// ValidateSingleField validates one field, merges the result into the stored
// errors and reports whether the field is valid. Names without a rule are
// always valid and never stored.
func (v *Validator) ValidateSingleField(name string, value any) bool {
	verr := v.finding(name, value)

	v.mu.Lock()
	if verr != nil {
		v.errs[name] = verr
	} else {
		delete(v.errs, name)
	}
	v.mu.Unlock()

	v.log.Debug("field validated",
		zap.String("field", name),
		zap.Bool("valid", verr == nil))
	return verr == nil
}

func (v *Validator) finding(name string, value any) validation.Error {
	err := v.rules.check(name, value, v.lenient)
	if err == nil {
		return nil
	}
	if verr, ok := err.(validation.Error); ok {
		return verr
	}
	return newError(KindCustom, err.Error())
}

// MarkTouched records that the user has interacted with name.
func (v *Validator) MarkTouched(name string) {
	v.mu.Lock()
	v.touched[name] = struct{}{}
	v.mu.Unlock()
}

// Touched reports whether name has been marked touched.
func (v *Validator) Touched(name string) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	_, ok := v.touched[name]
	return ok
}

// FieldDisplay returns the display state for name.
func (v *Validator) FieldDisplay(name string) FieldDisplay {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if _, ok := v.touched[name]; !ok {
		return FieldDisplay{}
	}
	verr, ok := v.errs[name]
	if !ok {
		return FieldDisplay{}
	}
	return FieldDisplay{Error: verr.Message(), HasError: true}
}

// Errors returns a copy of the stored errors.
func (v *Validator) Errors() ErrorMap {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.errorMapLocked()
}

// Kind returns the Kind of the stored error for name, or "".
func (v *Validator) Kind(name string) Kind {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if verr, ok := v.errs[name]; ok {
		return Kind(verr.Code())
	}
	return ""
}

// HasErrors reports whether any field currently fails.
func (v *Validator) HasErrors() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.errs) > 0
}

// Err returns the stored errors as [validation.Errors], or nil.
func (v *Validator) Err() error {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if len(v.errs) == 0 {
		return nil
	}
	errs := make(validation.Errors, len(v.errs))
	for name, verr := range v.errs {
		errs[name] = verr
	}
	return errs
}

// Reset clears the stored errors and touched fields.
func (v *Validator) Reset() {
	v.mu.Lock()
	v.errs = map[string]validation.Error{}
	v.touched = map[string]struct{}{}
	v.mu.Unlock()
	v.log.Debug("form reset")
}

func (v *Validator) errorMapLocked() ErrorMap {
	out := make(ErrorMap, len(v.errs))
	for name, verr := range v.errs {
		out[name] = verr.Message()
	}
	return out
}
