package ruleconfig

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	v "github.com/Gobd/fieldvalidation"
)

var (
	// ErrEmptyForm is returned for documents without a form name.
	ErrEmptyForm = errors.New("form name must not be empty")
	// ErrUnknownCustom is returned when a field names a custom check the
	// registry does not have.
	ErrUnknownCustom = errors.New("unknown custom check")
)

// Registry resolves the custom check names used in rule files.
type Registry map[string]v.CustomFunc

// Document is the file representation of one form.
type Document struct {
	Form   string      `yaml:"form" json:"form"`
	Fields []FieldSpec `yaml:"fields" json:"fields"`
}

// FieldSpec is the file representation of one field rule.
type FieldSpec struct {
	Name        string   `yaml:"name" json:"name"`
	Required    bool     `yaml:"required" json:"required"`
	MinLength   *int     `yaml:"minLength" json:"minLength"`
	MaxLength   *int     `yaml:"maxLength" json:"maxLength"`
	Pattern     string   `yaml:"pattern" json:"pattern"`
	Min         *float64 `yaml:"min" json:"min"`
	Max         *float64 `yaml:"max" json:"max"`
	Custom      string   `yaml:"custom" json:"custom"`
	Description string   `yaml:"description" json:"description"`
	Example     any      `yaml:"example" json:"example"`
	Default     any      `yaml:"default" json:"default"`
}

// Form is a parsed document.
type Form struct {
	Name  string
	Rules v.RuleSet
}

// Parse decodes a YAML or JSON document and builds its rule set.
func Parse(data []byte, reg Registry) (Form, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Form{}, fmt.Errorf("ruleconfig: decode: %w", err)
	}
	return Build(doc, reg)
}

// Build turns a decoded document into a Form.
func Build(doc Document, reg Registry) (Form, error) {
	name := strings.TrimSpace(doc.Form)
	if name == "" {
		return Form{}, fmt.Errorf("ruleconfig: %w", ErrEmptyForm)
	}

	fields := make([]*v.FieldRules, 0, len(doc.Fields))
	for i, spec := range doc.Fields {
		rule, err := spec.rule(reg)
		if err != nil {
			return Form{}, fmt.Errorf("ruleconfig: form %s field %d (%s): %w", name, i, spec.Name, err)
		}
		fields = append(fields, v.FieldFromRule(spec.Name, rule))
	}

	rules, err := v.NewRuleSet(fields...)
	if err != nil {
		return Form{}, fmt.Errorf("ruleconfig: form %s: %w", name, err)
	}
	return Form{Name: name, Rules: rules}, nil
}

func (s FieldSpec) rule(reg Registry) (v.FieldRule, error) {
	rule := v.FieldRule{
		Required:    s.Required,
		MinLength:   s.MinLength,
		MaxLength:   s.MaxLength,
		Min:         s.Min,
		Max:         s.Max,
		Description: s.Description,
		Example:     s.Example,
		Default:     s.Default,
	}
	if s.Pattern != "" {
		re, err := regexp.Compile(s.Pattern)
		if err != nil {
			return v.FieldRule{}, fmt.Errorf("pattern: %w", err)
		}
		rule.Pattern = re
	}
	if s.Custom != "" {
		f, ok := reg[s.Custom]
		if !ok || f == nil {
			return v.FieldRule{}, fmt.Errorf("%w %q", ErrUnknownCustom, s.Custom)
		}
		rule.Custom = f
	}
	return rule, nil
}
