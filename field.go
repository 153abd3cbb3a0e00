package fieldvalidation

// Field creates a FieldRules binding name to the given constraints.
// Constraints may appear in any order; evaluation order is fixed.
func Field(name string, constraints ...Constraint) *FieldRules {
	fr := &FieldRules{
		name:        name,
		constraints: make([]Constraint, 0, len(constraints)),
	}
	for _, c := range constraints {
		if c == nil {
			continue
		}
		c.Apply(&fr.rule)
		fr.constraints = append(fr.constraints, c)
	}
	return fr
}

// FieldFromRule creates a FieldRules from a rule record built by hand.
func FieldFromRule(name string, rule FieldRule) *FieldRules {
	var cs []Constraint
	if rule.Required {
		cs = append(cs, Required)
	}
	if rule.MinLength != nil {
		cs = append(cs, MinLength(*rule.MinLength))
	}
	if rule.MaxLength != nil {
		cs = append(cs, MaxLength(*rule.MaxLength))
	}
	if rule.Pattern != nil {
		cs = append(cs, Pattern(rule.Pattern))
	}
	if rule.Min != nil {
		cs = append(cs, Min(*rule.Min))
	}
	if rule.Max != nil {
		cs = append(cs, Max(*rule.Max))
	}
	if rule.Custom != nil {
		cs = append(cs, Custom(rule.Custom, ""))
	}
	if rule.Description != "" {
		cs = append(cs, Describe(rule.Description))
	}
	if rule.Example != nil {
		cs = append(cs, Example(rule.Example))
	}
	if rule.Default != nil {
		cs = append(cs, Default(rule.Default))
	}
	return Field(name, cs...)
}

// Name returns the field name.
func (f *FieldRules) Name() string {
	return f.name
}

// Rule returns a copy of the compiled rule record.
func (f *FieldRules) Rule() FieldRule {
	r := f.rule
	if r.MinLength != nil {
		n := *r.MinLength
		r.MinLength = &n
	}
	if r.MaxLength != nil {
		n := *r.MaxLength
		r.MaxLength = &n
	}
	if r.Min != nil {
		n := *r.Min
		r.Min = &n
	}
	if r.Max != nil {
		n := *r.Max
		r.Max = &n
	}
	return r
}
