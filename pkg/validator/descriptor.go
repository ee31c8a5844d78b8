package validator

// Descriptor describes the rules of a validator by property without running
// them, for tooling such as client-side metadata generation.
type Descriptor struct {
	members []string
	names   map[string]string
	checks  map[string][]PropertyValidator
	rules   []RuleInfo
}

// Descriptor builds a descriptor of the rules declared so far.
func (v *Validator[T]) Descriptor() *Descriptor {
	d := &Descriptor{
		names:  make(map[string]string),
		checks: make(map[string][]PropertyValidator),
	}
	for _, rule := range v.rules {
		d.rules = append(d.rules, rule)

		name := rule.PropertyName()
		if name == "" {
			continue
		}
		if _, seen := d.names[name]; !seen {
			d.members = append(d.members, name)
			d.names[name] = rule.DisplayName()
		}
		d.checks[name] = append(d.checks[name], rule.Validators()...)
	}
	return d
}

// Members returns the described property names in declaration order.
func (d *Descriptor) Members() []string {
	out := make([]string, len(d.members))
	copy(out, d.members)
	return out
}

// NameFor returns the display name of a property, or "" if it has no rules.
func (d *Descriptor) NameFor(property string) string {
	return d.names[property]
}

// ValidatorsFor returns every check attached to property across all of its
// rules, in declaration order.
func (d *Descriptor) ValidatorsFor(property string) []PropertyValidator {
	out := make([]PropertyValidator, len(d.checks[property]))
	copy(out, d.checks[property])
	return out
}

// Rules returns every rule, including whole-object rules, in declaration order.
func (d *Descriptor) Rules() []RuleInfo {
	out := make([]RuleInfo, len(d.rules))
	copy(out, d.rules)
	return out
}

// CheckNames returns the names of the checks attached to property.
func (d *Descriptor) CheckNames(property string) []string {
	checks := d.checks[property]
	names := make([]string, len(checks))
	for i, c := range checks {
		names[i] = c.Name()
	}
	return names
}
