package policy

// SourceRule holds the policy for one origin. The three flags are
// independent; none implies another.
type SourceRule struct {
	AllowAbsolute   bool // plain `import x.y`
	AllowFromModule bool // `from x import y` where y is itself a module
	AllowFromMember bool // `from x import y` where y is defined inside x
}

// Override is a sparse patch to a SourceRule keyed by exact module
// path. A nil field inherits the base rule value.
type Override struct {
	AllowAbsolute   *bool
	AllowFromModule *bool
	AllowFromMember *bool
}

// Apply overlays the override onto a base rule. The merge is
// field-independent and right-biased: a set override field wins, an
// unset field keeps the base value.
func (o Override) Apply(base SourceRule) SourceRule {
	merged := base
	if o.AllowAbsolute != nil {
		merged.AllowAbsolute = *o.AllowAbsolute
	}
	if o.AllowFromModule != nil {
		merged.AllowFromModule = *o.AllowFromModule
	}
	if o.AllowFromMember != nil {
		merged.AllowFromMember = *o.AllowFromMember
	}
	return merged
}

// Evolve merges another override onto this one, producing a new
// value. Fields set on the update win; the receiver is not mutated.
func (o Override) Evolve(update Override) Override {
	merged := o
	if update.AllowAbsolute != nil {
		merged.AllowAbsolute = update.AllowAbsolute
	}
	if update.AllowFromModule != nil {
		merged.AllowFromModule = update.AllowFromModule
	}
	if update.AllowFromMember != nil {
		merged.AllowFromMember = update.AllowFromMember
	}
	return merged
}

// IsZero returns true when no field is set
func (o Override) IsZero() bool {
	return o.AllowAbsolute == nil && o.AllowFromModule == nil && o.AllowFromMember == nil
}

// Bool returns a pointer suitable for Override fields
func Bool(value bool) *bool {
	return &value
}
