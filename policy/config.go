package policy

// MemberResolution selects how names imported via `from` are judged.
type MemberResolution int

const (
	// ResolutionStructural consults a ModuleIndex to tell from-module
	// imports apart from from-member imports.
	ResolutionStructural MemberResolution = iota
	// ResolutionUniform gates every name imported via `from` on the
	// AllowFromModule flag alone, without structural lookup.
	ResolutionUniform
)

// RelativePolicy applies uniformly to all relative imports; relative
// imports are first-party by construction and carry no other origin.
type RelativePolicy struct {
	MaxRelativeLevel int  // tolerated leading dots; 1 dot = level 1
	AllowFromModule  bool // `from . import module`
	AllowFromMember  bool // `from . import member`
}

// Config is the aggregate policy for one run. Build it once, then
// treat it as read-only; concurrent file evaluations share one value
// without locking.
type Config struct {
	Future     SourceRule
	Stdlib     SourceRule
	ThirdParty SourceRule
	FirstParty SourceRule
	Relative   RelativePolicy

	// Overrides patches per-origin rules for exact module paths.
	Overrides map[string]Override
	// Aliases maps a fully-qualified imported entity path to the
	// single alias name registered for it.
	Aliases map[string]string

	// CheckInit subjects __init__.py files to the policy; by default
	// aggregator files are exempt from all checks.
	CheckInit bool
	// Resolution selects structural or uniform from-import handling.
	Resolution MemberResolution
}

// DefaultConfig returns the documented default policy: future imports
// are unrestricted, stdlib and third-party modules are absolute-only,
// first-party modules additionally allow from-module imports, and
// relative imports allow one level of from-module imports.
func DefaultConfig() *Config {
	return &Config{
		Future:     SourceRule{AllowAbsolute: true, AllowFromModule: true, AllowFromMember: true},
		Stdlib:     SourceRule{AllowAbsolute: true},
		ThirdParty: SourceRule{AllowAbsolute: true},
		FirstParty: SourceRule{AllowAbsolute: true, AllowFromModule: true},
		Relative: RelativePolicy{
			MaxRelativeLevel: 1,
			AllowFromModule:  true,
		},
		Overrides: map[string]Override{},
		Aliases:   map[string]string{},
	}
}

// Rule returns the base rule configured for an origin.
func (c *Config) Rule(origin Origin) SourceRule {
	switch origin {
	case OriginFuture:
		return c.Future
	case OriginStandardLibrary:
		return c.Stdlib
	case OriginThirdParty:
		return c.ThirdParty
	case OriginFirstParty:
		return c.FirstParty
	}
	return SourceRule{}
}

// OverrideFor returns the override registered for an exact module
// path; the zero override acts as identity.
func (c *Config) OverrideFor(modulePath string) Override {
	if c.Overrides == nil {
		return Override{}
	}
	return c.Overrides[modulePath]
}

// AliasFor returns the registered alias for a fully-qualified entity
// path.
func (c *Config) AliasFor(entityPath string) (string, bool) {
	if c.Aliases == nil {
		return "", false
	}
	alias, ok := c.Aliases[entityPath]
	return alias, ok
}
