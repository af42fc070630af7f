package policy

import (
	"sort"
	"strings"
)

// ParseAliasPair parses one `original=alias` registration, e.g.
// `sqlalchemy=sa` or `matplotlib.pyplot=plt`.
func ParseAliasPair(raw string) (string, string, error) {
	entity, alias, found := strings.Cut(raw, "=")
	if !found || entity == "" || alias == "" {
		return "", "", configErrorf("malformed alias registration %q, expected original=alias", raw)
	}
	return entity, alias, nil
}

// overrideAxes maps directive suffixes to override patches.
var overrideAxes = []struct {
	suffix string
	patch  Override
}{
	{"-allow-absolute", Override{AllowAbsolute: Bool(true)}},
	{"-forbid-absolute", Override{AllowAbsolute: Bool(false)}},
	{"-allow-from_module", Override{AllowFromModule: Bool(true)}},
	{"-forbid-from_module", Override{AllowFromModule: Bool(false)}},
	{"-allow-from_member", Override{AllowFromMember: Bool(true)}},
	{"-forbid-from_member", Override{AllowFromMember: Bool(false)}},
}

// ParseOverrideDirective parses one per-module policy directive of the
// form `module-{allow|forbid}-{absolute|from_module|from_member}`,
// e.g. `datetime-allow-from_member`.
func ParseOverrideDirective(raw string) (string, Override, error) {
	for _, axis := range overrideAxes {
		if !strings.HasSuffix(raw, axis.suffix) {
			continue
		}
		module := strings.TrimSuffix(raw, axis.suffix)
		if module == "" {
			return "", Override{}, configErrorf("override directive %q names no module", raw)
		}
		return module, axis.patch, nil
	}
	return "", Override{}, configErrorf("malformed override directive %q", raw)
}

// ComposeOverrides builds an override table from per-axis allow and
// forbid module lists. Listing one module on both sides of the same
// axis is a configuration error, raised at startup rather than
// resolved by precedence.
func ComposeOverrides(allowAbsolute, forbidAbsolute, allowFromModule, forbidFromModule []string) (map[string]Override, error) {
	if conflict := intersect(allowAbsolute, forbidAbsolute); len(conflict) > 0 {
		return nil, configErrorf("can't simultaneously allow and forbid absolute import for: %s",
			strings.Join(conflict, ", "))
	}
	if conflict := intersect(allowFromModule, forbidFromModule); len(conflict) > 0 {
		return nil, configErrorf("can't simultaneously allow and forbid from_module import for: %s",
			strings.Join(conflict, ", "))
	}
	overrides := map[string]Override{}
	patch := func(modules []string, update Override) {
		for _, module := range modules {
			if module == "" {
				continue
			}
			overrides[module] = overrides[module].Evolve(update)
		}
	}
	patch(allowAbsolute, Override{AllowAbsolute: Bool(true)})
	patch(forbidAbsolute, Override{AllowAbsolute: Bool(false)})
	patch(allowFromModule, Override{AllowFromModule: Bool(true)})
	patch(forbidFromModule, Override{AllowFromModule: Bool(false)})
	return overrides, nil
}

func intersect(left, right []string) []string {
	seen := map[string]bool{}
	for _, item := range left {
		seen[item] = true
	}
	var common []string
	for _, item := range right {
		if seen[item] {
			common = append(common, item)
			seen[item] = false
		}
	}
	sort.Strings(common)
	return common
}
