package policy

import (
	"fmt"
	"strings"
)

// Engine evaluates one import statement at a time against a shared
// read-only configuration. It holds no per-file state; one engine may
// serve concurrent file evaluations.
type Engine struct {
	config   *Config
	resolver *Resolver
	index    ModuleIndex
}

// NewEngine creates an engine from a configuration, an origin
// classifier and a module index. The index may be nil; names that
// cannot be resolved structurally are treated as members.
func NewEngine(config *Config, classifier Classifier, index ModuleIndex) *Engine {
	return &Engine{
		config:   config,
		resolver: NewResolver(config, classifier),
		index:    index,
	}
}

// Check produces the ordered violations for one import statement:
// form checks first, then each name's alias check, in source order.
func (e *Engine) Check(node *ImportNode, file FileContext) ([]Violation, error) {
	if file.IsInit && !e.config.CheckInit {
		return nil, nil
	}
	switch node.Kind {
	case KindImport:
		return e.checkAbsoluteImport(node)
	case KindFrom:
		if node.Level > 0 {
			return e.checkRelativeImport(node, file)
		}
		return e.checkFromImport(node)
	}
	return nil, fmt.Errorf("%w: unknown import kind %d", ErrMalformedNode, node.Kind)
}

// checkAbsoluteImport handles `import a.b[, c.d as alias]`.
func (e *Engine) checkAbsoluteImport(node *ImportNode) ([]Violation, error) {
	var violations []Violation
	for _, imported := range node.Names {
		rule, origin, err := e.resolver.Resolve(imported.Name)
		if err != nil {
			return nil, err
		}
		if !rule.AllowAbsolute {
			message := fmt.Sprintf(originTemplate(origin), imported.Name)
			violations = append(violations, newViolation(node, originCode(origin), message))
		}
		violations = e.appendAliasViolation(violations, node, imported.Name, imported.Alias)
	}
	return violations, nil
}

// checkFromImport handles `from module import a[, b as alias]` with
// level 0. All names share the module's origin; a wildcard anywhere
// in the clause cedes the whole statement to wildcard handling.
func (e *Engine) checkFromImport(node *ImportNode) ([]Violation, error) {
	if node.Module == "" {
		return nil, fmt.Errorf("%w: absolute from-import without module at %d:%d",
			ErrMalformedNode, node.Line, node.Column)
	}
	if hasWildcard(node.Names) {
		return nil, nil
	}
	rule, origin, err := e.resolver.Resolve(node.Module)
	if err != nil {
		return nil, err
	}
	var violations []Violation
	for _, imported := range node.Names {
		fullPath := node.Module + "." + imported.Name
		if !e.fromAllowed(rule, fullPath) {
			citation := fmt.Sprintf("from %s import %s", node.Module, imported.Name)
			message := fmt.Sprintf(originTemplate(origin), citation)
			violations = append(violations, newViolation(node, originCode(origin), message))
		}
		violations = e.appendAliasViolation(violations, node, fullPath, imported.Alias)
	}
	return violations, nil
}

// checkRelativeImport handles `from .[.pkg] import a[, b as alias]`.
// Depth beyond the configured maximum yields a single violation for
// the whole statement.
func (e *Engine) checkRelativeImport(node *ImportNode, file FileContext) ([]Violation, error) {
	dots := strings.Repeat(".", node.Level)
	if node.Level > e.config.Relative.MaxRelativeLevel {
		message := fmt.Sprintf(relativeViolation, dots+node.Module)
		return []Violation{newViolation(node, CodeRelative, message)}, nil
	}
	if hasWildcard(node.Names) {
		return nil, nil
	}
	base := synthesizeRelativeBase(file.Package, node.Level, node.Module)
	var violations []Violation
	for _, imported := range node.Names {
		fullPath := joinPath(base, imported.Name)
		if !e.relativeFromAllowed(fullPath) {
			citation := fmt.Sprintf("from %s%s import %s", dots, node.Module, imported.Name)
			message := fmt.Sprintf(relativeViolation, citation)
			violations = append(violations, newViolation(node, CodeRelative, message))
		}
		violations = e.appendAliasViolation(violations, node, fullPath, imported.Alias)
	}
	return violations, nil
}

// fromAllowed applies the configured member resolution to one name
// imported via `from`.
func (e *Engine) fromAllowed(rule SourceRule, fullPath string) bool {
	if e.config.Resolution == ResolutionUniform {
		return rule.AllowFromModule
	}
	if e.isModule(fullPath) {
		return rule.AllowFromModule
	}
	return rule.AllowFromMember
}

func (e *Engine) relativeFromAllowed(fullPath string) bool {
	relative := e.config.Relative
	if e.config.Resolution == ResolutionUniform {
		return relative.AllowFromModule
	}
	if e.isModule(fullPath) {
		return relative.AllowFromModule
	}
	return relative.AllowFromMember
}

// isModule is conservative: without an index every from-name counts
// as a member.
func (e *Engine) isModule(fullPath string) bool {
	return e.index != nil && e.index.IsModule(fullPath)
}

// appendAliasViolation runs the alias registry check for one imported
// entity. No alias on the statement means no check at all.
func (e *Engine) appendAliasViolation(violations []Violation, node *ImportNode, entityPath, alias string) []Violation {
	if alias == "" {
		return violations
	}
	if registered, ok := e.config.AliasFor(entityPath); ok && registered == alias {
		return violations
	}
	return append(violations, newViolation(node, CodeAlias, aliasMessage(entityPath, alias)))
}

func hasWildcard(names []ImportedName) bool {
	for _, imported := range names {
		if imported.Name == Wildcard {
			return true
		}
	}
	return false
}

// synthesizeRelativeBase computes the implied absolute module path of
// a relative import: the file's package path truncated by one
// component per dot beyond the first, plus any explicit module
// segment after the dots.
func synthesizeRelativeBase(packagePath string, level int, module string) string {
	base := packagePath
	if base != "" && level > 1 {
		components := strings.Split(base, ".")
		keep := len(components) - (level - 1)
		if keep < 0 {
			keep = 0
		}
		base = strings.Join(components[:keep], ".")
	}
	return joinPath(base, module)
}

func joinPath(base, segment string) string {
	switch {
	case segment == "":
		return base
	case base == "":
		return segment
	}
	return base + "." + segment
}
