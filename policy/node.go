package policy

// ImportKind discriminates the two Python import statement forms.
type ImportKind int

const (
	// KindImport is a plain `import a.b[, c as d]` statement.
	KindImport ImportKind = iota
	// KindFrom is a `from a.b import c[, d as e]` statement,
	// absolute or relative.
	KindFrom
)

// ImportedName is one (name, optional alias) pair of a statement.
type ImportedName struct {
	Name  string
	Alias string // empty when no alias was used
}

// Wildcard is the name used by `from x import *`.
const Wildcard = "*"

// ImportNode is one parsed import statement. The parser produces it,
// the engine consumes it once and discards it.
type ImportNode struct {
	Kind   ImportKind
	Module string // dotted base path; empty only for `from . import x`
	Level  int    // leading dots; 0 for absolute imports
	Names  []ImportedName
	Line   int // 1-based
	Column int // 0-based
}

// FileContext carries the per-file facts the engine needs: the dotted
// package path of the directory holding the file (used to synthesize
// absolute paths for relative imports) and whether the file is an
// __init__.py aggregator.
type FileContext struct {
	Package string
	IsInit  bool
}
