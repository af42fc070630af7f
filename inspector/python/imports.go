package python

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/viant/importlint/policy"
)

const futureModule = "__future__"

// collectImports walks the whole tree in document order; imports
// nested in functions and conditionals are statements too.
func collectImports(node *sitter.Node, src []byte, imports *[]policy.ImportNode) {
	switch node.Type() {
	case "import_statement":
		*imports = append(*imports, parseImportStatement(node, src))
		return
	case "import_from_statement":
		*imports = append(*imports, parseFromStatement(node, src))
		return
	case "future_import_statement":
		*imports = append(*imports, parseFutureStatement(node, src))
		return
	}
	for j := uint32(0); j < node.NamedChildCount(); j++ {
		collectImports(node.NamedChild(int(j)), src, imports)
	}
}

// parseImportStatement handles `import a.b[, c.d as alias]`
func parseImportStatement(node *sitter.Node, src []byte) policy.ImportNode {
	result := newNode(node, policy.KindImport)
	for j := uint32(0); j < node.NamedChildCount(); j++ {
		child := node.NamedChild(int(j))
		if name, ok := parseImportedName(child, src); ok {
			result.Names = append(result.Names, name)
		}
	}
	return result
}

// parseFromStatement handles absolute and relative `from ... import ...`
func parseFromStatement(node *sitter.Node, src []byte) policy.ImportNode {
	result := newNode(node, policy.KindFrom)

	moduleNode := node.ChildByFieldName("module_name")
	if moduleNode != nil {
		if moduleNode.Type() == "relative_import" {
			result.Level, result.Module = parseRelativeModule(moduleNode, src)
		} else {
			result.Module = moduleNode.Content(src)
		}
	}

	for j := uint32(0); j < node.NamedChildCount(); j++ {
		child := node.NamedChild(int(j))
		if moduleNode != nil && child.StartByte() == moduleNode.StartByte() {
			continue
		}
		if child.Type() == "wildcard_import" {
			result.Names = append(result.Names, policy.ImportedName{Name: policy.Wildcard})
			continue
		}
		if name, ok := parseImportedName(child, src); ok {
			result.Names = append(result.Names, name)
		}
	}
	return result
}

// parseFutureStatement handles `from __future__ import ...`; the
// grammar gives it a dedicated node type with the module implied.
func parseFutureStatement(node *sitter.Node, src []byte) policy.ImportNode {
	result := newNode(node, policy.KindFrom)
	result.Module = futureModule
	for j := uint32(0); j < node.NamedChildCount(); j++ {
		child := node.NamedChild(int(j))
		if name, ok := parseImportedName(child, src); ok {
			result.Names = append(result.Names, name)
		}
	}
	return result
}

// parseRelativeModule splits a relative_import node into its dot
// count and optional trailing dotted module.
func parseRelativeModule(node *sitter.Node, src []byte) (int, string) {
	level := 0
	module := ""
	for j := uint32(0); j < node.NamedChildCount(); j++ {
		child := node.NamedChild(int(j))
		switch child.Type() {
		case "import_prefix":
			level = strings.Count(child.Content(src), ".")
		case "dotted_name":
			module = child.Content(src)
		}
	}
	return level, module
}

// parseImportedName extracts one (name, alias) pair from a dotted_name
// or aliased_import node.
func parseImportedName(node *sitter.Node, src []byte) (policy.ImportedName, bool) {
	switch node.Type() {
	case "dotted_name", "identifier":
		return policy.ImportedName{Name: node.Content(src)}, true
	case "aliased_import":
		name := ""
		alias := ""
		if nameNode := node.ChildByFieldName("name"); nameNode != nil {
			name = nameNode.Content(src)
		}
		if aliasNode := node.ChildByFieldName("alias"); aliasNode != nil {
			alias = aliasNode.Content(src)
		}
		return policy.ImportedName{Name: name, Alias: alias}, true
	}
	return policy.ImportedName{}, false
}

func newNode(node *sitter.Node, kind policy.ImportKind) policy.ImportNode {
	start := node.StartPoint()
	return policy.ImportNode{
		Kind:   kind,
		Line:   int(start.Row) + 1,
		Column: int(start.Column),
	}
}
