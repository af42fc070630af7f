// Package python extracts import statements from Python source using
// the tree-sitter grammar.
package python

import (
	"context"
	"fmt"
	"os"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/viant/importlint/policy"
)

// File holds the import statements extracted from one source file
type File struct {
	Path    string
	Imports []policy.ImportNode
}

// Inspector provides functionality to inspect Python code and extract
// import statements. It is stateless; one value may serve concurrent
// inspections.
type Inspector struct{}

// NewInspector creates a new Python Inspector
func NewInspector() *Inspector {
	return &Inspector{}
}

// InspectSource parses Python source code from a byte slice and extracts import statements
func (i *Inspector) InspectSource(src []byte) (*File, error) {
	return i.inspect(src, "source.py")
}

// InspectFile parses a Python source file and extracts import statements
func (i *Inspector) InspectFile(filename string) (*File, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return i.inspect(src, filename)
}

func (i *Inspector) inspect(src []byte, filename string) (*File, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	aFile := &File{Path: filename}
	collectImports(tree.RootNode(), src, &aFile.Imports)
	return aFile, nil
}
