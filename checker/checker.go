// Package checker ties the Python inspector and the policy engine
// together: one source file in, the file's full diagnostic set out,
// in document order.
package checker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/viant/importlint/inspector/python"
	"github.com/viant/importlint/policy"
	"github.com/viant/importlint/project"
)

// Name identifies this checker in host diagnostic records
const Name = "importlint"

// Diagnostic is the host-facing per-violation record
type Diagnostic struct {
	Path    string
	Line    int    // 1-based
	Column  int    // 0-based
	Message string // begins with the FIP code
	Checker string
}

// Checker evaluates Python files against one shared policy
// configuration. It holds no mutable state and may be used from
// concurrent goroutines.
type Checker struct {
	root      string
	engine    *policy.Engine
	inspector *python.Inspector
}

// New creates a checker rooted at a project directory; file paths are
// reported relative to it.
func New(root string, config *policy.Config, classifier policy.Classifier, index policy.ModuleIndex) *Checker {
	return &Checker{
		root:      root,
		engine:    policy.NewEngine(config, classifier, index),
		inspector: python.NewInspector(),
	}
}

// CheckFile reads and evaluates one Python file.
func (c *Checker) CheckFile(path string) ([]Diagnostic, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	relPath := path
	if c.root != "" {
		if rel, err := filepath.Rel(c.root, path); err == nil {
			relPath = filepath.ToSlash(rel)
		}
	}
	return c.CheckSource(src, relPath)
}

// CheckSource evaluates Python source held in memory. relPath is the
// project-root-relative path of the file; it determines the package
// path used to resolve relative imports.
func (c *Checker) CheckSource(src []byte, relPath string) ([]Diagnostic, error) {
	base := filepath.Base(relPath)
	if strings.HasPrefix(base, ".") {
		return nil, nil
	}
	aFile, err := c.inspector.InspectSource(src)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect %s: %w", relPath, err)
	}
	fileCtx := policy.FileContext{
		Package: project.PackagePath(relPath),
		IsInit:  base == "__init__.py",
	}
	var diagnostics []Diagnostic
	for i := range aFile.Imports {
		violations, err := c.engine.Check(&aFile.Imports[i], fileCtx)
		if err != nil {
			return nil, fmt.Errorf("failed to check %s: %w", relPath, err)
		}
		for _, violation := range violations {
			diagnostics = append(diagnostics, Diagnostic{
				Path:    relPath,
				Line:    violation.Line,
				Column:  violation.Column,
				Message: violation.Message,
				Checker: Name,
			})
		}
	}
	return diagnostics, nil
}
