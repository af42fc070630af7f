package project

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Index is a side-effect-free structural view of a project's module
// tree. It is built once at startup; lookups are pure, so the index
// may be shared across concurrent file evaluations.
type Index struct {
	modules     map[string]struct{}
	fingerprint uint64
}

// NewIndex builds an index from declared dotted module paths. Every
// ancestor package of a declared module is importable too.
func NewIndex(modules ...string) *Index {
	result := &Index{modules: make(map[string]struct{}, len(modules))}
	for _, module := range modules {
		result.add(module)
	}
	result.refreshFingerprint()
	return result
}

// BuildIndex walks a project tree and records every Python module and
// package as a dotted path. Hidden directories, __pycache__ and
// virtualenv folders are skipped.
func BuildIndex(root string) (*Index, error) {
	result := &Index{modules: map[string]struct{}{}}
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() && path != root {
			name := filepath.Base(path)
			if strings.HasPrefix(name, ".") || name == "__pycache__" || name == "venv" || name == "node_modules" {
				return filepath.SkipDir
			}
			return nil
		}
		name := filepath.Base(path)
		if !strings.HasSuffix(name, ".py") || strings.HasPrefix(name, ".") {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		result.add(moduleOf(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	result.refreshFingerprint()
	return result, nil
}

// IsModule reports whether a dotted path denotes an importable module
// or package; unknown paths are not modules.
func (x *Index) IsModule(modulePath string) bool {
	if modulePath == "" {
		return false
	}
	_, ok := x.modules[modulePath]
	return ok
}

// Modules returns every indexed dotted path, sorted.
func (x *Index) Modules() []string {
	result := make([]string, 0, len(x.modules))
	for module := range x.modules {
		result = append(result, module)
	}
	sort.Strings(result)
	return result
}

// TopLevel returns the distinct first components of the indexed
// modules; the classifier treats them as first-party names.
func (x *Index) TopLevel() []string {
	seen := map[string]struct{}{}
	var result []string
	for _, module := range x.Modules() {
		top, _, _ := strings.Cut(module, ".")
		if _, ok := seen[top]; ok {
			continue
		}
		seen[top] = struct{}{}
		result = append(result, top)
	}
	return result
}

// Fingerprint identifies the indexed module set; two runs over an
// unchanged tree produce the same value.
func (x *Index) Fingerprint() uint64 {
	return x.fingerprint
}

// add registers a module and every package above it
func (x *Index) add(module string) {
	for module != "" {
		if _, ok := x.modules[module]; ok {
			return
		}
		x.modules[module] = struct{}{}
		if idx := strings.LastIndex(module, "."); idx >= 0 {
			module = module[:idx]
		} else {
			module = ""
		}
	}
}

func (x *Index) refreshFingerprint() {
	x.fingerprint = fingerprintOf(x.Modules())
}

// moduleOf converts a root-relative file path to a dotted module
// path; an __init__.py stands for its directory package.
func moduleOf(relPath string) string {
	relPath = filepath.ToSlash(strings.TrimSuffix(relPath, ".py"))
	if base := pathBase(relPath); base == "__init__" {
		relPath = strings.TrimSuffix(relPath, "__init__")
		relPath = strings.TrimSuffix(relPath, "/")
	}
	return strings.ReplaceAll(relPath, "/", ".")
}

func pathBase(slashPath string) string {
	if idx := strings.LastIndex(slashPath, "/"); idx >= 0 {
		return slashPath[idx+1:]
	}
	return slashPath
}
