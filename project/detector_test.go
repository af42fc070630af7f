package project_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/importlint/project"
)

func TestDetector_DetectProject(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "pyproject.toml"),
		[]byte("[project]\nname = \"demo\"\n"), 0o644))
	writeFile(t, root, "demo/api/handlers.py")

	info, err := project.NewDetector().DetectProject(filepath.Join(root, "demo", "api", "handlers.py"))
	require.NoError(t, err)

	assert.Equal(t, root, info.RootPath)
	assert.Equal(t, "python", info.Type)
	assert.Equal(t, "demo", info.Name)
	assert.Equal(t, "demo/api/handlers.py", info.RelativePath)
}

func TestDetector_SetupPyFallback(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "setup.py"),
		[]byte("from setuptools import setup\nsetup(name=\"legacy\")\n"), 0o644))
	writeFile(t, root, "legacy/core.py")

	info, err := project.NewDetector().DetectProject(filepath.Join(root, "legacy", "core.py"))
	require.NoError(t, err)
	assert.Equal(t, "python", info.Type)
	assert.Equal(t, "legacy", info.Name)
}

func TestModuleName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"demo", "demo"},
		{"my-package", "my_package"},
		{"github.com/viant/importlint", "importlint"},
		{"Flask_Login", "Flask_Login"},
		{"", ""},
		{"9lives", ""},
		{"name with spaces", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, project.ModuleName(tt.name), tt.name)
	}
}

func TestPackagePath(t *testing.T) {
	tests := []struct {
		relPath  string
		expected string
	}{
		{"tests/test_import_policy.py", "tests"},
		{"a/b/c.py", "a.b"},
		{"top.py", ""},
		{"pkg/__init__.py", "pkg"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, project.PackagePath(tt.relPath), tt.relPath)
	}
}

func TestFindPythonFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "mypkg/plugin.py")
	writeFile(t, root, "mypkg/data.json")
	writeFile(t, root, ".venv-like/.hidden/ignored.py")
	writeFile(t, root, "__pycache__/ignored.py")

	files, err := project.FindPythonFiles(root)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join(root, "mypkg", "plugin.py"), files[0])
}
