package project

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/viant/afs"
	"golang.org/x/mod/modfile"
)

// Project represents information about a detected project
type Project struct {
	RootPath     string // Absolute path to the project root directory
	Type         string // Type of project (python, go, git)
	Name         string // Name of the project (extracted from config files)
	RelativePath string // Path from project root to the specified file
}

// Detector identifies project root folders so that file paths can be
// turned into root-relative dotted package paths
type Detector struct {
	// Common project root marker files/directories
	markers []string
}

// NewDetector creates a new project detector instance
func NewDetector() *Detector {
	return &Detector{
		markers: []string{
			"pyproject.toml",   // Python projects
			"setup.py",         // Python projects
			"setup.cfg",        // Python projects
			"requirements.txt", // Python projects
			"go.mod",           // Go projects
			".git",             // Generic VCS marker
		},
	}
}

// DetectProject identifies the project root for the given file path and returns project info
func (d *Detector) DetectProject(filePath string) (*Project, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return nil, err
	}

	startDir := absPath
	fileInfo, err := os.Stat(absPath)
	if err != nil {
		return nil, err
	}
	if !fileInfo.IsDir() {
		startDir = filepath.Dir(absPath)
	}

	rootPath, projectType := d.findProjectRoot(startDir)

	info := &Project{
		Type:     "unknown",
		RootPath: startDir,
	}
	if rootPath != "" {
		info.RootPath = rootPath
		info.Type = projectType
	}

	relPath, err := filepath.Rel(info.RootPath, absPath)
	if err != nil {
		relPath = filepath.Base(absPath)
	}
	info.RelativePath = filepath.ToSlash(relPath)

	if projectType != "" {
		info.Name = d.extractProjectName(rootPath, projectType)
	}
	return info, nil
}

// findProjectRoot searches up from the current directory for project markers
func (d *Detector) findProjectRoot(startDir string) (string, string) {
	dir := startDir
	for {
		for _, marker := range d.markers {
			markerPath := filepath.Join(dir, marker)
			if _, err := os.Stat(markerPath); err == nil {
				return dir, determineProjectType(marker)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			// We've reached the filesystem root with no match
			break
		}
		dir = parent
	}
	return "", ""
}

// extractProjectName attempts to extract a project name from configuration files
func (d *Detector) extractProjectName(rootPath string, projectType string) string {
	switch projectType {
	case "python":
		if name := extractPyProjectName(filepath.Join(rootPath, "pyproject.toml")); name != "" {
			return name
		}
		return extractPythonPackageName(rootPath)
	case "go":
		return extractGoModuleName(filepath.Join(rootPath, "go.mod"))
	default:
		return filepath.Base(rootPath)
	}
}

func extractPyProjectName(pyprojectPath string) string {
	data, err := os.ReadFile(pyprojectPath)
	if err != nil {
		return ""
	}
	// Extract name from the [tool.poetry] or [project] section
	nameRegex := regexp.MustCompile(`name\s*=\s*["']([^"']+)["']`)
	matches := nameRegex.FindSubmatch(data)
	if len(matches) < 2 {
		return ""
	}
	return string(matches[1])
}

func extractPythonPackageName(rootPath string) string {
	setupPath := filepath.Join(rootPath, "setup.py")
	if _, err := os.Stat(setupPath); err == nil {
		data, err := os.ReadFile(setupPath)
		if err == nil {
			nameRegex := regexp.MustCompile(`name\s*=\s*["']([^"']+)["']`)
			matches := nameRegex.FindSubmatch(data)
			if len(matches) >= 2 {
				return string(matches[1])
			}
		}
	}
	return filepath.Base(rootPath)
}

func extractGoModuleName(goModPath string) string {
	fs := afs.New()
	if content, _ := fs.DownloadWithURL(context.Background(), goModPath); len(content) > 0 {
		if mod, _ := modfile.Parse(goModPath, content, nil); mod != nil {
			return mod.Module.Mod.Path
		}
	}
	return filepath.Base(filepath.Dir(goModPath))
}

// determineProjectType identifies the type of project based on the marker file
func determineProjectType(marker string) string {
	switch marker {
	case "pyproject.toml", "setup.py", "setup.cfg", "requirements.txt":
		return "python"
	case "go.mod":
		return "go"
	case ".git":
		return "git"
	default:
		return "unknown"
	}
}

// ModuleName converts a project or distribution name into the
// importable top-level module it conventionally provides:
// `my-package` becomes `my_package`, a repository path keeps only its
// last segment. A name that cannot be a Python identifier yields "".
func ModuleName(name string) string {
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	name = strings.ReplaceAll(name, "-", "_")
	if !isModuleIdentifier(name) {
		return ""
	}
	return name
}

func isModuleIdentifier(name string) bool {
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return name != ""
}

// PackagePath converts a project-root-relative file path into the
// dotted package path of the directory holding the file.
func PackagePath(relPath string) string {
	dir := filepath.ToSlash(filepath.Dir(relPath))
	if dir == "." || dir == "/" {
		return ""
	}
	return strings.ReplaceAll(strings.Trim(dir, "/"), "/", ".")
}
