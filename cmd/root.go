package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/viant/importlint/checker"
	"github.com/viant/importlint/classifier"
	"github.com/viant/importlint/project"
)

const (
	UseDescription   = "importlint [flags] PATH..."
	ShortDescription = "importlint - import policy checker for Python sources"
	LongDescription  = `importlint classifies every import statement in Python sources by
provenance (future, stdlib, third-party, first-party, relative) and
checks each against a configurable policy: absolute form, from-module
form, from-member form, relative depth and registered aliases.

PATH can be a single Python file or a directory; directories are
scanned recursively for .py files.`
)

var (
	opts        = DefaultOptions()
	configFile  string
	showVersion bool
	versionStr  string
)

var rootCmd = &cobra.Command{
	Use:          UseDescription,
	Short:        ShortDescription,
	Long:         LongDescription,
	Args:         validateArgs,
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	flags := rootCmd.PersistentFlags()

	flags.BoolVar(&opts.ForbidStdlibAbsolute, "forbid-stdlib-absolute", false, "Forbid absolute imports for stdlib")
	flags.BoolVar(&opts.AllowStdlibFromModule, "allow-stdlib-from-module", false, "Allow `from ... import module` for stdlib")
	flags.BoolVar(&opts.AllowStdlibFromMember, "allow-stdlib-from-member", false, "Allow `from ... import member` for stdlib")

	flags.BoolVar(&opts.ForbidThirdPartyAbsolute, "forbid-third-party-absolute", false, "Forbid absolute imports for third-party")
	flags.BoolVar(&opts.AllowThirdPartyFromModule, "allow-third-party-from-module", false, "Allow `from ... import module` for third-party")
	flags.BoolVar(&opts.AllowThirdPartyFromMember, "allow-third-party-from-member", false, "Allow `from ... import member` for third-party")

	flags.BoolVar(&opts.ForbidLocalAbsolute, "forbid-local-absolute", false, "Forbid absolute imports for local modules")
	flags.BoolVar(&opts.ForbidLocalFromModule, "forbid-local-from-module", false, "Forbid `from ... import module` for local modules")
	flags.BoolVar(&opts.AllowLocalFromMember, "allow-local-from-member", false, "Allow `from ... import member` for local modules")

	flags.IntVar(&opts.MaxRelativeLevel, "max-relative-level", 1, "Max allowed level for relative imports (e.g. 1 for `.`, 2 for `..`)")
	flags.BoolVar(&opts.ForbidRelativeFromModule, "forbid-relative-from-module", false, "Forbid `from ... import module` for relative modules")
	flags.BoolVar(&opts.AllowRelativeFromMember, "allow-relative-from-member", false, "Allow `from ... import member` for relative modules")

	flags.StringArrayVar(&opts.RegisterImportAlias, "register-import-alias", nil, "Register an allowed alias for a module, format `original=alias` (e.g. `sqlalchemy=sa`)")
	flags.StringArrayVar(&opts.OverrideImportPolicy, "override-import-policy", nil, "Per-module policy directive, format `module-{allow|forbid}-{absolute|from_module|from_member}`")
	flags.StringSliceVar(&opts.AllowFromModule, "allow-from-module", nil, "Modules to always allow `from module import ...`")
	flags.StringSliceVar(&opts.ForbidFromModule, "forbid-from-module", nil, "Modules to always forbid `from module import ...`")
	flags.StringSliceVar(&opts.AllowAbsolute, "allow-absolute", nil, "Modules to always allow `import module`")
	flags.StringSliceVar(&opts.ForbidAbsolute, "forbid-absolute", nil, "Modules to always forbid `import module`")

	flags.BoolVar(&opts.InitMustFollowImportPolicy, "init-must-follow-import-policy", false, "Whether __init__.py shall follow import policies")
	flags.BoolVar(&opts.UniformFromPolicy, "uniform-from-policy", false, "Gate every `from` import on the from-module flag, without module-vs-member lookup")

	flags.StringSliceVar(&opts.FirstParty, "first-party", nil, "Additional first-party top-level module names")
	flags.StringVar(&opts.ProjectRoot, "project-root", "", "Project root directory (default: detected from the first PATH)")
	flags.StringVar(&opts.IndexCache, "index-cache", "", "Path to a module index cache; reused when valid, written after a fresh walk")
	flags.StringVar(&configFile, "config", "", "Path to a yaml config file; explicit flags take precedence")
	flags.BoolVarP(&showVersion, "version", "v", false, "Show version information")
}

func validateArgs(cmd *cobra.Command, args []string) error {
	if showVersion {
		return nil
	}
	return cobra.MinimumNArgs(1)(cmd, args)
}

func run(cmd *cobra.Command, args []string) error {
	if showVersion {
		fmt.Printf("importlint version %s\n", versionStr)
		return nil
	}

	options := opts
	if configFile != "" {
		fileOptions, err := LoadOptions(configFile)
		if err != nil {
			return err
		}
		overlayChanged(cmd, fileOptions, opts)
		options = fileOptions
	}

	config, err := options.Config()
	if err != nil {
		return err
	}

	root := options.ProjectRoot
	projectName := ""
	if root == "" {
		info, err := project.NewDetector().DetectProject(args[0])
		if err != nil {
			return fmt.Errorf("failed to detect project root: %w", err)
		}
		root = info.RootPath
		projectName = info.Name
	} else if info, err := project.NewDetector().DetectProject(root); err == nil {
		projectName = info.Name
	}

	index, err := loadOrBuildIndex(root, options.IndexCache)
	if err != nil {
		return err
	}

	firstParty := append(index.TopLevel(), firstPartySeeds(options.FirstParty, projectName)...)
	chk := checker.New(root, config, classifier.New(firstParty...), index)

	files, err := collectFiles(args)
	if err != nil {
		return err
	}

	violations := 0
	failures := 0
	for _, file := range files {
		diagnostics, err := chk.CheckFile(file)
		if err != nil {
			// one file's failure must not stop the others
			fmt.Fprintf(cmd.ErrOrStderr(), "importlint: %v\n", err)
			failures++
			continue
		}
		for _, diagnostic := range diagnostics {
			fmt.Fprintf(cmd.OutOrStdout(), "%s:%d:%d: %s\n",
				diagnostic.Path, diagnostic.Line, diagnostic.Column, diagnostic.Message)
			violations++
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d files failed to check", failures)
	}
	if violations > 0 {
		return fmt.Errorf("found %d import policy violations", violations)
	}
	return nil
}

// loadOrBuildIndex reuses a cached module index when one is present;
// a cache that fails its fingerprint check is rebuilt, not trusted.
func loadOrBuildIndex(root, cachePath string) (*project.Index, error) {
	if cachePath != "" {
		if index, err := project.LoadIndex(cachePath); err == nil {
			return index, nil
		}
	}
	index, err := project.BuildIndex(root)
	if err != nil {
		return nil, fmt.Errorf("failed to index project %s: %w", root, err)
	}
	if cachePath != "" {
		if err := project.SaveIndex(index, cachePath); err != nil {
			return nil, fmt.Errorf("failed to write index cache %s: %w", cachePath, err)
		}
	}
	return index, nil
}

// firstPartySeeds merges explicit first-party names with the module
// name implied by the detected project name.
func firstPartySeeds(explicit []string, projectName string) []string {
	name := project.ModuleName(projectName)
	if name == "" {
		return explicit
	}
	return append(append([]string(nil), explicit...), name)
}

// collectFiles expands directory arguments into their Python files
func collectFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		isDir, err := project.IsDirectory(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to check path: %w", err)
		}
		if !isDir {
			files = append(files, arg)
			continue
		}
		pyFiles, err := project.FindPythonFiles(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to find Python files: %w", err)
		}
		files = append(files, pyFiles...)
	}
	return files, nil
}

// overlayChanged copies explicitly set flag values over file-sourced
// options, so flags win over the config file.
func overlayChanged(cmd *cobra.Command, base, flagged *Options) {
	cmd.Flags().Visit(func(flag *pflag.Flag) {
		switch flag.Name {
		case "forbid-stdlib-absolute":
			base.ForbidStdlibAbsolute = flagged.ForbidStdlibAbsolute
		case "allow-stdlib-from-module":
			base.AllowStdlibFromModule = flagged.AllowStdlibFromModule
		case "allow-stdlib-from-member":
			base.AllowStdlibFromMember = flagged.AllowStdlibFromMember
		case "forbid-third-party-absolute":
			base.ForbidThirdPartyAbsolute = flagged.ForbidThirdPartyAbsolute
		case "allow-third-party-from-module":
			base.AllowThirdPartyFromModule = flagged.AllowThirdPartyFromModule
		case "allow-third-party-from-member":
			base.AllowThirdPartyFromMember = flagged.AllowThirdPartyFromMember
		case "forbid-local-absolute":
			base.ForbidLocalAbsolute = flagged.ForbidLocalAbsolute
		case "forbid-local-from-module":
			base.ForbidLocalFromModule = flagged.ForbidLocalFromModule
		case "allow-local-from-member":
			base.AllowLocalFromMember = flagged.AllowLocalFromMember
		case "max-relative-level":
			base.MaxRelativeLevel = flagged.MaxRelativeLevel
		case "forbid-relative-from-module":
			base.ForbidRelativeFromModule = flagged.ForbidRelativeFromModule
		case "allow-relative-from-member":
			base.AllowRelativeFromMember = flagged.AllowRelativeFromMember
		case "register-import-alias":
			base.RegisterImportAlias = flagged.RegisterImportAlias
		case "override-import-policy":
			base.OverrideImportPolicy = flagged.OverrideImportPolicy
		case "allow-from-module":
			base.AllowFromModule = flagged.AllowFromModule
		case "forbid-from-module":
			base.ForbidFromModule = flagged.ForbidFromModule
		case "allow-absolute":
			base.AllowAbsolute = flagged.AllowAbsolute
		case "forbid-absolute":
			base.ForbidAbsolute = flagged.ForbidAbsolute
		case "init-must-follow-import-policy":
			base.InitMustFollowImportPolicy = flagged.InitMustFollowImportPolicy
		case "uniform-from-policy":
			base.UniformFromPolicy = flagged.UniformFromPolicy
		case "first-party":
			base.FirstParty = flagged.FirstParty
		case "project-root":
			base.ProjectRoot = flagged.ProjectRoot
		case "index-cache":
			base.IndexCache = flagged.IndexCache
		}
	})
}

func Execute(version string) error {
	versionStr = version
	return rootCmd.Execute()
}
