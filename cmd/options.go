package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/viant/importlint/policy"
)

// Options mirrors the recognized configuration surface; the same keys
// work as CLI flags and as yaml config file entries.
type Options struct {
	ForbidStdlibAbsolute  bool `yaml:"forbid_stdlib_absolute"`
	AllowStdlibFromModule bool `yaml:"allow_stdlib_from_module"`
	AllowStdlibFromMember bool `yaml:"allow_stdlib_from_member"`

	ForbidThirdPartyAbsolute  bool `yaml:"forbid_third_party_absolute"`
	AllowThirdPartyFromModule bool `yaml:"allow_third_party_from_module"`
	AllowThirdPartyFromMember bool `yaml:"allow_third_party_from_member"`

	ForbidLocalAbsolute   bool `yaml:"forbid_local_absolute"`
	ForbidLocalFromModule bool `yaml:"forbid_local_from_module"`
	AllowLocalFromMember  bool `yaml:"allow_local_from_member"`

	MaxRelativeLevel         int  `yaml:"max_relative_level"`
	ForbidRelativeFromModule bool `yaml:"forbid_relative_from_module"`
	AllowRelativeFromMember  bool `yaml:"allow_relative_from_member"`

	RegisterImportAlias  []string `yaml:"register_import_alias"`
	OverrideImportPolicy []string `yaml:"override_import_policy"`
	AllowFromModule      []string `yaml:"allow_from_module"`
	ForbidFromModule     []string `yaml:"forbid_from_module"`
	AllowAbsolute        []string `yaml:"allow_absolute"`
	ForbidAbsolute       []string `yaml:"forbid_absolute"`

	InitMustFollowImportPolicy bool `yaml:"init_must_follow_import_policy"`
	UniformFromPolicy          bool `yaml:"uniform_from_policy"`

	FirstParty  []string `yaml:"first_party"`
	ProjectRoot string   `yaml:"project_root"`
	IndexCache  string   `yaml:"index_cache"`
}

// DefaultOptions returns options matching policy.DefaultConfig
func DefaultOptions() *Options {
	return &Options{MaxRelativeLevel: 1}
}

// LoadOptions reads options from a yaml config file
func LoadOptions(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	options := DefaultOptions()
	if err := yaml.Unmarshal(data, options); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return options, nil
}

// Config translates the option surface into an immutable policy
// configuration. Malformed or conflicting options fail here, before
// any file is evaluated.
func (o *Options) Config() (*policy.Config, error) {
	if o.MaxRelativeLevel < 0 {
		return nil, policy.NewConfigError("max_relative_level must be >= 0, got %d", o.MaxRelativeLevel)
	}
	config := policy.DefaultConfig()

	config.Stdlib.AllowAbsolute = !o.ForbidStdlibAbsolute
	config.Stdlib.AllowFromModule = o.AllowStdlibFromModule
	config.Stdlib.AllowFromMember = o.AllowStdlibFromMember

	config.ThirdParty.AllowAbsolute = !o.ForbidThirdPartyAbsolute
	config.ThirdParty.AllowFromModule = o.AllowThirdPartyFromModule
	config.ThirdParty.AllowFromMember = o.AllowThirdPartyFromMember

	config.FirstParty.AllowAbsolute = !o.ForbidLocalAbsolute
	config.FirstParty.AllowFromModule = !o.ForbidLocalFromModule
	config.FirstParty.AllowFromMember = o.AllowLocalFromMember

	config.Relative.MaxRelativeLevel = o.MaxRelativeLevel
	config.Relative.AllowFromModule = !o.ForbidRelativeFromModule
	config.Relative.AllowFromMember = o.AllowRelativeFromMember

	config.CheckInit = o.InitMustFollowImportPolicy
	if o.UniformFromPolicy {
		config.Resolution = policy.ResolutionUniform
	}

	overrides, err := policy.ComposeOverrides(o.AllowAbsolute, o.ForbidAbsolute, o.AllowFromModule, o.ForbidFromModule)
	if err != nil {
		return nil, err
	}
	for _, directive := range o.OverrideImportPolicy {
		module, patch, err := policy.ParseOverrideDirective(directive)
		if err != nil {
			return nil, err
		}
		overrides[module] = overrides[module].Evolve(patch)
	}
	config.Overrides = overrides

	for _, pair := range o.RegisterImportAlias {
		entity, alias, err := policy.ParseAliasPair(pair)
		if err != nil {
			return nil, err
		}
		config.Aliases[entity] = alias
	}
	return config, nil
}
