package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/importlint/policy"
)

func TestOptions_Config(t *testing.T) {
	t.Run("defaults match the policy defaults", func(t *testing.T) {
		config, err := DefaultOptions().Config()
		require.NoError(t, err)
		assert.Equal(t, policy.DefaultConfig(), config)
	})

	t.Run("flags flip the matching rule fields", func(t *testing.T) {
		options := DefaultOptions()
		options.ForbidStdlibAbsolute = true
		options.AllowStdlibFromModule = true
		options.ForbidLocalFromModule = true
		options.AllowLocalFromMember = true
		options.MaxRelativeLevel = 3
		options.InitMustFollowImportPolicy = true
		options.UniformFromPolicy = true

		config, err := options.Config()
		require.NoError(t, err)
		assert.Equal(t, policy.SourceRule{AllowFromModule: true}, config.Stdlib)
		assert.Equal(t, policy.SourceRule{AllowAbsolute: true, AllowFromMember: true}, config.FirstParty)
		assert.Equal(t, 3, config.Relative.MaxRelativeLevel)
		assert.True(t, config.CheckInit)
		assert.Equal(t, policy.ResolutionUniform, config.Resolution)
	})

	t.Run("aliases, overrides and directives compose", func(t *testing.T) {
		options := DefaultOptions()
		options.RegisterImportAlias = []string{"sqlalchemy=sa", "matplotlib.pyplot=plt"}
		options.AllowFromModule = []string{"datetime"}
		options.OverrideImportPolicy = []string{"datetime-allow-from_member"}

		config, err := options.Config()
		require.NoError(t, err)
		assert.Equal(t, "sa", config.Aliases["sqlalchemy"])
		assert.Equal(t, "plt", config.Aliases["matplotlib.pyplot"])
		assert.Equal(t, policy.Override{
			AllowFromModule: policy.Bool(true),
			AllowFromMember: policy.Bool(true),
		}, config.Overrides["datetime"])
	})

	t.Run("conflicting lists fail before any file is read", func(t *testing.T) {
		options := DefaultOptions()
		options.AllowAbsolute = []string{"datetime"}
		options.ForbidAbsolute = []string{"datetime"}
		_, err := options.Config()
		require.Error(t, err)
		var configErr *policy.ConfigError
		assert.ErrorAs(t, err, &configErr)
	})

	t.Run("negative max relative level fails at startup", func(t *testing.T) {
		options := DefaultOptions()
		options.MaxRelativeLevel = -1
		_, err := options.Config()
		require.Error(t, err)
		var configErr *policy.ConfigError
		assert.ErrorAs(t, err, &configErr)
	})

	t.Run("malformed alias fails", func(t *testing.T) {
		options := DefaultOptions()
		options.RegisterImportAlias = []string{"datetime"}
		_, err := options.Config()
		assert.Error(t, err)
	})

	t.Run("malformed directive fails", func(t *testing.T) {
		options := DefaultOptions()
		options.OverrideImportPolicy = []string{"datetime-allow-wildcard"}
		_, err := options.Config()
		assert.Error(t, err)
	})
}

func TestLoadOptions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "importlint.yaml")
	content := `forbid_stdlib_absolute: true
max_relative_level: 2
register_import_alias:
  - sqlalchemy=sa
allow_from_module:
  - datetime
first_party:
  - mypkg
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	options, err := LoadOptions(path)
	require.NoError(t, err)
	assert.True(t, options.ForbidStdlibAbsolute)
	assert.Equal(t, 2, options.MaxRelativeLevel)
	assert.Equal(t, []string{"sqlalchemy=sa"}, options.RegisterImportAlias)
	assert.Equal(t, []string{"datetime"}, options.AllowFromModule)
	assert.Equal(t, []string{"mypkg"}, options.FirstParty)

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadOptions(filepath.Join(dir, "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("defaults survive when keys are absent", func(t *testing.T) {
		empty := filepath.Join(dir, "empty.yaml")
		require.NoError(t, os.WriteFile(empty, []byte("{}\n"), 0o644))
		options, err := LoadOptions(empty)
		require.NoError(t, err)
		assert.Equal(t, 1, options.MaxRelativeLevel)
	})
}
