package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstPartySeeds(t *testing.T) {
	assert.Equal(t, []string{"extra", "demo_pkg"}, firstPartySeeds([]string{"extra"}, "demo-pkg"))
	assert.Equal(t, []string{"extra"}, firstPartySeeds([]string{"extra"}, ""))
	assert.Equal(t, []string{"importlint"}, firstPartySeeds(nil, "github.com/viant/importlint"))

	// the explicit list must not be mutated
	explicit := []string{"extra"}
	_ = firstPartySeeds(explicit, "demo")
	assert.Equal(t, []string{"extra"}, explicit)
}

func TestLoadOrBuildIndex(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "mypkg"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "mypkg", "plugin.py"), []byte("x = 1\n"), 0o644))

	cache := filepath.Join(t.TempDir(), "index.cache")
	first, err := loadOrBuildIndex(root, cache)
	require.NoError(t, err)
	assert.True(t, first.IsModule("mypkg.plugin"))
	assert.FileExists(t, cache)

	// a second run with a valid cache skips the tree walk entirely
	require.NoError(t, os.WriteFile(filepath.Join(root, "mypkg", "extra.py"), []byte("x = 1\n"), 0o644))
	second, err := loadOrBuildIndex(root, cache)
	require.NoError(t, err)
	assert.Equal(t, first.Fingerprint(), second.Fingerprint())
	assert.False(t, second.IsModule("mypkg.extra"))

	// a corrupted cache falls back to the walk and is rewritten
	require.NoError(t, os.WriteFile(cache, []byte("garbage\n"), 0o644))
	third, err := loadOrBuildIndex(root, cache)
	require.NoError(t, err)
	assert.True(t, third.IsModule("mypkg.extra"))

	// no cache path keeps the plain walk
	fourth, err := loadOrBuildIndex(root, "")
	require.NoError(t, err)
	assert.Equal(t, third.Fingerprint(), fourth.Fingerprint())
}
