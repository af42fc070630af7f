package classifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/importlint/classifier"
	"github.com/viant/importlint/policy"
)

func TestClassifier_Classify(t *testing.T) {
	clf := classifier.New("mypkg", "tests")

	tests := []struct {
		name     string
		module   string
		expected policy.Origin
		wantErr  bool
	}{
		{name: "future module", module: "__future__", expected: policy.OriginFuture},
		{name: "stdlib top-level", module: "os", expected: policy.OriginStandardLibrary},
		{name: "stdlib dotted path", module: "os.path", expected: policy.OriginStandardLibrary},
		{name: "stdlib concurrent package", module: "concurrent.futures", expected: policy.OriginStandardLibrary},
		{name: "first-party", module: "mypkg", expected: policy.OriginFirstParty},
		{name: "first-party dotted", module: "mypkg.plugin.config", expected: policy.OriginFirstParty},
		{name: "third-party by default", module: "requests", expected: policy.OriginThirdParty},
		{name: "third-party dotted", module: "isort.sections", expected: policy.OriginThirdParty},
		{name: "empty path", module: "", wantErr: true},
		{name: "leading dot", module: ".relative", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origin, err := clf.Classify(tt.module)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, origin)
		})
	}
}

func TestClassifier_StdlibWinsOverFirstParty(t *testing.T) {
	// shadowing a stdlib name does not make it first-party,
	// mirroring how isort sections imports
	clf := classifier.New("json")
	origin, err := clf.Classify("json")
	require.NoError(t, err)
	assert.Equal(t, policy.OriginStandardLibrary, origin)
}

func TestIsStandardModule(t *testing.T) {
	assert.True(t, classifier.IsStandardModule("asyncio"))
	assert.True(t, classifier.IsStandardModule("typing"))
	assert.False(t, classifier.IsStandardModule("requests"))
	assert.False(t, classifier.IsStandardModule("__future__"), "future is its own origin")
}
