package policy_test

import (
	"fmt"
	"strings"

	"github.com/viant/importlint/policy"
)

// stubClassifier places modules by their top-level name; unknown
// names are classification errors.
type stubClassifier map[string]policy.Origin

func (s stubClassifier) Classify(modulePath string) (policy.Origin, error) {
	top, _, _ := strings.Cut(modulePath, ".")
	if top == "__future__" {
		return policy.OriginFuture, nil
	}
	if origin, ok := s[top]; ok {
		return origin, nil
	}
	return 0, fmt.Errorf("can't classify module path %q", modulePath)
}

// stubIndex answers module-vs-member lookups from a fixed set.
type stubIndex map[string]bool

func (s stubIndex) IsModule(modulePath string) bool {
	return s[modulePath]
}

func testClassifier() stubClassifier {
	return stubClassifier{
		"os":       policy.OriginStandardLibrary,
		"asyncio":  policy.OriginStandardLibrary,
		"time":     policy.OriginStandardLibrary,
		"typing":   policy.OriginStandardLibrary,
		"datetime": policy.OriginStandardLibrary,
		"pytest":   policy.OriginThirdParty,
		"isort":    policy.OriginThirdParty,
		"mypkg":    policy.OriginFirstParty,
		"tests":    policy.OriginFirstParty,
	}
}

func testIndex() stubIndex {
	return stubIndex{
		"tests":                      true,
		"mypkg":                      true,
		"mypkg.plugin":               true,
		"mypkg.config":               true,
		"isort.main":                 true,
		"tests.local_package":        true,
		"tests.local_package.module": true,
	}
}
