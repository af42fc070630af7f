// Package classifier places dotted Python module paths into origin
// classes, mirroring how isort sections imports: future first, then
// the standard library table, then configured first-party names,
// defaulting to third-party.
package classifier

import (
	"fmt"
	"strings"

	"github.com/viant/importlint/policy"
)

const futureModule = "__future__"

// Classifier implements policy.Classifier against a static standard
// library table and a set of first-party top-level module names.
type Classifier struct {
	firstParty map[string]struct{}
}

// New creates a classifier for the given first-party top-level
// module names.
func New(firstParty ...string) *Classifier {
	result := &Classifier{firstParty: make(map[string]struct{}, len(firstParty))}
	for _, name := range firstParty {
		if name == "" {
			continue
		}
		result.firstParty[name] = struct{}{}
	}
	return result
}

// Classify resolves the origin of a dotted module path. An empty or
// malformed path is an error; the classifier never guesses.
func (c *Classifier) Classify(modulePath string) (policy.Origin, error) {
	top, _, _ := strings.Cut(modulePath, ".")
	if top == "" {
		return 0, fmt.Errorf("can't classify module path %q", modulePath)
	}
	if top == futureModule {
		return policy.OriginFuture, nil
	}
	if IsStandardModule(top) {
		return policy.OriginStandardLibrary, nil
	}
	if _, ok := c.firstParty[top]; ok {
		return policy.OriginFirstParty, nil
	}
	return policy.OriginThirdParty, nil
}
