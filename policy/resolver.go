package policy

import "fmt"

// Resolver computes the effective rule for a module path: classify
// the path, pick the base rule for its origin, overlay the exact-path
// override. Resolution is a pure function of (path, config); it is
// repeated per import statement rather than memoized.
type Resolver struct {
	config     *Config
	classifier Classifier
}

// NewResolver creates a resolver bound to one configuration and one
// origin classifier.
func NewResolver(config *Config, classifier Classifier) *Resolver {
	return &Resolver{config: config, classifier: classifier}
}

// Resolve returns the effective rule for a module path together with
// the origin's violation message template and code. A classification
// failure propagates; the resolver never guesses an origin.
func (r *Resolver) Resolve(modulePath string) (SourceRule, Origin, error) {
	origin, err := r.classifier.Classify(modulePath)
	if err != nil {
		return SourceRule{}, 0, fmt.Errorf("failed to classify %q: %w", modulePath, err)
	}
	rule := r.config.OverrideFor(modulePath).Apply(r.config.Rule(origin))
	return rule, origin, nil
}
