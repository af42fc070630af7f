package policy

// Origin identifies the provenance class of an imported module.
type Origin int

const (
	// OriginFuture covers the literal `__future__` module.
	OriginFuture Origin = iota
	// OriginStandardLibrary covers modules shipped with the interpreter.
	OriginStandardLibrary
	// OriginThirdParty covers installed external distributions.
	OriginThirdParty
	// OriginFirstParty covers modules that belong to the checked project.
	OriginFirstParty
)

// String returns a human readable origin name
func (o Origin) String() string {
	switch o {
	case OriginFuture:
		return "future"
	case OriginStandardLibrary:
		return "stdlib"
	case OriginThirdParty:
		return "third-party"
	case OriginFirstParty:
		return "first-party"
	}
	return "unknown"
}

// Classifier resolves a dotted module path to its origin.
// An unclassifiable path is an error, never a guessed origin.
type Classifier interface {
	Classify(modulePath string) (Origin, error)
}

// ModuleIndex reports whether a dotted path denotes an importable
// module or package. Implementations must be side-effect free; a path
// the index does not know is not a module.
type ModuleIndex interface {
	IsModule(modulePath string) bool
}
