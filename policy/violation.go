package policy

import "fmt"

// Diagnostic codes are stable; hosts and tests match on them verbatim.
const (
	CodeFuture     = "FIP000"
	CodeStdlib     = "FIP001"
	CodeThirdParty = "FIP002"
	CodeFirstParty = "FIP003"
	CodeRelative   = "FIP004"
	CodeAlias      = "FIP005"
)

const (
	futureViolation     = "FIP000 `__future__` module import policy violation: `%s`"
	stdlibViolation     = "FIP001 stdlib module import policy violation: `%s`"
	thirdPartyViolation = "FIP002 third-party module import policy violation: `%s`"
	firstPartyViolation = "FIP003 first-party module import policy violation: `%s`"
	relativeViolation   = "FIP004 relative module import policy violation: `%s`"
	aliasViolation      = "FIP005 use of unregistered alias: `%s` -> `%s`"
)

// Violation is one policy breach at a source position. It is a pure
// output value; evaluation never aborts on it.
type Violation struct {
	Line    int    // 1-based
	Column  int    // 0-based
	Code    string // FIP000..FIP005
	Message string // begins with Code
}

func newViolation(node *ImportNode, code, message string) Violation {
	return Violation{Line: node.Line, Column: node.Column, Code: code, Message: message}
}

func originCode(origin Origin) string {
	switch origin {
	case OriginFuture:
		return CodeFuture
	case OriginStandardLibrary:
		return CodeStdlib
	case OriginThirdParty:
		return CodeThirdParty
	case OriginFirstParty:
		return CodeFirstParty
	}
	return ""
}

func originTemplate(origin Origin) string {
	switch origin {
	case OriginFuture:
		return futureViolation
	case OriginStandardLibrary:
		return stdlibViolation
	case OriginThirdParty:
		return thirdPartyViolation
	case OriginFirstParty:
		return firstPartyViolation
	}
	return ""
}

func aliasMessage(entityPath, alias string) string {
	return fmt.Sprintf(aliasViolation, entityPath, alias)
}
