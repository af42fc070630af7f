package policy

import (
	"errors"
	"fmt"
)

// ErrMalformedNode signals a parser/adapter contract breach, e.g. an
// absolute from-import without a module. It is never reported as an
// FIP-coded diagnostic.
var ErrMalformedNode = errors.New("malformed import node")

// ConfigError is a startup-fatal configuration problem; it is raised
// before any file is evaluated and never resolved by precedence.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid import policy configuration: %s", e.Reason)
}

// NewConfigError creates a startup-fatal configuration error.
func NewConfigError(format string, args ...interface{}) *ConfigError {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}

func configErrorf(format string, args ...interface{}) error {
	return NewConfigError(format, args...)
}
