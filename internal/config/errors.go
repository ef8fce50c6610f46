package config

import (
	"errors"
	"fmt"
)

// ConfigurationError reports a malformed or unusable configuration. It is
// raised before any rule runs, or by the dispatcher for the first rule
// entry it cannot honour.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string { return e.Message }

// Errorf returns a *ConfigurationError with a formatted message.
func Errorf(format string, args ...any) error {
	return &ConfigurationError{Message: fmt.Sprintf(format, args...)}
}

// IsConfigurationError reports whether err is or wraps a
// *ConfigurationError.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

// CouldNotFind returns the error for a lookup that no module matched.
func CouldNotFind(lookup string) error {
	return Errorf("Could not find %q. Do you need a `configBasedir`?", lookup)
}
