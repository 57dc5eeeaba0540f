package taxonomy

import "fmt"

// ConfigurationError represents a bad or ambiguous skill taxonomy.
// It is fatal: the taxonomy must be fixed before the engine can score anything.
type ConfigurationError struct {
	Message string
	Cause   error
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("taxonomy configuration error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("taxonomy configuration error: %s", e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}
