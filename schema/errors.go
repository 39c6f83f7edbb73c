package schema

import "fmt"

// ValidationError reports a structurally malformed survey payload. Missing
// answers never produce one; only content that cannot be parsed does.
type ValidationError struct {
	Question string
	Reason   string
}

func (e *ValidationError) Error() string {
	if e.Question == "" {
		return fmt.Sprintf("invalid survey payload: %s", e.Reason)
	}
	return fmt.Sprintf("invalid answer for %q: %s", e.Question, e.Reason)
}

// NewValidationError builds a ValidationError for the given question.
func NewValidationError(question, reason string) error {
	return &ValidationError{Question: question, Reason: reason}
}

// ConfigurationError reports a caller-side configuration bug, such as an
// all-zero weight table. It should never reach an end user.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid scoring configuration: %s", e.Reason)
}

// NewConfigurationError builds a ConfigurationError.
func NewConfigurationError(reason string) error {
	return &ConfigurationError{Reason: reason}
}
