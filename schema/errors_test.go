package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestValidationError checks message shape and errors.As matching.
func TestValidationError(t *testing.T) {
	err := NewValidationError("cultural_interests", "answer is not a JSON array")
	assert.Contains(t, err.Error(), "cultural_interests")

	var ve *ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Equal(t, "cultural_interests", ve.Question)

	bare := NewValidationError("", "payload is not an object")
	assert.Contains(t, bare.Error(), "invalid survey payload")
}

// TestConfigurationError checks errors.As matching.
func TestConfigurationError(t *testing.T) {
	err := NewConfigurationError("dimension weights sum to zero")
	var ce *ConfigurationError
	assert.True(t, errors.As(err, &ce))
	assert.Contains(t, err.Error(), "weights sum to zero")
}
