package utils

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("TRAVEL_TEST_KEY", "value")
	assert.Equal(t, "value", EnvOrDefault("TRAVEL_TEST_KEY", "fallback"))

	t.Setenv("TRAVEL_TEST_KEY", "  padded  ")
	assert.Equal(t, "padded", EnvOrDefault("TRAVEL_TEST_KEY", "fallback"))

	t.Setenv("TRAVEL_TEST_KEY", "   ")
	assert.Equal(t, "fallback", EnvOrDefault("TRAVEL_TEST_KEY", "fallback"))

	assert.Equal(t, "fallback", EnvOrDefault("TRAVEL_TEST_UNSET", "fallback"))
}

func TestGenerateSecureToken(t *testing.T) {
	token, err := GenerateSecureToken(32)
	assert.NoError(t, err)
	assert.Len(t, token, 64) // hex doubles the byte length

	raw, err := hex.DecodeString(token)
	assert.NoError(t, err)
	assert.Len(t, raw, 32)

	other, err := GenerateSecureToken(32)
	assert.NoError(t, err)
	assert.NotEqual(t, token, other)
}

func TestGenerateSecureToken_InvalidLength(t *testing.T) {
	_, err := GenerateSecureToken(0)
	assert.Error(t, err)
}
