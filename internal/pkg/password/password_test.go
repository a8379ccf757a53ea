//go:build unit

package password_test

import (
	"testing"

	"kelurahan-booking/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStrength(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "meets all rules", input: "Str0ng!Pass", valid: true},
		{name: "minimum length with all classes", input: "Aa1!aaaa", valid: true},
		{name: "too short", input: "Aa1!aaa", valid: false},
		{name: "no uppercase", input: "weak1pass!", valid: false},
		{name: "no lowercase", input: "WEAK1PASS!", valid: false},
		{name: "no digit", input: "WeakPass!!", valid: false},
		{name: "no symbol", input: "WeakPass11", valid: false},
		{name: "empty", input: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.ValidateStrength(tt.input)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, password.ErrWeakPassword)
			}
		})
	}
}

func TestHashAndCompare(t *testing.T) {
	hash, err := password.HashPassword("Str0ng!Pass")
	require.NoError(t, err)
	assert.NotEqual(t, "Str0ng!Pass", hash)

	assert.NoError(t, password.ComparePassword(hash, "Str0ng!Pass"))
	assert.Error(t, password.ComparePassword(hash, "wrong-password"))
}
