package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		name     string
		password string
		ok       bool
	}{
		{"valid", "Abc123!@", true},
		{"valid minimal", "a1!xyz", true},
		{"too short", "a1!", false},
		{"missing symbol", "abc123", false},
		{"missing digit", "abcdef!", false},
		{"missing letter", "123456!", false},
		{"empty", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePassword(tc.password)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrWeakPassword)
			}
		})
	}
}

func TestHashPassword_RoundTrip(t *testing.T) {
	h, err := HashPassword("Abc123!@")
	require.NoError(t, err)
	require.NotEqual(t, "Abc123!@", h)

	assert.True(t, CheckPassword(h, "Abc123!@"))
	assert.False(t, CheckPassword(h, "Abc123!#"))
}

func TestHashPassword_SaltedPerRecord(t *testing.T) {
	h1, err := HashPassword("Abc123!@")
	require.NoError(t, err)
	h2, err := HashPassword("Abc123!@")
	require.NoError(t, err)

	// bcrypt embeds a random salt, so two hashes of one password differ.
	assert.NotEqual(t, h1, h2)
}
