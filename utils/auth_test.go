package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundtrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken(42, "admin")
	require.NoError(t, err)

	userID, expiresAt, err := ParseToken(token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, userID)
	assert.True(t, expiresAt.After(time.Now()))
}

func TestParseTokenWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateToken(42, "customer")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "other-secret")
	_, _, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestExtractBearerToken(t *testing.T) {
	assert.Equal(t, "abc", ExtractBearerToken("Bearer abc"))
	assert.Equal(t, "abc", ExtractBearerToken("bearer abc"))
	assert.Equal(t, "", ExtractBearerToken("abc"))
	assert.Equal(t, "", ExtractBearerToken(""))
	assert.Equal(t, "", ExtractBearerToken("Basic abc"))
}

func TestRandomReferenceSuffix(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-Z0-9]{6}$`)
	for i := 0; i < 20; i++ {
		assert.Regexp(t, pattern, RandomReferenceSuffix(6))
	}
}

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate("2026-05-20"))
	assert.False(t, ValidDate("2026-13-20"))
	assert.False(t, ValidDate("20/05/2026"))
	assert.False(t, ValidDate(""))
}

func TestValidClockTime(t *testing.T) {
	assert.True(t, ValidClockTime("09:30"))
	assert.True(t, ValidClockTime("23:59"))
	assert.False(t, ValidClockTime("24:00"))
	assert.False(t, ValidClockTime("9am"))
}

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("+1 555 123 4567"))
	assert.True(t, ValidatePhone("5551234567"))
	assert.False(t, ValidatePhone("not-a-phone"))
}

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("a@b.co"))
	assert.False(t, ValidateEmail("a@b"))
	assert.False(t, ValidateEmail(""))
}
