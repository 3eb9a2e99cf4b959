package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	token, err := GenerateAccessToken("u1", "coach@school.com", "Coach", "Coach", "t1", "", "secret", 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateAccessToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "coach@school.com", claims.Email)
	assert.Equal(t, "Coach", claims.Role)
	assert.Equal(t, "t1", claims.AssignedTeamID)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, err := GenerateAccessToken("u1", "a@b.c", "A", "Admin", "", "", "secret", 60)
	require.NoError(t, err)

	_, err = ValidateAccessToken(token, "other-secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateRejectsExpired(t *testing.T) {
	token, err := GenerateAccessToken("u1", "a@b.c", "A", "Admin", "", "", "secret", -1)
	require.NoError(t, err)

	_, err = ValidateAccessToken(token, "secret")
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateRejectsGarbage(t *testing.T) {
	_, err := ValidateAccessToken("not.a.token", "secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
