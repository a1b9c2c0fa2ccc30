package utils_test

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"readandlead/pkg/utils"
)

// TestCreateAndValidateToken verifies a signed token round-trips and carries
// the user ID in both the custom claim and the subject.
func TestCreateAndValidateToken(t *testing.T) {
	userID := uuid.New()

	token, err := utils.CreateToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
}

// TestCreateToken_UsesSecretSetAfterInit verifies the signing key is read at
// call time, not frozen at package init. The .env file is only loaded in
// main, so a secret that first appears in the environment after this package
// initializes must still be the one tokens are signed with.
func TestCreateToken_UsesSecretSetAfterInit(t *testing.T) {
	t.Setenv("JWT_SECRET", "late-loaded-secret")

	token, err := utils.CreateToken(uuid.New())
	require.NoError(t, err)

	parsed, err := jwt.ParseWithClaims(token, &utils.Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte("late-loaded-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)

	// A key change must invalidate previously issued tokens.
	t.Setenv("JWT_SECRET", "rotated-secret")
	_, err = utils.ValidateToken(token)
	assert.Error(t, err)
}

// TestValidateToken_Tampered verifies a modified token is rejected.
func TestValidateToken_Tampered(t *testing.T) {
	token, err := utils.CreateToken(uuid.New())
	require.NoError(t, err)

	_, err = utils.ValidateToken(token + "x")
	assert.Error(t, err)
}

// TestHashAndComparePasswords verifies the bcrypt round trip and rejection of
// a wrong password.
func TestHashAndComparePasswords(t *testing.T) {
	hash, err := utils.HashPassword("s3cret-pw")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-pw", hash)

	assert.NoError(t, utils.ComparePasswords(hash, "s3cret-pw"))
	assert.Error(t, utils.ComparePasswords(hash, "wrong-pw"))
}
