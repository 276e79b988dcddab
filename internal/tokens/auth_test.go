package tokens

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var testKey = []byte("test-secret-key")

func TestUserJWT_Roundtrip(t *testing.T) {
	userID := uuid.NewString()

	token, err := GenerateUserJWT(userID, time.Hour, testKey)
	require.NoError(t, err)

	claims, err := ValidateSessionJWT(token, testKey)
	require.NoError(t, err)
	require.Equal(t, userID, claims.UserID)
	require.Empty(t, claims.VisitorUUID)
}

func TestVisitorJWT_Roundtrip(t *testing.T) {
	visitorUUID := uuid.NewString()

	token, err := GenerateVisitorJWT(visitorUUID, time.Hour, testKey)
	require.NoError(t, err)

	claims, err := ValidateSessionJWT(token, testKey)
	require.NoError(t, err)
	require.Equal(t, visitorUUID, claims.VisitorUUID)
	require.Empty(t, claims.UserID)
}

func TestValidateSessionJWT_Expired(t *testing.T) {
	token, err := GenerateUserJWT(uuid.NewString(), -time.Minute, testKey)
	require.NoError(t, err)

	_, err = ValidateSessionJWT(token, testKey)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateSessionJWT_WrongKey(t *testing.T) {
	token, err := GenerateUserJWT(uuid.NewString(), time.Hour, testKey)
	require.NoError(t, err)

	_, err = ValidateSessionJWT(token, []byte("another-key"))
	require.Error(t, err)
}

func TestValidateSessionJWT_Garbage(t *testing.T) {
	_, err := ValidateSessionJWT("not-a-token", testKey)
	require.Error(t, err)
}
