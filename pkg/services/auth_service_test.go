package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/sokochat/sokochat/test/database"
)

func TestAuthService_RegisterAndLogin(t *testing.T) {
	client := testdb.NewTestClient(t)
	auth := NewAuthService(client, []byte("secret"))
	ctx := context.Background()

	u, err := auth.Register(ctx, "  Amina@Duka.Example ", "long enough password")
	require.NoError(t, err)
	assert.Equal(t, "amina@duka.example", u.Email, "email is normalized")
	assert.NotEqual(t, "long enough password", u.PasswordHash)

	token, logged, err := auth.Login(ctx, "amina@duka.example", "long enough password")
	require.NoError(t, err)
	assert.Equal(t, u.ID, logged.ID)

	authed, err := auth.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, authed.ID)
}

func TestAuthService_RegisterValidation(t *testing.T) {
	client := testdb.NewTestClient(t)
	auth := NewAuthService(client, []byte("secret"))
	ctx := context.Background()

	_, err := auth.Register(ctx, "not-an-email", "long enough password")
	assert.True(t, IsValidationError(err))

	_, err = auth.Register(ctx, "amina@duka.example", "short")
	assert.True(t, IsValidationError(err))

	_, err = auth.Register(ctx, "amina@duka.example", "long enough password")
	require.NoError(t, err)
	_, err = auth.Register(ctx, "amina@duka.example", "long enough password")
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestAuthService_LoginFailuresIndistinguishable(t *testing.T) {
	client := testdb.NewTestClient(t)
	auth := NewAuthService(client, []byte("secret"))
	ctx := context.Background()

	_, err := auth.Register(ctx, "amina@duka.example", "long enough password")
	require.NoError(t, err)

	_, _, unknownErr := auth.Login(ctx, "nobody@duka.example", "long enough password")
	_, _, wrongErr := auth.Login(ctx, "amina@duka.example", "wrong password here")
	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, ErrInvalidCredentials)
	assert.Equal(t, unknownErr, wrongErr)
}

func TestAuthService_TokenTamperAndExpiry(t *testing.T) {
	client := testdb.NewTestClient(t)
	auth := NewAuthService(client, []byte("secret"))

	token, err := auth.MintToken("user-1")
	require.NoError(t, err)

	uid, err := auth.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", uid)

	_, err = auth.ParseToken(token + "x")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	other := NewAuthService(client, []byte("different secret"))
	_, err = other.ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	auth.now = func() time.Time { return time.Now().Add(25 * time.Hour) }
	_, err = auth.ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestAuthService_AuthenticateDeletedUser(t *testing.T) {
	client := testdb.NewTestClient(t)
	auth := NewAuthService(client, []byte("secret"))

	token, err := auth.MintToken("no-such-user")
	require.NoError(t, err)

	_, err = auth.Authenticate(context.Background(), token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
