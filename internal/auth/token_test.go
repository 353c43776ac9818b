package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caipirao/caipirao/internal/auth"
	"github.com/caipirao/caipirao/internal/user"
)

func TestTokens_RoundTrip(t *testing.T) {
	tokens := auth.NewTokens("test-secret", time.Hour)

	u := &user.User{
		ID:       42,
		Email:    "ana@example.com",
		Nickname: "ana",
		Perfil:   user.PerfilAdmin,
	}

	signed, err := tokens.Issue(u)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := tokens.Verify(signed)
	require.NoError(t, err)

	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, u.Email, claims.Email)
	assert.Equal(t, u.Perfil, claims.Perfil)
	assert.Equal(t, u.Nickname, claims.Nickname)
	assert.NotEmpty(t, claims.ID)
}

func TestTokens_Expired(t *testing.T) {
	tokens := auth.NewTokens("test-secret", -time.Minute)

	signed, err := tokens.Issue(&user.User{ID: 1, Email: "a@b.com", Perfil: user.PerfilUser})
	require.NoError(t, err)

	_, err = tokens.Verify(signed)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokens_WrongSecret(t *testing.T) {
	issuer := auth.NewTokens("secret-one", time.Hour)
	verifier := auth.NewTokens("secret-two", time.Hour)

	signed, err := issuer.Issue(&user.User{ID: 1, Email: "a@b.com", Perfil: user.PerfilUser})
	require.NoError(t, err)

	_, err = verifier.Verify(signed)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokens_Garbage(t *testing.T) {
	tokens := auth.NewTokens("test-secret", time.Hour)

	_, err := tokens.Verify("not.a.token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
