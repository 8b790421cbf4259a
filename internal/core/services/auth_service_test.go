package services

import (
	"context"
	"testing"

	"github.com/Omulosi/iReporter/internal/adapters/persistence/models"
	"github.com/Omulosi/iReporter/internal/adapters/persistence/repositories"
	"github.com/Omulosi/iReporter/internal/core/domain"
	"github.com/Omulosi/iReporter/internal/pkg/jwt"
	"github.com/Omulosi/iReporter/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSignUpInput() *SignUpInput {
	return &SignUpInput{
		Username:  "johndoe",
		Password:  "s3cret",
		Email:     "john@example.com",
		FirstName: "John",
		LastName:  "Doe",
	}
}

func TestAuthService_SignUp(t *testing.T) {
	t.Parallel()

	svc, db, cfg := newAuthService(t)
	ctx := context.Background()

	result, err := svc.SignUp(ctx, validSignUpInput())
	require.NoError(t, err)
	require.NotNil(t, result.User)
	assert.Equal(t, "johndoe", result.User.Username)
	assert.False(t, result.User.IsAdmin)
	require.NotEmpty(t, result.AccessToken)
	require.NotEmpty(t, result.RefreshToken)
	assert.NotEqual(t, result.AccessToken, result.RefreshToken)

	// Tokens minted at signup are fresh
	claims, err := jwt.Decode(result.AccessToken, jwt.TokenTypeAccess, cfg.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, "johndoe", claims.Username)
	assert.True(t, claims.Fresh)

	refreshClaims, err := jwt.Decode(result.RefreshToken, jwt.TokenTypeRefresh, cfg.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, "johndoe", refreshClaims.Username)

	// The stored password is a hash, never the plaintext
	var stored models.User
	require.NoError(t, db.Where("username = ?", "johndoe").First(&stored).Error)
	assert.NotEqual(t, "s3cret", stored.Password)
	assert.True(t, password.Verify("s3cret", stored.Password))
}

func TestAuthService_SignUp_Validation(t *testing.T) {
	t.Parallel()

	svc, _, _ := newAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*SignUpInput)
		wantErr error
	}{
		{
			name:    "username starts with digit",
			mutate:  func(in *SignUpInput) { in.Username = "1234" },
			wantErr: domain.ErrInvalidUsername,
		},
		{
			name:    "username too short",
			mutate:  func(in *SignUpInput) { in.Username = "abc" },
			wantErr: domain.ErrInvalidUsername,
		},
		{
			name:    "password too short",
			mutate:  func(in *SignUpInput) { in.Password = "1234" },
			wantErr: domain.ErrInvalidPassword,
		},
		{
			name:    "malformed email",
			mutate:  func(in *SignUpInput) { in.Email = "not-an-email" },
			wantErr: domain.ErrInvalidEmail,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			input := validSignUpInput()
			tt.mutate(input)

			_, err := svc.SignUp(ctx, input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_SignUp_EmailOptional(t *testing.T) {
	t.Parallel()

	svc, _, _ := newAuthService(t)

	input := validSignUpInput()
	input.Email = ""

	result, err := svc.SignUp(context.Background(), input)
	require.NoError(t, err)
	assert.Empty(t, result.User.Email)
}

func TestAuthService_SignUp_Duplicate(t *testing.T) {
	t.Parallel()

	svc, _, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, validSignUpInput())
	require.NoError(t, err)

	_, err = svc.SignUp(ctx, validSignUpInput())
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	svc, _, cfg := newAuthService(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, validSignUpInput())
	require.NoError(t, err)

	result, err := svc.Login(ctx, "johndoe", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "johndoe", result.User.Username)
	require.NotEmpty(t, result.AccessToken)
	require.NotEmpty(t, result.RefreshToken)

	claims, err := jwt.Decode(result.AccessToken, jwt.TokenTypeAccess, cfg.JWT.Secret)
	require.NoError(t, err)
	assert.True(t, claims.Fresh)
}

func TestAuthService_Login_BadCredentials(t *testing.T) {
	t.Parallel()

	svc, _, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, validSignUpInput())
	require.NoError(t, err)

	_, err = svc.Login(ctx, "johndoe", "wrong-pass")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	// Unknown user is indistinguishable from a wrong password
	_, err = svc.Login(ctx, "nobody", "s3cret")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Refresh(t *testing.T) {
	t.Parallel()

	svc, _, cfg := newAuthService(t)
	ctx := context.Background()

	signup, err := svc.SignUp(ctx, validSignUpInput())
	require.NoError(t, err)

	refreshClaims, err := jwt.Decode(signup.RefreshToken, jwt.TokenTypeRefresh, cfg.JWT.Secret)
	require.NoError(t, err)

	accessToken, err := svc.Refresh(ctx, refreshClaims)
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)

	// Refreshed access tokens are never fresh
	claims, err := jwt.Decode(accessToken, jwt.TokenTypeAccess, cfg.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, "johndoe", claims.Username)
	assert.False(t, claims.Fresh)
}

func TestAuthService_Refresh_UnknownUser(t *testing.T) {
	t.Parallel()

	svc, db, cfg := newAuthService(t)
	ctx := context.Background()

	signup, err := svc.SignUp(ctx, validSignUpInput())
	require.NoError(t, err)

	refreshClaims, err := jwt.Decode(signup.RefreshToken, jwt.TokenTypeRefresh, cfg.JWT.Secret)
	require.NoError(t, err)

	require.NoError(t, db.Where("username = ?", "johndoe").Delete(&models.User{}).Error)

	_, err = svc.Refresh(ctx, refreshClaims)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestAuthService_RevokeToken(t *testing.T) {
	t.Parallel()

	svc, db, cfg := newAuthService(t)
	ctx := context.Background()

	signup, err := svc.SignUp(ctx, validSignUpInput())
	require.NoError(t, err)

	claims, err := jwt.Decode(signup.AccessToken, jwt.TokenTypeAccess, cfg.JWT.Secret)
	require.NoError(t, err)

	require.NoError(t, svc.RevokeToken(ctx, claims))
	// Revoking the same token again is a no-op, not an error
	require.NoError(t, svc.RevokeToken(ctx, claims))

	blacklist := repositories.NewBlacklistRepository(db)
	revoked, err := blacklist.IsRevoked(ctx, claims.ID)
	require.NoError(t, err)
	assert.True(t, revoked)
}
