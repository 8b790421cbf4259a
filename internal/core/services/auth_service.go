package services

import (
	"context"
	"errors"
	"log"

	"github.com/Omulosi/iReporter/internal/adapters/persistence/models"
	"github.com/Omulosi/iReporter/internal/adapters/persistence/repositories"
	"github.com/Omulosi/iReporter/internal/config"
	"github.com/Omulosi/iReporter/internal/core/domain"
	"github.com/Omulosi/iReporter/internal/pkg/jwt"
	"github.com/Omulosi/iReporter/internal/pkg/password"
	"github.com/Omulosi/iReporter/internal/pkg/validator"

	"gorm.io/gorm"
)

// AuthService handles signup, login and the token lifecycle
type AuthService struct {
	userRepo      repositories.UserRepository
	blacklistRepo repositories.BlacklistRepository
	cfg           *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repositories.UserRepository,
	blacklistRepo repositories.BlacklistRepository,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		userRepo:      userRepo,
		blacklistRepo: blacklistRepo,
		cfg:           cfg,
	}
}

// SignUpInput represents signup input
type SignUpInput struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	Email       string `json:"email"`
	FirstName   string `json:"firstname"`
	LastName    string `json:"lastname"`
	OtherNames  string `json:"othernames"`
	PhoneNumber string `json:"phone_number"`
}

// TokenPair represents access and refresh tokens
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	User         *models.UserResponse `json:"user"`
	AccessToken  string               `json:"access_token"`
	RefreshToken string               `json:"refresh_token"`
}

// SignUp registers a new user and issues a fresh token pair. is_admin is
// never settable through this path.
func (s *AuthService) SignUp(ctx context.Context, input *SignUpInput) (*AuthResponse, error) {
	if !validator.ValidUsername(input.Username) {
		return nil, domain.ErrInvalidUsername
	}
	if !validator.ValidPassword(input.Password) {
		return nil, domain.ErrInvalidPassword
	}
	if input.Email != "" && !validator.ValidEmail(input.Email) {
		return nil, domain.ErrInvalidEmail
	}

	exists, err := s.userRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrUserAlreadyExists
	}

	hashedPassword, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:    input.Username,
		Password:    hashedPassword,
		Email:       input.Email,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		OtherNames:  input.OtherNames,
		PhoneNumber: input.PhoneNumber,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	tokens, err := s.generateTokens(user)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ User registered: %s", user.Username)

	return &AuthResponse{
		User:         user.ToResponse(),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

// Login authenticates a user and issues a fresh token pair
func (s *AuthService) Login(ctx context.Context, username, pass string) (*AuthResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(pass, user.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	tokens, err := s.generateTokens(user)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ User logged in: %s", user.Username)

	return &AuthResponse{
		User:         user.ToResponse(),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

// Refresh mints a new access token from validated refresh token claims.
// Tokens minted here are never fresh.
func (s *AuthService) Refresh(ctx context.Context, claims *jwt.Claims) (string, error) {
	if _, err := s.userRepo.GetByUsername(ctx, claims.Username); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrUserNotFound
		}
		return "", err
	}

	return jwt.GenerateAccessToken(claims.Username, false, s.cfg.JWT.Secret, s.cfg.JWT.AccessTokenMins)
}

// RevokeToken inserts the token's jti into the blacklist. Irreversible;
// revoking an already-revoked jti is a no-op.
func (s *AuthService) RevokeToken(ctx context.Context, claims *jwt.Claims) error {
	entry := &models.BlacklistedToken{
		JTI:       claims.ID,
		TokenType: claims.TokenType,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if err := s.blacklistRepo.Revoke(ctx, entry); err != nil {
		return err
	}

	log.Printf("✅ Revoked %s token for user: %s", claims.TokenType, claims.Username)
	return nil
}

// generateTokens generates a fresh access token and a refresh token
func (s *AuthService) generateTokens(user *models.User) (*TokenPair, error) {
	accessToken, err := jwt.GenerateAccessToken(user.Username, true, s.cfg.JWT.Secret, s.cfg.JWT.AccessTokenMins)
	if err != nil {
		return nil, err
	}

	refreshToken, err := jwt.GenerateRefreshToken(user.Username, s.cfg.JWT.Secret, s.cfg.JWT.RefreshTokenDays)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
