package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token families
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var (
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenInvalid   = errors.New("token is invalid")
	ErrWrongTokenType = errors.New("wrong token type")
)

// Claims represents the JWT claims carried by both token families.
// RegisteredClaims.ID holds the jti used as the blacklist key.
type Claims struct {
	Username  string `json:"username"`
	TokenType string `json:"token_type"`
	Fresh     bool   `json:"fresh"`
	jwt.RegisteredClaims
}

// GenerateAccessToken generates a new access token. Tokens minted straight
// from a password login carry fresh=true; tokens minted from a refresh
// exchange carry fresh=false.
func GenerateAccessToken(username string, fresh bool, secret string, expiryMinutes int) (string, error) {
	claims := Claims{
		Username:  username,
		TokenType: TokenTypeAccess,
		Fresh:     fresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expiryMinutes) * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "ireporter",
			Subject:   username,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// GenerateRefreshToken generates a new refresh token, used solely to mint
// new (non-fresh) access tokens.
func GenerateRefreshToken(username, secret string, expiryDays int) (string, error) {
	claims := Claims{
		Username:  username,
		TokenType: TokenTypeRefresh,
		Fresh:     false,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expiryDays) * 24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "ireporter",
			Subject:   username,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Decode validates a token string against secret and returns its claims.
// Failure reasons stay distinguishable so callers can map them to the right
// HTTP signal: ErrTokenExpired, ErrTokenInvalid (malformed or bad
// signature) and ErrWrongTokenType (valid signature, wrong family). Both
// families share one signing secret, so the family check is reachable for
// cross-family tokens.
func Decode(tokenString, expectedType, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	if claims.TokenType != expectedType {
		return nil, ErrWrongTokenType
	}

	return claims, nil
}
