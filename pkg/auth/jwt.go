package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Package errors
var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrExpiredToken  = errors.New("expired token")
	ErrInvalidClaims = errors.New("invalid claims")
	ErrMissingJWTKey = errors.New("JWT secret key not configured")
)

// User is the authenticated caller as seen by the handlers. The relay
// handler only cares about presence or absence; the remaining fields are
// carried for logging.
type User struct {
	ID    string
	Email string
	Name  string
}

// JWTClaims represents the custom claims carried in an access token
type JWTClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// JWTService validates and issues access tokens
type JWTService struct {
	secretKey  []byte
	expiration time.Duration
}

// NewJWTService creates a new JWTService with the given secret key
func NewJWTService(secretKey string) (*JWTService, error) {
	if secretKey == "" {
		return nil, ErrMissingJWTKey
	}

	return &JWTService{
		secretKey:  []byte(secretKey),
		expiration: 24 * time.Hour,
	}, nil
}

// GenerateToken issues a signed token for the user
func (s *JWTService) GenerateToken(u *User) (string, error) {
	expirationTime := time.Now().Add(s.expiration)

	claims := JWTClaims{
		UserID: u.ID,
		Email:  u.Email,
		Name:   u.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "biztrackr-api",
			Subject:   u.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ValidateToken validates a token and returns its claims when valid
func (s *JWTService) ValidateToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidClaims
	}

	return claims, nil
}
