package auth

import (
	"net/http"
	"strings"
)

// Resolver resolves the caller's identity from a raw request. A nil user
// with a nil error means no credential was presented; callers treat the
// identity as present or absent only.
type Resolver interface {
	Resolve(r *http.Request) (*User, error)
}

// JWTResolver resolves the caller from a Bearer token in the
// Authorization header
type JWTResolver struct {
	jwtService *JWTService
}

// NewJWTResolver creates a new JWTResolver
func NewJWTResolver(jwtService *JWTService) *JWTResolver {
	return &JWTResolver{jwtService: jwtService}
}

// Resolve extracts and validates the Bearer token, returning the caller
// or nil when the request carries no usable credential
func (r *JWTResolver) Resolve(req *http.Request) (*User, error) {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return nil, nil
	}

	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		return nil, nil
	}

	claims, err := r.jwtService.ValidateToken(tokenParts[1])
	if err != nil {
		// An unparseable or expired token resolves to an absent identity
		return nil, nil
	}

	return &User{
		ID:    claims.UserID,
		Email: claims.Email,
		Name:  claims.Name,
	}, nil
}
