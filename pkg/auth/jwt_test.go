package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestNewJWTServiceRequiresSecret(t *testing.T) {
	if _, err := NewJWTService(""); err != ErrMissingJWTKey {
		t.Errorf("NewJWTService(\"\") error = %v, want ErrMissingJWTKey", err)
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	service, err := NewJWTService("test-secret")
	if err != nil {
		t.Fatalf("NewJWTService: %v", err)
	}

	user := &User{ID: "user-1", Email: "owner@biztrackr.io", Name: "Owner"}
	token, err := service.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := service.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("UserID = %q, want %q", claims.UserID, user.ID)
	}
	if claims.Email != user.Email {
		t.Errorf("Email = %q, want %q", claims.Email, user.Email)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuer, _ := NewJWTService("secret-a")
	verifier, _ := NewJWTService("secret-b")

	token, err := issuer.GenerateToken(&User{ID: "user-1"})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := verifier.ValidateToken(token); err != ErrInvalidToken {
		t.Errorf("ValidateToken error = %v, want ErrInvalidToken", err)
	}
}

func TestValidateTokenExpired(t *testing.T) {
	service, _ := NewJWTService("test-secret")

	claims := JWTClaims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}

	if _, err := service.ValidateToken(signed); err != ErrExpiredToken {
		t.Errorf("ValidateToken error = %v, want ErrExpiredToken", err)
	}
}

func TestResolverAbsentCredential(t *testing.T) {
	service, _ := NewJWTService("test-secret")
	resolver := NewJWTResolver(service)

	// No Authorization header
	req := httptest.NewRequest("POST", "/api/chatbot", nil)
	user, err := resolver.Resolve(req)
	if err != nil || user != nil {
		t.Errorf("Resolve without header = (%v, %v), want (nil, nil)", user, err)
	}

	// Wrong scheme
	req = httptest.NewRequest("POST", "/api/chatbot", nil)
	req.Header.Set("Authorization", "Basic abc123")
	user, _ = resolver.Resolve(req)
	if user != nil {
		t.Errorf("Resolve with Basic scheme = %v, want nil", user)
	}

	// Garbage token resolves to absent, not to an error response
	req = httptest.NewRequest("POST", "/api/chatbot", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	user, err = resolver.Resolve(req)
	if err != nil || user != nil {
		t.Errorf("Resolve with bad token = (%v, %v), want (nil, nil)", user, err)
	}
}

func TestResolverValidCredential(t *testing.T) {
	service, _ := NewJWTService("test-secret")
	resolver := NewJWTResolver(service)

	token, err := service.GenerateToken(&User{ID: "user-7", Email: "o@b.io", Name: "O"})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	req := httptest.NewRequest("POST", "/api/chatbot", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	user, err := resolver.Resolve(req)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if user == nil || user.ID != "user-7" {
		t.Errorf("Resolve = %+v, want user-7", user)
	}
}
