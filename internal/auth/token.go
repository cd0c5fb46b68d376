package auth

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"category_admin/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingToken  = errors.New("missing authentication token")
	ErrInvalidClaims = errors.New("invalid token claims")
)

type identityClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// DecodeIdentity reads the identity payload of a JWT without checking its
// signature. The server is the one that enforces the token; the client only
// needs to know who it is acting as.
func DecodeIdentity(tokenString string) (*domain.Identity, error) {
	tokenString = strings.TrimSpace(strings.TrimPrefix(tokenString, "Bearer "))
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	claims := &identityClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("failed to decode identity token: %w", err)
	}
	if claims.Email == "" {
		return nil, ErrInvalidClaims
	}

	return &domain.Identity{Email: claims.Email, Name: claims.Name}, nil
}

// ReadTokenFile returns the token stored at path. A missing file is not an
// error and yields "".
func ReadTokenFile(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read token file %s: %w", path, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// WriteTokenFile stores token at path, readable only by the owner.
func WriteTokenFile(path, token string) error {
	if err := os.WriteFile(path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("failed to write token file %s: %w", path, err)
	}
	return nil
}
