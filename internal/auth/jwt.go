package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/leadfinder-backend/internal/domain"
)

// Audience is the audience claim of identity-service session tokens.
const Audience = "authenticated"

// ErrTokenExpired is returned by Verify for a well-formed, correctly signed
// token that is past its expiry. The session can be refreshed.
var ErrTokenExpired = errors.New("token expired")

// TokenManager signs and verifies HS256 session tokens in the identity
// service format, plus refresh token generation and hashing.
type TokenManager struct {
	secret    []byte
	accessTTL time.Duration
	now       func() time.Time
}

// NewTokenManager creates a token manager.
// secret must be at least 32 characters for HS256 security.
func NewTokenManager(secret string, accessTTL time.Duration) *TokenManager {
	return &TokenManager{
		secret:    []byte(secret),
		accessTTL: accessTTL,
		now:       time.Now,
	}
}

// sessionClaims are the claims carried by identity-service access tokens.
type sessionClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

// Sign creates a signed access token for the user and returns its expiry.
func (m *TokenManager) Sign(user domain.AuthUser) (string, time.Time, error) {
	now := m.now()
	expiresAt := now.Add(m.accessTTL)

	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			Audience:  jwt.ClaimStrings{Audience},
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Email: user.Email,
		Role:  user.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}

	return signed, expiresAt, nil
}

// Verify parses and validates an access token.
// Returns ErrTokenExpired wrapped when only the expiry check fails.
func (m *TokenManager) Verify(tokenString string) (domain.AuthUser, error) {
	if tokenString == "" {
		return domain.AuthUser{}, fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithAudience(Audience), jwt.WithTimeFunc(m.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.AuthUser{}, fmt.Errorf("parse token: %w", ErrTokenExpired)
		}
		return domain.AuthUser{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return domain.AuthUser{}, fmt.Errorf("invalid token claims")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return domain.AuthUser{}, fmt.Errorf("invalid subject UUID: %w", err)
	}

	return domain.AuthUser{ID: userID, Email: claims.Email, Role: claims.Role}, nil
}

// GenerateRefreshToken creates a cryptographically random refresh token.
// Returns both the raw token (to send to client) and its SHA-256 hash (to store).
func GenerateRefreshToken() (raw string, hash string, err error) {
	raw, err = randomString(32)
	if err != nil {
		return "", "", err
	}
	return raw, HashToken(raw), nil
}

// HashToken computes the SHA-256 hash of a token and returns it as a hex string.
func HashToken(raw string) string {
	h := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(h[:])
}

func randomString(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
