package auth

import (
	"crypto/sha256"
	"encoding/base64"
)

// ChallengeMethod is the only PKCE method used by the sign-up flow.
const ChallengeMethod = "s256"

// GenerateCodeVerifier returns a random PKCE code verifier (43 characters).
func GenerateCodeVerifier() (string, error) {
	return randomString(32)
}

// CodeChallenge derives the S256 challenge of a verifier.
func CodeChallenge(verifier string) string {
	sum := sha256.Sum256([]byte(verifier))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}
