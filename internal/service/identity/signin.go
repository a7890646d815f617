package identity

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/heartmarshall/leadfinder-backend/internal/auth"
	"github.com/heartmarshall/leadfinder-backend/internal/domain"
)

// SignUpResult is the outcome of a sign-up. Session is nil while the
// account awaits email confirmation; CodeVerifier must then be kept by the
// client until the confirmation callback.
type SignUpResult struct {
	Session      *domain.Session
	CodeVerifier string
}

// SignIn authenticates with email and password.
func (s *Service) SignIn(ctx context.Context, input SignInInput) (*domain.Session, error) {
	input.Email = strings.TrimSpace(input.Email)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	sess, err := s.provider.SignInWithPassword(ctx, input.Email, input.Password)
	if err != nil {
		s.failed(ctx, "sign_in", err)
		return nil, fmt.Errorf("identity.SignIn: %w", err)
	}

	s.ensureUser(ctx, sess.User)
	s.log.InfoContext(ctx, "user signed in", slog.String("user_id", sess.User.ID.String()))
	return sess, nil
}

// SignUp creates an account. The confirmation email links back to the
// callback URL carrying next unchanged.
func (s *Service) SignUp(ctx context.Context, input SignUpInput) (*SignUpResult, error) {
	input.Email = strings.TrimSpace(input.Email)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	verifier, err := auth.GenerateCodeVerifier()
	if err != nil {
		return nil, fmt.Errorf("identity.SignUp verifier: %w", err)
	}

	sess, err := s.provider.SignUp(ctx, input.Email, input.Password, s.redirectURL(input.Next), auth.CodeChallenge(verifier))
	if err != nil {
		s.failed(ctx, "sign_up", err)
		return nil, fmt.Errorf("identity.SignUp: %w", err)
	}

	if sess != nil {
		s.ensureUser(ctx, sess.User)
	}
	return &SignUpResult{Session: sess, CodeVerifier: verifier}, nil
}

// redirectURL builds the confirmation callback URL.
func (s *Service) redirectURL(next string) string {
	if next == "" {
		return s.callbackURL
	}
	return s.callbackURL + "?" + url.Values{"next": {next}}.Encode()
}

// ExchangeCode completes an email confirmation with the PKCE verifier
// stored at sign-up.
func (s *Service) ExchangeCode(ctx context.Context, code, verifier string) (*domain.Session, error) {
	if code == "" {
		return nil, domain.NewValidationError("code", "required")
	}

	sess, err := s.provider.ExchangeCode(ctx, code, verifier)
	if err != nil {
		s.failed(ctx, "exchange_code", err)
		return nil, fmt.Errorf("identity.ExchangeCode: %w", err)
	}

	s.ensureUser(ctx, sess.User)
	s.log.InfoContext(ctx, "email confirmed", slog.String("user_id", sess.User.ID.String()))
	return sess, nil
}

// SignOut ends the session at the provider. Without a token nothing is
// called. Provider failures are logged; the caller clears its cookies
// regardless.
func (s *Service) SignOut(ctx context.Context, accessToken string) {
	if accessToken == "" {
		return
	}
	if err := s.provider.SignOut(ctx, accessToken); err != nil {
		s.failed(ctx, "sign_out", err)
	}
}
