// Package supabase is a client for the hosted identity service (GoTrue).
// Requests are never retried; a failed call surfaces to the caller.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/leadfinder-backend/internal/auth"
	"github.com/heartmarshall/leadfinder-backend/internal/domain"
)

// Client talks to the identity endpoints under /auth/v1.
type Client struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates an identity client for the project at baseURL.
func NewClient(baseURL, anonKey string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/") + "/auth/v1",
		anonKey:    anonKey,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "supabase_auth"),
	}
}

// ---------------------------------------------------------------------------
// Wire types
// ---------------------------------------------------------------------------

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type sessionResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int          `json:"expires_in"`
	ExpiresAt    int64        `json:"expires_at"`
	User         userResponse `json:"user"`
}

// signUpResponse is either a session (auto-confirmed projects) or a bare
// user awaiting email confirmation.
type signUpResponse struct {
	sessionResponse
	ID    string `json:"id"`
	Email string `json:"email"`
}

// errorResponse covers the three error shapes the service returns.
type errorResponse struct {
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func (e errorResponse) text() string {
	switch {
	case e.Msg != "":
		return e.Msg
	case e.ErrorDescription != "":
		return e.ErrorDescription
	case e.Message != "":
		return e.Message
	default:
		return e.Error
	}
}

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// SignInWithPassword opens a session with email and password.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*domain.Session, error) {
	body := map[string]string{"email": email, "password": password}

	var resp sessionResponse
	if err := c.do(ctx, http.MethodPost, "/token", url.Values{"grant_type": {"password"}}, "", body, &resp); err != nil {
		return nil, err
	}
	return toSession(resp)
}

// SignUp registers an account. The confirmation email links to redirectTo
// and carries a PKCE code bound to codeChallenge. Returns a nil session
// when the account awaits confirmation.
func (c *Client) SignUp(ctx context.Context, email, password, redirectTo, codeChallenge string) (*domain.Session, error) {
	body := map[string]string{
		"email":                 email,
		"password":              password,
		"code_challenge":        codeChallenge,
		"code_challenge_method": auth.ChallengeMethod,
	}

	var resp signUpResponse
	if err := c.do(ctx, http.MethodPost, "/signup", url.Values{"redirect_to": {redirectTo}}, "", body, &resp); err != nil {
		return nil, err
	}

	if resp.AccessToken == "" {
		c.log.InfoContext(ctx, "sign-up awaiting confirmation", slog.String("user_id", resp.ID))
		return nil, nil
	}
	return toSession(resp.sessionResponse)
}

// ExchangeCode trades a confirmation code and its PKCE verifier for a session.
func (c *Client) ExchangeCode(ctx context.Context, code, verifier string) (*domain.Session, error) {
	body := map[string]string{"auth_code": code, "code_verifier": verifier}

	var resp sessionResponse
	if err := c.do(ctx, http.MethodPost, "/token", url.Values{"grant_type": {"pkce"}}, "", body, &resp); err != nil {
		return nil, err
	}
	return toSession(resp)
}

// Refresh renews a session from its refresh token.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*domain.Session, error) {
	body := map[string]string{"refresh_token": refreshToken}

	var resp sessionResponse
	if err := c.do(ctx, http.MethodPost, "/token", url.Values{"grant_type": {"refresh_token"}}, "", body, &resp); err != nil {
		return nil, err
	}
	return toSession(resp)
}

// SignOut revokes the session of the access token.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	return c.do(ctx, http.MethodPost, "/logout", nil, accessToken, nil, nil)
}

// GetUser resolves the account of an access token.
func (c *Client) GetUser(ctx context.Context, accessToken string) (*domain.AuthUser, error) {
	var resp userResponse
	if err := c.do(ctx, http.MethodGet, "/user", nil, accessToken, nil, &resp); err != nil {
		return nil, err
	}

	u, err := toAuthUser(resp)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ---------------------------------------------------------------------------
// Transport
// ---------------------------------------------------------------------------

func (c *Client) do(ctx context.Context, method, path string, query url.Values, bearer string, in, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		c.log.ErrorContext(ctx, "identity request failed",
			slog.String("path", path), slog.String("error", err.Error()))
		return domain.NewExternalError(domain.ErrUnavailable, "identity service unavailable")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.NewExternalError(domain.ErrUnavailable, "failed to read identity response")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.mapStatus(ctx, path, resp.StatusCode, raw)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		c.log.ErrorContext(ctx, "identity response invalid",
			slog.String("path", path), slog.String("error", err.Error()))
		return domain.NewExternalError(domain.ErrUnavailable, "invalid identity response")
	}
	return nil
}

// mapStatus turns an error response into an ExternalError carrying the
// service's own message.
func (c *Client) mapStatus(ctx context.Context, path string, status int, raw []byte) error {
	var er errorResponse
	_ = json.Unmarshal(raw, &er)
	msg := er.text()

	c.log.WarnContext(ctx, "identity request rejected",
		slog.String("path", path), slog.Int("status", status), slog.String("message", msg))

	switch {
	case status >= 500:
		if msg == "" {
			msg = "identity service unavailable"
		}
		return domain.NewExternalError(domain.ErrUnavailable, msg)
	case status == http.StatusTooManyRequests:
		if msg == "" {
			msg = "too many requests"
		}
		return domain.NewExternalError(domain.ErrUnavailable, msg)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		if msg == "" {
			msg = "not authenticated"
		}
		return domain.NewExternalError(domain.ErrUnauthorized, msg)
	default:
		if msg == "" {
			msg = http.StatusText(status)
		}
		// Bad credentials come back as 400 invalid_grant.
		if er.Error == "invalid_grant" || strings.Contains(strings.ToLower(msg), "invalid login") {
			return domain.NewExternalError(domain.ErrUnauthorized, msg)
		}
		return domain.NewExternalError(domain.ErrValidation, msg)
	}
}

func toSession(resp sessionResponse) (*domain.Session, error) {
	if resp.AccessToken == "" {
		return nil, domain.NewExternalError(domain.ErrUnavailable, "invalid identity response")
	}

	user, err := toAuthUser(resp.User)
	if err != nil {
		return nil, err
	}

	expiresAt := time.Unix(resp.ExpiresAt, 0)
	if resp.ExpiresAt == 0 {
		expiresAt = time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second)
	}

	return &domain.Session{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    expiresAt,
		User:         user,
	}, nil
}

func toAuthUser(resp userResponse) (domain.AuthUser, error) {
	id, err := uuid.Parse(resp.ID)
	if err != nil {
		return domain.AuthUser{}, domain.NewExternalError(domain.ErrUnavailable, "invalid identity response")
	}
	return domain.AuthUser{ID: id, Email: resp.Email, Role: resp.Role}, nil
}
