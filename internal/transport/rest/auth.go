package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/leadfinder-backend/internal/domain"
	"github.com/heartmarshall/leadfinder-backend/internal/service/identity"
	"github.com/heartmarshall/leadfinder-backend/internal/transport/middleware"
	"github.com/heartmarshall/leadfinder-backend/pkg/ctxutil"
)

// Messages shown on the login page after sign-in and sign-up.
const (
	signInFailedMessage  = "Identifiants invalides"
	signUpFailedMessage  = "Erreur lors de l'inscription"
	signUpPendingMessage = "Vérifiez votre email pour confirmer votre inscription"
)

// verifierMaxAge bounds how long an email confirmation can be completed
// from the browser that signed up.
const verifierMaxAge = time.Hour

type identityService interface {
	SignIn(ctx context.Context, input identity.SignInInput) (*domain.Session, error)
	SignUp(ctx context.Context, input identity.SignUpInput) (*identity.SignUpResult, error)
	ExchangeCode(ctx context.Context, code, verifier string) (*domain.Session, error)
	SignOut(ctx context.Context, accessToken string)
	CurrentUser(ctx context.Context) *domain.User
	UpdatePreferences(ctx context.Context, input identity.PreferencesInput) (*domain.User, error)
}

// AuthConfig holds the paths and cookie settings of the auth endpoints.
type AuthConfig struct {
	Cookies        middleware.SessionCookies
	VerifierCookie string
	LoginPath      string
	ErrorPath      string
}

// AuthHandler serves the sign-in, sign-up, sign-out, confirmation
// callback and current-user endpoints.
type AuthHandler struct {
	responder
	svc identityService
	cfg AuthConfig
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc identityService, cfg AuthConfig, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		responder: responder{log: logger.With("handler", "auth"), loginPath: cfg.LoginPath},
		svc:       svc,
		cfg:       cfg,
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Next     string `json:"next"`
}

type authResponse struct {
	User     *userResponse `json:"user,omitempty"`
	Message  string        `json:"message,omitempty"`
	Redirect string        `json:"redirect"`
}

type preferencesRequest struct {
	DisplayName       *string `json:"display_name"`
	NotificationEmail *bool   `json:"notification_email"`
	NotificationWeb   *bool   `json:"notification_web"`
}

// readCredentials accepts both JSON bodies and plain form posts.
func readCredentials(w http.ResponseWriter, r *http.Request) (credentialsRequest, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var req credentialsRequest
		err := decodeJSON(w, r, &req)
		return req, err
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		return credentialsRequest{}, domain.NewValidationError("body", "invalid form")
	}
	return credentialsRequest{
		Email:    r.PostForm.Get("email"),
		Password: r.PostForm.Get("password"),
		Next:     r.PostForm.Get("next"),
	}, nil
}

// SignIn handles POST /auth/signin.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	req, err := readCredentials(w, r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	sess, err := h.svc.SignIn(r.Context(), identity.SignInInput{Email: req.Email, Password: req.Password})
	if err != nil {
		if middleware.WantsHTML(r) {
			h.redirectToLogin(w, r, "error", loginErrorMessage(err, signInFailedMessage))
			return
		}
		h.fail(w, r, err)
		return
	}

	h.cfg.Cookies.Set(w, sess)
	next := SafeNext(req.Next)
	h.log.InfoContext(r.Context(), "signed in", slog.String("user_id", sess.User.ID.String()))

	if middleware.WantsHTML(r) {
		http.Redirect(w, r, next, http.StatusSeeOther)
		return
	}
	user := h.svc.CurrentUser(ctxutil.WithUserID(r.Context(), sess.User.ID))
	writeJSON(w, http.StatusOK, authResponse{User: toUserResponse(user), Redirect: next})
}

// SignUp handles POST /auth/signup. The PKCE verifier is kept in a
// short-lived cookie until the confirmation callback.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	req, err := readCredentials(w, r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	res, err := h.svc.SignUp(r.Context(), identity.SignUpInput{
		Email:    req.Email,
		Password: req.Password,
		Next:     req.Next,
	})
	if err != nil {
		if middleware.WantsHTML(r) {
			h.redirectToLogin(w, r, "error", loginErrorMessage(err, signUpFailedMessage))
			return
		}
		h.fail(w, r, err)
		return
	}

	if res.CodeVerifier != "" {
		http.SetCookie(w, h.verifierCookie(res.CodeVerifier, int(verifierMaxAge.Seconds())))
	}

	// Projects without email confirmation return a session right away.
	if res.Session != nil && res.Session.AccessToken != "" {
		h.cfg.Cookies.Set(w, res.Session)
		next := SafeNext(req.Next)
		if middleware.WantsHTML(r) {
			http.Redirect(w, r, next, http.StatusSeeOther)
			return
		}
		writeJSON(w, http.StatusCreated, authResponse{Redirect: next})
		return
	}

	if middleware.WantsHTML(r) {
		h.redirectToLogin(w, r, "message", signUpPendingMessage)
		return
	}
	writeJSON(w, http.StatusAccepted, authResponse{Message: signUpPendingMessage, Redirect: h.cfg.LoginPath})
}

// SignOut handles POST /auth/signout. It always succeeds and clears the
// session cookies.
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	h.svc.SignOut(r.Context(), ctxutil.AccessTokenFromCtx(r.Context()))
	h.cfg.Cookies.Clear(w)

	if middleware.WantsHTML(r) {
		http.Redirect(w, r, h.cfg.LoginPath, http.StatusSeeOther)
		return
	}
	writeJSON(w, http.StatusOK, authResponse{Redirect: h.cfg.LoginPath})
}

// Callback handles GET /auth/callback, the target of the confirmation
// email. It exchanges the code and redirects to next, or to the error
// page with the provider's message.
func (h *AuthHandler) Callback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	verifier := ""
	if c, err := r.Cookie(h.cfg.VerifierCookie); err == nil {
		verifier = c.Value
	}

	sess, err := h.svc.ExchangeCode(r.Context(), q.Get("code"), verifier)
	if err != nil {
		msg := loginErrorMessage(err, "Lien de confirmation invalide ou expiré")
		http.Redirect(w, r, h.cfg.ErrorPath+"?"+url.Values{"message": {msg}}.Encode(), http.StatusSeeOther)
		return
	}

	http.SetCookie(w, h.verifierCookie("", -1))
	h.cfg.Cookies.Set(w, sess)
	http.Redirect(w, r, SafeNext(q.Get("next")), http.StatusSeeOther)
}

// Me handles GET /auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := h.svc.CurrentUser(r.Context())
	if user == nil {
		h.fail(w, r, domain.ErrUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}

// UpdateMe handles PATCH /auth/me.
func (h *AuthHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req preferencesRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	user, err := h.svc.UpdatePreferences(r.Context(), identity.PreferencesInput{
		DisplayName:       req.DisplayName,
		NotificationEmail: req.NotificationEmail,
		NotificationWeb:   req.NotificationWeb,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}

func (h *AuthHandler) redirectToLogin(w http.ResponseWriter, r *http.Request, key, msg string) {
	http.Redirect(w, r, h.cfg.LoginPath+"?"+url.Values{key: {msg}}.Encode(), http.StatusSeeOther)
}

func (h *AuthHandler) verifierCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     h.cfg.VerifierCookie,
		Value:    value,
		Path:     "/auth",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cfg.Cookies.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// loginErrorMessage returns the message to show on the login page: the
// validation or provider message when there is one, fallback otherwise.
func loginErrorMessage(err error, fallback string) string {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return verr.Errors[0].Message
	}
	var eerr *domain.ExternalError
	if errors.As(err, &eerr) && eerr.Message != "" {
		return eerr.Message
	}
	return fallback
}

// SafeNext returns next when it is a local path and "/" otherwise.
func SafeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "/"
	}
	return next
}
