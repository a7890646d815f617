package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/leadfinder-backend/internal/domain"
	"github.com/heartmarshall/leadfinder-backend/pkg/ctxutil"
)

type sessionAuthenticator interface {
	Authenticate(ctx context.Context, accessToken string) (domain.AuthUser, error)
	RefreshSession(ctx context.Context, refreshToken string) (*domain.Session, error)
}

// SessionCookies names and writes the session cookies.
type SessionCookies struct {
	Access  string
	Refresh string
	Secure  bool
	MaxAge  time.Duration
}

// Set writes both session cookies.
func (c SessionCookies) Set(w http.ResponseWriter, sess *domain.Session) {
	http.SetCookie(w, c.cookie(c.Access, sess.AccessToken, int(c.MaxAge.Seconds())))
	http.SetCookie(w, c.cookie(c.Refresh, sess.RefreshToken, int(c.MaxAge.Seconds())))
}

// Clear expires both session cookies.
func (c SessionCookies) Clear(w http.ResponseWriter) {
	http.SetCookie(w, c.cookie(c.Access, "", -1))
	http.SetCookie(w, c.cookie(c.Refresh, "", -1))
}

func (c SessionCookies) cookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func cookieValue(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}

// Session resolves the session once per request. A bearer token takes
// precedence over the cookies. An expired cookie session is refreshed and
// both cookies rewritten; when the refresh is rejected the cookies are
// cleared. An unreachable identity service leaves the request anonymous
// and the cookies untouched.
func Session(auth sessionAuthenticator, cookies SessionCookies, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if token := extractBearerToken(r); token != "" {
				if au, err := auth.Authenticate(ctx, token); err == nil {
					ctx = withIdentity(ctx, au, token)
				}
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			access := cookieValue(r, cookies.Access)
			refresh := cookieValue(r, cookies.Refresh)
			if access == "" && refresh == "" {
				next.ServeHTTP(w, r)
				return
			}

			au, err := auth.Authenticate(ctx, access)
			switch {
			case err == nil:
				ctx = withIdentity(ctx, au, access)
			case errors.Is(err, domain.ErrUnavailable):
				logger.WarnContext(ctx, "session check skipped", slog.String("error", err.Error()))
			case refresh == "":
				cookies.Clear(w)
			default:
				sess, rerr := auth.RefreshSession(ctx, refresh)
				switch {
				case rerr == nil:
					cookies.Set(w, sess)
					ctx = withIdentity(ctx, sess.User, sess.AccessToken)
				case errors.Is(rerr, domain.ErrUnavailable):
					logger.WarnContext(ctx, "session refresh skipped", slog.String("error", rerr.Error()))
				default:
					cookies.Clear(w)
				}
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func withIdentity(ctx context.Context, au domain.AuthUser, token string) context.Context {
	ctx = ctxutil.WithUserID(ctx, au.ID)
	return ctxutil.WithAccessToken(ctx, token)
}

func extractBearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}

// RequireUser rejects anonymous requests before the handler runs: browser
// navigations are redirected to loginPath with the original path in next,
// API calls get 401 with the redirect target in the body.
func RequireUser(loginPath string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
				next.ServeHTTP(w, r)
				return
			}

			if WantsHTML(r) && r.Method == http.MethodGet {
				target := loginPath + "?" + url.Values{"next": {r.URL.RequestURI()}}.Encode()
				http.Redirect(w, r, target, http.StatusSeeOther)
				return
			}
			writeJSON(w, http.StatusUnauthorized, errorBody{Error: "unauthorized", Redirect: loginPath})
		})
	}
}
