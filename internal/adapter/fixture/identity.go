package fixture

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/leadfinder-backend/internal/auth"
	"github.com/heartmarshall/leadfinder-backend/internal/domain"
)

// Messages mirror the hosted identity service so the UI behaves the same
// against both data sources.
const (
	msgInvalidCredentials = "Invalid login credentials"
	msgNotConfirmed       = "Email not confirmed"
	msgAlreadyRegistered  = "User already registered"
	msgInvalidRefresh     = "Invalid Refresh Token: Refresh Token Not Found"
	msgInvalidCode        = "invalid flow state, no valid flow state found"
	msgVerifierMismatch   = "code challenge does not match previously saved code verifier"
	msgInvalidJWT         = "invalid JWT"
)

type account struct {
	user         domain.AuthUser
	passwordHash []byte
	confirmed    bool
}

type pendingCode struct {
	userID    uuid.UUID
	challenge string
}

// IdentityProvider is an in-memory identity service. Confirmation codes
// are logged instead of emailed.
type IdentityProvider struct {
	mu       sync.Mutex
	accounts map[string]*account  // by lowercased email
	refresh  map[string]uuid.UUID // refresh token hash -> user id
	codes    map[string]pendingCode
	tokens   *auth.TokenManager
	cost     int
	log      *slog.Logger
}

// NewIdentityProvider creates a provider that signs sessions with tokens
// and knows the confirmed demo account.
func NewIdentityProvider(tokens *auth.TokenManager, logger *slog.Logger) (*IdentityProvider, error) {
	return newIdentityProvider(tokens, logger, bcrypt.DefaultCost)
}

func newIdentityProvider(tokens *auth.TokenManager, logger *slog.Logger, cost int) (*IdentityProvider, error) {
	p := &IdentityProvider{
		accounts: make(map[string]*account),
		refresh:  make(map[string]uuid.UUID),
		codes:    make(map[string]pendingCode),
		tokens:   tokens,
		cost:     cost,
		log:      logger.With("adapter", "fixture_identity"),
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), cost)
	if err != nil {
		return nil, err
	}
	p.accounts[DemoEmail] = &account{
		user:         domain.AuthUser{ID: DemoUserID, Email: DemoEmail, Role: "user"},
		passwordHash: hash,
		confirmed:    true,
	}
	return p, nil
}

// SignInWithPassword opens a session with email and password.
func (p *IdentityProvider) SignInWithPassword(ctx context.Context, email, password string) (*domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	acc, ok := p.accounts[strings.ToLower(email)]
	if !ok || bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(password)) != nil {
		return nil, domain.NewExternalError(domain.ErrUnauthorized, msgInvalidCredentials)
	}
	if !acc.confirmed {
		return nil, domain.NewExternalError(domain.ErrUnauthorized, msgNotConfirmed)
	}
	return p.issue(acc.user)
}

// SignUp registers an unconfirmed account and logs the confirmation link.
// It always returns a nil session.
func (p *IdentityProvider) SignUp(ctx context.Context, email, password, redirectTo, codeChallenge string) (*domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return nil, domain.NewExternalError(domain.ErrValidation, "Password cannot be used")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	key := strings.ToLower(email)
	if _, ok := p.accounts[key]; ok {
		return nil, domain.NewExternalError(domain.ErrValidation, msgAlreadyRegistered)
	}

	acc := &account{
		user:         domain.AuthUser{ID: uuid.New(), Email: email, Role: "user"},
		passwordHash: hash,
	}
	p.accounts[key] = acc

	code := uuid.NewString()
	p.codes[code] = pendingCode{userID: acc.user.ID, challenge: codeChallenge}

	sep := "?"
	if strings.Contains(redirectTo, "?") {
		sep = "&"
	}
	p.log.InfoContext(ctx, "confirmation link",
		slog.String("email", email),
		slog.String("url", redirectTo+sep+"code="+code))

	return nil, nil
}

// ExchangeCode confirms the account of a code and opens a session.
func (p *IdentityProvider) ExchangeCode(ctx context.Context, code, verifier string) (*domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	pc, ok := p.codes[code]
	if !ok {
		return nil, domain.NewExternalError(domain.ErrValidation, msgInvalidCode)
	}
	if auth.CodeChallenge(verifier) != pc.challenge {
		return nil, domain.NewExternalError(domain.ErrValidation, msgVerifierMismatch)
	}
	delete(p.codes, code)

	acc := p.accountByID(pc.userID)
	if acc == nil {
		return nil, domain.NewExternalError(domain.ErrValidation, msgInvalidCode)
	}
	acc.confirmed = true
	return p.issue(acc.user)
}

// Refresh rotates a refresh token into a new session.
func (p *IdentityProvider) Refresh(ctx context.Context, refreshToken string) (*domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	hash := auth.HashToken(refreshToken)
	userID, ok := p.refresh[hash]
	if !ok {
		return nil, domain.NewExternalError(domain.ErrUnauthorized, msgInvalidRefresh)
	}
	delete(p.refresh, hash)

	acc := p.accountByID(userID)
	if acc == nil {
		return nil, domain.NewExternalError(domain.ErrUnauthorized, msgInvalidRefresh)
	}
	return p.issue(acc.user)
}

// SignOut revokes every refresh token of the token's user. An invalid or
// expired token is ignored.
func (p *IdentityProvider) SignOut(ctx context.Context, accessToken string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	user, err := p.tokens.Verify(accessToken)
	if err != nil {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	for hash, id := range p.refresh {
		if id == user.ID {
			delete(p.refresh, hash)
		}
	}
	return nil
}

// GetUser resolves the account of an access token.
func (p *IdentityProvider) GetUser(ctx context.Context, accessToken string) (*domain.AuthUser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	user, err := p.tokens.Verify(accessToken)
	if err != nil {
		return nil, domain.NewExternalError(domain.ErrUnauthorized, msgInvalidJWT)
	}
	return &user, nil
}

// issue must be called with mu held.
func (p *IdentityProvider) issue(user domain.AuthUser) (*domain.Session, error) {
	access, expiresAt, err := p.tokens.Sign(user)
	if err != nil {
		return nil, err
	}
	raw, hash, err := auth.GenerateRefreshToken()
	if err != nil {
		return nil, err
	}
	p.refresh[hash] = user.ID

	return &domain.Session{
		AccessToken:  access,
		RefreshToken: raw,
		ExpiresAt:    expiresAt,
		User:         user,
	}, nil
}

// accountByID must be called with mu held.
func (p *IdentityProvider) accountByID(id uuid.UUID) *account {
	for _, acc := range p.accounts {
		if acc.user.ID == id {
			return acc
		}
	}
	return nil
}
