package api

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ayursutra/panchakarma-portal/internal/models"
	"github.com/ayursutra/panchakarma-portal/internal/store"
)

// DemoPassword is the single password the demo accepts for every seeded
// username. There is no hashing anywhere: this surface exists to unlock
// role-scoped views, not to protect anything.
const DemoPassword = "password123"

const (
	tokenPrefix     = "mock-jwt-token-"
	tokenTTLSeconds = 3600
)

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthData is what a successful login hands to the session boundary.
type AuthData struct {
	User      models.User `json:"user"`
	Token     string      `json:"token"`
	ExpiresIn int         `json:"expiresIn"`
}

type AuthAPI struct {
	store  *store.Store
	delays Delays
	log    zerolog.Logger
}

func NewAuthAPI(st *store.Store, delays Delays, log zerolog.Logger) *AuthAPI {
	return &AuthAPI{store: st, delays: delays, log: log}
}

// Login checks the username against the store and the password against
// the fixed demo constant. Both failure modes answer with the same
// "Invalid credentials" envelope.
func (a *AuthAPI) Login(creds Credentials) (Response[AuthData], error) {
	wait(a.delays.Login)

	a.log.Info().Str("username", creds.Username).Msg("login attempt")

	u, err := a.store.UserByUsername(creds.Username)
	if errors.Is(err, store.ErrNotFound) {
		return fail[AuthData]("Invalid credentials"), nil
	}
	if err != nil {
		return fail[AuthData](""), fmt.Errorf("auth: look up user: %w", err)
	}
	if creds.Password != DemoPassword {
		return fail[AuthData]("Invalid credentials"), nil
	}

	return ok(AuthData{
		User:      *u,
		Token:     TokenFor(u.ID),
		ExpiresIn: tokenTTLSeconds,
	}), nil
}

// Logout never fails; the server side has nothing to tear down.
func (a *AuthAPI) Logout() (Response[any], error) {
	wait(a.delays.Logout)
	return Response[any]{Success: true}, nil
}

// TokenFor builds the opaque token issued at login. Nothing ever
// validates it except the optional rehydration check below.
func TokenFor(userID string) string {
	return tokenPrefix + userID
}

// Verify reports whether a stored user/token pair still names a real
// account. The boundary does not call this by default; it is the
// optional hardening hook for rehydration.
func (a *AuthAPI) Verify(user models.User, token string) bool {
	if token != TokenFor(user.ID) {
		return false
	}
	if _, err := a.store.UserByID(user.ID); err != nil {
		return false
	}
	return true
}
