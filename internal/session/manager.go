// Package session is the auth boundary: it remembers who is logged in
// for the lifetime of the client session. It holds a copy of the user,
// not the authoritative store record; nothing refreshes the copy if the
// store's record changes afterwards.
package session

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ayursutra/panchakarma-portal/internal/models"
)

const (
	keyUser  = "user"
	keyToken = "token"
)

// Verifier is an optional callback used to revalidate a rehydrated
// user/token pair against the backend. When nil, rehydration trusts the
// stored entries unconditionally — that is the historical behavior, and
// it means a forged storage entry grants access.
type Verifier func(user models.User, token string) bool

// Manager moves between two states, anonymous and authenticated, and
// mirrors the current state into its storage.
type Manager struct {
	storage Storage
	verify  Verifier
	log     zerolog.Logger

	user  *models.User
	token string
}

type Option func(*Manager)

// WithVerifier gates rehydration behind a revalidation check. This is a
// hardening beyond the historical behavior; callers opt in.
func WithVerifier(v Verifier) Option {
	return func(m *Manager) { m.verify = v }
}

// NewManager builds the boundary and rehydrates from storage: if both
// the user and token entries are present (and the verifier, when set,
// accepts them), the manager starts out authenticated.
func NewManager(storage Storage, log zerolog.Logger, opts ...Option) *Manager {
	m := &Manager{storage: storage, log: log}
	for _, opt := range opts {
		opt(m)
	}
	m.rehydrate()
	return m
}

func (m *Manager) rehydrate() {
	rawUser, okUser := m.storage.Get(keyUser)
	token, okToken := m.storage.Get(keyToken)
	if !okUser || !okToken {
		return
	}

	var u models.User
	if err := json.Unmarshal([]byte(rawUser), &u); err != nil {
		m.log.Warn().Err(err).Msg("discarding unreadable stored session")
		m.clearStorage()
		return
	}
	if m.verify != nil && !m.verify(u, token) {
		m.log.Warn().Str("userId", u.ID).Msg("stored session failed revalidation")
		m.clearStorage()
		return
	}

	m.user = &u
	m.token = token
	m.log.Info().Str("userId", u.ID).Msg("session rehydrated")
}

// Login transitions to authenticated, keeping a copy of the user and
// persisting both entries together.
func (m *Manager) Login(user models.User, token string) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("session: encode user: %w", err)
	}
	if err := m.storage.Set(keyUser, string(raw)); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	if err := m.storage.Set(keyToken, token); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	m.user = &user
	m.token = token
	return nil
}

// Logout transitions back to anonymous and clears both entries.
func (m *Manager) Logout() error {
	m.clearStorage()
	m.user = nil
	m.token = ""
	return nil
}

func (m *Manager) clearStorage() {
	_ = m.storage.Delete(keyUser)
	_ = m.storage.Delete(keyToken)
}

// User returns a copy of the logged-in user, if any.
func (m *Manager) User() (models.User, bool) {
	if m.user == nil {
		return models.User{}, false
	}
	return *m.user, true
}

func (m *Manager) Token() string { return m.token }

func (m *Manager) Authenticated() bool { return m.user != nil }
