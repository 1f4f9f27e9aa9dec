// Package portal wires the therapy portal's data layer together: the
// seeded store, the simulated remote API namespaces, and the session
// boundary. A UI embedding this layer constructs one Portal and calls
// through its namespaces; everything visual stays on the caller's side.
package portal

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ayursutra/panchakarma-portal/internal/api"
	"github.com/ayursutra/panchakarma-portal/internal/config"
	"github.com/ayursutra/panchakarma-portal/internal/db"
	"github.com/ayursutra/panchakarma-portal/internal/session"
	"github.com/ayursutra/panchakarma-portal/internal/store"
)

type Portal struct {
	Auth          *api.AuthAPI
	Sessions      *api.SessionsAPI
	Notifications *api.NotificationsAPI
	Feedback      *api.FeedbackAPI
	Progress      *api.ProgressAPI
	Session       *session.Manager
}

type options struct {
	delays     *api.Delays
	storage    session.Storage
	logger     *zerolog.Logger
	revalidate bool
}

type Option func(*options)

// WithDelays overrides the simulated latencies; tests pass api.Delays{}
// for a zero-delay scheduler.
func WithDelays(d api.Delays) Option {
	return func(o *options) { o.delays = &d }
}

// WithStorage replaces the session storage backing the auth boundary.
func WithStorage(s session.Storage) Option {
	return func(o *options) { o.storage = s }
}

func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = &l }
}

// WithRevalidation gates session rehydration behind a token check
// against the store instead of trusting storage unconditionally.
func WithRevalidation() Option {
	return func(o *options) { o.revalidate = true }
}

// New opens (and seeds, when empty) the store described by the config
// and assembles the API namespaces and the session boundary around it.
func New(cfg config.Config, opts ...Option) (*Portal, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	log := defaultLogger(cfg)
	if o.logger != nil {
		log = *o.logger
	}

	conn, err := db.Open(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("portal: %w", err)
	}
	if err := db.Migrate(conn); err != nil {
		return nil, fmt.Errorf("portal: %w", err)
	}
	if err := db.Seed(conn); err != nil {
		return nil, fmt.Errorf("portal: %w", err)
	}
	st := store.New(conn)

	delays := api.DefaultDelays()
	if o.delays != nil {
		delays = *o.delays
	}

	p := &Portal{
		Auth:          api.NewAuthAPI(st, delays, log),
		Sessions:      api.NewSessionsAPI(st, delays, log),
		Notifications: api.NewNotificationsAPI(st, delays, log),
		Feedback:      api.NewFeedbackAPI(st, delays, log),
		Progress:      api.NewProgressAPI(st, delays, log),
	}

	storage := o.storage
	if storage == nil {
		if cfg.StateDir != "" {
			fs, err := session.NewFileStorage(cfg.StateDir)
			if err != nil {
				return nil, fmt.Errorf("portal: %w", err)
			}
			storage = fs
		} else {
			storage = session.NewMemoryStorage()
		}
	}

	var sessionOpts []session.Option
	if o.revalidate {
		sessionOpts = append(sessionOpts, session.WithVerifier(p.Auth.Verify))
	}
	p.Session = session.NewManager(storage, log, sessionOpts...)

	return p, nil
}

// SignIn runs the login call and, on success, moves the session
// boundary to authenticated. The envelope is passed through so callers
// can surface "Invalid credentials" as-is.
func (p *Portal) SignIn(username, password string) (api.Response[api.AuthData], error) {
	resp, err := p.Auth.Login(api.Credentials{Username: username, Password: password})
	if err != nil || !resp.Success {
		return resp, err
	}
	if err := p.Session.Login(resp.Data.User, resp.Data.Token); err != nil {
		return resp, fmt.Errorf("portal: persist session: %w", err)
	}
	return resp, nil
}

// SignOut runs the logout call and clears the boundary regardless of
// the envelope; the server side has nothing that can fail here.
func (p *Portal) SignOut() error {
	if _, err := p.Auth.Logout(); err != nil {
		return err
	}
	return p.Session.Logout()
}

func defaultLogger(cfg config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil || cfg.LogLevel == "" {
		level = zerolog.InfoLevel
	}
	return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
}
