package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/ticketapp/internal/auth"
	"github.com/spec-kit/ticketapp/internal/config"
	"github.com/spec-kit/ticketapp/internal/domain"
	"github.com/spec-kit/ticketapp/internal/events"
	"github.com/spec-kit/ticketapp/internal/observability"
	"github.com/spec-kit/ticketapp/internal/store"
	"github.com/spec-kit/ticketapp/pkg/util"
)

// AuthService coordinates login, signup and logout flows over the user
// directory and the session store.
type AuthService struct {
	directory  *auth.UserDirectory
	sessions   *store.SessionStore
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
	metrics    *observability.Metrics
	latency    Latency
}

// AuthDependencies encapsulates collaborator requirements for auth service.
type AuthDependencies struct {
	Directory  *auth.UserDirectory
	Sessions   *store.SessionStore
	Dispatcher events.Dispatcher
	Metrics    *observability.Metrics
	Latency    Latency
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	latency := deps.Latency
	if latency == nil {
		latency = NewFixedLatency(cfg.Latency.AuthDelay())
	}
	return &AuthService{
		directory:  deps.Directory,
		sessions:   deps.Sessions,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.TokenSecret, cfg.Auth.TokenTTLMinutes),
		dispatcher: deps.Dispatcher,
		metrics:    deps.Metrics,
		latency:    latency,
	}
}

// Login authenticates against the directory and persists a new session.
// Any mismatch, unknown email or wrong password alike, fails with
// INVALID_CREDENTIALS.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	s.metrics.RecordOp("auth.login")
	s.latency.Pause()

	user, ok := s.directory.FindByCredentials(email, password)
	if !ok {
		s.metrics.RecordFailure("auth.login", util.CodeInvalidCredentials)
		return nil, util.NewInvalidCredentials()
	}
	return s.startSession(ctx, user)
}

// Signup appends a new directory entry and persists a session for it. Fails
// with EMAIL_EXISTS when the email is already taken; the directory and the
// session slot are left untouched in that case.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (*domain.Session, error) {
	s.metrics.RecordOp("auth.signup")
	s.latency.Pause()

	if s.directory.HasEmail(email) {
		s.metrics.RecordFailure("auth.signup", util.CodeEmailExists)
		return nil, util.NewEmailExists()
	}

	user := domain.User{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    email,
		Password: password,
	}
	s.directory.Add(user)
	return s.startSession(ctx, user)
}

// Logout clears the session slot unconditionally.
func (s *AuthService) Logout(ctx context.Context) error {
	s.metrics.RecordOp("auth.logout")

	session, ok, _ := s.sessions.Get()
	if err := s.sessions.Clear(); err != nil {
		s.metrics.RecordFailure("auth.logout", util.CodeOf(err))
		return util.ToDomainError(err)
	}
	payload := events.SessionPayload{}
	if ok {
		payload.UserID = session.User.ID
		payload.Email = session.User.Email
	}
	s.publish(ctx, events.Event{Type: events.EventSessionEnded, Payload: payload})
	return nil
}

// Session returns the persisted session, if any. Substrate failures and
// malformed payloads both read as no session.
func (s *AuthService) Session() (*domain.Session, bool) {
	session, ok, err := s.sessions.Get()
	if err != nil || !ok {
		return nil, false
	}
	return session, true
}

// Authenticated reports whether a session is currently persisted.
func (s *AuthService) Authenticated() bool {
	_, ok := s.Session()
	return ok
}

// TokenManager exposes the underlying token manager.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) startSession(ctx context.Context, user domain.User) (*domain.Session, error) {
	token, err := s.tokenMgr.Generate(user.Snapshot())
	if err != nil {
		return nil, util.NewInternalError(err)
	}

	session := domain.Session{Token: token, User: user.Snapshot()}
	if err := s.sessions.Save(session); err != nil {
		return nil, util.NewInternalError(err)
	}

	s.publish(ctx, events.Event{
		Type: events.EventSessionStarted,
		Payload: events.SessionPayload{
			UserID: user.ID,
			Email:  user.Email,
		},
	})
	return &session, nil
}

func (s *AuthService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
