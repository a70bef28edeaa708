// Package services contains the application services of the econdash
// client: session management over the remote auth API and the dashboard
// fetch cycle over the statistics provider.
package services

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/dmitrijs2005/econdash/internal/client/authapi"
	"github.com/dmitrijs2005/econdash/internal/client/models"
	"github.com/dmitrijs2005/econdash/internal/client/repositories/session"
	"github.com/dmitrijs2005/econdash/internal/common"
	"github.com/dmitrijs2005/econdash/internal/dbx"
	"github.com/dmitrijs2005/econdash/internal/logging"
)

// SessionService owns the current authenticated session and its persisted
// copy. Auth failures are converted to a boolean result; the underlying
// error is logged but never surfaced to the caller. All mutation happens on
// the UI event loop, so no locking is required.
type SessionService struct {
	api     authapi.Client
	db      *sql.DB
	log     logging.Logger
	current *models.Session
}

func NewSessionService(api authapi.Client, db *sql.DB, log logging.Logger) *SessionService {
	return &SessionService{api: api, db: db, log: log}
}

func (s *SessionService) repo() session.Repository {
	return session.NewSQLiteRepository(s.db)
}

// Current returns the active session, or nil when not logged in.
func (s *SessionService) Current() *models.Session {
	if s.current.LoggedIn() {
		return s.current
	}
	return nil
}

// Login authenticates against the remote service. On success the session is
// stored in memory and all three keys (user record, access token, refresh
// token) are persisted in one transaction. Any failure leaves the current
// state untouched and returns false.
func (s *SessionService) Login(ctx context.Context, username, password string) bool {
	result, err := s.api.Login(ctx, username, password)
	if err != nil {
		s.log.Warn(ctx, "login failed", "username", username, "error", err)
		return false
	}

	sess := &models.Session{
		Email:        result.Email,
		Username:     result.Username,
		FullName:     result.FullName,
		AccessToken:  result.Tokens.Access,
		RefreshToken: result.Tokens.Refresh,
	}

	if err := s.persist(ctx, sess); err != nil {
		s.log.Error(ctx, "persisting session failed", "error", err)
		return false
	}

	s.current = sess
	s.log.Info(ctx, "login successful", "username", sess.Username)
	return true
}

// persist writes the user record (tokens excluded by the Session JSON tags)
// and both tokens atomically.
func (s *SessionService) persist(ctx context.Context, sess *models.Session) error {
	user, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := session.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.SessionKeyUser, user); err != nil {
			return err
		}
		if err := repo.Set(ctx, common.SessionKeyAccessToken, []byte(sess.AccessToken)); err != nil {
			return err
		}
		return repo.Set(ctx, common.SessionKeyRefreshToken, []byte(sess.RefreshToken))
	})
}

// Signup registers a new account. It never establishes a session; the user
// logs in separately afterwards.
func (s *SessionService) Signup(ctx context.Context, email, username, fullName, password string) bool {
	if err := s.api.Register(ctx, email, username, fullName, password); err != nil {
		s.log.Warn(ctx, "signup failed", "username", username, "error", err)
		return false
	}
	s.log.Info(ctx, "signup successful", "username", username)
	return true
}

// Logout notifies the remote service when a refresh token is present
// (best-effort, failures are swallowed) and unconditionally clears the
// in-memory session and every persisted key.
func (s *SessionService) Logout(ctx context.Context) {
	if s.current != nil && s.current.RefreshToken != "" {
		if err := s.api.Logout(ctx, s.current.RefreshToken); err != nil {
			s.log.Warn(ctx, "remote logout failed", "error", err)
		}
	}

	s.current = nil
	if err := s.repo().Clear(ctx); err != nil {
		s.log.Error(ctx, "clearing persisted session failed", "error", err)
	}
}

// Restore loads the persisted session at startup. A session is established
// only when the user record and both tokens are all present; anything less
// leaves the session absent.
func (s *SessionService) Restore(ctx context.Context) {
	repo := s.repo()

	user, err := repo.Get(ctx, common.SessionKeyUser)
	if err != nil {
		s.log.Error(ctx, "reading persisted session failed", "error", err)
		return
	}
	access, err := repo.Get(ctx, common.SessionKeyAccessToken)
	if err != nil {
		s.log.Error(ctx, "reading persisted session failed", "error", err)
		return
	}
	refresh, err := repo.Get(ctx, common.SessionKeyRefreshToken)
	if err != nil {
		s.log.Error(ctx, "reading persisted session failed", "error", err)
		return
	}

	if len(user) == 0 || len(access) == 0 || len(refresh) == 0 {
		s.log.Debug(ctx, "no complete persisted session", "error", common.ErrorSessionIncomplete)
		return
	}

	sess := &models.Session{}
	if err := json.Unmarshal(user, sess); err != nil {
		s.log.Warn(ctx, "persisted user record unreadable", "error", err)
		return
	}
	sess.AccessToken = string(access)
	sess.RefreshToken = string(refresh)

	if expiry, ok := TokenExpiry(sess.AccessToken); ok && expiry.Before(now()) {
		s.log.Warn(ctx, "restored access token already expired", "expired_at", expiry)
	}

	s.current = sess
	s.log.Info(ctx, "session restored", "username", sess.Username)
}
