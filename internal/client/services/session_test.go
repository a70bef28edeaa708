package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/econdash/internal/client/authapi"
	"github.com/dmitrijs2005/econdash/internal/common"
	"github.com/dmitrijs2005/econdash/internal/logging"

	_ "modernc.org/sqlite"
)

// ---- helpers ----

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE session (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func insertKey(t *testing.T, db *sql.DB, k string, v []byte) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO session(key,value) VALUES(?,?)`, k, v)
	require.NoError(t, err)
}

func getKey(t *testing.T, db *sql.DB, k string) []byte {
	t.Helper()
	var v []byte
	err := db.QueryRow(`SELECT value FROM session WHERE key=?`, k).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	require.NoError(t, err)
	return v
}

// ---- fake auth client ----

// fakeAuthClient implements authapi.Client for SessionService unit tests.
type fakeAuthClient struct {
	LoginRet *authapi.LoginResult
	LoginErr error

	RegisterErr error
	LogoutErr   error

	LastLoginUsername string
	LastLoginPassword string
	LastRegisterEmail string
	LastLogoutRefresh string
	LogoutCalled      bool
}

func (f *fakeAuthClient) Login(ctx context.Context, username, password string) (*authapi.LoginResult, error) {
	f.LastLoginUsername = username
	f.LastLoginPassword = password
	return f.LoginRet, f.LoginErr
}

func (f *fakeAuthClient) Register(ctx context.Context, email, username, fullName, password string) error {
	f.LastRegisterEmail = email
	return f.RegisterErr
}

func (f *fakeAuthClient) Logout(ctx context.Context, refreshToken string) error {
	f.LogoutCalled = true
	f.LastLogoutRefresh = refreshToken
	return f.LogoutErr
}

// ---- TESTS ----

func TestLogin_Success_EstablishesAndPersistsSession(t *testing.T) {
	db := setupDB(t)
	fc := &fakeAuthClient{
		LoginRet: &authapi.LoginResult{
			Email:    "a@b.com",
			Username: "alice",
			Tokens:   authapi.TokenPair{Access: "X", Refresh: "Y"},
		},
	}
	svc := NewSessionService(fc, db, discardLogger())

	ok := svc.Login(context.Background(), "alice", "secret")
	require.True(t, ok)
	require.Equal(t, "alice", fc.LastLoginUsername)

	sess := svc.Current()
	require.NotNil(t, sess)
	require.Equal(t, "a@b.com", sess.Email)
	require.Equal(t, "alice", sess.Username)
	require.Equal(t, "X", sess.AccessToken)
	require.Equal(t, "Y", sess.RefreshToken)

	// all three keys persisted, tokens not duplicated into the user record
	require.Equal(t, []byte("X"), getKey(t, db, common.SessionKeyAccessToken))
	require.Equal(t, []byte("Y"), getKey(t, db, common.SessionKeyRefreshToken))

	var user map[string]any
	require.NoError(t, json.Unmarshal(getKey(t, db, common.SessionKeyUser), &user))
	require.Equal(t, "alice", user["username"])
	require.NotContains(t, user, "accessToken")
	require.NotContains(t, user, "refreshToken")
}

func TestLogin_Failure_LeavesStateUntouched(t *testing.T) {
	db := setupDB(t)
	fc := &fakeAuthClient{LoginErr: &authapi.APIError{Status: 401, Detail: "bad credentials"}}
	svc := NewSessionService(fc, db, discardLogger())

	require.False(t, svc.Login(context.Background(), "alice", "wrong"))
	require.Nil(t, svc.Current())
	require.Nil(t, getKey(t, db, common.SessionKeyAccessToken))
}

func TestSignup_DoesNotEstablishSession(t *testing.T) {
	db := setupDB(t)
	fc := &fakeAuthClient{}
	svc := NewSessionService(fc, db, discardLogger())

	require.True(t, svc.Signup(context.Background(), "a@b.com", "alice", "Alice B.", "secret"))
	require.Equal(t, "a@b.com", fc.LastRegisterEmail)
	require.Nil(t, svc.Current())
}

func TestSignup_FailureReturnsFalse(t *testing.T) {
	db := setupDB(t)
	fc := &fakeAuthClient{RegisterErr: &authapi.APIError{Status: 400, Detail: "username taken"}}
	svc := NewSessionService(fc, db, discardLogger())

	require.False(t, svc.Signup(context.Background(), "a@b.com", "alice", "", "secret"))
}

func TestLogout_SwallowsRemoteFailureAndClearsState(t *testing.T) {
	db := setupDB(t)
	fc := &fakeAuthClient{
		LoginRet: &authapi.LoginResult{
			Username: "alice",
			Tokens:   authapi.TokenPair{Access: "X", Refresh: "Y"},
		},
		LogoutErr: errors.New("service down"),
	}
	svc := NewSessionService(fc, db, discardLogger())
	require.True(t, svc.Login(context.Background(), "alice", "pw"))

	svc.Logout(context.Background())

	require.True(t, fc.LogoutCalled)
	require.Equal(t, "Y", fc.LastLogoutRefresh)
	require.Nil(t, svc.Current())
	require.Nil(t, getKey(t, db, common.SessionKeyUser))
	require.Nil(t, getKey(t, db, common.SessionKeyAccessToken))
	require.Nil(t, getKey(t, db, common.SessionKeyRefreshToken))
}

func TestLogout_WithoutRefreshToken_SkipsRemoteCall(t *testing.T) {
	db := setupDB(t)
	fc := &fakeAuthClient{}
	svc := NewSessionService(fc, db, discardLogger())

	svc.Logout(context.Background())
	require.False(t, fc.LogoutCalled)
}

func TestRestore_CompleteState_EstablishesSession(t *testing.T) {
	db := setupDB(t)
	insertKey(t, db, common.SessionKeyUser, []byte(`{"email":"a@b.com","username":"alice"}`))
	insertKey(t, db, common.SessionKeyAccessToken, []byte("X"))
	insertKey(t, db, common.SessionKeyRefreshToken, []byte("Y"))

	svc := NewSessionService(&fakeAuthClient{}, db, discardLogger())
	svc.Restore(context.Background())

	sess := svc.Current()
	require.NotNil(t, sess)
	require.Equal(t, "alice", sess.Username)
	require.Equal(t, "X", sess.AccessToken)
	require.Equal(t, "Y", sess.RefreshToken)
}

func TestRestore_MissingRefreshToken_SessionAbsent(t *testing.T) {
	db := setupDB(t)
	insertKey(t, db, common.SessionKeyUser, []byte(`{"username":"alice"}`))
	insertKey(t, db, common.SessionKeyAccessToken, []byte("X"))

	svc := NewSessionService(&fakeAuthClient{}, db, discardLogger())
	svc.Restore(context.Background())

	require.Nil(t, svc.Current())
}

func TestRestore_UnreadableUserRecord_SessionAbsent(t *testing.T) {
	db := setupDB(t)
	insertKey(t, db, common.SessionKeyUser, []byte(`{not json`))
	insertKey(t, db, common.SessionKeyAccessToken, []byte("X"))
	insertKey(t, db, common.SessionKeyRefreshToken, []byte("Y"))

	svc := NewSessionService(&fakeAuthClient{}, db, discardLogger())
	svc.Restore(context.Background())

	require.Nil(t, svc.Current())
}

func TestRestore_EmptyStore_SessionAbsent(t *testing.T) {
	db := setupDB(t)

	svc := NewSessionService(&fakeAuthClient{}, db, discardLogger())
	svc.Restore(context.Background())

	require.Nil(t, svc.Current())
}
