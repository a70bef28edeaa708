// Package common contains shared constants and sentinel errors used across
// econdash components. Callers should use errors.Is to match the sentinel
// values.
package common

// Persisted session store keys. All three are written together on login and
// a session is only restored when every one of them is present.
const (
	SessionKeyUser         = "user"
	SessionKeyAccessToken  = "accessToken"
	SessionKeyRefreshToken = "refreshToken"
)
