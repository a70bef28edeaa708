package services

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// now is a test seam for the token-expiry check.
var now = time.Now

// TokenExpiry peeks at the exp claim of a JWT access token without
// verifying its signature. It is used for header display and restore
// diagnostics only and never influences whether a session is established.
func TokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
