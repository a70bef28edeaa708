// Package authapi is the REST client for the remote authentication service:
// login, register and logout. Responses carry the user record and an
// access/refresh token pair; error bodies carry a {detail} message.
package authapi

import "context"

// TokenPair is the nested token object of a successful login response.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// LoginResult is the decoded body of a successful login.
type LoginResult struct {
	Email    string    `json:"email"`
	Username string    `json:"username"`
	FullName string    `json:"full_name"`
	Tokens   TokenPair `json:"tokens"`
}

// Client talks to the remote authentication service.
type Client interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Register(ctx context.Context, email, username, fullName, password string) error
	Logout(ctx context.Context, refreshToken string) error
}
