package models

// Session is the authenticated identity plus the access/refresh token pair.
// A session is only considered established when the user record and both
// tokens are present together; partial persisted state must be treated as
// absent.
type Session struct {
	Email        string `json:"email"`
	Username     string `json:"username"`
	FullName     string `json:"full_name,omitempty"`
	AccessToken  string `json:"-"`
	RefreshToken string `json:"-"`
}

// LoggedIn reports whether the session carries everything required to be
// treated as authenticated.
func (s *Session) LoggedIn() bool {
	return s != nil && s.Username != "" && s.AccessToken != "" && s.RefreshToken != ""
}

// DisplayName returns the label shown in the dashboard header: the full
// name when present, the username otherwise.
func (s *Session) DisplayName() string {
	if s == nil {
		return ""
	}
	if s.FullName != "" {
		return s.FullName
	}
	return s.Username
}
