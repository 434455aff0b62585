package models

import "time"

// Session is the authenticated context minted at login. It is stored in
// Redis as a JSON blob keyed by SessionID and carried inside the JWT only by
// reference; the User snapshot is replaced wholesale on refresh.
type Session struct {
	SessionID    string    `json:"sessionId"`
	BackendToken string    `json:"backendToken"`
	User         *User     `json:"user"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// IsAuthenticated reports whether the session carries a live user snapshot.
// A nil session stands for "no session at all".
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.User != nil && s.User.ID != ""
}

func (s *Session) IsExpired(now time.Time) bool {
	return s != nil && !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
