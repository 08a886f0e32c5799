package domain

import "time"

// Session links a bearer token to a devotee with an expiry. One token maps to
// one devotee; a devotee may hold any number of concurrent sessions.
type Session struct {
	Token     string
	DevoteeID string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the session is past its expiry at the given instant.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
