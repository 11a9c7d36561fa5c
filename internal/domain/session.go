package domain

import "time"

// SessionSnapshot is the persisted form of one visitor's state.
type SessionSnapshot struct {
	ID        string
	Search    SearchState
	Filters   FilterState
	Login     LoginState
	UpdatedAt time.Time
}

// IsExpired reports whether the snapshot was last touched before now-ttl.
func (s *SessionSnapshot) IsExpired(now time.Time, ttl time.Duration) bool {
	return s.UpdatedAt.Before(now.Add(-ttl))
}
