package models

import (
	"time"
)

// Session is one day of logging for a single user
type Session struct {
	// ID is the unique identifier for this session
	ID string

	// UserID is the user that owns the session
	UserID string

	// StartedAt is when the session was started
	StartedAt time.Time
}
