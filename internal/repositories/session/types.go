package session

import (
	"errors"

	"github.com/KirkDiggler/siptally/internal/ledger"
	"github.com/KirkDiggler/siptally/internal/models"
)

// ErrSessionNotFound is returned when a user has no active session
var ErrSessionNotFound = errors.New("session not found")

// StartSessionInput contains parameters for starting a session
type StartSessionInput struct {
	Session *models.Session
	Ledger  *ledger.Ledger
}

// GetSessionInput contains parameters for retrieving a session
type GetSessionInput struct {
	UserID string
}

// GetSessionOutput contains the result of retrieving a session
type GetSessionOutput struct {
	Session *models.Session
}

// EndSessionInput contains parameters for ending a session
type EndSessionInput struct {
	UserID string
}

// EndSessionOutput contains the result of ending a session
type EndSessionOutput struct {
	// Ended is false when the user had no active session
	Ended bool

	// Session is the session that was discarded
	Session *models.Session

	// Summary is the final state of the discarded ledger
	Summary *models.ConsumptionSummary
}

// SessionFunc operates on a session's ledger under the session lock
type SessionFunc func(session *models.Session, l *ledger.Ledger) error

// StartFunc builds a new session when the user has none
type StartFunc func() (*models.Session, *ledger.Ledger, error)

// WithSessionInput contains parameters for running a function on a session
type WithSessionInput struct {
	UserID string

	// Start is called when no session exists; nil means ErrSessionNotFound
	Start StartFunc

	// Fn is run with the session lock held
	Fn SessionFunc
}
