package session

import (
	"context"
	"errors"
	"sync"

	"github.com/KirkDiggler/siptally/internal/ledger"
	"github.com/KirkDiggler/siptally/internal/models"
)

// entry guards one session's ledger with its own lock
type entry struct {
	mu      sync.Mutex
	session *models.Session
	ledger  *ledger.Ledger
	ended   bool
}

// memoryRepository implements the Repository interface in process memory
type memoryRepository struct {
	mu      sync.Mutex
	entries map[string]*entry
}

// NewMemory creates an in-memory session repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		entries: make(map[string]*entry),
	}
}

// StartSession stores a new session, replacing any previous one for the user
func (r *memoryRepository) StartSession(ctx context.Context, input *StartSessionInput) error {
	if input == nil || input.Session == nil || input.Ledger == nil {
		return errors.New("input, session and ledger cannot be nil")
	}

	if input.Session.UserID == "" {
		return errors.New("user ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.replace(input.Session, input.Ledger)
	return nil
}

// GetSession retrieves the active session for a user
func (r *memoryRepository) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("user ID cannot be empty")
	}

	r.mu.Lock()
	e, ok := r.entries[input.UserID]
	r.mu.Unlock()

	if !ok {
		return nil, ErrSessionNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.ended {
		return nil, ErrSessionNotFound
	}

	session := *e.session
	return &GetSessionOutput{Session: &session}, nil
}

// EndSession discards the active session for a user
func (r *memoryRepository) EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("user ID cannot be empty")
	}

	r.mu.Lock()
	e, ok := r.entries[input.UserID]
	if ok {
		delete(r.entries, input.UserID)
	}
	r.mu.Unlock()

	if !ok {
		return &EndSessionOutput{Ended: false}, nil
	}

	// Wait for any in-flight operation before marking the ledger dead
	e.mu.Lock()
	defer e.mu.Unlock()

	e.ended = true
	session := *e.session
	return &EndSessionOutput{
		Ended:   true,
		Session: &session,
		Summary: e.ledger.Summary(),
	}, nil
}

// WithSession runs input.Fn with the session lock held, starting a session
// through input.Start when the user has none.
func (r *memoryRepository) WithSession(ctx context.Context, input *WithSessionInput) error {
	if input == nil || input.UserID == "" {
		return errors.New("user ID cannot be empty")
	}

	if input.Fn == nil {
		return errors.New("session function cannot be nil")
	}

	for {
		e, err := r.lookup(input)
		if err != nil {
			return err
		}

		e.mu.Lock()
		if e.ended {
			// Ended between lookup and lock, try again
			e.mu.Unlock()
			continue
		}

		err = input.Fn(e.session, e.ledger)
		e.mu.Unlock()
		return err
	}
}

func (r *memoryRepository) lookup(input *WithSessionInput) (*entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.entries[input.UserID]; ok {
		return e, nil
	}

	if input.Start == nil {
		return nil, ErrSessionNotFound
	}

	session, l, err := input.Start()
	if err != nil {
		return nil, err
	}

	if session == nil || l == nil {
		return nil, errors.New("start function returned no session")
	}

	session.UserID = input.UserID
	return r.replace(session, l), nil
}

// replace must be called with r.mu held
func (r *memoryRepository) replace(session *models.Session, l *ledger.Ledger) *entry {
	if old, ok := r.entries[session.UserID]; ok {
		old.mu.Lock()
		old.ended = true
		old.mu.Unlock()
	}

	e := &entry{session: session, ledger: l}
	r.entries[session.UserID] = e
	return e
}
