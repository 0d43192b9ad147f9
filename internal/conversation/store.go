package conversation

import (
	"context"
	"errors"
	"sync"

	"workout-plan-bot/internal/models"
	"workout-plan-bot/internal/repository"
)

// SessionStore хранит состояние диалогов. Для незнакомого пользователя Load
// возвращает сессию в StateIdle.
type SessionStore interface {
	Load(ctx context.Context, userID int64) (Session, error)
	Save(ctx context.Context, s Session) error
	Delete(ctx context.Context, userID int64) error
}

type memoryStore struct {
	sessions map[int64]Session
	mu       sync.RWMutex
}

// NewMemoryStore хранит сессии в памяти процесса, они теряются при перезапуске.
func NewMemoryStore() SessionStore {
	return &memoryStore{sessions: make(map[int64]Session)}
}

func (m *memoryStore) Load(_ context.Context, userID int64) (Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[userID]
	if !ok {
		return Session{UserID: userID, State: StateIdle}, nil
	}
	s.Pending = append([]string(nil), s.Pending...)
	return s, nil
}

func (m *memoryStore) Save(_ context.Context, s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s.Pending = append([]string(nil), s.Pending...)
	m.sessions[s.UserID] = s
	return nil
}

func (m *memoryStore) Delete(_ context.Context, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, userID)
	return nil
}

type repositoryStore struct {
	repo repository.SessionRepository
}

// NewRepositoryStore хранит сессии в таблице sessions.
func NewRepositoryStore(repo repository.SessionRepository) SessionStore {
	return &repositoryStore{repo: repo}
}

func (r *repositoryStore) Load(ctx context.Context, userID int64) (Session, error) {
	row, err := r.repo.Get(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return Session{UserID: userID, State: StateIdle}, nil
	}
	if err != nil {
		return Session{}, err
	}

	s := Session{
		UserID:  row.UserID,
		State:   State(row.State),
		Pending: models.SplitDays(row.PendingDays),
	}
	if !s.State.Valid() {
		s.State = StateIdle
	}
	return s, nil
}

func (r *repositoryStore) Save(ctx context.Context, s Session) error {
	return r.repo.Save(ctx, &models.Session{
		UserID:      s.UserID,
		State:       string(s.State),
		PendingDays: models.JoinDays(s.Pending),
	})
}

func (r *repositoryStore) Delete(ctx context.Context, userID int64) error {
	return r.repo.Delete(ctx, userID)
}
