package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"workout-plan-bot/internal/models"
	"workout-plan-bot/internal/repository"

	"github.com/jmoiron/sqlx"
)

type sessionRepository struct {
	db *sqlx.DB
}

func NewSessionRepository(db *sqlx.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Get(ctx context.Context, userID int64) (*models.Session, error) {
	var s models.Session
	query := r.db.Rebind(`SELECT user_id, state, pending_days FROM sessions WHERE user_id = ?`)
	err := r.db.GetContext(ctx, &s, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session %d: %w", userID, err)
	}
	return &s, nil
}

func (r *sessionRepository) Save(ctx context.Context, s *models.Session) error {
	query := r.db.Rebind(`
		INSERT INTO sessions (user_id, state, pending_days)
		VALUES (?, ?, ?)
		ON CONFLICT (user_id)
		DO UPDATE SET
			state = EXCLUDED.state,
			pending_days = EXCLUDED.pending_days,
			updated_at = CURRENT_TIMESTAMP
	`)

	if _, err := r.db.ExecContext(ctx, query, s.UserID, s.State, s.PendingDays); err != nil {
		return fmt.Errorf("save session %d: %w", s.UserID, err)
	}
	return nil
}

func (r *sessionRepository) Delete(ctx context.Context, userID int64) error {
	query := r.db.Rebind(`DELETE FROM sessions WHERE user_id = ?`)
	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("delete session %d: %w", userID, err)
	}
	return nil
}
